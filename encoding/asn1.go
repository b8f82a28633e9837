// Package encoding implements key-encoding formats for Edwards-curve keys:
// raw ASN.1 OctetString wrapping, PKCS#8 PrivateKeyInfo, X.509
// SubjectPublicKeyInfo, and JWK, scoped to the OIDs RFC 8410 defines.
package encoding

import (
	"encoding/asn1"
	"errors"
)

var (
	ErrOIDMismatch   = errors.New("encoding: algorithm OID mismatch")
	ErrASN1Malformed = errors.New("encoding: malformed ASN.1")
)

// algorithmIdentifier mirrors X.509's AlgorithmIdentifier with a NULL (or
// absent) parameters field, as RFC 8410 mandates for EdDSA/X25519 OIDs.
type algorithmIdentifier struct {
	Algorithm asn1.ObjectIdentifier
}

// privateKeyInfo is PKCS#8's PrivateKeyInfo, version 0, carrying the seed as
// a doubly-wrapped OCTET STRING (the outer structural field, the inner the
// OctetString-wrapped raw seed itself, per RFC 8410 §7).
type privateKeyInfo struct {
	Version    int
	Algorithm  algorithmIdentifier
	PrivateKey []byte
}

// subjectPublicKeyInfo is X.509's SPKI structure carrying a raw public key
// as a BIT STRING.
type subjectPublicKeyInfo struct {
	Algorithm algorithmIdentifier
	PublicKey asn1.BitString
}

// WrapOctetString DER-encodes seed as an ASN.1 OCTET STRING, the innermost
// layer PKCS#8 wraps a raw EdDSA seed in.
func WrapOctetString(seed []byte) ([]byte, error) {
	return asn1.Marshal(seed)
}

// UnwrapOctetString reverses WrapOctetString.
func UnwrapOctetString(der []byte) ([]byte, error) {
	var out []byte
	rest, err := asn1.Unmarshal(der, &out)
	if err != nil {
		return nil, ErrASN1Malformed
	}
	if len(rest) != 0 {
		return nil, ErrASN1Malformed
	}
	return out, nil
}
