package encoding

import "encoding/asn1"

// RFC 8410 §3 fixed OIDs, one per curve this module can instantiate.
var (
	OIDX25519  = asn1.ObjectIdentifier{1, 3, 101, 110}
	OIDX448    = asn1.ObjectIdentifier{1, 3, 101, 111}
	OIDEd25519 = asn1.ObjectIdentifier{1, 3, 101, 112}
	OIDEd448   = asn1.ObjectIdentifier{1, 3, 101, 113}
)

// MarshalPKCS8 wraps seed (the raw EdDSA private-key seed) in a PKCS#8
// PrivateKeyInfo for the given curve OID.
func MarshalPKCS8(oid asn1.ObjectIdentifier, seed []byte) ([]byte, error) {
	octets, err := WrapOctetString(seed)
	if err != nil {
		return nil, err
	}
	return asn1.Marshal(privateKeyInfo{
		Version:    0,
		Algorithm:  algorithmIdentifier{Algorithm: oid},
		PrivateKey: octets,
	})
}

// ParsePKCS8 extracts (oid, seed) from a PKCS#8 PrivateKeyInfo, rejecting
// any OID other than wantOID when wantOID is non-nil.
func ParsePKCS8(der []byte, wantOID asn1.ObjectIdentifier) (asn1.ObjectIdentifier, []byte, error) {
	var info privateKeyInfo
	rest, err := asn1.Unmarshal(der, &info)
	if err != nil || len(rest) != 0 {
		return nil, nil, ErrASN1Malformed
	}
	if wantOID != nil && !info.Algorithm.Algorithm.Equal(wantOID) {
		return nil, nil, ErrOIDMismatch
	}
	seed, err := UnwrapOctetString(info.PrivateKey)
	if err != nil {
		return nil, nil, err
	}
	return info.Algorithm.Algorithm, seed, nil
}

// MarshalSPKI wraps a raw EdDSA/X25519 public key in an X.509
// SubjectPublicKeyInfo.
func MarshalSPKI(oid asn1.ObjectIdentifier, pub []byte) ([]byte, error) {
	return asn1.Marshal(subjectPublicKeyInfo{
		Algorithm: algorithmIdentifier{Algorithm: oid},
		PublicKey: asn1.BitString{Bytes: pub, BitLength: len(pub) * 8},
	})
}

// ParseSPKI extracts (oid, pub) from a SubjectPublicKeyInfo, rejecting any
// OID other than wantOID when wantOID is non-nil.
func ParseSPKI(der []byte, wantOID asn1.ObjectIdentifier) (asn1.ObjectIdentifier, []byte, error) {
	var spki subjectPublicKeyInfo
	rest, err := asn1.Unmarshal(der, &spki)
	if err != nil || len(rest) != 0 {
		return nil, nil, ErrASN1Malformed
	}
	if wantOID != nil && !spki.Algorithm.Algorithm.Equal(wantOID) {
		return nil, nil, ErrOIDMismatch
	}
	return spki.Algorithm.Algorithm, spki.PublicKey.RightAlign(), nil
}
