package eddsa

import (
	"encoding/asn1"

	"threshold.network/cryptocore/encoding"
)

// OID identifies the RFC 8410 algorithm identifier a curve's keys encode
// under. NewEd25519-based engines use encoding.OIDEd25519.
func (e *Engine) OID() asn1.ObjectIdentifier {
	switch e.Curve().Name() {
	case "Ed448":
		return encoding.OIDEd448
	default:
		return encoding.OIDEd25519
	}
}

// PrivateKeyExport wraps a raw seed in an ASN.1 OctetString.
func (e *Engine) PrivateKeyExport(seed []byte) ([]byte, error) {
	if !e.PrivateKeyVerify(seed) {
		return nil, ErrInvalidSeedLength
	}
	return encoding.WrapOctetString(seed)
}

// PrivateKeyImport reverses PrivateKeyExport.
func (e *Engine) PrivateKeyImport(der []byte) ([]byte, error) {
	seed, err := encoding.UnwrapOctetString(der)
	if err != nil {
		return nil, err
	}
	if !e.PrivateKeyVerify(seed) {
		return nil, ErrInvalidSeedLength
	}
	return seed, nil
}

// PrivateKeyExportPKCS8 wraps seed in a PKCS#8 PrivateKeyInfo under this
// engine's curve OID.
func (e *Engine) PrivateKeyExportPKCS8(seed []byte) ([]byte, error) {
	if !e.PrivateKeyVerify(seed) {
		return nil, ErrInvalidSeedLength
	}
	return encoding.MarshalPKCS8(e.OID(), seed)
}

// PrivateKeyImportPKCS8 reverses PrivateKeyExportPKCS8, rejecting any OID
// other than this engine's curve.
func (e *Engine) PrivateKeyImportPKCS8(der []byte) ([]byte, error) {
	_, seed, err := encoding.ParsePKCS8(der, e.OID())
	if err != nil {
		return nil, err
	}
	if !e.PrivateKeyVerify(seed) {
		return nil, ErrInvalidSeedLength
	}
	return seed, nil
}

func (e *Engine) jwkCrv() string {
	if e.Curve().Name() == "Ed448" {
		return "Ed448"
	}
	return "Ed25519"
}

// PrivateKeyExportJWK encodes (seed, its derived public key) as an RFC 8037
// OKP JWK.
func (e *Engine) PrivateKeyExportJWK(seed []byte) ([]byte, error) {
	pub, err := e.PublicKeyCreate(seed)
	if err != nil {
		return nil, err
	}
	return encoding.MarshalJWKPrivate(e.jwkCrv(), pub, seed)
}

// PrivateKeyImportJWK reverses PrivateKeyExportJWK.
func (e *Engine) PrivateKeyImportJWK(data []byte) ([]byte, error) {
	seed, err := encoding.ParseJWKPrivate(data, e.jwkCrv())
	if err != nil {
		return nil, err
	}
	if !e.PrivateKeyVerify(seed) {
		return nil, ErrInvalidSeedLength
	}
	return seed, nil
}

// PublicKeyExport is the identity operation for the raw form (public keys
// are already their own wire encoding), kept for API symmetry with the
// private-key exporters.
func (e *Engine) PublicKeyExport(key []byte) ([]byte, error) {
	if !e.PublicKeyVerify(key) {
		return nil, ErrInvalidPoint
	}
	return append([]byte{}, key...), nil
}

// PublicKeyExportSPKI wraps a raw public key in an X.509
// SubjectPublicKeyInfo.
func (e *Engine) PublicKeyExportSPKI(key []byte) ([]byte, error) {
	if !e.PublicKeyVerify(key) {
		return nil, ErrInvalidPoint
	}
	return encoding.MarshalSPKI(e.OID(), key)
}

// PublicKeyImportSPKI reverses PublicKeyExportSPKI, rejecting any OID other
// than this engine's curve.
func (e *Engine) PublicKeyImportSPKI(der []byte) ([]byte, error) {
	_, key, err := encoding.ParseSPKI(der, e.OID())
	if err != nil {
		return nil, err
	}
	if !e.PublicKeyVerify(key) {
		return nil, ErrInvalidPoint
	}
	return key, nil
}

// PublicKeyExportJWK encodes a raw public key as an RFC 8037 OKP JWK.
func (e *Engine) PublicKeyExportJWK(key []byte) ([]byte, error) {
	if !e.PublicKeyVerify(key) {
		return nil, ErrInvalidPoint
	}
	return encoding.MarshalJWKPublic(e.jwkCrv(), key)
}

// PublicKeyImportJWK reverses PublicKeyExportJWK.
func (e *Engine) PublicKeyImportJWK(data []byte) ([]byte, error) {
	key, err := encoding.ParseJWKPublic(data, e.jwkCrv())
	if err != nil {
		return nil, err
	}
	if !e.PublicKeyVerify(key) {
		return nil, ErrInvalidPoint
	}
	return key, nil
}
