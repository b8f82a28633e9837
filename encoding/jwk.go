package encoding

import (
	"encoding/base64"
	"encoding/json"
	"errors"
)

// ErrJWKCurveMismatch is returned when a JWK's "crv" doesn't match the
// curve name the caller expected.
var ErrJWKCurveMismatch = errors.New("encoding: jwk curve mismatch")

// jwk is RFC 8037's JSON Web Key shape for OKP (Octet Key Pair) keys,
// the only kty EdDSA/X25519 use.
type jwk struct {
	Kty string `json:"kty"`
	Crv string `json:"crv"`
	X   string `json:"x"`
	D   string `json:"d,omitempty"`
}

func b64(b []byte) string { return base64.RawURLEncoding.EncodeToString(b) }

func unb64(s string) ([]byte, error) { return base64.RawURLEncoding.DecodeString(s) }

// MarshalJWKPublic encodes a raw public key as an RFC 8037 OKP JWK.
func MarshalJWKPublic(crv string, pub []byte) ([]byte, error) {
	return json.Marshal(jwk{Kty: "OKP", Crv: crv, X: b64(pub)})
}

// MarshalJWKPrivate encodes a raw seed and its derived public key as an
// RFC 8037 OKP JWK carrying both "x" and "d".
func MarshalJWKPrivate(crv string, pub, seed []byte) ([]byte, error) {
	return json.Marshal(jwk{Kty: "OKP", Crv: crv, X: b64(pub), D: b64(seed)})
}

// ParseJWKPublic decodes an OKP JWK's public-key material, rejecting a
// crv mismatch against wantCrv when non-empty.
func ParseJWKPublic(data []byte, wantCrv string) ([]byte, error) {
	var k jwk
	if err := json.Unmarshal(data, &k); err != nil {
		return nil, err
	}
	if wantCrv != "" && k.Crv != wantCrv {
		return nil, ErrJWKCurveMismatch
	}
	return unb64(k.X)
}

// ParseJWKPrivate decodes an OKP JWK's seed ("d"), rejecting a crv mismatch
// against wantCrv when non-empty and a missing "d" field.
func ParseJWKPrivate(data []byte, wantCrv string) ([]byte, error) {
	var k jwk
	if err := json.Unmarshal(data, &k); err != nil {
		return nil, err
	}
	if wantCrv != "" && k.Crv != wantCrv {
		return nil, ErrJWKCurveMismatch
	}
	if k.D == "" {
		return nil, errors.New("encoding: jwk has no private component")
	}
	return unb64(k.D)
}
