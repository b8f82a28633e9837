package eddsa

import (
	"testing"

	"threshold.network/cryptocore/internal/testutils"
)

func TestPrivateKeyExportRoundTrips(t *testing.T) {
	e := NewEd25519()
	seed, err := e.PrivateKeyGenerate()
	if err != nil {
		t.Fatalf("PrivateKeyGenerate: %v", err)
	}

	raw, err := e.PrivateKeyExport(seed)
	if err != nil {
		t.Fatalf("PrivateKeyExport: %v", err)
	}
	gotRaw, err := e.PrivateKeyImport(raw)
	if err != nil {
		t.Fatalf("PrivateKeyImport: %v", err)
	}
	testutils.AssertBytesEqual(t, seed, gotRaw)

	pkcs8, err := e.PrivateKeyExportPKCS8(seed)
	if err != nil {
		t.Fatalf("PrivateKeyExportPKCS8: %v", err)
	}
	gotPKCS8, err := e.PrivateKeyImportPKCS8(pkcs8)
	if err != nil {
		t.Fatalf("PrivateKeyImportPKCS8: %v", err)
	}
	testutils.AssertBytesEqual(t, seed, gotPKCS8)

	jwk, err := e.PrivateKeyExportJWK(seed)
	if err != nil {
		t.Fatalf("PrivateKeyExportJWK: %v", err)
	}
	gotJWK, err := e.PrivateKeyImportJWK(jwk)
	if err != nil {
		t.Fatalf("PrivateKeyImportJWK: %v", err)
	}
	testutils.AssertBytesEqual(t, seed, gotJWK)
}

func TestPublicKeyExportRoundTrips(t *testing.T) {
	e := NewEd25519()
	seed, err := e.PrivateKeyGenerate()
	if err != nil {
		t.Fatalf("PrivateKeyGenerate: %v", err)
	}
	pub, err := e.PublicKeyCreate(seed)
	if err != nil {
		t.Fatalf("PublicKeyCreate: %v", err)
	}

	spki, err := e.PublicKeyExportSPKI(pub)
	if err != nil {
		t.Fatalf("PublicKeyExportSPKI: %v", err)
	}
	gotSPKI, err := e.PublicKeyImportSPKI(spki)
	if err != nil {
		t.Fatalf("PublicKeyImportSPKI: %v", err)
	}
	testutils.AssertBytesEqual(t, pub, gotSPKI)

	jwk, err := e.PublicKeyExportJWK(pub)
	if err != nil {
		t.Fatalf("PublicKeyExportJWK: %v", err)
	}
	gotJWK, err := e.PublicKeyImportJWK(jwk)
	if err != nil {
		t.Fatalf("PublicKeyImportJWK: %v", err)
	}
	testutils.AssertBytesEqual(t, pub, gotJWK)
}
