package auth

import "testing"

func TestHashAndComparePassword(t *testing.T) {
	plain := "s3cret-operator-pass"

	hash, err := HashPassword(plain)
	if err != nil {
		t.Fatalf("HashPassword() failed: %v", err)
	}
	if hash == "" || hash == plain {
		t.Fatalf("unexpected hash %q", hash)
	}

	if err := ComparePassword(hash, plain); err != nil {
		t.Errorf("ComparePassword() failed for correct password: %v", err)
	}
	if err := ComparePassword(hash, "wrong-pass"); err == nil {
		t.Error("ComparePassword() must fail for wrong password")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	plain := "s3cret-operator-pass"

	hash1, _ := HashPassword(plain)
	hash2, _ := HashPassword(plain)
	if hash1 == hash2 {
		t.Error("two hashes of the same password should differ")
	}
	if err := ComparePassword(hash2, plain); err != nil {
		t.Errorf("second hash failed to validate: %v", err)
	}
}
