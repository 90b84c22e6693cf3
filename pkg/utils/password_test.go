package utils

import "testing"

func TestHashPasswordIsSalted(t *testing.T) {
	h1, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	h2, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("expected salted hashes to differ, both were %q", h1)
	}
	if !CheckPassword("s3cret-pass", h1) {
		t.Fatalf("first hash did not verify")
	}
	if !CheckPassword("s3cret-pass", h2) {
		t.Fatalf("second hash did not verify")
	}
}

func TestCheckPasswordWrongPassword(t *testing.T) {
	h, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if CheckPassword("not-the-password", h) {
		t.Fatalf("wrong password verified")
	}
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	if CheckPassword("anything", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash verified")
	}
	if CheckPassword("anything", "") {
		t.Fatalf("empty hash verified")
	}
}
