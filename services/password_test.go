package services

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	t.Run("Produces salt and hash", func(t *testing.T) {
		hashed, err := HashPassword("secret1!")
		if err != nil {
			t.Fatalf("HashPassword() error = %v", err)
		}
		if parts := strings.Split(hashed, "$"); len(parts) != 2 {
			t.Errorf("Hash format = %q, want salt$hash", hashed)
		}
	})

	t.Run("Rejects weak passwords", func(t *testing.T) {
		if _, err := HashPassword("weak"); err == nil {
			t.Error("HashPassword() accepted a weak password")
		}
	})

	t.Run("Same password hashes differently", func(t *testing.T) {
		first, err := HashPassword("secret1!")
		if err != nil {
			t.Fatalf("HashPassword() error = %v", err)
		}
		second, err := HashPassword("secret1!")
		if err != nil {
			t.Fatalf("HashPassword() error = %v", err)
		}
		if first == second {
			t.Error("Two hashes of the same password are identical, salt is not random")
		}
	})
}

func TestVerifyPassword(t *testing.T) {
	hashed, err := HashPassword("secret1!")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	t.Run("Correct password verifies", func(t *testing.T) {
		ok, err := VerifyPassword(hashed, "secret1!")
		if err != nil {
			t.Fatalf("VerifyPassword() error = %v", err)
		}
		if !ok {
			t.Error("Correct password did not verify")
		}
	})

	t.Run("Wrong password fails", func(t *testing.T) {
		ok, err := VerifyPassword(hashed, "wrong1!!")
		if err != nil {
			t.Fatalf("VerifyPassword() error = %v", err)
		}
		if ok {
			t.Error("Wrong password verified")
		}
	})

	t.Run("Malformed stored hash errors", func(t *testing.T) {
		if _, err := VerifyPassword("not-a-valid-hash", "secret1!"); err == nil {
			t.Error("Expected error for malformed stored password")
		}
	})
}
