package utils

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/yungbote/pubshare-backend/internal/types"
)

func TestValidateLogin(t *testing.T) {
	if err := ValidateLogin("", "pass"); err == nil {
		t.Fatalf("expected missing email to fail")
	}
	if err := ValidateLogin("a@b.com", ""); err == nil {
		t.Fatalf("expected missing password to fail")
	}
	if err := ValidateLogin("a@b.com", "pass"); err != nil {
		t.Fatalf("expected valid input to pass, got %v", err)
	}
}

func TestHashPassword(t *testing.T) {
	user := &types.User{Password: "plain-pass"}
	if err := HashPassword(user); err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if user.Password == "plain-pass" {
		t.Fatalf("password must not stay plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("plain-pass")); err != nil {
		t.Fatalf("hash must verify against the original: %v", err)
	}
}

func TestNormalizeUserFields(t *testing.T) {
	user := &types.User{
		Email:     "  MixedCase@Example.COM ",
		FirstName: " Ada ",
		LastName:  " Lovelace ",
	}
	NormalizeUserFields(user)
	if user.Email != "mixedcase@example.com" {
		t.Fatalf("expected lowered trimmed email, got %q", user.Email)
	}
	if user.FirstName != "Ada" || user.LastName != "Lovelace" {
		t.Fatalf("expected trimmed names, got %q %q", user.FirstName, user.LastName)
	}
}
