package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func sign(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func TestVerify_ValidToken(t *testing.T) {
	verifier := NewVerifier("secret")

	claims, err := verifier.Verify(sign(t, "secret", jwt.MapClaims{"username": "alex", "isAdmin": true}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Username != "alex" || !claims.IsAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestVerify_MissingIsAdminDefaultsFalse(t *testing.T) {
	verifier := NewVerifier("secret")

	claims, err := verifier.Verify(sign(t, "secret", jwt.MapClaims{"username": "alex"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.IsAdmin {
		t.Fatal("expected isAdmin to default to false")
	}
}

func TestVerify_Rejections(t *testing.T) {
	verifier := NewVerifier("secret")

	if _, err := verifier.Verify(sign(t, "wrong", jwt.MapClaims{"username": "alex"})); err == nil {
		t.Fatal("expected error for wrong signing secret")
	}
	if _, err := verifier.Verify(sign(t, "secret", jwt.MapClaims{"isAdmin": true})); err == nil {
		t.Fatal("expected error for missing username claim")
	}
	if _, err := verifier.Verify("garbage"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
