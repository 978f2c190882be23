package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates bearer tokens issued by the external identity
// service. Token issuance is not this service's concern; it only checks
// the HMAC signature and extracts the caller's identity and role.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a token verifier for the shared signing secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify parses and validates a signed token, returning the caller claims.
func (v *Verifier) Verify(tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("invalid token: %w", err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, errors.New("invalid token claims")
	}

	username, _ := mapClaims["username"].(string)
	if username == "" {
		return Claims{}, errors.New("token missing username claim")
	}
	isAdmin, _ := mapClaims["isAdmin"].(bool)

	return Claims{Username: username, IsAdmin: isAdmin}, nil
}
