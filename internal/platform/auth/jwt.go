// Package auth validates the bearer tokens that attest a caller's address.
//
// Tokens are HMAC-signed JWTs issued by the operator's wallet-auth service
// after a signature challenge; this service only verifies them. The subject
// claim carries the attested address.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"syndicate/pkg/domain"
)

// Verifier validates HS256 tokens against a shared signing key.
type Verifier struct {
	signingKey []byte
}

func NewVerifier(signingKey string) *Verifier {
	return &Verifier{signingKey: []byte(signingKey)}
}

// ValidateToken parses and verifies tokenString, returning the attested
// caller address from the subject claim.
func (v *Verifier) ValidateToken(tokenString string) (domain.Address, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.signingKey, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return domain.ZeroAddress, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return domain.ZeroAddress, fmt.Errorf("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return domain.ZeroAddress, fmt.Errorf("token has no subject")
	}

	addr, err := domain.ParseAddress(sub)
	if err != nil {
		return domain.ZeroAddress, fmt.Errorf("token subject is not an address: %w", err)
	}
	if addr.IsZero() {
		return domain.ZeroAddress, fmt.Errorf("token subject is the zero address")
	}
	return addr, nil
}

// IssueToken signs a token for addr. Used by tests and the local dev CLI;
// production tokens come from the wallet-auth service.
func (v *Verifier) IssueToken(addr domain.Address, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": addr.String(),
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	})
	return token.SignedString(v.signingKey)
}
