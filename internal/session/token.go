package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the subset of JWT claims the client cares about. The token
// is never verified locally; the backend is the authority, the client only
// peeks at expiry to decide whether a stored session is worth presenting.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time
}

// PeekToken parses a JWT without verifying its signature.
func PeekToken(raw string) (*TokenClaims, error) {
	parser := jwt.NewParser()
	tok, _, err := parser.ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return nil, err
	}

	out := &TokenClaims{}
	if sub, err := tok.Claims.GetSubject(); err == nil {
		out.Subject = sub
	}
	if exp, err := tok.Claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}

// Expired reports whether the token's expiry has passed. Tokens without an
// expiry claim never expire from the client's point of view.
func (c *TokenClaims) Expired(now time.Time) bool {
	if c.ExpiresAt.IsZero() {
		return false
	}
	return now.After(c.ExpiresAt)
}
