// Package token issues and verifies the signed bearer tokens used by the
// API. Tokens are stateless HS256 JWTs carrying a subject and a type tag;
// an access token is never interchangeable with a refresh token even when
// both encode the same subject.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Type tags a token as an access or refresh credential. The tag is embedded
// in the signed claims, so the check in Verify cannot be bypassed by caller
// discipline alone.
type Type string

const (
	TypeAccess  Type = "access"
	TypeRefresh Type = "refresh"
)

var (
	ErrMalformed        = errors.New("token is malformed")
	ErrInvalidSignature = errors.New("token signature is invalid")
	ErrExpired          = errors.New("token has expired")
	ErrTypeMismatch     = errors.New("token type mismatch")
)

// Claims are the verified contents of a token.
type Claims struct {
	TokenType Type `json:"typ"`
	jwt.RegisteredClaims
}

// Codec signs and verifies tokens with a process-wide secret injected at
// construction time. The secret is read-only after startup; Verify is a
// pure computation safe for concurrent use.
type Codec struct {
	secret []byte
	issuer string
}

func NewCodec(secret, issuer string) *Codec {
	return &Codec{secret: []byte(secret), issuer: issuer}
}

// Issue signs a token of the given type for subject, valid for ttl from now.
func (c *Codec) Issue(subject string, typ Type, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		TokenType: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    c.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify decodes raw, validates the signature and expiry, and enforces the
// embedded type tag. A token is expired from its expiry instant onward
// (exclusive validity window, no leeway).
func (c *Codec) Verify(raw string, expected Type) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		case errors.Is(err, jwt.ErrTokenUnverifiable):
			return nil, ErrInvalidSignature
		default:
			return nil, ErrMalformed
		}
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrMalformed
	}
	if claims.TokenType != expected {
		return nil, ErrTypeMismatch
	}
	return claims, nil
}
