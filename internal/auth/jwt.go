package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrMissingToken = errors.New("missing credential")
	ErrInvalidToken = errors.New("invalid credential")
	ErrExpiredToken = errors.New("credential expired")
)

// Identity is the resolved caller identity. It is a value object; the
// user ID it carries is the sole source of task ownership.
type Identity struct {
	UserID string
}

// TokenVerifier resolves a bearer credential into an Identity
type TokenVerifier interface {
	Verify(tokenString string) (*Identity, error)
}

type claims struct {
	jwt.RegisteredClaims
}

// HMACVerifier verifies HMAC-SHA256 signed bearer tokens
type HMACVerifier struct {
	signingKey []byte
	clockSkew  time.Duration
	timeFunc   func() time.Time
}

// NewHMACVerifier creates a TokenVerifier backed by a shared HMAC secret
func NewHMACVerifier(secret string) *HMACVerifier {
	return &HMACVerifier{
		signingKey: []byte(secret),
		clockSkew:  2 * time.Minute,
		timeFunc:   time.Now,
	}
}

// Verify parses and validates a bearer token and returns the caller identity.
// The subject claim must be a UUID; anything else is rejected before any
// business logic runs.
func (v *HMACVerifier) Verify(tokenString string) (*Identity, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return v.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithLeeway(v.clockSkew),
		jwt.WithTimeFunc(v.timeFunc),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(c.Subject)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &Identity{UserID: userID.String()}, nil
}
