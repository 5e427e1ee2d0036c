// Package auth verifies credentials and decides which role tiers may perform
// which operations.
package auth

import (
	"errors"
	"plotmarket/internal/config"
	"plotmarket/pkg/serrors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Options configure token issuing and verification.
type Options struct {
	// Secret is the shared HS256 signing key.
	Secret string
	// Issuer is written to and required in the iss claim.
	Issuer string
	// TTL is the lifetime of issued tokens.
	TTL time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Secret: cfg.JWT.Secret,
		Issuer: cfg.JWT.Issuer,
		TTL:    cfg.JWT.TTL,
	}
}

// TokenManager issues and verifies signed bearer tokens. The subject claim
// carries the account email.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager creates a manager with the provided options.
func NewTokenManager(options Options) *TokenManager {
	return &TokenManager{
		secret: []byte(options.Secret),
		issuer: options.Issuer,
		ttl:    options.TTL,
		now:    time.Now,
	}
}

// Issue signs a token for email and returns it with its expiry.
func (t *TokenManager) Issue(email string) (string, time.Time, error) {
	now := t.now()
	expiresAt := now.Add(t.ttl)
	claims := jwt.RegisteredClaims{
		Issuer:    t.issuer,
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, serrors.Wrap(serrors.ErrInternal, err, "could not sign token")
	}

	return signed, expiresAt, nil
}

// Verify checks the signature, algorithm, issuer and expiry of token and
// returns its subject. Every failure is reported as serrors.ErrUnauthorized.
func (t *TokenManager) Verify(token string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (interface{}, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", serrors.Wrap(serrors.ErrUnauthorized, err, "token expired")
		}

		return "", serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}
	if claims.Subject == "" {
		return "", serrors.With(serrors.ErrUnauthorized, "token has no subject")
	}

	return claims.Subject, nil
}
