package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/emreglvibecoder/darth-vader-api/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken         = errors.New("invalid token")
	ErrUnsupportedTokenMode = errors.New("unsupported token mode")
)

// TokenIssuer turns a username into a bearer token and back.
type TokenIssuer interface {
	Issue(username string) (string, error)
	Resolve(token string) (string, error)
}

// NewTokenIssuer builds the issuer selected by cfg.TokenMode.
func NewTokenIssuer(cfg *config.Config) (TokenIssuer, error) {
	switch cfg.TokenMode {
	case config.TokenModeUsername, "":
		return UsernameTokens{}, nil
	case config.TokenModeJWT:
		return NewJWTTokens(cfg.JWTSecret, cfg.TokenTTL), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedTokenMode, cfg.TokenMode)
	}
}

// UsernameTokens uses the username itself as the token. It carries no
// expiry or signature and exists for compatibility with older clients.
type UsernameTokens struct{}

func (UsernameTokens) Issue(username string) (string, error) {
	return username, nil
}

func (UsernameTokens) Resolve(token string) (string, error) {
	if token == "" {
		return "", ErrInvalidToken
	}
	return token, nil
}

// JWTTokens issues HS256 tokens with the username as subject.
type JWTTokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTTokens(secret string, ttl time.Duration) *JWTTokens {
	return &JWTTokens{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (t *JWTTokens) Issue(username string) (string, error) {
	now := t.now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

func (t *JWTTokens) Resolve(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", tok.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
