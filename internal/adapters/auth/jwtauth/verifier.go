package jwtauth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pet-boarding/internal/ports/auth"
)

var (
	ErrTokenEmpty     = errors.New("token is empty")
	ErrNotConfigured  = errors.New("jwt secret not configured")
	ErrMissingSubject = errors.New("token missing sub")
)

// operatorClaims: sub es el id del operador.
type operatorClaims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Verifier implementa auth.AuthVerifier con tokens HS256 firmados con un
// secreto compartido.
type Verifier struct {
	secret []byte
	issuer string
	leeway time.Duration
}

type Option func(*Verifier)

func WithIssuer(iss string) Option { return func(v *Verifier) { v.issuer = iss } }
func WithLeeway(d time.Duration) Option { return func(v *Verifier) { v.leeway = d } }

func NewVerifier(secret string, opts ...Option) (*Verifier, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrNotConfigured
	}
	v := &Verifier{secret: []byte(secret), leeway: 30 * time.Second}
	for _, o := range opts {
		o(v)
	}
	return v, nil
}

func (v *Verifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	if v == nil || len(v.secret) == 0 {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	popts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(v.leeway),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		popts = append(popts, jwt.WithIssuer(v.issuer))
	}

	var c operatorClaims
	_, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, popts...)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
	}

	uid := strings.TrimSpace(c.Subject)
	if uid == "" {
		return auth.Claims{}, ErrMissingSubject
	}
	return auth.Claims{UserID: uid, Email: c.Email, Role: c.Role}, nil
}

// Issue firma un token de operador. Lo usa el comando de emisión y los tests.
func (v *Verifier) Issue(userID, email, role string, ttl time.Duration) (string, error) {
	if v == nil || len(v.secret) == 0 {
		return "", ErrNotConfigured
	}
	now := time.Now()
	c := operatorClaims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(v.secret)
}
