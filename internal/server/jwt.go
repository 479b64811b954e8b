package server

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jonathan/candidate-screener/internal/config"
	"github.com/jonathan/candidate-screener/internal/server/middleware"
)

// Issuer is the iss claim of every token the screener signs
const Issuer = "candidate-screener"

// Token errors
var (
	ErrEmptyClientID = errors.New("client ID is empty")
	ErrEmptyToken    = errors.New("token string is empty")
	ErrInvalidToken  = errors.New("token is not valid")
)

// Claims identifies the client a service token was issued to
type Claims struct {
	ClientID string `json:"client_id"`
	jwt.RegisteredClaims
}

// GetClientID implements middleware.ClientIDGetter
func (c *Claims) GetClientID() string { return c.ClientID }

// JWTService signs and checks HS256 service tokens for API clients such as ATS
// integrations.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService creates a service from the auth settings
func NewJWTService(cfg *config.JWTConfig) *JWTService {
	return &JWTService{
		secret: []byte(cfg.Secret),
		ttl:    time.Duration(cfg.ExpirationHours) * time.Hour,
		now:    time.Now,
	}
}

// GenerateToken issues a token for clientID
func (s *JWTService) GenerateToken(clientID string) (string, error) {
	if clientID == "" {
		return "", ErrEmptyClientID
	}
	issued := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		ClientID: clientID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   clientID,
			IssuedAt:  jwt.NewNumericDate(issued),
			NotBefore: jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(s.ttl)),
		},
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses a token and returns its claims. Only HS256 tokens from this
// issuer are accepted.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithTimeFunc(s.now),
	)
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, fmt.Errorf("token expired: %w", err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, fmt.Errorf("invalid token signature: %w", err)
	case errors.Is(err, jwt.ErrTokenMalformed):
		return nil, fmt.Errorf("malformed token: %w", err)
	default:
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.ClientID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// AsTokenValidator adapts the service to the auth middleware
func (s *JWTService) AsTokenValidator() middleware.TokenValidator {
	return tokenValidator{s}
}

type tokenValidator struct{ s *JWTService }

func (v tokenValidator) ValidateToken(tokenString string) (middleware.ClientIDGetter, error) {
	claims, err := v.s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return claims, nil
}
