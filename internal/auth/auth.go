package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Level is the access level an endpoint requires.
type Level int

const (
	Public Level = iota
	AnyRole
	AdminOnly
)

func (l Level) Allows(role Role) bool {
	switch l {
	case Public:
		return true
	case AnyRole:
		return role == RoleAdmin || role == RoleUser
	case AdminOnly:
		return role == RoleAdmin
	default:
		return false
	}
}

var (
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
	ErrUnknownRole  = errors.New("unknown role")
	ErrBadSecrets   = errors.New("admin and user secrets must be non-empty and distinct")
)

type Claims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

// Verifier checks HS256 tokens against one secret per role.
type Verifier struct {
	secrets map[Role][]byte
	parser  *jwt.Parser
}

func NewVerifier(adminSecret, userSecret string) (*Verifier, error) {
	if adminSecret == "" || userSecret == "" || adminSecret == userSecret {
		return nil, ErrBadSecrets
	}

	return &Verifier{
		secrets: map[Role][]byte{
			RoleAdmin: []byte(adminSecret),
			RoleUser:  []byte(userSecret),
		},
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}, nil
}

// Verify returns the role of a token whose signature matches the secret of the role it claims.
func (v *Verifier) Verify(token string) (Role, error) {
	const op = "auth.Verify"

	if token == "" {
		return "", fmt.Errorf("%s: %w", op, ErrMissingToken)
	}

	var claimed Claims
	if _, _, err := v.parser.ParseUnverified(token, &claimed); err != nil {
		return "", fmt.Errorf("%s: %w: %v", op, ErrInvalidToken, err)
	}

	secret, ok := v.secrets[claimed.Role]
	if !ok {
		return "", fmt.Errorf("%s: %w", op, ErrUnknownRole)
	}

	var claims Claims
	parsed, err := v.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", fmt.Errorf("%s: %w: %v", op, ErrInvalidToken, err)
	}
	if claims.Role != claimed.Role {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return claims.Role, nil
}

// NewToken signs an HS256 token carrying role. A zero ttl means no expiry.
func NewToken(secret string, role Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
