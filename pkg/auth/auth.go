package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

var (
	ErrNoIdentity   = errors.New("identity is missing")
	ErrInvalidToken = errors.New("token is invalid")
)

type Config struct {
	Secret string        `envconfig:"JWT_SECRET" required:"true" json:"-"`
	TTL    time.Duration `envconfig:"JWT_TTL"`
}

type Identity struct {
	UserID int    `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

type Claims struct {
	Identity
	jwt.RegisteredClaims
}

type TokenManager struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

func NewTokenManager(cfg Config) *TokenManager {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenManager{
		key: []byte(cfg.Secret),
		ttl: ttl,
		now: time.Now,
	}
}

func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// Issue signs an HS256 token for the identity.
func (m *TokenManager) Issue(id Identity) (string, time.Time, error) {
	issuedAt := m.now()
	expiresAt := issuedAt.Add(m.ttl)
	claims := &Claims{
		Identity: id,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.key)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "token.SignedString")
	}
	return signed, expiresAt, nil
}

func (m *TokenManager) Parse(tokenStr string) (Identity, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return m.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}
	if claims.ExpiresAt == nil || m.now().After(claims.ExpiresAt.Time) {
		return Identity{}, ErrInvalidToken
	}
	return claims.Identity, nil
}

type identityKey struct{}

func SetAuthContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func GetIdentity(ctx context.Context) (Identity, error) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	if !ok {
		return Identity{}, ErrNoIdentity
	}
	return id, nil
}

func IsAdmin(ctx context.Context) bool {
	id, err := GetIdentity(ctx)
	return err == nil && id.IsAdmin()
}
