// Package session issues signed session tokens and tracks live sessions in Redis
// so that logout takes effect before the token expires.
package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	apperrors "go-gin-stream-events/pkg/app_errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

type Token struct {
	Value     string    `json:"token"`
	SessionID string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Session struct {
	ID        string
	AccountID int
}

type Manager interface {
	Issue(ctx context.Context, accountID int) (*Token, error)
	Resolve(ctx context.Context, token string) (*Session, error)
	Revoke(ctx context.Context, sessionID string) error
}

type ManagerImpl struct {
	rdb    *redis.Client
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type Option func(*ManagerImpl)

// WithClock 測試用，替換時間來源
func WithClock(now func() time.Time) Option {
	return func(m *ManagerImpl) { m.now = now }
}

func NewManager(rdb *redis.Client, secret string, ttl time.Duration, opts ...Option) Manager {
	m := &ManagerImpl{
		rdb:    rdb,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func sessionKey(id string) string {
	return keyPrefix + id
}

func (m *ManagerImpl) Issue(ctx context.Context, accountID int) (*Token, error) {
	now := m.now()
	sessionID := uuid.NewString()
	expiresAt := now.Add(m.ttl)

	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(accountID),
		ID:        sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	if err := m.rdb.Set(ctx, sessionKey(sessionID), accountID, m.ttl).Err(); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return &Token{Value: signed, SessionID: sessionID, ExpiresAt: expiresAt}, nil
}

// Resolve 驗證簽章與期限，並確認 session 仍存在於 Redis
func (m *ManagerImpl) Resolve(ctx context.Context, token string) (*Session, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(t *jwt.Token) (interface{}, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err)
	}

	accountID, err := strconv.Atoi(claims.Subject)
	if err != nil || claims.ID == "" {
		return nil, fmt.Errorf("%w: malformed claims", apperrors.ErrUnauthorized)
	}

	stored, err := m.rdb.Get(ctx, sessionKey(claims.ID)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: session revoked or expired", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if stored != accountID {
		return nil, fmt.Errorf("%w: session subject mismatch", apperrors.ErrUnauthorized)
	}

	return &Session{ID: claims.ID, AccountID: accountID}, nil
}

func (m *ManagerImpl) Revoke(ctx context.Context, sessionID string) error {
	if err := m.rdb.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}
