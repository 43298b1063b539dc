package session

import (
	"context"
	"strings"
	"testing"
	"time"

	apperrors "go-gin-stream-events/pkg/app_errors"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-test-secret-test-secret"

func setupManager(t *testing.T, opts ...Option) (Manager, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewManager(rdb, testSecret, time.Hour, opts...), mr
}

func TestManager_IssueAndResolve(t *testing.T) {
	ctx := context.Background()
	m, mr := setupManager(t)

	token, err := m.Issue(ctx, 42)
	require.NoError(t, err)
	assert.NotEmpty(t, token.Value)
	assert.NotEmpty(t, token.SessionID)
	assert.True(t, mr.Exists("session:"+token.SessionID))
	assert.Equal(t, time.Hour, mr.TTL("session:"+token.SessionID))

	sess, err := m.Resolve(ctx, token.Value)
	require.NoError(t, err)
	assert.Equal(t, 42, sess.AccountID)
	assert.Equal(t, token.SessionID, sess.ID)
}

func TestManager_Revoke(t *testing.T) {
	ctx := context.Background()
	m, _ := setupManager(t)

	token, err := m.Issue(ctx, 7)
	require.NoError(t, err)

	require.NoError(t, m.Revoke(ctx, token.SessionID))

	_, err = m.Resolve(ctx, token.Value)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestManager_ExpiredSession(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	m, mr := setupManager(t, WithClock(func() time.Time { return now }))

	token, err := m.Issue(ctx, 7)
	require.NoError(t, err)

	mr.FastForward(2 * time.Hour)
	now = now.Add(2 * time.Hour)

	_, err = m.Resolve(ctx, token.Value)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestManager_RejectsForeignTokens(t *testing.T) {
	ctx := context.Background()
	m, _ := setupManager(t)

	t.Run("Garbage", func(t *testing.T) {
		_, err := m.Resolve(ctx, "not-a-token")
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Subject:   "1",
			ID:        "abc",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
		require.NoError(t, err)

		_, err = m.Resolve(ctx, signed)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("UnsignedAlgNone", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Subject:   "1",
			ID:        "abc",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = m.Resolve(ctx, signed)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("TamperedPayload", func(t *testing.T) {
		token, err := m.Issue(ctx, 1)
		require.NoError(t, err)
		parts := strings.Split(token.Value, ".")
		require.Len(t, parts, 3)

		other, err := m.Issue(ctx, 2)
		require.NoError(t, err)
		otherParts := strings.Split(other.Value, ".")

		forged := parts[0] + "." + otherParts[1] + "." + parts[2]
		_, err = m.Resolve(ctx, forged)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}

func TestManager_SubjectMismatch(t *testing.T) {
	ctx := context.Background()
	m, mr := setupManager(t)

	token, err := m.Issue(ctx, 5)
	require.NoError(t, err)
	require.NoError(t, mr.Set("session:"+token.SessionID, "6"))

	_, err = m.Resolve(ctx, token.Value)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
