package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueParse(t *testing.T) {
	t.Parallel()
	m := NewTokenManager(Config{Secret: "secret", TTL: time.Hour})
	want := Identity{UserID: 7, Email: "ali@bahria.edu.pk", Role: RoleStudent}

	token, expiresAt, err := m.Issue(want)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	got, err := m.Parse(token)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestTokenManager_Parse(t *testing.T) {
	t.Parallel()
	m := NewTokenManager(Config{Secret: "secret", TTL: time.Hour})
	token, _, err := m.Issue(Identity{UserID: 1, Role: RoleAdmin})
	require.NoError(t, err)

	expired := NewTokenManager(Config{Secret: "secret", TTL: time.Hour})
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, _, err := expired.Issue(Identity{UserID: 1, Role: RoleAdmin})
	require.NoError(t, err)

	tests := []struct {
		name  string
		m     *TokenManager
		token string
	}{
		{name: "wrong secret", m: NewTokenManager(Config{Secret: "other"}), token: token},
		{name: "garbage", m: m, token: "not-a-token"},
		{name: "expired", m: m, token: expiredToken},
		{name: "empty", m: m, token: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := tt.m.Parse(tt.token)
			require.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestAuthContext(t *testing.T) {
	t.Parallel()
	_, err := GetIdentity(context.Background())
	require.ErrorIs(t, err, ErrNoIdentity)
	require.False(t, IsAdmin(context.Background()))

	ctx := SetAuthContext(context.Background(), Identity{UserID: 1, Role: RoleAdmin})
	id, err := GetIdentity(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, id.UserID)
	require.True(t, IsAdmin(ctx))
}
