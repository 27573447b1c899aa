package config

import (
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		old, ok := os.LookupEnv(key)
		require.NoError(t, os.Unsetenv(key))
		if ok {
			t.Cleanup(func() { os.Setenv(key, old) }) //nolint:errcheck
		}
	}
}

func TestNewConfig_Options(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		wantLevel zapcore.Level
		wantTTL   time.Duration
		wantWrite time.Duration
	}{
		{
			name:      "options only",
			wantLevel: zapcore.ErrorLevel,
			wantTTL:   15 * time.Minute,
			wantWrite: time.Minute,
		},
		{
			name:      "environment overrides options",
			env:       map[string]string{"LOG_LEVEL": "warn", "JWT_TTL": "2h", "HTTP_WRITE": "5s"},
			wantLevel: zapcore.WarnLevel,
			wantTTL:   2 * time.Hour,
			wantWrite: 5 * time.Second,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			once = sync.Once{}
			cfg = nil
			t.Cleanup(func() {
				once = sync.Once{}
				cfg = nil
			})
			unsetenv(t, "LOG_LEVEL", "JWT_TTL", "HTTP_WRITE")
			t.Setenv("JWT_SECRET", "test")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			c := NewConfig(
				WithLogLevel(zapcore.ErrorLevel),
				WithJWTTTL(15*time.Minute),
				WithWriteTimeout(time.Minute),
			)
			require.Equal(t, tt.wantLevel, c.Log.LogLevel)
			require.Equal(t, tt.wantTTL, c.JWT.TTL)
			require.Equal(t, tt.wantWrite, c.Server.WriteTimeout)
			require.Equal(t, "test", c.JWT.Secret)
		})
	}
}
