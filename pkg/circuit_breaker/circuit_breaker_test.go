package circuit_breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Astemirdum/lms-service/pkg/circuit_breaker"
	"github.com/stretchr/testify/require"
)

func Test_circuitBreaker_Call(t *testing.T) {
	t.Parallel()
	successfulService := func() error { return nil }
	failingService := func() error { return errors.New("service error") }

	cb := circuit_breaker.New(10, 50*time.Millisecond, 0.3, 2)
	for i := 0; i < 20; i++ {
		require.NoError(t, cb.Call(successfulService))
	}
	require.Equal(t, circuit_breaker.Closed, cb.State())

	for i := 0; i < 3; i++ {
		require.Error(t, cb.Call(failingService))
	}
	require.Equal(t, circuit_breaker.Open, cb.State())
	require.ErrorIs(t, cb.Call(successfulService), circuit_breaker.ErrOpenCB)

	// half-open trial call fails and opens again
	time.Sleep(80 * time.Millisecond)
	require.Error(t, cb.Call(failingService))
	require.Equal(t, circuit_breaker.Open, cb.State())

	// two successful trial calls close it
	time.Sleep(80 * time.Millisecond)
	require.NoError(t, cb.Call(successfulService))
	require.Equal(t, circuit_breaker.HalfOpen, cb.State())
	require.NoError(t, cb.Call(successfulService))
	require.Equal(t, circuit_breaker.Closed, cb.State())
}

func Test_circuitBreaker_Reset(t *testing.T) {
	t.Parallel()
	cb := circuit_breaker.New(2, time.Hour, 0.5, 1)
	require.Error(t, cb.Call(func() error { return errors.New("boom") }))
	require.Equal(t, circuit_breaker.Open, cb.State())

	cb.Reset()
	require.Equal(t, circuit_breaker.Closed, cb.State())
	require.NoError(t, cb.Call(func() error { return nil }))
}
