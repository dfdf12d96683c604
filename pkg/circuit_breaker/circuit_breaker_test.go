package circuit_breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/bookmart/admin-service/pkg/circuit_breaker"
	"github.com/stretchr/testify/require"
)

func Test_circuitBreaker_Call(t *testing.T) {
	failingService := func() error {
		return errors.New("service error")
	}
	successfulService := func() error {
		return nil
	}

	t.Run("opens after threshold and recovers", func(t *testing.T) {
		cb := circuit_breaker.New(3, 50*time.Millisecond)

		for i := 0; i < 3; i++ {
			require.Error(t, cb.Call(failingService))
		}
		// tripped: calls are rejected without running the service
		require.ErrorIs(t, cb.Call(successfulService), circuit_breaker.ErrOpenCB)

		time.Sleep(60 * time.Millisecond)

		// half-open probe succeeds, breaker closes again
		require.NoError(t, cb.Call(successfulService))
		require.NoError(t, cb.Call(successfulService))
	})

	t.Run("failed probe reopens", func(t *testing.T) {
		cb := circuit_breaker.New(1, 50*time.Millisecond)

		require.Error(t, cb.Call(failingService))
		require.ErrorIs(t, cb.Call(successfulService), circuit_breaker.ErrOpenCB)

		time.Sleep(60 * time.Millisecond)

		require.Error(t, cb.Call(failingService))
		require.ErrorIs(t, cb.Call(successfulService), circuit_breaker.ErrOpenCB)
	})

	t.Run("success resets failure streak", func(t *testing.T) {
		cb := circuit_breaker.New(2, time.Second)

		require.Error(t, cb.Call(failingService))
		require.NoError(t, cb.Call(successfulService))
		require.Error(t, cb.Call(failingService))
		// streak was broken, still closed
		require.NoError(t, cb.Call(successfulService))
	})
}
