package database

import (
	"context"
	"strings"
	"time"

	coreport "github.com/astrodash/astro-api/internal/domain/port/core"
)

// RetryConfig bounds how often a failed ledger write is reattempted.
type RetryConfig struct {
	MaxRetries    int
	RetryInterval time.Duration
	MaxInterval   time.Duration
	JitterFactor  float64
}

// DefaultRetryConfig suits wallet row-lock contention: short first wait,
// capped at two seconds so API callers are not held long.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    5,
		RetryInterval: 100 * time.Millisecond,
		MaxInterval:   2 * time.Second,
		JitterFactor:  0.2,
	}
}

// RetryOnTransientError reruns operation until it succeeds, fails with a
// non-transient error, or the attempt budget is spent. Deadlocks between
// concurrent wallet debits are the expected caller here.
func RetryOnTransientError(
	ctx context.Context,
	config RetryConfig,
	operation func() error,
	logger coreport.Logger,
) error {
	var err error

	for attempt := 0; attempt < config.MaxRetries; attempt++ {
		if err = operation(); err == nil {
			return nil
		}
		if !isTransientError(err) {
			return err
		}

		wait := backoffWithJitter(attempt, config)
		logger.Warn("Transient database error, retrying operation", map[string]any{
			"attempt":     attempt + 1,
			"max_retries": config.MaxRetries,
			"error":       err.Error(),
			"retry_after": wait.String(),
		})

		select {
		case <-time.After(wait):
		case <-ctx.Done():
			logger.Warn("Retry abandoned, context done", map[string]any{
				"attempts": attempt + 1,
				"error":    ctx.Err().Error(),
			})
			return ctx.Err()
		}
	}

	logger.Error("All retry attempts failed", map[string]any{
		"max_retries": config.MaxRetries,
		"error":       err.Error(),
	})
	return err
}

// backoffWithJitter doubles the base interval per attempt, caps it at
// MaxInterval, then spreads callers out so colliding debits do not all
// retry on the same tick.
func backoffWithJitter(attempt int, config RetryConfig) time.Duration {
	wait := config.RetryInterval * (1 << uint(attempt))
	if wait > config.MaxInterval {
		wait = config.MaxInterval
	}
	if config.JitterFactor > 0 {
		spread := float64(time.Now().UnixNano()%100) / 100.0
		wait += time.Duration(float64(wait) * config.JitterFactor * spread)
	}
	return wait
}

// isTransientError matches the failure modes worth retrying: lock and
// serialization conflicts from FOR UPDATE contention, plus dropped
// connections. Constraint violations and bad input never match.
func isTransientError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{
		"deadlock",
		"serialization",
		"lock timeout",
		"timeout",
		"too many connections",
		"connection reset",
		"connection refused",
		"server closed",
		"broken pipe",
		"eof",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
