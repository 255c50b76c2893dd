package limiter

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/olusolaa/cfn-stack-sync/internal/core/ports"
)

const (
	DefaultRequestsPerSecond = 5
	MinRequestsPerSecond     = 1
	MaxRequestsPerSecond     = 100
)

// Limiter spaces out AWS API calls made by a single provider.
type Limiter struct {
	limiter *rate.Limiter
	rps     int
}

// New builds a Limiter allowing rps requests per second. Values outside
// the accepted range fall back to DefaultRequestsPerSecond.
func New(rps int, logger ports.Logger) *Limiter {
	limitValue := DefaultRequestsPerSecond
	switch {
	case rps >= MinRequestsPerSecond && rps <= MaxRequestsPerSecond:
		limitValue = rps
	case rps != 0 && logger != nil:
		logger.Warnf(context.Background(), "Invalid AWS API RPS configured (%d), using default %d RPS. Valid range: %d-%d.",
			rps, DefaultRequestsPerSecond, MinRequestsPerSecond, MaxRequestsPerSecond)
	}

	if logger != nil {
		logger.Debugf(context.Background(), "Initializing AWS API rate limiter: %d RPS", limitValue)
	}

	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(limitValue), limitValue),
		rps:     limitValue,
	}
}

// RequestsPerSecond reports the rate in effect.
func (l *Limiter) RequestsPerSecond() int {
	return l.rps
}

func (l *Limiter) Wait(ctx context.Context, logger ports.Logger) error {
	if err := l.limiter.Wait(ctx); err != nil {
		if ctx.Err() == nil && logger != nil {
			logger.Warnf(ctx, "Error waiting for AWS API rate limiter: %v", err)
		}
		return err
	}
	return nil
}
