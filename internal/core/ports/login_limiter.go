package ports

import "context"

// LoginLimiter throttles repeated failed logins per username. Implementations
// fail open: an unreachable backend must not lock every account out.
type LoginLimiter interface {
	TooManyFailures(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}
