package interfaces

import (
	"context"
	"errors"
)

// ErrOperationInFlight is returned by Acquire while another lifecycle
// operation holds the guard for the same request.
var ErrOperationInFlight = errors.New("lifecycle operation already in flight for this request")

// IOperationGuard is the per-request single-flight lock taken around accept
// and reject. It makes concurrent invocations on the same request fail fast
// instead of interleaving writes; it is not a cross-invocation ordering
// guarantee (two accepts on different requests never contend).

type IOperationGuard interface {
	// Acquire takes the guard for requestID and returns an opaque token.
	// Returns ErrOperationInFlight when the guard is already held.
	Acquire(ctx context.Context, requestID string) (token string, err error)
	// Release frees the guard. Releasing with a stale token is a no-op.
	Release(ctx context.Context, requestID, token string) error
}
