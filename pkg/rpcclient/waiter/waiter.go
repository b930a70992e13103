/*
Package waiter provides transaction status awaiting functionality for the RPC
client. Submission calls return as soon as the node has the transaction, so a
caller interested in the final outcome polls the status endpoint until the
transaction leaves the Started state.
*/
package waiter

import (
	"context"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"

	"github.com/frol/nearlib/pkg/nearrpc/result"
	"github.com/frol/nearlib/pkg/util"
)

// DefaultPollRetryCount is a threshold for a number of subsequent failed
// attempts to get transaction status from the RPC server. If the status
// request fails DefaultPollRetryCount times in a row then the awaiting
// attempt is considered to be failed and an error is returned.
const DefaultPollRetryCount = 3

// DefaultPollInterval is the interval between subsequent status polls used
// when PollConfig doesn't specify one.
const DefaultPollInterval = time.Second

// finalResultCacheSize is the number of finalized transaction results kept
// around so that repeated waits on the same hash don't hit the network.
const finalResultCacheSize = 128

var (
	// ErrPollRetriesExceeded is returned when subsequent status polls failed
	// more than RetryCount times in a row.
	ErrPollRetriesExceeded = errors.New("poll retries exceeded")
	// ErrContextDone is returned when the context has been done in the middle
	// of the transaction awaiting process and no result was received yet.
	ErrContextDone = errors.New("waiter context done")
)

// RPCPollingBased is an interface that enables transaction awaiting
// functionality based on periodical transaction status polls.
type RPCPollingBased interface {
	// Context should return the RPC client context to be able to gracefully
	// shut down the awaiting process when the client itself goes down.
	Context() context.Context
	GetTransactionStatus(ctx context.Context, hash util.Uint256) (*result.TransactionResult, error)
}

// Waiter is a polling-based transaction awaiter. It's safe for concurrent
// use, finalized results are shared between waiting callers via an internal
// cache.
type Waiter struct {
	polling RPCPollingBased
	config  PollConfig
	results *lru.Cache
}

// PollConfig is a configuration for Waiter.
type PollConfig struct {
	// PollInterval is a time interval between subsequent polls. If not set,
	// DefaultPollInterval is used.
	PollInterval time.Duration
	// RetryCount is the number of subsequent failed status requests tolerated
	// before an error is returned from Wait.
	RetryCount int
}

// New creates a Waiter instance polling the given client. Zero config fields
// are replaced with defaults.
func New(polling RPCPollingBased, config PollConfig) *Waiter {
	if config.PollInterval <= 0 {
		config.PollInterval = DefaultPollInterval
	}
	if config.RetryCount <= 0 {
		config.RetryCount = DefaultPollRetryCount
	}
	cache, _ := lru.New(finalResultCacheSize) // Can't fail with positive size.
	return &Waiter{
		polling: polling,
		config:  config,
		results: cache,
	}
}

// WaitAfter is a convenience wrapper for submission calls returning a hash
// and an error. If err is not nil it's returned immediately, otherwise the
// transaction is waited for in a regular way.
func (w *Waiter) WaitAfter(ctx context.Context, h util.Uint256, err error) (*result.TransactionResult, error) {
	if err != nil {
		return nil, err
	}
	return w.Wait(ctx, h)
}

// Wait polls the transaction status until it leaves the Started state and
// returns the final result. A Failed status is a valid final result, not an
// error. Wait returns ErrPollRetriesExceeded when status requests keep
// failing and ErrContextDone when ctx (or the client context) is cancelled
// before the transaction is finalized.
func (w *Waiter) Wait(ctx context.Context, h util.Uint256) (*result.TransactionResult, error) {
	if res, ok := w.results.Get(h); ok {
		return res.(*result.TransactionResult), nil
	}

	var (
		failedAttempt int
		lastErr       error
	)
	timer := time.NewTicker(w.config.PollInterval)
	defer timer.Stop()
	for {
		select {
		case <-timer.C:
			res, err := w.polling.GetTransactionStatus(ctx, h)
			if err != nil {
				failedAttempt++
				lastErr = err
				if failedAttempt >= w.config.RetryCount {
					return nil, fmt.Errorf("%w: %v", ErrPollRetriesExceeded, lastErr)
				}
				continue
			}
			failedAttempt = 0
			if res.Status.Final() {
				w.results.Add(h, res)
				return res, nil
			}
		case <-w.polling.Context().Done():
			return nil, fmt.Errorf("%w: %v", ErrContextDone, w.polling.Context().Err())
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrContextDone, ctx.Err())
		}
	}
}
