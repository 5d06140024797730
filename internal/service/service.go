// Package service fetches score data. Live talks to the remote HTTP
// endpoint; the remaining fetchers stand in for it in demos and tests.
package service

//go:generate mockgen -destination=mocks/fetcher.go -package=mocks . Fetcher

import (
	"context"
	"time"

	"github.com/agbru/scorering/internal/score"
)

// Fetcher retrieves one score. Implementations return a NetworkError or a
// ServerError on failure, or the context error if ctx ends first.
type Fetcher interface {
	Fetch(ctx context.Context) (score.Data, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context) (score.Data, error)

// Fetch calls f(ctx).
func (f FetcherFunc) Fetch(ctx context.Context) (score.Data, error) { return f(ctx) }

// StubData is the payload returned by Stub.
var StubData = score.Data{Score: 578, MinScore: 0, MaxScore: 700}

// Demo delays used by the delayed sources.
const (
	StubDelay    = 2300 * time.Millisecond
	FailingDelay = 1200 * time.Millisecond
)

// Stub returns StubData immediately.
func Stub() Fetcher {
	return FetcherFunc(func(context.Context) (score.Data, error) {
		return StubData, nil
	})
}

// Failing always returns a NetworkError.
func Failing() Fetcher {
	return FetcherFunc(func(context.Context) (score.Data, error) {
		return score.Data{}, NetworkError{}
	})
}

// Never blocks until ctx is done, leaving the caller in its loading state.
// It then fails with a NetworkError wrapping ctx.Err().
func Never() Fetcher {
	return FetcherFunc(func(ctx context.Context) (score.Data, error) {
		<-ctx.Done()
		return score.Data{}, NetworkError{Cause: ctx.Err()}
	})
}

// Delayed waits d before delegating to f.
func Delayed(f Fetcher, d time.Duration) Fetcher {
	return FetcherFunc(func(ctx context.Context) (score.Data, error) {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return score.Data{}, NetworkError{Cause: ctx.Err()}
		case <-timer.C:
		}
		return f.Fetch(ctx)
	})
}
