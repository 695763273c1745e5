// Package workers provides bounded pools for CPU-heavy work that must not
// starve request handling, such as password hashing.
package workers

//go:generate mockgen -source=interfaces.go -destination=../mock/workers_mock.go -package=mock

import "context"

// Pool runs jobs with bounded concurrency.
//
// Do blocks until a slot is free, runs job on the calling goroutine and
// releases the slot. If ctx is cancelled while waiting, job is not run and
// the context error is returned.
type Pool interface {
	Do(ctx context.Context, job func()) error
}
