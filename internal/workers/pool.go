// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"
)

type semaphorePool struct {
	sem *semaphore.Weighted
}

// NewPool returns a Pool that runs at most size jobs at once.
// A size below 1 is treated as 1.
func NewPool(size int) Pool {
	if size < 1 {
		size = 1
	}

	return &semaphorePool{sem: semaphore.NewWeighted(int64(size))}
}

func (p *semaphorePool) Do(ctx context.Context, job func()) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("waiting for worker: %w", err)
	}
	defer p.sem.Release(1)

	job()
	return nil
}
