// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestPool_RunsJob(t *testing.T) {
	p := NewPool(2)

	ran := false
	if err := p.Do(context.Background(), func() { ran = true }); err != nil {
		t.Fatalf("Do returned error: %v", err)
	}
	if !ran {
		t.Fatal("job was not run")
	}
}

func TestPool_BoundsConcurrency(t *testing.T) {
	const size = 3
	p := NewPool(size)

	var current, peak atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = p.Do(context.Background(), func() {
				n := current.Add(1)
				for {
					old := peak.Load()
					if n <= old || peak.CompareAndSwap(old, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				current.Add(-1)
			})
		}()
	}
	wg.Wait()

	if got := peak.Load(); got > size {
		t.Fatalf("peak concurrency = %d, want <= %d", got, size)
	}
}

func TestPool_CancelledWhileWaiting(t *testing.T) {
	p := NewPool(1)

	release := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_ = p.Do(context.Background(), func() {
			close(started)
			<-release
		})
	}()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	ran := false
	err := p.Do(ctx, func() { ran = true })
	close(release)

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want context.DeadlineExceeded", err)
	}
	if ran {
		t.Fatal("job must not run after cancellation")
	}
}

func TestNewPool_NonPositiveSize(t *testing.T) {
	p := NewPool(0)
	if err := p.Do(context.Background(), func() {}); err != nil {
		t.Fatalf("Do returned error: %v", err)
	}
}
