package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func waitForQueueLength(t *testing.T, s *Scheduler, want int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		s.mu.Lock()
		got := len(s.queue)
		s.mu.Unlock()
		if got == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("queue never reached length %d", want)
}

func TestNew_MinIntervalDerivation(t *testing.T) {
	t.Parallel()

	s := New(60, 100, 0)
	if s.minInterval != 1100*time.Millisecond {
		t.Fatalf("expected 1100ms interval for RPM=60, got %s", s.minInterval)
	}
}

func TestSubmit_PacingBetweenDispatches(t *testing.T) {
	t.Parallel()

	// RPM=600 gives a 110ms dispatch interval
	s := New(600, 100, 0)

	const n = 3
	var mu sync.Mutex
	var starts []time.Time

	begin := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Submit(context.Background(), func(ctx context.Context) (any, error) {
				mu.Lock()
				starts = append(starts, time.Now())
				mu.Unlock()
				return nil, nil
			})
			if err != nil {
				t.Errorf("unexpected submit error: %v", err)
			}
		}()
	}
	wg.Wait()

	if len(starts) != n {
		t.Fatalf("expected %d dispatches, got %d", n, len(starts))
	}

	// Dispatch starts are recorded slightly after the interval bookkeeping,
	// so allow a small tolerance on the per-gap check.
	const tolerance = 20 * time.Millisecond
	for i := 1; i < len(starts); i++ {
		gap := starts[i].Sub(starts[i-1])
		if gap < s.minInterval-tolerance {
			t.Fatalf("gap %d was %s, want >= %s", i, gap, s.minInterval)
		}
	}

	if elapsed := time.Since(begin); elapsed < time.Duration(n-1)*s.minInterval-tolerance {
		t.Fatalf("total wall time %s too short for %d paced dispatches", elapsed, n)
	}
}

func TestSubmit_DailyCeilingDrainsWholeQueue(t *testing.T) {
	t.Parallel()

	// RPD=1: the first dispatch exhausts the day
	s := New(60000, 1, 0)

	started := make(chan struct{})
	release := make(chan struct{})
	firstDone := make(chan error, 1)
	go func() {
		_, err := s.Submit(context.Background(), func(ctx context.Context) (any, error) {
			close(started)
			<-release
			return "first", nil
		})
		firstDone <- err
	}()
	<-started

	// Queue two more behind the in-flight task
	queuedErrs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, err := s.Submit(context.Background(), func(ctx context.Context) (any, error) {
				return nil, nil
			})
			queuedErrs <- err
		}()
	}
	waitForQueueLength(t, s, 2)

	close(release)

	if err := <-firstDone; err != nil {
		t.Fatalf("first task should succeed, got %v", err)
	}

	// Every item still queued when the ceiling was hit fails together
	for i := 0; i < 2; i++ {
		err := <-queuedErrs
		if !errors.Is(err, ErrQuotaExceeded) {
			t.Fatalf("queued item %d: expected ErrQuotaExceeded, got %v", i, err)
		}
		var quotaErr *QuotaError
		if !errors.As(err, &quotaErr) {
			t.Fatalf("queued item %d: expected *QuotaError, got %T", i, err)
		}
		if !quotaErr.ResetAt.After(time.Now()) {
			t.Fatalf("quota error reset time should be in the future, got %s", quotaErr.ResetAt)
		}
	}

	stats := s.Stats()
	if stats.DailyCount != 1 {
		t.Fatalf("expected dailyCount 1, got %d", stats.DailyCount)
	}
	if stats.Remaining != 0 {
		t.Fatalf("expected remaining 0, got %d", stats.Remaining)
	}
}

func TestSubmit_CounterResetsAfterMidnightBoundary(t *testing.T) {
	t.Parallel()

	s := New(60000, 3, 0)

	// Simulate an exhausted window whose boundary already passed
	s.mu.Lock()
	s.dailyCount = s.dailyLimit
	s.resetAt = time.Now().Add(-time.Second)
	s.mu.Unlock()

	value, err := s.Submit(context.Background(), func(ctx context.Context) (any, error) {
		return "fresh", nil
	})
	if err != nil {
		t.Fatalf("submission after reset boundary should succeed, got %v", err)
	}
	if value != "fresh" {
		t.Fatalf("unexpected value %v", value)
	}

	stats := s.Stats()
	if stats.DailyCount != 1 {
		t.Fatalf("counter should restart at 0 and count the new dispatch, got %d", stats.DailyCount)
	}
	if !stats.ResetAt.After(time.Now()) {
		t.Fatalf("resetAt should have advanced past now, got %s", stats.ResetAt)
	}
}

func TestSubmit_FIFOOrderUnderUnevenLatency(t *testing.T) {
	t.Parallel()

	s := New(60000, 100, 0)

	started := make(chan struct{})
	var mu sync.Mutex
	var order []int

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		// Deliberately the slowest task
		s.Submit(context.Background(), func(ctx context.Context) (any, error) {
			close(started)
			time.Sleep(50 * time.Millisecond)
			mu.Lock()
			order = append(order, 1)
			mu.Unlock()
			return 1, nil
		})
	}()

	<-started
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.Submit(context.Background(), func(ctx context.Context) (any, error) {
			mu.Lock()
			order = append(order, 2)
			mu.Unlock()
			return 2, nil
		})
	}()
	wg.Wait()

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("expected completion order [1 2], got %v", order)
	}
}

func TestSubmit_TaskErrorPassesThroughUntouched(t *testing.T) {
	t.Parallel()

	s := New(60000, 100, 0)

	upstreamErr := errors.New("upstream exploded")
	_, err := s.Submit(context.Background(), func(ctx context.Context) (any, error) {
		return nil, upstreamErr
	})

	if !errors.Is(err, upstreamErr) {
		t.Fatalf("expected the task's own error, got %v", err)
	}
	if errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("task error must not be wrapped as a quota error")
	}
}

func TestSubmit_CancelledWhileQueuedSkipsQuota(t *testing.T) {
	t.Parallel()

	s := New(60000, 100, 0)

	started := make(chan struct{})
	release := make(chan struct{})
	blockerDone := make(chan struct{})
	go func() {
		defer close(blockerDone)
		s.Submit(context.Background(), func(ctx context.Context) (any, error) {
			close(started)
			<-release
			return nil, nil
		})
	}()
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	queuedErr := make(chan error, 1)
	go func() {
		_, err := s.Submit(ctx, func(ctx context.Context) (any, error) {
			return nil, nil
		})
		queuedErr <- err
	}()
	waitForQueueLength(t, s, 1)

	cancel()
	close(release)
	<-blockerDone

	if err := <-queuedErr; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	if stats := s.Stats(); stats.DailyCount != 1 {
		t.Fatalf("cancelled item must not consume quota, dailyCount=%d", stats.DailyCount)
	}
}

func TestStats_Snapshot(t *testing.T) {
	t.Parallel()

	s := New(60, 100, 0)

	for i := 0; i < 2; i++ {
		s.mu.Lock()
		s.dailyCount++
		s.mu.Unlock()
	}

	stats := s.Stats()
	if stats.RequestsPerDay != 100 || stats.DailyCount != 2 || stats.Remaining != 98 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.MinInterval != 1100*time.Millisecond {
		t.Fatalf("expected minInterval 1100ms, got %s", stats.MinInterval)
	}
}
