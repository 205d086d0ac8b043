// Package scheduler serializes and paces every outbound OpenAI call so the
// process never exceeds the per-minute or per-day quota of the upstream plan.
package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrQuotaExceeded is returned for every request still queued when the daily
// ceiling is reached. It is terminal until the next local midnight.
var ErrQuotaExceeded = errors.New("daily request quota exceeded")

// QuotaError carries the moment the daily window resets so handlers can fill
// a Retry-After header. errors.Is(err, ErrQuotaExceeded) matches it.
type QuotaError struct {
	ResetAt time.Time
}

func (e *QuotaError) Error() string {
	return "daily request quota exceeded, resets at " + e.ResetAt.Format(time.RFC3339)
}

func (e *QuotaError) Is(target error) bool {
	return target == ErrQuotaExceeded
}

// Task is one opaque unit of work. The scheduler never looks at the result;
// it only paces when the call starts.
type Task func(ctx context.Context) (any, error)

type taskResult struct {
	value any
	err   error
}

type pendingRequest struct {
	ctx  context.Context
	task Task
	done chan taskResult
}

// Scheduler admits queued tasks one at a time, in submission order, keeping
// the gap between two dispatches at or above minInterval and the number of
// dispatches per calendar day at or below dailyLimit. One instance exists per
// upstream resource and is shared by every caller.
type Scheduler struct {
	minInterval time.Duration
	dailyLimit  int
	taskTimeout time.Duration

	mu             sync.Mutex
	queue          []*pendingRequest
	processing     bool
	dailyCount     int
	resetAt        time.Time
	lastDispatchAt time.Time

	now func() time.Time
}

// Stats is a point-in-time snapshot of the quota bookkeeping.
type Stats struct {
	RequestsPerDay int           `json:"requestsPerDay"`
	DailyCount     int           `json:"dailyCount"`
	Remaining      int           `json:"remaining"`
	ResetAt        time.Time     `json:"resetAt"`
	QueueLength    int           `json:"queueLength"`
	MinInterval    time.Duration `json:"minInterval"`
}

// New builds a scheduler for a plan of requestsPerMinute / requestsPerDay.
// The dispatch interval is 60000ms/RPM with a 10% safety margin, so RPM=60
// yields 1100ms between dispatch starts. taskTimeout bounds how long one
// dispatched task may run before its context is cancelled; 0 disables the
// bound.
func New(requestsPerMinute, requestsPerDay int, taskTimeout time.Duration) *Scheduler {
	interval := time.Duration(60000.0 / float64(requestsPerMinute) * 1.1 * float64(time.Millisecond))

	s := &Scheduler{
		minInterval: interval,
		dailyLimit:  requestsPerDay,
		taskTimeout: taskTimeout,
		now:         time.Now,
	}
	s.resetAt = nextMidnight(s.now())

	return s
}

// Submit queues the task and blocks until it ran or was refused. Results and
// task errors come back untouched; a task queued behind a daily-quota breach
// fails with ErrQuotaExceeded. Tasks are dispatched strictly in submission
// order, one at a time.
//
// If ctx is cancelled while the task is still queued, Submit returns the
// context error and the task is skipped without consuming quota.
func (s *Scheduler) Submit(ctx context.Context, task Task) (any, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	p := &pendingRequest{
		ctx:  ctx,
		task: task,
		done: make(chan taskResult, 1),
	}

	s.mu.Lock()
	s.queue = append(s.queue, p)
	if !s.processing {
		s.processing = true
		go s.processQueue()
	}
	s.mu.Unlock()

	res := <-p.done
	return res.value, res.err
}

// Stats reports the current counters. It applies the midnight reset first so
// the snapshot never shows a stale exhausted window.
func (s *Scheduler) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.applyResetLocked(s.now())

	remaining := s.dailyLimit - s.dailyCount
	if remaining < 0 {
		remaining = 0
	}

	return Stats{
		RequestsPerDay: s.dailyLimit,
		DailyCount:     s.dailyCount,
		Remaining:      remaining,
		ResetAt:        s.resetAt,
		QueueLength:    len(s.queue),
		MinInterval:    s.minInterval,
	}
}

// processQueue is the single dispatch loop. Exactly one runs at a time,
// guarded by the processing flag; it re-reads the queue every iteration so
// submissions arriving mid-loop are picked up without a second loop.
func (s *Scheduler) processQueue() {
	for {
		s.mu.Lock()

		if len(s.queue) == 0 {
			s.processing = false
			s.mu.Unlock()
			return
		}

		now := s.now()
		s.applyResetLocked(now)

		// Daily ceiling reached: refuse everything still queued in one pass.
		// Nothing queued behind the breach can run before midnight, so there
		// is no point holding the items.
		if s.dailyCount >= s.dailyLimit {
			drained := s.queue
			s.queue = nil
			s.processing = false
			quotaErr := &QuotaError{ResetAt: s.resetAt}
			s.mu.Unlock()

			for _, p := range drained {
				p.done <- taskResult{err: quotaErr}
			}
			return
		}

		p := s.queue[0]
		s.queue = s.queue[1:]
		wait := s.minInterval - now.Sub(s.lastDispatchAt)
		s.mu.Unlock()

		// Caller already gave up while queued; skip without spending quota.
		if err := p.ctx.Err(); err != nil {
			p.done <- taskResult{err: err}
			continue
		}

		// The pacing sleep blocks the whole loop on purpose: the gap is a
		// property of the upstream resource, not of one caller.
		if wait > 0 {
			time.Sleep(wait)
		}

		s.mu.Lock()
		s.lastDispatchAt = s.now()
		s.dailyCount++
		s.mu.Unlock()

		taskCtx := p.ctx
		var cancel context.CancelFunc
		if s.taskTimeout > 0 {
			taskCtx, cancel = context.WithTimeout(taskCtx, s.taskTimeout)
		}

		value, err := p.task(taskCtx)
		if cancel != nil {
			cancel()
		}

		p.done <- taskResult{value: value, err: err}
	}
}

// applyResetLocked rolls the daily window forward when the current time has
// passed the reset boundary. Caller must hold s.mu.
func (s *Scheduler) applyResetLocked(now time.Time) {
	if now.After(s.resetAt) {
		s.dailyCount = 0
		s.resetAt = nextMidnight(now)
	}
}

func nextMidnight(now time.Time) time.Time {
	year, month, day := now.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
}
