package holdem

import (
	"sync"
	"time"

	"github.com/idsulik/go-collections/v3/queue"
)

// sleepFunc is the injected sleep primitive behind inter-street
// pauses and the per-actor countdown; tests substitute one that
// returns immediately.
type sleepFunc func(d time.Duration)

func defaultSleep(d time.Duration) { time.Sleep(d) }

// scheduler runs staged transitions on a single dedicated goroutine,
// strictly after the act() call that scheduled them has returned to
// its caller. It is the hand's only suspension/resumption point other
// than the per-actor timer, and it is what makes "single-threaded,
// cooperatively scheduled" true despite Act being called concurrently
// from outside.
type scheduler struct {
	mu     sync.Mutex
	steps  *queue.Queue[func()]
	wake   chan struct{}
	done   chan struct{}
	closed bool
}

func newScheduler() *scheduler {
	s := &scheduler{
		steps: queue.New[func()](8),
		wake:  make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *scheduler) run() {
	for {
		select {
		case <-s.done:
			return
		case <-s.wake:
			for {
				step, ok := s.nextStep()
				if !ok {
					break
				}
				step()
			}
		}
	}
}

func (s *scheduler) nextStep() (func(), bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, false
	}
	return s.steps.Dequeue()
}

// schedule enqueues step to run on the scheduler goroutine. If the
// scheduler has been stopped, step is dropped: that is precisely the
// "post-destroy mutations are silently suppressed" rule.
func (s *scheduler) schedule(step func()) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.steps.Enqueue(step)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// drain blocks until every step queued so far has run. Tests use this
// to observe state deterministically despite the scheduler's single
// background goroutine.
func (s *scheduler) drain() {
	done := make(chan struct{})
	s.schedule(func() { close(done) })
	<-done
}

func (s *scheduler) stop() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()
	close(s.done)
}

// actorTimer drives the per-actor act-timeout described in the
// engine's timer driver. A monotonically increasing generation
// counter stands in for per-timer cancellation: start and cancel both
// bump it, and a tick that observes a stale generation just exits
// rather than firing.
type actorTimer struct {
	mu         sync.Mutex
	generation int
	sleep      sleepFunc
}

func newActorTimer(sleep sleepFunc) *actorTimer {
	if sleep == nil {
		sleep = defaultSleep
	}
	return &actorTimer{sleep: sleep}
}

// start begins a countdown of seconds one-second ticks, superseding
// any timer started previously. onExpire is delivered through sched
// so it runs on the hand's logical thread, never directly from the
// timer's own goroutine.
func (t *actorTimer) start(seconds int64, sched *scheduler, onExpire func()) {
	t.mu.Lock()
	t.generation++
	gen := t.generation
	t.mu.Unlock()

	if seconds <= 0 {
		return
	}

	go func() {
		remaining := seconds
		for remaining > 0 {
			t.sleep(time.Second)
			if !t.isCurrent(gen) {
				return
			}
			remaining--
		}
		sched.schedule(func() {
			if t.isCurrent(gen) {
				onExpire()
			}
		})
	}()
}

func (t *actorTimer) isCurrent(gen int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.generation == gen
}

// cancel invalidates the active timer, if any.
func (t *actorTimer) cancel() {
	t.mu.Lock()
	t.generation++
	t.mu.Unlock()
}
