package backend

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/atomicstack/gridmenu/internal/logging/events"
)

// Kind represents the type of job a worker ran.
type Kind int

const (
	KindGrant Kind = iota
	KindTally
)

func (k Kind) String() string {
	switch k {
	case KindGrant:
		return "grant"
	case KindTally:
		return "tally"
	default:
		return "unknown"
	}
}

var (
	ErrQueueFull = errors.New("backend: queue full")
	ErrStopped   = errors.New("backend: worker stopped")
)

// Job is deferred work submitted by a handler that must not block the event
// loop.
type Job struct {
	Kind Kind
	Run  func(ctx context.Context) (interface{}, error)
}

// Event conveys the result or error of a finished job.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// Worker runs submitted jobs one at a time on its own goroutine and publishes
// their results. Job starts are spaced at least interval apart so a burst of
// clicks does not turn into a burst of ledger writes.
type Worker struct {
	interval time.Duration
	next     time.Time // owned by the run goroutine

	ctx    context.Context
	cancel context.CancelFunc

	jobs   chan Job
	events chan Event
	wg     sync.WaitGroup
}

// NewWorker starts a worker with room for queue pending jobs. Successive jobs
// are spaced at least interval apart.
func NewWorker(interval time.Duration, queue int) *Worker {
	if queue <= 0 {
		queue = 16
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Worker{
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		jobs:     make(chan Job, queue),
		events:   make(chan Event, queue),
	}

	w.wg.Add(1)
	go w.run()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Submit queues job without blocking.
func (w *Worker) Submit(job Job) error {
	if job.Run == nil {
		return errors.New("backend: job without run function")
	}
	select {
	case <-w.ctx.Done():
		events.Backend.Rejected(job.Kind.String(), "stopped")
		return ErrStopped
	default:
	}
	select {
	case w.jobs <- job:
		events.Backend.Submit(job.Kind.String(), len(w.jobs))
		return nil
	default:
		events.Backend.Rejected(job.Kind.String(), "queue full")
		return ErrQueueFull
	}
}

// Events returns a channel of job results. It is closed once the worker has
// stopped.
func (w *Worker) Events() <-chan Event {
	return w.events
}

// Stop cancels the worker. Queued jobs that have not started are dropped;
// use Wait if a clean drain is required (e.g. in tests).
func (w *Worker) Stop() {
	w.cancel()
}

// Wait blocks until the worker goroutine has exited and the events channel
// is closed.
func (w *Worker) Wait() {
	w.wg.Wait()
}

func (w *Worker) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.ctx.Done():
			return
		case job := <-w.jobs:
			if !w.pace() {
				return
			}
			data, err := job.Run(w.ctx)
			events.Backend.Result(job.Kind.String(), err)
			select {
			case <-w.ctx.Done():
				return
			case w.events <- Event{Kind: job.Kind, Data: data, Err: err}:
			}
		}
	}
}

// pace blocks until the next job may start. It reports false if the worker
// was stopped while waiting.
func (w *Worker) pace() bool {
	if w.interval <= 0 {
		return true
	}
	if wait := time.Until(w.next); wait > 0 {
		timer := time.NewTimer(wait)
		defer timer.Stop()
		select {
		case <-w.ctx.Done():
			return false
		case <-timer.C:
		}
	}
	w.next = time.Now().Add(w.interval)
	return true
}
