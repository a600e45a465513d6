package dashboard

import (
	"sync"
	"time"
)

// DisplayWindow is how long a successful transaction stays on the dashboard.
const DisplayWindow = 10 * time.Second

type LastTransaction struct {
	Kind        string    `json:"kind"`
	Hash        string    `json:"hash"`
	Timestamp   time.Time `json:"timestamp"`
	ExplorerURL string    `json:"explorerUrl,omitempty"`
}

type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d. time.AfterFunc satisfies it.
type Scheduler func(d time.Duration, f func()) Timer

func afterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

type TrackerOption func(*Tracker)

func WithScheduler(s Scheduler) TrackerOption {
	return func(t *Tracker) {
		t.schedule = s
	}
}

func WithWindow(d time.Duration) TrackerOption {
	return func(t *Tracker) {
		t.window = d
	}
}

// Tracker holds the last successful transaction and clears it once the
// display window has passed. Setting a new record replaces the pending clear.
type Tracker struct {
	schedule Scheduler
	window   time.Duration

	mu         sync.Mutex
	current    *LastTransaction
	timer      Timer
	generation uint64
}

func NewTracker(opts ...TrackerOption) *Tracker {
	t := &Tracker{
		schedule: afterFunc,
		window:   DisplayWindow,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tracker) Set(tx LastTransaction) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
	}

	t.generation++
	generation := t.generation
	t.current = &tx
	t.timer = t.schedule(t.window, func() {
		t.expire(generation)
	})
}

// a timer that fired while being replaced must not clear the newer record
func (t *Tracker) expire(generation uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if generation != t.generation {
		return
	}
	t.current = nil
	t.timer = nil
}

// Current returns a copy of the displayed transaction, if any.
func (t *Tracker) Current() (LastTransaction, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.current == nil {
		return LastTransaction{}, false
	}
	return *t.current, true
}

// Close stops the pending clear. The record stays readable.
func (t *Tracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.generation++
}
