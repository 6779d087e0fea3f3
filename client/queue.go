package client

import (
	"context"
	"sync"
	"time"
)

// DefaultDebounce is the delay between the last edit and its write.
const DefaultDebounce = 350 * time.Millisecond

// saveTimeout bounds one background write.
const saveTimeout = 10 * time.Second

// SaveReason classifies what triggered a queued save.
type SaveReason int

const (
	SaveCreate SaveReason = iota
	SavePosition
	SaveText
	SaveCollapse
)

// ShowsProgress reports whether the host should surface this save in the
// page chrome. Position nudges save silently; content writes show progress.
func (r SaveReason) ShowsProgress() bool {
	return r == SaveCreate || r == SaveText
}

// SaveFunc performs one write for a queue key. It must read the entity's
// live state at call time, not state captured when the edit was enqueued,
// so the newest edit always wins.
type SaveFunc func(ctx context.Context) error

// Queue coalesces rapid edits per key: each Enqueue cancels the pending
// timer for that key and starts a fresh one, so a burst of edits produces a
// single write carrying the final state.
type Queue struct {
	mu       sync.Mutex
	interval time.Duration
	timers   map[string]*time.Timer
	pending  map[string]queuedSave
	saving   map[string]bool
	visible  int
	notifier Notifier
	closed   bool
	wg       sync.WaitGroup
}

type queuedSave struct {
	fn     SaveFunc
	reason SaveReason
}

// NewQueue creates a debounce queue. A zero interval uses DefaultDebounce.
func NewQueue(interval time.Duration, notifier Notifier) *Queue {
	if interval <= 0 {
		interval = DefaultDebounce
	}
	if notifier == nil {
		notifier = defaultNotifier(nil)
	}
	return &Queue{
		interval: interval,
		timers:   map[string]*time.Timer{},
		pending:  map[string]queuedSave{},
		saving:   map[string]bool{},
		notifier: notifier,
	}
}

// Enqueue schedules a save for key, replacing any save already pending for
// it. The reason of the newest edit wins.
func (q *Queue) Enqueue(key string, reason SaveReason, fn SaveFunc) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}

	if timer, ok := q.timers[key]; ok {
		timer.Stop()
	}
	q.pending[key] = queuedSave{fn: fn, reason: reason}
	q.timers[key] = time.AfterFunc(q.interval, func() {
		q.fire(key)
	})
}

// Cancel drops any pending save for key without running it.
func (q *Queue) Cancel(key string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if timer, ok := q.timers[key]; ok {
		timer.Stop()
		delete(q.timers, key)
	}
	delete(q.pending, key)
}

// Pending reports whether a save is queued but not yet started for key.
func (q *Queue) Pending(key string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	_, ok := q.pending[key]
	return ok
}

// InFlight reports whether a save for key has started and not yet finished.
func (q *Queue) InFlight(key string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.saving[key]
}

// Saving reports whether any visible save is queued or in flight.
func (q *Queue) Saving() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.visible > 0 {
		return true
	}
	for _, s := range q.pending {
		if s.reason.ShowsProgress() {
			return true
		}
	}
	return false
}

// Flush runs every pending save immediately and waits for all in-flight
// saves to finish. Used on page navigation.
func (q *Queue) Flush() {
	q.mu.Lock()
	keys := make([]string, 0, len(q.pending))
	for key := range q.pending {
		keys = append(keys, key)
	}
	for _, key := range keys {
		if timer, ok := q.timers[key]; ok {
			timer.Stop()
			delete(q.timers, key)
		}
	}
	q.mu.Unlock()

	for _, key := range keys {
		q.fire(key)
	}
	q.wg.Wait()
}

// Close flushes pending work and stops accepting new saves.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.mu.Unlock()

	q.Flush()
}

func (q *Queue) fire(key string) {
	q.mu.Lock()
	save, ok := q.pending[key]
	if !ok {
		q.mu.Unlock()
		return
	}
	delete(q.pending, key)
	delete(q.timers, key)
	q.saving[key] = true
	if save.reason.ShowsProgress() {
		q.visible++
		if q.visible == 1 {
			q.notifier.SaveStateChanged(true)
		}
	}
	q.wg.Add(1)
	q.mu.Unlock()

	go func() {
		defer q.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()

		err := save.fn(ctx)

		q.mu.Lock()
		delete(q.saving, key)
		if save.reason.ShowsProgress() {
			q.visible--
			if q.visible == 0 {
				q.notifier.SaveStateChanged(false)
			}
		}
		q.mu.Unlock()

		if err != nil {
			q.notifier.Error(key, err)
		}
	}()
}
