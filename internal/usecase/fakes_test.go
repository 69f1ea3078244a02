package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/capsloque-org/ResumeBuilder/internal/model"
)

type manualClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*manualTimer
}

type manualTimer struct {
	clock   *manualClock
	at      time.Time
	f       func()
	stopped bool
	fired   bool
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{clock: c, at: c.now.Add(d), f: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves time forward and runs the timers that became due, on the
// calling goroutine.
func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	var due []*manualTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired && !t.at.After(c.now) {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()
	for _, t := range due {
		t.f()
	}
}

func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// journal records the order of replica writes across fakes.
type journal struct {
	mu      sync.Mutex
	entries []string
}

func (j *journal) add(e string) {
	if j == nil {
		return
	}
	j.mu.Lock()
	j.entries = append(j.entries, e)
	j.mu.Unlock()
}

func (j *journal) list() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]string(nil), j.entries...)
}

type fakeRemote struct {
	mu      sync.Mutex
	data    []byte
	loadErr error
	saveErr error
	saves   []model.SaveRequest
	loads   int
	log     *journal
}

func (r *fakeRemote) Load(context.Context) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loads++
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	if r.data == nil {
		return nil, ErrNotFound
	}
	return r.data, nil
}

func (r *fakeRemote) Save(_ context.Context, req model.SaveRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.log.add("remote")
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves = append(r.saves, req)
	return nil
}

func (r *fakeRemote) saved() []model.SaveRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.SaveRequest(nil), r.saves...)
}

type mapCache struct {
	mu     sync.Mutex
	values map[string]string
	err    error
	log    *journal
}

func newMapCache() *mapCache { return &mapCache{values: map[string]string{}} }

func (c *mapCache) Get(key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return "", false, c.err
	}
	v, ok := c.values[key]
	return v, ok, nil
}

func (c *mapCache) Set(key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.log.add("local:" + key)
	if c.err != nil {
		return c.err
	}
	c.values[key] = value
	return nil
}

func (c *mapCache) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	delete(c.values, key)
	return nil
}

var errOffline = errors.New("offline")
