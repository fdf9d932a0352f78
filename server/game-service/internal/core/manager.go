package core

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Loader fetches a match that is not held in memory. It returns ErrNotFound
// for unknown ids.
type Loader func(ctx context.Context, id string) (*Match, error)

// UpdateFunc computes the next state of a match from the current snapshot.
// Returning an error discards the change.
type UpdateFunc func(cur *Match) (*Match, error)

type entry struct {
	// single writer slot; holding it is the per-match lock
	sem        chan struct{}
	snap       atomic.Pointer[Match]
	lastActive atomic.Int64
	evicted    bool
}

func newEntry(m *Match) *entry {
	e := &entry{sem: make(chan struct{}, 1)}
	e.snap.Store(m)
	e.touch()
	return e
}

func (e *entry) touch() {
	e.lastActive.Store(time.Now().Unix())
}

// Manager keeps live matches in memory. Writes to one match are serialized
// while different matches proceed in parallel; reads see the last committed
// snapshot without waiting for writers.
type Manager struct {
	mu      sync.RWMutex
	matches map[string]*entry

	load        Loader
	lockTimeout time.Duration
	idleTTL     time.Duration
}

func NewManager(load Loader, lockTimeout, idleTTL time.Duration) *Manager {
	return &Manager{
		matches:     make(map[string]*entry),
		load:        load,
		lockTimeout: lockTimeout,
		idleTTL:     idleTTL,
	}
}

func (m *Manager) Add(match *Match) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matches[match.ID] = newEntry(match)
}

// Get returns the current snapshot. The result must not be modified.
func (m *Manager) Get(ctx context.Context, id string) (*Match, error) {
	e, err := m.entry(ctx, id)
	if err != nil {
		return nil, err
	}
	return e.snap.Load(), nil
}

// Update runs fn under the match's writer slot and publishes its result.
// It fails with ErrBusy if the slot cannot be taken within the lock timeout.
func (m *Manager) Update(ctx context.Context, id string, fn UpdateFunc) (*Match, error) {
	for {
		e, err := m.entry(ctx, id)
		if err != nil {
			return nil, err
		}

		if err := m.acquire(ctx, e); err != nil {
			return nil, err
		}
		if e.evicted {
			// lost a race with cleanup, look the match up again
			<-e.sem
			continue
		}

		next, err := fn(e.snap.Load())
		if err == nil {
			e.snap.Store(next)
		}
		e.touch()
		<-e.sem
		return next, err
	}
}

func (m *Manager) acquire(ctx context.Context, e *entry) error {
	timer := time.NewTimer(m.lockTimeout)
	defer timer.Stop()

	select {
	case e.sem <- struct{}{}:
		return nil
	case <-timer.C:
		return ErrBusy
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Manager) entry(ctx context.Context, id string) (*entry, error) {
	m.mu.RLock()
	e, ok := m.matches[id]
	m.mu.RUnlock()
	if ok {
		return e, nil
	}

	if m.load == nil {
		return nil, fmt.Errorf("match %s: %w", id, ErrNotFound)
	}
	match, err := m.load(ctx, id)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.matches[id]; ok {
		return e, nil
	}
	e = newEntry(match)
	m.matches[id] = e
	return e, nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.matches)
}

// ActiveIDs lists the in-progress matches held in memory, sorted.
func (m *Manager) ActiveIDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.matches))
	for id, e := range m.matches {
		if !e.snap.Load().IsFinished() {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// StartCleanupTask evicts idle matches until ctx is done.
// Evicted matches are reloaded on their next access.
func (m *Manager) StartCleanupTask(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.CleanupIdle(time.Now()); n > 0 {
				slog.Debug("evicted matches from memory", "count", n)
			}
		}
	}
}

func (m *Manager) CleanupIdle(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for id, e := range m.matches {
		if now.Sub(time.Unix(e.lastActive.Load(), 0)) < m.idleTTL {
			continue
		}
		select {
		case e.sem <- struct{}{}:
			e.evicted = true
			delete(m.matches, id)
			<-e.sem
			evicted++
		default:
			// writer in progress
		}
	}
	return evicted
}
