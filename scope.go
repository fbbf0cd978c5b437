package graft

import (
	"sync"
	"sync/atomic"
)

// scope decides how often a registration's builder runs.
type scope interface {
	// build produces an instance. c is the container the resolve was issued
	// against, so the builder can pull its own dependencies from it.
	build(c Container) any
	lifetime() Lifetime
}

// ---------------------------------------------------------------------------
// Singleton
// ---------------------------------------------------------------------------

type singletonScope struct {
	builder func(Container) any
	cell    memo
}

func newSingletonScope(builder func(Container) any) *singletonScope {
	return &singletonScope{builder: builder}
}

func (s *singletonScope) build(c Container) any {
	return s.cell.get(func() any { return s.builder(c) })
}

func (s *singletonScope) lifetime() Lifetime { return LifetimeSingleton }

// ---------------------------------------------------------------------------
// Factory
// ---------------------------------------------------------------------------

type factoryScope struct {
	builder func(Container) any
}

func newFactoryScope(builder func(Container) any) *factoryScope {
	return &factoryScope{builder: builder}
}

func (s *factoryScope) build(c Container) any {
	return s.builder(c)
}

func (s *factoryScope) lifetime() Lifetime { return LifetimeFactory }

// ---------------------------------------------------------------------------
// memo
// ---------------------------------------------------------------------------

// memo is a populate-once cell. Unlike sync.Once, a panicking fn leaves the
// cell empty so the next caller runs fn again. Callers that lose the race
// block until the winner has stored its value.
type memo struct {
	done atomic.Bool
	mu   sync.Mutex
	val  any
}

func (m *memo) get(fn func() any) any {
	if m.done.Load() {
		return m.val
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.done.Load() {
		m.val = fn()
		m.done.Store(true)
	}
	return m.val
}

func (m *memo) populated() bool {
	return m.done.Load()
}
