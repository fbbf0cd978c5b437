package graft

import (
	"sync/atomic"
)

// Shared test types and builders used across test files.

type testInner struct{ Tag string }

type testOuter struct {
	Inner1 *testInner
	Inner2 *testInner
}

type testWrapper struct{ Outer *testOuter }

type testConfig struct{ DSN string }

type testGreeter interface {
	Greet() string
}

type englishGreeter struct{ name string }

func (g *englishGreeter) Greet() string { return "hello " + g.name }

type spanishGreeter struct{ name string }

func (g *spanishGreeter) Greet() string { return "hola " + g.name }

func buildWrapper(c Container) *testWrapper {
	return &testWrapper{Outer: MustResolve[*testOuter](c)}
}

func buildOuter(c Container) *testOuter {
	return &testOuter{
		Inner1: MustResolve[*testInner](c),
		Inner2: MustResolve[*testInner](c),
	}
}

func newTestInner() *testInner { return &testInner{Tag: "inner"} }

// countingBuilder returns a builder that records how many times it ran. Each
// call allocates, so factory results are always distinct pointers.
func countingBuilder(calls *atomic.Int32, tag string) Builder[*testInner] {
	return func(Container) *testInner {
		calls.Add(1)
		return &testInner{Tag: tag}
	}
}

// outOfOrder registers Wrapper, then Outer, then Inner, the reverse of their
// dependency order.
func outOfOrder(inner Container) Container {
	var c Container
	c.Include(Factory(buildWrapper))
	c.Include(Singleton(buildOuter))
	c.Include(inner)
	return c
}
