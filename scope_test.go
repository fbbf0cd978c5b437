package graft

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestSingletonScope(t *testing.T) {
	t.Run("builder runs once", func(t *testing.T) {
		var calls atomic.Int32
		s := newSingletonScope(func(Container) any {
			calls.Add(1)
			return newTestInner()
		})

		first := s.build(Container{})
		second := s.build(Container{})

		assert.Same(t, first, second)
		assert.Equal(t, int32(1), calls.Load())
		assert.Equal(t, LifetimeSingleton, s.lifetime())
	})

	t.Run("builder sees the resolving container", func(t *testing.T) {
		var seen Container
		s := newSingletonScope(func(c Container) any {
			seen = c
			return nil
		})

		c := Value(&testConfig{DSN: "x"})
		s.build(c)

		assert.True(t, Contains[*testConfig](seen))
	})

	t.Run("panicking builder leaves the cell empty", func(t *testing.T) {
		var calls atomic.Int32
		s := newSingletonScope(func(Container) any {
			if calls.Add(1) == 1 {
				panic("boom")
			}
			return newTestInner()
		})

		assert.PanicsWithValue(t, "boom", func() { s.build(Container{}) })
		assert.False(t, s.cell.populated())

		got := s.build(Container{})
		require.NotNil(t, got)
		assert.True(t, s.cell.populated())
		assert.Equal(t, int32(2), calls.Load())
	})
}

func TestFactoryScope(t *testing.T) {
	var calls atomic.Int32
	s := newFactoryScope(func(Container) any {
		calls.Add(1)
		return newTestInner()
	})

	first := s.build(Container{})
	second := s.build(Container{})

	assert.NotSame(t, first, second)
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, LifetimeFactory, s.lifetime())
}

func TestMemo_ConcurrentFirstGet(t *testing.T) {
	const goroutines = 64

	var (
		m     memo
		calls atomic.Int32
		start sync.WaitGroup
		g     errgroup.Group
	)
	results := make([]any, goroutines)

	start.Add(1)
	for i := range goroutines {
		g.Go(func() error {
			start.Wait()
			results[i] = m.get(func() any {
				calls.Add(1)
				return newTestInner()
			})
			return nil
		})
	}
	start.Done()
	require.NoError(t, g.Wait())

	assert.Equal(t, int32(1), calls.Load())
	for i := 1; i < goroutines; i++ {
		assert.Same(t, results[0], results[i])
	}
}
