package graft

import (
	"reflect"

	"go.uber.org/zap"
)

// Builder produces an instance of T. It receives the container the resolve
// was issued against, which is the full merged container rather than the
// one-entry container the builder was registered in, so it may call
// [MustResolve] or [Resolve] on it to obtain its own dependencies.
type Builder[T any] func(c Container) T

// Container is an immutable set of registrations keyed by type. Containers
// are small values: copy them, merge them, share them between goroutines.
// The zero value is an empty container.
type Container struct {
	reg registry
	log *zap.Logger
}

// Empty returns a container with no registrations.
func Empty(opts ...Option) Container {
	c := Container{reg: emptyRegistry()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// KeyOf returns the type key T is registered and resolved under.
func KeyOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// ---------------------------------------------------------------------------
// Registration
// ---------------------------------------------------------------------------

// Register returns a one-entry container binding T to build with the given
// lifetime. Lifetimes other than [LifetimeFactory] are treated as
// [LifetimeSingleton]. Most callers use [Singleton] or [Factory] instead.
func Register[T any](lifetime Lifetime, build Builder[T]) Container {
	erased := func(c Container) any { return build(c) }

	var s scope
	switch lifetime {
	case LifetimeFactory:
		s = newFactoryScope(erased)
	default:
		s = newSingletonScope(erased)
	}
	return Container{reg: singleEntry(KeyOf[T](), s)}
}

// Singleton binds T to build. build runs once, on the first resolve of T,
// and every resolve returns that instance, including resolves made through
// containers merged from this one.
func Singleton[T any](build Builder[T]) Container {
	return Register(LifetimeSingleton, build)
}

// Factory binds T to build. build runs on every resolve of T.
func Factory[T any](build Builder[T]) Container {
	return Register(LifetimeFactory, build)
}

// Value binds T to an already constructed instance.
func Value[T any](v T) Container {
	return Singleton(func(Container) T { return v })
}

// SingletonFunc is [Singleton] for builders that need no dependencies.
func SingletonFunc[T any](fn func() T) Container {
	return Singleton(func(Container) T { return fn() })
}

// FactoryFunc is [Factory] for builders that need no dependencies.
func FactoryFunc[T any](fn func() T) Container {
	return Factory(func(Container) T { return fn() })
}

// ---------------------------------------------------------------------------
// Merge
// ---------------------------------------------------------------------------

// Merge returns a container holding the registrations of c and other. When
// both bind the same type, other's registration wins. Neither operand is
// modified.
func (c Container) Merge(other Container) Container {
	log := c.log
	if log == nil {
		log = other.log
	}
	return Container{
		reg: mergeRegistries(c.reg, other.reg),
		log: log,
	}
}

// With merges others into c from left to right and returns the result.
//
//	c := graft.Empty().
//		With(graft.Factory(NewWrapper)).
//		With(graft.Singleton(NewOuter), graft.Factory(NewInner))
func (c Container) With(others ...Container) Container {
	for _, o := range others {
		c = c.Merge(o)
	}
	return c
}

// Include is the accumulating form of [Container.With]: it replaces *c with
// c.With(others...). Copies of the previous value are unaffected.
func (c *Container) Include(others ...Container) {
	*c = c.With(others...)
}

// Merge folds cs from left to right. The rightmost registration of each type
// wins.
func Merge(cs ...Container) Container {
	return Container{}.With(cs...)
}

// ---------------------------------------------------------------------------
// Inspection
// ---------------------------------------------------------------------------

// Len returns the number of registered types.
func (c Container) Len() int { return len(c.reg) }

// Types returns the registered type keys sorted by name.
func (c Container) Types() []reflect.Type { return c.reg.keys() }

// Has reports whether t is registered.
func (c Container) Has(t reflect.Type) bool {
	_, ok := c.reg[t]
	return ok
}

// Contains reports whether T is registered in c.
func Contains[T any](c Container) bool {
	return c.Has(KeyOf[T]())
}

// LifetimeOf returns the lifetime t is registered with.
func (c Container) LifetimeOf(t reflect.Type) (Lifetime, bool) {
	s, ok := c.reg[t]
	if !ok {
		return 0, false
	}
	return s.lifetime(), true
}
