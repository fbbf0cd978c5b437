package graft

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

// ---------------------------------------------------------------------------
// Container methods
// ---------------------------------------------------------------------------

// Resolve returns an instance of t built by its registration. A missing
// registration, here or anywhere in the dependency tree pulled through
// [MustResolve], is returned as a *[UnregisteredTypeError]. Prefer the generic
// [Resolve] helper.
func (c Container) Resolve(t reflect.Type) (v any, err error) {
	defer recoverUnregistered(&err)
	return c.resolve(t), nil
}

// resolve panics with *UnregisteredTypeError when t is missing.
func (c Container) resolve(t reflect.Type) any {
	log := c.logger()

	s, ok := c.reg[t]
	if !ok {
		log.Debug("unregistered type", zap.Stringer("type", t))
		panic(&UnregisteredTypeError{Type: t})
	}

	if ce := log.Check(zap.DebugLevel, "resolving"); ce != nil {
		fields := []zap.Field{
			zap.Stringer("type", t),
			zap.Stringer("lifetime", s.lifetime()),
		}
		if ss, ok := s.(*singletonScope); ok {
			fields = append(fields, zap.Bool("cached", ss.cell.populated()))
		}
		ce.Write(fields...)
	}

	return s.build(c)
}

// ---------------------------------------------------------------------------
// Generic helpers
// ---------------------------------------------------------------------------

// Resolve is the recommended way to pull a dependency out of a container:
//
//	svc, err := graft.Resolve[*UserService](c)
func Resolve[T any](c Container) (out T, err error) {
	defer recoverUnregistered(&err)
	return MustResolve[T](c), nil
}

// MustResolve is like [Resolve] but panics with a *[UnregisteredTypeError]
// when T is missing. It is meant for use inside builders, where the panic is
// recovered by the outermost [Resolve] and returned as an error:
//
//	graft.Factory(func(c graft.Container) *Outer {
//		return NewOuter(graft.MustResolve[*Inner](c), graft.MustResolve[*Inner](c))
//	})
func MustResolve[T any](c Container) T {
	t := KeyOf[T]()

	v := c.resolve(t)
	if v == nil {
		// A builder for an interface type returned a nil interface.
		var zero T
		return zero
	}

	out, ok := v.(T)
	if !ok {
		panic(fmt.Sprintf("graft: registration for %s produced %T", t, v))
	}
	return out
}

// Lazy returns an accessor that resolves T the first time it succeeds and
// returns that instance on every later call, whatever T's lifetime. Failed
// attempts are not remembered.
//
//	type Handler struct {
//		repo func() (*Repo, error)
//	}
//
//	h := &Handler{repo: graft.Lazy[*Repo](c)}
func Lazy[T any](c Container) func() (T, error) {
	var cell memo
	return func() (out T, err error) {
		defer recoverUnregistered(&err)
		out, _ = cell.get(func() any { return MustResolve[T](c) }).(T)
		return out, nil
	}
}
