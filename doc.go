// Package graft provides a small, type-keyed dependency injection container
// for Go.
//
// A registration binds a type to a builder. Each registration is its own
// one-entry [Container]; containers are combined with [Container.Merge] (or
// [Merge], [Container.With], [Container.Include]) and instances are pulled
// out with [Resolve].
//
// # Quick Start
//
//	c := graft.Merge(
//		graft.Factory(func(c graft.Container) *Wrapper {
//			return &Wrapper{Outer: graft.MustResolve[*Outer](c)}
//		}),
//		graft.Singleton(func(c graft.Container) *Outer {
//			return &Outer{
//				Inner1: graft.MustResolve[*Inner](c),
//				Inner2: graft.MustResolve[*Inner](c),
//			}
//		}),
//		graft.FactoryFunc(func() *Inner { return &Inner{} }),
//	)
//
//	w, err := graft.Resolve[*Wrapper](c)
//
// Builders receive the merged container, so registration order does not
// matter: dependencies are looked up when an instance is built, not when it
// is registered.
//
// # Lifetimes
//
// [Singleton] builders run at most once; every resolve, from any goroutine
// and through any container merged from the registering one, sees the same
// instance. [Factory] builders run on every resolve.
//
// # Merging
//
// When two containers bind the same type, the right-hand operand wins.
// Merging never modifies its operands.
//
// # Errors
//
// Resolving a type nobody registered yields a *[UnregisteredTypeError], which
// matches [ErrUnregisteredType] under [errors.Is]. Inside builders,
// [MustResolve] raises the same error as a panic and the outermost [Resolve]
// returns it.
package graft
