package graft

// Lifetime controls how many times a registration's builder runs.
type Lifetime int

const (
	// LifetimeSingleton runs the builder at most once, on the first resolve,
	// and hands the same instance to every later caller.
	LifetimeSingleton Lifetime = iota

	// LifetimeFactory runs the builder on every resolve.
	LifetimeFactory
)

// String returns the human-readable name of the lifetime.
func (l Lifetime) String() string {
	switch l {
	case LifetimeSingleton:
		return "singleton"
	case LifetimeFactory:
		return "factory"
	default:
		return "unknown"
	}
}
