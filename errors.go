package graft

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrUnregisteredType is the sentinel matched by every [UnregisteredTypeError]
// via [errors.Is].
var ErrUnregisteredType = errors.New("unregistered type")

// UnregisteredTypeError is returned when a resolve asks for a type that no
// registration in the container provides. It signals a wiring mistake rather
// than a runtime condition; callers usually treat it as fatal.
type UnregisteredTypeError struct {
	Type reflect.Type
}

func (e *UnregisteredTypeError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnregisteredType, e.Type)
}

// Is reports whether target is [ErrUnregisteredType].
func (e *UnregisteredTypeError) Is(target error) bool {
	return target == ErrUnregisteredType
}

// recoverUnregistered turns a *UnregisteredTypeError panic raised by
// MustResolve deep inside a builder into an error on the outermost call.
// Any other panic is re-raised.
func recoverUnregistered(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if e, ok := r.(error); ok {
		var ute *UnregisteredTypeError
		if errors.As(e, &ute) {
			*err = e
			return
		}
	}
	panic(r)
}
