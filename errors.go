package mapper

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrUnsupportedShape is returned when a lazily compiled form cannot be derived from a specification.
	ErrUnsupportedShape = errors.New("specification shape not supported")
	// ErrUnregisteredTypePair is returned when no definition exists for a (source, destination) pair.
	ErrUnregisteredTypePair = errors.New("no mapping registered for type pair")
	// ErrDuplicateRegistration is returned when a pair is registered twice.
	ErrDuplicateRegistration = errors.New("mapping already registered for type pair")
	// ErrInvalidSpecification is returned at registration when bindings do not fit the destination type.
	ErrInvalidSpecification = errors.New("invalid mapping specification")
	// ErrRegistryFrozen is returned when registering after mapping traffic has started.
	ErrRegistryFrozen = errors.New("registry is frozen")
	// ErrNilDestination is returned when populating into a nil destination.
	ErrNilDestination = errors.New("destination must not be nil")
	// ErrNilContext is returned when a context-taking operation is given a nil Context.
	ErrNilContext = errors.New("context must not be nil")
)

// PairError ties one of the sentinel errors to the type pair it concerns.
type PairError struct {
	Kind   error
	In     reflect.Type
	Out    reflect.Type
	Detail string
}

func (e *PairError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("mapper: %v: %v -> %v", e.Kind, e.In, e.Out)
	}
	return fmt.Sprintf("mapper: %v: %v -> %v: %s", e.Kind, e.In, e.Out, e.Detail)
}

func (e *PairError) Unwrap() error { return e.Kind }

func pairError(kind error, in, out reflect.Type, format string, args ...any) error {
	detail := ""
	if format != "" {
		detail = fmt.Sprintf(format, args...)
	}
	return &PairError{Kind: kind, In: in, Out: out, Detail: detail}
}
