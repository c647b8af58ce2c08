package di

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrNilContainer is returned when an operation is applied to a nil *Container.
	ErrNilContainer = errors.New("di: nil container")

	// ErrNilBean is returned when a constructor returns (nil, nil).
	ErrNilBean = errors.New("di: constructor returned nil bean")

	// ErrRefreshed is returned when Provide is called after Refresh.
	ErrRefreshed = errors.New("di: container already refreshed")

	// ErrClosed is returned by every operation on a closed container.
	ErrClosed = errors.New("di: container closed")

	// ErrFactoryPanic is wrapped when a constructor or injector panics.
	ErrFactoryPanic = errors.New("di: panic during bean creation")
)

// DuplicateBeanError is returned when a bean name is registered twice.
type DuplicateBeanError struct{ Name string }

// Error implements the error interface.
func (e DuplicateBeanError) Error() string {
	// Example: di: duplicate bean "spellChecker"
	return "di: duplicate bean " + strconv.Quote(e.Name)
}

// MissingBeanError is returned when no bean is registered under a name.
type MissingBeanError struct{ Name string }

// Error implements the error interface.
func (e MissingBeanError) Error() string {
	return "di: bean " + strconv.Quote(e.Name) + " missing"
}

// WrongTypeBeanError is returned when a bean exists but is not the requested type.
type WrongTypeBeanError struct {
	// Name is the bean requested.
	Name string

	// GotType is the registered type of the bean, e.g. "*editor.SpellChecker".
	GotType string
}

// Error implements the error interface.
func (e WrongTypeBeanError) Error() string {
	return "di: bean " + strconv.Quote(e.Name) + " has wrong type (" + e.GotType + ")"
}

// NoUniqueBeanError is returned by Lookup when zero or several beans match a type.
//
// Names is empty when nothing matched.
type NoUniqueBeanError struct {
	Type  string
	Names []string
}

// Error implements the error interface.
func (e NoUniqueBeanError) Error() string {
	if len(e.Names) == 0 {
		return "di: no bean of type " + e.Type
	}
	return "di: " + strconv.Itoa(len(e.Names)) + " beans of type " + e.Type +
		" (" + strings.Join(e.Names, ", ") + ")"
}

// CircularDependencyError is returned when a bean is requested while it is
// still being created. Chain lists the creation stack, ending with the
// repeated name.
type CircularDependencyError struct{ Chain []string }

// Error implements the error interface.
func (e CircularDependencyError) Error() string {
	// Example: di: circular dependency a -> b -> a
	return "di: circular dependency " + strings.Join(e.Chain, " -> ")
}

// NilFactoryError indicates Provide was called with a nil constructor.
type NilFactoryError struct{ Name string }

// Error implements the error interface.
func (e NilFactoryError) Error() string {
	return "di: nil constructor for bean " + strconv.Quote(e.Name)
}

// NilBindError indicates Inject was built with a nil bind function.
// Name is the dependency the injector was meant to bind.
type NilBindError struct{ Name string }

// Error implements the error interface.
func (e NilBindError) Error() string {
	return "di: nil bind function for dependency " + strconv.Quote(e.Name)
}

// CreationError wraps a failure raised while creating a bean.
type CreationError struct {
	Name string
	Err  error
}

// Error implements the error interface.
func (e CreationError) Error() string {
	return "di: creating bean " + strconv.Quote(e.Name) + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e CreationError) Unwrap() error { return e.Err }
