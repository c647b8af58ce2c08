package di

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"slices"
)

// Injector runs against a freshly constructed bean before it is published.
//
// Injectors model setter injection: the bean is created empty by its
// constructor and collaborators are attached afterwards.
type Injector[T any] func(c *Container, target *T) error

// Option configures a Container.
type Option func(*Container)

// WithCreated registers a callback invoked after each bean is created and
// cached. It is useful for lifecycle logging.
func WithCreated(fn func(name string)) Option {
	return func(c *Container) { c.onCreated = fn }
}

type definition struct {
	name   string
	typ    reflect.Type
	create func(c *Container) (any, error)
}

// Container is an ordered set of singleton bean definitions.
type Container struct {
	defs   []*definition
	byName map[string]*definition
	beans  map[string]any

	// creating is the stack of beans currently under construction.
	creating []string
	// created lists bean names in creation order.
	created []string

	onCreated func(name string)

	refreshed bool
	closed    bool
}

// New returns an empty container.
func New(opts ...Option) *Container {
	c := &Container{
		byName: make(map[string]*definition),
		beans:  make(map[string]any),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Provide registers a singleton bean named name.
//
// ctor builds the bean; it may resolve its own dependencies from c
// (constructor injection). injectors are applied in order once ctor has
// returned (setter injection). A nil injector is skipped.
//
// Provide fails if:
//   - c is nil (ErrNilContainer)
//   - c is closed (ErrClosed) or already refreshed (ErrRefreshed)
//   - ctor is nil (NilFactoryError)
//   - name is already registered (DuplicateBeanError)
func Provide[T any](
	c *Container,
	name string,
	ctor func(c *Container) (*T, error),
	injectors ...Injector[T],
) error {
	if c == nil {
		return ErrNilContainer
	}
	if c.closed {
		return ErrClosed
	}
	if c.refreshed {
		return ErrRefreshed
	}
	if ctor == nil {
		return NilFactoryError{Name: name}
	}
	if _, exists := c.byName[name]; exists {
		return DuplicateBeanError{Name: name}
	}

	def := &definition{
		name: name,
		typ:  reflect.TypeFor[*T](),
		create: func(c *Container) (any, error) {
			v, err := ctor(c)
			if err != nil {
				return nil, err
			}
			if v == nil {
				return nil, ErrNilBean
			}
			for _, inj := range injectors {
				if inj == nil {
					continue
				}
				if err := inj(c, v); err != nil {
					return nil, err
				}
			}
			return v, nil
		},
	}
	c.defs = append(c.defs, def)
	c.byName[name] = def
	return nil
}

// Inject builds an Injector that resolves the bean named dep as *D and hands
// it to bind, typically a setter on the target.
//
// The returned injector fails with NilBindError if bind is nil, and with any
// error Get reports for dep.
func Inject[T any, D any](dep string, bind func(target *T, dependency *D)) Injector[T] {
	return func(c *Container, target *T) error {
		if bind == nil {
			return NilBindError{Name: dep}
		}
		d, err := Get[D](c, dep)
		if err != nil {
			return err
		}
		bind(target, d)
		return nil
	}
}

// Get returns the bean named name as *T, creating it if needed.
//
// It returns MissingBeanError for unknown names and WrongTypeBeanError when
// the bean was registered with a different type. In the latter case the bean
// is not created.
func Get[T any](c *Container, name string) (*T, error) {
	if c == nil {
		return nil, ErrNilContainer
	}
	if c.closed {
		return nil, ErrClosed
	}
	def, ok := c.byName[name]
	if !ok {
		return nil, MissingBeanError{Name: name}
	}
	if want := reflect.TypeFor[*T](); def.typ != want {
		return nil, WrongTypeBeanError{Name: name, GotType: def.typ.String()}
	}
	raw, err := c.resolve(def)
	if err != nil {
		return nil, err
	}
	return raw.(*T), nil
}

// Lookup returns the single bean registered with type *T.
//
// It returns NoUniqueBeanError when no bean, or more than one, has that type.
func Lookup[T any](c *Container) (*T, error) {
	if c == nil {
		return nil, ErrNilContainer
	}
	if c.closed {
		return nil, ErrClosed
	}
	want := reflect.TypeFor[*T]()
	var names []string
	for _, d := range c.defs {
		if d.typ == want {
			names = append(names, d.name)
		}
	}
	if len(names) != 1 {
		return nil, NoUniqueBeanError{Type: want.String(), Names: names}
	}
	return Get[T](c, names[0])
}

// MustLookup is Lookup that panics on error.
func MustLookup[T any](c *Container) *T {
	v, err := Lookup[T](c)
	if err != nil {
		panic(err)
	}
	return v
}

// Refresh creates every registered bean in registration order.
//
// Beans already created by an earlier Get are not created again. After
// Refresh no further beans can be registered. Refresh stops at the first
// creation error.
func (c *Container) Refresh() error {
	if c == nil {
		return ErrNilContainer
	}
	if c.closed {
		return ErrClosed
	}
	if c.refreshed {
		return ErrRefreshed
	}
	c.refreshed = true

	for _, def := range c.defs {
		if _, err := c.resolve(def); err != nil {
			return err
		}
	}
	return nil
}

// Close releases created beans in reverse creation order. Beans that
// implement io.Closer are closed; all close errors are joined.
//
// Close is idempotent. After Close every resolve returns ErrClosed.
func (c *Container) Close() error {
	if c == nil {
		return ErrNilContainer
	}
	if c.closed {
		return nil
	}
	c.closed = true

	var errs []error
	for i := len(c.created) - 1; i >= 0; i-- {
		name := c.created[i]
		if closer, ok := c.beans[name].(io.Closer); ok {
			if err := closer.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close %q: %w", name, err))
			}
		}
	}
	clear(c.beans)
	return errors.Join(errs...)
}

// Has reports whether a bean is registered under name.
func (c *Container) Has(name string) bool {
	if c == nil {
		return false
	}
	_, ok := c.byName[name]
	return ok
}

// Names returns the registered bean names in registration order.
func (c *Container) Names() []string {
	if c == nil {
		return nil
	}
	out := make([]string, 0, len(c.defs))
	for _, d := range c.defs {
		out = append(out, d.name)
	}
	return out
}

// Created returns the names of created beans in creation order.
func (c *Container) Created() []string {
	if c == nil {
		return nil
	}
	return slices.Clone(c.created)
}

// resolve returns the cached bean or creates it, converting panics raised by
// constructors and injectors into errors wrapping ErrFactoryPanic.
func (c *Container) resolve(def *definition) (bean any, err error) {
	if v, ok := c.beans[def.name]; ok {
		return v, nil
	}
	if slices.Contains(c.creating, def.name) {
		chain := append(slices.Clone(c.creating), def.name)
		return nil, CircularDependencyError{Chain: chain}
	}

	c.creating = append(c.creating, def.name)
	defer func() {
		c.creating = c.creating[:len(c.creating)-1]
		if rec := recover(); rec != nil {
			bean = nil
			err = CreationError{Name: def.name, Err: fmt.Errorf("%w: %v", ErrFactoryPanic, rec)}
		}
	}()

	v, err := def.create(c)
	if err != nil {
		return nil, CreationError{Name: def.name, Err: err}
	}
	c.beans[def.name] = v
	c.created = append(c.created, def.name)
	if c.onCreated != nil {
		c.onCreated(def.name)
	}
	return v, nil
}
