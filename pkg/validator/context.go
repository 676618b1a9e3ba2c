package validator

import (
	"fmt"
	"maps"
	"strconv"
	"sync"
)

// ServiceProvider resolves services by name for context-aware rules.
type ServiceProvider interface {
	Service(name string) (any, bool)
}

// Services is a map-backed ServiceProvider.
type Services map[string]any

func (s Services) Service(name string) (any, bool) {
	v, ok := s[name]
	return v, ok
}

// Context is handed to context-aware rules. It exposes the object being
// validated, a service locator and a bag of custom data.
//
// A child context receives a copy of its parent's data at creation time.
// Writes made to the parent afterwards are not visible to the child, and
// writes made to the child never reach the parent.
type Context struct {
	root     any
	services ServiceProvider
	parent   *Context
	path     string

	mu   sync.RWMutex
	data map[string]any
}

// ContextOption configures a root Context.
type ContextOption func(*Context)

// WithRoot sets the object under validation.
func WithRoot(root any) ContextOption {
	return func(c *Context) { c.root = root }
}

// WithServices sets the service locator.
func WithServices(sp ServiceProvider) ContextOption {
	return func(c *Context) { c.services = sp }
}

// WithData seeds the custom data. The map is copied.
func WithData(data map[string]any) ContextOption {
	return func(c *Context) { maps.Copy(c.data, data) }
}

// NewContext creates a root validation context.
func NewContext(opts ...ContextOption) *Context {
	c := &Context{data: make(map[string]any)}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

func (c *Context) Root() any { return c.root }

func (c *Context) Services() ServiceProvider { return c.services }

func (c *Context) Parent() *Context { return c.parent }

// Path is the property path of the value being validated, e.g. "Address/City"
// or "Items[2]". The root context has an empty path.
func (c *Context) Path() string { return c.path }

// Get returns a custom data value.
func (c *Context) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.data[key]
	return v, ok
}

// Set stores a custom data value on this context only.
func (c *Context) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
}

// Data returns a copy of the custom data.
func (c *Context) Data() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return maps.Clone(c.data)
}

// Child creates a context for the named property.
func (c *Context) Child(name string) *Context {
	path := name
	if c.path != "" {
		path = c.path + "/" + name
	}
	return c.derive(path)
}

// Index creates a context for the i-th element of the current property.
func (c *Context) Index(i int) *Context {
	return c.derive(c.path + "[" + strconv.Itoa(i) + "]")
}

func (c *Context) derive(path string) *Context {
	return &Context{
		root:     c.root,
		services: c.services,
		parent:   c,
		path:     path,
		data:     c.Data(),
	}
}

// ValueAs returns the custom data value stored under key if it has type V.
func ValueAs[V any](c *Context, key string) (V, bool) {
	var zero V
	if c == nil {
		return zero, false
	}
	raw, ok := c.Get(key)
	if !ok {
		return zero, false
	}
	v, ok := raw.(V)
	return v, ok
}

// ServiceAs resolves a named service and asserts its type.
func ServiceAs[S any](c *Context, name string) (S, error) {
	var zero S
	if c == nil || c.services == nil {
		return zero, fmt.Errorf("%w: %s", ErrServiceNotFound, name)
	}
	raw, ok := c.services.Service(name)
	if !ok {
		return zero, fmt.Errorf("%w: %s", ErrServiceNotFound, name)
	}
	s, ok := raw.(S)
	if !ok {
		return zero, fmt.Errorf("%w: %s is %T", ErrServiceType, name, raw)
	}
	return s, nil
}
