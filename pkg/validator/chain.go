package validator

import (
	"context"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/outcome/pkg/result"
)

// Chain is the ordered rule list of one registered field. Every method
// returns the chain so rules can be appended fluently.
type Chain[T, V any] struct {
	b       *Builder[T]
	field   string
	name    string
	value   V
	items   []V
	forEach bool
	steps   []*step[V]
}

type step[V any] struct {
	kind    string
	when    func(V) bool
	message string
	run     func(ctx context.Context, vctx *Context, value V, name string, report func(key, msg string)) error
}

type target[V any] struct {
	value V
	name  string
	vctx  *Context
}

type ruleError struct {
	rule string
	path string
	err  error
}

func (e *ruleError) Error() string { return e.err.Error() }

func (e *ruleError) Unwrap() error { return e.err }

// RuleFor registers field with a snapshot of its value. Messages are keyed by
// the display name, which defaults to field.
func RuleFor[T, V any](b *Builder[T], field string, value V) *Chain[T, V] {
	c := &Chain[T, V]{b: b, field: field, name: field, value: value}
	b.entries = append(b.entries, entry{field: field, run: c.run})
	return c
}

// RuleForEach registers field as a collection. The chain runs once per
// element with the display name "Field[i]".
func RuleForEach[T, E any](b *Builder[T], field string, values []E) *Chain[T, E] {
	c := &Chain[T, E]{b: b, field: field, name: field, items: values, forEach: true}
	b.entries = append(b.entries, entry{field: field, run: c.run})
	return c
}

// Builder returns the owning builder, to register further fields.
func (c *Chain[T, V]) Builder() *Builder[T] { return c.b }

// WithName overrides the display name used in message keys and texts.
func (c *Chain[T, V]) WithName(name string) *Chain[T, V] {
	if name != "" {
		c.name = name
	}
	return c
}

// Rule appends a synchronous rule.
func (c *Chain[T, V]) Rule(r Rule[V]) *Chain[T, V] {
	if r == nil {
		panic(ErrNilRule)
	}
	return c.add("rule", func(_ context.Context, _ *Context, v V, name string, report func(string, string)) error {
		report(name, r.Validate(v, name))
		return nil
	})
}

// Rules appends each rule in order.
func (c *Chain[T, V]) Rules(rules ...Rule[V]) *Chain[T, V] {
	for _, r := range rules {
		c.Rule(r)
	}
	return c
}

// Must appends an inline predicate. message may contain the {name} placeholder.
func (c *Chain[T, V]) Must(pred func(V) bool, message string) *Chain[T, V] {
	if pred == nil {
		panic(ErrNilRule)
	}
	if message == "" {
		message = "{name} is invalid"
	}
	return c.add("must", func(_ context.Context, _ *Context, v V, name string, report func(string, string)) error {
		if !pred(v) {
			report(name, expand(message, name))
		}
		return nil
	})
}

// Context appends a rule that receives the field's validation context.
func (c *Chain[T, V]) Context(r ContextRule[V]) *Chain[T, V] {
	if r == nil {
		panic(ErrNilRule)
	}
	return c.add("context", func(_ context.Context, vctx *Context, v V, name string, report func(string, string)) error {
		report(name, r.ValidateContext(vctx, v, name))
		return nil
	})
}

// Async appends a rule that may block. Its error aborts validation.
func (c *Chain[T, V]) Async(r AsyncRule[V]) *Chain[T, V] {
	if r == nil {
		panic(ErrNilRule)
	}
	return c.add("async", func(ctx context.Context, vctx *Context, v V, name string, report func(string, string)) error {
		msg, err := r.ValidateAsync(ctx, vctx, v, name)
		if err != nil {
			return err
		}
		report(name, msg)
		return nil
	})
}

// Nested validates the value with fn and merges its field failures under
// "Name.Sub" keys. A nested non-validation failure is reported under the
// field's own name; a nested cancellation aborts validation.
func (c *Chain[T, V]) Nested(fn func(ctx context.Context, vctx *Context, value V) result.Result) *Chain[T, V] {
	if fn == nil {
		panic(ErrNilRule)
	}
	return c.add("nested", func(ctx context.Context, vctx *Context, v V, name string, report func(string, string)) error {
		r := fn(ctx, vctx, v)
		switch r.FailureType() {
		case result.FailureNone:
		case result.FailureOperationCanceled:
			return r.Err()
		case result.FailureValidation:
			failures := r.Failures()
			for _, sub := range slices.Sorted(maps.Keys(failures)) {
				for _, msg := range failures[sub] {
					report(name+"."+sub, msg)
				}
			}
		default:
			report(name, r.ErrorMessage())
		}
		return nil
	})
}

// When guards the most recently added rule: it only runs when pred holds.
func (c *Chain[T, V]) When(pred func(V) bool) *Chain[T, V] {
	if pred == nil {
		panic(ErrNilRule)
	}
	s := c.last()
	if prev := s.when; prev != nil {
		s.when = func(v V) bool { return prev(v) && pred(v) }
	} else {
		s.when = pred
	}
	return c
}

// Unless guards the most recently added rule: it is skipped when pred holds.
func (c *Chain[T, V]) Unless(pred func(V) bool) *Chain[T, V] {
	if pred == nil {
		panic(ErrNilRule)
	}
	return c.When(func(v V) bool { return !pred(v) })
}

// WithMessage replaces the message of the most recently added rule.
// The {name} placeholder is substituted with the display name.
func (c *Chain[T, V]) WithMessage(message string) *Chain[T, V] {
	c.last().message = message
	return c
}

func (c *Chain[T, V]) add(kind string, run func(context.Context, *Context, V, string, func(string, string)) error) *Chain[T, V] {
	c.steps = append(c.steps, &step[V]{kind: kind, run: run})
	return c
}

func (c *Chain[T, V]) last() *step[V] {
	if len(c.steps) == 0 {
		panic(ErrNoRule)
	}
	return c.steps[len(c.steps)-1]
}

func (c *Chain[T, V]) targets(vctx *Context) []target[V] {
	if !c.forEach {
		return []target[V]{{value: c.value, name: c.name, vctx: vctx}}
	}
	out := make([]target[V], len(c.items))
	for i, v := range c.items {
		out[i] = target[V]{
			value: v,
			name:  c.name + "[" + strconv.Itoa(i) + "]",
			vctx:  vctx.Index(i),
		}
	}
	return out
}

func (c *Chain[T, V]) run(ctx context.Context, vctx *Context, report func(key, msg string)) error {
	for _, t := range c.targets(vctx) {
		for _, s := range c.steps {
			if err := ctx.Err(); err != nil {
				return &ruleError{rule: s.kind, path: t.vctx.Path(), err: err}
			}
			if s.when != nil && !s.when(t.value) {
				continue
			}
			emit := report
			if s.message != "" {
				emit = func(key, msg string) {
					if msg != "" {
						report(key, expand(s.message, t.name))
					}
				}
			}
			if err := s.run(ctx, t.vctx, t.value, t.name, emit); err != nil {
				return &ruleError{rule: s.kind, path: t.vctx.Path(), err: err}
			}
		}
	}
	return nil
}

func expand(message, name string) string {
	return strings.ReplaceAll(message, "{name}", name)
}
