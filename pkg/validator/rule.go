package validator

import "context"

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Rule validates a value and returns an error message, or "" when the value
// is acceptable. displayName is only used for message text.
type Rule[V any] interface {
	Validate(value V, displayName string) string
}

// RuleFunc adapts a plain function to Rule.
type RuleFunc[V any] func(value V, displayName string) string

func (f RuleFunc[V]) Validate(value V, displayName string) string {
	return f(value, displayName)
}

// ContextRule is a Rule that also receives the validation context.
type ContextRule[V any] interface {
	ValidateContext(vctx *Context, value V, displayName string) string
}

// ContextRuleFunc adapts a plain function to ContextRule.
type ContextRuleFunc[V any] func(vctx *Context, value V, displayName string) string

func (f ContextRuleFunc[V]) ValidateContext(vctx *Context, value V, displayName string) string {
	return f(vctx, value, displayName)
}

// AsyncRule is a context-aware rule that may block on I/O. A returned error
// aborts validation: cancellation errors produce an OperationCanceled outcome,
// any other error a plain failure carrying its message.
type AsyncRule[V any] interface {
	ValidateAsync(ctx context.Context, vctx *Context, value V, displayName string) (string, error)
}

// AsyncRuleFunc adapts a plain function to AsyncRule.
type AsyncRuleFunc[V any] func(ctx context.Context, vctx *Context, value V, displayName string) (string, error)

func (f AsyncRuleFunc[V]) ValidateAsync(ctx context.Context, vctx *Context, value V, displayName string) (string, error) {
	return f(ctx, vctx, value, displayName)
}

// check builds a rule reporting "<name> <msg>" whenever ok returns false.
func check[V any](ok func(V) bool, msg string) RuleFunc[V] {
	return func(value V, name string) string {
		if ok(value) {
			return ""
		}
		return name + " " + msg
	}
}
