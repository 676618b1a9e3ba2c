package validator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/outcome/pkg/async"
	"github.com/dmitrymomot/outcome/pkg/logger"
	"github.com/dmitrymomot/outcome/pkg/result"
)

// Builder collects per-field rule chains and turns them into a single
// result.Of[T].
type Builder[T any] struct {
	entries []entry
	vctx    *Context
	log     *slog.Logger
}

// Option configures a Builder.
type Option func(*builderConfig)

type builderConfig struct {
	vctx *Context
	log  *slog.Logger
}

// WithContext sets the root validation context handed to context-aware rules.
func WithContext(vctx *Context) Option {
	return func(c *builderConfig) {
		if vctx != nil {
			c.vctx = vctx
		}
	}
}

// WithLogger sets the logger used to report rule faults and cancellations.
func WithLogger(l *slog.Logger) Option {
	return func(c *builderConfig) {
		if l != nil {
			c.log = l
		}
	}
}

// New creates an empty builder for T.
func New[T any](opts ...Option) *Builder[T] {
	cfg := builderConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.vctx == nil {
		cfg.vctx = NewContext()
	}
	if cfg.log == nil {
		cfg.log = logger.Discard()
	}
	return &Builder[T]{
		vctx: cfg.vctx,
		log:  cfg.log.With(logger.Component("validator")),
	}
}

// Context returns the root validation context.
func (b *Builder[T]) Context() *Context { return b.vctx }

// entry is one registered field. run evaluates its whole chain and reports
// every message through report.
type entry struct {
	field string
	run   func(ctx context.Context, vctx *Context, report func(key, msg string)) error
}

// Build validates every registered field and, when all pass, returns a success
// wrapping factory(). It is BuildContext with a background context.
func (b *Builder[T]) Build(factory func() T) result.Of[T] {
	return b.BuildContext(context.Background(), factory)
}

// BuildContext is Build with cooperative cancellation: ctx is checked before
// every rule and passed to asynchronous rules.
func (b *Builder[T]) BuildContext(ctx context.Context, factory func() T) result.Of[T] {
	if factory == nil {
		panic(ErrNilFactory)
	}
	r := b.Validate(ctx)
	if r.IsFailure() {
		return result.FailedOf[T](r)
	}
	return result.SuccessOf(factory())
}

// BuildAsync runs BuildContext in its own goroutine. Await the future with
// result.AwaitOf to fold a cancelled wait into an OperationCanceled outcome.
func (b *Builder[T]) BuildAsync(ctx context.Context, factory func() T) *async.Future[result.Of[T]] {
	if factory == nil {
		panic(ErrNilFactory)
	}
	return async.Go(ctx, func(ctx context.Context) (result.Of[T], error) {
		return b.BuildContext(ctx, factory), nil
	})
}

// Validate runs every chain in registration order without short-circuiting
// and returns either a success or a validation failure keyed by display name.
func (b *Builder[T]) Validate(ctx context.Context) result.Result {
	var (
		fields = make(map[string][]string)
		order  []string
	)
	report := func(key, msg string) {
		if msg == "" {
			return
		}
		if _, ok := fields[key]; !ok {
			order = append(order, key)
		}
		fields[key] = append(fields[key], msg)
	}

	for _, e := range b.entries {
		err := e.run(ctx, b.vctx.Child(e.field), report)
		if err == nil {
			continue
		}
		attrs := []any{logger.Field(e.field), logger.Error(err)}
		var re *ruleError
		if errors.As(err, &re) {
			attrs = append(attrs, logger.Rule(re.rule), logger.Path(re.path))
			err = re.err
		}
		if result.IsCancellation(err) {
			b.log.DebugContext(ctx, "validation canceled", attrs...)
			return result.CanceledFailure(fmt.Sprintf("validation canceled: %v", err))
		}
		b.log.WarnContext(ctx, "validation rule failed", attrs...)
		return result.Failure(err.Error())
	}

	if len(fields) == 0 {
		return result.Success()
	}
	return result.ValidationFailure(fields, result.WithMessage(result.Summarize(fields, order)))
}
