package validator_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/outcome/pkg/logger"
	"github.com/dmitrymomot/outcome/pkg/result"
	"github.com/dmitrymomot/outcome/pkg/validator"
)

type user struct {
	Email string
	Name  string
	Age   int
	Tags  []string
}

func TestBuild_Scenario(t *testing.T) {
	t.Parallel()

	b := validator.New[user]()
	validator.RuleFor(b, "Email", "not-an-email").Rule(validator.EmailAddress())

	called := false
	r := b.Build(func() user { called = true; return user{} })

	require.True(t, r.IsFailure())
	assert.False(t, called)
	assert.Equal(t, result.FailureValidation, r.FailureType())
	assert.Equal(t, []string{"Email must be a valid email address"}, r.Failures()["Email"])
	assert.Equal(t, "Email: Email must be a valid email address", r.ErrorMessage())
}

func TestBuild_Success(t *testing.T) {
	t.Parallel()

	in := user{Email: "jane@example.com", Name: "Jane", Age: 30}
	b := validator.New[user]()
	validator.RuleFor(b, "Email", in.Email).Rules(validator.NotEmpty(), validator.EmailAddress())
	validator.RuleFor(b, "Age", in.Age).Rule(validator.Between(18, 130))

	r := b.Build(func() user { return in })
	require.True(t, r.IsSuccess())
	assert.Equal(t, in, r.MustValue())
	assert.Equal(t, result.TypeSuccess, r.ResultType())
}

func TestBuild_NoShortCircuit(t *testing.T) {
	t.Parallel()

	b := validator.New[user]()
	validator.RuleFor(b, "Name", " ").
		Rule(validator.NotEmpty()).
		Rule(validator.MinLength(3)).
		Must(func(s string) bool { return s == "admin" }, "{name} must be admin")

	r := b.Build(func() user { return user{} })
	assert.Equal(t, []string{
		"Name is required",
		"Name must be at least 3 characters long",
		"Name must be admin",
	}, r.Failures()["Name"])
}

func TestBuild_RegistrationOrderSummary(t *testing.T) {
	t.Parallel()

	b := validator.New[user]()
	validator.RuleFor(b, "Zeta", "").Rule(validator.NotEmpty())
	validator.RuleFor(b, "Alpha", 0).Rule(validator.Positive[int]())

	r := b.Build(func() user { return user{} })
	assert.Equal(t, "Zeta: Zeta is required\nAlpha: Alpha must be positive", r.ErrorMessage())
}

func TestChain_Modifiers(t *testing.T) {
	t.Parallel()

	t.Run("display name", func(t *testing.T) {
		b := validator.New[user]()
		validator.RuleFor(b, "Email", "").WithName("E-mail address").Rule(validator.NotEmpty())
		r := b.Validate(context.Background())
		assert.Equal(t, []string{"E-mail address is required"}, r.Failures()["E-mail address"])
		assert.NotContains(t, r.Failures(), "Email")
	})

	t.Run("when and unless guard the last rule", func(t *testing.T) {
		b := validator.New[user]()
		validator.RuleFor(b, "Name", "").
			Rule(validator.NotEmpty()).When(func(s string) bool { return false }).
			Rule(validator.MinLength(2)).Unless(func(s string) bool { return s == "x" }).
			Rule(validator.Alpha())
		r := b.Validate(context.Background())
		assert.Equal(t, []string{
			"Name must be at least 2 characters long",
			"Name must contain only letters",
		}, r.Failures()["Name"])
	})

	t.Run("with message", func(t *testing.T) {
		b := validator.New[user]()
		validator.RuleFor(b, "Age", 10).
			Rule(validator.Min(18)).WithMessage("{name}: adults only").
			Rule(validator.Max(200))
		r := b.Validate(context.Background())
		assert.Equal(t, []string{"Age: adults only"}, r.Failures()["Age"])
	})

	t.Run("modifier without rule panics", func(t *testing.T) {
		b := validator.New[user]()
		c := validator.RuleFor(b, "Age", 1)
		assert.PanicsWithValue(t, validator.ErrNoRule, func() { c.WithMessage("x") })
		assert.PanicsWithValue(t, validator.ErrNoRule, func() { c.When(func(int) bool { return true }) })
	})

	t.Run("nil rule panics", func(t *testing.T) {
		b := validator.New[user]()
		c := validator.RuleFor(b, "Age", 1)
		assert.PanicsWithValue(t, validator.ErrNilRule, func() { c.Rule(nil) })
		assert.PanicsWithValue(t, validator.ErrNilRule, func() { c.Must(nil, "") })
	})

	t.Run("builder round trip", func(t *testing.T) {
		b := validator.New[user]()
		assert.Same(t, b, validator.RuleFor(b, "Age", 1).Builder())
	})
}

func TestRuleForEach(t *testing.T) {
	t.Parallel()

	b := validator.New[user]()
	var paths []string
	validator.RuleForEach(b, "Tags", []string{"go", "", "rust!"}).
		Rule(validator.NotEmpty()).
		Rule(validator.Alphanumeric()).When(func(s string) bool { return s != "" }).
		Context(validator.ContextRuleFunc[string](func(vctx *validator.Context, _ string, _ string) string {
			paths = append(paths, vctx.Path())
			return ""
		}))

	r := b.Validate(context.Background())
	assert.Equal(t, map[string][]string{
		"Tags[1]": {"Tags[1] is required"},
		"Tags[2]": {"Tags[2] must contain only letters and numbers"},
	}, r.Failures())
	assert.Equal(t, []string{"Tags[0]", "Tags[1]", "Tags[2]"}, paths)
}

func TestChain_Nested(t *testing.T) {
	t.Parallel()

	type address struct{ City, Zip string }
	validateAddress := func(ctx context.Context, vctx *validator.Context, a address) result.Result {
		nb := validator.New[address](validator.WithContext(vctx))
		validator.RuleFor(nb, "City", a.City).Rule(validator.NotEmpty())
		validator.RuleFor(nb, "Zip", a.Zip).Rule(validator.MinLength(5))
		return nb.Validate(ctx)
	}

	b := validator.New[user]()
	validator.RuleFor(b, "Address", address{Zip: "12"}).Nested(validateAddress)

	r := b.Validate(context.Background())
	assert.Equal(t, map[string][]string{
		"Address.City": {"City is required"},
		"Address.Zip":  {"Zip must be at least 5 characters long"},
	}, r.Failures())
}

func TestBuild_AsyncRules(t *testing.T) {
	t.Parallel()

	t.Run("async message is collected", func(t *testing.T) {
		b := validator.New[user]()
		validator.RuleFor(b, "Email", "taken@example.com").Async(validator.AsyncRuleFunc[string](
			func(ctx context.Context, _ *validator.Context, v, name string) (string, error) {
				return name + " is already taken", nil
			}))
		r := b.BuildContext(context.Background(), func() user { return user{} })
		assert.Equal(t, []string{"Email is already taken"}, r.Failures()["Email"])
	})

	t.Run("rule fault becomes a plain failure and is logged", func(t *testing.T) {
		buf := &bytes.Buffer{}
		b := validator.New[user](validator.WithLogger(logger.New(logger.WithOutput(buf))))
		validator.RuleFor(b, "Email", "x").
			Rule(validator.EmailAddress()).
			Async(validator.AsyncRuleFunc[string](func(context.Context, *validator.Context, string, string) (string, error) {
				return "", errors.New("connection refused")
			}))

		r := b.Build(func() user { return user{} })
		assert.Equal(t, result.FailureError, r.FailureType())
		assert.Equal(t, "connection refused", r.ErrorMessage())
		assert.Empty(t, r.Failures())
		assert.Contains(t, buf.String(), `"rule":"async"`)
		assert.Contains(t, buf.String(), `"field":"Email"`)
	})

	t.Run("rule cancellation becomes OperationCanceled", func(t *testing.T) {
		b := validator.New[user]()
		validator.RuleFor(b, "Email", "x").Async(validator.AsyncRuleFunc[string](
			func(context.Context, *validator.Context, string, string) (string, error) {
				return "", context.DeadlineExceeded
			}))
		r := b.Build(func() user { return user{} })
		assert.Equal(t, result.FailureOperationCanceled, r.FailureType())
		assert.Equal(t, result.TypeWarning, r.ResultType())
	})

	t.Run("cancelled context stops before the first rule", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		ran := false
		b := validator.New[user]()
		validator.RuleFor(b, "Name", "").Must(func(string) bool { ran = true; return true }, "")
		r := b.BuildContext(ctx, func() user { return user{} })
		assert.False(t, ran)
		assert.Equal(t, result.FailureOperationCanceled, r.FailureType())
	})
}

func TestBuildAsync(t *testing.T) {
	t.Parallel()

	b := validator.New[user]()
	validator.RuleFor(b, "Age", 42).Rule(validator.Positive[int]())
	f := b.BuildAsync(context.Background(), func() user { return user{Age: 42} })

	r := result.AwaitOf(context.Background(), f)
	require.True(t, r.IsSuccess())
	assert.Equal(t, 42, r.MustValue().Age)

	t.Run("pre-cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		r := result.AwaitOf(ctx, b.BuildAsync(ctx, func() user { return user{} }))
		assert.Equal(t, result.FailureOperationCanceled, r.FailureType())
	})

	t.Run("nil factory panics", func(t *testing.T) {
		assert.PanicsWithValue(t, validator.ErrNilFactory, func() {
			b.BuildAsync(context.Background(), nil)
		})
	})
}

func TestBuild_ContextRulesSeeRoot(t *testing.T) {
	t.Parallel()

	in := user{Name: "bob", Email: "bob@example.com"}
	vctx := validator.NewContext(validator.WithRoot(in), validator.WithData(map[string]any{"tenant": "acme"}))
	b := validator.New[user](validator.WithContext(vctx))

	validator.RuleFor(b, "Email", in.Email).Context(validator.ContextRuleFunc[string](
		func(vctx *validator.Context, v, name string) string {
			u := vctx.Root().(user)
			tenant, _ := validator.ValueAs[string](vctx, "tenant")
			vctx.Set("seen", true)
			if tenant != "acme" || u.Name != "bob" || vctx.Path() != "Email" {
				return name + " context mismatch"
			}
			return ""
		}))

	r := b.Build(func() user { return in })
	assert.True(t, r.IsSuccess())
	_, leaked := vctx.Get("seen")
	assert.False(t, leaked)
	assert.Same(t, vctx, b.Context())
}
