package validator

import (
	"context"
	"fmt"
)

// Checker reports whether a value is already present in some store.
// pkg/redis and pkg/pg provide implementations.
type Checker interface {
	Exists(ctx context.Context, value string) (bool, error)
}

// CheckerFunc adapts a plain function to Checker.
type CheckerFunc func(ctx context.Context, value string) (bool, error)

func (f CheckerFunc) Exists(ctx context.Context, value string) (bool, error) {
	return f(ctx, value)
}

// Unique fails when checker already holds the value.
func Unique(checker Checker) AsyncRule[string] {
	return lookup(func(*Context) (Checker, error) { return checkerOrErr(checker) }, false, "is already taken")
}

// Exists fails when checker does not hold the value.
func Exists(checker Checker) AsyncRule[string] {
	return lookup(func(*Context) (Checker, error) { return checkerOrErr(checker) }, true, "does not exist")
}

// UniqueService is Unique with the checker resolved from the validation
// context's service locator under name.
func UniqueService(name string) AsyncRule[string] {
	return lookup(serviceChecker(name), false, "is already taken")
}

// ExistsService is Exists with the checker resolved from the validation
// context's service locator under name.
func ExistsService(name string) AsyncRule[string] {
	return lookup(serviceChecker(name), true, "does not exist")
}

func checkerOrErr(c Checker) (Checker, error) {
	if c == nil {
		return nil, ErrNoChecker
	}
	return c, nil
}

func serviceChecker(name string) func(*Context) (Checker, error) {
	return func(vctx *Context) (Checker, error) {
		c, err := ServiceAs[Checker](vctx, name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNoChecker, err)
		}
		return c, nil
	}
}

func lookup(resolve func(*Context) (Checker, error), want bool, msg string) AsyncRule[string] {
	return AsyncRuleFunc[string](func(ctx context.Context, vctx *Context, value, name string) (string, error) {
		c, err := resolve(vctx)
		if err != nil {
			return "", err
		}
		found, err := c.Exists(ctx, value)
		if err != nil {
			return "", err
		}
		if found != want {
			return name + " " + msg, nil
		}
		return "", nil
	})
}
