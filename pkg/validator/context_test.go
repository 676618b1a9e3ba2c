package validator_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/outcome/pkg/validator"
)

type greeter interface{ Greet() string }

type english struct{}

func (english) Greet() string { return "hello" }

func TestContext_Hierarchy(t *testing.T) {
	t.Parallel()

	root := validator.NewContext(validator.WithRoot("order-1"))
	child := root.Child("Address")
	grand := child.Child("City")
	item := root.Child("Items").Index(2)

	assert.Equal(t, "", root.Path())
	assert.Equal(t, "Address", child.Path())
	assert.Equal(t, "Address/City", grand.Path())
	assert.Equal(t, "Items[2]", item.Path())
	assert.Same(t, child, grand.Parent())
	assert.Nil(t, root.Parent())
	assert.Equal(t, "order-1", grand.Root())
}

func TestContext_CopyOnChild(t *testing.T) {
	t.Parallel()

	root := validator.NewContext(validator.WithData(map[string]any{"a": 1}))
	child := root.Child("x")

	root.Set("b", 2)
	child.Set("c", 3)
	child.Set("a", 10)

	_, ok := child.Get("b")
	assert.False(t, ok, "parent writes after creation are not visible to the child")
	_, ok = root.Get("c")
	assert.False(t, ok, "child writes never reach the parent")

	a, _ := validator.ValueAs[int](root, "a")
	assert.Equal(t, 1, a)
	a, _ = validator.ValueAs[int](child, "a")
	assert.Equal(t, 10, a)

	_, ok = validator.ValueAs[string](child, "a")
	assert.False(t, ok)

	data := root.Data()
	data["a"] = 99
	v, _ := root.Get("a")
	assert.Equal(t, 1, v)
}

func TestContext_Services(t *testing.T) {
	t.Parallel()

	vctx := validator.NewContext(validator.WithServices(validator.Services{
		"greeter": english{},
		"number":  42,
	})).Child("Name")

	g, err := validator.ServiceAs[greeter](vctx, "greeter")
	require.NoError(t, err)
	assert.Equal(t, "hello", g.Greet())

	_, err = validator.ServiceAs[greeter](vctx, "missing")
	assert.ErrorIs(t, err, validator.ErrServiceNotFound)

	_, err = validator.ServiceAs[greeter](vctx, "number")
	assert.ErrorIs(t, err, validator.ErrServiceType)

	_, err = validator.ServiceAs[greeter](validator.NewContext(), "greeter")
	assert.ErrorIs(t, err, validator.ErrServiceNotFound)
}

func TestContext_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	vctx := validator.NewContext()
	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			vctx.Set("k", i)
			_, _ = vctx.Get("k")
			_ = vctx.Child("c")
		}()
	}
	wg.Wait()
	_, ok := vctx.Get("k")
	assert.True(t, ok)
}
