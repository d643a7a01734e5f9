package replacing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type someClass struct{}

func failing[T any](msg string) Resolver[T] {
	return func(T) (string, bool, error) {
		return "", false, errors.New(msg)
	}
}

// countingResolver wraps fn and counts invocations.
func countingResolver[T any](calls *int, fn Resolver[T]) Resolver[T] {
	return func(src T) (string, bool, error) {
		*calls++
		return fn(src)
	}
}

func TestReplacing(t *testing.T) {
	t.Run("rejects empty tag", func(t *testing.T) {
		_, err := Replacing("", Static[someClass]("hello"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.ErrorIs(t, err, ErrEmptyTag)
	})

	t.Run("rejects nil resolver", func(t *testing.T) {
		_, err := Replacing[someClass]("{greeting}", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.ErrorIs(t, err, ErrNilResolver)
	})

	t.Run("rejects nil accessor passed through an adapter", func(t *testing.T) {
		_, err := Replacing("{greeting}", NonEmpty[someClass](nil))
		assert.ErrorIs(t, err, ErrNilResolver)
	})

	t.Run("does not invoke the resolver", func(t *testing.T) {
		calls := 0
		r, err := Replacing("{greeting}", countingResolver(&calls, Static[someClass]("hello")))
		require.NoError(t, err)
		assert.Equal(t, "{greeting}", r.Tag())
		assert.Equal(t, 0, calls)
	})

	t.Run("MustReplacing panics on invalid input", func(t *testing.T) {
		assert.Panics(t, func() {
			MustReplacing("", Static[someClass]("hello"))
		})
	})
}

func TestReplacement_Apply(t *testing.T) {
	src := someClass{}

	t.Run("substitutes value", func(t *testing.T) {
		r := MustReplacing("{greeting}", Static[someClass]("hello"))
		result, err := r.Apply(src, "{greeting}", DefaultPolicy())
		require.NoError(t, err)
		assert.Equal(t, "hello", result)
	})

	t.Run("substitutes every occurrence", func(t *testing.T) {
		r := MustReplacing("{x}", Static[someClass]("1"))
		result, err := r.Apply(src, "{x}+{x}={x}{x}", DefaultPolicy())
		require.NoError(t, err)
		assert.Equal(t, "1+1=11", result)
	})

	t.Run("tag absent from text skips resolver", func(t *testing.T) {
		calls := 0
		r := MustReplacing("{greeting}", countingResolver(&calls, Static[someClass]("hello")))
		result, err := r.Apply(src, "nothing to see", DefaultPolicy())
		require.NoError(t, err)
		assert.Equal(t, "nothing to see", result)
		assert.Equal(t, 0, calls)
	})

	t.Run("resolver runs once per apply", func(t *testing.T) {
		calls := 0
		r := MustReplacing("{x}", countingResolver(&calls, Static[someClass]("1")))
		_, err := r.Apply(src, "{x}{x}{x}", DefaultPolicy())
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("non-blank value ignores both flags", func(t *testing.T) {
		r := MustReplacing("{greeting}", Static[someClass]("hello"))
		result, err := r.Apply(src, "{greeting}!", Policy{})
		require.NoError(t, err)
		assert.Equal(t, "hello!", result)
	})

	t.Run("value may contain the tag without recursion", func(t *testing.T) {
		r := MustReplacing("{t}", Static[someClass]("<{t}>"))
		result, err := r.Apply(src, "{t}", DefaultPolicy())
		require.NoError(t, err)
		assert.Equal(t, "<{t}>", result)
	})
}

func TestReplacement_Apply_NoValue(t *testing.T) {
	src := someClass{}
	r := MustReplacing("{greeting}", Optional(func(someClass) *string { return nil }))

	t.Run("removed when ReplaceIfNull", func(t *testing.T) {
		result, err := r.Apply(src, "say {greeting} twice {greeting}", DefaultPolicy())
		require.NoError(t, err)
		assert.Equal(t, "say  twice ", result)
	})

	t.Run("kept when not ReplaceIfNull", func(t *testing.T) {
		result, err := r.Apply(src, "say {greeting}", DefaultPolicy().WithReplaceIfNull(false))
		require.NoError(t, err)
		assert.Equal(t, "say {greeting}", result)
	})

	t.Run("blank flag does not affect no value", func(t *testing.T) {
		result, err := r.Apply(src, "{greeting}", DefaultPolicy().WithReplaceIfBlank(false))
		require.NoError(t, err)
		assert.Equal(t, "", result)
	})
}

func TestReplacement_Apply_Blank(t *testing.T) {
	src := someClass{}

	tests := []struct {
		name     string
		value    string
		policy   Policy
		expected string
	}{
		{"whitespace substituted by default", "    ", DefaultPolicy(), "[    ]"},
		{"empty substituted by default", "", DefaultPolicy(), "[]"},
		{"tabs and newlines count as blank", "\t\n", DefaultPolicy(), "[\t\n]"},
		{"whitespace kept when not ReplaceIfBlank", "    ", DefaultPolicy().WithReplaceIfBlank(false), "[{v}]"},
		{"empty kept when not ReplaceIfBlank", "", DefaultPolicy().WithReplaceIfBlank(false), "[{v}]"},
		{"null flag does not affect blank", "  ", DefaultPolicy().WithReplaceIfNull(false), "[  ]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := MustReplacing("{v}", Value(func(someClass) string { return tt.value }))
			result, err := r.Apply(src, "[{v}]", tt.policy)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestReplacement_Apply_Failure(t *testing.T) {
	src := someClass{}
	r := MustReplacing("{greeting}", failing[someClass]("Wut?"))

	t.Run("caught failure removes tag", func(t *testing.T) {
		result, err := r.Apply(src, "{greeting}", DefaultPolicy())
		require.NoError(t, err)
		assert.Equal(t, "", result)
	})

	t.Run("caught failure keeps tag when not ReplaceIfNull", func(t *testing.T) {
		result, err := r.Apply(src, "{greeting}", Policy{CatchErrors: true})
		require.NoError(t, err)
		assert.Equal(t, "{greeting}", result)
	})

	t.Run("uncaught failure is returned", func(t *testing.T) {
		_, err := r.Apply(src, "{greeting}", DefaultPolicy().WithCatchErrors(false))
		require.Error(t, err)

		var resolverErr *ResolverError
		require.ErrorAs(t, err, &resolverErr)
		assert.Equal(t, "{greeting}", resolverErr.Tag)
		assert.Equal(t, "Wut?", resolverErr.Err.Error())
	})

	t.Run("uncaught failure keeps the original cause", func(t *testing.T) {
		cause := errors.New("database unavailable")
		r := MustReplacing("{greeting}", Fallible(func(someClass) (string, error) { return "", cause }))
		_, err := r.Apply(src, "{greeting}", DefaultPolicy().WithCatchErrors(false))
		assert.ErrorIs(t, err, cause)
	})

	t.Run("failure with absent tag is never observed", func(t *testing.T) {
		result, err := r.Apply(src, "plain", DefaultPolicy().WithCatchErrors(false))
		require.NoError(t, err)
		assert.Equal(t, "plain", result)
	})
}

func TestReplacement_Apply_Panic(t *testing.T) {
	src := someClass{}
	r := MustReplacing("{greeting}", Value(func(someClass) string { panic("boom") }))

	t.Run("caught panic removes tag", func(t *testing.T) {
		result, err := r.Apply(src, "hi {greeting}", DefaultPolicy())
		require.NoError(t, err)
		assert.Equal(t, "hi ", result)
	})

	t.Run("uncaught panic is returned as PanicError", func(t *testing.T) {
		_, err := r.Apply(src, "hi {greeting}", DefaultPolicy().WithCatchErrors(false))
		require.Error(t, err)

		var panicErr *PanicError
		require.ErrorAs(t, err, &panicErr)
		assert.Equal(t, "{greeting}", panicErr.Tag)
		assert.Equal(t, "boom", panicErr.Value)
		assert.NotEmpty(t, panicErr.Stack)
	})
}

func TestReplacement_Apply_NilSource(t *testing.T) {
	type named struct{ name string }
	r := MustReplacing("{greeting}", Value(func(n *named) string { return n.name }))

	t.Run("nil source panic is caught", func(t *testing.T) {
		result, err := r.Apply(nil, "{greeting}", DefaultPolicy())
		require.NoError(t, err)
		assert.Equal(t, "", result)
	})

	t.Run("nil source keeps tag when not ReplaceIfNull", func(t *testing.T) {
		result, err := r.Apply(nil, "{greeting}", DefaultPolicy().WithReplaceIfNull(false))
		require.NoError(t, err)
		assert.Equal(t, "{greeting}", result)
	})
}

func TestReplacement_ApplyText(t *testing.T) {
	r := MustReplacing("{greeting}", failing[someClass]("Wut?"))

	t.Run("nil text returns nil", func(t *testing.T) {
		result, err := r.ApplyText(someClass{}, nil, DefaultPolicy().WithCatchErrors(false))
		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("non-nil text is applied", func(t *testing.T) {
		text := "x{greeting}x"
		result, err := r.ApplyText(someClass{}, &text, DefaultPolicy())
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "xx", *result)
		assert.Equal(t, "x{greeting}x", text)
	})
}

func TestReplacement_ZeroValue(t *testing.T) {
	var r Replacement[someClass]
	result, err := r.Apply(someClass{}, "untouched", DefaultPolicy())
	require.NoError(t, err)
	assert.Equal(t, "untouched", result)
}

func TestResolverAdapters(t *testing.T) {
	t.Run("NonEmpty maps empty to no value", func(t *testing.T) {
		fn := NonEmpty(func(s string) string { return s })
		v, ok, err := fn("")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, "", v)

		v, ok, err = fn("  ")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "  ", v)
	})

	t.Run("Optional maps nil to no value", func(t *testing.T) {
		fn := Optional(func(p *string) *string { return p })
		_, ok, err := fn(nil)
		require.NoError(t, err)
		assert.False(t, ok)

		s := "x"
		v, ok, err := fn(&s)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "x", v)
	})

	t.Run("Fallible separates failure from value", func(t *testing.T) {
		fn := Fallible(func(fail bool) (string, error) {
			if fail {
				return "ignored", errors.New("nope")
			}
			return "yes", nil
		})
		v, ok, err := fn(false)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "yes", v)

		v, ok, err = fn(true)
		require.Error(t, err)
		assert.False(t, ok)
		assert.Equal(t, "", v)
	})

	t.Run("nil accessors produce nil resolvers", func(t *testing.T) {
		assert.Nil(t, Value[int](nil))
		assert.Nil(t, NonEmpty[int](nil))
		assert.Nil(t, Optional[int](nil))
		assert.Nil(t, Fallible[int](nil))
	})
}
