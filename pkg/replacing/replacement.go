package replacing

import (
	"runtime/debug"
	"strings"
)

// Resolver computes the value for a tag from a source object.
//
// ok reports whether a value was produced. A resolver that returns
// ok == false has no value for the tag; one that returns a non-nil err
// failed to compute it. The Policy decides what each case does to the text.
type Resolver[T any] func(src T) (value string, ok bool, err error)

// Value adapts an accessor that always produces a value, possibly blank.
func Value[T any](fn func(T) string) Resolver[T] {
	if fn == nil {
		return nil
	}
	return func(src T) (string, bool, error) {
		return fn(src), true, nil
	}
}

// NonEmpty adapts an accessor whose empty result means "no value".
//
// Example:
//
//	replacing.Replacing("{name}", replacing.NonEmpty(func(p Person) string { return p.Name }))
func NonEmpty[T any](fn func(T) string) Resolver[T] {
	if fn == nil {
		return nil
	}
	return func(src T) (string, bool, error) {
		v := fn(src)
		return v, v != "", nil
	}
}

// Optional adapts an accessor whose nil result means "no value".
func Optional[T any](fn func(T) *string) Resolver[T] {
	if fn == nil {
		return nil
	}
	return func(src T) (string, bool, error) {
		v := fn(src)
		if v == nil {
			return "", false, nil
		}
		return *v, true, nil
	}
}

// Fallible adapts an accessor that may fail.
func Fallible[T any](fn func(T) (string, error)) Resolver[T] {
	if fn == nil {
		return nil
	}
	return func(src T) (string, bool, error) {
		v, err := fn(src)
		if err != nil {
			return "", false, err
		}
		return v, true, nil
	}
}

// Static returns a resolver that ignores the source and yields v.
func Static[T any](v string) Resolver[T] {
	return func(T) (string, bool, error) {
		return v, true, nil
	}
}

// Replacement binds one literal tag to the resolver that computes its value.
//
// Replacements are immutable and safe to share between goroutines.
// Build them with Replacing; the zero value has no tag and applies as a no-op.
type Replacement[T any] struct {
	tag string
	fn  Resolver[T]
}

// Replacing creates a Replacement for tag.
//
// Returns an error matching ErrInvalidArgument if tag is empty or fn is nil.
// The resolver is not invoked.
func Replacing[T any](tag string, fn Resolver[T]) (Replacement[T], error) {
	if tag == "" {
		return Replacement[T]{}, ErrEmptyTag
	}
	if fn == nil {
		return Replacement[T]{}, ErrNilResolver
	}
	return Replacement[T]{tag: tag, fn: fn}, nil
}

// MustReplacing is like Replacing but panics on invalid input.
// Intended for package-level vocabularies built from literals.
func MustReplacing[T any](tag string, fn Resolver[T]) Replacement[T] {
	r, err := Replacing(tag, fn)
	if err != nil {
		panic("replacing: " + err.Error())
	}
	return r
}

// Tag returns the literal tag this replacement substitutes.
func (r Replacement[T]) Tag() string {
	return r.tag
}

// Apply substitutes every occurrence of the tag in text.
//
// The resolver runs only if text contains the tag. Caught failures are
// logged through slog.Default(); use a Replacer to route them elsewhere.
func (r Replacement[T]) Apply(src T, text string, p Policy) (string, error) {
	return r.apply(src, text, p, defaultTracker())
}

// ApplyText is Apply for optional text: nil in, nil out.
func (r Replacement[T]) ApplyText(src T, text *string, p Policy) (*string, error) {
	if text == nil {
		return nil, nil
	}
	out, err := r.Apply(src, *text, p)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r Replacement[T]) apply(src T, text string, p Policy, tr *tracker) (string, error) {
	if r.tag == "" || !strings.Contains(text, r.tag) {
		return text, nil
	}

	value, ok, err := r.resolve(src)
	if err != nil {
		if !p.CatchErrors {
			tr.resolverFailed(r.tag, err, false)
			return text, &ResolverError{Tag: r.tag, Err: err}
		}
		tr.resolverFailed(r.tag, err, true)
		value, ok = "", false
	}

	switch {
	case !ok:
		if !p.ReplaceIfNull {
			tr.substituted(r.tag, outcomeKept)
			return text, nil
		}
		tr.substituted(r.tag, outcomeRemoved)
		return strings.ReplaceAll(text, r.tag, ""), nil
	case strings.TrimSpace(value) == "":
		if !p.ReplaceIfBlank {
			tr.substituted(r.tag, outcomeKept)
			return text, nil
		}
		tr.substituted(r.tag, outcomeBlank)
		return strings.ReplaceAll(text, r.tag, value), nil
	default:
		tr.substituted(r.tag, outcomeValue)
		return strings.ReplaceAll(text, r.tag, value), nil
	}
}

// resolve runs the resolver, converting a panic into a *PanicError.
func (r Replacement[T]) resolve(src T) (value string, ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			value, ok = "", false
			err = &PanicError{
				Tag:   r.tag,
				Value: rec,
				Stack: string(debug.Stack()),
			}
		}
	}()
	return r.fn(src)
}
