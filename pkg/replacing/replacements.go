package replacing

// Replacements is an ordered set of replacements with unique tags.
//
// Adding a replacement whose tag is already present drops the old entry and
// appends the new one, so the newest replacement for a tag wins and runs last.
// Tags compare by string value.
//
// Replacements is a persistent value: And and AndAll return new sets and never
// modify the receiver, so one set may be shared by any number of Replacers
// and goroutines. The zero value is an empty set.
type Replacements[T any] struct {
	items []Replacement[T]
}

// NewReplacements builds a set from rs in argument order.
// If rs repeats a tag, only the last one survives, positioned last.
func NewReplacements[T any](rs ...Replacement[T]) Replacements[T] {
	return FromSlice(rs)
}

// FromSlice builds a set from rs in slice order.
func FromSlice[T any](rs []Replacement[T]) Replacements[T] {
	var items []Replacement[T]
	for _, r := range rs {
		items = insertOrOverride(items, r)
	}
	return Replacements[T]{items: items}
}

// And returns a new set with r added; an existing entry for r's tag is replaced
// and r moves to the end.
func (s Replacements[T]) And(r Replacement[T]) Replacements[T] {
	return Replacements[T]{items: insertOrOverride(s.clone(), r)}
}

// AndAll returns a new set with every replacement of other added in other's
// order. Tags present in both sets end up owned by other.
func (s Replacements[T]) AndAll(other Replacements[T]) Replacements[T] {
	items := s.clone()
	for _, r := range other.items {
		items = insertOrOverride(items, r)
	}
	return Replacements[T]{items: items}
}

// Len returns the number of replacements in the set.
func (s Replacements[T]) Len() int {
	return len(s.items)
}

// Tags returns the tags in evaluation order.
func (s Replacements[T]) Tags() []string {
	tags := make([]string, len(s.items))
	for i, r := range s.items {
		tags[i] = r.tag
	}
	return tags
}

// Lookup returns the replacement that owns tag.
func (s Replacements[T]) Lookup(tag string) (Replacement[T], bool) {
	for _, r := range s.items {
		if r.tag == tag {
			return r, true
		}
	}
	return Replacement[T]{}, false
}

// Apply runs every replacement over text in set order, feeding each one's
// output to the next. The first uncaught resolver failure stops the fold and
// is returned; no further replacements run.
func (s Replacements[T]) Apply(src T, text string, p Policy) (string, error) {
	return s.apply(src, text, p, defaultTracker())
}

// ApplyText is Apply for optional text: nil in, nil out.
func (s Replacements[T]) ApplyText(src T, text *string, p Policy) (*string, error) {
	if text == nil {
		return nil, nil
	}
	out, err := s.Apply(src, *text, p)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s Replacements[T]) apply(src T, text string, p Policy, tr *tracker) (string, error) {
	result := text
	for _, r := range s.items {
		var err error
		result, err = r.apply(src, result, p, tr)
		if err != nil {
			return "", err
		}
	}
	return result, nil
}

// clone copies the backing slice so appends never alias the receiver.
func (s Replacements[T]) clone() []Replacement[T] {
	items := make([]Replacement[T], len(s.items), len(s.items)+1)
	copy(items, s.items)
	return items
}

// insertOrOverride drops any entry sharing r's tag and appends r.
// items must not be shared with another set.
func insertOrOverride[T any](items []Replacement[T], r Replacement[T]) []Replacement[T] {
	out := items[:0]
	for _, existing := range items {
		if existing.tag != r.tag {
			out = append(out, existing)
		}
	}
	return append(out, r)
}
