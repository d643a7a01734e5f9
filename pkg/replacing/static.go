package replacing

import (
	"fmt"
	"slices"

	"github.com/mcaine/replacing/pkg/replacing/config"
)

// StaticReplacements builds a set of constant replacements from a tag table.
// Tags are inserted in sorted order so evaluation order is deterministic.
//
// Returns an error matching ErrInvalidArgument if the table holds an empty tag.
func StaticReplacements[T any](table map[string]string) (Replacements[T], error) {
	tags := make([]string, 0, len(table))
	for tag := range table {
		tags = append(tags, tag)
	}
	slices.Sort(tags)

	var set Replacements[T]
	for _, tag := range tags {
		r, err := Replacing(tag, Static[T](table[tag]))
		if err != nil {
			return Replacements[T]{}, fmt.Errorf("static replacement %q: %w", tag, err)
		}
		set = set.And(r)
	}
	return set, nil
}

// StaticReplacementsFromConfig reads the tag table stored under key in cfg.
//
// Example YAML:
//
//	tags:
//	  "{company}": Acme Ltd
//	  "{year}": "2024"
func StaticReplacementsFromConfig[T any](cfg config.Config, key string) (Replacements[T], error) {
	return StaticReplacements[T](cfg.StringMap(key, nil))
}
