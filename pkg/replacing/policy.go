package replacing

import "github.com/mcaine/replacing/pkg/replacing/config"

// Policy decides what happens to a tag when its resolver yields no value,
// a blank value, or fails.
//
// Policy is a plain value; the With* methods return modified copies.
type Policy struct {
	// ReplaceIfNull removes the tag when the resolver yields no value.
	// When false the tag text is left untouched.
	ReplaceIfNull bool

	// ReplaceIfBlank substitutes a blank (empty or whitespace-only) value.
	// When false the tag text is left untouched.
	ReplaceIfBlank bool

	// CatchErrors downgrades a resolver failure to "no value".
	// When false the failure is returned to the caller.
	CatchErrors bool
}

// DefaultPolicy returns the policy used by Using: every flag on.
func DefaultPolicy() Policy {
	return Policy{
		ReplaceIfNull:  true,
		ReplaceIfBlank: true,
		CatchErrors:    true,
	}
}

// WithReplaceIfNull returns a copy of p with ReplaceIfNull set to v.
func (p Policy) WithReplaceIfNull(v bool) Policy {
	p.ReplaceIfNull = v
	return p
}

// WithReplaceIfBlank returns a copy of p with ReplaceIfBlank set to v.
func (p Policy) WithReplaceIfBlank(v bool) Policy {
	p.ReplaceIfBlank = v
	return p
}

// WithCatchErrors returns a copy of p with CatchErrors set to v.
func (p Policy) WithCatchErrors(v bool) Policy {
	p.CatchErrors = v
	return p
}

// PolicyFromConfig reads a policy from cfg.
// Missing or mistyped keys keep their default (true).
//
// Example YAML:
//
//	replace_if_null: false
//	replace_if_blank: true
//	catch_errors: true
func PolicyFromConfig(cfg config.Config) Policy {
	flags := cfg.Policy()
	return Policy{
		ReplaceIfNull:  flags.ReplaceIfNull,
		ReplaceIfBlank: flags.ReplaceIfBlank,
		CatchErrors:    flags.CatchErrors,
	}
}
