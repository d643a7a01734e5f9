/*
Package replacing substitutes literal tags in text with values computed from
a source object.

# Overview

A Replacement binds one literal tag, such as "{name}", to a Resolver that
computes its value from a source object of type T. Replacements collects
replacements into an ordered set with unique tags. A Replacer pairs a source
object with a Policy and renders text against a set.

Tags are opaque literals. There is no template grammar: no loops,
conditionals, nesting or escaping. Each replacement performs a plain
find-and-replace of every occurrence of its tag.

# Basic Usage

	type Person struct {
	    Name string
	    Age  int
	}

	vocabulary := replacing.NewReplacements(
	    replacing.MustReplacing("{name}", replacing.NonEmpty(func(p Person) string { return p.Name })),
	    replacing.MustReplacing("{age}", replacing.Value(func(p Person) string { return strconv.Itoa(p.Age) })),
	)

	out, err := replacing.Using(Person{Name: "Mike", Age: 51}).
	    Render("My name is {name} and my age is {age}", vocabulary)
	// out: "My name is Mike and my age is 51"

A Replacer over Person only accepts Replacements[Person]; mixing in a set
built for another type does not compile.

# Resolvers

A Resolver returns (value, ok, err). ok == false means the source has no
value for the tag; a non-nil err means the value could not be computed.
Adapters cover the common accessor shapes:

  - Value: always a value, possibly blank
  - NonEmpty: "" means no value
  - Optional: nil *string means no value
  - Fallible: (string, error)
  - Static: a constant

A resolver only runs when its tag occurs in the text.

# Policy

Three flags decide the edge cases, all on by default:

  - ReplaceIfNull: no value removes the tag; off leaves it in place
  - ReplaceIfBlank: a whitespace-only value is substituted; off leaves the tag
  - CatchErrors: a failure counts as no value; off returns a *ResolverError

A non-blank value is always substituted. Panics inside resolvers are
recovered as *PanicError and follow CatchErrors like any other failure.

# Composition

Adding a replacement for a tag that is already in the set drops the old one
and appends the new one, so the newest replacement wins and runs last:

	redacted := vocabulary.And(replacing.MustReplacing("{name}", replacing.Static[Person]("REDACTED")))

And and AndAll return new sets. The receiver is never modified.

Replacements run in set order, each on the output of the previous one. When
one tag is contained in another ("{id}" and "{id}:full"), whichever runs
first consumes the overlapping text.

# Observability

Caught failures are logged at WARN through slog.Default() unless WithLogger
says otherwise. WithMetrics and WithTracing enable OpenTelemetry, and
WithJournal records caught failures in a diagnostics.Journal:

	journal, _ := diagnostics.NewSQLiteJournal("./failures.db")
	defer journal.Close()

	r := replacing.Using(person,
	    replacing.WithJournal(journal),
	    replacing.WithMetrics(true),
	    replacing.WithTracing(true))

Every render gets a render ID shared by its logs, spans and journal entries.

# Thread Safety

  - Replacement and Replacements are immutable and safe for concurrent use
  - Replacer is a value; concurrent renders are safe if the journal is
  - Resolvers run on the calling goroutine, with no timeout and no retry

# Subpackages

  - config: YAML/JSON configuration for policies and static tag tables
  - diagnostics: journals of caught resolver failures (memory, SQLite)
  - observability: logging, metrics and tracing helpers
*/
package replacing
