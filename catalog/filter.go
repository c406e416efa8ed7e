package catalog

import "strings"

// Optional is a string that may be absent. The zero value is absent.
type Optional struct {
	value string
	set   bool
}

func Some(value string) Optional {
	return Optional{value: value, set: true}
}

func None() Optional {
	return Optional{}
}

// OptionalFromQuery treats a missing or blank query value as absent.
func OptionalFromQuery(value string, present bool) Optional {
	if !present || strings.TrimSpace(value) == "" {
		return None()
	}
	return Some(value)
}

func (o Optional) Get() (string, bool) {
	return o.value, o.set
}

func (o Optional) IsSet() bool {
	return o.set
}

// Matches is true when o is absent or equals candidate ignoring case.
func (o Optional) Matches(candidate string) bool {
	return !o.set || strings.EqualFold(o.value, candidate)
}

// Filter holds the optional per-field predicates of a filter query.
// A record must satisfy every predicate that is set.
type Filter struct {
	Species Optional
	Status  Optional
	Gender  Optional
	Origin  Optional
}

func (f Filter) Match(c *Character) bool {
	return f.Species.Matches(c.Species) &&
		f.Status.Matches(c.Status) &&
		f.Gender.Matches(c.Gender) &&
		f.Origin.Matches(c.Origin)
}

func (f Filter) Empty() bool {
	return !f.Species.IsSet() && !f.Status.IsSet() && !f.Gender.IsSet() && !f.Origin.IsSet()
}
