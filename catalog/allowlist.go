package catalog

import "strings"

// AllowList is a fixed set of accepted values for an enumerated field.
// Entries are stored lower-cased; lookups ignore case.
type AllowList struct {
	values []string
	index  map[string]struct{}
}

func newAllowList(values ...string) AllowList {
	index := make(map[string]struct{}, len(values))
	for _, v := range values {
		index[strings.ToLower(v)] = struct{}{}
	}
	return AllowList{values: values, index: index}
}

// Allows reports whether value case-insensitively matches an entry.
func (a AllowList) Allows(value string) bool {
	_, ok := a.index[strings.ToLower(value)]
	return ok
}

// Values returns the canonical entries in declaration order.
func (a AllowList) Values() []string {
	out := make([]string, len(a.values))
	copy(out, a.values)
	return out
}

func (a AllowList) String() string {
	return "[" + strings.Join(a.values, ", ") + "]"
}

var (
	Statuses = newAllowList("alive", "dead", "unknown")
	Genders  = newAllowList("male", "female", "genderless", "unknown")
	Species  = newAllowList("human", "alien", "robot", "animal", "mutant")
	Origins  = newAllowList(
		"earth (c-137)",
		"earth (replacement dimension)",
		"citadel of ricks",
		"galactic federation prison",
	)
)
