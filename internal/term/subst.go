package term

import "sort"

// Substitution is a finite, immutable mapping from variable name to Data.
// Extension always produces a new value; the expected size is small (the
// variable count of a single rule), so a flat slice beats a map on both
// allocation count and Equal().
type Substitution struct {
	// kept sorted by name so two substitutions with the same bindings
	// compare equal regardless of bind order, and so Equal is a single
	// linear pass.
	entries []substEntry
}

type substEntry struct {
	name string
	val  Data
}

// EmptySubst is the substitution with no bindings.
var EmptySubst = Substitution{}

// Lookup returns the binding for name, if any.
func (s Substitution) Lookup(name string) (Data, bool) {
	i := sort.Search(len(s.entries), func(i int) bool { return s.entries[i].name >= name })
	if i < len(s.entries) && s.entries[i].name == name {
		return s.entries[i].val, true
	}
	return Data{}, false
}

// Extend returns a new Substitution with name bound to val. It is the
// caller's responsibility to have already checked name is unbound (or, if
// bound, that val agrees with match's recursive re-check); Extend itself
// does not look for a prior binding.
func (s Substitution) Extend(name string, val Data) Substitution {
	next := make([]substEntry, len(s.entries)+1)
	i := sort.Search(len(s.entries), func(i int) bool { return s.entries[i].name >= name })
	copy(next, s.entries[:i])
	next[i] = substEntry{name: name, val: val}
	copy(next[i+1:], s.entries[i:])
	return Substitution{entries: next}
}

// Names returns the bound variable names in sorted order.
func (s Substitution) Names() []string {
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.name
	}
	return out
}

// Len is the number of bindings.
func (s Substitution) Len() int { return len(s.entries) }

// SubstEqual is pointwise equality: same keyset, same Data per key. Entries
// are kept sorted, so this is a single linear scan. Prefix storage dedups
// by the same notion of equality, through CanonSubstKey: two
// pointwise-equal substitutions for the same prefix position are the same
// position, not two.
func SubstEqual(a, b Substitution) bool {
	if len(a.entries) != len(b.entries) {
		return false
	}
	for i := range a.entries {
		if a.entries[i].name != b.entries[i].name {
			return false
		}
		if !Equal(a.entries[i].val, b.entries[i].val) {
			return false
		}
	}
	return true
}
