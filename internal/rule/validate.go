package rule

import "github.com/robsimmons/aspis/internal/term"

// Validate is a convenience fixpoint check of the compiler invariants
// the stepper assumes as its precondition: every variable a Shared set,
// an Inequality premise or a head references must already be bound by an
// earlier Proposition premise, and every non-terminal
// position must have at least one successor. It is not part of the
// stepper's hot path (the stepper trusts its input and faults with
// CompilerInvariantViolation if an invariant turns out false at
// runtime); this is for a compiler, or a test, that wants to catch a
// bad Program before handing it to the driver.
//
// entryPoints are the positions with no predecessor — conventionally each
// rule's r0 (for a zero-premise rule, r0 is itself a terminal position and
// is checked as a conclusion with no variables bound).
func Validate(rules RuleTable, conclusions ConclusionTable, entryPoints []string) error {
	bound := make(map[string]map[string]bool) // position -> variables guaranteed bound on entry
	var walk func(name string, incoming map[string]bool) error
	walk = func(name string, incoming map[string]bool) error {
		if prior, seen := bound[name]; seen {
			merged := intersect(prior, incoming)
			if sameSet(merged, prior) {
				return nil // fixpoint reached on this path
			}
			bound[name] = merged
			incoming = merged
		} else {
			bound[name] = incoming
		}

		if c, ok := conclusions[name]; ok {
			return validateConclusion(name, c, incoming)
		}
		pr, ok := rules[name]
		if !ok {
			return &CompilerInvariantViolation{Detail: "position " + name + " is neither a rule nor a conclusion"}
		}
		for _, v := range pr.Shared {
			if !incoming[v] {
				return &UndefinedVariableInInequality{Position: name, Var: v}
			}
		}
		next := incoming
		switch p := pr.Premise.(type) {
		case PropositionPremise:
			vars := term.FreeVars(joinPatterns(p.Args, p.Values))
			next = union(incoming, vars)
		case InequalityPremise:
			for _, v := range term.FreeVars(p.A) {
				if !incoming[v] {
					return &UndefinedVariableInInequality{Position: name, Var: v}
				}
			}
			for _, v := range term.FreeVars(p.B) {
				if !incoming[v] {
					return &UndefinedVariableInInequality{Position: name, Var: v}
				}
			}
		}
		if len(pr.Next) == 0 {
			return &CompilerInvariantViolation{Detail: "position " + name + " has empty next list"}
		}
		for _, q := range pr.Next {
			if err := walk(q, next); err != nil {
				return err
			}
		}
		return nil
	}

	for _, name := range entryPoints {
		if err := walk(name, map[string]bool{}); err != nil {
			return err
		}
	}
	return nil
}

func validateConclusion(name string, c Conclusion, incoming map[string]bool) error {
	nf, ok := c.(NewFact)
	if !ok {
		return nil // Contradiction references no variables
	}
	for _, v := range term.FreeVars(joinPatterns(nf.ArgPatterns, nil)) {
		if !incoming[v] {
			return &UndefinedVariableInHead{Position: name, Var: v}
		}
	}
	for _, alt := range nf.Alternatives {
		for _, v := range term.FreeVars(joinPatterns(alt, nil)) {
			if !incoming[v] {
				return &UndefinedVariableInHead{Position: name, Var: v}
			}
		}
	}
	return nil
}

func joinPatterns(a, b []term.Pattern) term.Pattern {
	// Wrap in a synthetic constructor purely so term.FreeVars can walk a
	// single pattern over the concatenation of both lists.
	args := make([]term.Pattern, 0, len(a)+len(b))
	args = append(args, a...)
	args = append(args, b...)
	return term.Const("_", args...)
}

func union(a map[string]bool, names []string) map[string]bool {
	out := make(map[string]bool, len(a)+len(names))
	for k := range a {
		out[k] = true
	}
	for _, n := range names {
		out[n] = true
	}
	return out
}

func intersect(a, b map[string]bool) map[string]bool {
	out := make(map[string]bool)
	for k := range a {
		if b[k] {
			out[k] = true
		}
	}
	return out
}

func sameSet(a, b map[string]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}
