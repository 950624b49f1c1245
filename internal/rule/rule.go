// Package rule is the pure data model of compiled rules: prefix chains,
// premises, and conclusion terminals. It carries no behavior beyond the
// invariant validator in validate.go — advancing a rule is the
// stepper's job, not this package's.
package rule

import "github.com/robsimmons/aspis/internal/term"

// Proposition is a premise (or, applied, a fact) pattern: a relation name
// plus an ordered list of argument patterns and an ordered list of value
// patterns. Arity = len(Args) + len(Values).
type Proposition struct {
	Name   string
	Args   []term.Pattern
	Values []term.Pattern
}

// Inequality is a premise that holds iff A and B apply to different
// ground data under the current substitution.
type Inequality struct {
	A, B term.Pattern
}

// Premise is the closed sum of things a non-terminal prefix position can
// test: a Proposition match against the fact store, or an Inequality
// evaluated against the current substitution.
type Premise interface {
	isPremise()
}

// PropositionPremise wraps Proposition as a Premise.
type PropositionPremise struct{ Proposition }

func (PropositionPremise) isPremise() {}

// InequalityPremise wraps Inequality as a Premise.
type InequalityPremise struct{ Inequality }

func (InequalityPremise) isPremise() {}

// PartialRule is a non-final prefix position: the premise it tests, the
// variables that must already be bound on entry, and the successor
// position(s) to extend on success.
// Next is a list, not a single name, so one prefix can fan out to more
// than one conclusion — the compiled form of a rule head with multiple
// mutually exclusive heads.
type PartialRule struct {
	Premise Premise
	Shared  []string
	Next    []string
}

// Conclusion is the closed sum of terminal positions: NewFact or
// Contradiction.
type Conclusion interface {
	isConclusion()
}

// NewFact asserts a fact. Alternatives is a list of value-pattern lists —
// each alternative is one possible "values" tuple for the relation; a
// choice head with N possibilities has N entries here. Exhaustive=true
// means one of the alternatives must hold (failing all is a
// contradiction); Exhaustive=false means declining all of them is also a
// consistent outcome (open world).
type NewFact struct {
	HeadName     string
	ArgPatterns  []term.Pattern
	Alternatives [][]term.Pattern
	Exhaustive   bool
}

func (NewFact) isConclusion() {}

// Contradiction marks a constraint: reaching this terminal kills the
// database that reached it.
type Contradiction struct{}

func (Contradiction) isConclusion() {}

// RuleTable maps a prefix position name to its PartialRule.
type RuleTable map[string]PartialRule

// ConclusionTable maps a prefix position name to its terminal Conclusion.
type ConclusionTable map[string]Conclusion
