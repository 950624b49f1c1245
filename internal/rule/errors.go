package rule

import "fmt"

// Static, compile-time errors. The external compiler is expected to
// raise these before a Program ever reaches the core; this package
// exposes them so a compiler or a convenience validator (see
// validate.go) can report them the same way.

// UndefinedVariableInHead is raised when a conclusion's head pattern
// references a variable no premise on the path to it could have bound.
type UndefinedVariableInHead struct {
	Position string
	Var      string
}

func (e *UndefinedVariableInHead) Error() string {
	return fmt.Sprintf("rule: %s: undefined variable in head: %s", e.Position, e.Var)
}

// UndefinedVariableInInequality is raised when an Inequality premise
// references, or a position's Shared set lists, a variable no premise on
// the path to it could have bound.
type UndefinedVariableInInequality struct {
	Position string
	Var      string
}

func (e *UndefinedVariableInInequality) Error() string {
	return fmt.Sprintf("rule: %s: undefined variable in inequality: %s", e.Position, e.Var)
}

// UngroundEqualityLHS is raised when a source-level equality premise's
// left side is non-ground at compile time (this package never sees
// source-level equality directly — it is lowered to Proposition/Inequality
// pairs before reaching PartialRule — but the error is kept here so a
// compiler sharing this package's error types has one place to report it
// from).
type UngroundEqualityLHS struct {
	Position string
	Var      string
}

func (e *UngroundEqualityLHS) Error() string {
	return fmt.Sprintf("rule: %s: unground equality left-hand side: %s", e.Position, e.Var)
}

// CompilerInvariantViolation is the dynamic/fatal tier: the stepper hit
// a state that could only occur if the compiler's own invariants were
// violated upstream. It is never pruned — it propagates to the caller.
type CompilerInvariantViolation struct {
	Detail string
}

func (e *CompilerInvariantViolation) Error() string {
	return fmt.Sprintf("rule: compiler invariant violated: %s", e.Detail)
}
