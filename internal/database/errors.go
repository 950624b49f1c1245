package database

import "github.com/robsimmons/aspis/internal/term"

// FunctionalInconsistency is a dynamic, run-time error: a second,
// different "values" tuple was offered for an (name, args) key that
// already has one. It is never returned to a caller expecting a Go
// error — the stepper folds it into a pruned ([]Database{}) result — but
// it carries enough detail for the category logger to explain why a
// branch died.
type FunctionalInconsistency struct {
	Name           string
	Args           []term.Data
	ExistingValues []term.Data
	NewValues      []term.Data
}

func (e *FunctionalInconsistency) Error() string {
	return "database: functional inconsistency on " +
		term.FormatProposition(e.Name, e.Args, e.ExistingValues) +
		" vs " + term.FormatProposition(e.Name, e.Args, e.NewValues)
}

// ExhaustiveChoiceExhausted is the dynamic error raised when every
// alternative of an Exhaustive NewFact conclusion failed and the
// redundant-possibility flag was not set. Like FunctionalInconsistency,
// it is reported for logging only; the stepper's return value already
// encodes the pruning.
type ExhaustiveChoiceExhausted struct {
	HeadName string
}

func (e *ExhaustiveChoiceExhausted) Error() string {
	return "database: exhaustive choice exhausted: " + e.HeadName
}
