// Package stepper implements the single-step transition at the core of
// saturation: given a Program and a Database with a non-empty queue,
// Step consumes one work item and returns the zero, one, or many
// successor databases that represent, respectively, a contradiction, a
// deterministic advance, or a branching choice.
package stepper

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/robsimmons/aspis/internal/database"
	"github.com/robsimmons/aspis/internal/logging"
	"github.com/robsimmons/aspis/internal/rule"
	"github.com/robsimmons/aspis/internal/term"
)

// ErrEmptyQueue is the fatal "queue under-flow" condition: step must
// never be called on a database whose queue is already empty. The
// search driver checks this itself before calling Step; this is the
// safety net for any other caller.
var ErrEmptyQueue = errors.New("stepper: step called on empty queue")

// Step advances db by exactly one queue item. The returned slice's
// length encodes the outcome: 0 means db is now closed as inconsistent,
// 1 means a deterministic advance, and 2+ means a branching choice.
func Step(program rule.Program, db database.Database) ([]database.Database, error) {
	item, popped, ok := db.PopQueue()
	if !ok {
		return nil, ErrEmptyQueue
	}

	switch it := item.(type) {
	case database.PrefixItem:
		return stepPrefixItem(program, popped, it)
	case database.FactItem:
		return stepFactItem(program, popped, it)
	default:
		return nil, &rule.CompilerInvariantViolation{Detail: fmt.Sprintf("unknown work item type %T", item)}
	}
}

func stepPrefixItem(program rule.Program, db database.Database, it database.PrefixItem) ([]database.Database, error) {
	if concl, ok := program.Conclusions[it.Name]; ok {
		return stepConclusion(db, concl, it.Subst)
	}
	pr, ok := program.Rules[it.Name]
	if !ok {
		return nil, &rule.CompilerInvariantViolation{Detail: "prefix " + it.Name + " is neither a rule nor a conclusion"}
	}
	return stepPartialRule(db, pr, it.Subst)
}

func stepConclusion(db database.Database, concl rule.Conclusion, subst term.Substitution) ([]database.Database, error) {
	switch c := concl.(type) {
	case rule.Contradiction:
		return nil, nil
	case rule.NewFact:
		return stepNewFact(db, c, subst)
	default:
		return nil, &rule.CompilerInvariantViolation{Detail: fmt.Sprintf("unknown conclusion type %T", concl)}
	}
}

func stepNewFact(db database.Database, c rule.NewFact, subst term.Substitution) ([]database.Database, error) {
	args, err := term.ApplyList(subst, c.ArgPatterns)
	if err != nil {
		return nil, &rule.CompilerInvariantViolation{Detail: "NewFact " + c.HeadName + ": " + err.Error()}
	}

	var successors []database.Database
	redundantPossibility := false

	for _, altPatterns := range c.Alternatives {
		values, err := term.ApplyList(subst, altPatterns)
		if err != nil {
			return nil, &rule.CompilerInvariantViolation{Detail: "NewFact " + c.HeadName + ": " + err.Error()}
		}
		next, outcome, incons := db.InsertFact(c.HeadName, args, values)
		switch outcome {
		case database.Inserted:
			successors = append(successors, next)
		case database.Redundant:
			redundantPossibility = true
		case database.Inconsistent:
			// dropped; only this alternative is lost
			logging.Get(logging.CategoryStepper).Info("alternative dropped", zap.Error(incons))
		}
	}

	if !c.Exhaustive || redundantPossibility {
		successors = append(successors, db)
	}
	if len(successors) == 0 {
		logging.Get(logging.CategoryStepper).Info("branch pruned", zap.Error(&database.ExhaustiveChoiceExhausted{HeadName: c.HeadName}))
	}
	return successors, nil
}

func stepPartialRule(db database.Database, pr rule.PartialRule, subst term.Substitution) ([]database.Database, error) {
	switch premise := pr.Premise.(type) {
	case rule.PropositionPremise:
		out := db
		for _, fact := range db.FactsForName(premise.Name) {
			s2, ok := term.MatchList(subst, premise.Args, fact.Args)
			if !ok {
				continue
			}
			s3, ok := term.MatchList(s2, premise.Values, fact.Values)
			if !ok {
				continue
			}
			for _, q := range pr.Next {
				out = out.ExtendPrefix(q, s3)
			}
		}
		return []database.Database{out}, nil

	case rule.InequalityPremise:
		a, err := term.Apply(subst, premise.A)
		if err != nil {
			return nil, &rule.CompilerInvariantViolation{Detail: "inequality: " + err.Error()}
		}
		b, err := term.Apply(subst, premise.B)
		if err != nil {
			return nil, &rule.CompilerInvariantViolation{Detail: "inequality: " + err.Error()}
		}
		if term.Equal(a, b) {
			return []database.Database{db}, nil
		}
		out := db
		for _, q := range pr.Next {
			out = out.ExtendPrefix(q, subst)
		}
		return []database.Database{out}, nil

	default:
		return nil, &rule.CompilerInvariantViolation{Detail: fmt.Sprintf("unknown premise type %T", premise)}
	}
}

func stepFactItem(program rule.Program, db database.Database, it database.FactItem) ([]database.Database, error) {
	out := db
	for _, p := range program.RelationIndex(it.Name) {
		pr, ok := program.Rules[p]
		if !ok {
			return nil, &rule.CompilerInvariantViolation{Detail: "relation index points at unknown prefix " + p}
		}
		premise, ok := pr.Premise.(rule.PropositionPremise)
		if !ok {
			return nil, &rule.CompilerInvariantViolation{Detail: "relation index points at non-proposition premise " + p}
		}
		for _, sigma := range db.PrefixesForName(p) {
			s2, ok := term.MatchList(sigma, premise.Args, it.Args)
			if !ok {
				continue
			}
			s3, ok := term.MatchList(s2, premise.Values, it.Values)
			if !ok {
				continue
			}
			for _, q := range pr.Next {
				out = out.ExtendPrefix(q, s3)
			}
		}
	}
	return []database.Database{out}, nil
}
