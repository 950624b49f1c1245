package rule

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robsimmons/aspis/internal/term"
)

func TestValidateAcceptsEdgePathChain(t *testing.T) {
	rules := RuleTable{
		"pe_r0": {
			Premise: PropositionPremise{Proposition: Proposition{Name: "edge", Args: []term.Pattern{term.Var("X"), term.Var("Y")}}},
			Next:    []string{"pe_concl"},
		},
	}
	conclusions := ConclusionTable{
		"pe_concl": NewFact{
			HeadName:     "path",
			ArgPatterns:  []term.Pattern{term.Var("X"), term.Var("Y")},
			Alternatives: [][]term.Pattern{nil},
			Exhaustive:   true,
		},
	}
	require.NoError(t, Validate(rules, conclusions, []string{"pe_r0"}))
}

func TestValidateRejectsUndefinedVariableInHead(t *testing.T) {
	rules := RuleTable{
		"r0": {
			Premise: PropositionPremise{Proposition: Proposition{Name: "edge", Args: []term.Pattern{term.Var("X")}}},
			Next:    []string{"concl"},
		},
	}
	conclusions := ConclusionTable{
		"concl": NewFact{
			HeadName:     "path",
			ArgPatterns:  []term.Pattern{term.Var("X"), term.Var("Z")},
			Alternatives: [][]term.Pattern{nil},
			Exhaustive:   true,
		},
	}
	err := Validate(rules, conclusions, []string{"r0"})
	require.Error(t, err)
	var undef *UndefinedVariableInHead
	require.ErrorAs(t, err, &undef)
	require.Equal(t, "Z", undef.Var)
}

func TestValidateRejectsUndefinedVariableInInequality(t *testing.T) {
	rules := RuleTable{
		"r0": {
			Premise: InequalityPremise{Inequality: Inequality{A: term.Var("X"), B: term.Var("Y")}},
			Next:    []string{"concl"},
		},
	}
	conclusions := ConclusionTable{
		"concl": Contradiction{},
	}
	err := Validate(rules, conclusions, []string{"r0"})
	require.Error(t, err)
	var undef *UndefinedVariableInInequality
	require.ErrorAs(t, err, &undef)
}

func TestValidateRejectsMissingSuccessor(t *testing.T) {
	rules := RuleTable{
		"r0": {
			Premise: PropositionPremise{Proposition: Proposition{Name: "edge"}},
		},
	}
	err := Validate(rules, ConclusionTable{}, []string{"r0"})
	require.Error(t, err)
	var violation *CompilerInvariantViolation
	require.ErrorAs(t, err, &violation)
}

func TestValidateRejectsDanglingPosition(t *testing.T) {
	err := Validate(RuleTable{}, ConclusionTable{}, []string{"missing"})
	require.Error(t, err)
	var violation *CompilerInvariantViolation
	require.ErrorAs(t, err, &violation)
}
