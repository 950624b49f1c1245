package rule

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robsimmons/aspis/internal/database"
	"github.com/robsimmons/aspis/internal/term"
)

func TestRelationIndexGroupsByPremiseRelation(t *testing.T) {
	rules := RuleTable{
		"r0": {Premise: PropositionPremise{Proposition: Proposition{Name: "edge"}}, Next: []string{"concl"}},
		"r1": {Premise: PropositionPremise{Proposition: Proposition{Name: "edge"}}, Next: []string{"concl"}},
		"r2": {Premise: PropositionPremise{Proposition: Proposition{Name: "path"}}, Next: []string{"concl"}},
		"r3": {Premise: InequalityPremise{Inequality: Inequality{A: term.Var("X"), B: term.Var("Y")}}, Next: []string{"concl"}},
	}
	p := NewProgram(rules, ConclusionTable{}, database.New())

	edgeUsers := p.RelationIndex("edge")
	require.ElementsMatch(t, []string{"r0", "r1"}, edgeUsers)
	require.ElementsMatch(t, []string{"r2"}, p.RelationIndex("path"))
	require.Empty(t, p.RelationIndex("unused"))
}

func TestRelationIndexSurvivesValueCopy(t *testing.T) {
	rules := RuleTable{
		"r0": {Premise: PropositionPremise{Proposition: Proposition{Name: "edge"}}, Next: []string{"concl"}},
	}
	p := NewProgram(rules, ConclusionTable{}, database.New())
	copied := p
	require.ElementsMatch(t, []string{"r0"}, copied.RelationIndex("edge"))
}
