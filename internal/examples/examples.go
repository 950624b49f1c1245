// Package examples builds six small, worked ready-to-run rule.Program
// values. Compiling surface syntax into prefix chains is the external
// compiler's job, out of scope for the core; this package hand-builds
// the compiled form directly, the way a test fixture or a demo CLI mode
// would, and doubles as worked examples of every corner of the
// Conclusion/Premise model: plain deterministic facts, exhaustive
// choice, open-world possibility, and inequality constraints.
package examples

import (
	"github.com/robsimmons/aspis/internal/database"
	"github.com/robsimmons/aspis/internal/rule"
	"github.com/robsimmons/aspis/internal/term"
)

func v(name string) term.Pattern { return term.Var(name) }
func c(name string) term.Pattern { return term.Const(name) }

func dconst(name string) term.Data { return term.DConst(name) }

// plain builds a NewFact conclusion for a deterministic, mandatory fact:
// a single alternative that must hold (exhaustive), matching how a
// non-choice rule head behaves under the functional invariant — failing
// to assert it is a contradiction, not a silent no-op.
func plain(headName string, args []term.Pattern, values []term.Pattern) rule.NewFact {
	return rule.NewFact{
		HeadName:     headName,
		ArgPatterns:  args,
		Alternatives: [][]term.Pattern{values},
		Exhaustive:   true,
	}
}

// EdgePath is transitive closure over a hand-coded "edge" EDB via two
// rules, one base case and one recursive case chained through a shared
// variable.
func EdgePath() rule.Program {
	db := database.New()
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}} {
		db, _, _ = db.InsertFact("edge", []term.Data{dconst(e[0]), dconst(e[1])}, nil)
	}

	rules := rule.RuleTable{
		// path X Y :- edge X Y.
		"pe_r0": {
			Premise: rule.PropositionPremise{Proposition: rule.Proposition{Name: "edge", Args: []term.Pattern{v("X"), v("Y")}}},
			Next:    []string{"pe_concl"},
		},
		// path X Z :- edge X Y, path Y Z.
		"pp_r0": {
			Premise: rule.PropositionPremise{Proposition: rule.Proposition{Name: "edge", Args: []term.Pattern{v("X"), v("Y")}}},
			Next:    []string{"pp_r1"},
		},
		"pp_r1": {
			Premise: rule.PropositionPremise{Proposition: rule.Proposition{Name: "path", Args: []term.Pattern{v("Y"), v("Z")}}},
			Shared:  []string{"Y"},
			Next:    []string{"pp_concl"},
		},
	}
	conclusions := rule.ConclusionTable{
		"pe_concl": plain("path", []term.Pattern{v("X"), v("Y")}, nil),
		"pp_concl": plain("path", []term.Pattern{v("X"), v("Z")}, nil),
	}

	db = db.ExtendPrefix("pe_r0", term.EmptySubst)
	db = db.ExtendPrefix("pp_r0", term.EmptySubst)

	return rule.NewProgram(rules, conclusions, db)
}

// FunctionalInconsistency is two zero-premise rules asserting different
// values for the same (relation, args) key.
func FunctionalInconsistency() rule.Program {
	db := database.New()

	conclusions := rule.ConclusionTable{
		"homeA": plain("home", []term.Pattern{c("celeste")}, []term.Pattern{c("uplands")}),
		"homeB": plain("home", []term.Pattern{c("celeste")}, []term.Pattern{c("doghouse")}),
	}

	db = db.ExtendPrefix("homeA", term.EmptySubst)
	db = db.ExtendPrefix("homeB", term.EmptySubst)

	return rule.NewProgram(rule.RuleTable{}, conclusions, db)
}

// Choice is an exhaustive two-way choice head fired once per base fact.
func Choice() rule.Program {
	db := database.New()
	db, _, _ = db.InsertFact("thing", []term.Data{dconst("a")}, nil)
	db, _, _ = db.InsertFact("thing", []term.Data{dconst("b")}, nil)

	rules := rule.RuleTable{
		"cr_r0": {
			Premise: rule.PropositionPremise{Proposition: rule.Proposition{Name: "thing", Args: []term.Pattern{v("X")}}},
			Next:    []string{"cr_concl"},
		},
	}
	conclusions := rule.ConclusionTable{
		"cr_concl": rule.NewFact{
			HeadName:     "color",
			ArgPatterns:  []term.Pattern{v("X")},
			Alternatives: [][]term.Pattern{{c("red")}, {c("blue")}},
			Exhaustive:   true,
		},
	}

	db = db.ExtendPrefix("cr_r0", term.EmptySubst)
	return rule.NewProgram(rules, conclusions, db)
}

// ChoiceWithConstraint is Choice plus a constraint forbidding color a
// and color b from taking the same value.
func ChoiceWithConstraint() rule.Program {
	p := Choice()

	p.Rules["con_r0"] = rule.PartialRule{
		Premise: rule.PropositionPremise{Proposition: rule.Proposition{
			Name: "color", Args: []term.Pattern{c("a")}, Values: []term.Pattern{v("V")},
		}},
		Next: []string{"con_r1"},
	}
	p.Rules["con_r1"] = rule.PartialRule{
		Premise: rule.PropositionPremise{Proposition: rule.Proposition{
			Name: "color", Args: []term.Pattern{c("b")}, Values: []term.Pattern{v("V")},
		}},
		Shared: []string{"V"},
		Next:   []string{"con_concl"},
	}
	p.Conclusions["con_concl"] = rule.Contradiction{}

	p.DB = p.DB.ExtendPrefix("con_r0", term.EmptySubst)
	return rule.NewProgram(p.Rules, p.Conclusions, p.DB)
}

// OpenWorldPossibility is a single non-exhaustive, zero-premise choice
// of one alternative — asserting it or declining it are both consistent
// outcomes.
func OpenWorldPossibility() rule.Program {
	db := database.New()
	conclusions := rule.ConclusionTable{
		"pRule": rule.NewFact{
			HeadName:     "p",
			Alternatives: [][]term.Pattern{{c("false")}},
			Exhaustive:   false,
		},
	}
	db = db.ExtendPrefix("pRule", term.EmptySubst)
	return rule.NewProgram(rule.RuleTable{}, conclusions, db)
}

// InequalityPruning is two facts mapped to the same value tripping a
// constraint that requires their keys to differ.
func InequalityPruning() rule.Program {
	db := database.New()
	db, _, _ = db.InsertFact("in", []term.Data{dconst("c1")}, []term.Data{dconst("doghouse")})
	db, _, _ = db.InsertFact("in", []term.Data{dconst("c2")}, []term.Data{dconst("doghouse")})

	rules := rule.RuleTable{
		"fc_r0": {
			Premise: rule.PropositionPremise{Proposition: rule.Proposition{
				Name: "in", Args: []term.Pattern{v("X")}, Values: []term.Pattern{v("V")},
			}},
			Next: []string{"fc_r1"},
		},
		"fc_r1": {
			Premise: rule.PropositionPremise{Proposition: rule.Proposition{
				Name: "in", Args: []term.Pattern{v("Y")}, Values: []term.Pattern{v("V")},
			}},
			Shared: []string{"V"},
			Next:   []string{"fc_r2"},
		},
		"fc_r2": {
			Premise: rule.InequalityPremise{Inequality: rule.Inequality{A: v("X"), B: v("Y")}},
			Shared:  []string{"X", "Y"},
			Next:    []string{"fc_concl"},
		},
	}
	conclusions := rule.ConclusionTable{
		"fc_concl": rule.Contradiction{},
	}

	db = db.ExtendPrefix("fc_r0", term.EmptySubst)
	return rule.NewProgram(rules, conclusions, db)
}
