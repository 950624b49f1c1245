package rule

import "github.com/robsimmons/aspis/internal/database"

// Program is the external compiler's contract with the core: a rule
// table, a conclusion table, and a seed database already carrying
// whatever zero-premise rules' r0 prefixes and base facts the source
// program declares.
type Program struct {
	Rules       RuleTable
	Conclusions ConclusionTable
	DB          database.Database

	// byRelation indexes Rules by the relation name each Proposition
	// premise tests, so a newly-inserted fact only has to consider
	// prefixes whose premise could possibly match it, rather than every
	// prefix in the program. Built once by NewProgram and read-only
	// thereafter, so copying a Program (it is handed around by value)
	// never needs to rebuild or guard it.
	byRelation map[string][]string
}

// NewProgram builds a Program and its relation index in one step.
func NewProgram(rules RuleTable, conclusions ConclusionTable, db database.Database) Program {
	byRelation := make(map[string][]string)
	for name, pr := range rules {
		if pp, ok := pr.Premise.(PropositionPremise); ok {
			byRelation[pp.Name] = append(byRelation[pp.Name], name)
		}
	}
	return Program{Rules: rules, Conclusions: conclusions, DB: db, byRelation: byRelation}
}

// RelationIndex returns every prefix position whose premise is a
// Proposition testing relation.
func (p Program) RelationIndex(relation string) []string {
	return p.byRelation[relation]
}
