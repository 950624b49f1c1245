package database

import "github.com/robsimmons/aspis/internal/term"

// WorkItem is the closed sum of queue entries: a newly inserted fact to
// propagate, or a newly reached prefix to
// extend. Exhaustive type-switch dispatch over it is load-bearing —
// there are exactly these two constructors and no others.
type WorkItem interface {
	isWorkItem()
	String() string
}

// FactItem is a newly inserted fact awaiting propagation to prefixes
// whose next premise it might satisfy.
type FactItem struct {
	Name   string
	Args   []term.Data
	Values []term.Data
}

func (FactItem) isWorkItem() {}

func (f FactItem) String() string {
	return "fact " + term.FormatProposition(f.Name, f.Args, f.Values)
}

// PrefixItem is a newly reached prefix position awaiting extension
// against the current fact store.
type PrefixItem struct {
	Name  string
	Subst term.Substitution
}

func (PrefixItem) isWorkItem() {}

func (p PrefixItem) String() string {
	return "prefix " + p.Name + "{ " + term.FormatSubst(p.Subst) + " }"
}
