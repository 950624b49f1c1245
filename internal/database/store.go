// Package database implements the fact store, prefix store, and work
// queue at the heart of saturation: an indexed fact store respecting the
// functional invariant, a prefix store, insertion primitives, and a
// textual dump. A Database value is immutable in intent — every
// operation returns a new value — and cheap to branch: the fact and
// prefix stores are immutable radix trees
// (github.com/hashicorp/go-immutable-radix/v2) so a clone shares
// structure with its parent, and the queue (queue.go) is a persistent
// two-list FIFO for the same reason.
package database

import (
	"bytes"

	iradix "github.com/hashicorp/go-immutable-radix/v2"
	"github.com/robsimmons/aspis/internal/term"
)

// nameDelim separates a relation/prefix name from its canonical key in
// the radix tree keys below. Names are expected to be plain identifiers
// (no NUL bytes), so this never collides with a name prefix of another
// name (e.g. "foo" vs "foobar").
const nameDelim = 0x00

// factRecord is the value stored per (name, canonical-args-key) entry.
// Name is kept alongside Args/Values (rather than decoded back out of the
// key) purely for convenience when dumping or iterating.
type factRecord struct {
	Name   string
	Args   []term.Data
	Values []term.Data
}

// prefixRecord is the value stored per (prefix-name, canonical-subst-key)
// entry.
type prefixRecord struct {
	Name  string
	Subst term.Substitution
}

// Database is the bottom-up solver's state: ground facts, reached
// prefixes, and the FIFO work queue that ties them together.
type Database struct {
	facts         *iradix.Tree[factRecord]
	uninteresting *iradix.Tree[factRecord]
	prefixes      *iradix.Tree[prefixRecord]
	queue         Queue
}

// New returns the empty database: no facts, no prefixes, no queued work.
// The caller (a compiler-produced Program) is responsible for seeding it
// with whatever zero-premise rules' r0 positions and any base facts the
// source program declares.
func New() Database {
	return Database{
		facts:         iradix.New[factRecord](),
		uninteresting: iradix.New[factRecord](),
		prefixes:      iradix.New[prefixRecord](),
	}
}

func factKey(name string, args []term.Data) []byte {
	key := make([]byte, 0, len(name)+1+16)
	key = append(key, name...)
	key = append(key, nameDelim)
	key = term.CanonDataList(key, args)
	return key
}

func namePrefix(name string) []byte {
	return append([]byte(name), nameDelim)
}

func prefixKey(name string, s term.Substitution) []byte {
	key := make([]byte, 0, len(name)+1+16)
	key = append(key, name...)
	key = append(key, nameDelim)
	key = append(key, term.CanonSubstKey(s)...)
	return key
}

// InsertOutcome is the closed result of InsertFact.
type InsertOutcome int

const (
	Inserted InsertOutcome = iota
	Redundant
	Inconsistent
)

func (o InsertOutcome) String() string {
	switch o {
	case Inserted:
		return "Inserted"
	case Redundant:
		return "Redundant"
	case Inconsistent:
		return "Inconsistent"
	default:
		return "Unknown"
	}
}

// InsertFact records a ground proposition. It first consults the
// uninteresting set (facts proved redundant by some terminal step and
// marked via MarkUninteresting): a match there is Redundant and never
// reaches the queue, regardless of whether it is already in facts. Then
// it consults the functional fact store itself: absent → Inserted (fact
// added, FactItem enqueued); present with equal values → Redundant;
// present with different values → Inconsistent (db is returned
// unchanged; the caller is expected to prune).
func (db Database) InsertFact(name string, args, values []term.Data) (Database, InsertOutcome, *FunctionalInconsistency) {
	key := factKey(name, args)

	if existing, ok := db.uninteresting.Get(key); ok {
		if term.EqualList(existing.Values, values) {
			return db, Redundant, nil
		}
		// Recorded uninteresting under a different value set is itself a
		// functional inconsistency, surfaced the same way as a facts-store
		// clash would be.
		return db, Inconsistent, &FunctionalInconsistency{
			Name: name, Args: args, ExistingValues: existing.Values, NewValues: values,
		}
	}

	if existing, ok := db.facts.Get(key); ok {
		if term.EqualList(existing.Values, values) {
			return db, Redundant, nil
		}
		return db, Inconsistent, &FunctionalInconsistency{
			Name: name, Args: args, ExistingValues: existing.Values, NewValues: values,
		}
	}

	nextFacts, _, _ := db.facts.Insert(key, factRecord{Name: name, Args: args, Values: values})
	next := db
	next.facts = nextFacts
	next.queue = next.queue.Push(FactItem{Name: name, Args: args, Values: values})
	return next, Inserted, nil
}

// MarkUninteresting records (name, args, values) as uninteresting: proved
// redundant by some terminal step, but still subject to the functional
// invariant (a conflicting value set is Inconsistent, not silently
// dropped). Unlike InsertFact, a successful mark never enqueues a
// FactItem — the whole point of the uninteresting set is to let the
// stepper stop propagating something it already knows cannot change the
// outcome.
func (db Database) MarkUninteresting(name string, args, values []term.Data) (Database, InsertOutcome, *FunctionalInconsistency) {
	key := factKey(name, args)
	if existing, ok := db.uninteresting.Get(key); ok {
		if term.EqualList(existing.Values, values) {
			return db, Redundant, nil
		}
		return db, Inconsistent, &FunctionalInconsistency{
			Name: name, Args: args, ExistingValues: existing.Values, NewValues: values,
		}
	}
	if existing, ok := db.facts.Get(key); ok && !term.EqualList(existing.Values, values) {
		return db, Inconsistent, &FunctionalInconsistency{
			Name: name, Args: args, ExistingValues: existing.Values, NewValues: values,
		}
	}
	nextUninteresting, _, _ := db.uninteresting.Insert(key, factRecord{Name: name, Args: args, Values: values})
	next := db
	next.uninteresting = nextUninteresting
	return next, Inserted, nil
}

// ExtendPrefix records a partial-match substitution at a prefix-chain
// position: if an equivalent substitution (pointwise equal, not merely
// a different Go value with
// the same bindings) is already stored under prefixes[name], db is
// returned unchanged — same tree, same queue, no new work. Otherwise the
// substitution is stored and a PrefixItem is enqueued.
func (db Database) ExtendPrefix(name string, s term.Substitution) Database {
	key := prefixKey(name, s)
	if _, ok := db.prefixes.Get(key); ok {
		return db
	}
	nextPrefixes, _, _ := db.prefixes.Insert(key, prefixRecord{Name: name, Subst: s})
	next := db
	next.prefixes = nextPrefixes
	next.queue = next.queue.Push(PrefixItem{Name: name, Subst: s})
	return next
}

// PopQueue removes and returns the front work item. ok is false iff the
// queue was empty — callers (the stepper, indirectly via the search
// driver) must never call step on an empty-queue database.
func (db Database) PopQueue() (WorkItem, Database, bool) {
	item, rest, ok := db.queue.Pop()
	if !ok {
		return nil, db, false
	}
	next := db
	next.queue = rest
	return item, next, true
}

// QueueLen reports the current work-queue depth without popping.
func (db Database) QueueLen() int { return db.queue.Len() }

// QueueEmpty reports whether the database is saturated with respect to
// its own queue (the search driver's stopping condition).
func (db Database) QueueEmpty() bool { return db.queue.Len() == 0 }

// FactsForName returns every stored (args, values) pair for relation
// name, in the radix tree's key order — which is stable within a single
// run, though not meaningful across runs with a different insertion
// history.
func (db Database) FactsForName(name string) []Fact {
	return scanFacts(db.facts, name)
}

// Fact is the exported view of a stored fact (args, values pair plus its
// relation name), used by iteration and dump helpers.
type Fact struct {
	Name   string
	Args   []term.Data
	Values []term.Data
}

func scanFacts(tree *iradix.Tree[factRecord], name string) []Fact {
	it := tree.Iterator()
	it.SeekPrefix(namePrefix(name))
	var out []Fact
	prefix := namePrefix(name)
	for {
		k, v, ok := it.Next()
		if !ok || !bytes.HasPrefix(k, prefix) {
			break
		}
		out = append(out, Fact{Name: v.Name, Args: v.Args, Values: v.Values})
	}
	return out
}

// AllFacts returns every fact in the database, in key order.
func (db Database) AllFacts() []Fact {
	it := db.facts.Iterator()
	var out []Fact
	for {
		_, v, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, Fact{Name: v.Name, Args: v.Args, Values: v.Values})
	}
	return out
}

// PrefixEntry is the exported view of a stored prefix substitution.
type PrefixEntry struct {
	Name  string
	Subst term.Substitution
}

// PrefixesForName returns every substitution stored for prefix position
// name, in key order.
func (db Database) PrefixesForName(name string) []term.Substitution {
	it := db.prefixes.Iterator()
	it.SeekPrefix(namePrefix(name))
	prefix := namePrefix(name)
	var out []term.Substitution
	for {
		k, v, ok := it.Next()
		if !ok || !bytes.HasPrefix(k, prefix) {
			break
		}
		out = append(out, v.Subst)
	}
	return out
}

// AllPrefixes returns every stored prefix entry, in key order.
func (db Database) AllPrefixes() []PrefixEntry {
	it := db.prefixes.Iterator()
	var out []PrefixEntry
	for {
		_, v, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, PrefixEntry{Name: v.Name, Subst: v.Subst})
	}
	return out
}

// Stats summarizes a database for progress reporting.
type Stats struct {
	FactCount   int
	PrefixCount int
	QueueDepth  int
}

func (db Database) Stats() Stats {
	return Stats{
		FactCount:   db.facts.Len(),
		PrefixCount: db.prefixes.Len(),
		QueueDepth:  db.queue.Len(),
	}
}

// ApplyProposition applies a substitution across an argument-pattern list and a
// value-pattern list to produce the ground Fact they denote. It never
// touches the database itself; it is a thin wrapper over term.ApplyList
// kept here because every caller that needs it already has a Database in
// hand.
func ApplyProposition(s term.Substitution, argPatterns, valuePatterns []term.Pattern) (Fact, error) {
	args, err := term.ApplyList(s, argPatterns)
	if err != nil {
		return Fact{}, err
	}
	values, err := term.ApplyList(s, valuePatterns)
	if err != nil {
		return Fact{}, err
	}
	return Fact{Args: args, Values: values}, nil
}
