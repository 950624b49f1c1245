package database

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/robsimmons/aspis/internal/term"
)

func TestInsertFactEnqueuesOnFirstInsert(t *testing.T) {
	db := New()
	db, outcome, incons := db.InsertFact("edge", []term.Data{term.DConst("a"), term.DConst("b")}, nil)
	require.Equal(t, Inserted, outcome)
	require.Nil(t, incons)
	require.Equal(t, 1, db.QueueLen())
}

func TestInsertFactRedundantOnRepeat(t *testing.T) {
	db := New()
	db, _, _ = db.InsertFact("edge", []term.Data{term.DConst("a")}, []term.Data{term.DConst("b")})
	before := db.QueueLen()
	db, outcome, incons := db.InsertFact("edge", []term.Data{term.DConst("a")}, []term.Data{term.DConst("b")})
	require.Equal(t, Redundant, outcome)
	require.Nil(t, incons)
	require.Equal(t, before, db.QueueLen())
}

func TestInsertFactInconsistentOnConflictingValues(t *testing.T) {
	db := New()
	db, _, _ = db.InsertFact("home", []term.Data{term.DConst("celeste")}, []term.Data{term.DConst("uplands")})
	db, outcome, incons := db.InsertFact("home", []term.Data{term.DConst("celeste")}, []term.Data{term.DConst("doghouse")})
	require.Equal(t, Inconsistent, outcome)
	require.NotNil(t, incons)
	require.Equal(t, "home", incons.Name)
}

func TestMarkUninterestingSuppressesFutureInsert(t *testing.T) {
	db := New()
	db, outcome, incons := db.MarkUninteresting("edge", []term.Data{term.DConst("a")}, []term.Data{term.DConst("b")})
	require.Equal(t, Inserted, outcome)
	require.Nil(t, incons)
	require.Equal(t, 0, db.QueueLen())

	before := db.QueueLen()
	db, outcome, incons = db.InsertFact("edge", []term.Data{term.DConst("a")}, []term.Data{term.DConst("b")})
	require.Equal(t, Redundant, outcome)
	require.Nil(t, incons)
	require.Equal(t, before, db.QueueLen())
}

func TestMarkUninterestingStillCatchesConflict(t *testing.T) {
	db := New()
	db, _, _ = db.MarkUninteresting("home", []term.Data{term.DConst("celeste")}, []term.Data{term.DConst("uplands")})
	_, outcome, incons := db.InsertFact("home", []term.Data{term.DConst("celeste")}, []term.Data{term.DConst("doghouse")})
	require.Equal(t, Inconsistent, outcome)
	require.NotNil(t, incons)
}

func TestExtendPrefixDedupsPointwiseEqualSubstitutions(t *testing.T) {
	db := New()
	s1 := term.EmptySubst.Extend("X", term.DInt(1))
	s2 := term.EmptySubst.Extend("X", term.DInt(1))

	db = db.ExtendPrefix("r0", s1)
	require.Equal(t, 1, db.QueueLen())

	db = db.ExtendPrefix("r0", s2)
	require.Equal(t, 1, db.QueueLen())
}

func TestExtendPrefixDistinguishesDifferentSubstitutions(t *testing.T) {
	db := New()
	db = db.ExtendPrefix("r0", term.EmptySubst.Extend("X", term.DInt(1)))
	db = db.ExtendPrefix("r0", term.EmptySubst.Extend("X", term.DInt(2)))
	require.Equal(t, 2, db.QueueLen())
}

func TestPopQueueFIFOOrder(t *testing.T) {
	db := New()
	db, _, _ = db.InsertFact("a", nil, nil)
	db, _, _ = db.InsertFact("b", nil, nil)
	db, _, _ = db.InsertFact("c", nil, nil)

	var order []string
	for {
		item, rest, ok := db.PopQueue()
		if !ok {
			break
		}
		order = append(order, item.(FactItem).Name)
		db = rest
	}
	require.Equal(t, []string{"a", "b", "c"}, order)
}

func TestPopQueueEmptyReportsFalse(t *testing.T) {
	db := New()
	_, _, ok := db.PopQueue()
	require.False(t, ok)
	require.True(t, db.QueueEmpty())
}

func TestFactsForNameFiltersByRelation(t *testing.T) {
	db := New()
	db, _, _ = db.InsertFact("edge", []term.Data{term.DConst("a"), term.DConst("b")}, nil)
	db, _, _ = db.InsertFact("edge", []term.Data{term.DConst("b"), term.DConst("c")}, nil)
	db, _, _ = db.InsertFact("node", []term.Data{term.DConst("a")}, nil)

	edges := db.FactsForName("edge")
	want := []Fact{
		{Name: "edge", Args: []term.Data{term.DConst("a"), term.DConst("b")}},
		{Name: "edge", Args: []term.Data{term.DConst("b"), term.DConst("c")}},
	}
	require.Empty(t, cmp.Diff(want, edges))
}

func TestPrefixesForNameFiltersByPosition(t *testing.T) {
	db := New()
	db = db.ExtendPrefix("r0", term.EmptySubst.Extend("X", term.DInt(1)))
	db = db.ExtendPrefix("r1", term.EmptySubst.Extend("Y", term.DInt(2)))

	subs := db.PrefixesForName("r0")
	require.Len(t, subs, 1)
	v, ok := subs[0].Lookup("X")
	require.True(t, ok)
	require.True(t, term.Equal(v, term.DInt(1)))
}

func TestStatsReflectsCounts(t *testing.T) {
	db := New()
	db, _, _ = db.InsertFact("edge", []term.Data{term.DConst("a")}, nil)
	db = db.ExtendPrefix("r0", term.EmptySubst)

	stats := db.Stats()
	require.Equal(t, 1, stats.FactCount)
	require.Equal(t, 1, stats.PrefixCount)
	require.Equal(t, 2, stats.QueueDepth)
}

func TestDatabaseBranchesIndependently(t *testing.T) {
	base := New()
	base, _, _ = base.InsertFact("edge", []term.Data{term.DConst("a")}, nil)

	branchA, _, _ := base.InsertFact("edge", []term.Data{term.DConst("b")}, nil)
	branchB, _, _ := base.InsertFact("edge", []term.Data{term.DConst("c")}, nil)

	require.Len(t, branchA.AllFacts(), 2)
	require.Len(t, branchB.AllFacts(), 2)
	require.Len(t, base.AllFacts(), 1)
}
