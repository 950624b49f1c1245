package database

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueueFIFOAcrossFrontExhaustion(t *testing.T) {
	var q Queue
	for i := 0; i < 5; i++ {
		q = q.Push(FactItem{Name: string(rune('a' + i))})
	}
	var popped []string
	for q.Len() > 0 {
		item, rest, ok := q.Pop()
		require.True(t, ok)
		popped = append(popped, item.(FactItem).Name)
		q = rest
	}
	require.Equal(t, []string{"a", "b", "c", "d", "e"}, popped)
}

func TestQueuePushDoesNotMutateOriginal(t *testing.T) {
	var q Queue
	q1 := q.Push(FactItem{Name: "a"})
	q2 := q1.Push(FactItem{Name: "b"})
	require.Equal(t, 0, q.Len())
	require.Equal(t, 1, q1.Len())
	require.Equal(t, 2, q2.Len())
}

func TestQueuePopEmpty(t *testing.T) {
	var q Queue
	_, _, ok := q.Pop()
	require.False(t, ok)
}

func TestQueueItemsNonConsuming(t *testing.T) {
	var q Queue
	q = q.Push(FactItem{Name: "a"})
	q = q.Push(FactItem{Name: "b"})
	_, _, _ = q.Pop() // discarding rest: q itself must be untouched

	items := q.Items()
	require.Equal(t, []string{"a", "b"}, []string{items[0].(FactItem).Name, items[1].(FactItem).Name})
}
