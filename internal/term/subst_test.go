package term

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubstEqualIgnoresBindOrder(t *testing.T) {
	a := EmptySubst.Extend("X", DInt(1)).Extend("Y", DInt(2))
	b := EmptySubst.Extend("Y", DInt(2)).Extend("X", DInt(1))
	require.True(t, SubstEqual(a, b))
}

func TestSubstEqualDetectsDifferentValue(t *testing.T) {
	a := EmptySubst.Extend("X", DInt(1))
	b := EmptySubst.Extend("X", DInt(2))
	require.False(t, SubstEqual(a, b))
}

func TestSubstNamesSorted(t *testing.T) {
	s := EmptySubst.Extend("Z", DInt(1)).Extend("A", DInt(2)).Extend("M", DInt(3))
	require.Equal(t, []string{"A", "M", "Z"}, s.Names())
}

func TestSubstExtendImmutable(t *testing.T) {
	a := EmptySubst.Extend("X", DInt(1))
	b := a.Extend("Y", DInt(2))
	require.Equal(t, 1, a.Len())
	require.Equal(t, 2, b.Len())
}
