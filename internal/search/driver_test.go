package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/robsimmons/aspis/internal/database"
	"github.com/robsimmons/aspis/internal/examples"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRunEdgePathFindsOneModel(t *testing.T) {
	result := Run(examples.EdgePath(), Options{})
	require.Len(t, result.Models, 1)
	require.False(t, result.StoppedEarly)

	paths := result.Models[0].DB.FactsForName("path")
	require.Len(t, paths, 6) // {ab, bc, cd, ac, bd, ad}
}

func TestRunFunctionalInconsistencyFindsNoModels(t *testing.T) {
	result := Run(examples.FunctionalInconsistency(), Options{})
	require.Empty(t, result.Models)
	require.False(t, result.StoppedEarly)
}

func TestRunChoiceFindsFourModels(t *testing.T) {
	result := Run(examples.Choice(), Options{})
	require.Len(t, result.Models, 4) // 2 things x 2 colors, independent
}

func TestRunChoiceWithConstraintPrunesMatchingColors(t *testing.T) {
	result := Run(examples.ChoiceWithConstraint(), Options{})
	require.Len(t, result.Models, 2) // (red,blue) and (blue,red) survive; (red,red) and (blue,blue) are pruned
}

func TestRunOpenWorldPossibilityFindsTwoModels(t *testing.T) {
	result := Run(examples.OpenWorldPossibility(), Options{})
	require.Len(t, result.Models, 2) // assert p, or decline it
}

func TestRunInequalityPruningFindsNoModels(t *testing.T) {
	result := Run(examples.InequalityPruning(), Options{})
	require.Empty(t, result.Models)
}

func TestRunMaxModelsStopsEarly(t *testing.T) {
	result := Run(examples.Choice(), Options{MaxModels: 1})
	require.Len(t, result.Models, 1)
	require.True(t, result.StoppedEarly)
}

func TestRunPauseHookStopsSearch(t *testing.T) {
	calls := 0
	result := Run(examples.EdgePath(), Options{
		PauseHook: func(database.Database) bool {
			calls++
			return calls < 2
		},
	})
	require.True(t, result.StoppedEarly)
}

func TestRunDeadlineStopsSearch(t *testing.T) {
	result := Run(examples.EdgePath(), Options{Deadline: time.Now().Add(-time.Second)})
	require.True(t, result.StoppedEarly)
	require.Empty(t, result.Models)
}

func TestRunCancelChannelStopsSearch(t *testing.T) {
	cancel := make(chan struct{})
	close(cancel)
	result := Run(examples.EdgePath(), Options{Cancel: cancel})
	require.True(t, result.StoppedEarly)
	require.Empty(t, result.Models)
}
