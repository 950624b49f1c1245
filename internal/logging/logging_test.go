package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestGetCachesPerCategory(t *testing.T) {
	a := Get(CategoryDatabase)
	b := Get(CategoryDatabase)
	require.Same(t, a, b)
}

func TestGetDistinguishesCategories(t *testing.T) {
	db := Get(CategoryDatabase)
	search := Get(CategorySearch)
	require.NotSame(t, db, search)
}

func TestSetLevelAffectsEnabler(t *testing.T) {
	SetLevel(zapcore.ErrorLevel)
	defer SetLevel(zapcore.InfoLevel)
	require.True(t, Level().Enabled(zapcore.ErrorLevel))
	require.False(t, Level().Enabled(zapcore.InfoLevel))
}
