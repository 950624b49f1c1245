package search

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/robsimmons/aspis/internal/database"
)

func zapBranch(id uuid.UUID) zap.Field {
	return zap.String("branch", id.String())
}

func zapStats(db database.Database) zap.Field {
	s := db.Stats()
	return zap.Any("stats", s)
}
