// Package leaderboard ranks players by a PLAYER leaf metric across published
// match reports.
package leaderboard

import (
	"context"

	"github.com/isports/aflstats/internal/catalog"
	"github.com/isports/aflstats/internal/model"
	"github.com/isports/aflstats/internal/storage"
)

// Filter narrows the ranking population. Zero fields mean no filter.
type Filter struct {
	SeasonID int64
	TeamID   int64
	Limit    int
}

// Result is a ranked leaderboard for one metric.
type Result struct {
	Metric model.MetricDefinition
	Rows   []storage.LeaderboardRow
}

// Engine answers leaderboard queries against the published store.
type Engine struct {
	db           *storage.DB
	registry     *catalog.Registry
	defaultLimit int
}

// New creates an engine. defaultLimit applies when a filter carries no limit.
func New(db *storage.DB, registry *catalog.Registry, defaultLimit int) *Engine {
	if defaultLimit <= 0 {
		defaultLimit = 20
	}
	return &Engine{db: db, registry: registry, defaultLimit: defaultLimit}
}

// Rank resolves the alias against the PLAYER catalog and ranks players by it,
// descending. Counting metrics sum across reports; percentage and ratio
// metrics average, since summing percentages is meaningless.
func (e *Engine) Rank(ctx context.Context, alias string, f Filter) (*Result, error) {
	def, err := e.registry.Resolve(alias, model.SubjectPlayer)
	if err != nil {
		return nil, err
	}

	limit := f.Limit
	if limit <= 0 {
		limit = e.defaultLimit
	}
	average := def.Kind == model.KindPercent || def.Kind == model.KindRatio

	rows, err := e.db.RankPlayerMetric(ctx, def.ID, average, f.SeasonID, f.TeamID, limit)
	if err != nil {
		return nil, err
	}
	return &Result{Metric: def, Rows: rows}, nil
}
