// Package publish drives the DRAFT → PUBLISHED transition: it loads a
// match's import blobs, runs parsing, derivation and aggregation for both
// sides, and replaces the stored report atomically. It is the only writer of
// team reports and metric values.
package publish

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/isports/aflstats/internal/aggregate"
	"github.com/isports/aflstats/internal/blobstore"
	"github.com/isports/aflstats/internal/catalog"
	"github.com/isports/aflstats/internal/derive"
	"github.com/isports/aflstats/internal/model"
	"github.com/isports/aflstats/internal/parser"
	"github.com/isports/aflstats/internal/storage"
)

// Options tune publisher policy.
type Options struct {
	// AllowRepublish re-runs the full replace on an already-PUBLISHED match
	// (correction workflow). Off, a second publish is a validation error.
	AllowRepublish bool
	Logger         *slog.Logger
}

// Publisher is the publish state machine. Safe for concurrent use; publishes
// of the same match are serialized, different matches run independently.
type Publisher struct {
	db       *storage.DB
	blobs    *blobstore.Store
	registry *catalog.Registry
	opts     Options

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

// New creates a publisher.
func New(db *storage.DB, blobs *blobstore.Store, registry *catalog.Registry, opts Options) *Publisher {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Publisher{
		db:       db,
		blobs:    blobs,
		registry: registry,
		opts:     opts,
		locks:    make(map[int64]*sync.Mutex),
	}
}

// Publish runs the full pipeline for one match. All persistence happens in
// one transaction: either the complete fresh report lands and the match is
// PUBLISHED, or the store is untouched.
func (p *Publisher) Publish(ctx context.Context, matchID int64) error {
	lock := p.matchLock(matchID)
	lock.Lock()
	defer lock.Unlock()

	m, err := p.db.GetMatch(ctx, matchID)
	if err != nil {
		return err
	}
	if m == nil {
		return fmt.Errorf("match %d not found", matchID)
	}
	if m.Status == model.StatusPublished && !p.opts.AllowRepublish {
		return &ValidationError{MatchID: matchID, Reason: "already published"}
	}
	if !m.CanPublish() {
		return &ValidationError{
			MatchID: matchID,
			Reason:  "missing required fields: " + strings.Join(missingFields(m), ", "),
		}
	}

	roster, err := p.db.GetRoster(ctx, matchID)
	if err != nil {
		return err
	}

	homeRes, err := p.deriveSide(ctx, m, model.SideHome, roster)
	if err != nil {
		return err
	}
	awayRes, err := p.deriveSide(ctx, m, model.SideAway, roster)
	if err != nil {
		return err
	}

	playerIDs, err := p.resolveAll(model.SubjectPlayer, derive.Aliases())
	if err != nil {
		return err
	}

	leafAliases := make([]string, 0, len(playerIDs))
	aliasID := make(map[string]int64, len(playerIDs))
	for _, leaf := range p.registry.Leaves(model.SubjectPlayer) {
		leafAliases = append(leafAliases, leaf.Alias)
		aliasID[leaf.Alias] = leaf.ID
	}

	reports := make([]storage.TeamReportData, 0, 2)
	for _, res := range []*derive.Result{homeRes, awayRes} {
		agg := aggregate.Team(res, leafAliases)
		data := storage.TeamReportData{TeamID: agg.TeamID, Score: agg.Score, Meta: agg.Meta}
		for _, v := range agg.Values {
			data.Values = append(data.Values, model.PlayerMetricValue{
				PlayerID: v.PlayerID,
				MetricID: aliasID[v.Alias],
				Value:    v.Value,
			})
		}
		reports = append(reports, data)
	}

	triples := aggregate.Match(homeRes, awayRes)
	for alias := range triples {
		if _, err := p.registry.Resolve(alias, model.SubjectMatch); err != nil {
			return &ResolutionError{Subject: model.SubjectMatch, Alias: alias}
		}
	}
	var matchValues []model.MatchMetricValue
	for _, leaf := range p.registry.Leaves(model.SubjectMatch) {
		matchValues = append(matchValues, model.MatchMetricValue{
			MatchID:  matchID,
			MetricID: leaf.ID,
			Value:    triples[leaf.Alias], // leaves with no formula publish as zero triples
		})
	}

	if err := p.db.ReplaceMatchReports(ctx, matchID, reports, matchValues); err != nil {
		return fmt.Errorf("persist report for match %d: %w", matchID, err)
	}

	p.opts.Logger.Debug("published match report", "match", matchID)
	return nil
}

// deriveSide fetches and parses one side's import, then derives the player
// records. Import rows with no roster entry are skipped with a warning;
// partial rosters are an operational reality, not a publish failure.
func (p *Publisher) deriveSide(ctx context.Context, m *model.Match, side model.Side, roster []model.RosterEntry) (*derive.Result, error) {
	blob, err := p.blobs.Fetch(ctx, m.ImportRef(side))
	if err != nil {
		return nil, fmt.Errorf("load %s import: %w", side, err)
	}
	sheet, err := parser.ParseTeamSheet(bytes.NewReader(blob))
	if err != nil {
		return nil, fmt.Errorf("parse %s import: %w", side, err)
	}

	res := derive.Side(side, m.TeamID(side), sheet, roster)
	for _, jersey := range res.SkippedJerseys {
		p.opts.Logger.Warn("import row has no roster entry, skipping",
			"match", m.ID, "side", side.String(), "jersey", jersey)
	}
	return res, nil
}

// resolveAll checks every alias the derivation mapping emits against the
// catalog before anything is written.
func (p *Publisher) resolveAll(subject model.SubjectType, aliases []string) (map[string]int64, error) {
	out := make(map[string]int64, len(aliases))
	for _, alias := range aliases {
		d, err := p.registry.Resolve(alias, subject)
		if err != nil {
			return nil, &ResolutionError{Subject: subject, Alias: alias}
		}
		out[alias] = d.ID
	}
	return out, nil
}

func (p *Publisher) matchLock(matchID int64) *sync.Mutex {
	p.mu.Lock()
	defer p.mu.Unlock()
	l, ok := p.locks[matchID]
	if !ok {
		l = &sync.Mutex{}
		p.locks[matchID] = l
	}
	return l
}

func missingFields(m *model.Match) []string {
	var missing []string
	add := func(ok bool, name string) {
		if !ok {
			missing = append(missing, name)
		}
	}
	add(m.SeasonID != 0, "season")
	add(m.HomeTeamID != 0, "home team")
	add(m.AwayTeamID != 0, "away team")
	add(m.HomeImportRef != "", "home import")
	add(m.AwayImportRef != "", "away import")
	add(m.Round != 0, "round")
	add(m.Date != "", "date")
	add(m.LocationID != 0, "location")
	return missing
}
