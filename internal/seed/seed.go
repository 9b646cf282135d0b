// Package seed loads a fresh database with the AFL metric catalog and a
// small demo directory: one season, two teams with rostered players, and a
// draft match ready for imports.
package seed

import (
	"context"
	"fmt"

	"github.com/isports/aflstats/internal/catalog"
	"github.com/isports/aflstats/internal/model"
	"github.com/isports/aflstats/internal/storage"
)

// Result counts what a seed run created.
type Result struct {
	Sports     int
	Seasons    int
	Teams      int
	Players    int
	Locations  int
	Categories int
	Metrics    int
	Matches    int
}

func (r Result) String() string {
	return fmt.Sprintf("sports=%d seasons=%d teams=%d players=%d locations=%d categories=%d metrics=%d matches=%d",
		r.Sports, r.Seasons, r.Teams, r.Players, r.Locations, r.Categories, r.Metrics, r.Matches)
}

const playersPerTeam = 22

// Run populates an empty database. It is not idempotent; seeding twice
// duplicates the directory rows.
func Run(ctx context.Context, db *storage.DB) (*Result, error) {
	res := &Result{}

	sportID, err := db.InsertSport("Afl")
	if err != nil {
		return nil, err
	}
	res.Sports++

	seasonID, err := db.InsertSeason("SS 2023", sportID)
	if err != nil {
		return nil, err
	}
	res.Seasons++

	teamIDs := make([]int64, 0, 2)
	for _, name := range []string{"Labrador", "Maroochydore"} {
		teamID, err := db.InsertTeam(name, seasonID)
		if err != nil {
			return nil, err
		}
		res.Teams++

		for n := 1; n <= playersPerTeam; n++ {
			if _, err := db.InsertPlayer(fmt.Sprintf("%s Player %d", name, n), teamID); err != nil {
				return nil, err
			}
			res.Players++
		}
		teamIDs = append(teamIDs, teamID)
	}

	locationID, err := db.InsertLocation("Round PF")
	if err != nil {
		return nil, err
	}
	res.Locations++

	if err := seedCatalog(db, sportID, res); err != nil {
		return nil, err
	}

	matchID, err := db.CreateMatch(model.Match{
		SeasonID:   seasonID,
		HomeTeamID: teamIDs[0],
		AwayTeamID: teamIDs[1],
		Round:      1,
		Date:       "2023-04-15",
		LocationID: locationID,
	})
	if err != nil {
		return nil, err
	}
	res.Matches++

	if err := seedRosters(ctx, db, matchID, teamIDs); err != nil {
		return nil, err
	}

	return res, nil
}

func seedCatalog(db *storage.DB, sportID int64, res *Result) error {
	position := 0
	for _, cat := range catalog.AFLCatalog() {
		catID, err := db.InsertMetricDefinition(model.MetricDefinition{
			Name:    cat.Name,
			Alias:   cat.Alias,
			Subject: cat.Subject,
			SportID: sportID,
		}, position)
		if err != nil {
			return err
		}
		position++
		res.Categories++

		for _, leaf := range cat.Leaves {
			if _, err := db.InsertMetricDefinition(model.MetricDefinition{
				Name:     leaf.Name,
				Alias:    leaf.Alias,
				Subject:  cat.Subject,
				SportID:  sportID,
				ParentID: catID,
				Kind:     leaf.Kind,
			}, position); err != nil {
				return err
			}
			position++
			res.Metrics++
		}
	}
	return nil
}

// seedRosters gives every seeded player a jersey matching their numbering,
// so the demo import sheets line up without editing.
func seedRosters(ctx context.Context, db *storage.DB, matchID int64, teamIDs []int64) error {
	var entries []model.RosterEntry
	for _, teamID := range teamIDs {
		players, err := db.TeamPlayerIDs(ctx, teamID)
		if err != nil {
			return err
		}
		for i, playerID := range players {
			entries = append(entries, model.RosterEntry{
				MatchID:      matchID,
				TeamID:       teamID,
				PlayerID:     playerID,
				JerseyNumber: i + 1,
			})
		}
	}
	return db.InsertRoster(entries)
}
