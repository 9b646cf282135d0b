package cmd

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/isports/aflstats/internal/catalog"
	"github.com/isports/aflstats/internal/model"
	"github.com/isports/aflstats/internal/report"
	"github.com/isports/aflstats/internal/storage"
)

var showLeaders bool

var showCmd = &cobra.Command{
	Use:   "show <match-id>",
	Short: "Show a published match report",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showLeaders, "leaders", false, "include per-metric team leaders")
}

const leadersPerMetric = 4

func runShow(cmd *cobra.Command, args []string) error {
	matchID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid match id %q", args[0])
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := cmd.Context()
	m, err := db.GetMatch(ctx, matchID)
	if err != nil {
		return err
	}
	if m == nil {
		return fmt.Errorf("match %d not found", matchID)
	}
	if m.Status != model.StatusPublished {
		fmt.Fprintf(os.Stdout, "Match %d is not published yet. Run 'aflstats publish %d' first.\n", matchID, matchID)
		return nil
	}

	registry, err := loadRegistry(ctx, db)
	if err != nil {
		return err
	}

	homeName, err := db.TeamName(ctx, m.HomeTeamID)
	if err != nil {
		return err
	}
	awayName, err := db.TeamName(ctx, m.AwayTeamID)
	if err != nil {
		return err
	}
	location, err := db.LocationName(ctx, m.LocationID)
	if err != nil {
		return err
	}

	reports, err := db.GetTeamReports(ctx, matchID)
	if err != nil {
		return err
	}
	scoreFor := func(teamID int64) float64 {
		for _, r := range reports {
			if r.TeamID == teamID {
				return r.Score
			}
		}
		return 0
	}

	listing := storage.MatchListing{Match: *m, HomeTeam: homeName, AwayTeam: awayName}
	report.PrintMatchSummary(os.Stdout, listing, location,
		scoreFor(m.HomeTeamID), scoreFor(m.AwayTeamID))

	if err := printMatchTriples(cmd, db, registry, matchID); err != nil {
		return err
	}
	return printTeamSheets(cmd, db, registry, m, reports)
}

func printMatchTriples(cmd *cobra.Command, db *storage.DB, registry *catalog.Registry, matchID int64) error {
	values, err := db.GetMatchMetricValues(cmd.Context(), matchID)
	if err != nil {
		return err
	}
	byMetric := make(map[int64]model.Triple, len(values))
	for _, v := range values {
		byMetric[v.MetricID] = v.Value
	}

	for _, cat := range registry.Categories(model.SubjectMatch) {
		report.PrintCategoryTriples(os.Stdout, cat, registry.Children(cat.ID), byMetric)
	}
	return nil
}

func printTeamSheets(cmd *cobra.Command, db *storage.DB, registry *catalog.Registry, m *model.Match, reports []model.TeamReport) error {
	ctx := cmd.Context()
	roster, err := db.GetRoster(ctx, m.ID)
	if err != nil {
		return err
	}
	names, err := db.RosterPlayerNames(ctx, m.ID)
	if err != nil {
		return err
	}

	for _, tr := range reports {
		teamName, err := db.TeamName(ctx, tr.TeamID)
		if err != nil {
			return err
		}

		var players []model.Player
		for _, e := range roster {
			if e.TeamID == tr.TeamID {
				players = append(players, model.Player{ID: e.PlayerID, Name: names[e.PlayerID], TeamID: e.TeamID})
			}
		}

		pvs, err := db.GetPlayerMetricValues(ctx, tr.ID)
		if err != nil {
			return err
		}
		values := make(map[int64]map[int64]float64)
		for _, v := range pvs {
			if values[v.PlayerID] == nil {
				values[v.PlayerID] = make(map[int64]float64)
			}
			values[v.PlayerID][v.MetricID] = v.Value
		}

		fmt.Fprintf(os.Stdout, "%s  score=%.0f  rushed=%.0f goals=%.0f behinds=%.0f\n\n",
			teamName, tr.Score, tr.Meta.Rushed, tr.Meta.TotalGoals, tr.Meta.TotalBehinds)

		for _, cat := range registry.Categories(model.SubjectPlayer) {
			report.PrintPlayerSheet(os.Stdout, teamName, cat, registry.Children(cat.ID), players, values)
		}

		if showLeaders {
			printLeaders(registry, teamName, players, values)
		}
	}
	return nil
}

// printLeaders prints each PLAYER leaf's top scorers within one team.
func printLeaders(registry *catalog.Registry, teamName string, players []model.Player, values map[int64]map[int64]float64) {
	for _, leaf := range registry.Leaves(model.SubjectPlayer) {
		entries := make([]report.LeaderEntry, 0, len(players))
		for _, p := range players {
			entries = append(entries, report.LeaderEntry{
				Player: p.Name,
				Team:   teamName,
				Value:  values[p.ID][leaf.ID],
			})
		}
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].Value > entries[j].Value })
		if len(entries) > leadersPerMetric {
			entries = entries[:leadersPerMetric]
		}
		report.PrintMetricLeaders(os.Stdout, leaf, entries)
	}
}
