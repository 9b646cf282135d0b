package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/isports/aflstats/internal/model"
	"github.com/isports/aflstats/internal/storage"
)

// PrintMatchSummary prints a one-line summary header for a published match.
func PrintMatchSummary(w io.Writer, l storage.MatchListing, location string, homeScore, awayScore float64) {
	fmt.Fprintf(w, "\nRound %d  |  %s  |  %s  |  %s %.0f – %.0f %s\n\n",
		l.Round, l.Date, location, l.HomeTeam, homeScore, awayScore, l.AwayTeam)
}

// PrintMatchList prints the match directory table.
func PrintMatchList(w io.Writer, matches []storage.MatchListing) {
	table := newTable(w)
	table.Header("ID", "STATUS", "ROUND", "DATE", "HOME", "AWAY")
	for _, m := range matches {
		table.Append(
			strconv.FormatInt(m.ID, 10),
			m.Status.String(),
			strconv.Itoa(m.Round),
			m.Date,
			m.HomeTeam,
			m.AwayTeam,
		)
	}
	table.Render()
}

// PrintCategoryTriples prints one MATCH category as a HOME/AWAY/DIFF table.
// values is keyed by metric id.
func PrintCategoryTriples(w io.Writer, category model.MetricDefinition, leaves []model.MetricDefinition, values map[int64]model.Triple) {
	fmt.Fprintf(w, "%s\n", category.Name)

	table := newTable(w)
	table.Header("METRIC", "HOME", "AWAY", "DIFF")
	for _, leaf := range leaves {
		t := values[leaf.ID]
		table.Append(
			leaf.Name,
			formatValue(leaf.Kind, t.Home),
			formatValue(leaf.Kind, t.Away),
			formatValue(leaf.Kind, t.Diff),
		)
	}
	table.Render()
	fmt.Fprintln(w)
}

// PrintPlayerSheet prints one team's per-player values for one PLAYER
// category, one column per leaf metric. players carries display order;
// values is keyed by player id then metric id.
func PrintPlayerSheet(w io.Writer, teamName string, category model.MetricDefinition, leaves []model.MetricDefinition, players []model.Player, values map[int64]map[int64]float64) {
	fmt.Fprintf(w, "%s – %s\n", teamName, category.Name)

	header := make([]any, 0, len(leaves)+1)
	header = append(header, "PLAYER")
	for _, leaf := range leaves {
		header = append(header, leaf.Alias)
	}

	table := newTable(w)
	table.Header(header...)
	for _, p := range players {
		row := make([]any, 0, len(leaves)+1)
		row = append(row, p.Name)
		for _, leaf := range leaves {
			row = append(row, formatValue(leaf.Kind, values[p.ID][leaf.ID]))
		}
		table.Append(row...)
	}
	table.Render()
	fmt.Fprintln(w)
}

// LeaderEntry is one player's value in a per-metric leaders listing.
type LeaderEntry struct {
	Player string
	Team   string
	Value  float64
}

// PrintMetricLeaders prints the top players for one metric within a match.
func PrintMetricLeaders(w io.Writer, metric model.MetricDefinition, entries []LeaderEntry) {
	fmt.Fprintf(w, "%s leaders\n", metric.Name)

	table := newTable(w)
	table.Header("PLAYER", "TEAM", metric.Alias)
	for _, e := range entries {
		table.Append(e.Player, e.Team, formatValue(metric.Kind, e.Value))
	}
	table.Render()
	fmt.Fprintln(w)
}

// PrintLeaderboard prints a cross-match player ranking.
func PrintLeaderboard(w io.Writer, metric model.MetricDefinition, rows []storage.LeaderboardRow) {
	fmt.Fprintf(w, "\n%s leaderboard\n", metric.Name)

	table := newTable(w)
	table.Header("#", "PLAYER", "TEAM", metric.Alias, "MATCHES")
	for i, r := range rows {
		table.Append(
			strconv.Itoa(i+1),
			r.Player,
			r.Team,
			formatValue(metric.Kind, r.Value),
			strconv.Itoa(r.Samples),
		)
	}
	table.Render()
}

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
}

func formatValue(kind model.MetricKind, v float64) string {
	switch kind {
	case model.KindPercent:
		return fmt.Sprintf("%.1f%%", v)
	case model.KindRatio:
		return fmt.Sprintf("%.2f", v)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}
