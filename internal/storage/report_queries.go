package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/isports/aflstats/internal/model"
)

// TeamReportData is one side's report ready for insertion. Values carry
// player and metric ids; the team report id is assigned here.
type TeamReportData struct {
	TeamID int64
	Score  float64
	Meta   model.TeamMeta
	Values []model.PlayerMetricValue
}

// ReplaceMatchReports atomically replaces everything the publish state
// machine owns for a match: existing team reports, player metric values and
// match metric values are deleted, fresh rows inserted, and the match marked
// PUBLISHED, all in a single transaction, so a failing insert leaves the
// previous report intact.
func (db *DB) ReplaceMatchReports(ctx context.Context, matchID int64, reports []TeamReportData, matchValues []model.MatchMetricValue) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM player_metric_values
		WHERE team_report_id IN (SELECT id FROM team_reports WHERE match_id = ?)`, matchID); err != nil {
		return fmt.Errorf("clear player values: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM team_reports WHERE match_id = ?", matchID); err != nil {
		return fmt.Errorf("clear team reports: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM match_metric_values WHERE match_id = ?", matchID); err != nil {
		return fmt.Errorf("clear match values: %w", err)
	}

	valueStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO player_metric_values(team_report_id, player_id, metric_id, value)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer valueStmt.Close()

	for _, r := range reports {
		meta, err := json.Marshal(r.Meta)
		if err != nil {
			return fmt.Errorf("encode meta for team %d: %w", r.TeamID, err)
		}
		res, err := tx.ExecContext(ctx, `
			INSERT INTO team_reports(match_id, team_id, score, meta)
			VALUES (?, ?, ?, ?)`, matchID, r.TeamID, r.Score, string(meta))
		if err != nil {
			return fmt.Errorf("insert team report for team %d: %w", r.TeamID, err)
		}
		reportID, err := res.LastInsertId()
		if err != nil {
			return err
		}
		for _, v := range r.Values {
			if _, err := valueStmt.ExecContext(ctx, reportID, v.PlayerID, v.MetricID, v.Value); err != nil {
				return fmt.Errorf("insert player value (player %d, metric %d): %w", v.PlayerID, v.MetricID, err)
			}
		}
	}

	tripleStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO match_metric_values(match_id, metric_id, home, away, diff)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer tripleStmt.Close()

	for _, v := range matchValues {
		if _, err := tripleStmt.ExecContext(ctx, matchID, v.MetricID, v.Value.Home, v.Value.Away, v.Value.Diff); err != nil {
			return fmt.Errorf("insert match value (metric %d): %w", v.MetricID, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE matches SET status = 'PUBLISHED' WHERE id = ?", matchID); err != nil {
		return fmt.Errorf("mark published: %w", err)
	}
	return tx.Commit()
}

// GetTeamReports returns both team reports for a match, home side first when
// the caller orders by the match's team ids.
func (db *DB) GetTeamReports(ctx context.Context, matchID int64) ([]model.TeamReport, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, match_id, team_id, score, meta
		FROM team_reports WHERE match_id = ? ORDER BY id`, matchID)
	if err != nil {
		return nil, fmt.Errorf("get team reports: %w", err)
	}
	defer rows.Close()

	var out []model.TeamReport
	for rows.Next() {
		var r model.TeamReport
		var meta string
		if err := rows.Scan(&r.ID, &r.MatchID, &r.TeamID, &r.Score, &meta); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(meta), &r.Meta); err != nil {
			return nil, fmt.Errorf("decode meta for report %d: %w", r.ID, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// GetPlayerMetricValues returns every player metric value of one team report.
func (db *DB) GetPlayerMetricValues(ctx context.Context, teamReportID int64) ([]model.PlayerMetricValue, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT team_report_id, player_id, metric_id, value
		FROM player_metric_values WHERE team_report_id = ?
		ORDER BY player_id, metric_id`, teamReportID)
	if err != nil {
		return nil, fmt.Errorf("get player values: %w", err)
	}
	defer rows.Close()

	var out []model.PlayerMetricValue
	for rows.Next() {
		var v model.PlayerMetricValue
		if err := rows.Scan(&v.TeamReportID, &v.PlayerID, &v.MetricID, &v.Value); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// GetMatchMetricValues returns every match-level triple for a match.
func (db *DB) GetMatchMetricValues(ctx context.Context, matchID int64) ([]model.MatchMetricValue, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT match_id, metric_id, home, away, diff
		FROM match_metric_values WHERE match_id = ? ORDER BY metric_id`, matchID)
	if err != nil {
		return nil, fmt.Errorf("get match values: %w", err)
	}
	defer rows.Close()

	var out []model.MatchMetricValue
	for rows.Next() {
		var v model.MatchMetricValue
		if err := rows.Scan(&v.MatchID, &v.MetricID, &v.Value.Home, &v.Value.Away, &v.Value.Diff); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// LeaderboardRow is one ranked player with the aggregated metric value.
type LeaderboardRow struct {
	PlayerID int64
	Player   string
	Team     string
	Value    float64
	Samples  int // published team reports contributing to the aggregate
}

// RankPlayerMetric ranks players by one leaf PLAYER metric across all
// published reports. average selects AVG over SUM (percentage-kind metrics
// are averaged, counting metrics summed). seasonID and teamID filter when
// non-zero. Ties order by player id for stable output.
func (db *DB) RankPlayerMetric(ctx context.Context, metricID int64, average bool, seasonID, teamID int64, limit int) ([]LeaderboardRow, error) {
	reducer := "SUM(v.value)"
	if average {
		reducer = "AVG(v.value)"
	}

	query := `
		SELECT v.player_id, p.name, t.name, ` + reducer + ` AS agg, COUNT(*)
		FROM player_metric_values v
		JOIN team_reports tr ON tr.id = v.team_report_id
		JOIN matches m ON m.id = tr.match_id
		JOIN players p ON p.id = v.player_id
		JOIN teams t ON t.id = p.team_id
		WHERE v.metric_id = ?`
	args := []any{metricID}
	if seasonID != 0 {
		query += " AND m.season_id = ?"
		args = append(args, seasonID)
	}
	if teamID != 0 {
		query += " AND p.team_id = ?"
		args = append(args, teamID)
	}
	query += `
		GROUP BY v.player_id, p.name, t.name
		ORDER BY agg DESC, v.player_id ASC
		LIMIT ?`
	args = append(args, limit)

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("rank metric %d: %w", metricID, err)
	}
	defer rows.Close()

	var out []LeaderboardRow
	for rows.Next() {
		var r LeaderboardRow
		if err := rows.Scan(&r.PlayerID, &r.Player, &r.Team, &r.Value, &r.Samples); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
