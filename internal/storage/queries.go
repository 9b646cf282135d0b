package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/isports/aflstats/internal/model"
)

// ---- Directory (seeded once, read-only during publication) ----

// InsertSport inserts a sport and returns its id.
func (db *DB) InsertSport(name string) (int64, error) {
	res, err := db.conn.Exec("INSERT INTO sports(name) VALUES (?)", name)
	if err != nil {
		return 0, fmt.Errorf("insert sport: %w", err)
	}
	return res.LastInsertId()
}

func (db *DB) InsertSeason(name string, sportID int64) (int64, error) {
	res, err := db.conn.Exec("INSERT INTO seasons(name, sport_id) VALUES (?, ?)", name, sportID)
	if err != nil {
		return 0, fmt.Errorf("insert season: %w", err)
	}
	return res.LastInsertId()
}

func (db *DB) InsertTeam(name string, seasonID int64) (int64, error) {
	res, err := db.conn.Exec("INSERT INTO teams(name, season_id) VALUES (?, ?)", name, seasonID)
	if err != nil {
		return 0, fmt.Errorf("insert team: %w", err)
	}
	return res.LastInsertId()
}

func (db *DB) InsertPlayer(name string, teamID int64) (int64, error) {
	res, err := db.conn.Exec("INSERT INTO players(name, team_id) VALUES (?, ?)", name, teamID)
	if err != nil {
		return 0, fmt.Errorf("insert player: %w", err)
	}
	return res.LastInsertId()
}

func (db *DB) InsertLocation(name string) (int64, error) {
	res, err := db.conn.Exec("INSERT INTO locations(name) VALUES (?)", name)
	if err != nil {
		return 0, fmt.Errorf("insert location: %w", err)
	}
	return res.LastInsertId()
}

// TeamName returns a team's display name.
func (db *DB) TeamName(ctx context.Context, id int64) (string, error) {
	var name string
	err := db.conn.QueryRowContext(ctx, "SELECT name FROM teams WHERE id = ?", id).Scan(&name)
	if err != nil {
		return "", fmt.Errorf("team %d: %w", id, err)
	}
	return name, nil
}

// LocationName returns a location's display name, or "" for id 0.
func (db *DB) LocationName(ctx context.Context, id int64) (string, error) {
	if id == 0 {
		return "", nil
	}
	var name string
	err := db.conn.QueryRowContext(ctx, "SELECT name FROM locations WHERE id = ?", id).Scan(&name)
	if err != nil {
		return "", fmt.Errorf("location %d: %w", id, err)
	}
	return name, nil
}

// ---- Metric catalog ----

// InsertMetricDefinition inserts one catalog row. ParentID 0 maps to NULL
// (a category).
func (db *DB) InsertMetricDefinition(d model.MetricDefinition, position int) (int64, error) {
	var parent any
	if d.ParentID != 0 {
		parent = d.ParentID
	}
	res, err := db.conn.Exec(`
		INSERT INTO metric_definitions(name, alias, subject, sport_id, parent_id, kind, position)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		d.Name, d.Alias, d.Subject.String(), d.SportID, parent, d.Kind.String(), position)
	if err != nil {
		return 0, fmt.Errorf("insert metric %s/%s: %w", d.Subject, d.Alias, err)
	}
	return res.LastInsertId()
}

// LoadCatalog returns every metric definition in catalog order.
func (db *DB) LoadCatalog(ctx context.Context) ([]model.MetricDefinition, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, name, alias, subject, sport_id, COALESCE(parent_id, 0), kind
		FROM metric_definitions ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	defer rows.Close()

	var out []model.MetricDefinition
	for rows.Next() {
		var d model.MetricDefinition
		var subject, kind string
		if err := rows.Scan(&d.ID, &d.Name, &d.Alias, &subject, &d.SportID, &d.ParentID, &kind); err != nil {
			return nil, err
		}
		d.Subject = parseSubject(subject)
		d.Kind = parseKind(kind)
		out = append(out, d)
	}
	return out, rows.Err()
}

// ---- Matches and rosters ----

// CreateMatch inserts a draft match and returns its id.
func (db *DB) CreateMatch(m model.Match) (int64, error) {
	var location any
	if m.LocationID != 0 {
		location = m.LocationID
	}
	res, err := db.conn.Exec(`
		INSERT INTO matches(status, season_id, home_team_id, away_team_id,
			home_import_ref, away_import_ref, round, date, location_id)
		VALUES ('DRAFT', ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.SeasonID, m.HomeTeamID, m.AwayTeamID,
		m.HomeImportRef, m.AwayImportRef, m.Round, m.Date, location)
	if err != nil {
		return 0, fmt.Errorf("insert match: %w", err)
	}
	return res.LastInsertId()
}

// GetMatch returns a match by id, or nil when absent.
func (db *DB) GetMatch(ctx context.Context, id int64) (*model.Match, error) {
	var m model.Match
	var status string
	var location sql.NullInt64
	err := db.conn.QueryRowContext(ctx, `
		SELECT id, status, season_id, home_team_id, away_team_id,
		       home_import_ref, away_import_ref, round, date, location_id
		FROM matches WHERE id = ?`, id).
		Scan(&m.ID, &status, &m.SeasonID, &m.HomeTeamID, &m.AwayTeamID,
			&m.HomeImportRef, &m.AwayImportRef, &m.Round, &m.Date, &location)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get match %d: %w", id, err)
	}
	m.Status = parseStatus(status)
	m.LocationID = location.Int64
	return &m, nil
}

// MatchListing is a match row joined with team names for display.
type MatchListing struct {
	model.Match
	HomeTeam string
	AwayTeam string
}

// ListMatches returns all matches, newest first.
func (db *DB) ListMatches(ctx context.Context) ([]MatchListing, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT m.id, m.status, m.season_id, m.home_team_id, m.away_team_id,
		       m.home_import_ref, m.away_import_ref, m.round, m.date,
		       COALESCE(m.location_id, 0), ht.name, at.name
		FROM matches m
		JOIN teams ht ON ht.id = m.home_team_id
		JOIN teams at ON at.id = m.away_team_id
		ORDER BY m.date DESC, m.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	defer rows.Close()

	var out []MatchListing
	for rows.Next() {
		var l MatchListing
		var status string
		if err := rows.Scan(&l.ID, &status, &l.SeasonID, &l.HomeTeamID, &l.AwayTeamID,
			&l.HomeImportRef, &l.AwayImportRef, &l.Round, &l.Date,
			&l.LocationID, &l.HomeTeam, &l.AwayTeam); err != nil {
			return nil, err
		}
		l.Status = parseStatus(status)
		out = append(out, l)
	}
	return out, rows.Err()
}

// SetImportRef attaches an import blob ref to one side of a draft match and
// returns the ref it replaced. Published matches are immutable.
func (db *DB) SetImportRef(ctx context.Context, matchID int64, side model.Side, ref string) (string, error) {
	col := "home_import_ref"
	if side == model.SideAway {
		col = "away_import_ref"
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	var status, old string
	err = tx.QueryRowContext(ctx,
		"SELECT status, "+col+" FROM matches WHERE id = ?", matchID).Scan(&status, &old)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("match %d not found", matchID)
	}
	if err != nil {
		return "", err
	}
	if parseStatus(status) == model.StatusPublished {
		return "", fmt.Errorf("match %d is published; imports can no longer change", matchID)
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE matches SET "+col+" = ? WHERE id = ?", ref, matchID); err != nil {
		return "", fmt.Errorf("set import ref: %w", err)
	}
	return old, tx.Commit()
}

// InsertRoster bulk-inserts roster entries in a transaction.
func (db *DB) InsertRoster(entries []model.RosterEntry) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO match_rosters(match_id, team_id, player_id, jersey_number)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.Exec(e.MatchID, e.TeamID, e.PlayerID, e.JerseyNumber); err != nil {
			return fmt.Errorf("insert roster entry #%d: %w", e.JerseyNumber, err)
		}
	}
	return tx.Commit()
}

// GetRoster returns all roster entries for a match.
func (db *DB) GetRoster(ctx context.Context, matchID int64) ([]model.RosterEntry, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT match_id, team_id, player_id, jersey_number
		FROM match_rosters WHERE match_id = ?
		ORDER BY team_id, jersey_number`, matchID)
	if err != nil {
		return nil, fmt.Errorf("get roster: %w", err)
	}
	defer rows.Close()

	var out []model.RosterEntry
	for rows.Next() {
		var e model.RosterEntry
		if err := rows.Scan(&e.MatchID, &e.TeamID, &e.PlayerID, &e.JerseyNumber); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// RosterPlayerNames returns the display name of every rostered player.
func (db *DB) RosterPlayerNames(ctx context.Context, matchID int64) (map[int64]string, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT p.id, p.name
		FROM match_rosters r JOIN players p ON p.id = r.player_id
		WHERE r.match_id = ?`, matchID)
	if err != nil {
		return nil, fmt.Errorf("roster names: %w", err)
	}
	defer rows.Close()

	out := make(map[int64]string)
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		out[id] = name
	}
	return out, rows.Err()
}

// TeamPlayerIDs returns a team's player ids in insertion order.
func (db *DB) TeamPlayerIDs(ctx context.Context, teamID int64) ([]int64, error) {
	rows, err := db.conn.QueryContext(ctx,
		"SELECT id FROM players WHERE team_id = ? ORDER BY id", teamID)
	if err != nil {
		return nil, fmt.Errorf("team players: %w", err)
	}
	defer rows.Close()

	var out []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// DeleteMatch removes a match and everything hanging off it (rosters,
// reports, metric values) in one transaction. Child rows are deleted
// explicitly rather than trusting the connection's foreign_keys pragma.
func (db *DB) DeleteMatch(ctx context.Context, id int64) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmts := []string{
		"DELETE FROM player_metric_values WHERE team_report_id IN (SELECT id FROM team_reports WHERE match_id = ?)",
		"DELETE FROM team_reports WHERE match_id = ?",
		"DELETE FROM match_metric_values WHERE match_id = ?",
		"DELETE FROM match_rosters WHERE match_id = ?",
		"DELETE FROM matches WHERE id = ?",
	}
	for _, q := range stmts {
		if _, err := tx.ExecContext(ctx, q, id); err != nil {
			return fmt.Errorf("delete match %d: %w", id, err)
		}
	}
	return tx.Commit()
}

func parseStatus(s string) model.MatchStatus {
	if s == "PUBLISHED" {
		return model.StatusPublished
	}
	return model.StatusDraft
}

func parseSubject(s string) model.SubjectType {
	if s == "MATCH" {
		return model.SubjectMatch
	}
	return model.SubjectPlayer
}

func parseKind(s string) model.MetricKind {
	switch s {
	case "PERCENT":
		return model.KindPercent
	case "RATIO":
		return model.KindRatio
	default:
		return model.KindCount
	}
}
