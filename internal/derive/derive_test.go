package derive

import (
	"testing"

	"github.com/isports/aflstats/internal/model"
)

func testRoster() []model.RosterEntry {
	return []model.RosterEntry{
		{MatchID: 1, TeamID: 10, PlayerID: 100, JerseyNumber: 7},
		{MatchID: 1, TeamID: 10, PlayerID: 101, JerseyNumber: 23},
		{MatchID: 1, TeamID: 20, PlayerID: 200, JerseyNumber: 7},
	}
}

func TestSideDisposalDerivation(t *testing.T) {
	sheet := &model.TeamSheet{Rows: map[string]model.SheetRow{
		"7": {
			FieldKickEffective:   3,
			FieldKickIneffective: 1,
			FieldKickTurnover:    0,
			FieldHBEffective:     2,
			FieldHBIneffective:   0,
			FieldHBTurnover:      2,
		},
	}}

	res := Side(model.SideHome, 10, sheet, testRoster())
	if len(res.Players) != 1 {
		t.Fatalf("expected 1 player, got %d", len(res.Players))
	}
	p := res.Players[0]
	if p.PlayerID != 100 || p.Jersey != 7 {
		t.Errorf("unexpected player resolution: %+v", p)
	}

	// Kicks: 3 effective of 4 total is 75.0.
	if p.Kicks.Total != 4 {
		t.Errorf("kicks total: got %v, want 4", p.Kicks.Total)
	}
	if p.Kicks.Percent != 75.0 {
		t.Errorf("kicks percent: got %v, want 75.0", p.Kicks.Percent)
	}

	// Handballs: 2 of 4.
	if p.Handballs.Percent != 50.0 {
		t.Errorf("handballs percent: got %v, want 50.0", p.Handballs.Percent)
	}

	// All disposals: 5 effective, 1 ineffective, 2 turnovers.
	if p.Disposals.Effective != 5 || p.Disposals.Ineffective != 1 || p.Disposals.Turnover != 2 {
		t.Errorf("disposal line: %+v", p.Disposals)
	}
	if p.Disposals.Total != 8 {
		t.Errorf("disposal total: got %v, want 8", p.Disposals.Total)
	}
	if p.Disposals.Percent != 62.5 {
		t.Errorf("disposal percent: got %v, want 62.5", p.Disposals.Percent)
	}
}

func TestSideClearanceTotal(t *testing.T) {
	sheet := &model.TeamSheet{Rows: map[string]model.SheetRow{
		"7": {FieldClearanceBU: 2, FieldClearanceCSB: 1, FieldClearanceTI: 3},
	}}
	res := Side(model.SideHome, 10, sheet, testRoster())
	c := res.Players[0].Clearance
	if c.Total != 6 {
		t.Errorf("clearance total: got %v, want 6", c.Total)
	}
}

func TestSideGoalFieldsBySide(t *testing.T) {
	row := model.SheetRow{
		FieldGoalHome: 3, FieldBehindHome: 2,
		FieldGoalAway: 5, FieldBehindAway: 4,
	}

	home := Side(model.SideHome, 10, &model.TeamSheet{Rows: map[string]model.SheetRow{"7": row}}, testRoster())
	if g := home.Players[0].Other.Goals; g != 3 {
		t.Errorf("home goals: got %v, want 3", g)
	}
	if b := home.Players[0].Other.Behinds; b != 2 {
		t.Errorf("home behinds: got %v, want 2", b)
	}

	away := Side(model.SideAway, 20, &model.TeamSheet{Rows: map[string]model.SheetRow{"7": row}}, testRoster())
	if g := away.Players[0].Other.Goals; g != 5 {
		t.Errorf("away goals: got %v, want 5", g)
	}
	if b := away.Players[0].Other.Behinds; b != 4 {
		t.Errorf("away behinds: got %v, want 4", b)
	}
}

func TestSideSkipsUnmatchedJerseys(t *testing.T) {
	sheet := &model.TeamSheet{Rows: map[string]model.SheetRow{
		"7":  {FieldKickEffective: 1},
		"99": {FieldKickEffective: 5},
	}}
	res := Side(model.SideHome, 10, sheet, testRoster())
	if len(res.Players) != 1 {
		t.Fatalf("expected 1 derived player, got %d", len(res.Players))
	}
	if len(res.SkippedJerseys) != 1 || res.SkippedJerseys[0] != "99" {
		t.Errorf("expected jersey 99 skipped, got %v", res.SkippedJerseys)
	}
}

func TestSideResolvesLeadingZeroJersey(t *testing.T) {
	sheet := &model.TeamSheet{Rows: map[string]model.SheetRow{
		"07": {FieldKickEffective: 1},
	}}
	res := Side(model.SideHome, 10, sheet, testRoster())
	if len(res.Players) != 1 || res.Players[0].PlayerID != 100 {
		t.Errorf("expected jersey 07 to resolve to player 100, got %+v", res.Players)
	}
}

func TestSideCarriesMeta(t *testing.T) {
	sheet := &model.TeamSheet{
		Meta: model.SheetMeta{Rushed: 3},
		Rows: map[string]model.SheetRow{},
	}
	res := Side(model.SideAway, 20, sheet, testRoster())
	if res.Meta.Rushed != 3 {
		t.Errorf("meta rushed: got %v, want 3", res.Meta.Rushed)
	}
	if len(res.Players) != 0 {
		t.Errorf("expected no players for empty sheet")
	}
}

func TestPercent(t *testing.T) {
	cases := []struct {
		n, d, want float64
	}{
		{3, 4, 75.0},
		{0, 0, 0},    // zero denominator guards, never NaN
		{5, 0, 0},    // same
		{0, 10, 0},   // zero share stays zero
		{1, 3, 33.3}, // round(0.333, 3) * 100 = 33.3
		{2, 3, 66.7},
		{10, 10, 100},
	}
	for _, c := range cases {
		if got := Percent(c.n, c.d); got != c.want {
			t.Errorf("Percent(%v, %v) = %v, want %v", c.n, c.d, got, c.want)
		}
	}
}

func TestRoundHalfAwayFromZero(t *testing.T) {
	if got := Round(2.375, 2); got != 2.38 {
		t.Errorf("Round(2.375, 2) = %v, want 2.38", got)
	}
	if got := Round(-2.375, 2); got != -2.38 {
		t.Errorf("Round(-2.375, 2) = %v, want -2.38", got)
	}
	if got := Round(1.5, 0); got != 2 {
		t.Errorf("Round(1.5, 0) = %v, want 2", got)
	}
}
