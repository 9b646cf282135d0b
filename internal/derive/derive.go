// Package derive computes per-player compound statistics from one side's
// parsed team sheet. Derivation is pure: it reads the sheet and a roster,
// returns immutable records, and touches nothing else.
package derive

import (
	"math"
	"sort"
	"strconv"

	"github.com/isports/aflstats/internal/model"
)

// Raw vendor field names as they appear in the export header.
const (
	FieldKickEffective   = "KICK_EF"
	FieldKickIneffective = "KICK_IE"
	FieldKickTurnover    = "KICK_TO"
	FieldHBEffective     = "HB_EF"
	FieldHBIneffective   = "HB_IE"
	FieldHBTurnover      = "HB_TO"
	FieldClearanceBU     = "CLR_BU"
	FieldClearanceCSB    = "CLR_CSB"
	FieldClearanceTI     = "CLR_TI"
	FieldPossContested   = "POSS_CONT"
	FieldPossUncontested = "POSS_UNCON"
	FieldMarkContested   = "MARK_CONT"
	FieldMarkUncontested = "MARK_UC"
	FieldMarkForward50   = "MARK_F50"
	FieldMarkIntercept   = "MARK_INT"
	FieldRuckHitout      = "RUCK_HO"
	FieldTackleEffective = "TACKLE_EF"
	FieldFreeFor         = "FK_FOR"
	FieldFreeAgainst     = "FK_AGAINST"
	FieldInside50        = "I50_INDIVIDUAL"
	FieldGoalHome        = "GOAL_HOME"
	FieldGoalAway        = "GOAL_AWAY"
	FieldBehindHome      = "BEHIND_HOME"
	FieldBehindAway      = "BEHIND_AWAY"
)

// DisposalLine is the E/IE/TO/D/% breakdown for one disposal scope
// (all disposals, kicks only, or handballs only).
type DisposalLine struct {
	Effective   float64
	Ineffective float64
	Turnover    float64
	Total       float64 // Effective + Ineffective + Turnover
	Percent     float64 // effective share, stored as a display percentage
}

// ClearanceLine sums the three zone-specific clearance counts.
type ClearanceLine struct {
	BallUp            float64
	CentreSquareBreak float64
	ThrowIn           float64
	Total             float64
}

// PossessionLine carries the possession and marking passthroughs.
type PossessionLine struct {
	Contested        float64
	Uncontested      float64
	ContestedMarks   float64
	UncontestedMarks float64
	Forward50Marks   float64
	InterceptMarks   float64
}

// OtherLine carries the remaining direct or side-disambiguated passthroughs.
type OtherLine struct {
	Hitouts      float64
	Tackles      float64
	FreesFor     float64
	FreesAgainst float64
	Inside50s    float64
	Goals        float64
	Behinds      float64
}

// Derivation is the full set of derived metrics for one rostered player.
type Derivation struct {
	PlayerID  int64
	Jersey    int
	Disposals DisposalLine // all disposals
	Kicks     DisposalLine
	Handballs DisposalLine
	Clearance ClearanceLine
	Poss      PossessionLine
	Other     OtherLine
}

// Result is one side's derivation output. SkippedJerseys lists import rows
// whose jersey number had no roster entry; those rows are dropped and the
// caller decides how loudly to complain.
type Result struct {
	Side           model.Side
	TeamID         int64
	Meta           model.SheetMeta
	Players        []Derivation
	SkippedJerseys []string
}

// Side derives every player row of one side's sheet. Rows resolve to players
// through the match roster: the row's jersey number must match a roster entry
// for this team. Rows without a match are skipped, not fatal.
func Side(side model.Side, teamID int64, sheet *model.TeamSheet, roster []model.RosterEntry) *Result {
	byJersey := make(map[int]int64, len(roster))
	for _, e := range roster {
		if e.TeamID == teamID {
			byJersey[e.JerseyNumber] = e.PlayerID
		}
	}

	jerseys := make([]string, 0, len(sheet.Rows))
	for j := range sheet.Rows {
		jerseys = append(jerseys, j)
	}
	sort.Strings(jerseys)

	res := &Result{Side: side, TeamID: teamID, Meta: sheet.Meta}
	for _, jersey := range jerseys {
		n, err := strconv.Atoi(jersey)
		if err != nil {
			res.SkippedJerseys = append(res.SkippedJerseys, jersey)
			continue
		}
		playerID, ok := byJersey[n]
		if !ok {
			res.SkippedJerseys = append(res.SkippedJerseys, jersey)
			continue
		}
		res.Players = append(res.Players, derivePlayer(playerID, n, side, sheet.Rows[jersey]))
	}
	return res
}

func derivePlayer(playerID int64, jersey int, side model.Side, row model.SheetRow) Derivation {
	goalField, behindField := FieldGoalHome, FieldBehindHome
	if side == model.SideAway {
		goalField, behindField = FieldGoalAway, FieldBehindAway
	}

	kicks := disposalLine(row[FieldKickEffective], row[FieldKickIneffective], row[FieldKickTurnover])
	handballs := disposalLine(row[FieldHBEffective], row[FieldHBIneffective], row[FieldHBTurnover])
	all := disposalLine(
		row[FieldKickEffective]+row[FieldHBEffective],
		row[FieldKickIneffective]+row[FieldHBIneffective],
		row[FieldKickTurnover]+row[FieldHBTurnover],
	)

	return Derivation{
		PlayerID:  playerID,
		Jersey:    jersey,
		Disposals: all,
		Kicks:     kicks,
		Handballs: handballs,
		Clearance: ClearanceLine{
			BallUp:            row[FieldClearanceBU],
			CentreSquareBreak: row[FieldClearanceCSB],
			ThrowIn:           row[FieldClearanceTI],
			Total:             row[FieldClearanceBU] + row[FieldClearanceCSB] + row[FieldClearanceTI],
		},
		Poss: PossessionLine{
			Contested:        row[FieldPossContested],
			Uncontested:      row[FieldPossUncontested],
			ContestedMarks:   row[FieldMarkContested],
			UncontestedMarks: row[FieldMarkUncontested],
			Forward50Marks:   row[FieldMarkForward50],
			InterceptMarks:   row[FieldMarkIntercept],
		},
		Other: OtherLine{
			Hitouts:      row[FieldRuckHitout],
			Tackles:      row[FieldTackleEffective],
			FreesFor:     row[FieldFreeFor],
			FreesAgainst: row[FieldFreeAgainst],
			Inside50s:    row[FieldInside50],
			Goals:        row[goalField],
			Behinds:      row[behindField],
		},
	}
}

func disposalLine(e, ie, to float64) DisposalLine {
	total := e + ie + to
	return DisposalLine{
		Effective:   e,
		Ineffective: ie,
		Turnover:    to,
		Total:       total,
		Percent:     Percent(e, total),
	}
}

// Percent is the shared effective-share convention: round(n/d, 3) scaled to a
// one-decimal display percentage. A zero denominator yields 0, never NaN.
func Percent(n, d float64) float64 {
	if d == 0 {
		return 0
	}
	p := Round(n/d, 3)
	if p <= 0 {
		return 0
	}
	return Round(p*100, 1)
}

// Round rounds half away from zero to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
