package model

// Side identifies a team's designation within a single match.
type Side int

const (
	SideHome Side = 0
	SideAway Side = 1
)

func (s Side) String() string {
	if s == SideAway {
		return "AWAY"
	}
	return "HOME"
}

// SubjectType scopes a metric definition to per-player or match-level values.
type SubjectType int

const (
	SubjectPlayer SubjectType = 0
	SubjectMatch  SubjectType = 1
)

func (t SubjectType) String() string {
	if t == SubjectMatch {
		return "MATCH"
	}
	return "PLAYER"
}

// MetricKind drives leaderboard reducer selection and display formatting.
type MetricKind int

const (
	KindCount   MetricKind = 0
	KindPercent MetricKind = 1
	KindRatio   MetricKind = 2
)

func (k MetricKind) String() string {
	switch k {
	case KindPercent:
		return "PERCENT"
	case KindRatio:
		return "RATIO"
	default:
		return "COUNT"
	}
}

// MatchStatus is the publication lifecycle state of a match.
type MatchStatus int

const (
	StatusDraft     MatchStatus = 0
	StatusPublished MatchStatus = 1
)

func (s MatchStatus) String() string {
	if s == StatusPublished {
		return "PUBLISHED"
	}
	return "DRAFT"
}

// MetricDefinition is one node of the metric catalog. Top-level definitions
// (ParentID == 0) are categories; their children are the leaf metrics that
// carry stored values.
type MetricDefinition struct {
	ID       int64
	Name     string // display name, e.g. "Disposals"
	Alias    string // stable key, e.g. "DISPOSAL"
	Subject  SubjectType
	SportID  int64
	ParentID int64 // 0 for categories
	Kind     MetricKind
}

// IsLeaf reports whether the definition carries values.
func (d MetricDefinition) IsLeaf() bool { return d.ParentID != 0 }

// ---- Directory entities (administered outside the pipeline) ----

type Sport struct {
	ID   int64
	Name string
}

type Season struct {
	ID      int64
	Name    string
	SportID int64
}

type Team struct {
	ID       int64
	Name     string
	SeasonID int64
}

type Player struct {
	ID     int64
	Name   string
	TeamID int64
}

type Location struct {
	ID   int64
	Name string
}

// Match is a two-team contest. Once Status is StatusPublished its team,
// roster and import fields may no longer change.
type Match struct {
	ID            int64
	Status        MatchStatus
	SeasonID      int64
	HomeTeamID    int64
	AwayTeamID    int64
	HomeImportRef string // opaque blob ref, empty until attached
	AwayImportRef string
	Round         int
	Date          string // ISO date, empty until set
	LocationID    int64
}

// CanPublish reports whether all fields the publish state machine requires
// are present.
func (m Match) CanPublish() bool {
	return m.SeasonID != 0 &&
		m.HomeTeamID != 0 && m.AwayTeamID != 0 &&
		m.HomeImportRef != "" && m.AwayImportRef != "" &&
		m.Round != 0 && m.Date != "" && m.LocationID != 0
}

// ImportRef returns the blob ref for one side of the match.
func (m Match) ImportRef(side Side) string {
	if side == SideAway {
		return m.AwayImportRef
	}
	return m.HomeImportRef
}

// TeamID returns the team id for one side of the match.
func (m Match) TeamID(side Side) int64 {
	if side == SideAway {
		return m.AwayTeamID
	}
	return m.HomeTeamID
}

// RosterEntry binds a player to a jersey number for one match. Jersey
// numbers are match-scoped, not a property of the player.
type RosterEntry struct {
	MatchID      int64
	TeamID       int64
	PlayerID     int64
	JerseyNumber int
}

// TeamMeta is the small free-form numeric map attached to a team report.
type TeamMeta struct {
	Rushed       float64 `json:"RUSHED"`
	TotalGoals   float64 `json:"TOTAL_GOAL"`
	TotalBehinds float64 `json:"TOTAL_BEHIND"`
}

// TeamReport is one side's published report for a match. Owned by the
// publish state machine; deleted and recreated on every publish.
type TeamReport struct {
	ID      int64
	MatchID int64
	TeamID  int64
	Score   float64
	Meta    TeamMeta
}

// PlayerMetricValue is one player's value for one leaf PLAYER metric.
type PlayerMetricValue struct {
	TeamReportID int64
	PlayerID     int64
	MetricID     int64
	Value        float64
}

// Triple is the [home, away, diff] representation of a match-level metric.
type Triple struct {
	Home float64
	Away float64
	Diff float64
}

// MatchMetricValue is one leaf MATCH metric's triple for a match.
type MatchMetricValue struct {
	MatchID  int64
	MetricID int64
	Value    Triple
}

// ---- Parsed import ----

// SheetRow maps normalized field names to numeric values for one import row.
type SheetRow map[string]float64

// SheetMeta carries the non-player rows of an import.
type SheetMeta struct {
	Rushed float64
}

// TeamSheet is the normalized form of one side's vendor export: meta rows
// plus one row per jersey number, exactly as parsed.
type TeamSheet struct {
	Meta SheetMeta
	Rows map[string]SheetRow // keyed by jersey number as written, e.g. "07"
}
