package derive

// MetricValue pairs a catalog leaf alias with a derived value.
type MetricValue struct {
	Alias string
	Value float64
}

// Values converts a derivation to catalog rows via a single mapping table.
// Order follows the catalog seed. Leaves the mapping does not name (HOTA)
// default to 0 at aggregation; raw fields with no published metric
// (EFFORT_SPOIL) are dropped here.
func (d Derivation) Values() []MetricValue {
	return []MetricValue{
		{"D", d.Disposals.Total},
		{"E_1", d.Disposals.Effective},
		{"IE_1", d.Disposals.Ineffective},
		{"TO_1", d.Disposals.Turnover},
		{"PER_1", d.Disposals.Percent},
		{"K", d.Kicks.Total},
		{"E_2", d.Kicks.Effective},
		{"IE_2", d.Kicks.Ineffective},
		{"TO_2", d.Kicks.Turnover},
		{"PER_2", d.Kicks.Percent},
		{"HB", d.Handballs.Total},
		{"E_3", d.Handballs.Effective},
		{"IE_3", d.Handballs.Ineffective},
		{"TO_3", d.Handballs.Turnover},
		{"PER_3", d.Handballs.Percent},
		{"CLR_BU", d.Clearance.BallUp},
		{"CLR_CSB", d.Clearance.CentreSquareBreak},
		{"CLR_TI", d.Clearance.ThrowIn},
		{"CLR", d.Clearance.Total},
		{"CP", d.Poss.Contested},
		{"UP", d.Poss.Uncontested},
		{"CM", d.Poss.ContestedMarks},
		{"UM", d.Poss.UncontestedMarks},
		{"F50M", d.Poss.Forward50Marks},
		{"INTM", d.Poss.InterceptMarks},
		{"HO", d.Other.Hitouts},
		{"T", d.Other.Tackles},
		{"FK_F", d.Other.FreesFor},
		{"FK_A", d.Other.FreesAgainst},
		{"I50", d.Other.Inside50s},
		{"G", d.Other.Goals},
		{"B", d.Other.Behinds},
	}
}

// Aliases lists every PLAYER leaf alias the mapping table emits. The publish
// state machine checks each against the catalog before writing anything.
func Aliases() []string {
	var d Derivation
	vs := d.Values()
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Alias
	}
	return out
}
