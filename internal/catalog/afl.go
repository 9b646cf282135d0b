package catalog

import "github.com/isports/aflstats/internal/model"

// SeedLeaf is one leaf metric in the seed catalog.
type SeedLeaf struct {
	Name  string
	Alias string
	Kind  model.MetricKind
}

// SeedCategory is one top-level catalog entry plus its leaves.
type SeedCategory struct {
	Name    string
	Alias   string
	Subject model.SubjectType
	Leaves  []SeedLeaf
}

// AFLCatalog is the seed catalog for Australian rules football. MATCH-type
// leaves appear on the comparative match report as [home, away, diff]
// triples; PLAYER-type leaves carry one value per rostered player.
//
// A handful of leaves the vendor export duplicated across categories carry
// category-qualified aliases (OFF_*, POSS_UNCON_M) so that alias lookup
// stays unique per subject type.
func AFLCatalog() []SeedCategory {
	return []SeedCategory{
		{
			Name: "Overview", Alias: "OVERVIEW", Subject: model.SubjectMatch,
			Leaves: []SeedLeaf{
				{Name: "Disposals", Alias: "DISPOSAL"},
				{Name: "Kicks", Alias: "KICKS"},
				{Name: "Handballs", Alias: "HANDBALLS"},
				{Name: "K/H Ratio", Alias: "KH_RATIO", Kind: model.KindRatio},
				{Name: "Disposal %", Alias: "DISPOSAL_PER", Kind: model.KindPercent},
				{Name: "Clangers", Alias: "CLANGERS"},
				{Name: "I50s", Alias: "I50S"},
				{Name: "Sc %/I50", Alias: "SC_PER_I50", Kind: model.KindPercent},
				{Name: "Cont Poss", Alias: "CONT_POSS"},
				{Name: "Uncon Poss", Alias: "UNCON_POSS"},
				{Name: "Marks", Alias: "MARK"},
				{Name: "F50 Marks", Alias: "F50_MARKS"},
				{Name: "Uncon M", Alias: "UNCON_M"},
				{Name: "Cont M", Alias: "CONT_M"},
				{Name: "Intercept M", Alias: "INTERCEPT_M"},
				{Name: "Tackles", Alias: "TACKLES"},
				{Name: "Free Kicks", Alias: "FREE_KICKS"},
			},
		},
		{
			Name: "Stoppage", Alias: "STOPPAGE", Subject: model.SubjectMatch,
			Leaves: []SeedLeaf{
				{Name: "BU", Alias: "BU"},
				{Name: "CSB", Alias: "CSB"},
				{Name: "TI", Alias: "TI"},
				{Name: "Total CLR", Alias: "TOTAL_CLR"},
				{Name: "Hit Outs", Alias: "HIT_OUTS"},
				{Name: "Hit Outs TA", Alias: "HIT_OUTS_TA"},
			},
		},
		{
			Name: "Offence", Alias: "OFFENCE", Subject: model.SubjectMatch,
			Leaves: []SeedLeaf{
				{Name: "I50s", Alias: "OFF_I50S"},
				{Name: "Sc %/I50", Alias: "OFF_SC_PER_I50", Kind: model.KindPercent},
				{Name: "Deep", Alias: "DEEP"},
				{Name: "Shallow", Alias: "SHALLOW"},
				{Name: "F50 Marks", Alias: "OFF_F50_MARKS"},
				{Name: "R. Behinds", Alias: "R_BEHINDS"},
			},
		},
		{
			Name: "Possession", Alias: "POSSESSION", Subject: model.SubjectMatch,
			Leaves: []SeedLeaf{
				{Name: "Loose Ball", Alias: "LOOSE_BALL"},
				{Name: "Hard Ball", Alias: "HARD_BALL"},
				{Name: "Frees For", Alias: "FREES_FOR"},
				{Name: "Cont M", Alias: "COUNT_M"},
				{Name: "Total Cont", Alias: "TOTAL_CONT"},
				{Name: "HB Rec", Alias: "HB_REC"},
				{Name: "Gathers", Alias: "GATHERS"},
				{Name: "Uncon M", Alias: "POSS_UNCON_M"},
				{Name: "Total Uncon", Alias: "TOTAL_UNCON"},
			},
		},
		{
			Name: "Disposal Statistics", Alias: "DISPOSAL_STATISTICS", Subject: model.SubjectPlayer,
			Leaves: []SeedLeaf{
				{Name: "D", Alias: "D"},
				{Name: "E", Alias: "E_1"},
				{Name: "IE", Alias: "IE_1"},
				{Name: "TO", Alias: "TO_1"},
				{Name: "%", Alias: "PER_1", Kind: model.KindPercent},
				{Name: "K", Alias: "K"},
				{Name: "K E", Alias: "E_2"},
				{Name: "K IE", Alias: "IE_2"},
				{Name: "K TO", Alias: "TO_2"},
				{Name: "%", Alias: "PER_2", Kind: model.KindPercent},
				{Name: "HB", Alias: "HB"},
				{Name: "HB E", Alias: "E_3"},
				{Name: "HB IE", Alias: "IE_3"},
				{Name: "HB TO", Alias: "TO_3"},
				{Name: "%", Alias: "PER_3", Kind: model.KindPercent},
			},
		},
		{
			Name: "Clearances", Alias: "CLEARANCES", Subject: model.SubjectPlayer,
			Leaves: []SeedLeaf{
				{Name: "CLR BU", Alias: "CLR_BU"},
				{Name: "CLR CSB", Alias: "CLR_CSB"},
				{Name: "CLR TI", Alias: "CLR_TI"},
				{Name: "CLR", Alias: "CLR"},
			},
		},
		{
			Name: "Possessions & Marking", Alias: "POSSESSIONS_MARKING", Subject: model.SubjectPlayer,
			Leaves: []SeedLeaf{
				{Name: "CP", Alias: "CP"},
				{Name: "UP", Alias: "UP"},
				{Name: "CM", Alias: "CM"},
				{Name: "UM", Alias: "UM"},
				{Name: "F50M", Alias: "F50M"},
				{Name: "INTM", Alias: "INTM"},
			},
		},
		{
			Name: "Other", Alias: "OTHER", Subject: model.SubjectPlayer,
			Leaves: []SeedLeaf{
				{Name: "HO", Alias: "HO"},
				{Name: "HOTA", Alias: "HOTA"},
				{Name: "T", Alias: "T"},
				{Name: "FK F", Alias: "FK_F"},
				{Name: "FK A", Alias: "FK_A"},
				{Name: "I50", Alias: "I50"},
				{Name: "G", Alias: "G"},
				{Name: "B", Alias: "B"},
			},
		},
	}
}
