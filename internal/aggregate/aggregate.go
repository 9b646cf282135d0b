// Package aggregate rolls per-player derivations up into a team report and
// then into match-level [home, away, diff] triples. Both builders are pure
// functions over derive.Result values.
package aggregate

import (
	"github.com/isports/aflstats/internal/derive"
	"github.com/isports/aflstats/internal/model"
)

// PlayerValue is one player's value for one PLAYER leaf alias.
type PlayerValue struct {
	PlayerID int64
	Alias    string
	Value    float64
}

// TeamAggregate is a team report before catalog ids are attached.
type TeamAggregate struct {
	TeamID int64
	Score  float64
	Meta   model.TeamMeta
	Values []PlayerValue
}

// Team builds one side's report: score = 6*goals + behinds + rushed, the
// meta counters, and one value per player per PLAYER leaf alias. Aliases the
// derivation does not emit default to 0.
func Team(res *derive.Result, leafAliases []string) TeamAggregate {
	var goals, behinds float64
	for _, p := range res.Players {
		goals += p.Other.Goals
		behinds += p.Other.Behinds
	}

	agg := TeamAggregate{
		TeamID: res.TeamID,
		Score:  6*goals + behinds + res.Meta.Rushed,
		Meta: model.TeamMeta{
			Rushed:       res.Meta.Rushed,
			TotalGoals:   goals,
			TotalBehinds: behinds,
		},
	}

	for _, p := range res.Players {
		derived := make(map[string]float64)
		for _, v := range p.Values() {
			derived[v.Alias] = v.Value
		}
		for _, alias := range leafAliases {
			agg.Values = append(agg.Values, PlayerValue{
				PlayerID: p.PlayerID,
				Alias:    alias,
				Value:    derived[alias], // absent → 0
			})
		}
	}
	return agg
}

// sums holds one side's team-level totals used by the match builder.
type sums struct {
	disposals, kicks, handballs    float64
	effective, clangers            float64
	handballEffective              float64
	inside50s, goals, behinds      float64
	contested, uncontested         float64
	contestedM, uncontestedM       float64
	forward50M, interceptM         float64
	tackles, freesFor              float64
	clrBU, clrCSB, clrTI, clrTotal float64
	hitouts                        float64
	rushed                         float64
}

func sumSide(res *derive.Result) sums {
	s := sums{rushed: res.Meta.Rushed}
	for _, p := range res.Players {
		s.disposals += p.Disposals.Total
		s.kicks += p.Kicks.Total
		s.handballs += p.Handballs.Total
		s.effective += p.Disposals.Effective
		s.clangers += p.Disposals.Turnover
		s.handballEffective += p.Handballs.Effective
		s.inside50s += p.Other.Inside50s
		s.goals += p.Other.Goals
		s.behinds += p.Other.Behinds
		s.contested += p.Poss.Contested
		s.uncontested += p.Poss.Uncontested
		s.contestedM += p.Poss.ContestedMarks
		s.uncontestedM += p.Poss.UncontestedMarks
		s.forward50M += p.Poss.Forward50Marks
		s.interceptM += p.Poss.InterceptMarks
		s.tackles += p.Other.Tackles
		s.freesFor += p.Other.FreesFor
		s.clrBU += p.Clearance.BallUp
		s.clrCSB += p.Clearance.CentreSquareBreak
		s.clrTI += p.Clearance.ThrowIn
		s.clrTotal += p.Clearance.Total
		s.hitouts += p.Other.Hitouts
	}
	return s
}

// Match computes every derivable MATCH leaf as a [home, away, diff] triple,
// keyed by alias. Leaves absent from the returned map have no formula over
// the available player aggregates and publish as zero triples.
func Match(home, away *derive.Result) map[string]model.Triple {
	h, a := sumSide(home), sumSide(away)

	khRatio := ratioTriple(h.kicks, h.handballs, a.kicks, a.handballs, 2)
	disposalPer := percentTriple(h.effective, h.disposals, a.effective, a.disposals)
	scorePerI50 := percentTriple(
		h.rushed+h.goals+h.behinds, h.inside50s,
		a.rushed+a.goals+a.behinds, a.inside50s,
	)

	t := map[string]model.Triple{
		// Overview
		"DISPOSAL":     countTriple(h.disposals, a.disposals),
		"KICKS":        countTriple(h.kicks, a.kicks),
		"HANDBALLS":    countTriple(h.handballs, a.handballs),
		"KH_RATIO":     khRatio,
		"DISPOSAL_PER": disposalPer,
		"CLANGERS":     countTriple(h.clangers, a.clangers),
		"I50S":         countTriple(h.inside50s, a.inside50s),
		"SC_PER_I50":   scorePerI50,
		"CONT_POSS":    countTriple(h.contested, a.contested),
		"UNCON_POSS":   countTriple(h.uncontested, a.uncontested),
		"MARK":         countTriple(h.contestedM+h.uncontestedM, a.contestedM+a.uncontestedM),
		"F50_MARKS":    countTriple(h.forward50M, a.forward50M),
		"UNCON_M":      countTriple(h.uncontestedM, a.uncontestedM),
		"CONT_M":       countTriple(h.contestedM, a.contestedM),
		"INTERCEPT_M":  countTriple(h.interceptM, a.interceptM),
		"TACKLES":      countTriple(h.tackles, a.tackles),
		"FREE_KICKS":   countTriple(h.freesFor, a.freesFor),

		// Stoppage
		"BU":        countTriple(h.clrBU, a.clrBU),
		"CSB":       countTriple(h.clrCSB, a.clrCSB),
		"TI":        countTriple(h.clrTI, a.clrTI),
		"TOTAL_CLR": countTriple(h.clrTotal, a.clrTotal),
		"HIT_OUTS":  countTriple(h.hitouts, a.hitouts),

		// Offence
		"OFF_I50S":       countTriple(h.inside50s, a.inside50s),
		"OFF_SC_PER_I50": scorePerI50,
		"OFF_F50_MARKS":  countTriple(h.forward50M, a.forward50M),
		// Rushed behinds are reported per side without a differential.
		"R_BEHINDS": {Home: h.rushed, Away: a.rushed, Diff: 0},

		// Possession
		"FREES_FOR":    countTriple(h.freesFor, a.freesFor),
		"COUNT_M":      countTriple(h.contestedM, a.contestedM),
		"TOTAL_CONT":   countTriple(h.contested, a.contested),
		"HB_REC":       countTriple(h.handballEffective, a.handballEffective),
		"POSS_UNCON_M": countTriple(h.uncontestedM, a.uncontestedM),
		"TOTAL_UNCON":  countTriple(h.uncontested, a.uncontested),
	}
	return t
}

func countTriple(home, away float64) model.Triple {
	return model.Triple{Home: home, Away: away, Diff: home - away}
}

// ratioTriple divides per side with a zero-denominator guard, rounding each
// side and the differential to the given decimal places.
func ratioTriple(hn, hd, an, ad float64, places int) model.Triple {
	home := guardedDiv(hn, hd, places)
	away := guardedDiv(an, ad, places)
	return model.Triple{Home: home, Away: away, Diff: derive.Round(home-away, places)}
}

// percentTriple is ratioTriple scaled to a one-decimal percentage.
func percentTriple(hn, hd, an, ad float64) model.Triple {
	home := guardedDiv(hn*100, hd, 1)
	away := guardedDiv(an*100, ad, 1)
	return model.Triple{Home: home, Away: away, Diff: derive.Round(home-away, 1)}
}

func guardedDiv(n, d float64, places int) float64 {
	if d == 0 {
		return 0
	}
	return derive.Round(n/d, places)
}
