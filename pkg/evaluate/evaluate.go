package evaluate

import (
	"github.com/ouijasearch/ouija/pkg/content"
	"github.com/ouijasearch/ouija/pkg/ouijaquery"
)

// Result is the accepted-seed record (spec §3's "OuijaResult"): total
// score plus a fixed-size breakdown slot per Should clause, in declared
// order (spec §4.1's 32-clause cap).
type Result struct {
	Seed                  content.Seed
	TotalScore            int
	NaturalNegativeJokers int
	DesiredNegativeJokers int
	ScoreBreakdown        [ouijaquery.MaxShouldClauses]int
}

// Evaluate runs the three-phase single-seed evaluation (spec §4.5) for
// ctx's current seed against q, using plan for the negative-joker
// counters. ok is false if the seed failed Phase A, Phase B, or the
// MinimumScore cutoff.
func Evaluate(ctx *SeedContext, q *ouijaquery.Query, plan *Plan) (Result, bool) {
	for _, c := range q.Must {
		if !satisfy(ctx, c) {
			return Result{}, false
		}
	}

	for _, c := range q.MustNot {
		if satisfy(ctx, c) {
			return Result{}, false
		}
	}

	res := Result{Seed: ctx.seed}
	for i, c := range q.Should {
		if !satisfy(ctx, c) {
			continue
		}
		res.TotalScore += c.Score
		if i < len(res.ScoreBreakdown) {
			res.ScoreBreakdown[i] = c.Score
		}
	}

	countNegatives(ctx, q, plan, &res)

	if res.TotalScore < q.MinimumScore {
		return Result{}, false
	}
	return res, true
}
