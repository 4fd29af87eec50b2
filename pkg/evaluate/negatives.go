package evaluate

import (
	"github.com/ouijasearch/ouija/pkg/model"
	"github.com/ouijasearch/ouija/pkg/ouijaquery"
)

// Plan precomputes the data countNegatives needs from q once, so the
// per-seed hot path never allocates for it (Design Notes §9: "do not
// heap-allocate per seed"). Construct one Plan per Query with Prepare and
// share it across every worker the same way the Query itself is shared.
type Plan struct {
	antes          []int
	desiredClauses []ouijaquery.FilterItem
}

// Prepare builds a Plan for q. Call once, before the search starts.
func Prepare(q *ouijaquery.Query) *Plan {
	seen := make(map[int]struct{})
	var antes []int
	collectAntes := func(items []ouijaquery.FilterItem) {
		for _, c := range items {
			for _, a := range c.SearchAntes {
				if _, ok := seen[a]; !ok {
					seen[a] = struct{}{}
					antes = append(antes, a)
				}
			}
		}
	}
	collectAntes(q.Must)
	collectAntes(q.MustNot)
	collectAntes(q.Should)

	var desired []ouijaquery.FilterItem
	collectDesired := func(items []ouijaquery.FilterItem) {
		for _, c := range items {
			if (c.Category == model.CategoryJoker || c.Category == model.CategorySoulJoker) &&
				c.EditionSet && c.Edition == model.EditionNegative {
				desired = append(desired, c)
			}
		}
	}
	collectDesired(q.Must)
	collectDesired(q.MustNot)
	collectDesired(q.Should)

	return &Plan{antes: antes, desiredClauses: desired}
}

// countNegatives implements spec §4.5's negative-joker counters.
// ScoreNaturalNegatives counts any negative-edition joker seen in a shop
// across every ante named anywhere in the query, regardless of what any
// clause actually requested. ScoreDesiredNegatives counts, once each, the
// Must/MustNot/Should clauses that explicitly required Edition=Negative
// on a Joker or SoulJoker and were satisfied by this seed.
func countNegatives(ctx *SeedContext, q *ouijaquery.Query, plan *Plan, res *Result) {
	if q.ScoreNaturalNegatives {
		for _, ante := range plan.antes {
			for _, item := range ctx.shopAt(ante) {
				if item.Category != model.CategoryJoker && item.Category != model.CategorySoulJoker {
					continue
				}
				if item.Edition == model.EditionNegative {
					res.NaturalNegativeJokers++
				}
			}
		}
	}

	if q.ScoreDesiredNegatives {
		for _, c := range plan.desiredClauses {
			if satisfy(ctx, c) {
				res.DesiredNegativeJokers++
			}
		}
	}
}
