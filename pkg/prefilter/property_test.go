package prefilter

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/ouijasearch/ouija/pkg/content"
	"github.com/ouijasearch/ouija/pkg/content/refprovider"
	"github.com/ouijasearch/ouija/pkg/evaluate"
	"github.com/ouijasearch/ouija/pkg/model"
	"github.com/ouijasearch/ouija/pkg/ouijaquery"
	"github.com/ouijasearch/ouija/pkg/seedspace"
)

func randomLane(t *rapid.T) content.Lane {
	startIdx := rapid.Int64Range(0, seedspace.Base*seedspace.Base*seedspace.Base*seedspace.Base*seedspace.Base*seedspace.Base*seedspace.Base*seedspace.Base-content.LaneWidth).
		Draw(t, "startIdx")

	var lane content.Lane
	for i := 0; i < content.LaneWidth; i++ {
		lane[i] = seedspace.FromIndex(startIdx + int64(i))
	}
	return lane
}

// checkNeverFalselyRejects runs the vector pre-filter and the single-seed
// evaluator against the same lane and query, and fails if any lane slot
// the evaluator accepts was cleared by the pre-filter (spec §4.4: "the
// vector path must never cause a false rejection").
func checkNeverFalselyRejects(t *rapid.T, p *refprovider.Provider, q *ouijaquery.Query, lane content.Lane) {
	mask := Run(p, q, lane)

	ctx := evaluate.NewSeedContext(p)
	plan := evaluate.Prepare(q)
	for i := 0; i < content.LaneWidth; i++ {
		ctx.Reset(lane[i])
		_, accepted := evaluate.Evaluate(ctx, q, plan)
		if accepted && !mask.IsSet(i) {
			t.Fatalf("prefilter rejected lane %d (seed %q) that the evaluator accepts", i, lane[i])
		}
	}
}

// TestProperty_NeverFalselyRejects_Voucher exercises the voucher-union path
// (spec §4.4 item 1).
func TestProperty_NeverFalselyRejects_Voucher(t *testing.T) {
	p := refprovider.New()
	rapid.Check(t, func(t *rapid.T) {
		ante := rapid.IntRange(1, 8).Draw(t, "ante")
		lane := randomLane(t)
		target := p.GetAnteFirstVoucher(lane[0], ante)

		q := &ouijaquery.Query{
			Must: []ouijaquery.FilterItem{
				{Category: model.CategoryVoucher, Value: target, SearchAntes: []int{ante}},
			},
		}
		checkNeverFalselyRejects(t, p, q, lane)
	})
}

// TestProperty_NeverFalselyRejects_Tag exercises the tag-clause path,
// across all three tag-variant categories.
func TestProperty_NeverFalselyRejects_Tag(t *testing.T) {
	p := refprovider.New()
	variants := []model.Category{model.CategoryTag, model.CategorySmallBlindTag, model.CategoryBigBlindTag}
	rapid.Check(t, func(t *rapid.T) {
		ante := rapid.IntRange(1, 8).Draw(t, "ante")
		variant := variants[rapid.IntRange(0, len(variants)-1).Draw(t, "variant")]
		lane := randomLane(t)

		ts := p.CreateTagStream(lane[0], ante)
		small := ts.Next()
		target := small
		if variant == model.CategoryBigBlindTag {
			target = ts.Next()
		}

		q := &ouijaquery.Query{
			Must: []ouijaquery.FilterItem{
				{Category: variant, Value: target, SearchAntes: []int{ante}},
			},
		}
		checkNeverFalselyRejects(t, p, q, lane)
	})
}

// TestProperty_NeverFalselyRejects_Planet covers the shop-category vector
// path, both when the shop is the clause's sole satisfaction path and when
// IncludeBoosterPacks also lets the pack path satisfy it — the case the
// shop-only vector filter must not short-circuit.
func TestProperty_NeverFalselyRejects_Planet(t *testing.T) {
	p := refprovider.New()
	rapid.Check(t, func(t *rapid.T) {
		ante := rapid.IntRange(1, 8).Draw(t, "ante")
		includeBoosterPacks := rapid.IntRange(0, 1).Draw(t, "includeBoosterPacks") == 1
		lane := randomLane(t)

		q := &ouijaquery.Query{
			Must: []ouijaquery.FilterItem{
				{
					Category: model.CategoryPlanet, Value: model.AnyItem, SearchAntes: []int{ante},
					IncludeShopStream:   true,
					IncludeBoosterPacks: includeBoosterPacks,
				},
			},
		}
		checkNeverFalselyRejects(t, p, q, lane)
	})
}

// TestProperty_NeverFalselyRejects_Spectral guards the exact regression
// this property is meant to catch: Spectral has no single-seed shop path
// (satisfyPackCategory skips the shop for Spectral), so a Spectral MUST
// clause must never be vectorized against the shop at all, regardless of
// IncludeShopStream/IncludeBoosterPacks.
func TestProperty_NeverFalselyRejects_Spectral(t *testing.T) {
	p := refprovider.New()
	rapid.Check(t, func(t *rapid.T) {
		ante := rapid.IntRange(1, 8).Draw(t, "ante")
		includeShopStream := rapid.IntRange(0, 1).Draw(t, "includeShopStream") == 1
		lane := randomLane(t)

		q := &ouijaquery.Query{
			Must: []ouijaquery.FilterItem{
				{
					Category: model.CategorySpectral, Value: model.AnyItem, SearchAntes: []int{ante},
					IncludeShopStream:   includeShopStream,
					IncludeBoosterPacks: true,
				},
			},
		}
		checkNeverFalselyRejects(t, p, q, lane)
	})
}
