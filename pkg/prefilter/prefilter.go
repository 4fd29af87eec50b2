package prefilter

import (
	"github.com/ouijasearch/ouija/pkg/content"
	"github.com/ouijasearch/ouija/pkg/model"
	"github.com/ouijasearch/ouija/pkg/ouijaquery"
)

// vectorizableShopCategories names the shop-category clauses the provider
// can answer without a single-seed walk (spec §4.4: "Planet today; others
// as the provider grows"). Spectral is deliberately absent: it has no
// single-seed shop path at all (satisfyPackCategory skips the shop for
// Spectral, pack-only in the base deck), so a shop-category vector check
// would AND in a filter the evaluator never applies.
var vectorizableShopCategories = map[model.Category]bool{
	model.CategoryPlanet: true,
}

// Run evaluates the vector-capable subset of q's Must clauses against
// lane, starting from an all-set mask, and returns the surviving mask.
// Order matches spec §4.4: voucher union, then tag clauses, then
// vectorizable shop-category clauses, with an early-out the moment the
// mask goes to zero.
func Run(provider content.VectorProvider, q *ouijaquery.Query, lane content.Lane) content.VectorMask {
	mask := content.FullMask()

	mask = applyVoucherUnion(provider, q, lane, mask)
	if mask.IsZero() {
		return mask
	}
	mask = applyTagClauses(provider, q, lane, mask)
	if mask.IsZero() {
		return mask
	}
	return applyShopCategoryClauses(provider, q, lane, mask)
}

// applyVoucherUnion expresses "at least one voucher need was met at at
// least one requested ante" across every MUST voucher clause combined —
// a single union AND-ed into the mask once, not a per-clause AND (spec
// §4.4 item 1, Design Notes §9's "preserve this exactly; it is surprising
// and deliberate").
func applyVoucherUnion(p content.VectorProvider, q *ouijaquery.Query, lane content.Lane, mask content.VectorMask) content.VectorMask {
	var union content.VectorMask
	found := false
	for _, c := range q.Must {
		if c.Category != model.CategoryVoucher {
			continue
		}
		found = true
		for _, ante := range c.SearchAntes {
			union |= p.VoucherEquals(lane, ante, c.Value)
		}
	}
	if !found {
		return mask
	}
	return mask & union
}

func applyTagClauses(p content.VectorProvider, q *ouijaquery.Query, lane content.Lane, mask content.VectorMask) content.VectorMask {
	for _, c := range q.Must {
		if !c.Category.IsTagVariant() {
			continue
		}
		var clauseMask content.VectorMask
		for _, ante := range c.SearchAntes {
			clauseMask |= p.TagEquals(lane, ante, c.Category, c.Value)
		}
		mask &= clauseMask
		if mask.IsZero() {
			return mask
		}
	}
	return mask
}

// applyShopCategoryClauses only ANDs in the shop-only vector check when
// the shop is the clause's sole satisfaction path (IncludeBoosterPacks
// false). When booster packs are also in play, the evaluator can accept a
// seed via the pack path alone, so ANDing a shop-only mask in would clear
// lanes the single-seed evaluator would accept — a false reject (spec
// §4.4: "the vector path must never cause a false rejection").
func applyShopCategoryClauses(p content.VectorProvider, q *ouijaquery.Query, lane content.Lane, mask content.VectorMask) content.VectorMask {
	for _, c := range q.Must {
		if !vectorizableShopCategories[c.Category] || !c.IncludeShopStream || c.IncludeBoosterPacks {
			continue
		}
		var clauseMask content.VectorMask
		for _, ante := range c.SearchAntes {
			clauseMask |= p.ShopCategoryEquals(lane, ante, c.Category, c.Value)
		}
		mask &= clauseMask
		if mask.IsZero() {
			return mask
		}
	}
	return mask
}
