package refprovider

import (
	"github.com/ouijasearch/ouija/pkg/content"
	"github.com/ouijasearch/ouija/pkg/model"
)

// VoucherEquals is the vector form of GetAnteFirstVoucher (spec §4.3's
// "Shop planet/spectral vector filters", generalised to vouchers since both
// reduce to a single-slot equality check per lane).
func (p *Provider) VoucherEquals(lane content.Lane, ante int, target model.ItemID) content.VectorMask {
	mask := content.VectorMask(0)
	for i, seed := range lane {
		if seed == "" {
			continue
		}
		if p.GetAnteFirstVoucher(seed, ante) == target {
			mask = mask.Set(i)
		}
	}
	return mask
}

// TagEquals is the vector form of CreateTagStream/NextTag. variant selects
// which of the ante's two tags must match: CategorySmallBlindTag,
// CategoryBigBlindTag, or CategoryTag for either.
func (p *Provider) TagEquals(lane content.Lane, ante int, variant model.Category, target model.ItemID) content.VectorMask {
	mask := content.VectorMask(0)
	for i, seed := range lane {
		if seed == "" {
			continue
		}
		ts := p.CreateTagStream(seed, ante)
		small := ts.Next()
		big := ts.Next()

		var matched bool
		switch variant {
		case model.CategorySmallBlindTag:
			matched = small == target
		case model.CategoryBigBlindTag:
			matched = big == target
		default:
			matched = small == target || big == target
		}
		if matched {
			mask = mask.Set(i)
		}
	}
	return mask
}

// ShopCategoryEquals is the vector form of scanning GenerateFullShop for a
// slot of category equal to target. The reference implementation can
// vectorize any category this way; pkg/prefilter only routes Planet
// through it when a clause's sole satisfaction path is the shop (spec
// §4.4) — Spectral has no single-seed shop path to vectorize.
func (p *Provider) ShopCategoryEquals(lane content.Lane, ante int, category model.Category, target model.ItemID) content.VectorMask {
	mask := content.VectorMask(0)
	for i, seed := range lane {
		if seed == "" {
			continue
		}
		for _, item := range p.GenerateFullShop(seed, ante) {
			if item.Category != category {
				continue
			}
			if target == model.AnyItem || item.Value == target {
				mask = mask.Set(i)
				break
			}
		}
	}
	return mask
}
