package evaluate

import "github.com/ouijasearch/ouija/pkg/model"

// EditionThreshold returns the fixed probability a shop-joker fallback
// path (spec §4.7) treats as "edition holds": a draw r < threshold(e)
// means the edition applies. This repository's reference Content Provider
// always reports edition directly on content.ShopItem, so the canonical
// path in jokerInShop never calls this; it exists for a provider that can
// only report edition probabilistically.
func EditionThreshold(e model.Edition) float64 {
	switch e {
	case model.EditionNegative:
		return 0.10
	case model.EditionFoil:
		return 0.05
	case model.EditionHolographic:
		return 0.02
	case model.EditionPolychrome:
		return 0.01
	default:
		return 0
	}
}
