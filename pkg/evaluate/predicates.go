package evaluate

import (
	"github.com/ouijasearch/ouija/pkg/content"
	"github.com/ouijasearch/ouija/pkg/model"
	"github.com/ouijasearch/ouija/pkg/ouijaquery"
)

// satisfy dispatches a clause to its per-category predicate (spec §4.6).
// The taxonomy is closed: every arm is enumerated, there is no default
// interface dispatch (Design Notes §9).
func satisfy(ctx *SeedContext, c ouijaquery.FilterItem) bool {
	switch c.Category {
	case model.CategoryJoker:
		return satisfyJoker(ctx, c)
	case model.CategorySoulJoker:
		return satisfySoulJoker(ctx, c)
	case model.CategoryTarot, model.CategoryPlanet, model.CategorySpectral:
		return satisfyPackCategory(ctx, c)
	case model.CategoryPlayingCard:
		return satisfyPlayingCard(ctx, c)
	case model.CategoryTag, model.CategorySmallBlindTag, model.CategoryBigBlindTag:
		return satisfyTag(ctx, c)
	case model.CategoryVoucher:
		return satisfyVoucher(ctx, c)
	case model.CategoryBoss:
		// Deferred until the provider exposes a boss stream (spec §4.6,
		// §7, §9): never satisfied.
		return false
	default:
		return false
	}
}

func satisfyJoker(ctx *SeedContext, c ouijaquery.FilterItem) bool {
	for _, ante := range c.SearchAntes {
		if c.IncludeShopStream && jokerInShop(ctx.shopAt(ante), c) {
			return true
		}
		if c.IncludeBoosterPacks {
			ctx.packsAt(ante) // drives the walk so Soul detection still runs for other clauses
			warnBuffoonUnsupported()
		}
		if c.IncludeSkipTags && c.Value == model.AnyItem && jokerTagPresent(ctx, ante) {
			return true
		}
	}
	return false
}

func jokerInShop(shop []content.ShopItem, c ouijaquery.FilterItem) bool {
	for _, item := range shop {
		if item.Category != model.CategoryJoker {
			continue
		}
		if c.Value != model.AnyItem && model.JokerBase(item.Value) != model.JokerBase(c.Value) {
			continue
		}
		if c.EditionSet && item.Edition != c.Edition {
			continue
		}
		return true
	}
	return false
}

// jokerTagPresent is only ever called for an any-joker clause: the caller
// gates on c.Value == model.AnyItem first, since spec §4.6(iii) only lets
// a spawn tag's mere presence stand in for a joker when any joker will do
// — a specific-value clause needs provider support this tag stream
// doesn't offer and must fall through unsatisfied.
func jokerTagPresent(ctx *SeedContext, ante int) bool {
	rare, uncommon := ctx.jokerSpawnTags[0], ctx.jokerSpawnTags[1]
	if rare == model.AnyItem && uncommon == model.AnyItem {
		return false
	}
	small, big := ctx.tagsAt(ante)
	for _, target := range ctx.jokerSpawnTags {
		if target == model.AnyItem {
			continue
		}
		if small == target || big == target {
			return true
		}
	}
	return false
}

func satisfySoulJoker(ctx *SeedContext, c ouijaquery.FilterItem) bool {
	for _, ante := range c.SearchAntes {
		w := ctx.packsAt(ante)
		for _, s := range w.soulJokers {
			if c.Value != model.AnyItem && model.JokerBase(s.id) != model.JokerBase(c.Value) {
				continue
			}
			if c.EditionSet && s.edition != c.Edition {
				continue
			}
			return true
		}
	}
	return false
}

// satisfyPackCategory handles Tarot, Planet, and Spectral identically:
// shop path first (when available for the category), then the pack path
// (spec §4.6: "Tarot/Planet shops are optional; Spectral is pack-only in
// the base deck").
func satisfyPackCategory(ctx *SeedContext, c ouijaquery.FilterItem) bool {
	for _, ante := range c.SearchAntes {
		if c.IncludeShopStream && c.Category != model.CategorySpectral && shopContains(ctx.shopAt(ante), c) {
			return true
		}
		if c.IncludeBoosterPacks {
			w := ctx.packsAt(ante)
			for _, pc := range packContentsFor(w, c.Category) {
				if pc.Contains(c.Category, c.Value) {
					return true
				}
			}
		}
	}
	return false
}

func packContentsFor(w *anteWalk, category model.Category) []content.PackContents {
	switch category {
	case model.CategoryTarot:
		return w.tarotContents
	case model.CategoryPlanet:
		return w.planetContents
	case model.CategorySpectral:
		return w.spectralContents
	default:
		return nil
	}
}

func shopContains(shop []content.ShopItem, c ouijaquery.FilterItem) bool {
	for _, item := range shop {
		if item.Category != c.Category {
			continue
		}
		if c.Value == model.AnyItem || item.Value == c.Value {
			return true
		}
	}
	return false
}

func satisfyTag(ctx *SeedContext, c ouijaquery.FilterItem) bool {
	for _, ante := range c.SearchAntes {
		small, big := ctx.tagsAt(ante)
		var matched bool
		switch c.Category {
		case model.CategorySmallBlindTag:
			matched = c.Value == model.AnyItem || small == c.Value
		case model.CategoryBigBlindTag:
			matched = c.Value == model.AnyItem || big == c.Value
		default: // model.CategoryTag: either blind qualifies
			matched = c.Value == model.AnyItem || small == c.Value || big == c.Value
		}
		if matched {
			return true
		}
	}
	return false
}

func satisfyVoucher(ctx *SeedContext, c ouijaquery.FilterItem) bool {
	for _, ante := range c.SearchAntes {
		v := ctx.voucherAt(ante)
		if c.Value == model.AnyItem || v == c.Value {
			return true
		}
	}
	return false
}

func satisfyPlayingCard(ctx *SeedContext, c ouijaquery.FilterItem) bool {
	for _, ante := range c.SearchAntes {
		w := ctx.packsAt(ante)
		for _, pc := range w.standardContents {
			for _, item := range pc.Items {
				if content.CardMatches(item.Card, c.Rank, c.Suit, c.Enhancement, c.Seal, c.EditionSet, c.Edition) {
					return true
				}
			}
		}
	}
	return false
}
