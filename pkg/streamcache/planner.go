package streamcache

import "github.com/ouijasearch/ouija/pkg/model"

// Plan walks every clause in the given clause lists (for a query: its
// Must, MustNot and Should lists, built with View) and every ante in
// each clause's SearchAntes, and returns every PRNG key the hot path will
// need, each at most once (spec §4.2: "Planner emits each key at most
// once"). Tag streams are declared per ante as soon as any clause is a
// Tag/SmallBlindTag/BigBlindTag variant, regardless of which variant
// (spec §4.2: "Tag streams are cached per ante when any clause is a tag").
func Plan(clauses ...[]clauseView) []CacheKey {
	seen := make(map[CacheKey]struct{})
	var out []CacheKey

	emit := func(k CacheKey) {
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}

	for _, list := range clauses {
		for _, c := range list {
			for _, ante := range c.SearchAntes {
				planClause(c, ante, emit)
			}
		}
	}
	return out
}

// clauseView is the minimal clause shape the planner needs. Callers build
// one with View from a clause's fields, so this package does not import
// ouijaquery.
type clauseView struct {
	Category            model.Category
	SearchAntes          []int
	IncludeShopStream    bool
	IncludeBoosterPacks  bool
	IncludeSkipTags      bool
}

// View builds a clauseView from the individual fields of one clause (for
// example an ouijaquery.FilterItem's). It takes the fields one by one so
// FilterItem's own field order can evolve independently.
func View(category model.Category, searchAntes []int, includeShopStream, includeBoosterPacks, includeSkipTags bool) clauseView {
	return clauseView{
		Category:            category,
		SearchAntes:          searchAntes,
		IncludeShopStream:    includeShopStream,
		IncludeBoosterPacks:  includeBoosterPacks,
		IncludeSkipTags:      includeSkipTags,
	}
}

func planClause(c clauseView, ante int, emit func(CacheKey)) {
	switch {
	case c.Category == model.CategoryVoucher:
		emit(CacheKey{Category: model.CategoryVoucher, Source: SourceVoucher, Ante: ante})

	case c.Category.IsTagVariant():
		emit(CacheKey{Category: model.CategoryTag, Source: SourceTagStream, Ante: ante})

	case c.Category == model.CategoryJoker:
		if c.IncludeShopStream {
			emit(CacheKey{Category: model.CategoryJoker, Source: SourceShop, Ante: ante})
		}
		if c.IncludeBoosterPacks {
			emit(CacheKey{Category: model.CategoryJoker, Source: SourcePackHeader, Ante: ante})
			emit(CacheKey{Category: model.CategoryJoker, Source: SourceBuffoonPack, Ante: ante})
		}
		if c.IncludeSkipTags {
			emit(CacheKey{Category: model.CategoryTag, Source: SourceTagStream, Ante: ante})
		}

	case c.Category == model.CategorySoulJoker:
		emit(CacheKey{Category: model.CategorySoulJoker, Source: SourcePackHeader, Ante: ante})
		emit(CacheKey{Category: model.CategoryTarot, Source: SourceArcanaPack, Ante: ante})
		emit(CacheKey{Category: model.CategorySpectral, Source: SourceSpectralPack, Ante: ante})
		emit(CacheKey{Category: model.CategoryPlanet, Source: SourceCelestialPack, Ante: ante})
		emit(CacheKey{Category: model.CategorySoulJoker, Source: SourceSoul, Ante: ante})

	case c.Category == model.CategoryTarot:
		if c.IncludeShopStream {
			emit(CacheKey{Category: model.CategoryTarot, Source: SourceShop, Ante: ante})
		}
		if c.IncludeBoosterPacks {
			emit(CacheKey{Category: model.CategoryTarot, Source: SourcePackHeader, Ante: ante})
			emit(CacheKey{Category: model.CategoryTarot, Source: SourceArcanaPack, Ante: ante})
		}

	case c.Category == model.CategoryPlanet:
		if c.IncludeShopStream {
			emit(CacheKey{Category: model.CategoryPlanet, Source: SourceShop, Ante: ante})
		}
		if c.IncludeBoosterPacks {
			emit(CacheKey{Category: model.CategoryPlanet, Source: SourcePackHeader, Ante: ante})
			emit(CacheKey{Category: model.CategoryPlanet, Source: SourceCelestialPack, Ante: ante})
		}

	case c.Category == model.CategorySpectral:
		if c.IncludeBoosterPacks {
			emit(CacheKey{Category: model.CategorySpectral, Source: SourcePackHeader, Ante: ante})
			emit(CacheKey{Category: model.CategorySpectral, Source: SourceSpectralPack, Ante: ante})
		}

	case c.Category == model.CategoryPlayingCard:
		emit(CacheKey{Category: model.CategoryPlayingCard, Source: SourcePackHeader, Ante: ante})
		emit(CacheKey{Category: model.CategoryPlayingCard, Source: SourceStandardPack, Ante: ante})

	case c.Category == model.CategoryBoss:
		// Declared for completeness; no provider stream exists yet
		// (spec §4.6, §7b, §9).
	}
}
