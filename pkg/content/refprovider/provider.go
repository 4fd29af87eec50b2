package refprovider

import (
	"github.com/ouijasearch/ouija/pkg/content"
	"github.com/ouijasearch/ouija/pkg/model"
	"github.com/ouijasearch/ouija/pkg/oujrand"
	"github.com/ouijasearch/ouija/pkg/streamcache"
)

// Provider is the reference content.Provider and content.VectorProvider
// implementation (package doc). It holds no state of its own — every
// stream it opens is re-derived from (seed, ante, source tag) on demand.
type Provider struct{}

// New returns a ready-to-use reference Provider.
func New() *Provider {
	return &Provider{}
}

func (p *Provider) MaxShopSlots(ante int) int {
	if ante == 1 {
		return anteOneShopSlots
	}
	return baseShopSlots
}

func (p *Provider) PacksPerAnte(ante int) int {
	if ante == 1 {
		return anteOnePacks
	}
	return baseAntePacks
}

func (p *Provider) GenerateFullShop(seed content.Seed, ante int) []content.ShopItem {
	key := streamcache.CacheKey{Category: model.CategoryJoker, Source: streamcache.SourceShop, Ante: ante}
	s := oujrand.New(string(seed), key.String())

	n := p.MaxShopSlots(ante)
	items := make([]content.ShopItem, n)
	for i := 0; i < n; i++ {
		cat := shopCategories[s.WeightedChoice(shopCategoryWeights)]
		items[i] = content.ShopItem{
			Category: cat,
			Value:    drawNamed(s, cat),
			Edition:  editions[s.WeightedChoice(editionWeights)],
		}
	}
	return items
}

// boosterPackHeaderKey is the fixed cache key the pack-header stream uses
// internally. CreateBoosterPackStream takes no clause category (spec
// §4.3's table has no category argument for it), so its stream identity
// must not depend on which clause happened to trigger its creation.
var boosterPackHeaderKey = func(ante int) string {
	return streamcache.CacheKey{Category: model.CategoryJoker, Source: streamcache.SourcePackHeader, Ante: ante}.String()
}

func (p *Provider) CreateBoosterPackStream(seed content.Seed, ante int) content.PackStream {
	s := oujrand.New(string(seed), boosterPackHeaderKey(ante))

	n := p.PacksPerAnte(ante)
	headers := make([]content.PackHeader, n)
	for i := 0; i < n; i++ {
		pt := packTypes[s.WeightedChoice(packTypeWeights)]
		size := packBaseSize[pt]
		if s.Float64() < 0.2 {
			size += 2 // jumbo variant
		}
		headers[i] = content.PackHeader{Type: pt, Size: size}
	}
	return &packStream{headers: headers}
}

func (p *Provider) CreateArcanaPackTarotStream(seed content.Seed, ante int) content.ContentStream {
	key := streamcache.CacheKey{Category: model.CategoryTarot, Source: streamcache.SourceArcanaPack, Ante: ante}
	return &contentStream{
		source:   oujrand.New(string(seed), key.String()),
		category: model.CategoryTarot,
		soulP:    soulChance,
	}
}

func (p *Provider) CreateCelestialPackPlanetStream(seed content.Seed, ante int) content.ContentStream {
	key := streamcache.CacheKey{Category: model.CategoryPlanet, Source: streamcache.SourceCelestialPack, Ante: ante}
	return &contentStream{
		source:   oujrand.New(string(seed), key.String()),
		category: model.CategoryPlanet,
	}
}

func (p *Provider) CreateSpectralPackStream(seed content.Seed, ante int) content.ContentStream {
	key := streamcache.CacheKey{Category: model.CategorySpectral, Source: streamcache.SourceSpectralPack, Ante: ante}
	return &contentStream{
		source:   oujrand.New(string(seed), key.String()),
		category: model.CategorySpectral,
		soulP:    soulChance,
	}
}

func (p *Provider) CreateStandardPackCardStream(seed content.Seed, ante int) content.ContentStream {
	key := streamcache.CacheKey{Category: model.CategoryPlayingCard, Source: streamcache.SourceStandardPack, Ante: ante}
	return &contentStream{
		source:   oujrand.New(string(seed), key.String()),
		category: model.CategoryPlayingCard,
	}
}

func (p *Provider) CreateSoulJokerStream(seed content.Seed, ante int) content.JokerStream {
	key := streamcache.CacheKey{Category: model.CategorySoulJoker, Source: streamcache.SourceSoul, Ante: ante}
	return &soulJokerStream{source: oujrand.New(string(seed), key.String())}
}

func (p *Provider) CreateTagStream(seed content.Seed, ante int) content.TagStream {
	key := streamcache.CacheKey{Category: model.CategoryTag, Source: streamcache.SourceTagStream, Ante: ante}
	return &tagStream{source: oujrand.New(string(seed), key.String())}
}

func (p *Provider) GetAnteFirstVoucher(seed content.Seed, ante int) model.ItemID {
	key := streamcache.CacheKey{Category: model.CategoryVoucher, Source: streamcache.SourceVoucher, Ante: ante}
	s := oujrand.New(string(seed), key.String())
	return drawNamed(s, model.CategoryVoucher)
}
