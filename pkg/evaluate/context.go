package evaluate

import (
	"github.com/ouijasearch/ouija/pkg/content"
	"github.com/ouijasearch/ouija/pkg/model"
)

// soulDraw is one legendary-joker draw triggered by a Soul card appearing
// in an opened pack (spec §4.6).
type soulDraw struct {
	source model.PackType
	id     model.ItemID
	edition model.Edition
}

// anteWalk memoizes everything learned about one ante for one seed, so
// probing the same ante from multiple clauses never re-draws a stream
// (spec §4.6's "each pack-type stream is created at most once per ante
// walk").
type anteWalk struct {
	voucherDrawn bool
	voucher      model.ItemID

	tagsDrawn bool
	smallTag  model.ItemID
	bigTag    model.ItemID

	shopDrawn bool
	shop      []content.ShopItem

	packsWalked      bool
	packs            []content.PackHeader
	tarotContents    []content.PackContents
	planetContents   []content.PackContents
	spectralContents []content.PackContents
	standardContents []content.PackContents
	soulJokers       []soulDraw
}

// SeedContext is the fat per-seed evaluation context (Design Notes §9:
// "expose the provider operations ... on a per-seed evaluation context
// value; pass by reference; do not heap-allocate per seed"). One instance
// is constructed per worker goroutine and Reset for every seed it
// evaluates, rather than being reallocated.
type SeedContext struct {
	seed     content.Seed
	provider content.Provider
	antes    map[int]*anteWalk

	// jokerSpawnTags names the two tag identities treated as
	// "joker-spawning" for the IncludeSkipTags branch of the Joker
	// predicate (spec §4.6). The evaluator has no built-in notion of tag
	// rarity — that's content-specific knowledge owned by whichever
	// Resolver/Provider pairing is in use — so callers resolve the two
	// names once and configure them via WithJokerSpawnTags.
	// model.AnyItem in either slot disables that slot's check.
	jokerSpawnTags [2]model.ItemID
}

// NewSeedContext constructs a reusable per-worker evaluation context
// backed by provider. Call Reset before evaluating each seed.
func NewSeedContext(provider content.Provider) *SeedContext {
	return &SeedContext{
		provider:       provider,
		antes:          make(map[int]*anteWalk),
		jokerSpawnTags: [2]model.ItemID{model.AnyItem, model.AnyItem},
	}
}

// WithJokerSpawnTags configures the two joker-spawning tag identities and
// returns ctx for chaining at construction time.
func (ctx *SeedContext) WithJokerSpawnTags(rare, uncommon model.ItemID) *SeedContext {
	ctx.jokerSpawnTags = [2]model.ItemID{rare, uncommon}
	return ctx
}

// Reset rebinds ctx to seed and discards every memoized ante walk,
// without releasing the backing map (spec §5: "Per-ante stream caches are
// per-thread").
func (ctx *SeedContext) Reset(seed content.Seed) {
	ctx.seed = seed
	for k := range ctx.antes {
		delete(ctx.antes, k)
	}
}

func (ctx *SeedContext) walk(ante int) *anteWalk {
	w, ok := ctx.antes[ante]
	if !ok {
		w = &anteWalk{}
		ctx.antes[ante] = w
	}
	return w
}

func (ctx *SeedContext) voucherAt(ante int) model.ItemID {
	w := ctx.walk(ante)
	if !w.voucherDrawn {
		w.voucher = ctx.provider.GetAnteFirstVoucher(ctx.seed, ante)
		w.voucherDrawn = true
	}
	return w.voucher
}

func (ctx *SeedContext) tagsAt(ante int) (small, big model.ItemID) {
	w := ctx.walk(ante)
	if !w.tagsDrawn {
		ts := ctx.provider.CreateTagStream(ctx.seed, ante)
		w.smallTag = ts.Next()
		w.bigTag = ts.Next()
		w.tagsDrawn = true
	}
	return w.smallTag, w.bigTag
}

func (ctx *SeedContext) shopAt(ante int) []content.ShopItem {
	w := ctx.walk(ante)
	if !w.shopDrawn {
		w.shop = ctx.provider.GenerateFullShop(ctx.seed, ante)
		w.shopDrawn = true
	}
	return w.shop
}

// packsAt walks ante's booster-pack headers exactly once, lazily opening
// each pack-type content stream at most once per walk and capturing every
// Soul detection along the way (spec §4.6).
func (ctx *SeedContext) packsAt(ante int) *anteWalk {
	w := ctx.walk(ante)
	if w.packsWalked {
		return w
	}
	w.packsWalked = true

	stream := ctx.provider.CreateBoosterPackStream(ctx.seed, ante)
	var tarot, celestial, spectral, standard content.ContentStream

	for {
		header, ok := stream.Next()
		if !ok {
			break
		}
		w.packs = append(w.packs, header)

		switch header.Type {
		case model.PackArcana:
			if tarot == nil {
				tarot = ctx.provider.CreateArcanaPackTarotStream(ctx.seed, ante)
			}
			c := tarot.Contents(header.Size)
			w.tarotContents = append(w.tarotContents, c)
			ctx.captureSoul(w, ante, c, header.Type)

		case model.PackCelestial:
			if celestial == nil {
				celestial = ctx.provider.CreateCelestialPackPlanetStream(ctx.seed, ante)
			}
			c := celestial.Contents(header.Size)
			w.planetContents = append(w.planetContents, c)
			ctx.captureSoul(w, ante, c, header.Type)

		case model.PackSpectral:
			if spectral == nil {
				spectral = ctx.provider.CreateSpectralPackStream(ctx.seed, ante)
			}
			c := spectral.Contents(header.Size)
			w.spectralContents = append(w.spectralContents, c)
			ctx.captureSoul(w, ante, c, header.Type)

		case model.PackStandard:
			if standard == nil {
				standard = ctx.provider.CreateStandardPackCardStream(ctx.seed, ante)
			}
			c := standard.Contents(header.Size)
			w.standardContents = append(w.standardContents, c)

		case model.PackBuffoon:
			warnBuffoonUnsupported()
		}
	}
	return w
}

func (ctx *SeedContext) captureSoul(w *anteWalk, ante int, contents content.PackContents, packType model.PackType) {
	if !contents.HasTheSoul() {
		return
	}
	js := ctx.provider.CreateSoulJokerStream(ctx.seed, ante)
	id, edition := js.Next()
	w.soulJokers = append(w.soulJokers, soulDraw{source: packType, id: id, edition: edition})
}
