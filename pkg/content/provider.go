package content

import "github.com/ouijasearch/ouija/pkg/model"

// Provider is the per-seed Content Provider surface (spec §4.3's operation
// table). Every method is a pure function of (seed, ante, call-order):
// the same stream, called twice, advances (spec §4.3's Determinism note).
type Provider interface {
	// MaxShopSlots returns the shop size for ante (spec §3: "ante 1 has
	// reduced shop slots... convention: shop-slots-ante-one <
	// shop-slots-other").
	MaxShopSlots(ante int) int

	// PacksPerAnte returns the pack count for ante (spec §3, §4.6:
	// packs(1)=4, packs(A>1)=6).
	PacksPerAnte(ante int) int

	// GenerateFullShop returns one item per shop slot (spec §4.3).
	GenerateFullShop(seed Seed, ante int) []ShopItem

	// CreateBoosterPackStream opens the pack-header stream for ante.
	CreateBoosterPackStream(seed Seed, ante int) PackStream

	// CreateArcanaPackTarotStream lazily opens the Arcana/tarot content
	// stream for ante. Callers must create it at most once per ante walk.
	CreateArcanaPackTarotStream(seed Seed, ante int) ContentStream

	// CreateCelestialPackPlanetStream lazily opens the Celestial/planet
	// content stream for ante.
	CreateCelestialPackPlanetStream(seed Seed, ante int) ContentStream

	// CreateSpectralPackStream lazily opens the Spectral content stream
	// for ante.
	CreateSpectralPackStream(seed Seed, ante int) ContentStream

	// CreateStandardPackCardStream lazily opens the Standard/playing-card
	// content stream for ante.
	CreateStandardPackCardStream(seed Seed, ante int) ContentStream

	// CreateSoulJokerStream opens a fresh legendary-joker stream; called
	// once per Soul detection (spec §4.6).
	CreateSoulJokerStream(seed Seed, ante int) JokerStream

	// CreateTagStream opens the tag stream for ante.
	CreateTagStream(seed Seed, ante int) TagStream

	// GetAnteFirstVoucher returns the voucher shown at ante's shop.
	GetAnteFirstVoucher(seed Seed, ante int) model.ItemID
}

// VectorProvider is the W-lane form of the vectorizable subset of Provider
// (spec §4.3's "vector form applies to W lanes in parallel"), used only by
// pkg/prefilter. A clause with no vector-available predicate is never
// routed here (spec §4.4: "the vector path must never cause a false
// rejection").
type VectorProvider interface {
	// VoucherEquals reports, per lane, whether ante's first voucher
	// equals target.
	VoucherEquals(lane Lane, ante int, target model.ItemID) VectorMask

	// TagEquals reports, per lane, whether the requested tag variant at
	// ante equals target. variant is one of CategoryTag,
	// CategorySmallBlindTag, CategoryBigBlindTag.
	TagEquals(lane Lane, ante int, variant model.Category, target model.ItemID) VectorMask

	// ShopCategoryEquals reports, per lane, whether ante's shop contains a
	// slot of category equal to target. Only categories the provider can
	// vectorize exactly should be routed here; the caller is responsible
	// for that routing decision, and pkg/prefilter routes Planet only.
	ShopCategoryEquals(lane Lane, ante int, category model.Category, target model.ItemID) VectorMask
}
