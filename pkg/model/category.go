package model

import "fmt"

// Category identifies the clause taxonomy from spec section 3: the atomic
// kind of content a FilterItem probes. The set is closed — every predicate
// dispatch in pkg/evaluate switches over Category rather than calling
// through an interface per category (Design Notes §9).
type Category int

const (
	// CategoryJoker matches a non-legendary joker by base identity.
	CategoryJoker Category = iota
	// CategorySoulJoker matches a legendary joker spawned via The Soul.
	CategorySoulJoker
	// CategoryTarot matches a tarot card (shop or Arcana pack).
	CategoryTarot
	// CategoryPlanet matches a planet card (shop or Celestial pack).
	CategoryPlanet
	// CategorySpectral matches a spectral card (Spectral pack only in the base deck).
	CategorySpectral
	// CategoryPlayingCard matches a playing card drawn from a Standard pack.
	CategoryPlayingCard
	// CategoryTag matches either blind-skip tag of an ante.
	CategoryTag
	// CategorySmallBlindTag matches only the small-blind tag of an ante.
	CategorySmallBlindTag
	// CategoryBigBlindTag matches only the big-blind tag of an ante.
	CategoryBigBlindTag
	// CategoryVoucher matches an ante's first shown voucher.
	CategoryVoucher
	// CategoryBoss matches a boss blind. Declared for completeness;
	// implementation deferred until the provider exposes a boss stream
	// (spec §4.6, §7, §9).
	CategoryBoss
)

// String returns the canonical name of the category, also used as the
// stream-cache key prefix (spec §4.2's "<category-key>").
func (c Category) String() string {
	switch c {
	case CategoryJoker:
		return "Joker"
	case CategorySoulJoker:
		return "SoulJoker"
	case CategoryTarot:
		return "Tarot"
	case CategoryPlanet:
		return "Planet"
	case CategorySpectral:
		return "Spectral"
	case CategoryPlayingCard:
		return "PlayingCard"
	case CategoryTag:
		return "Tag"
	case CategorySmallBlindTag:
		return "SmallBlindTag"
	case CategoryBigBlindTag:
		return "BigBlindTag"
	case CategoryVoucher:
		return "Voucher"
	case CategoryBoss:
		return "Boss"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// IsTagVariant reports whether c is one of Tag, SmallBlindTag, BigBlindTag —
// the three clause shapes that all draw from the same per-ante tag stream.
func (c Category) IsTagVariant() bool {
	return c == CategoryTag || c == CategorySmallBlindTag || c == CategoryBigBlindTag
}

// CategoryFromString resolves a JSON clause "type" string to a Category.
// Returns false for unknown categories so the caller can reject the query
// (spec §4.1: "reject clauses whose ... Category is unknown").
func CategoryFromString(s string) (Category, bool) {
	for c := CategoryJoker; c <= CategoryBoss; c++ {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}
