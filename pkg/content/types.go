package content

import "github.com/ouijasearch/ouija/pkg/model"

// Seed is an 8-character base-35 seed string (spec §3).
type Seed string

// Lane is one W-wide batch of seeds (spec Glossary: "Lane / W").
type Lane [LaneWidth]Seed

// VectorMask is a W-bit bitmask; bit i set means lane i still viable
// (spec §3's "VectorMask").
type VectorMask uint8

// FullMask is the all-ones starting mask for a batch.
func FullMask() VectorMask {
	return VectorMask(1<<LaneWidth - 1)
}

// IsSet reports whether lane i currently survives.
func (m VectorMask) IsSet(i int) bool {
	return m&(1<<uint(i)) != 0
}

// Set marks lane i as surviving.
func (m VectorMask) Set(i int) VectorMask {
	return m | (1 << uint(i))
}

// Clear marks lane i as rejected.
func (m VectorMask) Clear(i int) VectorMask {
	return m &^ (1 << uint(i))
}

// IsZero reports whether every lane has been rejected (the vector
// pre-filter's early-out condition, spec §4.4).
func (m VectorMask) IsZero() bool {
	return m == 0
}

// ShopItem is one slot of a generated shop (spec §4.3's GenerateFullShop).
type ShopItem struct {
	Category model.Category
	Value    model.ItemID
	Edition  model.Edition
}

// PackHeader is one entry of a booster-pack stream (spec §4.3's
// NextBoosterPack).
type PackHeader struct {
	Type model.PackType
	Size int
}

// PlayingCard is one card drawn from a Standard pack.
type PlayingCard struct {
	Rank        model.Rank
	Suit        model.Suit
	Enhancement model.Enhancement
	Seal        model.Seal
	Edition     model.Edition
}

// PackItem is one slot of an opened pack's contents. For Tarot/Planet/
// Spectral packs, Value names the drawn item; for Standard packs, Card is
// populated instead. IsSoul marks the special "Soul" slot that can appear
// in an Arcana or Spectral (or, provider-permitting, Celestial) pack and
// triggers a legendary-joker draw (spec §4.6, Glossary: "The Soul") — it is
// a core filter concept, not a member of any item namespace.
type PackItem struct {
	Category model.Category
	Value    model.ItemID
	Card     PlayingCard
	IsSoul   bool
}

// PackContents is the ordered list of items a pack yields (spec §4.3's
// GetPackContents).
type PackContents struct {
	Items []PackItem
}

// Contains reports whether any item in the pack matches target within
// category (spec §4.3: "supports Contains(itemType)").
func (c PackContents) Contains(category model.Category, target model.ItemID) bool {
	for _, it := range c.Items {
		if it.Category != category {
			continue
		}
		if target == model.AnyItem || it.Value == target {
			return true
		}
	}
	return false
}

// HasTheSoul reports whether the pack contains the special Soul card
// (spec §4.6's soul-joker detection algorithm).
func (c PackContents) HasTheSoul() bool {
	for _, it := range c.Items {
		if it.IsSoul {
			return true
		}
	}
	return false
}

// CardMatches reports whether card satisfies the given clause filter.
// A zero-value (wildcard) field in the filter matches anything: rank
// model.RankAny, suit model.SuitAny, enhancement model.EnhancementNone,
// seal model.SealNone, edition unset (editionSet=false).
func CardMatches(card PlayingCard, rank model.Rank, suit model.Suit,
	enhancement model.Enhancement, seal model.Seal, editionSet bool, edition model.Edition) bool {
	if rank != model.RankAny && rank != card.Rank {
		return false
	}
	if suit != model.SuitAny && suit != card.Suit {
		return false
	}
	if enhancement != model.EnhancementNone && enhancement != card.Enhancement {
		return false
	}
	if seal != model.SealNone && seal != card.Seal {
		return false
	}
	if editionSet && edition != card.Edition {
		return false
	}
	return true
}
