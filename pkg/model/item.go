package model

// ItemID identifies a specific item within a Category's namespace (a joker,
// tarot, planet, spectral, tag, or voucher). The concrete name tables
// (which ID is "Blueprint", which is "Telescope") belong to the content
// library's enum resolver — an external collaborator per spec §1 — so this
// package only defines the identifier shape and the "any" sentinel every
// category shares.
type ItemID int32

// AnyItem is the wildcard target: "a joker of any identity", "any voucher",
// etc. (spec §9, open question: "Shop search for any-value clauses counts
// a joker of any identity with the required edition — confirmed.")
const AnyItem ItemID = -1

// Joker rarity is not part of the item namespace itself —
// rarity is masked out of the joker-base comparison per spec §4.6(i)
// ("whose joker-base-enum equals the target (rarity bits masked out)").
// RarityMask isolates the rarity bits of a packed joker ItemID so the
// evaluator can compare base identity without rarity.
const RarityMask ItemID = 0x0FFF

// JokerBase strips the rarity bits from a packed joker ItemID, leaving only
// the base identity used for equality comparisons in pkg/evaluate.
func JokerBase(id ItemID) ItemID {
	if id == AnyItem {
		return AnyItem
	}
	return id & RarityMask
}

// Deck names the starting deck variant (a query global knob, carried
// through to the content provider but not interpreted by the filter
// engine itself).
type Deck string

// Stake names the difficulty stake (a query global knob; same treatment
// as Deck).
type Stake string
