package ouijaquery

import "github.com/ouijasearch/ouija/pkg/model"

// FilterItem is the atomic, fully-resolved query unit (spec §3's "Clause").
// Every string the JSON document carried has been resolved to an enum by
// the time a FilterItem exists; the hot path (pkg/prefilter, pkg/evaluate)
// never compares strings.
type FilterItem struct {
	Category    model.Category
	Value       model.ItemID // model.AnyItem for "any"
	SearchAntes []int        // non-empty, declared order preserved

	IncludeShopStream   bool
	IncludeBoosterPacks bool
	IncludeSkipTags     bool

	// Modifiers. EditionSet distinguishes "edition omitted" (wildcard) from
	// an explicit "edition: None" (must have no edition).
	EditionSet  bool
	Edition     model.Edition
	Enhancement model.Enhancement
	Seal        model.Seal
	Rank        model.Rank // model.RankAny when omitted
	Suit        model.Suit // model.SuitAny when omitted

	// Score is used only when the clause belongs to Query.Should.
	Score int
}
