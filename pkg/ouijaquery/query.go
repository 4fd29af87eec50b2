package ouijaquery

import (
	"github.com/ouijasearch/ouija/pkg/model"
)

// MaxShouldClauses caps the Should list so the fixed-size score breakdown
// in OuijaResult (spec §3, §4.1) never overflows.
const MaxShouldClauses = 32

// Query is the read-only, fully-resolved query (spec §3's "OuijaConfig").
// Constructed once per search by Load and never mutated afterwards
// (Design Notes §9: "the Query is immutable and shared").
type Query struct {
	Must    []FilterItem
	MustNot []FilterItem
	Should  []FilterItem

	Deck                  model.Deck
	Stake                 model.Stake
	MaxSearchAnte         int
	MinimumScore          int
	ScoreNaturalNegatives bool
	ScoreDesiredNegatives bool
}

// Load validates raw and resolves every clause into its typed form using
// resolver for item-name lookups. It never mutates raw.
func Load(raw RawQuery, resolver Resolver) (*Query, error) {
	if len(raw.Should) > MaxShouldClauses {
		return nil, &ValidationError{List: "should", Index: -1,
			Msg: "too many Should clauses (max 32)"}
	}

	must, err := resolveList("must", raw.Must, resolver)
	if err != nil {
		return nil, err
	}
	mustNot, err := resolveList("mustNot", raw.MustNot, resolver)
	if err != nil {
		return nil, err
	}
	should, err := resolveList("should", raw.Should, resolver)
	if err != nil {
		return nil, err
	}

	return &Query{
		Must:                  must,
		MustNot:               mustNot,
		Should:                should,
		Deck:                  model.Deck(raw.Deck),
		Stake:                 model.Stake(raw.Stake),
		MaxSearchAnte:         raw.MaxSearchAnte,
		MinimumScore:          raw.MinimumScore,
		ScoreNaturalNegatives: raw.ScoreNaturalNegatives,
		ScoreDesiredNegatives: raw.ScoreDesiredNegatives,
	}, nil
}

func resolveList(list string, raws []RawFilterItem, resolver Resolver) ([]FilterItem, error) {
	if len(raws) == 0 {
		return nil, nil
	}
	out := make([]FilterItem, 0, len(raws))
	for i, r := range raws {
		item, err := resolveClause(list, i, r, resolver)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func resolveClause(list string, index int, r RawFilterItem, resolver Resolver) (FilterItem, error) {
	cat, ok := model.CategoryFromString(r.Type)
	if !ok {
		return FilterItem{}, &ValidationError{List: list, Index: index,
			Msg: "unknown clause type " + r.Type}
	}

	if len(r.SearchAntes) == 0 {
		return FilterItem{}, &ValidationError{List: list, Index: index,
			Msg: "searchAntes must be non-empty"}
	}

	var value model.ItemID
	if r.Value == "any" || r.Value == "" {
		value = model.AnyItem
	} else {
		id, ok := resolver.ResolveItem(cat, r.Value)
		if !ok {
			return FilterItem{}, &ValidationError{List: list, Index: index,
				Msg: "unresolved value " + r.Value + " for " + cat.String()}
		}
		value = id
	}

	item := FilterItem{
		Category:    cat,
		Value:       value,
		SearchAntes: append([]int(nil), r.SearchAntes...),
		Score:       r.Score,
	}

	if err := applyModifiers(&item, list, index, r); err != nil {
		return FilterItem{}, err
	}

	applySourceDefaults(&item, r)

	return item, nil
}

func applyModifiers(item *FilterItem, list string, index int, r RawFilterItem) error {
	if r.Edition != "" {
		e, ok := model.EditionFromString(r.Edition)
		if !ok {
			return &ValidationError{List: list, Index: index, Msg: "unresolved edition " + r.Edition}
		}
		item.EditionSet = true
		item.Edition = e
	}
	if r.Enhancement != "" {
		e, ok := model.EnhancementFromString(r.Enhancement)
		if !ok {
			return &ValidationError{List: list, Index: index, Msg: "unresolved enhancement " + r.Enhancement}
		}
		item.Enhancement = e
	}
	if r.Seal != "" {
		s, ok := model.SealFromString(r.Seal)
		if !ok {
			return &ValidationError{List: list, Index: index, Msg: "unresolved seal " + r.Seal}
		}
		item.Seal = s
	}
	rank, ok := model.RankFromString(r.Rank)
	if !ok {
		return &ValidationError{List: list, Index: index, Msg: "unresolved rank " + r.Rank}
	}
	item.Rank = rank

	suit, ok := model.SuitFromString(r.Suit)
	if !ok {
		return &ValidationError{List: list, Index: index, Msg: "unresolved suit " + r.Suit}
	}
	item.Suit = suit
	return nil
}

// applySourceDefaults implements spec §4.1's default derivation:
// IncludeShopStream defaults true; other sources default off unless the
// category implies them (SoulJoker implicitly needs booster packs, since
// legendary jokers only spawn from an opened Arcana/Spectral/Celestial
// pack's Soul card).
func applySourceDefaults(item *FilterItem, r RawFilterItem) {
	item.IncludeShopStream = derefOr(r.IncludeShopStream, true)
	item.IncludeBoosterPacks = derefOr(r.IncludeBoosterPacks, item.Category == model.CategorySoulJoker)
	item.IncludeSkipTags = derefOr(r.IncludeSkipTags, false)
}

func derefOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
