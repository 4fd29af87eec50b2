package refprovider

import (
	"github.com/ouijasearch/ouija/pkg/content/catalogue"
	"github.com/ouijasearch/ouija/pkg/model"
	"github.com/ouijasearch/ouija/pkg/oujrand"
)

const (
	anteOneShopSlots = 2
	baseShopSlots    = 4

	anteOnePacks = 4
	baseAntePacks = 6

	// soulChance is the reference probability that a slot drawn from an
	// Arcana or Spectral pack is the Soul card instead of a named item
	// (spec §4.6, Glossary: "The Soul"). Celestial packs never roll Soul
	// in this reference implementation.
	soulChance = 0.003
)

var shopCategories = []model.Category{model.CategoryJoker, model.CategoryTarot, model.CategoryPlanet}
var shopCategoryWeights = []float64{0.62, 0.23, 0.15}

var editions = []model.Edition{
	model.EditionNone, model.EditionFoil, model.EditionHolographic,
	model.EditionPolychrome, model.EditionNegative,
}
var editionWeights = []float64{0.88, 0.06, 0.03, 0.02, 0.01}

var packTypes = []model.PackType{
	model.PackArcana, model.PackCelestial, model.PackSpectral,
	model.PackBuffoon, model.PackStandard,
}
var packTypeWeights = []float64{0.24, 0.22, 0.14, 0.3, 0.1}

var packBaseSize = map[model.PackType]int{
	model.PackArcana:    3,
	model.PackCelestial: 3,
	model.PackSpectral:  2,
	model.PackBuffoon:   2,
	model.PackStandard:  5,
}

var ranks = []model.Rank{
	model.Rank2, model.Rank3, model.Rank4, model.Rank5, model.Rank6, model.Rank7,
	model.Rank8, model.Rank9, model.Rank10, model.RankJack, model.RankQueen, model.RankKing, model.RankAce,
}
var suits = []model.Suit{model.SuitSpades, model.SuitHearts, model.SuitDiamonds, model.SuitClubs}

var enhancements = []model.Enhancement{
	model.EnhancementNone, model.EnhancementBonus, model.EnhancementMult, model.EnhancementWild,
	model.EnhancementGlass, model.EnhancementSteel, model.EnhancementStone, model.EnhancementGold, model.EnhancementLucky,
}
var enhancementWeights = []float64{0.76, 0.04, 0.04, 0.03, 0.03, 0.03, 0.03, 0.02, 0.02}

var seals = []model.Seal{model.SealNone, model.SealGold, model.SealRed, model.SealBlue, model.SealPurple}
var sealWeights = []float64{0.85, 0.05, 0.05, 0.03, 0.02}

func catalogueLen(category model.Category) int {
	switch category {
	case model.CategoryJoker:
		return len(catalogue.Jokers)
	case model.CategorySoulJoker:
		return len(catalogue.SoulJokers)
	case model.CategoryTarot:
		return len(catalogue.Tarots)
	case model.CategoryPlanet:
		return len(catalogue.Planets)
	case model.CategorySpectral:
		return len(catalogue.Spectrals)
	case model.CategoryTag, model.CategorySmallBlindTag, model.CategoryBigBlindTag:
		return len(catalogue.Tags)
	case model.CategoryVoucher:
		return len(catalogue.Vouchers)
	default:
		return 0
	}
}

func drawNamed(s *oujrand.Stream, category model.Category) model.ItemID {
	n := catalogueLen(category)
	if n == 0 {
		return model.AnyItem
	}
	return model.ItemID(s.Intn(n))
}

func drawCard(s *oujrand.Stream) (rank model.Rank, suit model.Suit, enhancement model.Enhancement, seal model.Seal, edition model.Edition) {
	rank = ranks[s.Intn(len(ranks))]
	suit = suits[s.Intn(len(suits))]
	enhancement = enhancements[s.WeightedChoice(enhancementWeights)]
	seal = seals[s.WeightedChoice(sealWeights)]
	edition = editions[s.WeightedChoice(editionWeights)]
	return
}
