// Package catalogue is the small, clearly-illustrative name table shared by
// the reference Resolver (pkg/ouijaquery/refresolver) and the reference
// Content Provider (pkg/content/refprovider). It stands in for the real
// game's full item database, which is out of scope (spec §1: "Reproducing
// the source game's rules" is a non-goal; the content-generation library
// is an external collaborator). The two reference implementations share
// this table so that a name resolved by the query loader ("Blueprint")
// names the same model.ItemID the reference provider later draws.
package catalogue

import "github.com/ouijasearch/ouija/pkg/model"

// Jokers is a small, representative subset of non-legendary jokers.
var Jokers = []string{
	"Joker", "GreedyJoker", "LustyJoker", "WrathfulJoker", "GluttonousJoker",
	"Blueprint", "Brainstorm", "Baron", "Mime", "CreditCard",
}

// SoulJokers is the legendary-joker namespace (spawned only via The Soul).
var SoulJokers = []string{
	"Canio", "Triboulet", "Yorick", "Chicot", "Perkeo",
}

// Tarots is the tarot-card namespace.
var Tarots = []string{
	"TheFool", "TheMagician", "TheHighPriestess", "TheEmpress", "TheEmperor",
	"TheHierophant", "TheLovers", "TheChariot", "Justice", "TheHermit",
	"WheelOfFortune", "Strength", "TheHangedMan", "Death", "Temperance",
	"TheDevil", "TheTower", "TheStar", "TheMoon", "TheSun", "Judgement", "TheWorld",
}

// Planets is the planet-card namespace.
var Planets = []string{
	"Pluto", "Mercury", "Uranus", "Venus", "Saturn", "Jupiter",
	"Earth", "Mars", "Neptune", "PlanetX", "Ceres", "Eris",
}

// Spectrals is the spectral-card namespace. "The Soul" is not a member of
// this list: it is a core filter concept (pkg/content.PackItem.IsSoul),
// not an orderable item a clause can directly target.
var Spectrals = []string{
	"Familiar", "Grim", "Incantation", "Talisman", "Aura", "Wraith",
	"Sigil", "Ouija", "Ectoplasm", "Immolate", "Ankh", "DejaVu",
	"Hex", "Trance", "Medium", "Cryptid", "BlackHole",
}

// Tags is the per-ante blind-skip tag namespace.
var Tags = []string{
	"UncommonTag", "RareTag", "NegativeTag", "FoilTag", "HolographicTag",
	"PolychromeTag", "InvestmentTag", "VoucherTag", "BossTag", "StandardTag",
	"CharmTag", "MeteorTag", "BuffoonTag", "HandyTag", "GarbageTag",
	"EtherealTag", "CouponTag", "DoubleTag", "JuggleTag", "D6Tag",
	"TopupTag", "SpeedTag", "OrbitalTag", "EconomyTag",
}

// Vouchers is the voucher namespace.
var Vouchers = []string{
	"Overstock", "OverstockPlus", "ClearanceSale", "Liquidation",
	"Hone", "GlowUp", "RerollSurplus", "RerollGlut",
	"CrystalBall", "OmenGlobe", "Telescope", "Observatory",
	"Grabber", "NachoTong", "Wasteful", "Recyclomancy",
	"TarotMerchant", "TarotTycoon", "PlanetMerchant", "PlanetTycoon",
	"SeedMoney", "MoneyTree", "Blank", "Antimatter",
	"MagicTrick", "Illusion", "Hieroglyph", "Petroglyph",
	"DirectorsCut", "Retcon", "PaintBrush", "Palette",
}

func resolve(names []string, name string) (model.ItemID, bool) {
	for i, n := range names {
		if n == name {
			return model.ItemID(i), true
		}
	}
	return 0, false
}

func name(names []string, id model.ItemID) (string, bool) {
	if id == model.AnyItem {
		return "any", true
	}
	base := model.JokerBase(id)
	if int(base) < 0 || int(base) >= len(names) {
		return "", false
	}
	return names[base], true
}

// Resolve resolves name within a category's namespace. ok is false for an
// unrecognised name or a category with no item namespace (Tag variants and
// Voucher use Tags/Vouchers respectively; PlayingCard and Boss have none).
func Resolve(category model.Category, name string) (model.ItemID, bool) {
	switch category {
	case cJoker:
		return resolve(Jokers, name)
	case cSoulJoker:
		return resolve(SoulJokers, name)
	case cTarot:
		return resolve(Tarots, name)
	case cPlanet:
		return resolve(Planets, name)
	case cSpectral:
		return resolve(Spectrals, name)
	case cTag, cSmallBlindTag, cBigBlindTag:
		return resolve(Tags, name)
	case cVoucher:
		return resolve(Vouchers, name)
	default:
		return 0, false
	}
}

// Name is the inverse of Resolve.
func Name(category model.Category, id model.ItemID) (string, bool) {
	switch category {
	case cJoker:
		return name(Jokers, id)
	case cSoulJoker:
		return name(SoulJokers, id)
	case cTarot:
		return name(Tarots, id)
	case cPlanet:
		return name(Planets, id)
	case cSpectral:
		return name(Spectrals, id)
	case cTag, cSmallBlindTag, cBigBlindTag:
		return name(Tags, id)
	case cVoucher:
		return name(Vouchers, id)
	default:
		return "", false
	}
}

// Re-exported so this file reads top-to-bottom without an import alias war
// with pkg/model in every switch arm.
const (
	cJoker         = model.CategoryJoker
	cSoulJoker     = model.CategorySoulJoker
	cTarot         = model.CategoryTarot
	cPlanet        = model.CategoryPlanet
	cSpectral      = model.CategorySpectral
	cTag           = model.CategoryTag
	cSmallBlindTag = model.CategorySmallBlindTag
	cBigBlindTag   = model.CategoryBigBlindTag
	cVoucher       = model.CategoryVoucher
)
