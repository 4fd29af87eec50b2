package model

import "fmt"

// Edition is a card/joker finish. None is the zero value so an omitted
// clause modifier wildcards correctly.
type Edition int

const (
	EditionNone Edition = iota
	EditionFoil
	EditionHolographic
	EditionPolychrome
	EditionNegative
)

func (e Edition) String() string {
	switch e {
	case EditionNone:
		return "None"
	case EditionFoil:
		return "Foil"
	case EditionHolographic:
		return "Holographic"
	case EditionPolychrome:
		return "Polychrome"
	case EditionNegative:
		return "Negative"
	default:
		return fmt.Sprintf("Unknown(%d)", int(e))
	}
}

// EditionFromString resolves a JSON "edition" string. Returns false for
// unrecognised names.
func EditionFromString(s string) (Edition, bool) {
	switch s {
	case "", "None":
		return EditionNone, true
	case "Foil":
		return EditionFoil, true
	case "Holographic":
		return EditionHolographic, true
	case "Polychrome":
		return EditionPolychrome, true
	case "Negative":
		return EditionNegative, true
	default:
		return 0, false
	}
}

// Enhancement is a playing-card enhancement.
type Enhancement int

const (
	EnhancementNone Enhancement = iota
	EnhancementBonus
	EnhancementMult
	EnhancementWild
	EnhancementGlass
	EnhancementSteel
	EnhancementStone
	EnhancementGold
	EnhancementLucky
)

func (e Enhancement) String() string {
	switch e {
	case EnhancementNone:
		return "None"
	case EnhancementBonus:
		return "Bonus"
	case EnhancementMult:
		return "Mult"
	case EnhancementWild:
		return "Wild"
	case EnhancementGlass:
		return "Glass"
	case EnhancementSteel:
		return "Steel"
	case EnhancementStone:
		return "Stone"
	case EnhancementGold:
		return "Gold"
	case EnhancementLucky:
		return "Lucky"
	default:
		return fmt.Sprintf("Unknown(%d)", int(e))
	}
}

// EnhancementFromString resolves a JSON "enhancement" string.
func EnhancementFromString(s string) (Enhancement, bool) {
	if s == "" {
		return EnhancementNone, true
	}
	for e := EnhancementNone; e <= EnhancementLucky; e++ {
		if e.String() == s {
			return e, true
		}
	}
	return 0, false
}

// Seal is a playing-card seal.
type Seal int

const (
	SealNone Seal = iota
	SealGold
	SealRed
	SealBlue
	SealPurple
)

func (s Seal) String() string {
	switch s {
	case SealNone:
		return "None"
	case SealGold:
		return "Gold"
	case SealRed:
		return "Red"
	case SealBlue:
		return "Blue"
	case SealPurple:
		return "Purple"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// SealFromString resolves a JSON "seal" string.
func SealFromString(s string) (Seal, bool) {
	if s == "" {
		return SealNone, true
	}
	for v := SealNone; v <= SealPurple; v++ {
		if v.String() == s {
			return v, true
		}
	}
	return 0, false
}

// Suit is a playing-card suit.
type Suit int

const (
	SuitSpades Suit = iota
	SuitHearts
	SuitDiamonds
	SuitClubs
	SuitAny // wildcard: attribute omitted in the clause
)

func (s Suit) String() string {
	switch s {
	case SuitSpades:
		return "Spades"
	case SuitHearts:
		return "Hearts"
	case SuitDiamonds:
		return "Diamonds"
	case SuitClubs:
		return "Clubs"
	case SuitAny:
		return "Any"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// SuitFromString resolves a JSON "suit" string; an empty string means "any".
func SuitFromString(s string) (Suit, bool) {
	if s == "" {
		return SuitAny, true
	}
	for v := SuitSpades; v <= SuitAny; v++ {
		if v.String() == s {
			return v, true
		}
	}
	return 0, false
}

// Rank is a playing-card rank.
type Rank int

const (
	Rank2 Rank = iota
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJack
	RankQueen
	RankKing
	RankAce
	RankAny // wildcard: attribute omitted in the clause
)

func (r Rank) String() string {
	names := [...]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "Jack", "Queen", "King", "Ace", "Any"}
	if int(r) < 0 || int(r) >= len(names) {
		return fmt.Sprintf("Unknown(%d)", int(r))
	}
	return names[r]
}

// RankFromString resolves a JSON "rank" string; an empty string means "any".
func RankFromString(s string) (Rank, bool) {
	if s == "" {
		return RankAny, true
	}
	for v := Rank2; v <= RankAny; v++ {
		if v.String() == s {
			return v, true
		}
	}
	return 0, false
}

// PackType identifies a booster pack's content category.
type PackType int

const (
	PackArcana PackType = iota
	PackCelestial
	PackSpectral
	PackBuffoon
	PackStandard
)

func (p PackType) String() string {
	switch p {
	case PackArcana:
		return "Arcana"
	case PackCelestial:
		return "Celestial"
	case PackSpectral:
		return "Spectral"
	case PackBuffoon:
		return "Buffoon"
	case PackStandard:
		return "Standard"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// CategoryForPack returns the shop/clause Category whose pack-path contents
// this pack type carries (Arcana: Tarot, Celestial: Planet, Spectral:
// Spectral, Standard: PlayingCard); ok is false for any other pack type.
func (p PackType) CategoryForPack() (Category, bool) {
	switch p {
	case PackArcana:
		return CategoryTarot, true
	case PackCelestial:
		return CategoryPlanet, true
	case PackSpectral:
		return CategorySpectral, true
	case PackStandard:
		return CategoryPlayingCard, true
	default:
		return 0, false
	}
}
