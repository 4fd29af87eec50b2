package content

import "github.com/ouijasearch/ouija/pkg/model"

// PackStream yields booster-pack headers in draw order for one ante
// (spec §4.3's CreateBoosterPackStream/NextBoosterPack). Calling Next after
// the ante's packs are exhausted returns ok=false.
type PackStream interface {
	Next() (header PackHeader, ok bool)
}

// ContentStream yields the contents of one opened pack (spec §4.3's
// CreateArcanaPackTarotStream / CreateCelestialPackPlanetStream /
// CreateSpectralPackStream / CreateStandardPackCardStream). A single
// stream is created once per ante per pack-type (lazily, at first use —
// spec §4.6's stream-initialisation rule) and GetPackContents is called
// once per opened pack of that type, advancing the stream each time.
type ContentStream interface {
	// Contents draws the next size items from the stream (spec §4.3's
	// GetPackContents).
	Contents(size int) PackContents
}

// JokerStream yields legendary jokers (spec §4.3's CreateSoulJokerStream /
// NextJoker). Created fresh for each successful Soul detection
// (spec §4.6's stream-initialisation rule).
type JokerStream interface {
	Next() (id model.ItemID, edition model.Edition)
}

// TagStream yields an ante's blind-skip tags in order: small-blind first,
// then big-blind (spec §4.3's CreateTagStream/NextTag, Glossary: "Tag").
type TagStream interface {
	Next() model.ItemID
}
