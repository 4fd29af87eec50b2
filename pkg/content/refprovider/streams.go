package refprovider

import (
	"github.com/ouijasearch/ouija/pkg/content"
	"github.com/ouijasearch/ouija/pkg/model"
	"github.com/ouijasearch/ouija/pkg/oujrand"
)

// packStream replays a fixed, pre-rolled sequence of pack headers. Rolling
// the whole ante up front (rather than lazily per Next call) keeps Next
// trivial and matches how CreateBoosterPackStream is specified: one call
// produces one ante's worth of headers (spec §4.3).
type packStream struct {
	headers []content.PackHeader
	i       int
}

func (ps *packStream) Next() (content.PackHeader, bool) {
	if ps.i >= len(ps.headers) {
		return content.PackHeader{}, false
	}
	h := ps.headers[ps.i]
	ps.i++
	return h, true
}

// contentStream draws PackItems for one pack type. soulP is the per-slot
// chance the draw is the Soul card instead of a named item; zero for pack
// types that never roll Soul in this reference implementation.
type contentStream struct {
	source   *oujrand.Stream
	category model.Category
	soulP    float64
}

func (cs *contentStream) Contents(size int) content.PackContents {
	items := make([]content.PackItem, size)
	for i := 0; i < size; i++ {
		if cs.soulP > 0 && cs.source.Float64() < cs.soulP {
			items[i] = content.PackItem{Category: model.CategorySoulJoker, IsSoul: true}
			continue
		}
		if cs.category == model.CategoryPlayingCard {
			rank, suit, enhancement, seal, edition := drawCard(cs.source)
			items[i] = content.PackItem{
				Category: model.CategoryPlayingCard,
				Card: content.PlayingCard{
					Rank: rank, Suit: suit, Enhancement: enhancement, Seal: seal, Edition: edition,
				},
			}
			continue
		}
		items[i] = content.PackItem{Category: cs.category, Value: drawNamed(cs.source, cs.category)}
	}
	return content.PackContents{Items: items}
}

// soulJokerStream yields a fresh legendary joker on every Next call (spec
// §4.3's NextJoker; §4.6's "opened fresh for each Soul detection").
type soulJokerStream struct {
	source *oujrand.Stream
}

func (s *soulJokerStream) Next() (model.ItemID, model.Edition) {
	id := drawNamed(s.source, model.CategorySoulJoker)
	return id, editions[s.source.WeightedChoice(editionWeights)]
}

// tagStream yields an ante's blind-skip tags in order: the first Next call
// returns the small-blind tag, the second the big-blind tag (spec §4.3,
// Glossary: "Tag").
type tagStream struct {
	source *oujrand.Stream
}

func (t *tagStream) Next() model.ItemID {
	return drawNamed(t.source, model.CategoryTag)
}
