package streamcache

import (
	"strconv"

	"github.com/ouijasearch/ouija/pkg/model"
)

// SourceTag names which PRNG stream a CacheKey addresses (spec §4.2's
// "<source-tag>": sho (shop), ar1 (arcana), buf (buffoon), sou (soul), and
// the remaining pack/tag/voucher sources the same scheme implies).
type SourceTag string

const (
	SourceShop         SourceTag = "sho"
	SourcePackHeader   SourceTag = "pkh"
	SourceArcanaPack   SourceTag = "ar1"
	SourceCelestialPack SourceTag = "cel"
	SourceSpectralPack SourceTag = "spe"
	SourceStandardPack SourceTag = "std"
	SourceBuffoonPack  SourceTag = "buf"
	SourceSoul         SourceTag = "sou"
	SourceTagStream    SourceTag = "tag"
	SourceVoucher      SourceTag = "vch"
)

// CacheKey is the canonical `<category-key><source-tag><ante>` string from
// spec §4.2, modeled as a struct; String renders it, and the reference
// provider calls String each time it opens a stream.
type CacheKey struct {
	Category model.Category
	Source   SourceTag
	Ante     int
}

// String renders the canonical key, also used as oujrand's stream key
// (pkg/oujrand.New's second argument).
func (k CacheKey) String() string {
	return k.Category.String() + string(k.Source) + strconv.Itoa(k.Ante)
}
