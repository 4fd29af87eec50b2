package streamcache

import (
	"testing"

	"github.com/ouijasearch/ouija/pkg/model"
)

func TestCacheKey_String(t *testing.T) {
	k := CacheKey{Category: model.CategoryVoucher, Source: SourceVoucher, Ante: 3}
	want := model.CategoryVoucher.String() + "vch3"
	if got := k.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCacheKey_DistinctFieldsProduceDistinctStrings(t *testing.T) {
	a := CacheKey{Category: model.CategoryJoker, Source: SourceShop, Ante: 1}
	b := CacheKey{Category: model.CategoryJoker, Source: SourceShop, Ante: 2}
	c := CacheKey{Category: model.CategoryJoker, Source: SourcePackHeader, Ante: 1}

	if a.String() == b.String() {
		t.Error("keys differing only in Ante produced identical strings")
	}
	if a.String() == c.String() {
		t.Error("keys differing only in Source produced identical strings")
	}
}
