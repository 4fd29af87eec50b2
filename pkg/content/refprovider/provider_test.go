package refprovider

import (
	"testing"

	"github.com/ouijasearch/ouija/pkg/content"
	"github.com/ouijasearch/ouija/pkg/model"
)

func TestProvider_MaxShopSlots(t *testing.T) {
	tests := []struct {
		name string
		ante int
		want int
	}{
		{"ante one", 1, anteOneShopSlots},
		{"ante two", 2, baseShopSlots},
		{"ante eight", 8, baseShopSlots},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New()
			if got := p.MaxShopSlots(tt.ante); got != tt.want {
				t.Errorf("MaxShopSlots(%d) = %d, want %d", tt.ante, got, tt.want)
			}
		})
	}
}

func TestProvider_GenerateFullShop_Determinism(t *testing.T) {
	p := New()
	a := p.GenerateFullShop("AAAAAAAA", 1)
	b := p.GenerateFullShop("AAAAAAAA", 1)
	if len(a) != len(b) {
		t.Fatalf("shop length differs between calls: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("slot %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestProvider_GenerateFullShop_SlotCount(t *testing.T) {
	p := New()
	if got := len(p.GenerateFullShop("AAAAAAAA", 1)); got != anteOneShopSlots {
		t.Errorf("ante 1 shop has %d slots, want %d", got, anteOneShopSlots)
	}
	if got := len(p.GenerateFullShop("AAAAAAAA", 3)); got != baseShopSlots {
		t.Errorf("ante 3 shop has %d slots, want %d", got, baseShopSlots)
	}
}

func TestProvider_DifferentSeedsDiverge(t *testing.T) {
	p := New()
	a := p.GenerateFullShop("AAAAAAAA", 2)
	b := p.GenerateFullShop("ZZZZZZZZ", 2)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("two different seeds produced identical shops; streams are not seed-derived")
	}
}

func TestProvider_BoosterPackStream_Exhausts(t *testing.T) {
	p := New()
	s := p.CreateBoosterPackStream("AAAAAAAA", 2)

	n := 0
	for {
		_, ok := s.Next()
		if !ok {
			break
		}
		n++
		if n > 100 {
			t.Fatal("pack stream never exhausted")
		}
	}
	if n != p.PacksPerAnte(2) {
		t.Errorf("got %d pack headers, want %d", n, p.PacksPerAnte(2))
	}
}

func TestProvider_ContentStream_Determinism(t *testing.T) {
	p := New()
	s1 := p.CreateArcanaPackTarotStream("AAAAAAAA", 2)
	s2 := p.CreateArcanaPackTarotStream("AAAAAAAA", 2)

	c1 := s1.Contents(3)
	c2 := s2.Contents(3)
	for i := range c1.Items {
		if c1.Items[i] != c2.Items[i] {
			t.Errorf("item %d differs: %+v vs %+v", i, c1.Items[i], c2.Items[i])
		}
	}
}

func TestProvider_ContentStream_Advances(t *testing.T) {
	p := New()
	s := p.CreateArcanaPackTarotStream("AAAAAAAA", 2)
	first := s.Contents(3)
	second := s.Contents(3)

	identical := true
	for i := range first.Items {
		if first.Items[i] != second.Items[i] {
			identical = false
			break
		}
	}
	if identical {
		t.Error("second Contents call returned the same draws as the first; stream did not advance")
	}
}

func TestProvider_StandardPackCardStream_NoSoul(t *testing.T) {
	p := New()
	s := p.CreateStandardPackCardStream("AAAAAAAA", 2)
	for i := 0; i < 50; i++ {
		c := s.Contents(5)
		for _, item := range c.Items {
			if item.IsSoul {
				t.Fatal("standard pack yielded a Soul slot; only Arcana/Spectral should")
			}
		}
	}
}

func TestProvider_CelestialPackStream_NoSoul(t *testing.T) {
	p := New()
	s := p.CreateCelestialPackPlanetStream("AAAAAAAA", 2)
	for i := 0; i < 50; i++ {
		c := s.Contents(3)
		for _, item := range c.Items {
			if item.IsSoul {
				t.Fatal("celestial pack yielded a Soul slot in this reference implementation")
			}
		}
	}
}

func TestProvider_TagStream_SmallThenBig(t *testing.T) {
	p := New()
	s1 := p.CreateTagStream("AAAAAAAA", 1)
	small := s1.Next()
	big := s1.Next()

	s2 := p.CreateTagStream("AAAAAAAA", 1)
	small2 := s2.Next()
	big2 := s2.Next()

	if small != small2 || big != big2 {
		t.Error("tag stream is not deterministic across fresh instances")
	}
}

func TestProvider_GetAnteFirstVoucher_Determinism(t *testing.T) {
	p := New()
	a := p.GetAnteFirstVoucher("AAAAAAAA", 4)
	b := p.GetAnteFirstVoucher("AAAAAAAA", 4)
	if a != b {
		t.Errorf("GetAnteFirstVoucher not deterministic: %v vs %v", a, b)
	}
}

func TestProvider_VoucherEquals_MatchesSingleSeed(t *testing.T) {
	p := New()
	lane := content.Lane{"AAAAAAAA", "BBBBBBBB", "CCCCCCCC", "", "", "", "", ""}
	target := p.GetAnteFirstVoucher("AAAAAAAA", 1)

	mask := p.VoucherEquals(lane, 1, target)
	if !mask.IsSet(0) {
		t.Error("lane 0 should match its own voucher")
	}
}

func TestProvider_TagEquals_Variants(t *testing.T) {
	p := New()
	lane := content.Lane{"AAAAAAAA", "", "", "", "", "", "", ""}
	s := p.CreateTagStream("AAAAAAAA", 1)
	small := s.Next()
	big := s.Next()

	if mask := p.TagEquals(lane, 1, model.CategorySmallBlindTag, small); !mask.IsSet(0) {
		t.Error("small-blind tag should match")
	}
	if mask := p.TagEquals(lane, 1, model.CategoryBigBlindTag, big); !mask.IsSet(0) {
		t.Error("big-blind tag should match")
	}
	if mask := p.TagEquals(lane, 1, model.CategoryTag, small); !mask.IsSet(0) {
		t.Error("Tag variant should match either blind")
	}
}

func TestProvider_ShopCategoryEquals_MatchesSingleSeed(t *testing.T) {
	p := New()
	shop := p.GenerateFullShop("AAAAAAAA", 3)

	var target model.ItemID = model.AnyItem
	var category model.Category
	found := false
	for _, item := range shop {
		if item.Category == model.CategoryPlanet {
			target = item.Value
			category = model.CategoryPlanet
			found = true
			break
		}
	}
	if !found {
		t.Skip("no planet slot rolled in this shop instance")
	}

	lane := content.Lane{"AAAAAAAA", "", "", "", "", "", "", ""}
	mask := p.ShopCategoryEquals(lane, 3, category, target)
	if !mask.IsSet(0) {
		t.Error("lane 0 should match the planet it was generated with")
	}
}
