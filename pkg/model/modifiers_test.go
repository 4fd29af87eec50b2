package model

import "testing"

func TestEdition_StringRoundTrip(t *testing.T) {
	for e := EditionNone; e <= EditionNegative; e++ {
		got, ok := EditionFromString(e.String())
		if !ok || got != e {
			t.Errorf("EditionFromString(%q) = (%v, %v), want (%v, true)", e.String(), got, ok, e)
		}
	}
}

func TestEditionFromString_EmptyMeansNone(t *testing.T) {
	got, ok := EditionFromString("")
	if !ok || got != EditionNone {
		t.Errorf("EditionFromString(\"\") = (%v, %v), want (None, true)", got, ok)
	}
}

func TestEditionFromString_Unknown(t *testing.T) {
	if _, ok := EditionFromString("Sparkly"); ok {
		t.Error("EditionFromString(\"Sparkly\") ok = true, want false")
	}
}

func TestEnhancement_StringRoundTrip(t *testing.T) {
	for e := EnhancementNone; e <= EnhancementLucky; e++ {
		got, ok := EnhancementFromString(e.String())
		if !ok || got != e {
			t.Errorf("EnhancementFromString(%q) = (%v, %v), want (%v, true)", e.String(), got, ok, e)
		}
	}
}

func TestSeal_StringRoundTrip(t *testing.T) {
	for s := SealNone; s <= SealPurple; s++ {
		got, ok := SealFromString(s.String())
		if !ok || got != s {
			t.Errorf("SealFromString(%q) = (%v, %v), want (%v, true)", s.String(), got, ok, s)
		}
	}
}

func TestSuit_StringRoundTrip(t *testing.T) {
	for s := SuitSpades; s <= SuitAny; s++ {
		got, ok := SuitFromString(s.String())
		if !ok || got != s {
			t.Errorf("SuitFromString(%q) = (%v, %v), want (%v, true)", s.String(), got, ok, s)
		}
	}
}

func TestSuitFromString_EmptyMeansAny(t *testing.T) {
	got, ok := SuitFromString("")
	if !ok || got != SuitAny {
		t.Errorf("SuitFromString(\"\") = (%v, %v), want (Any, true)", got, ok)
	}
}

func TestRank_StringRoundTrip(t *testing.T) {
	for r := Rank2; r <= RankAny; r++ {
		got, ok := RankFromString(r.String())
		if !ok || got != r {
			t.Errorf("RankFromString(%q) = (%v, %v), want (%v, true)", r.String(), got, ok, r)
		}
	}
}

func TestRankFromString_EmptyMeansAny(t *testing.T) {
	got, ok := RankFromString("")
	if !ok || got != RankAny {
		t.Errorf("RankFromString(\"\") = (%v, %v), want (Any, true)", got, ok)
	}
}

func TestPackType_CategoryForPack(t *testing.T) {
	tests := []struct {
		p       PackType
		wantCat Category
		wantOK  bool
	}{
		{PackArcana, CategoryTarot, true},
		{PackCelestial, CategoryPlanet, true},
		{PackSpectral, CategorySpectral, true},
		{PackStandard, CategoryPlayingCard, true},
		{PackBuffoon, 0, false},
	}
	for _, tt := range tests {
		cat, ok := tt.p.CategoryForPack()
		if ok != tt.wantOK || (ok && cat != tt.wantCat) {
			t.Errorf("%v.CategoryForPack() = (%v, %v), want (%v, %v)", tt.p, cat, ok, tt.wantCat, tt.wantOK)
		}
	}
}
