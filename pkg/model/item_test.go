package model

import "testing"

func TestJokerBase(t *testing.T) {
	tests := []struct {
		name string
		id   ItemID
		want ItemID
	}{
		{"any item passes through", AnyItem, AnyItem},
		{"masks high rarity bits", ItemID(0x1005), ItemID(0x0005)},
		{"already-base id unchanged", ItemID(42), ItemID(42)},
		{"zero unchanged", ItemID(0), ItemID(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JokerBase(tt.id); got != tt.want {
				t.Errorf("JokerBase(%v) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}
