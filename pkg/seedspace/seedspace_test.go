package seedspace

import (
	"testing"

	"github.com/ouijasearch/ouija/pkg/content"
)

func TestToIndex_FromIndex_RoundTrip(t *testing.T) {
	seeds := []content.Seed{"00000000", "AAAAAAAA", "ZZZZZZZZ", "1A2B3C4D"}
	for _, s := range seeds {
		idx, err := ToIndex(s)
		if err != nil {
			t.Fatalf("ToIndex(%q) failed: %v", s, err)
		}
		got := FromIndex(idx)
		if got != s {
			t.Errorf("FromIndex(ToIndex(%q)) = %q, want %q", s, got, s)
		}
	}
}

func TestToIndex_Invalid(t *testing.T) {
	tests := []content.Seed{"short", "123456789", "OOOOOOOO"}
	for _, s := range tests {
		if _, err := ToIndex(s); err == nil {
			t.Errorf("ToIndex(%q) = nil error, want an error", s)
		}
	}
}

func TestNext_Monotonic(t *testing.T) {
	s := content.Seed("00000000")
	prev, err := ToIndex(s)
	if err != nil {
		t.Fatalf("ToIndex() failed: %v", err)
	}
	for i := 0; i < 1000; i++ {
		s = Next(s)
		cur, err := ToIndex(s)
		if err != nil {
			t.Fatalf("ToIndex() failed: %v", err)
		}
		if cur != prev+1 {
			t.Fatalf("Next() broke monotonicity at step %d: %d -> %d", i, prev, cur)
		}
		prev = cur
	}
}

func TestNext_WrapsAtEnd(t *testing.T) {
	last := content.Seed("ZZZZZZZZ")
	got := Next(last)
	if got != "00000000" {
		t.Errorf("Next(%q) = %q, want wraparound to 00000000", last, got)
	}
}

func TestPartition_DisjointAndContiguous(t *testing.T) {
	ranges, err := Partition("00000000", "000000ZZ", 4)
	if err != nil {
		t.Fatalf("Partition() failed: %v", err)
	}
	if len(ranges) != 4 {
		t.Fatalf("len(ranges) = %d, want 4", len(ranges))
	}

	startIdx, _ := ToIndex(ranges[0].Start)
	if string(ranges[0].Start) != "00000000" {
		t.Errorf("first range starts at %q, want 00000000", ranges[0].Start)
	}
	_ = startIdx

	for i := 1; i < len(ranges); i++ {
		prevEnd, err := ToIndex(ranges[i-1].End)
		if err != nil {
			t.Fatalf("ToIndex() failed: %v", err)
		}
		curStart, err := ToIndex(ranges[i].Start)
		if err != nil {
			t.Fatalf("ToIndex() failed: %v", err)
		}
		if curStart != prevEnd+1 {
			t.Errorf("range %d does not immediately follow range %d: prevEnd=%d curStart=%d", i, i-1, prevEnd, curStart)
		}
	}

	last := ranges[len(ranges)-1]
	if string(last.End) != "000000ZZ" {
		t.Errorf("last range ends at %q, want 000000ZZ", last.End)
	}
}

func TestPartition_FewerSeedsThanWorkers(t *testing.T) {
	ranges, err := Partition("00000000", "00000002", 8)
	if err != nil {
		t.Fatalf("Partition() failed: %v", err)
	}
	if len(ranges) != 3 {
		t.Errorf("len(ranges) = %d, want 3 (one seed per range, capped by total seed count)", len(ranges))
	}
}

func TestPartition_EndBeforeStart(t *testing.T) {
	if _, err := Partition("00000005", "00000000", 2); err == nil {
		t.Error("expected an error when end precedes start")
	}
}

func TestLaneWalker_CoversEveryLaneAndPartialTail(t *testing.T) {
	ranges, err := Partition("00000000", "0000000A", 1)
	if err != nil {
		t.Fatalf("Partition() failed: %v", err)
	}
	w, err := NewLaneWalker(ranges[0])
	if err != nil {
		t.Fatalf("NewLaneWalker() failed: %v", err)
	}

	var seen []content.Seed
	for !w.Done() {
		lane, count := w.Next()
		for i := 0; i < count; i++ {
			seen = append(seen, lane[i])
		}
	}

	if len(seen) != 11 {
		t.Fatalf("len(seen) = %d, want 11", len(seen))
	}
	if seen[0] != "00000000" || seen[len(seen)-1] != "0000000A" {
		t.Errorf("walk boundaries = [%q, %q], want [00000000, 0000000A]", seen[0], seen[len(seen)-1])
	}
}
