// Package seedspace enumerates and partitions the 8-character base-35
// seed alphabet the search driver walks in lexicographic order (spec §4.8,
// §5).
package seedspace

import (
	"fmt"
	"strings"

	"github.com/ouijasearch/ouija/pkg/content"
)

// Alphabet is the 35-character seed alphabet: digits and uppercase
// letters, excluding 'O' to avoid visual confusion with '0'.
const Alphabet = "0123456789ABCDEFGHIJKLMNPQRSTUVWXYZ"

// Length is the fixed seed length.
const Length = 8

// Base is the radix of the seed alphabet.
const Base = int64(len(Alphabet))

var digitValue [256]int8

func init() {
	for i := range digitValue {
		digitValue[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		digitValue[Alphabet[i]] = int8(i)
	}
}

// Valid reports whether s is a well-formed 8-character seed drawn from
// Alphabet.
func Valid(s content.Seed) bool {
	if len(s) != Length {
		return false
	}
	for i := 0; i < Length; i++ {
		if digitValue[s[i]] < 0 {
			return false
		}
	}
	return true
}

// ToIndex converts a seed to its lexicographic rank in [0, Base^Length).
func ToIndex(s content.Seed) (int64, error) {
	if !Valid(s) {
		return 0, fmt.Errorf("seedspace: invalid seed %q", string(s))
	}
	var idx int64
	for i := 0; i < Length; i++ {
		idx = idx*Base + int64(digitValue[s[i]])
	}
	return idx, nil
}

// FromIndex converts a lexicographic rank back to its seed string.
func FromIndex(idx int64) content.Seed {
	var buf [Length]byte
	for i := Length - 1; i >= 0; i-- {
		buf[i] = Alphabet[idx%Base]
		idx /= Base
	}
	return content.Seed(buf[:])
}

// Next returns the lexicographic successor of s, with wraparound from the
// all-'Z' seed back to the all-'0' seed.
func Next(s content.Seed) content.Seed {
	idx, err := ToIndex(s)
	if err != nil {
		return s
	}
	idx++
	if idx >= Base*Base*Base*Base*Base*Base*Base*Base {
		idx = 0
	}
	return FromIndex(idx)
}

// Partition splits the inclusive [start, end] range into n contiguous,
// disjoint sub-ranges of roughly equal size, one per worker goroutine
// (spec §5: "static contiguous partitioning of the seed-space", not a
// dynamic or work-stealing scheme).
func Partition(start, end content.Seed, n int) ([]Range, error) {
	if n < 1 {
		return nil, fmt.Errorf("seedspace: partition count must be >= 1, got %d", n)
	}
	startIdx, err := ToIndex(start)
	if err != nil {
		return nil, err
	}
	endIdx, err := ToIndex(end)
	if err != nil {
		return nil, err
	}
	if endIdx < startIdx {
		return nil, fmt.Errorf("seedspace: end %q precedes start %q", string(end), string(start))
	}

	total := endIdx - startIdx + 1
	if int64(n) > total {
		n = int(total)
	}

	chunk := total / int64(n)
	remainder := total % int64(n)

	ranges := make([]Range, 0, n)
	cursor := startIdx
	for i := 0; i < n; i++ {
		size := chunk
		if int64(i) < remainder {
			size++
		}
		if size == 0 {
			continue
		}
		ranges = append(ranges, Range{Start: FromIndex(cursor), End: FromIndex(cursor + size - 1)})
		cursor += size
	}
	return ranges, nil
}

// Range is an inclusive, contiguous span of the seed space.
type Range struct {
	Start content.Seed
	End   content.Seed
}

// String renders the range as "start..end" for logging.
func (r Range) String() string {
	var b strings.Builder
	b.WriteString(string(r.Start))
	b.WriteString("..")
	b.WriteString(string(r.End))
	return b.String()
}
