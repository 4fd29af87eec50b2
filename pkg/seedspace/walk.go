package seedspace

import "github.com/ouijasearch/ouija/pkg/content"

// LaneWalker produces successive W-wide lanes covering a Range in
// lexicographic order. The final lane of a range may be partially filled;
// Next's second result reports how many of its slots hold real seeds.
type LaneWalker struct {
	cursor int64
	end    int64
}

// NewLaneWalker starts a walker at the beginning of r.
func NewLaneWalker(r Range) (*LaneWalker, error) {
	start, err := ToIndex(r.Start)
	if err != nil {
		return nil, err
	}
	end, err := ToIndex(r.End)
	if err != nil {
		return nil, err
	}
	return &LaneWalker{cursor: start, end: end}, nil
}

// Done reports whether every seed in the range has been consumed.
func (w *LaneWalker) Done() bool {
	return w.cursor > w.end
}

// Next fills lane with the next up-to-content.LaneWidth seeds and returns
// how many of its slots are valid. Call only when Done reports false.
func (w *LaneWalker) Next() (content.Lane, int) {
	var lane content.Lane
	count := 0
	for count < content.LaneWidth && w.cursor <= w.end {
		lane[count] = FromIndex(w.cursor)
		w.cursor++
		count++
	}
	return lane, count
}
