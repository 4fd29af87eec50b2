// Package report formats accepted search results for output: CSV rows
// (spec §6) and an optional SVG score histogram.
package report

import (
	"strconv"
	"strings"

	"github.com/ouijasearch/ouija/pkg/evaluate"
	"github.com/ouijasearch/ouija/pkg/ouijaquery"
)

// FormatRow renders res as one output row (spec §6):
// |<seed>,<totalScore>[,<naturalNegatives>?][,<desiredNegatives>?],<score_0>,<score_1>,…
// The negative-joker columns appear only when q enabled the corresponding
// counter; the score columns follow q.Should's declared order.
func FormatRow(res evaluate.Result, q *ouijaquery.Query) string {
	var b strings.Builder
	b.WriteByte('|')
	b.WriteString(string(res.Seed))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(res.TotalScore))

	if q.ScoreNaturalNegatives {
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(res.NaturalNegativeJokers))
	}
	if q.ScoreDesiredNegatives {
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(res.DesiredNegativeJokers))
	}

	for i := range q.Should {
		b.WriteByte(',')
		if i < len(res.ScoreBreakdown) {
			b.WriteString(strconv.Itoa(res.ScoreBreakdown[i]))
		} else {
			b.WriteString("0")
		}
	}

	return b.String()
}

// Header renders the column header line matching FormatRow's layout, for
// CSV files written with a header row.
func Header(q *ouijaquery.Query) string {
	cols := []string{"seed", "totalScore"}
	if q.ScoreNaturalNegatives {
		cols = append(cols, "naturalNegatives")
	}
	if q.ScoreDesiredNegatives {
		cols = append(cols, "desiredNegatives")
	}
	for i := range q.Should {
		cols = append(cols, "score_"+strconv.Itoa(i))
	}
	return strings.Join(cols, ",")
}
