package report

import (
	"bytes"
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/ouijasearch/ouija/pkg/evaluate"
)

// HistogramOptions configures the SVG score histogram export.
type HistogramOptions struct {
	Width  int
	Height int
	Bins   int
	Margin int
	Title  string
}

// DefaultHistogramOptions returns sensible default export options.
func DefaultHistogramOptions() HistogramOptions {
	return HistogramOptions{
		Width:  900,
		Height: 500,
		Bins:   20,
		Margin: 50,
		Title:  "Accepted Seed Score Distribution",
	}
}

// ExportHistogram renders a bar-chart histogram of TotalScore across
// results as SVG bytes.
func ExportHistogram(results []evaluate.Result, opts HistogramOptions) ([]byte, error) {
	if opts.Width <= 0 {
		opts.Width = 900
	}
	if opts.Height <= 0 {
		opts.Height = 500
	}
	if opts.Bins <= 0 {
		opts.Bins = 20
	}
	if opts.Margin <= 0 {
		opts.Margin = 50
	}

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:#ffffff")

	if len(results) == 0 {
		canvas.Text(opts.Width/2, opts.Height/2, "no results", "text-anchor:middle;font-size:16px;fill:#888")
		canvas.End()
		return buf.Bytes(), nil
	}

	minScore, maxScore := results[0].TotalScore, results[0].TotalScore
	for _, r := range results {
		if r.TotalScore < minScore {
			minScore = r.TotalScore
		}
		if r.TotalScore > maxScore {
			maxScore = r.TotalScore
		}
	}
	if maxScore == minScore {
		maxScore = minScore + 1
	}

	counts := make([]int, opts.Bins)
	span := maxScore - minScore
	for _, r := range results {
		bin := (r.TotalScore - minScore) * opts.Bins / (span + 1)
		if bin >= opts.Bins {
			bin = opts.Bins - 1
		}
		counts[bin]++
	}

	maxCount := 1
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	plotWidth := opts.Width - 2*opts.Margin
	plotHeight := opts.Height - 2*opts.Margin
	barWidth := plotWidth / opts.Bins

	canvas.Text(opts.Width/2, opts.Margin/2, opts.Title, "text-anchor:middle;font-size:18px;fill:#222")

	for i, c := range counts {
		barHeight := c * plotHeight / maxCount
		x := opts.Margin + i*barWidth
		y := opts.Height - opts.Margin - barHeight
		canvas.Rect(x, y, barWidth-2, barHeight, "fill:#4a6fa5")
	}

	canvas.Line(opts.Margin, opts.Height-opts.Margin, opts.Width-opts.Margin, opts.Height-opts.Margin, "stroke:#222;stroke-width:1")
	canvas.Line(opts.Margin, opts.Margin, opts.Margin, opts.Height-opts.Margin, "stroke:#222;stroke-width:1")

	canvas.End()
	return buf.Bytes(), nil
}

// SaveHistogramToFile renders the histogram and writes it to path.
func SaveHistogramToFile(results []evaluate.Result, path string, opts HistogramOptions) error {
	data, err := ExportHistogram(results, opts)
	if err != nil {
		return fmt.Errorf("rendering histogram: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing histogram file: %w", err)
	}
	return nil
}
