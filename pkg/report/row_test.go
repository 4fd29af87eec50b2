package report

import (
	"testing"

	"github.com/ouijasearch/ouija/pkg/content"
	"github.com/ouijasearch/ouija/pkg/evaluate"
	"github.com/ouijasearch/ouija/pkg/ouijaquery"
)

func TestFormatRow_BasicColumns(t *testing.T) {
	q := &ouijaquery.Query{
		Should: []ouijaquery.FilterItem{{Score: 5}, {Score: 3}},
	}
	res := evaluate.Result{
		Seed:           content.Seed("AAAAAAAA"),
		TotalScore:     8,
		ScoreBreakdown: [ouijaquery.MaxShouldClauses]int{5, 3},
	}

	got := FormatRow(res, q)
	want := "|AAAAAAAA,8,5,3"
	if got != want {
		t.Errorf("FormatRow() = %q, want %q", got, want)
	}
}

func TestFormatRow_WithNegativeCounters(t *testing.T) {
	q := &ouijaquery.Query{
		ScoreNaturalNegatives: true,
		ScoreDesiredNegatives: true,
	}
	res := evaluate.Result{
		Seed:                  content.Seed("BBBBBBBB"),
		TotalScore:            0,
		NaturalNegativeJokers: 2,
		DesiredNegativeJokers: 1,
	}

	got := FormatRow(res, q)
	want := "|BBBBBBBB,0,2,1"
	if got != want {
		t.Errorf("FormatRow() = %q, want %q", got, want)
	}
}

func TestHeader_MatchesRowShape(t *testing.T) {
	q := &ouijaquery.Query{
		ScoreNaturalNegatives: true,
		Should:                []ouijaquery.FilterItem{{Score: 1}, {Score: 2}},
	}
	got := Header(q)
	want := "seed,totalScore,naturalNegatives,score_0,score_1"
	if got != want {
		t.Errorf("Header() = %q, want %q", got, want)
	}
}

func TestExportHistogram_EmptyResults(t *testing.T) {
	data, err := ExportHistogram(nil, DefaultHistogramOptions())
	if err != nil {
		t.Fatalf("ExportHistogram() failed: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty SVG output even for zero results")
	}
}

func TestExportHistogram_WithResults(t *testing.T) {
	results := []evaluate.Result{
		{Seed: "AAAAAAAA", TotalScore: 1},
		{Seed: "BBBBBBBB", TotalScore: 5},
		{Seed: "CCCCCCCC", TotalScore: 10},
	}
	data, err := ExportHistogram(results, DefaultHistogramOptions())
	if err != nil {
		t.Fatalf("ExportHistogram() failed: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty SVG output")
	}
}
