package review

import (
	"strings"
	"testing"

	"github.com/slam0615/sc2026/internal/catalog"
	"github.com/slam0615/sc2026/internal/schema"
)

func TestEvaluate_DefaultBandBoundaries(t *testing.T) {
	bands := catalog.Default().Bands
	cases := []struct {
		total int
		want  string
	}{
		{0, "起步職場"},
		{49, "起步職場"},
		{50, "成長中職場"},
		{69, "成長中職場"},
		{70, "績優職場"},
		{89, "績優職場"},
		{90, "典範職場"},
		{100, "典範職場"},
	}
	for _, tc := range cases {
		if got := Evaluate(tc.total, bands).Title; !strings.HasPrefix(got, tc.want) {
			t.Errorf("Evaluate(%d) = %q, want %q band", tc.total, got, tc.want)
		}
	}
}

func TestEvaluate_FallbackToFirstBand(t *testing.T) {
	bands := []schema.EvaluationBand{
		{Low: 0, High: 10, Title: "低"},
		{Low: 11, High: 20, Title: "高"},
	}
	if got := Evaluate(999, bands).Title; got != "低" {
		t.Errorf("out-of-range total matched %q, want first band", got)
	}
}

func TestEvaluate_EmptyBands(t *testing.T) {
	if got := Evaluate(50, nil); got != (schema.EvaluationBand{}) {
		t.Errorf("Evaluate with no bands = %+v, want zero value", got)
	}
}

func TestEvaluate_FirstMatchWinsOnOverlap(t *testing.T) {
	bands := []schema.EvaluationBand{
		{Low: 0, High: 50, Title: "甲"},
		{Low: 40, High: 100, Title: "乙"},
	}
	if got := Evaluate(45, bands).Title; got != "甲" {
		t.Errorf("Evaluate(45) = %q, want first declared match", got)
	}
}
