package review

import "github.com/slam0615/sc2026/internal/schema"

// Evaluate selects the first declared band whose inclusive range contains
// total. The bands are required to partition the score range, so exactly one
// should match; if none does, the first declared band is returned as a
// deliberate fallback rather than failing.
func Evaluate(total int, bands []schema.EvaluationBand) schema.EvaluationBand {
	for _, b := range bands {
		if b.Contains(total) {
			return b
		}
	}
	if len(bands) == 0 {
		return schema.EvaluationBand{}
	}
	return bands[0]
}
