package review

import (
	"github.com/slam0615/sc2026/internal/answers"
	"github.com/slam0615/sc2026/internal/catalog"
	"github.com/slam0615/sc2026/internal/schema"
)

// Score computes the per-part breakdown and the total score. Parts are
// processed and returned in catalog declaration order, never re-sorted. A
// question earns its points only when answered exactly yes; no and
// unanswered both contribute zero, so the summation stays total even though
// Score normally runs only after Validate has passed. A part with a zero
// point budget yields a percentage of exactly 0.
func Score(ans *answers.Store, cat *catalog.Catalog) ([]schema.CategoryResult, int) {
	results := make([]schema.CategoryResult, 0, len(cat.Parts))
	total := 0

	for _, part := range cat.Parts {
		earned, possible := 0, 0
		for _, q := range cat.PartQuestions(part.ID) {
			possible += q.Points
			if ans.Get(q.ID) == schema.AnswerYes {
				earned += q.Points
			}
		}

		pct := 0.0
		if possible > 0 {
			pct = 100 * float64(earned) / float64(possible)
		}

		results = append(results, schema.CategoryResult{
			Part:       part.ID,
			Title:      part.Title,
			Earned:     earned,
			Total:      possible,
			Percentage: pct,
		})
		total += earned
	}

	return results, total
}
