package review

import (
	"time"

	"github.com/google/uuid"

	"github.com/slam0615/sc2026/internal/answers"
	"github.com/slam0615/sc2026/internal/basicinfo"
	"github.com/slam0615/sc2026/internal/catalog"
	"github.com/slam0615/sc2026/internal/schema"
)

// Build assembles the complete result-view payload: the unit snapshot, the
// per-part breakdown, the total score, the matching evaluation band, and the
// static suggestion entries. Callers are expected to run Validate first;
// Build itself scores whatever is in the stores.
func Build(info *basicinfo.Store, ans *answers.Store, cat *catalog.Catalog, version string) *schema.Report {
	categories, total := Score(ans, cat)

	return &schema.Report{
		Tool:        "healthscore",
		Version:     version,
		Unit:        info.Info(),
		Categories:  categories,
		TotalScore:  total,
		Evaluation:  Evaluate(total, cat.Bands),
		Suggestions: cat.Suggestions,
		Meta: schema.Meta{
			ReportID:    uuid.NewString(),
			GeneratedAt: time.Now().UTC(),
		},
	}
}
