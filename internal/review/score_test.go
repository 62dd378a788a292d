package review

import (
	"testing"

	"github.com/slam0615/sc2026/internal/answers"
	"github.com/slam0615/sc2026/internal/catalog"
	"github.com/slam0615/sc2026/internal/schema"
)

func TestScore_AllYes(t *testing.T) {
	cat := catalog.Default()
	ans := answers.New()
	for _, q := range cat.Questions {
		ans.Set(q.ID, true)
	}

	results, total := Score(ans, cat)
	if total != cat.MaxScore() {
		t.Errorf("total = %d, want %d", total, cat.MaxScore())
	}
	if len(results) != len(cat.Parts) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(cat.Parts))
	}
	for _, r := range results {
		if r.Earned != r.Total {
			t.Errorf("part %d: earned %d of %d", r.Part, r.Earned, r.Total)
		}
		if r.Percentage != 100 {
			t.Errorf("part %d: percentage = %v, want 100", r.Part, r.Percentage)
		}
	}
}

func TestScore_AllNo(t *testing.T) {
	cat := catalog.Default()
	ans := answers.New()
	for _, q := range cat.Questions {
		ans.Set(q.ID, false)
	}

	results, total := Score(ans, cat)
	if total != 0 {
		t.Errorf("total = %d, want 0", total)
	}
	for _, r := range results {
		if r.Earned != 0 || r.Percentage != 0 {
			t.Errorf("part %d: earned = %d, pct = %v", r.Part, r.Earned, r.Percentage)
		}
	}
}

func TestScore_UnansweredScoresZero(t *testing.T) {
	cat := catalog.Default()
	_, total := Score(answers.New(), cat)
	if total != 0 {
		t.Errorf("total = %d, want 0", total)
	}
}

func TestScore_Partial(t *testing.T) {
	cat := catalog.Default()
	ans := answers.New()
	// Part 1: questions 1..6 at 5 points each. Yes to three of them.
	ans.Set(1, true)
	ans.Set(2, true)
	ans.Set(3, true)
	ans.Set(4, false)
	// Part 2: question 7 (5 pts) yes, 8 and 9 no or unanswered.
	ans.Set(7, true)
	ans.Set(8, false)

	results, total := Score(ans, cat)
	if total != 20 {
		t.Errorf("total = %d, want 20", total)
	}
	if r := results[0]; r.Earned != 15 || r.Total != 30 || r.Percentage != 50 {
		t.Errorf("part 1 = %+v", r)
	}
	if r := results[1]; r.Earned != 5 || r.Total != 14 {
		t.Errorf("part 2 = %+v", r)
	}
}

func TestScore_TotalIsSumOfEarned(t *testing.T) {
	cat := catalog.Default()
	ans := answers.New()
	for _, q := range cat.Questions {
		ans.Set(q.ID, q.ID%2 == 0)
	}

	results, total := Score(ans, cat)
	sum := 0
	for _, r := range results {
		sum += r.Earned
	}
	if total != sum {
		t.Errorf("total = %d, sum of earned = %d", total, sum)
	}
}

func TestScore_PartOrderIsDeclarationOrder(t *testing.T) {
	cat := catalog.Default()
	results, _ := Score(answers.New(), cat)
	for i, r := range results {
		if r.Part != cat.Parts[i].ID {
			t.Errorf("results[%d].Part = %d, want %d", i, r.Part, cat.Parts[i].ID)
		}
		if r.Title != cat.Parts[i].Title {
			t.Errorf("results[%d].Title = %q, want %q", i, r.Title, cat.Parts[i].Title)
		}
	}
}

func TestScore_ZeroBudgetPart(t *testing.T) {
	cat := &catalog.Catalog{
		Parts: []schema.Part{
			{ID: 1, Title: "有題", Points: 2},
			{ID: 2, Title: "無題", Points: 0},
		},
		Questions: []schema.Question{
			{ID: 1, Part: 1, Text: "x", Points: 2},
		},
	}
	ans := answers.New()
	ans.Set(1, true)

	results, total := Score(ans, cat)
	if total != 2 {
		t.Errorf("total = %d, want 2", total)
	}
	if r := results[1]; r.Percentage != 0 || r.Total != 0 {
		t.Errorf("empty part = %+v, want zero percentage", r)
	}
}

func TestScore_UnknownAnswersIgnored(t *testing.T) {
	cat := catalog.Default()
	ans := answers.New()
	ans.Set(999, true)
	_, total := Score(ans, cat)
	if total != 0 {
		t.Errorf("total = %d, want 0", total)
	}
}
