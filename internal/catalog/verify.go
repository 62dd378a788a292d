package catalog

import "fmt"

// Verify asserts the static-data invariants the scoring engine assumes:
// parts are unique with non-negative budgets, question IDs are unique and
// positive, every question references a declared part, per-part point sums
// agree with the declared budgets, and the evaluation bands partition the
// full [0, maxScore] range with no gaps or overlaps.
//
// Scoring code does not re-check any of this per call; malformed reference
// data is a startup defect, not a handled runtime error.
func (c *Catalog) Verify() error {
	if len(c.Parts) == 0 {
		return fmt.Errorf("no parts declared")
	}
	if len(c.Questions) == 0 {
		return fmt.Errorf("no questions declared")
	}
	if len(c.Bands) == 0 {
		return fmt.Errorf("no evaluation bands declared")
	}

	budgets := make(map[int]int, len(c.Parts))
	for i, p := range c.Parts {
		prefix := fmt.Sprintf("part[%d]", i)
		if p.ID <= 0 {
			return fmt.Errorf("%s: id %d must be ≥ 1", prefix, p.ID)
		}
		if _, dup := budgets[p.ID]; dup {
			return fmt.Errorf("%s: duplicate part id %d", prefix, p.ID)
		}
		if p.Points < 0 {
			return fmt.Errorf("%s: budget %d must be non-negative", prefix, p.Points)
		}
		if p.Title == "" {
			return fmt.Errorf("%s: title is required", prefix)
		}
		budgets[p.ID] = p.Points
	}

	seen := make(map[int]bool, len(c.Questions))
	sums := make(map[int]int, len(c.Parts))
	for i, q := range c.Questions {
		prefix := fmt.Sprintf("question[%d]", i)
		if q.ID <= 0 {
			return fmt.Errorf("%s: id %d must be ≥ 1", prefix, q.ID)
		}
		if seen[q.ID] {
			return fmt.Errorf("%s: duplicate question id %d", prefix, q.ID)
		}
		seen[q.ID] = true
		if q.Text == "" {
			return fmt.Errorf("%s: text is required", prefix)
		}
		if q.Points < 0 {
			return fmt.Errorf("%s: points %d must be non-negative", prefix, q.Points)
		}
		if _, ok := budgets[q.Part]; !ok {
			return fmt.Errorf("%s: references undeclared part %d", prefix, q.Part)
		}
		sums[q.Part] += q.Points
	}

	maxScore := 0
	for _, p := range c.Parts {
		if sums[p.ID] != p.Points {
			return fmt.Errorf("part %d: declared budget %d but question points sum to %d", p.ID, p.Points, sums[p.ID])
		}
		maxScore += p.Points
	}

	for i, b := range c.Bands {
		if b.Low > b.High {
			return fmt.Errorf("band[%d]: low %d exceeds high %d", i, b.Low, b.High)
		}
		if b.Title == "" {
			return fmt.Errorf("band[%d]: title is required", i)
		}
	}

	// Every reachable total must fall inside exactly one band.
	for score := 0; score <= maxScore; score++ {
		matches := 0
		for _, b := range c.Bands {
			if b.Contains(score) {
				matches++
			}
		}
		switch {
		case matches == 0:
			return fmt.Errorf("evaluation bands leave score %d uncovered", score)
		case matches > 1:
			return fmt.Errorf("evaluation bands overlap at score %d", score)
		}
	}

	return nil
}

// MaxScore returns the sum of all declared part budgets.
func (c *Catalog) MaxScore() int {
	total := 0
	for _, p := range c.Parts {
		total += p.Points
	}
	return total
}
