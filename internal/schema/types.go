package schema

import "time"

// Question is a single yes/no item in the questionnaire catalog.
type Question struct {
	ID     int    `json:"id" yaml:"id"`
	Part   int    `json:"part" yaml:"part"`
	Text   string `json:"text" yaml:"text"`
	Note   string `json:"note,omitempty" yaml:"note,omitempty"` // supplementary warning shown under the question
	Points int    `json:"points" yaml:"points"`
}

// Part is one of the five weighted question groupings. Points is the declared
// budget for the part and must equal the sum of its questions' points.
type Part struct {
	ID     int    `json:"id" yaml:"id"`
	Title  string `json:"title" yaml:"title"`
	Points int    `json:"points" yaml:"points"`
}

// Answer is the tri-state value of one question.
type Answer string

const (
	AnswerUnanswered Answer = "unanswered"
	AnswerYes        Answer = "yes"
	AnswerNo         Answer = "no"
)

// Scale is the derived workplace-size label computed from total headcount.
type Scale string

const (
	ScaleSmall  Scale = "小型職場"
	ScaleMedium Scale = "中型職場"
	ScaleLarge  Scale = "大型職場"
)

// ScaleFor maps a total employee count to its workplace-size label.
// Thresholds: ≥ 300 large, ≥ 100 medium, otherwise small.
func ScaleFor(total int) Scale {
	switch {
	case total >= 300:
		return ScaleLarge
	case total >= 100:
		return ScaleMedium
	default:
		return ScaleSmall
	}
}

// BasicInfo is the organizational record collected on the basic-info view.
// Scale is derived from the two employee counts and is never set directly.
type BasicInfo struct {
	UnitName        string `json:"unit_name" yaml:"unit_name"`
	TaxID           string `json:"tax_id" yaml:"tax_id"`
	City            string `json:"city" yaml:"city"`
	District        string `json:"district" yaml:"district"`
	UnitType        string `json:"unit_type" yaml:"unit_type"`
	UnitTypeOther   string `json:"unit_type_other,omitempty" yaml:"unit_type_other,omitempty"`
	SchoolType      string `json:"school_type,omitempty" yaml:"school_type,omitempty"`
	HospitalType    string `json:"hospital_type,omitempty" yaml:"hospital_type,omitempty"`
	Industry        string `json:"industry" yaml:"industry"`
	EmployeesMale   int    `json:"employees_male" yaml:"employees_male"`
	EmployeesFemale int    `json:"employees_female" yaml:"employees_female"`
	Scale           Scale  `json:"scale" yaml:"scale"`
	ContactName     string `json:"contact_name" yaml:"contact_name"`
	ContactDept     string `json:"contact_dept" yaml:"contact_dept"`
	ContactTitle    string `json:"contact_title" yaml:"contact_title"`
	ContactPhone    string `json:"contact_phone" yaml:"contact_phone"`
	ContactEmail    string `json:"contact_email" yaml:"contact_email"`
}

// CategoryResult is the per-part score breakdown, recomputed on demand and
// never cached across answer mutations.
type CategoryResult struct {
	Part       int     `json:"part"`
	Title      string  `json:"title"`
	Earned     int     `json:"earned"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// EvaluationBand maps an inclusive score range to a narrative evaluation.
// The catalog's band table must partition [0,100] with no gaps or overlaps.
type EvaluationBand struct {
	Low     int    `json:"low" yaml:"low"`
	High    int    `json:"high" yaml:"high"`
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
}

// Contains reports whether score falls inside the band's inclusive range.
func (b EvaluationBand) Contains(score int) bool {
	return score >= b.Low && score <= b.High
}

// Suggestion is a static advice entry shown on the result view.
type Suggestion struct {
	Icon    string `json:"icon" yaml:"icon"`
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
}

// City is one locality with its selectable districts.
type City struct {
	Name      string   `json:"name" yaml:"name"`
	Districts []string `json:"districts" yaml:"districts"`
}

// Report is the complete result-view payload produced after a successful
// submission.
type Report struct {
	Tool        string           `json:"tool"`
	Version     string           `json:"version"`
	Unit        BasicInfo        `json:"unit"`
	Categories  []CategoryResult `json:"categories"`
	TotalScore  int              `json:"total_score"`
	Evaluation  EvaluationBand   `json:"evaluation"`
	Suggestions []Suggestion     `json:"suggestions"`
	Meta        Meta             `json:"meta"`
}

// MaxScore returns the total possible points across all categories.
func (r *Report) MaxScore() int {
	total := 0
	for _, c := range r.Categories {
		total += c.Total
	}
	return total
}

// Meta holds generation metadata for a report.
type Meta struct {
	ReportID    string    `json:"report_id"`
	GeneratedAt time.Time `json:"generated_at"`
}
