package submission

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/slam0615/sc2026/internal/answers"
	"github.com/slam0615/sc2026/internal/basicinfo"
	"github.com/slam0615/sc2026/internal/schema"
)

func writeSubmission(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "submission.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

const sampleYAML = `basic_info:
  unit_name: 示範股份有限公司
  tax_id: "12345678"
  city: 臺中市
  district: 西屯區
  unit_type: 民間企業
  industry: 製造業
  employees_male: 80
  employees_female: 45
  contact_name: 林小華
  contact_email: hr@example.com.tw
answers:
  1: true
  2: false
  7: true
`

func TestLoad(t *testing.T) {
	f, err := Load(writeSubmission(t, sampleYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.BasicInfo.UnitName != "示範股份有限公司" {
		t.Errorf("UnitName = %q", f.BasicInfo.UnitName)
	}
	if f.BasicInfo.EmployeesMale != 80 || f.BasicInfo.EmployeesFemale != 45 {
		t.Errorf("employee counts = %d, %d", f.BasicInfo.EmployeesMale, f.BasicInfo.EmployeesFemale)
	}
	if len(f.Answers) != 3 || !f.Answers[1] || f.Answers[2] {
		t.Errorf("Answers = %v", f.Answers)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, err := Load(writeSubmission(t, "basic_info: [unterminated"))
	if err == nil {
		t.Fatal("expected parse error, got nil")
	}
	if !strings.Contains(err.Error(), "parsing submission") {
		t.Errorf("error = %v", err)
	}
}

func TestPopulate(t *testing.T) {
	f, err := Load(writeSubmission(t, sampleYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	info := basicinfo.New()
	ans := answers.New()
	if err := f.Populate(info, ans); err != nil {
		t.Fatalf("Populate: %v", err)
	}

	got := info.Info()
	if got.UnitName != "示範股份有限公司" || got.City != "臺中市" {
		t.Errorf("record = %+v", got)
	}
	// District is applied after the city, so the city-change reset must not
	// wipe it.
	if got.District != "西屯區" {
		t.Errorf("District = %q, want 西屯區", got.District)
	}
	// 125 employees total derives the medium scale.
	if got.Scale != schema.ScaleMedium {
		t.Errorf("Scale = %q, want %q", got.Scale, schema.ScaleMedium)
	}

	if ans.Get(1) != schema.AnswerYes {
		t.Errorf("answer 1 = %v", ans.Get(1))
	}
	if ans.Get(2) != schema.AnswerNo {
		t.Errorf("answer 2 = %v", ans.Get(2))
	}
	if ans.Get(3) != schema.AnswerUnanswered {
		t.Errorf("answer 3 = %v", ans.Get(3))
	}
}

func TestPopulate_EmptyDocument(t *testing.T) {
	f, err := Load(writeSubmission(t, "{}\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	info := basicinfo.New()
	ans := answers.New()
	if err := f.Populate(info, ans); err != nil {
		t.Fatalf("Populate: %v", err)
	}
	if info.Info().UnitName != "" || ans.Answered() != 0 {
		t.Errorf("empty document populated state: %+v, %d answers", info.Info(), ans.Answered())
	}
}
