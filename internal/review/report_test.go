package review

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/slam0615/sc2026/internal/answers"
	"github.com/slam0615/sc2026/internal/catalog"
)

func TestBuild(t *testing.T) {
	cat := catalog.Default()
	info := namedInfo(t)
	ans := answeredExcept(cat)

	before := time.Now().UTC()
	rep := Build(info, ans, cat, "1.2.3")
	after := time.Now().UTC()

	if rep.Tool != "healthscore" || rep.Version != "1.2.3" {
		t.Errorf("Tool, Version = %q, %q", rep.Tool, rep.Version)
	}
	if rep.Unit.UnitName != "測試單位" {
		t.Errorf("Unit.UnitName = %q", rep.Unit.UnitName)
	}
	if rep.TotalScore != cat.MaxScore() {
		t.Errorf("TotalScore = %d, want %d", rep.TotalScore, cat.MaxScore())
	}
	if !strings.HasPrefix(rep.Evaluation.Title, "典範職場") {
		t.Errorf("Evaluation.Title = %q", rep.Evaluation.Title)
	}
	if len(rep.Categories) != len(cat.Parts) {
		t.Errorf("len(Categories) = %d, want %d", len(rep.Categories), len(cat.Parts))
	}
	if len(rep.Suggestions) != len(cat.Suggestions) {
		t.Errorf("len(Suggestions) = %d, want %d", len(rep.Suggestions), len(cat.Suggestions))
	}
	if _, err := uuid.Parse(rep.Meta.ReportID); err != nil {
		t.Errorf("ReportID %q is not a UUID: %v", rep.Meta.ReportID, err)
	}
	if rep.Meta.GeneratedAt.Before(before) || rep.Meta.GeneratedAt.After(after) {
		t.Errorf("GeneratedAt = %v outside [%v, %v]", rep.Meta.GeneratedAt, before, after)
	}
}

func TestBuild_MaxScore(t *testing.T) {
	rep := Build(namedInfo(t), answers.New(), catalog.Default(), "dev")
	if got := rep.MaxScore(); got != 100 {
		t.Errorf("MaxScore = %d, want 100", got)
	}
	if rep.TotalScore != 0 {
		t.Errorf("TotalScore = %d, want 0", rep.TotalScore)
	}
	if !strings.HasPrefix(rep.Evaluation.Title, "起步職場") {
		t.Errorf("Evaluation.Title = %q", rep.Evaluation.Title)
	}
}
