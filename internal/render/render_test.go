package render

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/slam0615/sc2026/internal/schema"
)

func sampleReport(t *testing.T) *schema.Report {
	t.Helper()
	return &schema.Report{
		Tool:    "healthscore",
		Version: "test",
		Unit: schema.BasicInfo{
			UnitName: "示範股份有限公司",
			City:     "臺北市",
			Scale:    schema.ScaleMedium,
			Industry: "製造業",
		},
		Categories: []schema.CategoryResult{
			{Part: 1, Title: "健康政策與組織支持", Earned: 20, Total: 30, Percentage: 100.0 / 1.5},
			{Part: 2, Title: "健康飲食", Earned: 0, Total: 14, Percentage: 0},
		},
		TotalScore: 20,
		Evaluation: schema.EvaluationBand{Low: 0, High: 49, Title: "起步職場", Content: "仍有許多進步空間。"},
		Suggestions: []schema.Suggestion{
			{Icon: "Briefcase", Title: "健康管理制度", Content: "建立職場健康促進推動小組。"},
		},
		Meta: schema.Meta{
			ReportID:    "7c9a1c36-0000-4000-8000-000000000000",
			GeneratedAt: time.Date(2026, 3, 15, 8, 30, 0, 0, time.UTC),
		},
	}
}

func TestNewRenderer(t *testing.T) {
	for _, format := range []string{"json", "md", "html"} {
		if _, err := NewRenderer(format); err != nil {
			t.Errorf("NewRenderer(%q): %v", format, err)
		}
	}
	if _, err := NewRenderer("pdf"); err == nil {
		t.Error("NewRenderer(pdf): expected error, got nil")
	} else if !strings.Contains(err.Error(), "json, md, html") {
		t.Errorf("error does not list supported formats: %v", err)
	}
}

func TestJSONRenderer(t *testing.T) {
	r, err := NewRenderer("json")
	if err != nil {
		t.Fatal(err)
	}
	out, err := r.Render(sampleReport(t))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	var decoded schema.Report
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.TotalScore != 20 || decoded.Unit.UnitName != "示範股份有限公司" {
		t.Errorf("round trip mismatch: %+v", decoded)
	}
	if decoded.Meta.ReportID != "7c9a1c36-0000-4000-8000-000000000000" {
		t.Errorf("ReportID = %q", decoded.Meta.ReportID)
	}
}

func TestMarkdownRenderer(t *testing.T) {
	r, err := NewRenderer("md")
	if err != nil {
		t.Fatal(err)
	}
	out, err := r.Render(sampleReport(t))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	text := string(out)
	for _, want := range []string{
		"# 示範股份有限公司｜職場健康促進表現評估結果",
		"**總得分：** 20 / 44",
		"**單位規模：** 中型職場｜製造業",
		"| 健康政策與組織支持 | 20 / 30 | 67% ",
		"| 健康飲食 | 0 / 14 | 0% ░░░░░░░░░░ |",
		"## 起步職場",
		"### 健康管理制度",
		"報告編號：7c9a1c36-0000-4000-8000-000000000000",
		"產生時間：2026-03-15 08:30 UTC",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("markdown output missing %q\n%s", want, text)
		}
	}
}

func TestHTMLRenderer(t *testing.T) {
	r, err := NewRenderer("html")
	if err != nil {
		t.Fatal(err)
	}
	out, err := r.Render(sampleReport(t))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	text := string(out)
	for _, want := range []string{
		"<!DOCTYPE html>",
		`<html lang="zh-Hant">`,
		"<title>示範股份有限公司｜職場健康促進表現評估結果</title>",
		"@media print",
		"<table>", // GFM table extension must be active
		"<h2>起步職場</h2>",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("html output missing %q", want)
		}
	}
}

func TestBar(t *testing.T) {
	cases := []struct {
		pct  float64
		want string
	}{
		{0, "░░░░░░░░░░"},
		{100, "██████████"},
		{50, "█████░░░░░"},
		{66.6, "███████░░░"},
		{4, "░░░░░░░░░░"},
		{5, "█░░░░░░░░░"},
	}
	for _, tc := range cases {
		if got := bar(tc.pct); got != tc.want {
			t.Errorf("bar(%v) = %q, want %q", tc.pct, got, tc.want)
		}
	}
}
