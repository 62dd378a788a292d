package render

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/slam0615/sc2026/internal/schema"
)

type markdownRenderer struct{}

// bar renders a ten-cell percentage bar for the breakdown table.
func bar(pct float64) string {
	filled := int(pct/10 + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > 10 {
		filled = 10
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

var mdTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"bar": bar,
}).Parse(`# {{ .Unit.UnitName }}｜職場健康促進表現評估結果

**總得分：** {{ .TotalScore }} / {{ .MaxScore }}
{{ if .Unit.Scale }}**單位規模：** {{ .Unit.Scale }}{{ if .Unit.Industry }}｜{{ .Unit.Industry }}{{ end }}
{{ end }}
## 五大構面得分明細

| 構面 | 得分/配分 | 得分率 |
|------|----------:|-------:|
{{ range .Categories }}| {{ .Title }} | {{ .Earned }} / {{ .Total }} | {{ printf "%.0f" .Percentage }}% {{ bar .Percentage }} |
{{ end }}
## {{ .Evaluation.Title }}

{{ .Evaluation.Content }}

## 各項議題詳細建議
{{ range .Suggestions }}
### {{ .Title }}

{{ .Content }}
{{ end }}
---
*報告編號：{{ .Meta.ReportID }}｜產生時間：{{ .Meta.GeneratedAt.Format "2006-01-02 15:04" }} UTC*
`))

func (r *markdownRenderer) Render(report *schema.Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := mdTemplate.Execute(&buf, report); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.Bytes(), nil
}
