package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/slam0615/sc2026/internal/schema"
)

// htmlRenderer produces a self-contained printable page: the markdown report
// converted to HTML and wrapped in a minimal print stylesheet. Saving it to
// PDF is delegated to the host platform's print facility.
type htmlRenderer struct{}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="zh-Hant">
<head>
<meta charset="utf-8">
<title>{{ .Title }}</title>
<style>
body { font-family: "Noto Sans TC", "PingFang TC", sans-serif; max-width: 52rem; margin: 2rem auto; padding: 0 1rem; color: #1f2937; line-height: 1.7; }
h1 { border-bottom: 2px solid #16a34a; padding-bottom: .4rem; }
h2 { color: #166534; margin-top: 2rem; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #d1d5db; padding: .5rem .75rem; }
th { background: #f0fdf4; }
@media print { body { margin: 0; } h2 { break-after: avoid; } }
</style>
</head>
<body>
{{ .Body }}
</body>
</html>
`))

func (r *htmlRenderer) Render(report *schema.Report) ([]byte, error) {
	mdOut, err := (&markdownRenderer{}).Render(report)
	if err != nil {
		return nil, err
	}

	var body bytes.Buffer
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert(mdOut, &body); err != nil {
		return nil, fmt.Errorf("markdown convert: %w", err)
	}

	var page bytes.Buffer
	data := struct {
		Title string
		Body  template.HTML
	}{
		Title: report.Unit.UnitName + "｜職場健康促進表現評估結果",
		Body:  template.HTML(body.String()), // goldmark output of our own template
	}
	if err := pageTemplate.Execute(&page, data); err != nil {
		return nil, fmt.Errorf("rendering page: %w", err)
	}
	return page.Bytes(), nil
}
