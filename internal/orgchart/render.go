package orgchart

import (
	"fmt"
	"html/template"
	"strings"
)

// chartTemplate renders a chart as one standalone HTML document. Everything
// the page needs (styles, toggle script) is inlined; the output must stay
// usable when served as a single file with no network access.
var chartTemplate = template.Must(template.New("chart").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Company}} · Buying Group</title>
<style>
body { font-family: "Segoe UI", Helvetica, Arial, sans-serif; background: #f4f6f8; margin: 0; padding: 24px; }
header { margin-bottom: 24px; }
header h1 { margin: 0; font-size: 22px; color: #1f2a3d; }
header .location { margin: 4px 0 0; color: #5b6b82; font-size: 14px; }
.tree, .tree ul { list-style: none; padding-left: 28px; margin: 0; }
.tree { padding-left: 0; }
.tree li { position: relative; padding: 6px 0 0 18px; }
.tree li::before { content: ""; position: absolute; left: 0; top: 0; bottom: 0; border-left: 2px solid #c3cdd9; }
.tree li::after { content: ""; position: absolute; left: 0; top: 22px; width: 14px; border-top: 2px solid #c3cdd9; }
.tree > li::before, .tree > li::after { border: none; }
.person { display: inline-block; background: #fff; border: 1px solid #d6dee8; border-left: 4px solid #2f6fed; border-radius: 6px; padding: 8px 14px; cursor: pointer; box-shadow: 0 1px 2px rgba(31, 42, 61, 0.08); }
.person .name { display: block; font-weight: 600; color: #1f2a3d; }
.person .designation { display: block; font-size: 13px; color: #5b6b82; }
.person .category { display: inline-block; margin-top: 4px; font-size: 11px; color: #2f6fed; background: #e8effd; border-radius: 10px; padding: 1px 8px; }
li.collapsed > ul { display: none; }
li.collapsed > .person { border-left-color: #9fb0c7; }
</style>
</head>
<body>
<header>
<h1>{{.Company}}</h1>
{{if .Location}}<p class="location">{{.Location}}</p>{{end}}
</header>
<ul class="tree">
{{range .Roots}}{{template "node" .}}{{end}}
</ul>
<script>
document.querySelectorAll(".person").forEach(function (box) {
  box.addEventListener("click", function () {
    box.parentElement.classList.toggle("collapsed");
  });
});
</script>
</body>
</html>
{{define "node"}}<li><div class="person"{{if .Record.Category}} data-category="{{.Record.Category}}"{{end}}><span class="name">{{.Record.Name}}</span>{{if .Record.Designation}}<span class="designation">{{.Record.Designation}}</span>{{end}}{{if .Record.Category}}<span class="category">{{.Record.Category}}</span>{{end}}</div>{{if .Children}}<ul>{{range .Children}}{{template "node" .}}{{end}}</ul>{{end}}</li>
{{end}}`))

// Render produces the self-contained HTML document for a chart.
func Render(chart *Chart) ([]byte, error) {
	var sb strings.Builder
	if err := chartTemplate.Execute(&sb, chart); err != nil {
		return nil, fmt.Errorf("failed to render chart for %s: %w", chart.Company, err)
	}
	return []byte(sb.String()), nil
}
