package view

import (
	"html/template"
	"io"
)

// pageHTML renders a full mockup page. Interactive elements carry
// data-intent attributes; the serving layer wires those to controller
// dispatches.
const pageHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<link rel="stylesheet" href="/static/mockview.css">
</head>
<body>
<h1>{{.Title}}</h1>
{{range .Widgets}}{{template "widget" .}}{{end}}
<script src="/static/mockview.js"></script>
</body>
</html>

{{define "widget"}}
{{if eq .Kind "heading"}}<h2>{{.Label}}</h2>
{{else if eq .Kind "badge"}}<span class="badge badge-{{.Color}}">{{.Label}}</span>
{{else if eq .Kind "chip"}}<span class="chip">{{.Label}}{{if .Value}}: {{.Value}}{{end}}</span>
{{else if eq .Kind "status"}}<span class="status status-{{.Color}}">{{.Label}}</span>
{{else if eq .Kind "note"}}<p class="note">{{.Value}}</p>
{{else if .Table}}{{template "table" .Table}}
{{end}}
{{end}}

{{define "table"}}
<div class="grid" id="grid-{{.ID}}" data-grid="{{.ID}}"{{if .Loading}} data-loading="true"{{end}}>
<table>
<thead>
<tr>
{{range .Columns}}<th style="width:{{.Width}}px"{{if .Align}} class="align-{{.Align}}"{{end}}{{if gt .Colspan 1}} colspan="{{.Colspan}}"{{end}}{{if gt .Rowspan 1}} rowspan="{{.Rowspan}}"{{end}}{{if .Sortable}} data-intent="sort" data-column="{{.ID}}"{{end}}>{{.Label}}{{if eq .Sorted "asc"}} &#9650;{{else if eq .Sorted "desc"}} &#9660;{{end}}{{if .Resizable}}<span class="resize-handle" data-intent="resize" data-column="{{.ID}}"></span>{{end}}</th>
{{end}}</tr>
</thead>
<tbody>
{{range .Sections}}{{if .HasHeader}}<tr class="group-header{{if .Collapsed}} collapsed{{end}}" data-intent="group-toggle" data-group="{{.Group}}"><td colspan="99">{{.Group}} ({{.Count}})</td></tr>
{{end}}{{range .Rows}}<tr data-row="{{.ID}}" data-intent="select"{{if .Selected}} class="selected"{{end}}>
{{range .Cells}}<td{{if gt .Colspan 1}} colspan="{{.Colspan}}"{{end}}{{if gt .Rowspan 1}} rowspan="{{.Rowspan}}"{{end}}{{if .Align}} class="align-{{.Align}}"{{end}}{{if .Color}} data-color="{{.Color}}"{{end}}>{{.Text}}</td>{{end}}
</tr>
{{end}}{{end}}</tbody>
</table>
<div class="pager">
<button data-intent="page" data-page="{{pagePrev .Pager.Page}}"{{if eq .Pager.Page 0}} disabled{{end}}>prev</button>
<span>page {{pageHuman .Pager.Page}} of {{.Pager.Pages}} ({{.Pager.Total}} rows{{if .SelectionCount}}, {{.SelectionCount}} selected{{end}})</span>
<button data-intent="page" data-page="{{pageNext .Pager.Page}}"{{if eq (pageHuman .Pager.Page) .Pager.Pages}} disabled{{end}}>next</button>
</div>
</div>
{{end}}`

var pageTmpl = template.Must(template.New("page").Funcs(template.FuncMap{
	"pagePrev":  func(p int) int { return p - 1 },
	"pageNext":  func(p int) int { return p + 1 },
	"pageHuman": func(p int) int { return p + 1 },
}).Parse(pageHTML))

// RenderPage writes the full HTML document for a page model.
func RenderPage(w io.Writer, page Page) error {
	return pageTmpl.ExecuteTemplate(w, "page", page)
}

// RenderTable writes just the grid fragment for one table view. The serve
// layer returns this from intent endpoints so the client can swap the grid
// without reloading the page.
func RenderTable(w io.Writer, tv TableView) error {
	return pageTmpl.ExecuteTemplate(w, "table", tv)
}
