package web

import (
	"html/template"

	"github.com/quantrail/fundgen/internal/reports"
)

type indexData struct {
	FundTypes    []string
	Reports      []reports.Definition
	DefaultCount int
	CanUpload    bool
}

type resultsData struct {
	SessionID string
	FundType  string
	Uploaded  bool
	Tables    []resultTable
}

type resultTable struct {
	Name      string
	Rows      int
	Filename  string
	UploadErr string
}

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<title>fundgen</title>
<style>
body { font-family: sans-serif; max-width: 48em; margin: 2em auto; color: #222; }
fieldset { border: 1px solid #ccc; margin-bottom: 1em; }
label { display: block; margin: 0.25em 0; }
.inline label { display: inline; margin-right: 1.5em; }
button { padding: 0.5em 1.5em; }
</style>
</head>
<body>
<h1>fundgen</h1>
<p>Generate synthetic fund-management datasets.</p>
<form method="post" action="/generate">
<fieldset>
<legend>Fund type</legend>
<select name="fund_type">
<option value="">All types</option>
{{range .FundTypes}}<option value="{{.}}">{{.}}</option>
{{end}}</select>
</fieldset>
<fieldset>
<legend>Reports</legend>
{{range .Reports}}<label><input type="checkbox" name="reports" value="{{.Name}}" checked> {{.Name}} &mdash; {{.Description}}</label>
{{end}}</fieldset>
<fieldset>
<legend>Options</legend>
<label>Base record count <input type="number" name="count" value="{{.DefaultCount}}" min="1" max="1000"></label>
<label>Seed (0 = random) <input type="number" name="seed" value="0" min="0"></label>
{{if .CanUpload}}<div class="inline">
<label><input type="checkbox" name="upload" checked> Upload to database</label>
<label><input type="checkbox" name="truncate" checked> Truncate tables first</label>
</div>{{end}}
</fieldset>
<button type="submit">Generate</button>
</form>
</body>
</html>
`))

var resultsTmpl = template.Must(template.New("results").Parse(`<!DOCTYPE html>
<html>
<head>
<title>fundgen results</title>
<style>
body { font-family: sans-serif; max-width: 48em; margin: 2em auto; color: #222; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 0.4em 0.8em; text-align: left; }
.err { color: #a00; }
</style>
</head>
<body>
<h1>Generated datasets</h1>
<p>Fund type: <strong>{{.FundType}}</strong>{{if .Uploaded}} &middot; uploaded to database{{end}}</p>
<table>
<tr><th>Table</th><th>Rows</th><th>Download</th>{{if .Uploaded}}<th>Upload</th>{{end}}</tr>
{{$sid := .SessionID}}{{$uploaded := .Uploaded}}{{range .Tables}}<tr>
<td>{{.Name}}</td>
<td>{{.Rows}}</td>
<td><a href="/download/{{$sid}}/{{.Name}}">{{.Filename}}</a></td>
{{if $uploaded}}<td>{{if .UploadErr}}<span class="err">{{.UploadErr}}</span>{{else}}ok{{end}}</td>{{end}}
</tr>
{{end}}</table>
<p><a href="/">Back</a></p>
</body>
</html>
`))
