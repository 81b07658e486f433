// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/google/safehtml/template"
)

var htmlTemplate = template.Must(template.New("").Funcs(template.FuncMap{
	"num":   num,
	"yesno": yesNo,
}).Parse(`
<table class='bidstat'>
<caption>{{.Metric}}</caption>
{{- if .HasDescribe}}
<tbody class='describe'>
<tr><th>group<th>n<th>mean<th>std<th>min<th>25%<th>50%<th>75%<th>max
{{range .Groups}}{{$label := .Label}}{{with .Describe -}}
<tr><td>{{$label}}<td>{{.N}}<td>{{num .Mean}}<td>{{num .StdDev}}<td>{{num .Min}}<td>{{num .Q1}}<td>{{num .Median}}<td>{{num .Q3}}<td>{{num .Max}}
{{end}}{{end -}}
</tbody>
{{- end}}
<tbody class='normality'>
<tr><th>group<th>n<th>mean<th>95% CI<th>Shapiro-Wilk W<th>p<th>normal
{{range .Groups -}}
<tr class='{{if .Normality.Normal}}normal{{else}}nonnormal{{end}}'><td>{{.Label}}<td>{{.N}}<td>{{num .CI.Center}}<td>[{{num .CI.Lo}}, {{num .CI.Hi}}]<td>{{num .Normality.W}}<td>{{num .Normality.P}}<td>{{yesno .Normality.Normal}}
{{end -}}
</tbody>
<tbody class='variance'>
{{with .Result.Assumptions.Variance -}}
<tr><th>Levene ({{.Center}})<td>{{num .Stat}}<td>{{num .P}}<td>equal variances: {{yesno .Equal}}
{{end -}}
</tbody>
<tbody class='comparison'>
<tr><th>method<th>statistic<th>p<th>decision<th>higher
{{with .Result -}}
<tr class='{{if .Verdict.Significant}}significant{{else}}insignificant{{end}}'><td>{{.Outcome.Method}}<td>{{num .Outcome.Statistic}}<td>{{num .Outcome.P}}<td>{{.Verdict.Decision}}<td>{{$.Higher}}
{{end -}}
</tbody>
</table>
`))

type htmlData struct {
	*report
}

func (d htmlData) HasDescribe() bool { return d.hasDescribe() }

func (d htmlData) Higher() string { return d.higher() }

func formatHTML(w io.Writer, r *report) error {
	return htmlTemplate.Execute(w, htmlData{r})
}
