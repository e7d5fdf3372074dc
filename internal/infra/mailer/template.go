package mailer

import (
	"bytes"
	"html/template"

	"alert-engine/internal/domain/posting"
	"alert-engine/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

// digestRow is the flat view one posting card renders from.
type digestRow struct {
	Title          string
	Location       string
	ExperienceText string
	EmploymentType string
	ApplyURL       string
	Company        string
}

type digestData struct {
	Name     string
	Postings []digestRow
}

var digestTmpl = template.Must(template.New("digest").Parse(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;background:#f3f4f6;font-family:Arial,Helvetica,sans-serif;">
  <table width="100%" cellpadding="0" cellspacing="0">
    <tr><td align="center" style="padding:24px;">
      <table width="600" cellpadding="0" cellspacing="0" style="background:#ffffff;border-radius:8px;padding:24px;">
        <tr><td>
          <p style="font-size:16px;color:#111827;">Hello {{.Name}},</p>
          <p style="font-size:14px;color:#374151;">
            {{len .Postings}} new job{{if gt (len .Postings) 1}}s{{end}} matching your alert
            {{if gt (len .Postings) 1}}have{{else}}has{{end}} been published since your last digest.
          </p>
          {{range .Postings}}
          <table width="100%" cellpadding="0" cellspacing="0" style="border:1px solid #e5e7eb;border-radius:6px;margin:16px 0;">
            <tr><td style="padding:16px;">
              <p style="margin:0;font-size:14px;color:#6b7280;">{{.Company}}</p>
              <h2 style="margin:6px 0 12px;font-size:18px;color:#111827;">{{.Title}}</h2>
              {{if .Location}}<p style="margin:4px 0;font-size:14px;">📍 {{.Location}}</p>{{end}}
              {{if .ExperienceText}}<p style="margin:4px 0;font-size:14px;">🕒 {{.ExperienceText}}</p>{{end}}
              {{if .EmploymentType}}<p style="margin:4px 0;font-size:14px;">💼 {{.EmploymentType}}</p>{{end}}
              {{if .ApplyURL}}
              <a href="{{.ApplyURL}}"
                 style="display:inline-block;margin-top:16px;padding:10px 18px;background:#2563eb;color:#ffffff;text-decoration:none;border-radius:4px;font-size:14px;">
                View job
              </a>
              {{end}}
            </td></tr>
          </table>
          {{end}}
          <p style="font-size:12px;color:#6b7280;">
            You receive this digest because you saved a job alert. Matches are
            sourced directly from the employers' careers pages.
          </p>
        </td></tr>
      </table>
    </td></tr>
  </table>
</body>
</html>
`))

func renderDigest(name string, postings []*posting.Posting) (string, error) {
	data := digestData{Name: name, Postings: make([]digestRow, 0, len(postings))}
	for _, p := range postings {
		var row digestRow
		if err := copier.Copy(&row, p); err != nil {
			return "", errs.Wrap(err, "failed to build digest row")
		}
		row.Company = p.Organization.Name
		data.Postings = append(data.Postings, row)
	}

	var buf bytes.Buffer
	if err := digestTmpl.Execute(&buf, data); err != nil {
		return "", errs.Wrap(err, "failed to render digest template")
	}
	return buf.String(), nil
}
