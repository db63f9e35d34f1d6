package report

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/a11y/aggregate"
	"github.com/tsawler/a11y/detect"
)

// maxHTMLIssueRows caps the detail table in the HTML report.
const maxHTMLIssueRows = 500

// HTML renders the report as a standalone HTML page built from a node tree
// and serialized with html.Render.
func HTML(d *Data) (string, error) {
	s := d.Summary

	doc := elem(atom.Html, nil)

	head := elem(atom.Head, nil)
	head.AppendChild(&html.Node{Type: html.ElementNode, DataAtom: atom.Meta, Data: "meta",
		Attr: []html.Attribute{{Key: "charset", Val: "utf-8"}}})
	title := elem(atom.Title, nil)
	title.AppendChild(textNode(fmt.Sprintf("Accessibility report: %s", d.Document)))
	head.AppendChild(title)
	style := elem(atom.Style, nil)
	style.AppendChild(textNode(reportCSS))
	head.AppendChild(style)
	doc.AppendChild(head)

	body := elem(atom.Body, nil)
	doc.AppendChild(body)

	h1 := elem(atom.H1, nil)
	h1.AppendChild(textNode("PDF Accessibility Report"))
	body.AppendChild(h1)

	meta := elem(atom.P, []html.Attribute{{Key: "class", Val: "meta"}})
	meta.AppendChild(textNode(fmt.Sprintf("Document: %s — generated %s",
		d.Path, d.GeneratedAt.Format("2006-01-02 15:04:05"))))
	body.AppendChild(meta)

	body.AppendChild(summaryList(d))

	if len(d.Issues) == 0 {
		ok := elem(atom.P, []html.Attribute{{Key: "class", Val: "ok"}})
		ok.AppendChild(textNode("No accessibility issues found."))
		body.AppendChild(ok)
	} else {
		body.AppendChild(sectionHeading("Distribution by type and severity"))
		body.AppendChild(distributionTable(s))

		body.AppendChild(sectionHeading("Issues"))
		body.AppendChild(issueTable(d.Issues))

		if len(d.ColorIssues) > 0 {
			body.AppendChild(sectionHeading("Problem colors"))
			body.AppendChild(colorTable(d.ColorIssues))
		}
	}

	var b strings.Builder
	if err := html.Render(&b, doc); err != nil {
		return "", fmt.Errorf("rendering html report: %w", err)
	}
	return "<!DOCTYPE html>\n" + b.String(), nil
}

const reportCSS = `
body { font-family: sans-serif; margin: 2em; color: #222; }
table { border-collapse: collapse; margin: 1em 0; }
th, td { border: 1px solid #ccc; padding: 4px 8px; text-align: left; }
th { background: #f0f0f0; }
.meta { color: #666; }
.ok { color: #060; }
td.high { color: #a00; font-weight: bold; }
td.medium { color: #a60; }
td.low { color: #060; }
`

func elem(a atom.Atom, attrs []html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func sectionHeading(title string) *html.Node {
	h := elem(atom.H2, nil)
	h.AppendChild(textNode(title))
	return h
}

func summaryList(d *Data) *html.Node {
	s := d.Summary
	ul := elem(atom.Ul, nil)
	items := []string{
		fmt.Sprintf("Total issues: %d places", s.Overall.TotalPlaces),
		fmt.Sprintf("Total affected words: %d", s.Overall.TotalWords),
		fmt.Sprintf("Pages affected: %d", len(s.Overall.PagesWithIssues)),
	}
	for _, item := range items {
		li := elem(atom.Li, nil)
		li.AppendChild(textNode(item))
		ul.AppendChild(li)
	}
	return ul
}

func distributionTable(s *aggregate.Summary) *html.Node {
	table := elem(atom.Table, nil)
	table.AppendChild(headerRow("Type", "High", "Medium", "Low", "Total places", "Total words"))

	types := make([]detect.IssueType, 0, len(s.ByTypeSeverity))
	for t := range s.ByTypeSeverity {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		a, c := s.ByTypeSeverity[types[i]].Total(), s.ByTypeSeverity[types[j]].Total()
		if a.Places != c.Places {
			return a.Places > c.Places
		}
		return types[i] < types[j]
	})

	for _, t := range types {
		breakdown := s.ByTypeSeverity[t]
		total := breakdown.Total()
		if total.Places == 0 {
			continue
		}
		tr := elem(atom.Tr, nil)
		tr.AppendChild(cell(t.Label(), ""))
		tr.AppendChild(cell(fmt.Sprintf("%d", breakdown.High.Places), "high"))
		tr.AppendChild(cell(fmt.Sprintf("%d", breakdown.Medium.Places), "medium"))
		tr.AppendChild(cell(fmt.Sprintf("%d", breakdown.Low.Places), "low"))
		tr.AppendChild(cell(fmt.Sprintf("%d", total.Places), ""))
		tr.AppendChild(cell(fmt.Sprintf("%d", total.Words), ""))
		table.AppendChild(tr)
	}
	return table
}

func issueTable(issues []detect.Issue) *html.Node {
	table := elem(atom.Table, nil)
	table.AppendChild(headerRow("Page", "Severity", "Type", "Text", "Description"))

	limit := len(issues)
	if limit > maxHTMLIssueRows {
		limit = maxHTMLIssueRows
	}
	for _, issue := range issues[:limit] {
		tr := elem(atom.Tr, nil)
		tr.AppendChild(cell(fmt.Sprintf("%d", issue.Page), ""))
		tr.AppendChild(cell(string(issue.Severity), string(issue.Severity)))
		tr.AppendChild(cell(issue.Type.Label(), ""))
		tr.AppendChild(cell(issue.Text, ""))
		tr.AppendChild(cell(issue.Description, ""))
		table.AppendChild(tr)
	}
	return table
}

func colorTable(colorIssues []detect.ColorIssue) *html.Node {
	table := elem(atom.Table, nil)
	table.AppendChild(headerRow("Page", "Color", "Contrast", "Required", "Text"))

	rows := colorIssues
	if len(rows) > MaxJSONColorIssues {
		rows = rows[:MaxJSONColorIssues]
	}
	for _, ci := range rows {
		tr := elem(atom.Tr, nil)
		tr.AppendChild(cell(fmt.Sprintf("%d", ci.Page), ""))
		tr.AppendChild(cell(string(ci.Bucket), ""))
		tr.AppendChild(cell(fmt.Sprintf("%.1f:1", ci.Ratio), ""))
		tr.AppendChild(cell(fmt.Sprintf("%.1f:1", ci.Required), ""))
		tr.AppendChild(cell(ci.TextSample, ""))
		table.AppendChild(tr)
	}
	return table
}

func headerRow(titles ...string) *html.Node {
	tr := elem(atom.Tr, nil)
	for _, t := range titles {
		th := elem(atom.Th, nil)
		th.AppendChild(textNode(t))
		tr.AppendChild(th)
	}
	return tr
}

func cell(text, class string) *html.Node {
	var attrs []html.Attribute
	if class != "" {
		attrs = []html.Attribute{{Key: "class", Val: class}}
	}
	td := elem(atom.Td, attrs)
	td.AppendChild(textNode(text))
	return td
}
