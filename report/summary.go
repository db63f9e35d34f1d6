package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tsawler/a11y/detect"
)

// Summary renders the short report: totals, severity statistics and the
// three largest issue types.
func Summary(d *Data) string {
	s := d.Summary

	var b strings.Builder
	b.WriteString("PDF ACCESSIBILITY SUMMARY\n")
	b.WriteString(rule('=', 60) + "\n\n")
	fmt.Fprintf(&b, "Document: %s\n", d.Document)
	fmt.Fprintf(&b, "Total issues: %d places\n", s.Overall.TotalPlaces)
	fmt.Fprintf(&b, "Total affected words: %d\n", s.Overall.TotalWords)
	fmt.Fprintf(&b, "Pages affected: %d\n\n", len(s.Overall.PagesWithIssues))

	b.WriteString("SEVERITY STATISTICS:\n")
	b.WriteString(rule('-', 40) + "\n")
	for _, sev := range detect.AllSeverities {
		group := s.BySeverity[sev]
		if group == nil || group.Places == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s: %d places (%d words)\n", severityLabel(sev), group.Places, group.Words)
	}

	b.WriteString("\nTOP ISSUE TYPES:\n")
	b.WriteString(rule('-', 40) + "\n")

	types := make([]detect.IssueType, 0, len(s.ByType))
	for t := range s.ByType {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		a, c := s.ByType[types[i]], s.ByType[types[j]]
		if a.TotalPlaces != c.TotalPlaces {
			return a.TotalPlaces > c.TotalPlaces
		}
		return types[i] < types[j]
	})
	if len(types) > 3 {
		types = types[:3]
	}
	for _, t := range types {
		tt := s.ByType[t]
		fmt.Fprintf(&b, "- %s: %d places (%d words)\n", t.Label(), tt.TotalPlaces, tt.TotalWords)
	}

	return b.String()
}

// Statistics renders only the numeric distribution with no examples.
func Statistics(d *Data) string {
	s := d.Summary

	var b strings.Builder
	b.WriteString("PDF ACCESSIBILITY STATISTICS\n")
	b.WriteString(rule('=', 60) + "\n\n")
	fmt.Fprintf(&b, "Document: %s\n", d.Document)
	fmt.Fprintf(&b, "Total issues: %d places\n", s.Overall.TotalPlaces)
	fmt.Fprintf(&b, "Total affected words: %d\n", s.Overall.TotalWords)
	fmt.Fprintf(&b, "Pages affected: %d\n\n", len(s.Overall.PagesWithIssues))

	b.WriteString("DISTRIBUTION BY TYPE AND SEVERITY:\n")
	b.WriteString(rule('-', 60) + "\n")

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
		fmt.Fprintf(&b, "\n%s:\n", t.Label())
		for _, sev := range detect.AllSeverities {
			counts := breakdown.For(sev)
			if counts.Places == 0 {
				continue
			}
			pct := float64(counts.Places) / float64(total.Places) * 100
			fmt.Fprintf(&b, "  %s: %d places (%.1f%%)\n", severityLabel(sev), counts.Places, pct)
		}
	}

	return b.String()
}
