package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tsawler/a11y/aggregate"
	"github.com/tsawler/a11y/detect"
	"github.com/tsawler/a11y/textnorm"
)

const (
	// detailMinIssues hides types too rare to warrant a detailed section.
	detailMinIssues = 10

	topContrastGroups = 20
	topPages          = 10
	topSummaryRows    = 50
	topColorTexts     = 10
)

// Full renders the complete text report: header, severity statistics,
// type distribution, per-type detail, page overview, color report,
// summary table and remediation guidance.
func Full(d *Data) string {
	s := d.Summary

	var b strings.Builder
	b.WriteString("PDF ACCESSIBILITY REPORT\n")
	b.WriteString(rule('=', 80) + "\n\n")
	fmt.Fprintf(&b, "Document: %s\n", d.Path)
	fmt.Fprintf(&b, "Total issues: %d places\n", s.Overall.TotalPlaces)
	fmt.Fprintf(&b, "Total affected words: %d\n", s.Overall.TotalWords)
	fmt.Fprintf(&b, "Pages affected: %d\n", len(s.Overall.PagesWithIssues))

	if len(d.Issues) == 0 {
		b.WriteString("\nNo accessibility issues found.\n")
		b.WriteString("The document meets the checked WCAG 2.1 requirements.\n")
		return b.String()
	}

	writeSeverityStats(&b, s)
	writeTypeDistribution(&b, s)
	writeTypeDetails(&b, d, s)
	writePageOverview(&b, d)

	if breakdown := s.ByTypeSeverity[detect.TypeContrast]; breakdown != nil && breakdown.Total().Places > 0 {
		b.WriteString(colorReport(d.ColorIssues))
	}

	b.WriteString(summaryTable(d.Issues))
	writeRecommendations(&b, s)

	return b.String()
}

func writeSeverityStats(b *strings.Builder, s *aggregate.Summary) {
	b.WriteString("\nSEVERITY STATISTICS:\n")
	b.WriteString(rule('=', 40) + "\n")

	for _, sev := range detect.AllSeverities {
		group := s.BySeverity[sev]
		if group == nil {
			continue
		}
		fmt.Fprintf(b, "\n%s: %d places (%d words)\n", severityLabel(sev), group.Places, group.Words)
		for _, t := range typesByPlaces(group.Types) {
			tc := group.Types[t]
			if tc.Places == 0 {
				continue
			}
			fmt.Fprintf(b, "  - %s: %d places (%d words)\n", t.Label(), tc.Places, tc.Words)
		}
	}
}

func writeTypeDistribution(b *strings.Builder, s *aggregate.Summary) {
	b.WriteString("\n\nISSUE TYPE DISTRIBUTION (with severity breakdown):\n")
	b.WriteString(rule('=', 60) + "\n")

	types := make([]detect.IssueType, 0, len(s.ByTypeSeverity))
	for t := range s.ByTypeSeverity {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		a, c := s.ByTypeSeverity[types[i]].Total(), s.ByTypeSeverity[types[j]].Total()
		if a.Places != c.Places {
			return a.Places > c.Places
		}
		if a.Words != c.Words {
			return a.Words > c.Words
		}
		return types[i] < types[j]
	})

	for _, t := range types {
		breakdown := s.ByTypeSeverity[t]
		total := breakdown.Total()
		if total.Places == 0 {
			continue
		}
		fmt.Fprintf(b, "\n%s:\n", strings.ToUpper(t.Label()))
		fmt.Fprintf(b, "  Total: %d places (%d words)\n", total.Places, total.Words)
		for _, sev := range detect.AllSeverities {
			counts := breakdown.For(sev)
			if counts.Places == 0 {
				continue
			}
			pct := float64(counts.Places) / float64(total.Places) * 100
			fmt.Fprintf(b, "  %s: %d places (%d words, %.1f%%)\n",
				severityLabel(sev), counts.Places, counts.Words, pct)
		}
	}
}

func writeTypeDetails(b *strings.Builder, d *Data, s *aggregate.Summary) {
	b.WriteString("\n\nDETAILED ANALYSIS BY ISSUE TYPE:\n")
	b.WriteString(rule('=', 60) + "\n")

	byType := make(map[detect.IssueType][]detect.Issue)
	for _, issue := range d.Issues {
		byType[issue.Type] = append(byType[issue.Type], issue)
	}

	types := make([]detect.IssueType, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		if len(byType[types[i]]) != len(byType[types[j]]) {
			return len(byType[types[i]]) > len(byType[types[j]])
		}
		return types[i] < types[j]
	})

	for _, t := range types {
		issues := byType[t]
		if len(issues) < detailMinIssues {
			continue
		}
		totals := s.ByType[t]
		fmt.Fprintf(b, "\n%s (%d places):\n", strings.ToUpper(t.Label()), totals.TotalPlaces)
		b.WriteString(rule('-', 40) + "\n")

		if t == detect.TypeContrast {
			writeContrastGroups(b, issues)
		} else {
			writeTypeExamples(b, issues, totals)
		}
	}
}

// writeContrastGroups lists the most frequent contrast-failing texts,
// grouped by canonical key.
func writeContrastGroups(b *strings.Builder, issues []detect.Issue) {
	groups := aggregate.GroupByTextAndPage(issues)

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if groups[keys[i]].TotalCount != groups[keys[j]].TotalCount {
			return groups[keys[i]].TotalCount > groups[keys[j]].TotalCount
		}
		return keys[i] < keys[j]
	})
	if len(keys) > topContrastGroups {
		keys = keys[:topContrastGroups]
	}

	for i, key := range keys {
		g := groups[key]
		description := g.Descriptions.Sorted()
		desc := ""
		if len(description) > 0 {
			desc = description[0]
		}
		if len(desc) > 100 {
			desc = desc[:100]
		}

		fmt.Fprintf(b, "\n%d. Text: %q\n", i+1, textnorm.Preview(key, 80))
		fmt.Fprintf(b, "   Issue: %s\n", desc)
		fmt.Fprintf(b, "   Occurrences: %d %s\n", g.TotalCount, pagesPhrase(sortedPages(g.Pages)))

		if g.First != nil {
			fmt.Fprintf(b, "   Severity: %s\n", g.First.Severity)
			if g.First.FontName != "" {
				fmt.Fprintf(b, "   Font: %s (%.1fpt)\n", g.First.FontName, g.First.FontSize)
			}
		}
	}
}

func writeTypeExamples(b *strings.Builder, issues []detect.Issue, totals *aggregate.TypeTotals) {
	fmt.Fprintf(b, "Pages affected: %d\n", len(totals.PagesAffected))

	pageCounts := make(map[int]int)
	for _, issue := range issues {
		pageCounts[issue.Page]++
	}
	pages := make([]int, 0, len(pageCounts))
	for p := range pageCounts {
		pages = append(pages, p)
	}
	sort.Slice(pages, func(i, j int) bool {
		if pageCounts[pages[i]] != pageCounts[pages[j]] {
			return pageCounts[pages[i]] > pageCounts[pages[j]]
		}
		return pages[i] < pages[j]
	})
	if len(pages) > 5 {
		pages = pages[:5]
	}
	b.WriteString("Most affected pages:\n")
	for _, p := range pages {
		fmt.Fprintf(b, "   - page %d: %d places\n", p, pageCounts[p])
	}

	b.WriteString("\nEXAMPLES:\n")
	bySeverity := map[detect.Severity][]detect.Issue{}
	limit := len(issues)
	if limit > 50 {
		limit = 50
	}
	for _, issue := range issues[:limit] {
		bySeverity[issue.Severity] = append(bySeverity[issue.Severity], issue)
	}

	shown := 0
	for _, sev := range detect.AllSeverities {
		examples := bySeverity[sev]
		if len(examples) > 2 {
			examples = examples[:2]
		}
		for _, issue := range examples {
			preview := textnorm.Preview(textnorm.Deduplicate(issue.Text), 80)
			fmt.Fprintf(b, "\n   %s: %s\n", severityLabel(sev), preview)
			desc := issue.Description
			if len(desc) > 120 {
				desc = desc[:120]
			}
			fmt.Fprintf(b, "      %s\n", desc)
			shown++
		}
		if shown >= 6 {
			break
		}
	}
}

func writePageOverview(b *strings.Builder, d *Data) {
	fmt.Fprintf(b, "\n\nPAGE OVERVIEW (top %d most affected):\n", topPages)
	b.WriteString(rule('=', 60) + "\n")

	stats := aggregate.PageStats(d.Issues)

	pages := make([]int, 0, len(stats))
	for p := range stats {
		pages = append(pages, p)
	}
	sort.Slice(pages, func(i, j int) bool {
		if stats[pages[i]].Places != stats[pages[j]].Places {
			return stats[pages[i]].Places > stats[pages[j]].Places
		}
		return pages[i] < pages[j]
	})
	if len(pages) > topPages {
		pages = pages[:topPages]
	}

	for _, p := range pages {
		st := stats[p]
		fmt.Fprintf(b, "\nPAGE %d:\n", p)
		fmt.Fprintf(b, "   Total: %d places (%d words)\n", st.Places, st.Words)

		var sevParts []string
		for _, sev := range detect.AllSeverities {
			if n := st.BySeverity[sev]; n > 0 {
				sevParts = append(sevParts, fmt.Sprintf("%s %d", severityLabel(sev), n))
			}
		}
		if len(sevParts) > 0 {
			fmt.Fprintf(b, "   Severity: %s\n", strings.Join(sevParts, ", "))
		}

		types := typesByPlaces(st.ByType)
		if len(types) > 3 {
			types = types[:3]
		}
		for _, t := range types {
			tc := st.ByType[t]
			if tc.Places == 0 {
				continue
			}
			fmt.Fprintf(b, "   - %s: %d places (%d words)\n", t.Label(), tc.Places, tc.Words)
		}
	}
}

// summaryTable renders the top text groups as a fixed-width table.
func summaryTable(issues []detect.Issue) string {
	if len(issues) == 0 {
		return ""
	}

	groups := aggregate.GroupByTextAndPage(issues)

	var b strings.Builder
	b.WriteString("\nSUMMARY TABLE (grouped by text):\n")
	b.WriteString(rule('=', 80) + "\n\n")
	b.WriteString("#  | Text | Issue | Pages | Count | Severity\n")
	b.WriteString(rule('-', 80) + "\n")

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if groups[keys[i]].TotalCount != groups[keys[j]].TotalCount {
			return groups[keys[i]].TotalCount > groups[keys[j]].TotalCount
		}
		return keys[i] < keys[j]
	})
	if len(keys) > topSummaryRows {
		keys = keys[:topSummaryRows]
	}

	for i, key := range keys {
		g := groups[key]
		if g.First == nil {
			continue
		}

		textPreview := textnorm.Preview(key, 43)
		desc := ""
		if descs := g.Descriptions.Sorted(); len(descs) > 0 {
			desc = textnorm.Preview(descs[0], 53)
		}

		pages := sortedPages(g.Pages)
		var pagesStr string
		if len(pages) <= 3 {
			pagesStr = joinPages(pages)
		} else {
			pagesStr = fmt.Sprintf("%d, ..., %d (%d pages)", pages[0], pages[len(pages)-1], len(pages))
		}

		fmt.Fprintf(&b, "%2d | %-42s | %-48s | %-15s | %4d | %s\n",
			i+1, textPreview, desc, pagesStr, g.TotalCount, g.First.Severity)
	}

	return b.String()
}

// colorReport groups failing color issues by bucket and text, then appends
// remediation guidance.
func colorReport(colorIssues []detect.ColorIssue) string {
	if len(colorIssues) == 0 {
		return ""
	}

	type textGroup struct {
		pages     map[int]int
		total     int
		issues    []detect.ColorIssue
		contrasts []float64
	}
	byBucket := make(map[string]map[string]*textGroup)

	for _, ci := range colorIssues {
		text := ci.FullText
		if text == "" {
			text = ci.TextSample
		}
		key := textnorm.CanonicalKey(text)
		if len([]rune(key)) < 5 {
			continue
		}

		bucket := string(ci.Bucket)
		texts := byBucket[bucket]
		if texts == nil {
			texts = make(map[string]*textGroup)
			byBucket[bucket] = texts
		}
		g := texts[key]
		if g == nil {
			g = &textGroup{pages: make(map[int]int)}
			texts[key] = g
		}
		g.pages[ci.Page]++
		g.total++
		g.issues = append(g.issues, ci)
		g.contrasts = append(g.contrasts, ci.Ratio)
	}

	var b strings.Builder
	b.WriteString("\nPROBLEM COLOR REPORT:\n")
	b.WriteString(rule('=', 80) + "\n\n")

	buckets := make([]string, 0, len(byBucket))
	for name := range byBucket {
		buckets = append(buckets, name)
	}
	sort.Strings(buckets)

	for _, bucket := range buckets {
		texts := byBucket[bucket]

		totalIssues := 0
		for _, g := range texts {
			totalIssues += len(g.issues)
		}
		fmt.Fprintf(&b, "\n%s (%d occurrences, %d unique texts):\n",
			strings.ToUpper(bucket), totalIssues, len(texts))
		b.WriteString(rule('-', 60) + "\n")

		keys := make([]string, 0, len(texts))
		for k := range texts {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			a, c := texts[keys[i]], texts[keys[j]]
			if a.total != c.total {
				return a.total > c.total
			}
			if len(a.pages) != len(c.pages) {
				return len(a.pages) > len(c.pages)
			}
			return keys[i] < keys[j]
		})
		if len(keys) > topColorTexts {
			keys = keys[:topColorTexts]
		}

		for i, key := range keys {
			g := texts[key]
			pages := make([]int, 0, len(g.pages))
			for p := range g.pages {
				pages = append(pages, p)
			}
			sort.Ints(pages)

			var pagesInfo string
			if len(pages) <= 5 {
				pagesInfo = "on pages " + joinPages(pages)
			} else {
				pagesInfo = fmt.Sprintf("on %d pages (first: page %d)", len(pages), pages[0])
			}

			sum := 0.0
			below := 0
			for _, c := range g.contrasts {
				sum += c
				if c < 4.5 {
					below++
				}
			}
			avg := sum / float64(len(g.contrasts))

			fmt.Fprintf(&b, "\n%d. Text: %q\n", i+1, textnorm.Preview(key, 63))
			fmt.Fprintf(&b, "   Occurrences: %d times %s\n", g.total, pagesInfo)
			fmt.Fprintf(&b, "   Average contrast: %.1f:1", avg)
			if below > 0 {
				pct := float64(below) / float64(len(g.contrasts)) * 100
				fmt.Fprintf(&b, " (below 4.5:1 in %d cases, %.0f%%)", below, pct)
			}
			b.WriteString("\n")

			first := g.issues[0]
			if first.FontSize > 0 {
				fmt.Fprintf(&b, "   Font size: %.1fpt", first.FontSize)
				if first.Large {
					b.WriteString(" (large text)")
				}
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\nCOLOR REMEDIATION GUIDANCE:\n")
	b.WriteString(rule('-', 60) + "\n")
	b.WriteString("1. Green text on white:\n")
	b.WriteString("   - Problem: light greens measure around 2.9-3.5:1\n")
	b.WriteString("   - Fix: use dark green (#006400, #228B22) for roughly 6.5:1\n\n")
	b.WriteString("2. Gray text on white:\n")
	b.WriteString("   - Problem: mid-gray measures around 3.9:1\n")
	b.WriteString("   - Fix: use dark gray (#333333, 12.6:1) or black (#000000, 21:1)\n\n")
	b.WriteString("3. Yellow or orange text:\n")
	b.WriteString("   - Problem: bright yellow/orange measures around 3.0:1\n")
	b.WriteString("   - Fix: use dark shades or replace with black\n\n")
	b.WriteString("4. Reliable combinations on white:\n")
	b.WriteString("   - Black (#000000): 21:1\n")
	b.WriteString("   - Dark gray (#333333): 12.6:1\n")
	b.WriteString("   - Dark blue (#000066): 8.6:1\n")
	b.WriteString("   - Dark green (#006400): 6.5:1\n")

	return b.String()
}

func writeRecommendations(b *strings.Builder, s *aggregate.Summary) {
	b.WriteString("\nGENERAL RECOMMENDATIONS:\n")
	b.WriteString(rule('=', 60) + "\n")

	present := func(t detect.IssueType) bool {
		breakdown := s.ByTypeSeverity[t]
		return breakdown != nil && breakdown.Total().Places > 0
	}

	if present(detect.TypeContrast) {
		b.WriteString("1. INCREASE TEXT CONTRAST:\n")
		b.WriteString("   - Regular text: at least 4.5:1\n")
		b.WriteString("   - Large text (18pt+, or 14pt+ bold): at least 3.0:1\n")
		b.WriteString("   - Use black (#000000), dark gray (#333333) or dark blue (#000066)\n\n")
	}
	if present(detect.TypeFontSize) {
		b.WriteString("2. INCREASE FONT SIZE:\n")
		b.WriteString("   - Body text: at least 12pt (14-16pt recommended)\n")
		b.WriteString("   - Headings: at least 14pt (16-18pt recommended)\n")
		b.WriteString("   - For low-vision readers: body 16-18pt, headings 20-24pt\n\n")
	}
	if present(detect.TypeFontReadability) {
		b.WriteString("3. CHOOSE READABLE FONTS:\n")
		b.WriteString("   - Recommended: Arial, Verdana, Tahoma, Georgia\n")
		b.WriteString("   - Avoid decorative, monospace and script fonts\n\n")
	}

	b.WriteString("WCAG 2.1 LEVEL AA REFERENCES:\n")
	b.WriteString("   - Text contrast: 4.5:1 (3.0:1 for large text)\n")
	b.WriteString("   - Minimum text size: effective visual size of 2.5mm\n")
	b.WriteString("   - Do not rely on color alone to convey information\n")
}

func sortedPages(pages map[int][]detect.Issue) []int {
	out := make([]int, 0, len(pages))
	for p := range pages {
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}

func joinPages(pages []int) string {
	parts := make([]string, len(pages))
	for i, p := range pages {
		parts[i] = fmt.Sprintf("%d", p)
	}
	return strings.Join(parts, ", ")
}

func pagesPhrase(pages []int) string {
	if len(pages) <= 5 {
		return "on pages " + joinPages(pages)
	}
	return fmt.Sprintf("on %d pages (first: page %d)", len(pages), pages[0])
}
