package aggregate

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/tsawler/a11y/detect"
	"github.com/tsawler/a11y/textnorm"
)

const (
	minGroupKeyLen   = 3
	minPatternKeyLen = 5
	patternKeyBudget = 50

	// patternMinPages and patternMinOccurrences gate which pattern groups
	// survive filtering: a pattern must recur across pages or repeat often
	// on one page to be worth reporting.
	patternMinPages       = 2
	patternMinOccurrences = 3

	maxDescriptionPrefix = 100
)

// TextPageGroup collects all issues that share a canonical text key,
// partitioned by page.
type TextPageGroup struct {
	Pages        map[int][]detect.Issue
	TotalCount   int
	First        *detect.Issue
	Types        StringSet
	Descriptions StringSet
}

// GroupByTextAndPage groups issues by canonical text key. Issues whose key
// is shorter than three runes are left out, since near-empty fragments make
// meaningless groups.
func GroupByTextAndPage(issues []detect.Issue) map[string]*TextPageGroup {
	groups := make(map[string]*TextPageGroup)

	for i := range issues {
		issue := issues[i]
		key := textnorm.CanonicalKey(issue.Text)
		if utf8.RuneCountInString(key) < minGroupKeyLen {
			continue
		}

		g := groups[key]
		if g == nil {
			g = &TextPageGroup{
				Pages:        make(map[int][]detect.Issue),
				Types:        make(StringSet),
				Descriptions: make(StringSet),
			}
			groups[key] = g
		}
		g.Pages[issue.Page] = append(g.Pages[issue.Page], issue)
		g.TotalCount++
		if g.First == nil {
			first := issue
			g.First = &first
		}
		g.Types.Add(string(issue.Type))
		g.Descriptions.Add(issue.Description)
	}

	return groups
}

// PatternGroup collects recurring issues sharing a truncated text pattern.
type PatternGroup struct {
	Pages        PageSet
	Issues       []detect.Issue
	TotalWords   int
	Types        StringSet
	Severities   map[detect.Severity]int
	Descriptions StringSet
	Fonts        StringSet
}

// GroupByTextPattern groups issues by a truncated canonical key and keeps
// only the groups that recur: those spanning at least two pages or holding
// at least three occurrences.
func GroupByTextPattern(issues []detect.Issue) map[string]*PatternGroup {
	groups := make(map[string]*PatternGroup)

	for i := range issues {
		issue := issues[i]
		key := textnorm.CanonicalKey(issue.Text)
		if utf8.RuneCountInString(key) < minPatternKeyLen {
			continue
		}
		if utf8.RuneCountInString(key) > patternKeyBudget {
			key = textnorm.Truncate(key, patternKeyBudget)
		}

		g := groups[key]
		if g == nil {
			g = &PatternGroup{
				Pages:        make(PageSet),
				Types:        make(StringSet),
				Severities:   make(map[detect.Severity]int),
				Descriptions: make(StringSet),
				Fonts:        make(StringSet),
			}
			groups[key] = g
		}
		g.Pages.Add(issue.Page)
		g.Issues = append(g.Issues, issue)
		g.TotalWords += textnorm.WordCount(issue.Text)
		g.Types.Add(string(issue.Type))
		g.Severities[issue.Severity]++
		desc := issue.Description
		if utf8.RuneCountInString(desc) > maxDescriptionPrefix {
			desc = string([]rune(desc)[:maxDescriptionPrefix])
		}
		g.Descriptions.Add(desc)
		if issue.FontName != "" {
			g.Fonts.Add(fmt.Sprintf("%s (%.1fpt)", issue.FontName, issue.FontSize))
		}
	}

	for key, g := range groups {
		if len(g.Pages) < patternMinPages && len(g.Issues) < patternMinOccurrences {
			delete(groups, key)
		}
	}

	return groups
}

// PageStat summarizes the issues found on one page.
type PageStat struct {
	Places     int
	Words      int
	ByType     map[detect.IssueType]*Counts
	BySeverity map[detect.Severity]int
}

// PageStats rolls issues up per page.
func PageStats(issues []detect.Issue) map[int]*PageStat {
	stats := make(map[int]*PageStat)

	for i := range issues {
		issue := issues[i]
		st := stats[issue.Page]
		if st == nil {
			st = &PageStat{
				ByType:     make(map[detect.IssueType]*Counts),
				BySeverity: make(map[detect.Severity]int),
			}
			stats[issue.Page] = st
		}
		words := textnorm.WordCount(issue.Text)
		st.Places++
		st.Words += words
		tc := st.ByType[issue.Type]
		if tc == nil {
			tc = &Counts{}
			st.ByType[issue.Type] = tc
		}
		tc.Places++
		tc.Words += words
		st.BySeverity[issue.Severity]++
	}

	return stats
}

// TopPagesByWords returns up to n page numbers sorted by affected word
// count, heaviest first. Ties break on the lower page number.
func TopPagesByWords(stats map[int]*PageStat, n int) []int {
	pages := make([]int, 0, len(stats))
	for page := range stats {
		pages = append(pages, page)
	}
	sort.Slice(pages, func(i, j int) bool {
		a, b := stats[pages[i]], stats[pages[j]]
		if a.Words != b.Words {
			return a.Words > b.Words
		}
		return pages[i] < pages[j]
	})
	if n > 0 && len(pages) > n {
		pages = pages[:n]
	}
	return pages
}
