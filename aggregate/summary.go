package aggregate

import (
	"github.com/tsawler/a11y/detect"
	"github.com/tsawler/a11y/textnorm"
)

// Counts pairs the number of issue places with the number of affected words.
type Counts struct {
	Places int `json:"places"`
	Words  int `json:"words"`
}

// SeverityBreakdown splits counts across the three severities.
type SeverityBreakdown struct {
	High   Counts `json:"high"`
	Medium Counts `json:"medium"`
	Low    Counts `json:"low"`
}

// For returns the counts bucket for a severity.
func (b *SeverityBreakdown) For(s detect.Severity) *Counts {
	switch s {
	case detect.SeverityHigh:
		return &b.High
	case detect.SeverityMedium:
		return &b.Medium
	default:
		return &b.Low
	}
}

// Total sums places across all severities.
func (b *SeverityBreakdown) Total() Counts {
	return Counts{
		Places: b.High.Places + b.Medium.Places + b.Low.Places,
		Words:  b.High.Words + b.Medium.Words + b.Low.Words,
	}
}

// TypeTotals aggregates one issue type across the whole document.
type TypeTotals struct {
	TotalPlaces   int     `json:"total_places"`
	TotalWords    int     `json:"total_words"`
	PagesAffected PageSet `json:"pages_affected"`
}

// SeverityTotals aggregates one severity with a nested per-type breakdown.
type SeverityTotals struct {
	Places int                          `json:"places"`
	Words  int                          `json:"words"`
	Types  map[detect.IssueType]*Counts `json:"types"`
}

// Overall is the document-level rollup.
type Overall struct {
	TotalPlaces          int                      `json:"total_places"`
	TotalWords           int                      `json:"total_words"`
	PagesWithIssues      PageSet                  `json:"pages_with_issues"`
	TypesDistribution    map[detect.IssueType]int `json:"types_distribution"`
	SeverityDistribution map[detect.Severity]int  `json:"severity_distribution"`
}

// Summary holds the four grouping views over an issue list. Every issue
// contributes exactly once to each view, so summing any view's leaf counts
// recovers the issue count.
type Summary struct {
	ByTypeSeverity map[detect.IssueType]*SeverityBreakdown `json:"by_type_severity"`
	ByType         map[detect.IssueType]*TypeTotals        `json:"by_type"`
	BySeverity     map[detect.Severity]*SeverityTotals     `json:"by_severity"`
	Overall        Overall                                 `json:"overall"`
}

// NewSummary returns a summary with zeroed counters for every known
// type/severity combination, so the aggregate's shape does not depend on
// which issues happen to occur.
func NewSummary() *Summary {
	s := &Summary{
		ByTypeSeverity: make(map[detect.IssueType]*SeverityBreakdown, len(detect.AllTypes)),
		ByType:         make(map[detect.IssueType]*TypeTotals, len(detect.AllTypes)),
		BySeverity:     make(map[detect.Severity]*SeverityTotals, len(detect.AllSeverities)),
		Overall: Overall{
			PagesWithIssues:      make(PageSet),
			TypesDistribution:    make(map[detect.IssueType]int, len(detect.AllTypes)),
			SeverityDistribution: make(map[detect.Severity]int, len(detect.AllSeverities)),
		},
	}

	for _, t := range detect.AllTypes {
		s.ByTypeSeverity[t] = &SeverityBreakdown{}
		s.ByType[t] = &TypeTotals{PagesAffected: make(PageSet)}
		s.Overall.TypesDistribution[t] = 0
	}
	for _, sev := range detect.AllSeverities {
		totals := &SeverityTotals{Types: make(map[detect.IssueType]*Counts, len(detect.AllTypes))}
		for _, t := range detect.AllTypes {
			totals.Types[t] = &Counts{}
		}
		s.BySeverity[sev] = totals
		s.Overall.SeverityDistribution[sev] = 0
	}

	return s
}

// Summarize builds all four views in a single pass over the issues.
func Summarize(issues []detect.Issue) *Summary {
	s := NewSummary()

	for i := range issues {
		issue := &issues[i]
		words := textnorm.WordCount(issue.Text)

		byTypeSev := s.ByTypeSeverity[issue.Type]
		if byTypeSev == nil {
			byTypeSev = &SeverityBreakdown{}
			s.ByTypeSeverity[issue.Type] = byTypeSev
		}
		bucket := byTypeSev.For(issue.Severity)
		bucket.Places++
		bucket.Words += words

		byType := s.ByType[issue.Type]
		if byType == nil {
			byType = &TypeTotals{PagesAffected: make(PageSet)}
			s.ByType[issue.Type] = byType
		}
		byType.TotalPlaces++
		byType.TotalWords += words
		byType.PagesAffected.Add(issue.Page)

		bySev := s.BySeverity[issue.Severity]
		if bySev == nil {
			bySev = &SeverityTotals{Types: make(map[detect.IssueType]*Counts)}
			s.BySeverity[issue.Severity] = bySev
		}
		bySev.Places++
		bySev.Words += words
		typeCounts := bySev.Types[issue.Type]
		if typeCounts == nil {
			typeCounts = &Counts{}
			bySev.Types[issue.Type] = typeCounts
		}
		typeCounts.Places++
		typeCounts.Words += words

		s.Overall.TotalPlaces++
		s.Overall.TotalWords += words
		s.Overall.PagesWithIssues.Add(issue.Page)
		s.Overall.TypesDistribution[issue.Type]++
		s.Overall.SeverityDistribution[issue.Severity]++
	}

	return s
}
