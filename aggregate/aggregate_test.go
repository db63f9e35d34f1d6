package aggregate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/a11y/detect"
)

func makeIssue(page int, text string, typ detect.IssueType, sev detect.Severity) detect.Issue {
	return detect.Issue{
		Page:        page,
		Text:        text,
		Type:        typ,
		Severity:    sev,
		Description: "sample description",
	}
}

func sampleIssues() []detect.Issue {
	return []detect.Issue{
		makeIssue(1, "Chapter one heading", detect.TypeFontSize, detect.SeverityHigh),
		makeIssue(1, "body text in gray", detect.TypeContrast, detect.SeverityMedium),
		makeIssue(2, "Chapter one heading", detect.TypeFontSize, detect.SeverityHigh),
		makeIssue(3, "footer note", detect.TypeFontReadability, detect.SeverityMedium),
		makeIssue(3, "footer note", detect.TypeFontReadability, detect.SeverityMedium),
	}
}

func TestSummarizeConservation(t *testing.T) {
	issues := sampleIssues()
	s := Summarize(issues)

	total := len(issues)

	sum := 0
	for _, b := range s.ByTypeSeverity {
		sum += b.High.Places + b.Medium.Places + b.Low.Places
	}
	assert.Equal(t, total, sum, "by-type-severity places")

	sum = 0
	for _, tt := range s.ByType {
		sum += tt.TotalPlaces
	}
	assert.Equal(t, total, sum, "by-type places")

	sum = 0
	for _, sv := range s.BySeverity {
		sum += sv.Places
	}
	assert.Equal(t, total, sum, "by-severity places")

	assert.Equal(t, total, s.Overall.TotalPlaces)

	sum = 0
	for _, n := range s.Overall.TypesDistribution {
		sum += n
	}
	assert.Equal(t, total, sum, "types distribution")

	sum = 0
	for _, n := range s.Overall.SeverityDistribution {
		sum += n
	}
	assert.Equal(t, total, sum, "severity distribution")
}

func TestSummarizePreZeroed(t *testing.T) {
	s := Summarize(nil)

	for _, typ := range detect.AllTypes {
		require.Contains(t, s.ByTypeSeverity, typ)
		require.Contains(t, s.ByType, typ)
		assert.Zero(t, s.ByType[typ].TotalPlaces)
	}
	for _, sev := range detect.AllSeverities {
		require.Contains(t, s.BySeverity, sev)
		for _, typ := range detect.AllTypes {
			require.Contains(t, s.BySeverity[sev].Types, typ)
		}
	}
	assert.Empty(t, s.Overall.PagesWithIssues)
}

func TestSummarizeCountsWordsAndPages(t *testing.T) {
	s := Summarize(sampleIssues())

	fontSize := s.ByType[detect.TypeFontSize]
	assert.Equal(t, 2, fontSize.TotalPlaces)
	assert.Equal(t, 6, fontSize.TotalWords) // "Chapter one heading" twice
	assert.Equal(t, []int{1, 2}, fontSize.PagesAffected.Sorted())

	assert.Equal(t, []int{1, 2, 3}, s.Overall.PagesWithIssues.Sorted())
	assert.Equal(t, 2, s.Overall.SeverityDistribution[detect.SeverityHigh])
	assert.Equal(t, 3, s.Overall.SeverityDistribution[detect.SeverityMedium])
	assert.Equal(t, 0, s.Overall.SeverityDistribution[detect.SeverityLow])
}

func TestGroupByTextAndPage(t *testing.T) {
	groups := GroupByTextAndPage(sampleIssues())

	g, ok := groups["chapter one heading"]
	require.True(t, ok)
	assert.Equal(t, 2, g.TotalCount)
	assert.Len(t, g.Pages, 2)
	require.NotNil(t, g.First)
	assert.Equal(t, 1, g.First.Page)
	assert.True(t, g.Types.Contains(string(detect.TypeFontSize)))

	// Keys shorter than three runes are skipped.
	short := GroupByTextAndPage([]detect.Issue{makeIssue(1, "ab", detect.TypeContrast, detect.SeverityLow)})
	assert.Empty(t, short)
}

func TestGroupByTextPatternFiltering(t *testing.T) {
	// One occurrence on one page: filtered out of patterns but kept by
	// the text-and-page grouping.
	single := []detect.Issue{makeIssue(4, "unique paragraph text", detect.TypeContrast, detect.SeverityLow)}
	assert.Empty(t, GroupByTextPattern(single))
	assert.Len(t, GroupByTextAndPage(single), 1)

	// Two pages: kept.
	groups := GroupByTextPattern(sampleIssues())
	g, ok := groups["chapter one heading"]
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, g.Pages.Sorted())
	assert.Len(t, g.Issues, 2)
	assert.Equal(t, 2, g.Severities[detect.SeverityHigh])

	// Three occurrences on one page: kept even without page spread.
	repeated := []detect.Issue{
		makeIssue(7, "repeated footer line", detect.TypeFontSize, detect.SeverityLow),
		makeIssue(7, "repeated footer line", detect.TypeFontSize, detect.SeverityLow),
		makeIssue(7, "repeated footer line", detect.TypeFontSize, detect.SeverityLow),
	}
	assert.Len(t, GroupByTextPattern(repeated), 1)
}

func TestPageStats(t *testing.T) {
	stats := PageStats(sampleIssues())

	require.Len(t, stats, 3)
	p1 := stats[1]
	assert.Equal(t, 2, p1.Places)
	assert.Equal(t, 7, p1.Words) // "Chapter one heading" + "body text in gray"
	assert.Equal(t, 1, p1.ByType[detect.TypeContrast].Places)
	assert.Equal(t, 1, p1.BySeverity[detect.SeverityHigh])

	top := TopPagesByWords(stats, 2)
	require.Len(t, top, 2)
	assert.Equal(t, 1, top[0]) // 7 words beats pages 2 (3) and 3 (4)
	assert.Equal(t, 3, top[1])
}

func TestPageSetJSONDeterministic(t *testing.T) {
	set := PageSet{}
	set.Add(3)
	set.Add(1)
	set.Add(2)

	raw, err := json.Marshal(set)
	require.NoError(t, err)
	assert.Equal(t, "[1,2,3]", string(raw))
}
