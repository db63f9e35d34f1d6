package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/tsawler/a11y/aggregate"
	"github.com/tsawler/a11y/detect"
)

// Format selects one of the supported report renderings.
type Format string

const (
	FormatFull       Format = "full"
	FormatSummary    Format = "summary"
	FormatStatistics Format = "statistics"
	FormatJSON       Format = "json"
	FormatHTML       Format = "html"
)

// ParseFormat validates a format name from the CLI or config.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatFull:
		return FormatFull, nil
	case FormatSummary:
		return FormatSummary, nil
	case FormatStatistics:
		return FormatStatistics, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatHTML:
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unknown report format %q", s)
	}
}

// Extension returns the file extension conventionally used for the format.
func (f Format) Extension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatHTML:
		return ".html"
	default:
		return ".txt"
	}
}

// Data is everything the renderers need. Build it once from an analysis
// result and render it in as many formats as required.
type Data struct {
	Document    string
	Path        string
	GeneratedAt time.Time
	Issues      []detect.Issue
	ColorIssues []detect.ColorIssue
	Summary     *aggregate.Summary
}

// NewData assembles report data, computing the summary when absent.
func NewData(document, path string, issues []detect.Issue, colorIssues []detect.ColorIssue) *Data {
	return &Data{
		Document:    document,
		Path:        path,
		GeneratedAt: time.Now(),
		Issues:      issues,
		ColorIssues: colorIssues,
		Summary:     aggregate.Summarize(issues),
	}
}

// Render produces the report in the requested format.
func Render(d *Data, f Format) (string, error) {
	switch f {
	case FormatFull:
		return Full(d), nil
	case FormatSummary:
		return Summary(d), nil
	case FormatStatistics:
		return Statistics(d), nil
	case FormatJSON:
		return JSON(d)
	case FormatHTML:
		return HTML(d)
	default:
		return "", fmt.Errorf("unknown report format %q", string(f))
	}
}

func rule(ch byte, n int) string {
	return strings.Repeat(string(ch), n)
}

func severityLabel(s detect.Severity) string {
	switch s {
	case detect.SeverityHigh:
		return "HIGH"
	case detect.SeverityMedium:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

// typesByPlaces orders issue types by place count, largest first, with the
// type name breaking ties so output stays stable.
func typesByPlaces(counts map[detect.IssueType]*aggregate.Counts) []detect.IssueType {
	ordered := make([]detect.IssueType, 0, len(counts))
	for t := range counts {
		ordered = append(ordered, t)
	}
	sort.Slice(ordered, func(i, j int) bool {
		a, b := counts[ordered[i]], counts[ordered[j]]
		if a.Places != b.Places {
			return a.Places > b.Places
		}
		return ordered[i] < ordered[j]
	})
	return ordered
}
