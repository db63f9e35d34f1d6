package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/tsawler/a11y/detect"
)

// JSON output is capped so reports generated from pathological documents
// stay a reasonable size.
const (
	MaxJSONIssues      = 1000
	MaxJSONColorIssues = 100
)

type jsonSeverity struct {
	Places int `json:"places"`
	Words  int `json:"words"`
}

type jsonType struct {
	TotalPlaces   int   `json:"total_places"`
	TotalWords    int   `json:"total_words"`
	PagesAffected []int `json:"pages_affected"`
}

type jsonSummary struct {
	TotalIssues   int                              `json:"total_issues"`
	TotalWords    int                              `json:"total_words"`
	PagesAffected []int                            `json:"pages_affected"`
	BySeverity    map[detect.Severity]jsonSeverity `json:"by_severity"`
	ByType        map[detect.IssueType]jsonType    `json:"by_type"`
}

type jsonReport struct {
	Document     string              `json:"document"`
	DocumentPath string              `json:"document_path"`
	AnalysisDate string              `json:"analysis_date"`
	Summary      jsonSummary         `json:"summary"`
	Issues       []detect.Issue      `json:"issues"`
	ColorIssues  []detect.ColorIssue `json:"color_issues"`
}

// JSON renders the machine-readable report: document identity, the summary
// with sorted page lists, and the first MaxJSONIssues issues plus
// MaxJSONColorIssues color issues.
func JSON(d *Data) (string, error) {
	s := d.Summary

	out := jsonReport{
		Document:     d.Document,
		DocumentPath: d.Path,
		AnalysisDate: d.GeneratedAt.Format(time.RFC3339),
		Summary: jsonSummary{
			TotalIssues:   s.Overall.TotalPlaces,
			TotalWords:    s.Overall.TotalWords,
			PagesAffected: s.Overall.PagesWithIssues.Sorted(),
			BySeverity:    make(map[detect.Severity]jsonSeverity, len(s.BySeverity)),
			ByType:        make(map[detect.IssueType]jsonType, len(s.ByType)),
		},
		Issues:      capIssues(d.Issues, MaxJSONIssues),
		ColorIssues: capColorIssues(d.ColorIssues, MaxJSONColorIssues),
	}

	for sev, group := range s.BySeverity {
		out.Summary.BySeverity[sev] = jsonSeverity{Places: group.Places, Words: group.Words}
	}
	for t, totals := range s.ByType {
		out.Summary.ByType[t] = jsonType{
			TotalPlaces:   totals.TotalPlaces,
			TotalWords:    totals.TotalWords,
			PagesAffected: totals.PagesAffected.Sorted(),
		}
	}

	raw, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding json report: %w", err)
	}
	return string(raw), nil
}

func capIssues(issues []detect.Issue, max int) []detect.Issue {
	if issues == nil {
		return []detect.Issue{}
	}
	if len(issues) > max {
		return issues[:max]
	}
	return issues
}

func capColorIssues(issues []detect.ColorIssue, max int) []detect.ColorIssue {
	if issues == nil {
		return []detect.ColorIssue{}
	}
	if len(issues) > max {
		return issues[:max]
	}
	return issues
}
