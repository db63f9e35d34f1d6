package a11y

import (
	"fmt"
	"strings"
)

// Warning describes a non-fatal problem encountered during analysis, such as
// a page that could not be read. Analysis continues past warnings; the
// affected page simply contributes no findings.
type Warning struct {
	// Page is the 1-based page number the warning applies to, or 0 for
	// document-level warnings.
	Page    int
	Message string
}

func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("page %d: %s", w.Page, w.Message)
	}
	return w.Message
}

// FormatWarnings joins warnings into a single string for logging.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
