package screenshot

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/tsawler/a11y/detect"
	"github.com/tsawler/a11y/glyph"
)

const timestampLayout = "20060102_150405"

// Service writes issue screenshots to disk. Failures are reported to the
// caller but never interrupt analysis.
type Service struct {
	renderer *Renderer
	dir      string
	now      func() time.Time
}

// NewService builds a screenshot service for the configured output
// directory.
func NewService(config Config) *Service {
	r := NewRenderer(config)
	return &Service{
		renderer: r,
		dir:      r.config.Dir,
		now:      time.Now,
	}
}

// CapturePage writes a full-page screenshot and returns its path.
func (s *Service) CapturePage(page *glyph.Page, issueType string) (string, error) {
	img := s.renderer.RenderPage(page)
	return s.save(img, page.Number, issueType, "full_page")
}

// CaptureIssue writes a highlighted crop around one issue.
func (s *Service) CaptureIssue(page *glyph.Page, issue detect.Issue) (string, error) {
	img, origin := s.renderer.RenderRegion(page, issue.X, issue.Y, issue.X+100, issue.Y+20, true)

	px, py := s.renderer.PixelAt(page, issue.X, issue.Y)
	s.renderer.Annotate(img, px-origin.X, py-origin.Y, issue.Type.Label())

	return s.save(img, issue.Page, string(issue.Type), "area")
}

// CaptureAll produces screenshots for the issues according to the mode and
// returns the paths written, keyed by page for full-page captures.
func (s *Service) CaptureAll(source glyph.Source, issues []detect.Issue, mode Mode) (map[int]string, []error) {
	if mode == ModeNone || len(issues) == 0 {
		return nil, nil
	}

	written := make(map[int]string)
	var errs []error

	pageNumbers := make(map[int]struct{})
	for _, issue := range issues {
		pageNumbers[issue.Page] = struct{}{}
	}
	pages := make([]int, 0, len(pageNumbers))
	for p := range pageNumbers {
		pages = append(pages, p)
	}
	sort.Ints(pages)

	if mode == ModeFullPage || mode == ModeSmart {
		for _, num := range pages {
			page, err := source.Page(num - 1)
			if err != nil {
				errs = append(errs, fmt.Errorf("page %d: %w", num, err))
				continue
			}
			path, err := s.CapturePage(page, "")
			if err != nil {
				errs = append(errs, fmt.Errorf("page %d: %w", num, err))
				continue
			}
			written[num] = path
		}
	}

	if mode == ModeArea || mode == ModeSmart {
		for _, issue := range issues {
			if mode == ModeSmart && issue.Severity != detect.SeverityHigh {
				continue
			}
			page, err := source.Page(issue.Page - 1)
			if err != nil {
				errs = append(errs, fmt.Errorf("page %d: %w", issue.Page, err))
				continue
			}
			if _, err := s.CaptureIssue(page, issue); err != nil {
				errs = append(errs, fmt.Errorf("page %d issue: %w", issue.Page, err))
			}
		}
	}

	return written, errs
}

func (s *Service) save(img *image.RGBA, pageNum int, issueType, kind string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating screenshot directory: %w", err)
	}

	timestamp := s.now().Format(timestampLayout)
	var name string
	if issueType != "" {
		name = fmt.Sprintf("page_%d_%s_%s_%s.png", pageNum, issueType, kind, timestamp)
	} else {
		name = fmt.Sprintf("page_%d_%s_%s.png", pageNum, kind, timestamp)
	}
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating screenshot file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("encoding screenshot: %w", err)
	}
	return path, nil
}
