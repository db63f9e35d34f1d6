// Package main provides the CLI entrypoint for the accessibility analyzer.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tsawler/a11y"
	"github.com/tsawler/a11y/aggregate"
	"github.com/tsawler/a11y/config"
	"github.com/tsawler/a11y/contrast"
	"github.com/tsawler/a11y/detect"
	"github.com/tsawler/a11y/glyph"
	"github.com/tsawler/a11y/report"
	"github.com/tsawler/a11y/screenshot"
	"github.com/tsawler/a11y/textnorm"
)

var (
	flagFormat      string
	flagOutput      string
	flagConfig      string
	flagScreenshots bool
	flagShotMode    string
)

func main() {
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "a11y [document]",
		Short: "Analyze the visual accessibility of a PDF glyph dump",
		Long: `Analyzes text contrast, font size, and font readability against
WCAG 2.1 AA. The input is a glyph dump (<document>.pdf.json) produced by an
extraction front-end.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          run,
	}

	rootCmd.Flags().StringVarP(&flagFormat, "format", "f", "",
		"report format: full, summary, statistics, json, html")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "",
		"report output path (default: auto-generated under the report directory)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "a11y.toml",
		"configuration file")
	rootCmd.Flags().BoolVarP(&flagScreenshots, "screenshots", "s", false,
		"capture screenshots of problem areas")
	rootCmd.Flags().StringVar(&flagShotMode, "screenshot-mode", "",
		"screenshot mode: none, area, full_page, smart")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	path := cfg.DefaultDocument
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return fmt.Errorf("no document given and no default_document configured")
	}

	if _, err := os.Stat(path); err != nil {
		log.Printf("File not found or unreadable: %s", path)
		return err
	}

	if !hasPDFName(path) {
		fmt.Fprintf(os.Stderr, "Warning: %s does not follow the <document>.pdf.json naming convention.\n", path)
		if !confirm("Continue analysis? (y/n): ") {
			log.Print("Analysis cancelled.")
			return nil
		}
	}

	formatName := flagFormat
	if formatName == "" {
		formatName = cfg.ReportFormat
	}
	format, err := report.ParseFormat(formatName)
	if err != nil {
		return err
	}

	modeName := flagShotMode
	if modeName == "" {
		modeName = cfg.Screenshots.Mode
	}
	mode := screenshot.ModeNone
	if flagScreenshots {
		if mode, err = screenshot.ParseMode(modeName); err != nil {
			return err
		}
	}

	log.Printf("Starting accessibility analysis: %s", path)

	doc, err := glyph.Load(path)
	if err != nil {
		return err
	}
	log.Printf("Pages found: %d", doc.PageCount())

	res, warnings, err := a11y.FromDocument(doc).WithConfig(cfg).Result()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		log.Printf("Warning: %s", w)
	}
	log.Printf("Analysis complete. Issues found: %d", len(res.Issues))

	output := flagOutput
	if output == "" {
		output = defaultOutputName(cfg.ReportDir, path, format)
		if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
	}

	data := report.NewData(res.Document, path, res.Issues, res.ColorIssues)
	data.Summary = res.Summary
	rendered, err := report.Render(data, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	log.Printf("Report saved to %s", output)

	if format != report.FormatJSON && format != report.FormatHTML {
		fmt.Println(rendered)
	}

	if mode != screenshot.ModeNone {
		captureScreenshots(cfg, doc, res.Issues, mode)
	}

	printClosingStats(res)
	return nil
}

// hasPDFName accepts the <doc>.pdf.json dump convention and bare .json
// paths.
func hasPDFName(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".pdf.json") ||
		strings.HasSuffix(lower, ".pdf") ||
		strings.HasSuffix(lower, ".json")
}

func confirm(prompt string) bool {
	fmt.Fprint(os.Stderr, prompt)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return false
	}
	return strings.ToLower(strings.TrimSpace(scanner.Text())) == "y"
}

// defaultOutputName builds a timestamped report path under the report
// directory, like reports/manual_full_report_20260830_120000.txt.
func defaultOutputName(dir, docPath string, format report.Format) string {
	base := filepath.Base(docPath)
	base = strings.TrimSuffix(base, ".json")
	base = strings.TrimSuffix(base, ".pdf")
	timestamp := time.Now().Format("20060102_150405")

	var kind string
	switch format {
	case report.FormatJSON:
		kind = "report"
	case report.FormatSummary:
		kind = "summary"
	case report.FormatStatistics:
		kind = "statistics"
	case report.FormatHTML:
		kind = "report"
	default:
		kind = "full_report"
	}
	if dir == "" {
		dir = "reports"
	}
	return filepath.Join(dir, fmt.Sprintf("%s_%s_%s%s", base, kind, timestamp, format.Extension()))
}

func captureScreenshots(cfg config.Config, doc *glyph.Document, issues []detect.Issue, mode screenshot.Mode) {
	shotCfg := screenshot.DefaultConfig()
	if cfg.Screenshots.Dir != "" {
		shotCfg.Dir = cfg.Screenshots.Dir
	}
	if cfg.Screenshots.Scale > 0 {
		shotCfg.Scale = cfg.Screenshots.Scale
	}
	if len(cfg.Background) == 3 {
		shotCfg.Background = contrast.RGB{R: cfg.Background[0], G: cfg.Background[1], B: cfg.Background[2]}
	}

	svc := screenshot.NewService(shotCfg)
	written, errs := svc.CaptureAll(doc, issues, mode)
	for _, err := range errs {
		log.Printf("Screenshot warning: %v", err)
	}
	log.Printf("Screenshots written: %d pages", len(written))
}

// printClosingStats reproduces the closing console statistics: total
// problem volume, unique text fragments, and the most affected pages.
func printClosingStats(res *a11y.Result) {
	if len(res.Issues) == 0 {
		return
	}

	fmt.Println("\nFINAL STATISTICS:")
	fmt.Println(strings.Repeat("-", 40))
	fmt.Printf("Total problem text: %d words\n", res.Summary.Overall.TotalWords)

	uniqueTexts := make(map[string]struct{})
	for _, issue := range res.Issues {
		normalized := textnorm.Deduplicate(issue.Text)
		if len(normalized) > 100 {
			normalized = normalized[:100]
		}
		uniqueTexts[normalized] = struct{}{}
	}
	fmt.Printf("Unique text fragments: %d\n", len(uniqueTexts))

	stats := aggregate.PageStats(res.Issues)
	top := aggregate.TopPagesByWords(stats, 5)
	fmt.Println("\nMost affected pages (by text volume):")
	for _, page := range top {
		st := stats[page]
		fmt.Printf("\n  Page %d:\n", page)
		fmt.Printf("    - words: %d\n", st.Words)
		fmt.Printf("    - issues: %d\n", st.Places)
		if st.Places > 0 {
			fmt.Printf("    - average text per issue: %.1f words\n", float64(st.Words)/float64(st.Places))
		}
	}

	if len(res.ColorIssues) > 0 {
		printColorStats(res.ColorIssues)
	}
}

func printColorStats(colorIssues []detect.ColorIssue) {
	type bucketStats struct {
		count int
		texts map[string]struct{}
		words int
	}
	byBucket := make(map[string]*bucketStats)

	for _, ci := range colorIssues {
		name := string(ci.Bucket)
		st := byBucket[name]
		if st == nil {
			st = &bucketStats{texts: make(map[string]struct{})}
			byBucket[name] = st
		}
		st.count++
		text := ci.FullText
		if text == "" {
			text = ci.TextSample
		}
		if text != "" {
			if len(text) > 100 {
				text = text[:100]
			}
			st.texts[text] = struct{}{}
			st.words += textnorm.WordCount(text)
		}
	}

	names := make([]string, 0, len(byBucket))
	for name := range byBucket {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if byBucket[names[i]].words != byBucket[names[j]].words {
			return byBucket[names[i]].words > byBucket[names[j]].words
		}
		return names[i] < names[j]
	})

	fmt.Println("\nCOLOR SUMMARY:")
	for _, name := range names {
		st := byBucket[name]
		fmt.Printf("  %s: %d occurrences, %d unique texts, %d words\n",
			name, st.count, len(st.texts), st.words)
	}
}
