/*
Copyright © 2024 paul <paul@denknerd.org>
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/toothbrush/canvas-link-finder/canvas"
	"github.com/toothbrush/canvas-link-finder/linkfinder"
	"github.com/toothbrush/canvas-link-finder/localdump"
	"github.com/toothbrush/canvas-link-finder/report"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

var scanUsage = strings.TrimSpace(`
Scan the discussion topics of one or more courses for Google Docs, Drive and Forms links.

Every published topic is fetched along with its replies; topic bodies are scanned once more as a
whole.  Courses can be given as arguments or listed under 'courses' in the config file.  Results go
to a CSV file in ~/Downloads unless --output says otherwise ('-' for stdout).
`)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan [COURSE_ID...]",
	Short: "Find Google links in Canvas courses",
	Long:  scanUsage,
	RunE: func(cmd *cobra.Command, args []string) error {
		courses := append(append([]string{}, Courses...), args...)
		if len(courses) == 0 {
			return fmt.Errorf("scan: no courses given, pass COURSE_ID arguments or set 'courses' in your config")
		}
		debugLog("  Courses: %v\n", courses)
		debugLog("  WithVCR: %v\n", WithVCR)
		return runScan(cmd.Context(), courses)
	},
}

var (
	WithVCR       bool
	PerPage       int
	Courses       []string
	Output        string
	Format        string
	DumpDir       string
	ProviderHosts []string
)

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().BoolVar(&WithVCR, "with-vcr", false, "use go-vcr to cache responses")
	scanCmd.Flags().IntVar(&PerPage, "per-page", 10, "topics requested per page")
	scanCmd.Flags().StringSliceVar(&Courses, "courses", []string{}, "course IDs to scan, in addition to arguments")
	scanCmd.Flags().StringVarP(&Output, "output", "o", "~/Downloads/google_links_finder.csv", "where to write results, '-' for stdout")
	scanCmd.Flags().StringVar(&Format, "format", "csv", "output format: csv, table or yaml")
	scanCmd.Flags().StringVar(&DumpDir, "dump-dir", "", "also keep a Markdown copy of every scanned topic here")
	scanCmd.Flags().StringSliceVar(&ProviderHosts, "provider-host", []string{}, "hosts to look for (default: Google Docs, Drive, Forms, goo.gl, google.com)")
}

func runScan(ctx context.Context, courses []string) error {
	format, err := report.ParseFormat(Format)
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}

	extractor, err := linkfinder.NewExtractor(ProviderHosts...)
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}

	var archive *localdump.Archive
	if DumpDir != "" {
		dir, err := homedir.Expand(DumpDir)
		if err != nil {
			return fmt.Errorf("scan: couldn't expand homedir: %w", err)
		}
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("scan: couldn't create dump directory %s: %w", dir, err)
		}
		archive = &localdump.Archive{Dir: dir}
	}

	// everything above must be in order before we talk to Canvas.
	api, stopVCR, err := newAPI(WithVCR)
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}
	defer func() {
		if err := stopVCR(); err != nil {
			log.Printf("Couldn't save VCR cassette: %v\n", err)
		}
	}()
	if archive != nil {
		archive.BaseURI = api.BaseURI
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)
	findings := []report.Finding{}

	for _, courseID := range courses {
		courseFindings, err := scanCourse(ctx, api, extractor, archive, logger, courseID)
		if err != nil {
			return fmt.Errorf("scan: %w", err)
		}
		findings = append(findings, courseFindings...)
	}

	return writeReport(format, findings)
}

func scanCourse(ctx context.Context, api *canvas.API, extractor *linkfinder.Extractor, archive *localdump.Archive, logger *log.Logger, courseID string) ([]report.Finding, error) {
	courseName, err := api.CourseName(ctx, courseID)
	if errors.Is(err, canvas.ErrUnauthorized) {
		// no point carrying on with a bad token.
		return nil, err
	}
	if err != nil {
		logger.Printf("Couldn't determine name of course %s: %v\n", courseID, err)
		courseName = ""
	}
	logger.Printf("Current course name is %q.\n", courseName)

	source := &linkfinder.DiscussionSource{
		API:     api,
		PerPage: PerPage,
	}
	walker := linkfinder.NewWalker(extractor, logger)

	p := mpb.New(mpb.WithWidth(64), mpb.WithOutput(progressOutput()))
	bar := p.AddBar(0,
		mpb.PrependDecorators(
			decor.Name(fmt.Sprintf("%s %s:", courseID, source.Label()),
				decor.WC{C: decor.DindentRight | decor.DextraSpace}),
		),
		mpb.AppendDecorators(
			decor.CountersNoUnit("(%d/%d) "),
			decor.NewPercentage("%d"),
		),
	)

	walker.OnItem = func(ref linkfinder.ItemRef, text string, links []string, total int) {
		bar.SetTotal(int64(total), false)
		bar.Increment()
		debugLog("Topic %s (%s): %v\n", ref.ID, ref.Title, links)

		if archive == nil {
			return
		}
		_, err := archive.Write(localdump.Item{
			CourseID:   courseID,
			Collection: source.Label(),
			ID:         ref.ID,
			Title:      ref.Title,
			URI:        fmt.Sprintf("%s/discussion_topics/%s", api.CourseURL(courseID), ref.ID),
			HTML:       text,
			Links:      links,
		})
		if err != nil {
			logger.Printf("Couldn't archive topic %s: %v\n", ref.ID, err)
		}
	}

	links := walker.CollectLinks(ctx, courseID, source)

	// complete the bar even if there was nothing to scan.
	bar.SetTotal(-1, true)
	p.Wait()

	logger.Printf("Found %d Google links in %s of course %s.\n", len(links), source.Label(), courseID)

	return report.Findings(courseName, api.CourseURL(courseID), source.Label(), links), nil
}

func progressOutput() io.Writer {
	if Debug {
		// interleaving with debug lines makes a mess.
		return io.Discard
	}
	return os.Stderr
}

func writeReport(format report.Format, findings []report.Finding) error {
	if Output == "-" {
		return report.Write(os.Stdout, format, findings)
	}

	outputPath, err := homedir.Expand(Output)
	if err != nil {
		return fmt.Errorf("scan: couldn't expand homedir: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("scan: couldn't create directory for %s: %w", outputPath, err)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("scan: couldn't create %s: %w", outputPath, err)
	}
	defer f.Close()

	if err := report.Write(f, format, findings); err != nil {
		return fmt.Errorf("scan: couldn't write %s: %w", outputPath, err)
	}

	fmt.Printf("Results written to: %s\n", outputPath)
	return nil
}
