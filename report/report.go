package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// Finding is one provider link found in one collection of one course.
type Finding struct {
	CourseName string `yaml:"course_name"`
	CourseURL  string `yaml:"course_url"`
	Collection string `yaml:"canvas_object"`
	URL        string `yaml:"url"`
}

// Findings pairs every link with the course and collection it came from, keeping link order.
func Findings(courseName string, courseURL string, collection string, links []string) []Finding {
	findings := make([]Finding, 0, len(links))
	for _, link := range links {
		findings = append(findings, Finding{
			CourseName: courseName,
			CourseURL:  courseURL,
			Collection: collection,
			URL:        link,
		})
	}
	return findings
}

type Format string

const (
	CSV   Format = "csv"
	Table Format = "table"
	YAML  Format = "yaml"
)

// ParseFormat accepts the --format values, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case CSV, Table, YAML:
		return f, nil
	}
	return "", fmt.Errorf("report: unknown format %q, expected one of csv, table, yaml", s)
}

// Header is the CSV header row.
var Header = []string{"Course Name", "Course URL", "Canvas Object", "Google Link Found in Canvas"}

// Write renders findings to w in the given format.
func Write(w io.Writer, format Format, findings []Finding) error {
	switch format {
	case CSV:
		return writeCSV(w, findings)
	case Table:
		return writeTable(w, findings)
	case YAML:
		return writeYAML(w, findings)
	}
	return fmt.Errorf("report: unknown format %q", format)
}

func writeCSV(w io.Writer, findings []Finding) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("report: couldn't write CSV header: %w", err)
	}
	for _, f := range findings {
		if err := cw.Write([]string{f.CourseName, f.CourseURL, f.Collection, f.URL}); err != nil {
			return fmt.Errorf("report: couldn't write CSV row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("report: couldn't flush CSV: %w", err)
	}
	return nil
}

func writeTable(w io.Writer, findings []Finding) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	row := table.Row{}
	for _, h := range Header {
		row = append(row, h)
	}
	t.AppendHeader(row)

	for _, f := range findings {
		t.AppendRow(table.Row{f.CourseName, f.CourseURL, f.Collection, f.URL})
	}
	t.AppendFooter(table.Row{"", "", "Total", len(findings)})

	t.Render()
	return nil
}

func writeYAML(w io.Writer, findings []Finding) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(findings); err != nil {
		return fmt.Errorf("report: couldn't encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("report: couldn't flush YAML: %w", err)
	}
	return nil
}
