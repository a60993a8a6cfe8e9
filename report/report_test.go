package report_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toothbrush/canvas-link-finder/report"
	"gopkg.in/yaml.v3"
)

func sampleFindings() []report.Finding {
	return report.Findings("Intro, to \"Widgets\"", "https://canvas.example.edu/courses/42", "Discussions", []string{
		"https://docs.google.com/doc1",
		"https://goo.gl/abc",
	})
}

func TestParseFormat(t *testing.T) {
	f, err := report.ParseFormat(" CSV ")
	require.NoError(t, err)
	assert.Equal(t, report.CSV, f)

	_, err = report.ParseFormat("xml")
	assert.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.CSV, sampleFindings()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, report.Header, records[0])
	assert.Equal(t, []string{"Intro, to \"Widgets\"", "https://canvas.example.edu/courses/42", "Discussions", "https://docs.google.com/doc1"}, records[1])
	assert.Equal(t, "https://goo.gl/abc", records[2][3])
}

func TestWriteCSV_NoFindings(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.CSV, nil))
	assert.Equal(t, "Course Name,Course URL,Canvas Object,Google Link Found in Canvas\n", buf.String())
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.YAML, sampleFindings()))

	var decoded []report.Finding
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleFindings(), decoded)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.Table, sampleFindings()))

	out := buf.String()
	assert.Contains(t, out, "https://docs.google.com/doc1")
	assert.Contains(t, out, "https://goo.gl/abc")
	assert.Contains(t, out, "2")
}
