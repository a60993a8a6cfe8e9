package linkfinder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toothbrush/canvas-link-finder/linkfinder"
)

func newExtractor(t *testing.T) *linkfinder.Extractor {
	t.Helper()
	e, err := linkfinder.NewExtractor()
	require.NoError(t, err)
	return e
}

func TestExtract_EmptyInput(t *testing.T) {
	e := newExtractor(t)

	assert.Empty(t, e.Extract(""))
	assert.Empty(t, e.Extract("   \n\t"))
	assert.NotNil(t, e.Extract(""))
}

func TestExtract_AnchorTextSameAsHref(t *testing.T) {
	e := newExtractor(t)

	links := e.Extract(`<a href="https://docs.google.com/doc1">https://docs.google.com/doc1</a>`)
	assert.Equal(t, []string{"https://docs.google.com/doc1"}, links)
}

func TestExtract_AnchorTextDifferentProviderURL(t *testing.T) {
	e := newExtractor(t)

	links := e.Extract(`<a href="https://drive.google.com/fileX">https://forms.google.com/formY</a>`)
	assert.ElementsMatch(t, []string{
		"https://drive.google.com/fileX",
		"https://forms.google.com/formY",
	}, links)
}

func TestExtract_PlainText(t *testing.T) {
	e := newExtractor(t)

	links := e.Extract("see https://goo.gl/abc123 for details")
	assert.Equal(t, []string{"https://goo.gl/abc123"}, links)
}

func TestExtract_NonMatchingLink(t *testing.T) {
	e := newExtractor(t)

	assert.Empty(t, e.Extract(`<a href="https://example.com/x">https://example.com/x</a>`))
	assert.Empty(t, e.Extract("https://example.com/x"))
}

func TestExtract_AnchorWithPlainLabel(t *testing.T) {
	e := newExtractor(t)

	links := e.Extract(`<p>Please fill in <a href="https://forms.google.com/f/abc">this form</a>.</p>`)
	assert.Equal(t, []string{"https://forms.google.com/f/abc"}, links)
}

func TestExtract_NonProviderHrefWithProviderText(t *testing.T) {
	e := newExtractor(t)

	links := e.Extract(`<a href="https://example.com/redirect">https://docs.google.com/doc2</a>`)
	assert.Equal(t, []string{"https://docs.google.com/doc2"}, links)
}

func TestExtract_CaseInsensitive(t *testing.T) {
	e := newExtractor(t)

	links := e.Extract(`Slides: HTTPS://Docs.Google.com/presentation/d/xyz`)
	assert.Equal(t, []string{"HTTPS://Docs.Google.com/presentation/d/xyz"}, links)
}

func TestExtract_Deduplicates(t *testing.T) {
	e := newExtractor(t)

	links := e.Extract(`
		<p>https://drive.google.com/a and again https://drive.google.com/a</p>
		<a href="https://drive.google.com/a">folder</a>`)
	assert.Equal(t, []string{"https://drive.google.com/a"}, links)
}

func TestExtract_StopsAtWhitespace(t *testing.T) {
	e := newExtractor(t)

	links := e.Extract("one https://goo.gl/x\ttwo https://google.com/y\nthree https://docs.google.com/z four")
	assert.ElementsMatch(t, []string{
		"https://goo.gl/x",
		"https://google.com/y",
		"https://docs.google.com/z",
	}, links)
}

func TestExtract_MalformedMarkup(t *testing.T) {
	e := newExtractor(t)

	links := e.Extract(`<div><a href="https://docs.google.com/doc3">doc<p><b>unclosed https://goo.gl/q`)
	assert.ElementsMatch(t, []string{
		"https://docs.google.com/doc3",
		"https://goo.gl/q",
	}, links)
}

func TestExtract_CustomHosts(t *testing.T) {
	e, err := linkfinder.NewExtractor("box.com")
	require.NoError(t, err)

	links := e.Extract(`https://box.com/s/1 https://docs.google.com/doc1`)
	assert.Equal(t, []string{"https://box.com/s/1"}, links)
}

func TestNewProviders_Validation(t *testing.T) {
	_, err := linkfinder.NewProviders()
	assert.Error(t, err)

	_, err = linkfinder.NewProviders("https://docs.google.com")
	assert.Error(t, err)

	_, err = linkfinder.NewProviders("docs.google.com", " ")
	assert.Error(t, err)

	p, err := linkfinder.NewProviders("Docs.Google.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"docs.google.com"}, p.Hosts())
	assert.True(t, p.Matches("https://docs.google.com/x"))
	assert.False(t, p.Matches("see https://docs.google.com/x"))
}
