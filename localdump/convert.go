package localdump

import (
	"fmt"
	"net/url"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	mdplugin "github.com/JohannesKaufmann/html-to-markdown/plugin"
	"github.com/PuerkitoBio/goquery"
	"gopkg.in/yaml.v3"
)

// MarkdownHeader is the YAML front matter of an archived item.
type MarkdownHeader struct {
	Title      string   `yaml:"title"`
	ItemID     string   `yaml:"item_id"`
	CourseID   string   `yaml:"course_id"`
	Collection string   `yaml:"collection"`
	URI        string   `yaml:"uri,omitempty"`
	Links      []string `yaml:"links"`
}

// LocalMarkdown is one rendered file, ready to be written below the archive directory.
type LocalMarkdown struct {
	Header       MarkdownHeader
	Content      string
	RelativePath string
}

// ConvertToMarkdown renders one scanned item as Markdown with a YAML header.
func (a *Archive) ConvertToMarkdown(item Item) (LocalMarkdown, error) {
	// md.NewConverter only takes a hostname for resolving relative links, which loses the scheme.
	// Canvas writes plenty of '/courses/123/files/..' links, so patch the scheme back in.
	opt := &md.Options{
		GetAbsoluteURL: func(selec *goquery.Selection, rawURL string, domain string) string {
			if domain == "" {
				return rawURL
			}

			u, err := url.Parse(rawURL)
			if err != nil {
				return rawURL
			}

			if u.Scheme == "data" {
				return rawURL
			}

			if u.Scheme == "" {
				u.Scheme = a.BaseURI.Scheme
			}
			if u.Host == "" {
				u.Host = domain
			}

			return u.String()
		},
	}

	host := ""
	if a.BaseURI != nil {
		host = a.BaseURI.Host
	}
	converter := md.NewConverter(host, true, opt)
	// Github flavoured Markdown knows about tables 👍
	converter.Use(mdplugin.GitHubFlavored())

	markdown, err := converter.ConvertString(item.HTML)
	if err != nil {
		return LocalMarkdown{}, fmt.Errorf("localdump: failed to convert to Markdown: %w", err)
	}

	header := MarkdownHeader{
		Title:      item.Title,
		ItemID:     item.ID,
		CourseID:   item.CourseID,
		Collection: item.Collection,
		URI:        item.URI,
		Links:      item.Links,
	}
	if header.Links == nil {
		header.Links = []string{}
	}

	yamlHeader, err := yaml.Marshal(header)
	if err != nil {
		return LocalMarkdown{}, fmt.Errorf("localdump: couldn't marshal header YAML: %w", err)
	}

	body := fmt.Sprintf(`---
%s
---
%s
`,
		strings.TrimSpace(string(yamlHeader)),
		markdown)

	return LocalMarkdown{
		Header:       header,
		Content:      body,
		RelativePath: ItemPath(item),
	}, nil
}
