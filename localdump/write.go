package localdump

import (
	"fmt"
	"net/url"
	"os"
	"path"
)

// Archive keeps a Markdown copy of every scanned item, so a report can be checked against what
// was actually on the page.
type Archive struct {
	// Dir is the archive root; items land in Dir/<course id>/.
	Dir string

	// BaseURI of the Canvas install, used to absolutise relative links.
	BaseURI *url.URL

	// DryRun renders items without touching the file system.
	DryRun bool
}

// Item is one scanned piece of course content.
type Item struct {
	CourseID   string
	Collection string
	ID         string
	Title      string
	URI        string
	HTML       string
	Links      []string
}

// ItemPath is where an item is stored relative to the archive root: <course>/<id>-<slug>.md, or
// <course>/<id>.md when the title makes for no usable slug.
func ItemPath(item Item) string {
	name := item.ID
	if slug := canonicalise(item.Title); slug != "" {
		name = fmt.Sprintf("%s-%s", item.ID, slug)
	}
	return path.Join(item.CourseID, name+".md")
}

// Write converts item to Markdown and stores it.
func (a *Archive) Write(item Item) (LocalMarkdown, error) {
	markdown, err := a.ConvertToMarkdown(item)
	if err != nil {
		return LocalMarkdown{}, fmt.Errorf("localdump: convert to Markdown failed: %w", err)
	}

	if err := a.WriteMarkdownIntoLocal(markdown); err != nil {
		return LocalMarkdown{}, fmt.Errorf("localdump: failed writing file: %w", err)
	}

	return markdown, nil
}

func (a *Archive) WriteMarkdownIntoLocal(contents LocalMarkdown) error {
	// Does local repo exist?
	stat, err := os.Stat(a.Dir)
	if err != nil {
		return fmt.Errorf("localdump: cannot stat '%s': %w", a.Dir, err)
	}

	if !stat.IsDir() {
		// path is not a directory.  this is bad, we should bail
		return fmt.Errorf("localdump: archive path not a directory: '%s'", a.Dir)
	}

	// construct destination path
	abs := path.Join(a.Dir, contents.RelativePath)
	directory := path.Dir(abs)

	if a.DryRun {
		return nil
	}

	if err = os.MkdirAll(directory, 0750); err != nil {
		return fmt.Errorf("localdump: couldn't create directory %s: %w", directory, err)
	}

	f, err := os.Create(abs)
	if err != nil {
		return fmt.Errorf("localdump: couldn't create file %s: %w", abs, err)
	}

	defer f.Close()
	if _, err = f.WriteString(contents.Content); err != nil {
		return fmt.Errorf("localdump: couldn't write to file %s: %w", abs, err)
	}

	return nil
}
