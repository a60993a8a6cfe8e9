package linkfinder

import (
	"context"
	"io"
	"log"
)

// ItemRef identifies one published content item whose detail we fetch.
type ItemRef struct {
	ID    string
	Title string
}

// Batch is everything one course offers a Source: the items, in listing order, and the text that
// belongs to the collection as a whole (for discussions, the topics' own messages).
type Batch struct {
	Items []ItemRef

	Aggregate    string
	HasAggregate bool
}

// Source is implemented once per kind of course content.  The walker drives it; new content types
// only need a new Source.
type Source interface {
	// Label names the collection in reports, e.g. "Discussions".
	Label() string

	// ListItems returns every published item of the course.  On failure it returns whatever it
	// gathered before the failure alongside the error.
	ListItems(ctx context.Context, courseID string) (Batch, error)

	// FetchDetail returns the full text of one item.  Items the user may not read come back as
	// empty text rather than an error.
	FetchDetail(ctx context.Context, courseID string, itemID string) (string, error)
}

// AggregateExtractor may be implemented by a Source that scans its aggregate text differently from
// item text.
type AggregateExtractor interface {
	ExtractAggregate(text string) []string
}

// Walker collects provider links from every item of a Source.
type Walker struct {
	Extractor *Extractor
	Logger    *log.Logger

	// OnItem, if set, is called after each item has been scanned.  total is the number of items in
	// the batch.
	OnItem func(ref ItemRef, text string, links []string, total int)
}

// NewWalker returns a Walker using extractor and logging to logger (nil discards).
func NewWalker(extractor *Extractor, logger *log.Logger) *Walker {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Walker{
		Extractor: extractor,
		Logger:    logger,
	}
}

// CollectLinks scans one course.  Links from items come first, in item order, followed by the links
// in the batch's aggregate text.  Links are not deduplicated across items.
//
// Failures never abort the run: a failed listing leaves us with the items found so far, and an
// item whose detail can't be fetched is skipped.
func (w *Walker) CollectLinks(ctx context.Context, courseID string, src Source) []string {
	all := []string{}

	batch, err := src.ListItems(ctx, courseID)
	if err != nil {
		w.Logger.Printf("%s: listing for course %s stopped early, continuing with %d items: %v\n",
			src.Label(), courseID, len(batch.Items), err)
	}

	for _, ref := range batch.Items {
		if ctx.Err() != nil {
			w.Logger.Printf("%s: stopping: %v\n", src.Label(), context.Cause(ctx))
			return all
		}

		text, err := src.FetchDetail(ctx, courseID, ref.ID)
		if err != nil {
			w.Logger.Printf("%s: skipping item %s (%q): %v\n", src.Label(), ref.ID, ref.Title, err)
			continue
		}

		links := w.Extractor.Extract(text)
		all = append(all, links...)

		if w.OnItem != nil {
			w.OnItem(ref, text, links, len(batch.Items))
		}
	}

	if batch.HasAggregate {
		var links []string
		if agg, ok := src.(AggregateExtractor); ok {
			links = agg.ExtractAggregate(batch.Aggregate)
		} else {
			links = w.Extractor.Extract(batch.Aggregate)
		}
		all = append(all, links...)
	}

	return all
}
