// Package types provides shared types used across multiple packages.
// This package has no dependencies on other clipper packages to avoid import cycles.
package types

// Page is one physical page carved out of the raw export stream.
// Pages are produced once by the segmenter and never mutated afterward.
type Page struct {
	Number int    // Page number taken verbatim from the "Page N of M" marker
	Text   string // Raw page text, marker included
}

// IndexEntry is one row recovered from an index (table of contents) page.
type IndexEntry struct {
	Title     string `json:"title" yaml:"title"`
	StartPage int    `json:"start_page" yaml:"start_page"`
}

// Article is a reconstructed article. Metadata fields are optional:
// an empty string or zero word count means the field could not be
// recovered, which is an expected outcome rather than an error.
type Article struct {
	Title       string `json:"title" yaml:"title"`
	PageNumber  int    `json:"page_number" yaml:"page_number"` // Original start page, kept for traceability
	Text        string `json:"text" yaml:"text"`
	Source      string `json:"source,omitempty" yaml:"source,omitempty"`
	Author      string `json:"author,omitempty" yaml:"author,omitempty"`
	PublishDate string `json:"publish_date,omitempty" yaml:"publish_date,omitempty"` // ISO YYYY-MM-DD when parseable
	WordCount   int    `json:"word_count,omitempty" yaml:"word_count,omitempty"`
}

// Result is the outcome of processing one export bundle.
type Result struct {
	Articles          []Article `json:"articles" yaml:"articles"`
	PagesSegmented    int       `json:"pages_segmented" yaml:"pages_segmented"`
	IndexEntries      int       `json:"index_entries" yaml:"index_entries"`
	DiscardedEmpty    int       `json:"discarded_empty" yaml:"discarded_empty"`
	DiscardedOversize int       `json:"discarded_oversize" yaml:"discarded_oversize"`
}

// Discarded returns the total number of articles dropped by the filter.
func (r *Result) Discarded() int {
	return r.DiscardedEmpty + r.DiscardedOversize
}
