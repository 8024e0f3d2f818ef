// Package span carves per-article page ranges out of the segmented pages.
package span

import (
	"sort"
	"strings"

	"github.com/jackzampolin/clipper/internal/segment"
	"github.com/jackzampolin/clipper/internal/types"
)

// Build reconstructs one article per index entry. Entries must already be
// sorted ascending by start page (toc.Parse guarantees this).
//
// The i-th article spans [entries[i].StartPage, entries[i+1].StartPage-1];
// the last entry extends to the highest known page number. When page
// numbering is inconsistent the end page is clamped to never precede the
// start page, so duplicate start pages produce adjacent one-page spans
// rather than inverted ranges. Page numbers with no known page are
// skipped: gaps in the numbering are tolerated.
func Build(entries []types.IndexEntry, pages []types.Page) []types.Article {
	if len(entries) == 0 || len(pages) == 0 {
		return nil
	}

	lastPage := segment.MaxPageNumber(pages)

	articles := make([]types.Article, 0, len(entries))
	for i, entry := range entries {
		end := lastPage
		if i+1 < len(entries) {
			end = entries[i+1].StartPage - 1
		}
		if end < entry.StartPage {
			end = entry.StartPage
		}

		articles = append(articles, types.Article{
			Title:      entry.Title,
			PageNumber: entry.StartPage,
			Text:       rangeText(pages, entry.StartPage, end),
		})
	}
	return articles
}

// rangeText concatenates the text of every known page whose number falls
// in [start, end], in page-number order, joined by a blank line.
func rangeText(pages []types.Page, start, end int) string {
	var in []types.Page
	for _, p := range pages {
		if p.Number >= start && p.Number <= end {
			in = append(in, p)
		}
	}
	// Stable so duplicate page numbers keep their stream order.
	sort.SliceStable(in, func(i, j int) bool { return in[i].Number < in[j].Number })

	parts := make([]string, len(in))
	for i, p := range in {
		parts[i] = p.Text
	}
	return strings.Join(parts, "\n\n")
}
