// Package segment splits a raw export stream into physical pages.
//
// Newsclip exports mark every page with a recurring "Page N of M" header.
// Each marker opens a new page running to the start of the next marker (or
// the end of the stream), and the captured N becomes the page number. Any
// stream text preceding the first marker stays on the first page. The
// marker numbers are taken verbatim: a misnumbered or duplicated marker is
// tolerated here and handled defensively by later stages.
package segment

import (
	"regexp"
	"strconv"

	"github.com/jackzampolin/clipper/internal/types"
)

// pageMarkerRe matches the per-page header inserted by the export producer.
// Case-sensitive on purpose: "page 3 of 50" in running prose must not split.
var pageMarkerRe = regexp.MustCompile(`Page (\d+) of \d+`)

// Pages splits fullText into an ordered slice of pages.
//
// When the stream contains no page markers the entire input becomes a
// single page numbered 1, so the result is never empty for non-empty
// input. The concatenation of the returned page texts reproduces the
// input losslessly.
func Pages(fullText string) []types.Page {
	if fullText == "" {
		return nil
	}

	matches := pageMarkerRe.FindAllStringSubmatchIndex(fullText, -1)
	if len(matches) == 0 {
		return []types.Page{{Number: 1, Text: fullText}}
	}

	pages := make([]types.Page, 0, len(matches))
	for i, m := range matches {
		start := m[0]
		if i == 0 {
			// Any preamble before the first marker belongs to the first
			// page, so concatenating the pages reproduces the stream.
			start = 0
		}
		end := len(fullText)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		num, err := strconv.Atoi(fullText[m[2]:m[3]])
		if err != nil {
			// \d+ capture always parses unless it overflows; skip if it does.
			continue
		}

		pages = append(pages, types.Page{Number: num, Text: fullText[start:end]})
	}

	if len(pages) == 0 {
		return []types.Page{{Number: 1, Text: fullText}}
	}
	return pages
}

// MaxPageNumber returns the highest page number present.
// Returns 0 for an empty slice.
func MaxPageNumber(pages []types.Page) int {
	max := 0
	for _, p := range pages {
		if p.Number > max {
			max = p.Number
		}
	}
	return max
}
