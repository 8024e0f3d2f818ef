// Package toc locates and parses the index listing embedded in an export.
//
// Export bundles open with one or more table-of-contents pages listing
// article titles against their starting page, joined by dot leaders:
//
//	Council Delays Harbor Vote .......... 5
//	Storm Season Outlook ................ 12
//
// There is no structural markup, so parsing is heuristic: dot leaders
// anchor the page numbers, everything between two leaders is a candidate
// title, and candidates are filtered against bounds and an exclusion
// vocabulary to drop page furniture that happens to sit next to a number.
package toc

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jackzampolin/clipper/internal/config"
	"github.com/jackzampolin/clipper/internal/normalize"
	"github.com/jackzampolin/clipper/internal/types"
)

// leaderRe matches a dot leader followed by a candidate page number.
var leaderRe = regexp.MustCompile(`\.{2,}\s*(\d+)`)

// dotRunRe collapses leftover leader dots inside a candidate title.
var dotRunRe = regexp.MustCompile(`\.{3,}`)

var wsRunRe = regexp.MustCompile(`\s+`)

// exclusionVocab marks titles that are really page furniture. Matched as
// case-insensitive substrings, which is deliberately blunt: an index row
// whose title mentions the publisher or page numbering is never a real
// article in this convention.
var exclusionVocab = []string{
	"newsbank",
	"page",
	"document",
	"unknown",
	"rights reserved",
}

// Parse scans the first cfg.IndexScanPages pages for index rows and
// returns the recovered entries, deduplicated on (title, start page) and
// sorted ascending by start page. An empty result is valid: a bundle
// without a parseable index simply yields no articles.
func Parse(pages []types.Page, cfg config.Pipeline) []types.IndexEntry {
	limit := cfg.IndexScanPages
	if limit > len(pages) {
		limit = len(pages)
	}

	var entries []types.IndexEntry
	seen := make(map[types.IndexEntry]struct{})

	for _, page := range pages[:limit] {
		for _, e := range parsePage(page.Text, cfg) {
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			entries = append(entries, e)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].StartPage < entries[j].StartPage
	})
	return entries
}

// parsePage extracts index entries from a single candidate page.
func parsePage(text string, cfg config.Pipeline) []types.IndexEntry {
	// Work on a stripped copy so header/footer furniture on the index page
	// itself cannot bleed into titles. The original page text is untouched.
	work := normalize.StripBoilerplate(text)

	matches := leaderRe.FindAllStringSubmatchIndex(work, -1)
	if len(matches) == 0 {
		return nil
	}

	var entries []types.IndexEntry
	prevEnd := 0
	for _, m := range matches {
		startPage, err := strconv.Atoi(work[m[2]:m[3]])
		if err != nil {
			continue
		}

		titleRaw := work[prevEnd:m[0]]
		prevEnd = m[1]

		// Bounds are an open interval: numbers at or outside them are
		// incidental (years, phone numbers), not page references.
		if startPage <= cfg.MinStartPage || startPage >= cfg.MaxStartPage {
			continue
		}

		title := cleanTitle(titleRaw)
		if !acceptTitle(title, cfg) {
			continue
		}

		entries = append(entries, types.IndexEntry{Title: title, StartPage: startPage})
	}
	return entries
}

// cleanTitle collapses leftover leader dots and normalizes whitespace.
func cleanTitle(raw string) string {
	s := dotRunRe.ReplaceAllString(raw, " ")
	s = wsRunRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// acceptTitle applies the title heuristics: minimum length, exclusion
// vocabulary, and a minimum share of alphabetic characters.
func acceptTitle(title string, cfg config.Pipeline) bool {
	if utf8.RuneCountInString(title) < cfg.MinTitleLength {
		return false
	}

	lower := strings.ToLower(title)
	for _, term := range exclusionVocab {
		if strings.Contains(lower, term) {
			return false
		}
	}

	return alphaRatio(title) >= cfg.MinTitleAlphaRatio
}

// alphaRatio returns the fraction of runes in s that are letters.
func alphaRatio(s string) float64 {
	if s == "" {
		return 0
	}
	letters, total := 0, 0
	for _, r := range s {
		total++
		if unicode.IsLetter(r) {
			letters++
		}
	}
	return float64(letters) / float64(total)
}
