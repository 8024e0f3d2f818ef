// Package metadata recovers per-article metadata from reconstructed text.
//
// The export convention embeds a standalone word-count line ("1,204
// words") near the top of each article, and the lines around it carry the
// publish date, source outlet and author in loosely consistent positions.
// That marker is the anchor: everything here is positional heuristics
// relative to the first word-count line found. Articles without a marker
// yield zero metadata, which is an expected outcome.
package metadata

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jackzampolin/clipper/internal/config"
)

// Metadata holds the fields recovered for one article.
// Empty string / zero means the field could not be recovered.
type Metadata struct {
	Source      string
	Author      string
	PublishDate string
	WordCount   int
}

// wordCountRe anchors the scan: an integer, optionally comma-grouped in
// thousands, followed by the word "words", as the entire line.
var wordCountRe = regexp.MustCompile(`(?i)^(\d+(?:,\d{3})*)\s+words$`)

// timeRe matches a time-of-day line like "4:37" or "04:37 PM".
var timeRe = regexp.MustCompile(`(?i)^\d{1,2}:\d{2}\s*(?:[AP]M)?$`)

// pressRe matches "Press" as a whole word, the strongest single signal
// that a byline candidate is actually an outlet name.
var pressRe = regexp.MustCompile(`\bPress\b`)

// Extract scans the first cfg.MetadataScanLines non-empty lines of text
// for the word-count marker and derives the remaining fields from the
// lines around the first match. Later markers in the same article are
// ignored.
func Extract(text, title string, cfg config.Pipeline) Metadata {
	lines := nonEmptyLines(text)

	limit := cfg.MetadataScanLines
	if limit > len(lines) {
		limit = len(lines)
	}

	for i := 0; i < limit; i++ {
		m := wordCountRe.FindStringSubmatch(lines[i])
		if m == nil {
			continue
		}

		var md Metadata
		if n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", "")); err == nil {
			md.WordCount = n
		}
		if i+1 < len(lines) {
			md.PublishDate = NormalizeDate(lines[i+1])
		}
		md.Source = sourceNear(lines, i)
		if i > 0 {
			if author, ok := AcceptAuthor(lines[i-1], title); ok {
				md.Author = author
			}
		}
		return md
	}

	return Metadata{}
}

// sourceNear picks the source outlet relative to the word-count line at
// index i: normally two lines below, or three when a time-of-day line
// sits in between.
func sourceNear(lines []string, i int) string {
	idx := i + 2
	if idx < len(lines) && timeRe.MatchString(lines[idx]) {
		idx++
	}
	if idx >= len(lines) {
		return ""
	}
	if !ValidSource(lines[idx]) {
		return ""
	}
	return lines[idx]
}

// ValidSource reports whether s is plausible as a source outlet name:
// long enough, carries at least two letters, and is neither a time of
// day nor a bare number.
func ValidSource(s string) bool {
	if utf8.RuneCountInString(s) < 3 {
		return false
	}
	if timeRe.MatchString(s) {
		return false
	}
	letters := 0
	digitsOnly := true
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			letters++
			digitsOnly = false
		case !unicode.IsDigit(r):
			digitsOnly = false
		}
	}
	return letters >= 2 && !digitsOnly
}

// SourceLike reports whether a byline candidate reads like an outlet
// name rather than a person: "Press" as a whole word across more than
// two words ("Associated Press Staff Writers").
func SourceLike(s string) bool {
	return pressRe.MatchString(s) && len(strings.Fields(s)) > 2
}

// AcceptAuthor vets the line preceding the word-count marker as a byline.
// A candidate containing a pipe is truncated to the text before the first
// pipe, and the prefix is re-checked against the single-word rule.
// Returns the cleaned author and whether it was accepted.
func AcceptAuthor(candidate, title string) (string, bool) {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return "", false
	}
	if before, _, found := strings.Cut(candidate, "|"); found {
		candidate = strings.TrimSpace(before)
	}
	if len(strings.Fields(candidate)) < 2 {
		return "", false
	}
	if candidate == title {
		return "", false
	}
	if SourceLike(candidate) {
		return "", false
	}
	return candidate, true
}

// nonEmptyLines splits text into trimmed lines, dropping blanks. The
// positional offsets above are defined over this sequence.
func nonEmptyLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
