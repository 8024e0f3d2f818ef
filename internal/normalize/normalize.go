// Package normalize strips recurring export boilerplate from article text
// and collapses the whitespace the removals leave behind.
//
// The rules target the producer's per-page furniture only: the combined
// "Page N of M © YEAR ... All rights reserved." header and its fragments,
// plus the footer metadata block (ISSN, volume/issue, document ID, a bare
// language line, bare numeric ranges, and the aggregator credit line).
// A rule never matches ordinary prose, so running Clean twice is a no-op.
package normalize

import (
	"regexp"
	"strings"
)

// Removal rules in application order. The combined header must run before
// its fragments so a whole match never leaves orphaned punctuation behind.
var boilerplateRules = []*regexp.Regexp{
	// Combined per-page header.
	regexp.MustCompile(`Page \d+ of \d+\s*©\s*\d{4}\s+[^\n]*?All [Rr]ights [Rr]eserved\.?`),
	// Aggregator credit, e.g. "© 2025 Newsbank, content provided by the publisher".
	regexp.MustCompile(`(?m)^©\s*\d{4}[^\n]*provided by[^\n]*$`),
	// Header fragments, caught individually when the combined form is split
	// across a page boundary or partially garbled.
	regexp.MustCompile(`©\s*\d{4}\s+[^\n]*?All [Rr]ights [Rr]eserved\.?`),
	regexp.MustCompile(`Page \d+ of \d+`),
	regexp.MustCompile(`All [Rr]ights [Rr]eserved\.?`),
	// Footer metadata lines.
	regexp.MustCompile(`(?m)^ISSN:?\s*\d{4}-?\d{3}[\dXx]\s*$`),
	regexp.MustCompile(`(?m)^(?:Volume|Vol\.?)\s*\d+\s*;\s*Issue\s*\d+[^\n]*$`),
	regexp.MustCompile(`(?m)^Document [A-Za-z0-9]+\s*$`),
	regexp.MustCompile(`(?m)^English\s*$`),
	regexp.MustCompile(`(?m)^\d+\s*[-–]\s*\d+\s*$`),
}

var (
	hspaceRunRe     = regexp.MustCompile(`[ \t]{2,}`)
	spaceBeforeNLRe = regexp.MustCompile(`[ \t]+\n`)
	spaceAfterNLRe  = regexp.MustCompile(`\n[ \t]+`)
	newlineRunRe    = regexp.MustCompile(`\n{3,}`)
)

// StripBoilerplate removes every occurrence of every boilerplate rule.
// Whitespace is left untouched; callers that need clean text use Clean.
func StripBoilerplate(text string) string {
	for _, rule := range boilerplateRules {
		text = rule.ReplaceAllString(text, "")
	}
	return text
}

// CollapseWhitespace normalizes whitespace without removing content:
// interior runs of horizontal whitespace become a single space, whitespace
// adjacent to newlines is trimmed, runs of 3+ newlines collapse to exactly
// two, and the result is trimmed at both ends.
func CollapseWhitespace(text string) string {
	text = hspaceRunRe.ReplaceAllString(text, " ")
	text = spaceBeforeNLRe.ReplaceAllString(text, "\n")
	text = spaceAfterNLRe.ReplaceAllString(text, "\n")
	text = newlineRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// Clean strips boilerplate and then collapses whitespace. This is the
// normalization applied to every article before validation; it returns a
// new string and never mutates its input.
func Clean(text string) string {
	return CollapseWhitespace(StripBoilerplate(text))
}
