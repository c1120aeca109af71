// Package redaction removes contact-identifying substrings from peer messages
// before they are shown to the counterparty. The matchers are deliberately
// biased toward over-redaction: an adjacent reference number may be masked,
// a phone number must never slip through.
package redaction

import (
	"regexp"
)

// Placeholders shown in place of redacted content. They contain no digit runs
// and no "@", so running the filter on its own output is a no-op.
const (
	PhonePlaceholder = "[📵 Numéro masqué - Politique de confidentialité]"
	EmailPlaceholder = "[📧 Email masqué - Politique de confidentialité]"
)

// Phone matchers run in order; on overlapping spans the first matcher wins
// because later matchers only see the already-masked text.
var phonePatterns = []*regexp.Regexp{
	// International prefix, with or without "+", optional separator.
	regexp.MustCompile(`\+?224[\s.\-]?\d{8,9}`),
	// Grouped digits: 620 12 34 56, 620-123-456, 66.12.34.56.
	regexp.MustCompile(`\b\d{2,3}[\s.\-]\d{2,3}[\s.\-]\d{2,3}(?:[\s.\-]\d{2,3})?\b`),
	// Guinean mobile prefix: nine digits starting with 6.
	regexp.MustCompile(`\b6\d{8}\b`),
	// Any bare long digit run that could be a dialable number.
	regexp.MustCompile(`\b\d{9,12}\b`),
}

var emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

// Result is the outcome of filtering one message.
type Result struct {
	FilteredText string
	WasFiltered  bool
}

// Filter replaces every phone-number and email match in raw with the fixed
// placeholder for its category. It is pure and idempotent.
func Filter(raw string) Result {
	filtered := raw
	for _, re := range phonePatterns {
		filtered = re.ReplaceAllString(filtered, PhonePlaceholder)
	}
	filtered = emailPattern.ReplaceAllString(filtered, EmailPlaceholder)

	return Result{
		FilteredText: filtered,
		WasFiltered:  filtered != raw,
	}
}
