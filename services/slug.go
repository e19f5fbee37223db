package services

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugWhitespace = regexp.MustCompile(`[\s/]+`)
	slugInvalid    = regexp.MustCompile(`[^a-z0-9-]`)
	slugHyphens    = regexp.MustCompile(`-+`)

	// NFD decomposition followed by removal of combining marks. Handles
	// ñ, accents and the rest of the Latin diacritics in one pass.
	diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// StripDiacritics removes combining marks from a string ("Perú" -> "Peru").
func StripDiacritics(input string) string {
	stripped, _, err := transform.String(diacriticStripper, input)
	if err != nil {
		return input
	}
	return stripped
}

// SlugifyES builds the canonical Spanish slug for a country name:
// lowercase, diacritics stripped, "&" mapped to "y", whitespace and slashes
// hyphenated, everything outside [a-z0-9-] dropped, hyphens collapsed and
// trimmed. Idempotent: SlugifyES(SlugifyES(x)) == SlugifyES(x).
func SlugifyES(input string) string {
	normalized := StripDiacritics(strings.ToLower(input))
	normalized = strings.ReplaceAll(normalized, "&", "y")
	return sanitizeSlug(normalized)
}

// SlugifyEN builds the legacy English slug. Same pipeline as SlugifyES but
// without the "&" conjunction mapping; kept only as a redirect target.
func SlugifyEN(input string) string {
	normalized := StripDiacritics(strings.ToLower(input))
	return sanitizeSlug(normalized)
}

func sanitizeSlug(normalized string) string {
	replaced := slugWhitespace.ReplaceAllString(normalized, "-")
	sanitized := slugInvalid.ReplaceAllString(replaced, "")
	collapsed := slugHyphens.ReplaceAllString(sanitized, "-")
	return strings.Trim(collapsed, "-")
}

// SlugTracker assigns collision-free slugs in first-come order: the first
// occurrence keeps the bare slug, later duplicates get -2, -3, ...
type SlugTracker struct {
	counts map[string]int
}

// NewSlugTracker creates an empty tracker.
func NewSlugTracker() *SlugTracker {
	return &SlugTracker{counts: make(map[string]int)}
}

// Ensure registers base and returns the unique slug assigned to this call.
func (t *SlugTracker) Ensure(base string) string {
	count, seen := t.counts[base]
	if !seen {
		t.counts[base] = 1
		return base
	}

	count++
	t.counts[base] = count
	return base + "-" + strconv.Itoa(count)
}
