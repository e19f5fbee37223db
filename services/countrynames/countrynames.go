// Package countrynames resolves ISO 3166-1 alpha-2 codes and localized
// country names from an embedded table. Lookups never fail hard: a missing
// mapping returns the zero value so callers can fall back to the raw name.
package countrynames

import (
	"embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

//go:embed countries.json
var fs embed.FS

type entry struct {
	ISO2 string `json:"iso2"`
	EN   string `json:"en"`
	ES   string `json:"es"`
}

var (
	loadOnce sync.Once
	byISO2   map[string]entry
	byEN     map[string]string // folded English name -> ISO2
	byES     map[string]string // folded Spanish name -> ISO2
)

var (
	iso2Regex         = regexp.MustCompile(`^[A-Z]{2}$`)
	diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// foldKey normalizes a name for table lookups: lowercase, diacritics
// stripped, outer whitespace trimmed. Both the table keys and the lookup
// input go through it, so "Japón" and "japon" resolve alike.
func foldKey(name string) string {
	stripped, _, err := transform.String(diacriticStripper, name)
	if err != nil {
		stripped = name
	}
	return strings.ToLower(strings.TrimSpace(stripped))
}

func load() {
	loadOnce.Do(func() {
		byISO2 = make(map[string]entry)
		byEN = make(map[string]string)
		byES = make(map[string]string)

		content, err := fs.ReadFile("countries.json")
		if err != nil {
			panic(fmt.Sprintf("countrynames: failed to read embedded table: %v", err))
		}

		var entries []entry
		if err := json.Unmarshal(content, &entries); err != nil {
			panic(fmt.Sprintf("countrynames: failed to unmarshal embedded table: %v", err))
		}

		for _, e := range entries {
			byISO2[e.ISO2] = e
			byEN[foldKey(e.EN)] = e.ISO2
			byES[foldKey(e.ES)] = e.ISO2
		}
	})
}

// Alpha2FromEnglish returns the ISO-2 code for an English country name, or
// "" when the name is unknown.
func Alpha2FromEnglish(name string) string {
	load()
	return byEN[foldKey(name)]
}

// Alpha2FromSpanish returns the ISO-2 code for a Spanish country name, or
// "" when the name is unknown.
func Alpha2FromSpanish(name string) string {
	load()
	return byES[foldKey(name)]
}

// NameES returns the Spanish name for an ISO-2 code, or "" when unknown.
func NameES(iso2 string) string {
	load()
	return byISO2[strings.ToUpper(iso2)].ES
}

// NameEN returns the English name for an ISO-2 code, or "" when unknown.
func NameEN(iso2 string) string {
	load()
	return byISO2[strings.ToUpper(iso2)].EN
}

// FlagEmoji converts an ISO-2 code to its regional-indicator flag emoji.
// Returns "" for anything that is not two ASCII letters.
func FlagEmoji(iso2 string) string {
	code := strings.ToUpper(iso2)
	if !iso2Regex.MatchString(code) {
		return ""
	}

	var b strings.Builder
	for _, ch := range code {
		b.WriteRune(rune(127397 + ch))
	}
	return b.String()
}
