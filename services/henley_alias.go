package services

import (
	"regexp"
	"strings"

	"necesitovisa/services/countrynames"
)

// Destination names inside the Henley PDFs arrive as free text in several
// spellings. The canonical key for the overlay matrix is ISO-2; this table
// catches spellings the embedded country table does not know. Keys are
// pre-folded (lowercase, diacritics stripped, whitespace collapsed).
var henleyNameAliases = map[string]string{
	"turkiye":                          "TR",
	"turkey":                           "TR",
	"turquia":                          "TR",
	"czechia":                          "CZ",
	"united states of america":         "US",
	"usa":                              "US",
	"russian federation":               "RU",
	"korea (south)":                    "KR",
	"korea, south":                     "KR",
	"republic of korea":                "KR",
	"korea (north)":                    "KP",
	"cote d'ivoire":                    "CI",
	"cote divoire":                     "CI",
	"congo (dem. rep.)":                "CD",
	"congo (democratic republic)":      "CD",
	"democratic republic of the congo": "CD",
	"congo (rep.)":                     "CG",
	"myanmar (burma)":                  "MM",
	"burma":                            "MM",
	"east timor":                       "TL",
	"timor leste":                      "TL",
	"swaziland":                        "SZ",
	"macedonia":                        "MK",
	"cabo verde":                       "CV",
	"vatican":                          "VA",
	"holy see":                         "VA",
	"brunei darussalam":                "BN",
	"lao people's democratic republic": "LA",
	"st. kitts and nevis":              "KN",
	"st. lucia":                        "LC",
	"st. vincent and the grenadines":   "VC",
	"viet nam":                         "VN",
	"syrian arab republic":             "SY",
	"hong kong (sar china)":            "HK",
	"macao (sar china)":                "MO",
	"taiwan (chinese taipei)":          "TW",
}

var aliasPunctuation = regexp.MustCompile(`[^a-z0-9()'.,\s-]`)

// FoldCountryName normalizes a free-text country name for alias lookups:
// diacritics stripped, lowercased, stray punctuation removed, whitespace
// collapsed.
func FoldCountryName(name string) string {
	folded := strings.ToLower(StripDiacritics(name))
	folded = aliasPunctuation.ReplaceAllString(folded, "")
	folded = innerWhitespace.ReplaceAllString(folded, " ")
	return strings.TrimSpace(folded)
}

// ResolveDestinationISO maps a destination name from a Henley PDF to its
// ISO-2 code. Tries the alias table, then the English table, then the
// Spanish table. Returns "" when the name cannot be resolved; callers drop
// such rows rather than guessing.
func ResolveDestinationISO(name string) string {
	folded := FoldCountryName(name)
	if folded == "" {
		return ""
	}

	if iso, ok := henleyNameAliases[folded]; ok {
		return iso
	}
	if iso := countrynames.Alpha2FromEnglish(folded); iso != "" {
		return iso
	}
	if iso := countrynames.Alpha2FromSpanish(folded); iso != "" {
		return iso
	}

	// Parenthesized qualifiers like "Iran (Islamic Republic of)" often
	// hide a resolvable base name.
	if idx := strings.IndexByte(folded, '('); idx > 0 {
		return ResolveDestinationISO(folded[:idx])
	}
	return ""
}
