package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// RequirementType is the normalized visa-requirement taxonomy.
type RequirementType string

const (
	TypeNoVisa       RequirementType = "NO_VISA"
	TypeNoVisaDays   RequirementType = "NO_VISA_DAYS"
	TypeEVisa        RequirementType = "E_VISA"
	TypeESTA         RequirementType = "ESTA"
	TypeETA          RequirementType = "ETA"
	TypeVOA          RequirementType = "VOA"
	TypeRequiresVisa RequirementType = "REQUIRES_VISA"
	TypeUnknown      RequirementType = "UNKNOWN"
)

// NormalizedRequirement is derived from a raw matrix cell at read time and
// never persisted.
type NormalizedRequirement struct {
	Raw     string
	Type    RequirementType
	Days    int // meaningful only when Type == TypeNoVisaDays
	Label   string
	Display string
}

// Classification is the builder-facing view of a raw cell.
type Classification struct {
	Skip      bool
	NeedsVisa bool
	Days      int
	Special   bool // electronic authorization or on-arrival permit, not a plain visa
}

var integerOnly = regexp.MustCompile(`^\d+$`)
var innerWhitespace = regexp.MustCompile(`\s+`)

type displayInfo struct {
	icon  string
	label string
}

var requirementDisplay = map[RequirementType]displayInfo{
	TypeNoVisa:       {"☑️", "No necesita visa"},
	TypeEVisa:        {"🟨", "e-Visa (trámite online)"},
	TypeESTA:         {"🟦", "ESTA (autorización electrónica)"},
	TypeETA:          {"🟦", "eTA / ETA (autorización electrónica)"},
	TypeVOA:          {"🟧", "Visa a la llegada"},
	TypeRequiresVisa: {"❌", "Sí requiere visa"},
	TypeUnknown:      {"⚠️", "Requisito no especificado"},
}

// NormalizeRequirement maps a raw matrix cell to its requirement type. Pure
// and total: any string resolves to exactly one of the eight types. The
// substring rules below are order-sensitive and intentionally overlapping;
// changing their order silently reclassifies existing destinations, so keep
// it as is (e.g. "visa required (eta)" resolves to ETA, not REQUIRES_VISA).
func NormalizeRequirement(raw string) NormalizedRequirement {
	sanitized := innerWhitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(raw)), " ")

	if integerOnly.MatchString(sanitized) {
		days, _ := strconv.Atoi(sanitized)
		label := fmt.Sprintf("No necesita visa (%d días)", days)
		return NormalizedRequirement{
			Raw:     raw,
			Type:    TypeNoVisaDays,
			Days:    days,
			Label:   label,
			Display: "☑️ " + label,
		}
	}

	resolved := TypeUnknown
	switch {
	case strings.Contains(sanitized, "visa free") || strings.Contains(sanitized, "visa-free"):
		resolved = TypeNoVisa
	case strings.Contains(sanitized, "e-visa") || strings.Contains(sanitized, "evisa"):
		resolved = TypeEVisa
	case strings.Contains(sanitized, "esta"):
		resolved = TypeESTA
	case strings.Contains(sanitized, "eta"):
		resolved = TypeETA
	case strings.Contains(sanitized, "visa on arrival") || strings.Contains(sanitized, "on arrival"):
		resolved = TypeVOA
	case strings.Contains(sanitized, "visa required") || strings.Contains(sanitized, "required"):
		resolved = TypeRequiresVisa
	}

	info := requirementDisplay[resolved]
	return NormalizedRequirement{
		Raw:     raw,
		Type:    resolved,
		Label:   info.label,
		Display: info.icon + " " + info.label,
	}
}

// Classify is the builder-facing classification of a raw cell. Empty cells
// and the -1 sentinel (a country mapped to itself) are skipped; everything
// else collapses to needs-visa / visa-free plus a day count when present.
func Classify(raw string) Classification {
	sanitized := strings.ToLower(strings.TrimSpace(raw))
	if sanitized == "" || sanitized == "-1" {
		return Classification{Skip: true}
	}

	normalized := NormalizeRequirement(raw)
	switch normalized.Type {
	case TypeNoVisa, TypeNoVisaDays:
		return Classification{Days: normalized.Days}
	case TypeRequiresVisa:
		return Classification{NeedsVisa: true}
	default:
		return Classification{NeedsVisa: true, Special: true}
	}
}
