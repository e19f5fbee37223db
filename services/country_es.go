package services

import "necesitovisa/services/countrynames"

// CountryNameOverrides lists English names whose automatic resolution via the
// ISO table fails or yields the wrong editorial form. Checked before any
// lookup.
var CountryNameOverrides = map[string]string{
	"Antigua and Barbuda": "Antigua y Barbuda",
	"Dominican Republic":  "República Dominicana",
	"Czech Republic":      "República Checa",
	"United States":       "Estados Unidos",
	"United Kingdom":      "Reino Unido",
	"Ivory Coast":         "Costa de Marfil",
	"DR Congo":            "República Democrática del Congo",
	"North Korea":         "Corea del Norte",
	"South Korea":         "Corea del Sur",
	"Cape Verde":          "Cabo Verde",
	"Timor-Leste":         "Timor Oriental",
	"Russia":              "Rusia",
	"Bolivia":             "Bolivia",
}

// GetCountryNameES resolves the Spanish display name for an English country
// name. Order: curated override, ISO alpha-2 lookup, then the English name
// unchanged. Absence of a mapping is an output, not an error.
func GetCountryNameES(englishName string) string {
	if englishName == "" {
		return englishName
	}
	if override, ok := CountryNameOverrides[englishName]; ok {
		return override
	}

	if alpha2 := countrynames.Alpha2FromEnglish(englishName); alpha2 != "" {
		if localized := countrynames.NameES(alpha2); localized != "" {
			return localized
		}
	}

	return englishName
}
