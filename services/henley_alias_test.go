package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldCountryName(t *testing.T) {
	assert.Equal(t, "turkiye", FoldCountryName("Türkiye"))
	assert.Equal(t, "cote d'ivoire", FoldCountryName("Côte d'Ivoire"))
	assert.Equal(t, "korea (south)", FoldCountryName("  Korea   (South) "))
}

func TestResolveDestinationISO(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Türkiye", "TR"},
		{"Turkey", "TR"},
		{"Czechia", "CZ"},
		{"United States of America", "US"},
		{"Chile", "CL"},
		{"Spain", "ES"},
		{"Viet Nam", "VN"},
		{"Congo (Dem. Rep.)", "CD"},
		{"Iran (Islamic Republic of)", "IR"},
		{"España", "ES"},
		{"Japón", "JP"},
		{"Atlantis", ""},
		{"", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveDestinationISO(tc.name))
		})
	}
}

func TestResolveDestinationISOEquivalentSpellings(t *testing.T) {
	// Different PDF spellings of the same country must land on one key.
	assert.Equal(t, ResolveDestinationISO("Türkiye"), ResolveDestinationISO("Turkey"))
	assert.Equal(t, ResolveDestinationISO("Czechia"), ResolveDestinationISO("Czech Republic"))
}

func TestResolveDestinationISOSpanishNames(t *testing.T) {
	// Accented Spanish names resolve through the Spanish table even when no
	// curated alias exists for them.
	assert.Equal(t, "ES", ResolveDestinationISO("España"))
	assert.Equal(t, ResolveDestinationISO("Japón"), ResolveDestinationISO("japon"))
}
