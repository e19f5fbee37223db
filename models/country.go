package models

// Country represents a country shown in the origin/destination selectors.
type Country struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
	ISO2 string `json:"iso2,omitempty"`
}

// CountryIndexEntry is the canonical record for one country of the source
// matrix. SlugES is the canonical routing identifier; SlugEN and any
// historical variants in AltSlugs are redirect targets only.
type CountryIndexEntry struct {
	Key      string   `json:"key"`
	NameEN   string   `json:"name_en"`
	NameES   string   `json:"name_es"`
	SlugES   string   `json:"slug_es"`
	SlugEN   string   `json:"slug_en"`
	AltSlugs []string `json:"alt_slugs"`
}

// CountryIndex is the global index file written by the dataset builder.
type CountryIndex struct {
	List         []CountryIndexEntry `json:"list"`
	MapSlugToKey map[string]string   `json:"map_slug_to_key"`
	MapAltToSlug map[string]string   `json:"map_alt_to_slug"`
}

// OriginCountries lists the nationalities the site currently supports.
var OriginCountries = []Country{
	{Name: "Chile", Slug: "chile", ISO2: "CL"},
	{Name: "Argentina", Slug: "argentina", ISO2: "AR"},
	{Name: "México", Slug: "mexico", ISO2: "MX"},
	{Name: "Colombia", Slug: "colombia", ISO2: "CO"},
	{Name: "España", Slug: "espana", ISO2: "ES"},
}

// DestinationCountries lists the curated destinations with editorial content.
var DestinationCountries = []Country{
	{Name: "Estados Unidos", Slug: "estados-unidos", ISO2: "US"},
	{Name: "Canadá", Slug: "canada", ISO2: "CA"},
	{Name: "México", Slug: "mexico", ISO2: "MX"},
	{Name: "Brasil", Slug: "brasil", ISO2: "BR"},
	{Name: "Reino Unido", Slug: "reino-unido", ISO2: "GB"},
	{Name: "Japón", Slug: "japon", ISO2: "JP"},
	{Name: "Australia", Slug: "australia", ISO2: "AU"},
	{Name: "China", Slug: "china", ISO2: "CN"},
	{Name: "Turquía", Slug: "turquia", ISO2: "TR"},
	{Name: "Espacio Schengen", Slug: "schengen", ISO2: "EU"},
}
