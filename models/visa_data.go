package models

// DestinationEntry is one destination row inside a per-origin dataset file.
// Requirement holds the unprocessed source value; classification happens at
// read time so the rules can evolve without regenerating the dataset.
type DestinationEntry struct {
	Key         string `json:"key"`
	NameES      string `json:"name_es"`
	SlugES      string `json:"slug_es"`
	Requirement string `json:"requirement"`
}

// RawOriginData preserves the source matrix row verbatim.
type RawOriginData struct {
	Origin       string            `json:"origin"`
	Destinations map[string]string `json:"destinations"`
}

// OriginVisaData is the generated JSON document for one origin country.
// It is written in batch by the dataset builder and immutable at read time.
type OriginVisaData struct {
	OriginKey     string             `json:"origin_key"`
	OriginNameES  string             `json:"origin_name_es"`
	OriginSlugES  string             `json:"origin_slug_es"`
	Destinations  []DestinationEntry `json:"destinations"`
	SlugToKey     map[string]string  `json:"slug_to_key"`
	AltSlugToSlug map[string]string  `json:"alt_slug_to_slug"`
	Raw           *RawOriginData     `json:"raw,omitempty"`
}
