package models

// Source is an official reference shown next to a requirement.
type Source struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Embassy holds contact information for the destination's embassy or
// consulate. Missing fields degrade to a "verify with official sources"
// message in the UI, never to an empty render.
type Embassy struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// Requirement is the curated, editorially maintained requirement record for
// one (origin, destination) pair. It is assembled from a default template,
// per-destination overrides and per-pair overrides, and may later be
// overlaid by Henley data on VisaRequired and LastReviewed only.
type Requirement struct {
	OriginSlug   string   `json:"origin_slug"`
	DestSlug     string   `json:"dest_slug"`
	VisaRequired bool     `json:"visa_required"`
	MaxStayDays  int      `json:"max_stay_days,omitempty"`
	AltPermit    string   `json:"alt_permit,omitempty"`
	PassportRule string   `json:"passport_rule"`
	OnwardTicket string   `json:"onward_ticket"`
	FundsProof   string   `json:"funds_proof"`
	Notes        []string `json:"notes"`
	Sources      []Source `json:"sources"`
	Embassy      Embassy  `json:"embassy"`
	LastReviewed string   `json:"last_reviewed"` // YYYY-MM-DD
}
