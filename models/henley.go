package models

// HenleyVisaEntry is one destination cell of the Henley overlay matrix.
// PDFUpdatedAt is the publication date printed inside the source PDF when it
// could be extracted.
type HenleyVisaEntry struct {
	RequiresVisa bool   `json:"requires_visa"`
	Source       string `json:"source,omitempty"`
	PDFUpdatedAt string `json:"pdf_updated_at,omitempty"`
}

// HenleyMatrix is keyed by origin ISO-2, then destination ISO-2. Destination
// names found in the PDFs are resolved to ISO-2 through the alias table
// before they reach this structure.
type HenleyMatrix map[string]map[string]HenleyVisaEntry

// HenleyDataset is the overlay artifact written by the Henley pipeline.
type HenleyDataset struct {
	GeneratedAt string       `json:"generated_at"`
	Source      string       `json:"source"`
	Sources     []string     `json:"sources"`
	Matrix      HenleyMatrix `json:"matrix"`
}

// HenleyOriginStatus records the per-origin outcome of a pipeline run for
// the sibling meta file.
type HenleyOriginStatus struct {
	OriginISO    string `json:"origin_iso"`
	PDFURL       string `json:"pdf_url,omitempty"`
	PDFUpdatedAt string `json:"pdf_updated_at,omitempty"`
	Status       string `json:"status"` // ok, unknown_date, download_error, parse_error, fallback
	ParseError   string `json:"parse_error,omitempty"`
	Entries      int    `json:"entries"`
}

// HenleyMeta is the sibling meta file written next to the overlay.
type HenleyMeta struct {
	GeneratedAt string               `json:"generated_at"`
	RunID       string               `json:"run_id"`
	Sources     []HenleyOriginStatus `json:"sources"`
}
