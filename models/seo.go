package models

// SEO is the per-page metadata block rendered in the layout head. The site
// is Spanish-only, so locale handling lives in the layout, not here.
type SEO struct {
	Title       string
	Description string
	Keywords    string // comma-separated
	Canonical   string
	OGTitle     string // falls back to Title
	OGDesc      string // falls back to Description
	OGImage     string
	OGType      string // website, article
	TwitterCard string // summary, summary_large_image
	NoIndex     bool
}

// DefaultSEO builds the metadata block shared by all indexable pages.
func DefaultSEO(title, description string) *SEO {
	return &SEO{
		Title:       title,
		Description: description,
		OGType:      "website",
		TwitterCard: "summary_large_image",
	}
}

// GetOGTitle returns OGTitle or falls back to Title.
func (s *SEO) GetOGTitle() string {
	if s.OGTitle != "" {
		return s.OGTitle
	}
	return s.Title
}

// GetOGDesc returns OGDesc or falls back to Description.
func (s *SEO) GetOGDesc() string {
	if s.OGDesc != "" {
		return s.OGDesc
	}
	return s.Description
}
