package services

import "necesitovisa/models"

// ApplyHenleyOverride merges a Henley overlay entry into a curated
// requirement. Pure function: the base is copied, never mutated. Henley
// wins on VisaRequired and LastReviewed only; notes, sources and embassy
// contact stay curated. A nil entry returns the base untouched.
func ApplyHenleyOverride(base models.Requirement, entry *models.HenleyVisaEntry) models.Requirement {
	if entry == nil {
		return base
	}

	merged := base
	merged.VisaRequired = entry.RequiresVisa
	if entry.PDFUpdatedAt != "" {
		merged.LastReviewed = entry.PDFUpdatedAt
	}
	return merged
}

// HenleyEntryFor looks up the overlay cell for an (origin, destination)
// ISO-2 pair. Returns nil when the dataset or the cell is absent, which
// leaves the curated requirement untouched.
func HenleyEntryFor(dataset *models.HenleyDataset, originISO, destISO string) *models.HenleyVisaEntry {
	if dataset == nil || originISO == "" || destISO == "" {
		return nil
	}
	destinations, ok := dataset.Matrix[originISO]
	if !ok {
		return nil
	}
	entry, ok := destinations[destISO]
	if !ok {
		return nil
	}
	return &entry
}
