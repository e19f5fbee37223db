package services

import (
	"fmt"
	"time"
)

// FreshnessStatus is a traffic-light indicator for data age.
type FreshnessStatus string

const (
	FreshnessGreen  FreshnessStatus = "green"
	FreshnessYellow FreshnessStatus = "yellow"
	FreshnessRed    FreshnessStatus = "red"
)

// ReviewStatusInfo is the UI metadata attached to a freshness status.
type ReviewStatusInfo struct {
	Key        FreshnessStatus
	Label      string
	HelperText string
	Emoji      string
}

var reviewStatusConfig = map[FreshnessStatus]ReviewStatusInfo{
	FreshnessGreen: {
		Key:        FreshnessGreen,
		Label:      "Actualizado",
		HelperText: "Actualizado en los últimos 7 días",
		Emoji:      "🟢",
	},
	FreshnessYellow: {
		Key:        FreshnessYellow,
		Label:      "Por revisar",
		HelperText: "Actualizado hace menos de 30 días",
		Emoji:      "🟡",
	},
	FreshnessRed: {
		Key:        FreshnessRed,
		Label:      "Desactualizado",
		HelperText: "Última revisión hace más de 30 días",
		Emoji:      "🔴",
	},
}

// ReviewMetadata describes how stale a curated requirement is.
type ReviewMetadata struct {
	Status            ReviewStatusInfo
	LastReviewedLabel string
	RelativeText      string
	LastReviewedDate  *time.Time
	AgeInDays         int // -1 when the date could not be parsed
}

func parseFlexibleDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return &parsed
		}
	}
	return nil
}

// GetReviewMetadata classifies a lastReviewed date: green within 7 days,
// yellow within 30, red beyond that or when the date is missing/unparseable.
func GetReviewMetadata(lastReviewed string, now time.Time) ReviewMetadata {
	reviewedAt := parseFlexibleDate(lastReviewed)

	meta := ReviewMetadata{
		Status:            reviewStatusConfig[FreshnessRed],
		LastReviewedLabel: "Sin fecha",
		RelativeText:      "Sin fecha",
		AgeInDays:         -1,
	}
	if reviewedAt == nil {
		return meta
	}

	ageInDays := int(now.Sub(*reviewedAt).Hours() / 24)
	meta.LastReviewedDate = reviewedAt
	meta.LastReviewedLabel = lastReviewed
	meta.AgeInDays = ageInDays

	switch {
	case ageInDays <= 7:
		meta.Status = reviewStatusConfig[FreshnessGreen]
	case ageInDays <= 30:
		meta.Status = reviewStatusConfig[FreshnessYellow]
	}

	switch {
	case ageInDays <= 0:
		meta.RelativeText = "Actualizado hoy"
	case ageInDays == 1:
		meta.RelativeText = "Hace 1 día"
	default:
		meta.RelativeText = fmt.Sprintf("Hace %d días", ageInDays)
	}

	return meta
}

// DatasetFreshness describes the age of a generated dataset as a whole.
// Thresholds are looser than per-requirement review: a matrix regenerated
// within a month is still considered current.
type DatasetFreshness struct {
	Status          FreshnessStatus
	AgeInDays       int // -1 when generatedAt is missing or unparseable
	GeneratedAtText string
	GeneratedAtDate *time.Time
}

// GetDatasetFreshness classifies a dataset generation timestamp: green
// within 30 days, yellow within 90, red otherwise.
func GetDatasetFreshness(generatedAt string, now time.Time) DatasetFreshness {
	generatedDate := parseFlexibleDate(generatedAt)

	freshness := DatasetFreshness{
		Status:          FreshnessRed,
		AgeInDays:       -1,
		GeneratedAtText: "Desconocido",
	}
	if generatedDate == nil {
		return freshness
	}

	ageInDays := int(now.Sub(*generatedDate).Hours() / 24)
	freshness.AgeInDays = ageInDays
	freshness.GeneratedAtDate = generatedDate
	freshness.GeneratedAtText = generatedDate.Format("2006-01-02")

	switch {
	case ageInDays <= 30:
		freshness.Status = FreshnessGreen
	case ageInDays <= 90:
		freshness.Status = FreshnessYellow
	}

	return freshness
}
