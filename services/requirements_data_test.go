package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"necesitovisa/models"
)

func TestBuildRequirementLayersOverrides(t *testing.T) {
	req := BuildRequirement("chile", "estados-unidos")

	assert.Equal(t, "chile", req.OriginSlug)
	assert.Equal(t, "estados-unidos", req.DestSlug)

	// Destination override wins over the default template.
	assert.True(t, req.VisaRequired)
	assert.Equal(t, "ESTA", req.AltPermit)

	// Fields the override leaves empty keep the default.
	assert.Equal(t, 90, req.MaxStayDays)
	assert.NotEmpty(t, req.PassportRule)
}

func TestBuildRequirementPairOverrideWins(t *testing.T) {
	key := pairKey("chile", "estados-unidos")
	pairOverrides[key] = RequirementOverride{
		VisaRequired: boolPtr(false),
		LastReviewed: "2025-01-15",
	}
	defer delete(pairOverrides, key)

	req := BuildRequirement("chile", "estados-unidos")
	assert.False(t, req.VisaRequired)
	assert.Equal(t, "2025-01-15", req.LastReviewed)
	// Untouched fields still come from the destination override.
	assert.Equal(t, "ESTA", req.AltPermit)
}

func TestBuildRequirementDoesNotShareSlices(t *testing.T) {
	a := BuildRequirement("chile", "japon")
	b := BuildRequirement("argentina", "japon")

	a.Notes[0] = "mutated"
	assert.NotEqual(t, a.Notes[0], b.Notes[0])
}

func TestFindRequirement(t *testing.T) {
	_, ok := FindRequirement("chile", "estados-unidos")
	assert.True(t, ok)

	_, ok = FindRequirement("chile", "narnia")
	assert.False(t, ok)
}

func TestEveryCuratedDestinationHasOverride(t *testing.T) {
	for _, dest := range models.DestinationCountries {
		_, ok := destinationOverrides[dest.Slug]
		assert.True(t, ok, "destination %s lacks an override", dest.Slug)
	}
}

func TestApplyHenleyOverride(t *testing.T) {
	base := BuildRequirement("chile", "estados-unidos")

	t.Run("nil entry keeps base", func(t *testing.T) {
		merged := ApplyHenleyOverride(base, nil)
		assert.Equal(t, base, merged)
	})

	t.Run("entry wins on visa and review date only", func(t *testing.T) {
		entry := &models.HenleyVisaEntry{RequiresVisa: false, PDFUpdatedAt: "2025-02-01"}
		merged := ApplyHenleyOverride(base, entry)

		assert.False(t, merged.VisaRequired)
		assert.Equal(t, "2025-02-01", merged.LastReviewed)
		// Editorial fields stay curated.
		assert.Equal(t, base.Notes, merged.Notes)
		assert.Equal(t, base.Sources, merged.Sources)
		assert.Equal(t, base.Embassy, merged.Embassy)
	})

	t.Run("missing pdf date keeps curated review date", func(t *testing.T) {
		entry := &models.HenleyVisaEntry{RequiresVisa: true}
		merged := ApplyHenleyOverride(base, entry)
		assert.Equal(t, base.LastReviewed, merged.LastReviewed)
	})

	t.Run("base is never mutated", func(t *testing.T) {
		before := base.VisaRequired
		ApplyHenleyOverride(base, &models.HenleyVisaEntry{RequiresVisa: !before})
		assert.Equal(t, before, base.VisaRequired)
	})
}

func TestHenleyEntryFor(t *testing.T) {
	dataset := &models.HenleyDataset{
		Matrix: models.HenleyMatrix{
			"CL": {"US": {RequiresVisa: true, Source: "henley-pdf"}},
		},
	}

	entry := HenleyEntryFor(dataset, "CL", "US")
	assert.NotNil(t, entry)
	assert.True(t, entry.RequiresVisa)

	assert.Nil(t, HenleyEntryFor(dataset, "CL", "JP"))
	assert.Nil(t, HenleyEntryFor(dataset, "AR", "US"))
	assert.Nil(t, HenleyEntryFor(nil, "CL", "US"))
	assert.Nil(t, HenleyEntryFor(dataset, "", "US"))
}
