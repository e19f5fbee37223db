package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var freshnessNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestGetReviewMetadata(t *testing.T) {
	t.Run("recent review is green", func(t *testing.T) {
		meta := GetReviewMetadata("2025-06-12", freshnessNow)
		assert.Equal(t, FreshnessGreen, meta.Status.Key)
		assert.Equal(t, 3, meta.AgeInDays)
		assert.Equal(t, "Actualizado", meta.Status.Label)
	})

	t.Run("month-old review is yellow", func(t *testing.T) {
		meta := GetReviewMetadata("2025-05-20", freshnessNow)
		assert.Equal(t, FreshnessYellow, meta.Status.Key)
	})

	t.Run("stale review is red", func(t *testing.T) {
		meta := GetReviewMetadata("2024-11-01", freshnessNow)
		assert.Equal(t, FreshnessRed, meta.Status.Key)
	})

	t.Run("boundaries", func(t *testing.T) {
		assert.Equal(t, FreshnessGreen, GetReviewMetadata("2025-06-08", freshnessNow).Status.Key)
		assert.Equal(t, FreshnessYellow, GetReviewMetadata("2025-06-07", freshnessNow).Status.Key)
		assert.Equal(t, FreshnessYellow, GetReviewMetadata("2025-05-16", freshnessNow).Status.Key)
		assert.Equal(t, FreshnessRed, GetReviewMetadata("2025-05-15", freshnessNow).Status.Key)
	})

	t.Run("unparseable date is red with age -1", func(t *testing.T) {
		meta := GetReviewMetadata("hace poco", freshnessNow)
		assert.Equal(t, FreshnessRed, meta.Status.Key)
		assert.Equal(t, -1, meta.AgeInDays)
		assert.Nil(t, meta.LastReviewedDate)
	})

	t.Run("accepts RFC3339", func(t *testing.T) {
		meta := GetReviewMetadata("2025-06-14T09:30:00Z", freshnessNow)
		assert.Equal(t, FreshnessGreen, meta.Status.Key)
	})
}

func TestGetDatasetFreshness(t *testing.T) {
	t.Run("fresh dataset is green", func(t *testing.T) {
		f := GetDatasetFreshness("2025-06-01", freshnessNow)
		assert.Equal(t, FreshnessGreen, f.Status)
		assert.Equal(t, 14, f.AgeInDays)
	})

	t.Run("two months old is yellow", func(t *testing.T) {
		f := GetDatasetFreshness("2025-04-10", freshnessNow)
		assert.Equal(t, FreshnessYellow, f.Status)
	})

	t.Run("ancient dataset is red", func(t *testing.T) {
		f := GetDatasetFreshness("2024-01-01", freshnessNow)
		assert.Equal(t, FreshnessRed, f.Status)
	})

	t.Run("missing timestamp is red with age -1", func(t *testing.T) {
		f := GetDatasetFreshness("", freshnessNow)
		assert.Equal(t, FreshnessRed, f.Status)
		assert.Equal(t, -1, f.AgeInDays)
	})
}
