package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portal-calma/internal/models"
)

func TestBuildResponseEvolutionAlwaysThirtyEntries(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	result := BuildResponseEvolution(nil, now)
	require.Len(t, result, EvolutionWindowDays)
	for _, day := range result {
		assert.Equal(t, 0, day.Responses)
		assert.Equal(t, 0.0, day.CompletionRate)
	}
}

func TestBuildResponseEvolutionWindowAndOrder(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	result := BuildResponseEvolution(nil, now)
	require.Len(t, result, EvolutionWindowDays)
	assert.Equal(t, "2025-05-17", result[0].Date)
	assert.Equal(t, "2025-06-15", result[len(result)-1].Date)

	for i := 1; i < len(result); i++ {
		assert.Less(t, result[i-1].Date, result[i].Date)
	}
}

func TestBuildResponseEvolutionBucketsByCreationDay(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	responses := []models.Response{
		{CreatedAt: now.Add(-2 * time.Hour), Status: models.ResponseCompleted},
		{CreatedAt: now.Add(-3 * time.Hour), Status: models.ResponsePartial},
		{CreatedAt: now.AddDate(0, 0, -5), Status: models.ResponseCompleted},
		// Outside the window, must be ignored.
		{CreatedAt: now.AddDate(0, 0, -31), Status: models.ResponseCompleted},
	}

	result := BuildResponseEvolution(responses, now)
	require.Len(t, result, EvolutionWindowDays)

	today := result[len(result)-1]
	assert.Equal(t, 2, today.Responses)
	assert.Equal(t, 50.0, today.CompletionRate)

	fiveDaysAgo := result[len(result)-6]
	assert.Equal(t, 1, fiveDaysAgo.Responses)
	assert.Equal(t, 100.0, fiveDaysAgo.CompletionRate)

	total := 0
	for _, day := range result {
		total += day.Responses
	}
	assert.Equal(t, 3, total)
}
