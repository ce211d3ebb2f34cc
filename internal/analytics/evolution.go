package analytics

import (
	"time"

	"portal-calma/internal/models"
)

// EvolutionWindowDays is the length of the trailing window the dashboard
// charts, today inclusive.
const EvolutionWindowDays = 30

// BuildResponseEvolution buckets responses by the calendar day of their
// creation timestamp across the trailing window ending at now, oldest first.
// The result always has exactly EvolutionWindowDays entries; days with no
// responses emit zeroes.
func BuildResponseEvolution(responses []models.Response, now time.Time) []ResponseEvolutionData {
	byDay := make(map[string][]models.Response)
	for _, r := range responses {
		day := r.CreatedAt.Format(dateLayout)
		byDay[day] = append(byDay[day], r)
	}

	result := make([]ResponseEvolutionData, 0, EvolutionWindowDays)
	for i := EvolutionWindowDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format(dateLayout)

		dayResponses := byDay[day]
		completed := 0
		for _, r := range dayResponses {
			if r.IsCompleted() {
				completed++
			}
		}

		result = append(result, ResponseEvolutionData{
			Date:           day,
			Responses:      len(dayResponses),
			CompletionRate: ratio(completed, len(dayResponses)),
		})
	}
	return result
}
