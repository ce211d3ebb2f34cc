package analytics

import (
	"time"

	"portal-calma/internal/models"
)

// NoResponsesSentinel is what the dashboard shows for a questionnaire nobody
// has answered yet.
const NoResponsesSentinel = "Sem respostas"

// lastResponseLayout renders submission dates the way the portal does,
// day/month/year.
const lastResponseLayout = "02/01/2006"

// ScoreQuestionnairePerformance emits one entry per questionnaire, including
// ones with zero responses. The average score is a mean-of-means over the
// questionnaire's completed responses.
func ScoreQuestionnairePerformance(questionnaires []models.Questionnaire, responses []models.Response) []QuestionnairePerformanceData {
	byQuestionnaire := make(map[int][]models.Response)
	for _, r := range responses {
		byQuestionnaire[r.QuestionnaireID] = append(byQuestionnaire[r.QuestionnaireID], r)
	}

	result := make([]QuestionnairePerformanceData, 0, len(questionnaires))
	for _, q := range questionnaires {
		qResponses := byQuestionnaire[q.ID]

		completed := 0
		for _, r := range qResponses {
			if r.IsCompleted() {
				completed++
			}
		}

		result = append(result, QuestionnairePerformanceData{
			Questionnaire:  q.Title,
			TotalResponses: len(qResponses),
			CompletionRate: ratio(completed, len(qResponses)),
			AverageScore:   meanOfMeans(qResponses),
			LastResponse:   lastResponseDate(qResponses),
		})
	}
	return result
}

func lastResponseDate(responses []models.Response) string {
	var latest time.Time
	for _, r := range responses {
		at := r.CreatedAt
		if r.SubmittedAt != nil {
			at = *r.SubmittedAt
		}
		if at.After(latest) {
			latest = at
		}
	}
	if latest.IsZero() {
		return NoResponsesSentinel
	}
	return latest.Format(lastResponseLayout)
}
