package analytics

import (
	"portal-calma/internal/models"
)

// SanitizeResponses strips answers whose question id does not exist in the
// parent questionnaire and returns the number of answers removed. Responses
// referencing a questionnaire missing from the fetched set keep none of
// their answers but stay in the list, so volume counts are unaffected.
func SanitizeResponses(questionnaires []models.Questionnaire, responses []models.Response) ([]models.Response, int) {
	questions := make(map[int]map[int]bool, len(questionnaires))
	for _, q := range questionnaires {
		ids := make(map[int]bool, len(q.Questions))
		for _, question := range q.Questions {
			ids[question.ID] = true
		}
		questions[q.ID] = ids
	}

	malformed := 0
	clean := make([]models.Response, len(responses))
	for i, r := range responses {
		clean[i] = r

		ids := questions[r.QuestionnaireID]
		kept := make(models.AnswerList, 0, len(r.Answers))
		for _, a := range r.Answers {
			if ids[a.QuestionID] {
				kept = append(kept, a)
			} else {
				malformed++
			}
		}
		clean[i].Answers = kept
	}
	return clean, malformed
}
