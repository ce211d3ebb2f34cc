package analytics

import (
	"portal-calma/internal/models"
)

// satisfactionBuckets accumulates the four semantic categories for one
// department.
type satisfactionBuckets struct {
	stress       []float64
	satisfaction []float64
	worklife     []float64
	wellbeing    []float64
}

// ScoreDepartmentSatisfaction averages the tagged scale answers of completed
// responses per department. Partial responses are excluded entirely. Routing
// follows each question's semantic tag; questions without one fall back to
// the canonical template numbering (see models.DefaultTemplateTags). Answers
// on untagged, unmapped questions are ignored.
func ScoreDepartmentSatisfaction(questionnaires []models.Questionnaire, responses []models.Response) []DepartmentSatisfactionData {
	tags := buildTagIndex(questionnaires)

	buckets := make(map[string]*satisfactionBuckets)
	var order []string

	for _, r := range responses {
		if !r.IsCompleted() {
			continue
		}

		dept := r.DepartmentOrDefault()
		b, seen := buckets[dept]
		if !seen {
			b = &satisfactionBuckets{}
			buckets[dept] = b
			order = append(order, dept)
		}

		for _, a := range r.Answers {
			switch resolveTag(tags, r.QuestionnaireID, a.QuestionID) {
			case models.TagStress:
				b.stress = append(b.stress, a.Value)
			case models.TagSatisfaction:
				b.satisfaction = append(b.satisfaction, a.Value)
			case models.TagWorkLife:
				b.worklife = append(b.worklife, a.Value)
			case models.TagWellbeing:
				b.wellbeing = append(b.wellbeing, a.Value)
			}
		}
	}

	result := make([]DepartmentSatisfactionData, 0, len(order))
	for _, dept := range order {
		b := buckets[dept]
		result = append(result, DepartmentSatisfactionData{
			Department:       dept,
			WellbeingScore:   mean(b.wellbeing),
			StressLevel:      mean(b.stress),
			WorkSatisfaction: mean(b.satisfaction),
			WorkLifeBalance:  mean(b.worklife),
		})
	}
	return result
}

// buildTagIndex maps questionnaire id to question id to semantic tag.
func buildTagIndex(questionnaires []models.Questionnaire) map[int]map[int]string {
	index := make(map[int]map[int]string, len(questionnaires))
	for _, q := range questionnaires {
		byQuestion := make(map[int]string, len(q.Questions))
		for _, question := range q.Questions {
			byQuestion[question.ID] = question.Tag()
		}
		index[q.ID] = byQuestion
	}
	return index
}

// resolveTag falls back to the default template numbering when the parent
// questionnaire is not among the fetched rows.
func resolveTag(index map[int]map[int]string, questionnaireID, questionID int) string {
	if byQuestion, ok := index[questionnaireID]; ok {
		if tag, ok := byQuestion[questionID]; ok {
			return tag
		}
	}
	return models.DefaultTemplateTags[questionID]
}
