package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portal-calma/internal/models"
)

func TestScoreQuestionnairePerformance(t *testing.T) {
	submitted := time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC)
	earlier := submitted.AddDate(0, 0, -3)

	questionnaires := []models.Questionnaire{
		{ID: 1, Title: "Pesquisa de Bem-Estar"},
		{ID: 2, Title: "Clima Organizacional"},
	}
	responses := []models.Response{
		{QuestionnaireID: 1, Status: models.ResponseCompleted, SubmittedAt: &earlier, Answers: models.AnswerList{
			{QuestionID: 1, Value: 3}, {QuestionID: 9, Value: 8},
		}},
		{QuestionnaireID: 1, Status: models.ResponseCompleted, SubmittedAt: &submitted, Answers: models.AnswerList{
			{QuestionID: 1, Value: 5}, {QuestionID: 9, Value: 6},
		}},
		{QuestionnaireID: 1, Status: models.ResponsePartial, CreatedAt: earlier},
	}

	result := ScoreQuestionnairePerformance(questionnaires, responses)
	require.Len(t, result, 2)

	first := result[0]
	assert.Equal(t, "Pesquisa de Bem-Estar", first.Questionnaire)
	assert.Equal(t, 3, first.TotalResponses)
	assert.InDelta(t, 66.666, first.CompletionRate, 0.001)
	assert.Equal(t, 5.5, first.AverageScore)
	assert.Equal(t, "10/06/2025", first.LastResponse)

	// Questionnaires nobody answered still get an entry.
	second := result[1]
	assert.Equal(t, "Clima Organizacional", second.Questionnaire)
	assert.Equal(t, 0, second.TotalResponses)
	assert.Equal(t, 0.0, second.CompletionRate)
	assert.Equal(t, 0.0, second.AverageScore)
	assert.Equal(t, NoResponsesSentinel, second.LastResponse)
}

func TestScoreQuestionnairePerformanceEmpty(t *testing.T) {
	assert.Empty(t, ScoreQuestionnairePerformance(nil, nil))
}
