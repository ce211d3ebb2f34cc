package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portal-calma/internal/models"
)

func TestCalculateDetailedStatisticsNoResponses(t *testing.T) {
	questionnaire := wellbeingQuestionnaire()

	result := CalculateDetailedStatistics(&questionnaire, nil)
	assert.Equal(t, 1, result.QuestionnaireID)
	assert.Equal(t, 0, result.TotalResponses)
	assert.Equal(t, 0.0, result.AverageScore)
	assert.Empty(t, result.ResponsesByQuestion)
	assert.Empty(t, result.DepartmentBreakdown)
	assert.Empty(t, result.ResponseTimeline)
}

func TestCalculateDetailedStatisticsPerQuestion(t *testing.T) {
	questionnaire := models.Questionnaire{
		ID: 1,
		Questions: models.QuestionList{
			{ID: 1, Text: "Estresse", Type: "scale", ScaleMin: 1, ScaleMax: 5},
		},
	}

	day := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	responses := []models.Response{
		{QuestionnaireID: 1, Department: "Sales", Status: models.ResponseCompleted, CreatedAt: day,
			Answers: models.AnswerList{{QuestionID: 1, Value: 1}}},
		{QuestionnaireID: 1, Department: "Sales", Status: models.ResponseCompleted, CreatedAt: day,
			Answers: models.AnswerList{{QuestionID: 1, Value: 2}}},
		{QuestionnaireID: 1, Department: "RH", Status: models.ResponseCompleted, CreatedAt: day.AddDate(0, 0, 1),
			Answers: models.AnswerList{{QuestionID: 1, Value: 3}}},
		{QuestionnaireID: 1, Department: "RH", Status: models.ResponseCompleted, CreatedAt: day.AddDate(0, 0, 1),
			Answers: models.AnswerList{{QuestionID: 1, Value: 4}}},
	}

	result := CalculateDetailedStatistics(&questionnaire, responses)
	assert.Equal(t, 4, result.TotalResponses)
	assert.Equal(t, 2.5, result.AverageScore)

	require.Len(t, result.ResponsesByQuestion, 1)
	stats := result.ResponsesByQuestion[0]
	assert.Equal(t, 1, stats.QuestionID)
	assert.Equal(t, "Estresse", stats.QuestionText)
	assert.Equal(t, 4, stats.TotalAnswers)
	assert.Equal(t, 2.5, stats.Average)
	// Values sorted are [1 2 3 4]; index floor(4/2)=2 selects 3.
	assert.Equal(t, 3.0, stats.Median)
	// All frequencies tie; the first scanned value wins.
	assert.Equal(t, 1.0, stats.Mode)
	assert.InDelta(t, 1.11803, stats.StandardDeviation, 1e-5)
	assert.Equal(t, map[int]int{1: 1, 2: 1, 3: 1, 4: 1}, stats.Distribution)

	require.Len(t, result.DepartmentBreakdown, 2)
	assert.Equal(t, "Sales", result.DepartmentBreakdown[0].Department)
	assert.Equal(t, 2, result.DepartmentBreakdown[0].Responses)
	assert.Equal(t, 1.5, result.DepartmentBreakdown[0].AverageScore)
	assert.Equal(t, "RH", result.DepartmentBreakdown[1].Department)
	assert.Equal(t, 3.5, result.DepartmentBreakdown[1].AverageScore)

	require.Len(t, result.ResponseTimeline, 2)
	assert.Equal(t, "2025-06-10", result.ResponseTimeline[0].Date)
	assert.Equal(t, 2, result.ResponseTimeline[0].Responses)
	assert.Equal(t, "2025-06-11", result.ResponseTimeline[1].Date)
	assert.Equal(t, 2, result.ResponseTimeline[1].Responses)
}

func TestCalculateDetailedStatisticsIgnoresOtherQuestionnaires(t *testing.T) {
	questionnaire := wellbeingQuestionnaire()
	responses := []models.Response{
		{QuestionnaireID: 99, Status: models.ResponseCompleted, Answers: models.AnswerList{
			{QuestionID: 1, Value: 5},
		}},
	}

	result := CalculateDetailedStatistics(&questionnaire, responses)
	assert.Equal(t, 0, result.TotalResponses)
	assert.Empty(t, result.ResponsesByQuestion)
}

func TestCalculateDetailedStatisticsPartialPolicy(t *testing.T) {
	questionnaire := models.Questionnaire{
		ID: 1,
		Questions: models.QuestionList{
			{ID: 1, Text: "Estresse", Type: "scale", ScaleMin: 1, ScaleMax: 5},
		},
	}
	day := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	responses := []models.Response{
		{QuestionnaireID: 1, Status: models.ResponseCompleted, CreatedAt: day,
			Answers: models.AnswerList{{QuestionID: 1, Value: 4}}},
		{QuestionnaireID: 1, Status: models.ResponsePartial, CreatedAt: day,
			Answers: models.AnswerList{{QuestionID: 1, Value: 1}}},
	}

	result := CalculateDetailedStatistics(&questionnaire, responses)
	// Partial responses count toward volume but never toward scores.
	assert.Equal(t, 2, result.TotalResponses)
	assert.Equal(t, 4.0, result.AverageScore)
	require.Len(t, result.ResponsesByQuestion, 1)
	assert.Equal(t, 1, result.ResponsesByQuestion[0].TotalAnswers)
	assert.Equal(t, 2, result.ResponseTimeline[0].Responses)
}
