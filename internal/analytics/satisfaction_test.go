package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portal-calma/internal/models"
)

func wellbeingQuestionnaire() models.Questionnaire {
	return models.Questionnaire{
		ID: 1,
		Questions: models.QuestionList{
			{ID: 1, Type: "scale", ScaleMin: 1, ScaleMax: 5, SemanticTag: models.TagStress},
			{ID: 9, Type: "scale", ScaleMin: 1, ScaleMax: 10, SemanticTag: models.TagWellbeing},
		},
	}
}

func TestScoreDepartmentSatisfaction(t *testing.T) {
	questionnaires := []models.Questionnaire{wellbeingQuestionnaire()}
	responses := []models.Response{
		{QuestionnaireID: 1, Department: "Sales", Status: models.ResponseCompleted, Answers: models.AnswerList{
			{QuestionID: 1, Value: 3}, {QuestionID: 9, Value: 8},
		}},
		{QuestionnaireID: 1, Department: "Sales", Status: models.ResponseCompleted, Answers: models.AnswerList{
			{QuestionID: 1, Value: 5}, {QuestionID: 9, Value: 6},
		}},
	}

	result := ScoreDepartmentSatisfaction(questionnaires, responses)
	require.Len(t, result, 1)

	sales := result[0]
	assert.Equal(t, "Sales", sales.Department)
	assert.Equal(t, 4.0, sales.StressLevel)
	assert.Equal(t, 7.0, sales.WellbeingScore)
	// No tagged answers for these buckets.
	assert.Equal(t, 0.0, sales.WorkSatisfaction)
	assert.Equal(t, 0.0, sales.WorkLifeBalance)
}

func TestScoreDepartmentSatisfactionExcludesPartial(t *testing.T) {
	questionnaires := []models.Questionnaire{wellbeingQuestionnaire()}
	responses := []models.Response{
		{QuestionnaireID: 1, Department: "Sales", Status: models.ResponseCompleted, Answers: models.AnswerList{
			{QuestionID: 1, Value: 4},
		}},
		{QuestionnaireID: 1, Department: "Sales", Status: models.ResponsePartial, Answers: models.AnswerList{
			{QuestionID: 1, Value: 1},
		}},
	}

	result := ScoreDepartmentSatisfaction(questionnaires, responses)
	require.Len(t, result, 1)
	assert.Equal(t, 4.0, result[0].StressLevel)
}

func TestScoreDepartmentSatisfactionSemanticTagOverridesNumbering(t *testing.T) {
	// A custom questionnaire tags question 42 as satisfaction; the canonical
	// numbering would ignore it.
	questionnaires := []models.Questionnaire{{
		ID: 7,
		Questions: models.QuestionList{
			{ID: 42, Type: "scale", ScaleMin: 1, ScaleMax: 5, SemanticTag: models.TagSatisfaction},
		},
	}}
	responses := []models.Response{
		{QuestionnaireID: 7, Department: "RH", Status: models.ResponseCompleted, Answers: models.AnswerList{
			{QuestionID: 42, Value: 5},
		}},
	}

	result := ScoreDepartmentSatisfaction(questionnaires, responses)
	require.Len(t, result, 1)
	assert.Equal(t, 5.0, result[0].WorkSatisfaction)
}

func TestScoreDepartmentSatisfactionFallsBackToTemplateNumbering(t *testing.T) {
	// Untagged questions resolve through the canonical template ids.
	questionnaires := []models.Questionnaire{{
		ID: 3,
		Questions: models.QuestionList{
			{ID: 3, Type: "scale", ScaleMin: 1, ScaleMax: 5},
			{ID: 7, Type: "scale", ScaleMin: 1, ScaleMax: 5},
			{ID: 8, Type: "scale", ScaleMin: 1, ScaleMax: 5},
		},
	}}
	responses := []models.Response{
		{QuestionnaireID: 3, Department: "TI", Status: models.ResponseCompleted, Answers: models.AnswerList{
			{QuestionID: 3, Value: 4},
			{QuestionID: 7, Value: 2},
			{QuestionID: 8, Value: 5}, // unmapped id, ignored
		}},
	}

	result := ScoreDepartmentSatisfaction(questionnaires, responses)
	require.Len(t, result, 1)

	ti := result[0]
	assert.Equal(t, 4.0, ti.WorkSatisfaction)
	assert.Equal(t, 2.0, ti.WorkLifeBalance)
	assert.Equal(t, 0.0, ti.StressLevel)
	assert.Equal(t, 0.0, ti.WellbeingScore)
}
