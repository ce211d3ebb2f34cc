package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portal-calma/internal/models"
)

func TestGroupResponsesByDepartment(t *testing.T) {
	responses := []models.Response{
		{Department: "Sales", Status: models.ResponseCompleted, Answers: models.AnswerList{
			{QuestionID: 1, Value: 3}, {QuestionID: 9, Value: 8},
		}},
		{Department: "Sales", Status: models.ResponseCompleted, Answers: models.AnswerList{
			{QuestionID: 1, Value: 5}, {QuestionID: 9, Value: 6},
		}},
		{Department: "Sales", Status: models.ResponsePartial},
		{Department: "", Status: models.ResponseCompleted, Answers: models.AnswerList{
			{QuestionID: 1, Value: 2},
		}},
	}

	result := GroupResponsesByDepartment(responses)
	require.Len(t, result, 2)

	sales := result[0]
	assert.Equal(t, "Sales", sales.Department)
	assert.Equal(t, 3, sales.TotalSent)
	assert.Equal(t, 2, sales.TotalCompleted)
	assert.InDelta(t, 66.666, sales.CompletionRate, 0.001)
	// Mean of the per-response averages: mean(5.5, 5.5) = 5.5.
	assert.Equal(t, 5.5, sales.AverageScore)

	unspecified := result[1]
	assert.Equal(t, models.UnspecifiedDepartment, unspecified.Department)
	assert.Equal(t, 1, unspecified.TotalSent)
	assert.Equal(t, 100.0, unspecified.CompletionRate)
	assert.Equal(t, 2.0, unspecified.AverageScore)
}

func TestGroupResponsesByDepartmentEmptyInput(t *testing.T) {
	assert.Empty(t, GroupResponsesByDepartment(nil))
}

func TestGroupCompletedCountsSumToTotal(t *testing.T) {
	responses := []models.Response{
		{Department: "A", Status: models.ResponseCompleted},
		{Department: "A", Status: models.ResponsePartial},
		{Department: "B", Status: models.ResponseCompleted},
		{Department: "", Status: models.ResponseCompleted},
		{Department: "C", Status: models.ResponsePartial},
	}

	completed := 0
	for _, r := range responses {
		if r.IsCompleted() {
			completed++
		}
	}

	sum := 0
	for _, group := range GroupResponsesByDepartment(responses) {
		sum += group.TotalCompleted
		assert.GreaterOrEqual(t, group.CompletionRate, 0.0)
		assert.LessOrEqual(t, group.CompletionRate, 100.0)
	}
	assert.Equal(t, completed, sum)
}
