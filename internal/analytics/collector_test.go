package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"portal-calma/internal/models"
)

type stubStore struct {
	questionnaires []models.Questionnaire
	responses      []models.Response
	err            error
}

func (s *stubStore) ListQuestionnaires(ctx context.Context, companyID string) ([]models.Questionnaire, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.questionnaires, nil
}

func (s *stubStore) ListResponses(ctx context.Context, companyID string) ([]models.Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.responses, nil
}

func (s *stubStore) GetQuestionnaire(ctx context.Context, companyID string, id int) (*models.Questionnaire, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, q := range s.questionnaires {
		if q.ID == id {
			q := q
			return &q, nil
		}
	}
	return nil, errors.New("not found")
}

func (s *stubStore) ListQuestionnaireResponses(ctx context.Context, companyID string, questionnaireID int) ([]models.Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.Response
	for _, r := range s.responses {
		if r.QuestionnaireID == questionnaireID {
			out = append(out, r)
		}
	}
	return out, nil
}

func newTestCollector(store Store) *Collector {
	c := NewCollector(store, zap.NewNop())
	c.now = func() time.Time {
		return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	}
	return c
}

func TestCollectRejectsUnresolvedTenant(t *testing.T) {
	collector := newTestCollector(&stubStore{})

	_, err := collector.Collect(context.Background(), "")
	assert.ErrorIs(t, err, ErrTenantNotResolved)
}

func TestCollectWrapsFetchErrors(t *testing.T) {
	fetchErr := errors.New("connection refused")
	collector := newTestCollector(&stubStore{err: fetchErr})

	_, err := collector.Collect(context.Background(), "acme")
	assert.ErrorIs(t, err, fetchErr)
}

func TestCollectAssemblesAggregate(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	store := &stubStore{
		questionnaires: []models.Questionnaire{
			{ID: 1, Title: "Bem-Estar", Status: models.StatusActive, Questions: models.QuestionList{
				{ID: 1, Type: "scale", ScaleMin: 1, ScaleMax: 5, SemanticTag: models.TagStress},
				{ID: 9, Type: "scale", ScaleMin: 1, ScaleMax: 10, SemanticTag: models.TagWellbeing},
			}},
			{ID: 2, Title: "Clima", Status: models.StatusInactive},
		},
		responses: []models.Response{
			{QuestionnaireID: 1, Department: "Sales", Status: models.ResponseCompleted, CreatedAt: now,
				Answers: models.AnswerList{{QuestionID: 1, Value: 3}, {QuestionID: 9, Value: 8}}},
			{QuestionnaireID: 1, Department: "Sales", Status: models.ResponseCompleted, CreatedAt: now,
				Answers: models.AnswerList{{QuestionID: 1, Value: 5}, {QuestionID: 9, Value: 6}}},
			{QuestionnaireID: 1, Department: "Sales", Status: models.ResponsePartial, CreatedAt: now},
			{QuestionnaireID: 1, Department: "RH", Status: models.ResponseCompleted, CreatedAt: now,
				// Question 99 does not exist on the questionnaire.
				Answers: models.AnswerList{{QuestionID: 1, Value: 2}, {QuestionID: 99, Value: 5}}},
		},
	}
	collector := newTestCollector(store)

	metrics, err := collector.Collect(context.Background(), "acme")
	require.NoError(t, err)

	assert.Equal(t, 2, metrics.TotalQuestionnaires)
	assert.Equal(t, 1, metrics.ActiveQuestionnaires)
	assert.Equal(t, 4, metrics.TotalResponses)
	// Flat completed/total across the tenant, not a mean of department rates.
	assert.Equal(t, 75.0, metrics.AverageCompletionRate)
	assert.Equal(t, 1, metrics.MalformedAnswers)

	require.Len(t, metrics.ResponsesByDepartment, 2)
	assert.Equal(t, "Sales", metrics.ResponsesByDepartment[0].Department)
	assert.Equal(t, 5.5, metrics.ResponsesByDepartment[0].AverageScore)

	assert.Len(t, metrics.ResponseEvolution, EvolutionWindowDays)
	assert.Equal(t, 4, metrics.ResponseEvolution[EvolutionWindowDays-1].Responses)

	require.Len(t, metrics.QuestionnairePerformance, 2)
	assert.Equal(t, 4, metrics.QuestionnairePerformance[0].TotalResponses)
	assert.Equal(t, NoResponsesSentinel, metrics.QuestionnairePerformance[1].LastResponse)

	require.Len(t, metrics.DepartmentSatisfaction, 2)
	assert.Equal(t, 4.0, metrics.DepartmentSatisfaction[0].StressLevel)
	assert.Equal(t, 7.0, metrics.DepartmentSatisfaction[0].WellbeingScore)
}

func TestCollectIsDeterministic(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	store := &stubStore{
		questionnaires: []models.Questionnaire{
			{ID: 1, Title: "Bem-Estar", Status: models.StatusActive, Questions: models.QuestionList{
				{ID: 1, Type: "scale", ScaleMin: 1, ScaleMax: 5},
			}},
		},
		responses: []models.Response{
			{QuestionnaireID: 1, Department: "A", Status: models.ResponseCompleted, CreatedAt: now,
				Answers: models.AnswerList{{QuestionID: 1, Value: 3}}},
			{QuestionnaireID: 1, Department: "B", Status: models.ResponsePartial, CreatedAt: now},
		},
	}
	collector := newTestCollector(store)

	first, err := collector.Collect(context.Background(), "acme")
	require.NoError(t, err)
	second, err := collector.Collect(context.Background(), "acme")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCollectDetailed(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	store := &stubStore{
		questionnaires: []models.Questionnaire{
			{ID: 1, Title: "Bem-Estar", Questions: models.QuestionList{
				{ID: 1, Text: "Estresse", Type: "scale", ScaleMin: 1, ScaleMax: 5},
			}},
		},
		responses: []models.Response{
			{QuestionnaireID: 1, Status: models.ResponseCompleted, CreatedAt: now,
				Answers: models.AnswerList{{QuestionID: 1, Value: 4}}},
		},
	}
	collector := newTestCollector(store)

	stats, err := collector.CollectDetailed(context.Background(), "acme", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalResponses)
	require.Len(t, stats.ResponsesByQuestion, 1)
	assert.Equal(t, 4.0, stats.ResponsesByQuestion[0].Average)
}

func TestCollectDetailedRejectsUnresolvedTenant(t *testing.T) {
	collector := newTestCollector(&stubStore{})

	_, err := collector.CollectDetailed(context.Background(), "", 1)
	assert.ErrorIs(t, err, ErrTenantNotResolved)
}
