package repository

import (
	"context"

	"portal-calma/internal/models"
)

// Store adapts the repository to the analytics.Store interface so the
// collector can be exercised against stubs in tests.
type Store struct{}

func (Store) ListQuestionnaires(ctx context.Context, companyID string) ([]models.Questionnaire, error) {
	return GetQuestionnairesByCompany(ctx, companyID)
}

func (Store) ListResponses(ctx context.Context, companyID string) ([]models.Response, error) {
	return GetResponsesByCompany(ctx, companyID)
}

func (Store) GetQuestionnaire(ctx context.Context, companyID string, id int) (*models.Questionnaire, error) {
	return GetQuestionnaireByID(ctx, companyID, id)
}

func (Store) ListQuestionnaireResponses(ctx context.Context, companyID string, questionnaireID int) ([]models.Response, error) {
	return GetResponsesByQuestionnaire(ctx, companyID, questionnaireID)
}
