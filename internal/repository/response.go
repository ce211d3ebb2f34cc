package repository

import (
	"context"

	"github.com/lib/pq"

	"portal-calma/internal/database"
	"portal-calma/internal/models"
)

func GetResponsesByCompany(ctx context.Context, companyID string) ([]models.Response, error) {
	var responses []models.Response
	err := database.DB.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at ASC").
		Find(&responses).Error
	return responses, err
}

func GetResponsesByQuestionnaire(ctx context.Context, companyID string, questionnaireID int) ([]models.Response, error) {
	var responses []models.Response
	err := database.DB.WithContext(ctx).
		Where("company_id = ? AND questionnaire_id = ?", companyID, questionnaireID).
		Order("created_at ASC").
		Find(&responses).Error
	return responses, err
}

// GetResponsesByDepartments narrows a tenant's responses to a department
// subset, used by the dashboard's department filter.
func GetResponsesByDepartments(ctx context.Context, companyID string, departments []string) ([]models.Response, error) {
	var responses []models.Response
	err := database.DB.WithContext(ctx).
		Where("company_id = ? AND department = ANY(?)", companyID, pq.Array(departments)).
		Order("created_at ASC").
		Find(&responses).Error
	return responses, err
}

func CreateResponse(ctx context.Context, response *models.Response) error {
	return database.DB.WithContext(ctx).Create(response).Error
}
