package repository

import (
	"context"

	"gorm.io/gorm"

	"portal-calma/internal/database"
	"portal-calma/internal/models"
)

func GetQuestionnairesByCompany(ctx context.Context, companyID string) ([]models.Questionnaire, error) {
	var questionnaires []models.Questionnaire
	err := database.DB.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&questionnaires).Error
	return questionnaires, err
}

func GetQuestionnaireByID(ctx context.Context, companyID string, id int) (*models.Questionnaire, error) {
	var questionnaire models.Questionnaire
	err := database.DB.WithContext(ctx).
		First(&questionnaire, "id = ? AND company_id = ?", id, companyID).Error
	if err != nil {
		return nil, err
	}
	return &questionnaire, nil
}

func CreateQuestionnaire(ctx context.Context, questionnaire *models.Questionnaire) error {
	return database.DB.WithContext(ctx).Create(questionnaire).Error
}

func UpdateQuestionnaireStatus(ctx context.Context, companyID string, id int, status string) error {
	result := database.DB.WithContext(ctx).
		Model(&models.Questionnaire{}).
		Where("id = ? AND company_id = ?", id, companyID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteQuestionnaire removes a questionnaire and all of its responses in a
// single transaction.
func DeleteQuestionnaire(ctx context.Context, companyID string, id int) error {
	return database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var questionnaire models.Questionnaire
		if err := tx.First(&questionnaire, "id = ? AND company_id = ?", id, companyID).Error; err != nil {
			return err
		}
		if err := tx.Where("questionnaire_id = ?", id).Delete(&models.Response{}).Error; err != nil {
			return err
		}
		return tx.Delete(&questionnaire).Error
	})
}

func MarkNotificationSent(ctx context.Context, id int) error {
	return database.DB.WithContext(ctx).
		Model(&models.Questionnaire{}).
		Where("id = ?", id).
		Update("notification_sent", true).Error
}
