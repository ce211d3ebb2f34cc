package repository

import (
	"context"
	"time"

	"portal-calma/internal/database"
	"portal-calma/internal/models"
)

// GetQuestionnairesAwaitingNotification finds active questionnaires inside
// their activation window whose companies have not been notified yet.
func GetQuestionnairesAwaitingNotification(ctx context.Context, now time.Time) ([]models.Questionnaire, error) {
	var questionnaires []models.Questionnaire
	err := database.DB.WithContext(ctx).
		Where("status = ? AND notification_sent = ?", models.StatusActive, false).
		Where("start_date IS NULL OR start_date <= ?", now).
		Where("end_date IS NULL OR end_date >= ?", now).
		Find(&questionnaires).Error
	return questionnaires, err
}

// GetNotifiableAccounts returns the company's portal accounts that accept
// email notifications.
func GetNotifiableAccounts(ctx context.Context, companyID string) ([]models.PortalUser, error) {
	var users []models.PortalUser
	err := database.DB.WithContext(ctx).
		Where("company_id = ? AND email_notifications_enabled = ?", companyID, true).
		Find(&users).Error
	return users, err
}
