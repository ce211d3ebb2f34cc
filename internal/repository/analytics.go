package repository

import (
	"context"

	"portal-calma/internal/database"
	"portal-calma/internal/models"
)

// GetAnalyticsSnapshots serves the compliance report screen, newest period
// first.
func GetAnalyticsSnapshots(ctx context.Context, companyID string) ([]models.AnalyticsSnapshot, error) {
	var snapshots []models.AnalyticsSnapshot
	err := database.DB.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("period_start DESC").
		Find(&snapshots).Error
	return snapshots, err
}

func SaveAnalyticsSnapshot(ctx context.Context, snapshot *models.AnalyticsSnapshot) error {
	return database.DB.WithContext(ctx).Create(snapshot).Error
}
