package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"portal-calma/internal/config"
	logging "portal-calma/internal/logging"
	"portal-calma/internal/models"
)

var DB *gorm.DB

func Init(log *zap.Logger) {
	var err error
	dbConf := config.Conf.Database
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		dbConf.Host, dbConf.User, dbConf.Password, dbConf.DBName, dbConf.Port)

	gormLogger := logging.NewGormZapLogger(log)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger,
	})

	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	log.Info("Database connection established successfully.")
	runMigrations(log)
}

func runMigrations(log *zap.Logger) {
	// GORM's AutoMigrate will create tables, columns, and foreign keys.
	// It will NOT create custom indexes, so we handle that separately.
	err := DB.AutoMigrate(
		&models.PortalUser{},
		&models.Questionnaire{},
		&models.Response{},
		&models.AnalyticsSnapshot{},
	)
	if err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}
	log.Info("Database migrations completed successfully.")

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_responses_company_questionnaire ON responses (company_id, questionnaire_id, created_at DESC);`,
		`CREATE INDEX IF NOT EXISTS idx_questionnaires_company_status ON questionnaires (company_id, status);`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_company_period ON analytics_snapshots (company_id, period_start DESC);`,
	}
	for _, stmt := range indexes {
		if err := DB.Exec(stmt).Error; err != nil {
			log.Fatal("Failed to create custom index", zap.Error(err))
		}
	}
	log.Info("Custom indexes ensured successfully.")
}
