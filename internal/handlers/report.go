package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portal-calma/internal/analytics"
	"portal-calma/internal/models"
	"portal-calma/internal/repository"
)

type ReportHandler struct {
	log       *zap.Logger
	collector *analytics.Collector
}

func NewReportHandler(log *zap.Logger, collector *analytics.Collector) *ReportHandler {
	return &ReportHandler{log: log, collector: collector}
}

// GetSnapshots serves the compliance report's precomputed period aggregates,
// newest first.
func (h *ReportHandler) GetSnapshots(c *gin.Context) {
	companyID := currentCompanyID(c)

	snapshots, err := repository.GetAnalyticsSnapshots(c.Request.Context(), companyID)
	if err != nil {
		h.log.Error("Failed to load analytics snapshots",
			zap.Error(err),
			zap.String("companyID", companyID),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load report"})
		return
	}

	c.JSON(http.StatusOK, snapshots)
}

// CreateSnapshot materializes the tenant's current aggregate as a snapshot
// covering the trailing 30-day window. The full aggregate rides along as the
// jsonb payload so report screens added later can reuse it.
func (h *ReportHandler) CreateSnapshot(c *gin.Context) {
	companyID := currentCompanyID(c)

	metrics, err := h.collector.Collect(c.Request.Context(), companyID)
	if err != nil {
		h.log.Error("Failed to collect metrics for snapshot",
			zap.Error(err),
			zap.String("companyID", companyID),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build snapshot"})
		return
	}

	payload, err := json.Marshal(metrics)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build snapshot"})
		return
	}

	averageScore := 0.0
	if len(metrics.ResponsesByDepartment) > 0 {
		var sum float64
		for _, dept := range metrics.ResponsesByDepartment {
			sum += dept.AverageScore
		}
		averageScore = sum / float64(len(metrics.ResponsesByDepartment))
	}

	now := time.Now().UTC()
	snapshot := &models.AnalyticsSnapshot{
		CompanyID:      companyID,
		PeriodStart:    now.AddDate(0, 0, -analytics.EvolutionWindowDays+1),
		PeriodEnd:      now,
		TotalResponses: metrics.TotalResponses,
		CompletionRate: metrics.AverageCompletionRate,
		AverageScore:   averageScore,
		Payload:        payload,
	}
	if err := repository.SaveAnalyticsSnapshot(c.Request.Context(), snapshot); err != nil {
		h.log.Error("Failed to save analytics snapshot",
			zap.Error(err),
			zap.String("companyID", companyID),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save snapshot"})
		return
	}

	c.JSON(http.StatusCreated, snapshot)
}
