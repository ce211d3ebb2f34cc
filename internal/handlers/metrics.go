package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portal-calma/internal/analytics"
	"portal-calma/internal/models"
	"portal-calma/internal/repository"
)

type MetricsHandler struct {
	log       *zap.Logger
	collector *analytics.Collector
}

func NewMetricsHandler(log *zap.Logger, collector *analytics.Collector) *MetricsHandler {
	return &MetricsHandler{log: log, collector: collector}
}

// GetMetrics serves the company dashboard aggregate. On any failure it logs
// the cause and serves the canonical empty metrics object so the dashboard
// renders zeroed KPIs instead of an error page.
func (h *MetricsHandler) GetMetrics(c *gin.Context) {
	companyID := currentCompanyID(c)

	metrics, err := h.collector.Collect(c.Request.Context(), companyID)
	if err != nil {
		h.log.Error("Failed to collect questionnaire metrics",
			zap.Error(err),
			zap.String("companyID", companyID),
		)
		c.JSON(http.StatusOK, analytics.EmptyMetrics())
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// GetDepartmentMetrics serves the responses-by-department table narrowed to
// the departments named in the repeated "d" query parameter. Without a filter
// it behaves like the department slice of the full aggregate.
func (h *MetricsHandler) GetDepartmentMetrics(c *gin.Context) {
	companyID := currentCompanyID(c)
	if companyID == "" {
		c.JSON(http.StatusOK, []analytics.DepartmentResponseData{})
		return
	}

	departments := c.QueryArray("d")

	var (
		responses []models.Response
		err       error
	)
	if len(departments) > 0 {
		responses, err = repository.GetResponsesByDepartments(c.Request.Context(), companyID, departments)
	} else {
		responses, err = repository.GetResponsesByCompany(c.Request.Context(), companyID)
	}
	if err != nil {
		h.log.Error("Failed to load responses for department metrics",
			zap.Error(err),
			zap.String("companyID", companyID),
		)
		c.JSON(http.StatusOK, []analytics.DepartmentResponseData{})
		return
	}

	c.JSON(http.StatusOK, analytics.GroupResponsesByDepartment(responses))
}

// GetDetailedStats serves the per-questionnaire drill-down.
func (h *MetricsHandler) GetDetailedStats(c *gin.Context) {
	companyID := currentCompanyID(c)

	questionnaireID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid questionnaire id"})
		return
	}

	stats, err := h.collector.CollectDetailed(c.Request.Context(), companyID, questionnaireID)
	if err != nil {
		h.log.Error("Failed to collect detailed statistics",
			zap.Error(err),
			zap.String("companyID", companyID),
			zap.Int("questionnaireID", questionnaireID),
		)
		c.JSON(http.StatusOK, analytics.EmptyDetailedStatistics(questionnaireID))
		return
	}

	c.JSON(http.StatusOK, stats)
}
