package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"portal-calma/internal/models"
)

// ErrTenantNotResolved means the caller could not be mapped to a company.
var ErrTenantNotResolved = errors.New("tenant not resolved")

// Store is the row fetcher the collector aggregates over.
type Store interface {
	ListQuestionnaires(ctx context.Context, companyID string) ([]models.Questionnaire, error)
	ListResponses(ctx context.Context, companyID string) ([]models.Response, error)
	GetQuestionnaire(ctx context.Context, companyID string, id int) (*models.Questionnaire, error)
	ListQuestionnaireResponses(ctx context.Context, companyID string, questionnaireID int) ([]models.Response, error)
}

// Collector assembles the company dashboard aggregate. Each call fetches a
// fresh snapshot and computes over it; no state is shared between calls.
type Collector struct {
	store Store
	log   *zap.Logger
	now   func() time.Time
}

func NewCollector(store Store, log *zap.Logger) *Collector {
	return &Collector{store: store, log: log, now: time.Now}
}

// Collect fetches the tenant's questionnaires and responses and merges the
// grouping components into one QuestionnaireMetrics. Errors are returned,
// not swallowed; the HTTP layer decides whether to degrade to EmptyMetrics.
func (c *Collector) Collect(ctx context.Context, companyID string) (*QuestionnaireMetrics, error) {
	if companyID == "" {
		return nil, ErrTenantNotResolved
	}

	questionnaires, err := c.store.ListQuestionnaires(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("fetch questionnaires: %w", err)
	}
	responses, err := c.store.ListResponses(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("fetch responses: %w", err)
	}

	responses, malformed := SanitizeResponses(questionnaires, responses)
	if malformed > 0 {
		c.log.Warn("Dropped answers referencing unknown questions",
			zap.String("companyID", companyID),
			zap.Int("count", malformed),
		)
	}

	active := 0
	for _, q := range questionnaires {
		if q.Status == models.StatusActive {
			active++
		}
	}

	completed := 0
	for _, r := range responses {
		if r.IsCompleted() {
			completed++
		}
	}

	metrics := EmptyMetrics()
	metrics.TotalQuestionnaires = len(questionnaires)
	metrics.ActiveQuestionnaires = active
	metrics.TotalResponses = len(responses)
	// A flat completed/total ratio across the whole tenant, deliberately not
	// an average of the per-department rates.
	metrics.AverageCompletionRate = ratio(completed, len(responses))
	metrics.ResponsesByDepartment = GroupResponsesByDepartment(responses)
	metrics.ResponseEvolution = BuildResponseEvolution(responses, c.now())
	metrics.QuestionnairePerformance = ScoreQuestionnairePerformance(questionnaires, responses)
	metrics.DepartmentSatisfaction = ScoreDepartmentSatisfaction(questionnaires, responses)
	metrics.MalformedAnswers = malformed
	return metrics, nil
}

// CollectDetailed computes the drill-down statistics for one questionnaire.
func (c *Collector) CollectDetailed(ctx context.Context, companyID string, questionnaireID int) (*DetailedStatistics, error) {
	if companyID == "" {
		return nil, ErrTenantNotResolved
	}

	questionnaire, err := c.store.GetQuestionnaire(ctx, companyID, questionnaireID)
	if err != nil {
		return nil, fmt.Errorf("fetch questionnaire %d: %w", questionnaireID, err)
	}
	responses, err := c.store.ListQuestionnaireResponses(ctx, companyID, questionnaireID)
	if err != nil {
		return nil, fmt.Errorf("fetch responses for questionnaire %d: %w", questionnaireID, err)
	}

	responses, malformed := SanitizeResponses([]models.Questionnaire{*questionnaire}, responses)
	if malformed > 0 {
		c.log.Warn("Dropped answers referencing unknown questions",
			zap.String("companyID", companyID),
			zap.Int("questionnaireID", questionnaireID),
			zap.Int("count", malformed),
		)
	}

	return CalculateDetailedStatistics(questionnaire, responses), nil
}
