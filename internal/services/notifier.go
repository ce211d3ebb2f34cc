package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"portal-calma/internal/models"
	"portal-calma/internal/repository"
)

// Notifier watches for questionnaires entering their activation window and
// emails the company's portal accounts once per questionnaire, flipping the
// notification_sent flag afterwards.
type Notifier struct {
	log          *zap.Logger
	emailService *EmailService
	interval     time.Duration
}

func NewNotifier(log *zap.Logger, emailService *EmailService, interval time.Duration) *Notifier {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Notifier{
		log:          log,
		emailService: emailService,
		interval:     interval,
	}
}

// Start runs the notifier loop in a goroutine until ctx is cancelled.
func (n *Notifier) Start(ctx context.Context) {
	n.log.Info("Starting questionnaire notifier...")
	go func() {
		ticker := time.NewTicker(n.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n.runNotificationCheck(ctx)
			}
		}
	}()
}

func (n *Notifier) runNotificationCheck(ctx context.Context) {
	now := time.Now().UTC()
	n.log.Debug("Running questionnaire notification check")

	questionnaires, err := repository.GetQuestionnairesAwaitingNotification(ctx, now)
	if err != nil {
		n.log.Error("Failed to get questionnaires awaiting notification", zap.Error(err))
		return
	}

	for _, questionnaire := range questionnaires {
		n.notifyCompany(ctx, questionnaire)
	}
}

func (n *Notifier) notifyCompany(ctx context.Context, questionnaire models.Questionnaire) {
	accounts, err := repository.GetNotifiableAccounts(ctx, questionnaire.CompanyID)
	if err != nil {
		n.log.Error("Failed to get notifiable accounts",
			zap.Error(err),
			zap.String("companyID", questionnaire.CompanyID),
		)
		return
	}

	for _, account := range accounts {
		n.emailService.SendQuestionnaireNotification(account, questionnaire)
	}

	if err := repository.MarkNotificationSent(ctx, questionnaire.ID); err != nil {
		n.log.Error("Failed to mark notification as sent",
			zap.Error(err),
			zap.Int("questionnaireID", questionnaire.ID),
		)
	}
}
