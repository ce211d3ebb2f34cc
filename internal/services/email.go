package services

import (
	"fmt"

	"go.uber.org/zap"

	"portal-calma/internal/models"
)

// EmailService is a placeholder for a real email sending service.
type EmailService struct {
	log *zap.Logger
}

func NewEmailService(log *zap.Logger) *EmailService {
	return &EmailService{log: log}
}

// SendQuestionnaireNotification simulates notifying a company account that a
// questionnaire opened for responses.
func (s *EmailService) SendQuestionnaireNotification(user models.PortalUser, questionnaire models.Questionnaire) {
	s.log.Info("Sending questionnaire notification",
		zap.String("to", user.Email),
		zap.String("questionnaire", questionnaire.Title),
	)
	// In a real deployment this would go through an SMTP client with a
	// templated HTML email.
	fmt.Printf("--- SIMULATING EMAIL ---\nTo: %s\nSubject: Novo questionário disponível: %s\nOlá %s,\nO questionário %q está aberto para respostas no Portal Calma.\n\n",
		user.Email, questionnaire.Title, user.Name, questionnaire.Title)
}
