package services

import (
	"fmt"
	"html"

	"gorm.io/gorm"

	"skillnet_backend/internal/config"
	"skillnet_backend/internal/email"
	"skillnet_backend/internal/logger"
	"skillnet_backend/internal/models"
	"skillnet_backend/internal/repositories"
	"skillnet_backend/internal/services/dto"
	"skillnet_backend/pkg/apperrors"
)

type FeedbackService interface {
	Submit(db *gorm.DB, req *dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error)
	List(db *gorm.DB, query *dto.FeedbackListQuery) ([]dto.FeedbackResponse, error)
}

type feedbackService struct {
	feedbackRepo  repositories.FeedbackRepository
	emailProvider email.Provider
	emailCfg      config.EmailConfig
}

func NewFeedbackService(feedbackRepo repositories.FeedbackRepository, provider email.Provider, emailCfg config.EmailConfig) FeedbackService {
	return &feedbackService{
		feedbackRepo:  feedbackRepo,
		emailProvider: provider,
		emailCfg:      emailCfg,
	}
}

// Submit stores the feedback. Critical entries additionally trigger an
// alert email; the alert is sent in the background and its failure
// never fails the request.
func (s *feedbackService) Submit(db *gorm.DB, req *dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error) {
	feedback := &models.Feedback{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Company:      req.Company,
		Role:         req.Role,
		Github:       req.Github,
		Subject:      req.Subject,
		Urgency:      req.Urgency,
		FeedbackType: req.FeedbackType,
		Message:      req.Message,
	}
	if feedback.Urgency == "" {
		feedback.Urgency = models.FeedbackUrgencyNormal
	}
	if feedback.FeedbackType == "" {
		feedback.FeedbackType = "General"
	}

	if err := s.feedbackRepo.Create(db, feedback); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if feedback.Urgency == models.FeedbackUrgencyCritical && s.emailCfg.AlertEmail != "" {
		go s.sendCriticalAlert(feedback)
	}

	return &dto.FeedbackResponse{
		ID:           feedback.ID,
		Name:         feedback.Name,
		Email:        feedback.Email,
		Subject:      feedback.Subject,
		Urgency:      feedback.Urgency,
		FeedbackType: feedback.FeedbackType,
		Message:      feedback.Message,
		CreatedAt:    feedback.CreatedAt,
	}, nil
}

// List returns stored feedback, newest first.
func (s *feedbackService) List(db *gorm.DB, query *dto.FeedbackListQuery) ([]dto.FeedbackResponse, error) {
	items, err := s.feedbackRepo.FindAll(db, query.Take, query.Skip)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.FeedbackResponse, 0, len(items))
	for i := range items {
		responses = append(responses, dto.FeedbackResponse{
			ID:           items[i].ID,
			Name:         items[i].Name,
			Email:        items[i].Email,
			Subject:      items[i].Subject,
			Urgency:      items[i].Urgency,
			FeedbackType: items[i].FeedbackType,
			Message:      items[i].Message,
			CreatedAt:    items[i].CreatedAt,
		})
	}
	return responses, nil
}

func (s *feedbackService) sendCriticalAlert(feedback *models.Feedback) {
	subject := fmt.Sprintf("[CRITICAL] Feedback: %s", feedback.Subject)
	body := fmt.Sprintf(
		"<h2>Critical feedback received</h2><p><b>From:</b> %s (%s)</p><p><b>Subject:</b> %s</p><p>%s</p>",
		html.EscapeString(feedback.Name),
		html.EscapeString(feedback.Email),
		html.EscapeString(feedback.Subject),
		html.EscapeString(feedback.Message),
	)
	if err := s.emailProvider.Send(s.emailCfg.AlertEmail, subject, body); err != nil {
		logger.Error("failed to send critical feedback alert", "error", err, "feedback_id", feedback.ID)
	}
}
