package services

import (
	"errors"

	"gorm.io/gorm"

	"skillnet_backend/internal/models"
	"skillnet_backend/internal/repositories"
	"skillnet_backend/internal/services/dto"
	"skillnet_backend/pkg/apperrors"
)

type MessageService interface {
	ListConversations(db *gorm.DB, userID string) ([]dto.ConversationResponse, error)

	// StartConversation returns the existing direct conversation with the
	// recipient, or creates one.
	StartConversation(db *gorm.DB, userID string, req *dto.CreateConversationRequest) (*dto.ConversationResponse, error)

	ListMessages(db *gorm.DB, userID, conversationID string, query *dto.MessageListQuery) ([]dto.MessageDTO, error)
	SendMessage(db *gorm.DB, userID, conversationID string, req *dto.SendMessageRequest) (*dto.MessageDTO, error)
}

type messageService struct {
	messageRepo repositories.MessageRepository
	userRepo    repositories.UserRepository
}

func NewMessageService(messageRepo repositories.MessageRepository, userRepo repositories.UserRepository) MessageService {
	return &messageService{messageRepo: messageRepo, userRepo: userRepo}
}

func (s *messageService) ListConversations(db *gorm.DB, userID string) ([]dto.ConversationResponse, error) {
	conversations, err := s.messageRepo.FindConversationsByUserID(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.ConversationResponse, 0, len(conversations))
	for i := range conversations {
		resp, err := s.toConversationResponse(db, &conversations[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *messageService) StartConversation(db *gorm.DB, userID string, req *dto.CreateConversationRequest) (*dto.ConversationResponse, error) {
	if req.RecipientID == userID {
		return nil, apperrors.NewBadRequestError("Cannot start a conversation with yourself")
	}

	if _, err := s.userRepo.FindByID(db, req.RecipientID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	existing, err := s.messageRepo.FindDirectConversation(db, userID, req.RecipientID)
	if err == nil {
		return s.toConversationResponse(db, existing)
	}
	if !errors.Is(err, repositories.ErrConversationNotFound) {
		return nil, apperrors.InternalError(err)
	}

	conversation := &models.Conversation{Title: req.Title}
	if err := s.messageRepo.CreateConversation(db, conversation, []string{userID, req.RecipientID}); err != nil {
		return nil, apperrors.InternalError(err)
	}

	created, err := s.messageRepo.FindConversationByID(db, conversation.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.toConversationResponse(db, created)
}

// ListMessages returns a conversation's messages oldest first and marks
// the other side's messages as read.
func (s *messageService) ListMessages(db *gorm.DB, userID, conversationID string, query *dto.MessageListQuery) ([]dto.MessageDTO, error) {
	if err := s.authorizeParticipant(db, conversationID, userID); err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.FindMessages(db, conversationID, query.Take, query.Skip)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.messageRepo.MarkMessagesRead(db, conversationID, userID); err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.MessageDTO, 0, len(messages))
	for i := range messages {
		result = append(result, toMessageDTO(&messages[i]))
	}
	return result, nil
}

func (s *messageService) SendMessage(db *gorm.DB, userID, conversationID string, req *dto.SendMessageRequest) (*dto.MessageDTO, error) {
	if err := s.authorizeParticipant(db, conversationID, userID); err != nil {
		return nil, err
	}

	message := &models.Message{
		ConversationID: conversationID,
		SenderID:       userID,
		Content:        req.Content,
	}
	if err := s.messageRepo.CreateMessage(db, message); err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := toMessageDTO(message)
	return &result, nil
}

// authorizeParticipant distinguishes a missing conversation (404) from
// one the caller simply is not part of (403).
func (s *messageService) authorizeParticipant(db *gorm.DB, conversationID, userID string) error {
	if _, err := s.messageRepo.FindConversationByID(db, conversationID); err != nil {
		if errors.Is(err, repositories.ErrConversationNotFound) {
			return apperrors.ErrConversationNotFound
		}
		return apperrors.InternalError(err)
	}

	ok, err := s.messageRepo.IsParticipant(db, conversationID, userID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if !ok {
		return apperrors.ErrNotParticipant
	}
	return nil
}

func (s *messageService) toConversationResponse(db *gorm.DB, conversation *models.Conversation) (*dto.ConversationResponse, error) {
	participants := make([]dto.UserDTO, 0, len(conversation.Participants))
	for _, p := range conversation.Participants {
		participants = append(participants, dto.UserDTO{
			ID:        p.User.ID,
			Name:      p.User.Name,
			Email:     p.User.Email,
			Avatar:    p.User.Avatar,
			Rating:    p.User.Rating,
			CreatedAt: p.User.CreatedAt,
		})
	}

	resp := &dto.ConversationResponse{
		ID:           conversation.ID,
		Title:        conversation.Title,
		Participants: participants,
		UpdatedAt:    conversation.UpdatedAt,
		CreatedAt:    conversation.CreatedAt,
	}

	last, err := s.messageRepo.FindLastMessage(db, conversation.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if last != nil {
		msg := toMessageDTO(last)
		resp.LastMessage = &msg
	}
	return resp, nil
}

func toMessageDTO(message *models.Message) dto.MessageDTO {
	return dto.MessageDTO{
		ID:             message.ID,
		ConversationID: message.ConversationID,
		SenderID:       message.SenderID,
		SenderName:     message.Sender.Name,
		Content:        message.Content,
		IsRead:         message.IsRead,
		SentAt:         message.SentAt,
	}
}
