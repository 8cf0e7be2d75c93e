package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"skillnet_backend/internal/models"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrNotParticipant       = errors.New("user is not a participant of the conversation")
)

type MessageRepository interface {
	// FindConversationsByUserID lists the user's conversations, most
	// recently active first, with participants preloaded.
	FindConversationsByUserID(db *gorm.DB, userID string) ([]models.Conversation, error)

	FindConversationByID(db *gorm.DB, conversationID string) (*models.Conversation, error)

	// FindDirectConversation returns the existing two-party conversation
	// between the users, if any.
	FindDirectConversation(db *gorm.DB, userA, userB string) (*models.Conversation, error)

	CreateConversation(db *gorm.DB, conversation *models.Conversation, participantIDs []string) error

	IsParticipant(db *gorm.DB, conversationID, userID string) (bool, error)

	// FindMessages lists a conversation's messages oldest first.
	FindMessages(db *gorm.DB, conversationID string, limit, offset int) ([]models.Message, error)

	// FindLastMessage returns the newest message, or nil when the
	// conversation is empty.
	FindLastMessage(db *gorm.DB, conversationID string) (*models.Message, error)

	CreateMessage(db *gorm.DB, message *models.Message) error

	MarkMessagesRead(db *gorm.DB, conversationID, readerID string) error
}

type messageRepository struct{}

func NewMessageRepository() MessageRepository {
	return &messageRepository{}
}

func (r *messageRepository) FindConversationsByUserID(db *gorm.DB, userID string) ([]models.Conversation, error) {
	var conversations []models.Conversation
	err := db.
		Joins("JOIN conversation_participants ON conversation_participants.conversation_id = conversations.id").
		Where("conversation_participants.user_id = ?", userID).
		Preload("Participants").
		Preload("Participants.User").
		Order("conversations.updated_at DESC").
		Find(&conversations).Error
	return conversations, err
}

func (r *messageRepository) FindConversationByID(db *gorm.DB, conversationID string) (*models.Conversation, error) {
	var conversation models.Conversation
	err := db.Preload("Participants").Preload("Participants.User").
		First(&conversation, "id = ?", conversationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, err
	}
	return &conversation, nil
}

func (r *messageRepository) FindDirectConversation(db *gorm.DB, userA, userB string) (*models.Conversation, error) {
	var conversation models.Conversation
	err := db.
		Joins("JOIN conversation_participants a ON a.conversation_id = conversations.id AND a.user_id = ?", userA).
		Joins("JOIN conversation_participants b ON b.conversation_id = conversations.id AND b.user_id = ?", userB).
		Preload("Participants").
		Preload("Participants.User").
		First(&conversation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, err
	}
	return &conversation, nil
}

func (r *messageRepository) CreateConversation(db *gorm.DB, conversation *models.Conversation, participantIDs []string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(conversation).Error; err != nil {
			return err
		}
		for _, userID := range participantIDs {
			participant := models.ConversationParticipant{
				ConversationID: conversation.ID,
				UserID:         userID,
			}
			if err := tx.Create(&participant).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *messageRepository) IsParticipant(db *gorm.DB, conversationID, userID string) (bool, error) {
	var count int64
	err := db.Model(&models.ConversationParticipant{}).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *messageRepository) FindMessages(db *gorm.DB, conversationID string, limit, offset int) ([]models.Message, error) {
	var messages []models.Message
	err := db.Preload("Sender").
		Where("conversation_id = ?", conversationID).
		Order("sent_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error
	return messages, err
}

func (r *messageRepository) FindLastMessage(db *gorm.DB, conversationID string) (*models.Message, error) {
	var message models.Message
	err := db.Preload("Sender").
		Where("conversation_id = ?", conversationID).
		Order("sent_at DESC").
		First(&message).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &message, nil
}

// CreateMessage stores the message and bumps the conversation's
// updated_at so conversation lists sort by latest activity.
func (r *messageRepository) CreateMessage(db *gorm.DB, message *models.Message) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(message).Error; err != nil {
			return err
		}
		return tx.Model(&models.Conversation{}).
			Where("id = ?", message.ConversationID).
			Update("updated_at", time.Now()).Error
	})
}

func (r *messageRepository) MarkMessagesRead(db *gorm.DB, conversationID, readerID string) error {
	return db.Model(&models.Message{}).
		Where("conversation_id = ? AND sender_id <> ? AND is_read = ?", conversationID, readerID, false).
		Update("is_read", true).Error
}
