package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Conversation struct {
	BaseModel
	Title string `gorm:"size:200"`

	// Relations
	Participants []ConversationParticipant `gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE"`
	Messages     []Message                 `gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE"`
}

type ConversationParticipant struct {
	ID             string    `gorm:"type:uuid;primaryKey"`
	ConversationID string    `gorm:"not null;uniqueIndex:idx_conversation_user"`
	UserID         string    `gorm:"not null;uniqueIndex:idx_conversation_user"`
	JoinedAt       time.Time `gorm:"autoCreateTime"`

	// Relations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (p *ConversationParticipant) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

type Message struct {
	ID             string    `gorm:"type:uuid;primaryKey"`
	ConversationID string    `gorm:"not null;index"`
	SenderID       string    `gorm:"not null"`
	Content        string    `gorm:"size:2000;not null"`
	IsRead         bool      `gorm:"default:false"`
	SentAt         time.Time `gorm:"autoCreateTime;index"`

	// Relations
	Sender User `gorm:"foreignKey:SenderID"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
