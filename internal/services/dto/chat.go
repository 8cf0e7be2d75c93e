package dto

import "time"

// ConversationResponse - one conversation in the user's list
type ConversationResponse struct {
	ID           string      `json:"id"`
	Title        string      `json:"title,omitempty"`
	Participants []UserDTO   `json:"participants"`
	LastMessage  *MessageDTO `json:"last_message,omitempty"`
	UpdatedAt    time.Time   `json:"updated_at"`
	CreatedAt    time.Time   `json:"created_at"`
}

// MessageDTO - one message
type MessageDTO struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	SenderName     string    `json:"sender_name,omitempty"`
	Content        string    `json:"content"`
	IsRead         bool      `json:"is_read"`
	SentAt         time.Time `json:"sent_at"`
}

// CreateConversationRequest - start (or reuse) a direct conversation
type CreateConversationRequest struct {
	RecipientID string `json:"recipient_id" binding:"required"`
	Title       string `json:"title" binding:"omitempty,max=200"`
}

// SendMessageRequest - append a message to a conversation
type SendMessageRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

// MessageListQuery - pagination for a conversation's messages
type MessageListQuery struct {
	Skip int `form:"skip" binding:"omitempty,gte=0"`
	Take int `form:"take,default=50" binding:"omitempty,gte=0,lte=200"`
}
