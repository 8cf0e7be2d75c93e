package dto

import "time"

// CreateFeedbackRequest - feedback form payload
type CreateFeedbackRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"omitempty,max=20"`
	Company      string `json:"company" binding:"omitempty,max=100"`
	Role         string `json:"role" binding:"omitempty,max=100"`
	Github       string `json:"github" binding:"omitempty,max=500"`
	Subject      string `json:"subject" binding:"required,max=200"`
	Urgency      string `json:"urgency" binding:"omitempty,oneof=Low Normal High Critical"`
	FeedbackType string `json:"feedback_type" binding:"omitempty,max=50"`
	Message      string `json:"message" binding:"required,max=2000"`
}

// FeedbackListQuery - pagination for the feedback list
type FeedbackListQuery struct {
	Skip int `form:"skip" binding:"omitempty,gte=0"`
	Take int `form:"take,default=20" binding:"omitempty,gte=0,lte=100"`
}

// FeedbackResponse - stored feedback entry
type FeedbackResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Subject      string    `json:"subject"`
	Urgency      string    `json:"urgency"`
	FeedbackType string    `json:"feedback_type"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"created_at"`
}
