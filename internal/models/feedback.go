package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Feedback struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	Name         string `gorm:"size:100;not null"`
	Email        string `gorm:"size:200;not null"`
	Phone        string `gorm:"size:20"`
	Company      string `gorm:"size:100"`
	Role         string `gorm:"size:100"`
	Github       string `gorm:"size:500"`
	Subject      string `gorm:"size:200;not null"`
	Urgency      string `gorm:"size:20;not null;default:'Normal';index"`
	FeedbackType string `gorm:"size:50;not null;default:'General';index"`
	Message      string `gorm:"size:2000;not null"`
	CreatedAt    time.Time `gorm:"index"`
}

func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

const (
	FeedbackUrgencyLow      = "Low"
	FeedbackUrgencyNormal   = "Normal"
	FeedbackUrgencyHigh     = "High"
	FeedbackUrgencyCritical = "Critical"
)
