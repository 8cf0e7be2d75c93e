package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileView records one view of a profile. ViewerID is nil for
// anonymous views and is cleared when the viewing account is deleted.
type ProfileView struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	ProfileID string    `gorm:"not null;index"`
	ViewerID  *string   `gorm:"index"`
	IPAddress string    `gorm:"size:45"`
	UserAgent string    `gorm:"size:500"`
	ViewedAt  time.Time `gorm:"autoCreateTime;index"`

	// Relations
	Profile User  `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
	Viewer  *User `gorm:"foreignKey:ViewerID;constraint:OnDelete:SET NULL"`
}

func (v *ProfileView) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
