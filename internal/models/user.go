package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null"`
	Name         string   `gorm:"size:100;not null"`
	PasswordHash string   `gorm:"not null"`
	Avatar       string   `gorm:"size:500"`
	Rating       float64  `gorm:"default:0"`
	Latitude     *float64
	Longitude    *float64
	Address      string   `gorm:"size:200"`

	// Relations
	Skills        []UserSkill    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Projects      []Project      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// UserSkill holds one (user, skill name) pair. The unique index makes
// re-adding a skill an update, never a second row.
type UserSkill struct {
	ID               string `gorm:"type:uuid;primaryKey"`
	UserID           string `gorm:"not null;uniqueIndex:idx_user_skill"`
	SkillName        string `gorm:"size:100;not null;uniqueIndex:idx_user_skill"`
	ProficiencyLevel int    `gorm:"default:1;check:proficiency_level >= 1 AND proficiency_level <= 5"`
	CreatedAt        time.Time
}

func (s *UserSkill) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// RefreshToken is the persisted half of a session: the opaque value
// handed to the client, its owner, its expiry, and whether it was
// explicitly revoked.
type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
	Revoked   bool      `gorm:"default:false"`
}
