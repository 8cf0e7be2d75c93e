package dto

import "time"

// UserDTO - basic user info embedded in other responses
type UserDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar,omitempty"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// UserProfileResponse - full profile for /users/:id
type UserProfileResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Avatar       string     `json:"avatar,omitempty"`
	Rating       float64    `json:"rating"`
	Address      string     `json:"address,omitempty"`
	Latitude     *float64   `json:"latitude,omitempty"`
	Longitude    *float64   `json:"longitude,omitempty"`
	Skills       []SkillDTO `json:"skills"`
	ProjectCount int64      `json:"project_count"`
	ProfileViews int64      `json:"profile_views"`
	CreatedAt    time.Time  `json:"created_at"`
}

// SkillDTO - one user skill
type SkillDTO struct {
	SkillName        string `json:"skill_name"`
	ProficiencyLevel int    `json:"proficiency_level"`
}

// UpdateProfileRequest - partial profile update; nil fields are untouched
type UpdateProfileRequest struct {
	Name      *string  `json:"name,omitempty" binding:"omitempty,max=100"`
	Avatar    *string  `json:"avatar,omitempty" binding:"omitempty,max=500"`
	Address   *string  `json:"address,omitempty" binding:"omitempty,max=200"`
	Latitude  *float64 `json:"latitude,omitempty" binding:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude,omitempty" binding:"omitempty,gte=-180,lte=180"`
}

// AddSkillRequest - add or update a skill on the profile
type AddSkillRequest struct {
	SkillName        string `json:"skill_name" binding:"required,max=100"`
	ProficiencyLevel int    `json:"proficiency_level" binding:"required,gte=1,lte=5"`
}

// UserSearchQuery - query params for /users/search
type UserSearchQuery struct {
	Term string `form:"searchTerm"`
	Skip int    `form:"skip" binding:"omitempty,gte=0"`
	Take int    `form:"take,default=20" binding:"omitempty,gte=0,lte=100"`
}
