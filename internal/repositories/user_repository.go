package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"skillnet_backend/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	FindByID(db *gorm.DB, id string) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)
	Create(db *gorm.DB, user *models.User) error
	Update(db *gorm.DB, user *models.User) error
	Delete(db *gorm.DB, userID string) error

	// Search matches the term against user names, emails and skill names.
	Search(db *gorm.DB, term string, limit, offset int) ([]models.User, error)
	FindBySkill(db *gorm.DB, skillName string, limit, offset int) ([]models.User, error)

	// Skill operations
	UpsertSkill(db *gorm.DB, skill *models.UserSkill) error
	RemoveSkill(db *gorm.DB, userID, skillName string) error

	// Profile stats
	CountProjects(db *gorm.DB, userID string) (int64, error)
	CountProfileViews(db *gorm.DB, userID string) (int64, error)
	CreateProfileView(db *gorm.DB, view *models.ProfileView) error
}

type userRepository struct{}

func NewUserRepository() UserRepository {
	return &userRepository{}
}

func (r *userRepository) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	err := db.Preload("Skills").First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := db.Preload("Skills").First(&user, "email = ?", strings.ToLower(email)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(db *gorm.DB, user *models.User) error {
	var existing models.User
	if err := db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	}
	return db.Create(user).Error
}

func (r *userRepository) Update(db *gorm.DB, user *models.User) error {
	return db.Save(user).Error
}

func (r *userRepository) Delete(db *gorm.DB, userID string) error {
	result := db.Delete(&models.User{}, "id = ?", userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *userRepository) Search(db *gorm.DB, term string, limit, offset int) ([]models.User, error) {
	var users []models.User
	query := db.Model(&models.User{}).Preload("Skills")

	if term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		query = query.
			Joins("LEFT JOIN user_skills ON user_skills.user_id = users.id").
			Where("LOWER(users.name) LIKE ? OR LOWER(users.email) LIKE ? OR LOWER(user_skills.skill_name) LIKE ?",
				pattern, pattern, pattern).
			Distinct("users.*")
	}

	err := query.
		Order("users.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	return users, err
}

func (r *userRepository) FindBySkill(db *gorm.DB, skillName string, limit, offset int) ([]models.User, error) {
	var users []models.User
	err := db.Model(&models.User{}).Preload("Skills").
		Joins("JOIN user_skills ON user_skills.user_id = users.id").
		Where("LOWER(user_skills.skill_name) = ?", strings.ToLower(skillName)).
		Order("users.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	return users, err
}

// UpsertSkill inserts the skill or, when the user already has it,
// updates the proficiency level in place.
func (r *userRepository) UpsertSkill(db *gorm.DB, skill *models.UserSkill) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "skill_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"proficiency_level"}),
	}).Create(skill).Error
}

// RemoveSkill deletes the skill row. Removing a skill the user never
// added is a no-op.
func (r *userRepository) RemoveSkill(db *gorm.DB, userID, skillName string) error {
	return db.Where("user_id = ? AND skill_name = ?", userID, skillName).
		Delete(&models.UserSkill{}).Error
}

func (r *userRepository) CountProjects(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.Project{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *userRepository) CountProfileViews(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.ProfileView{}).Where("profile_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *userRepository) CreateProfileView(db *gorm.DB, view *models.ProfileView) error {
	return db.Create(view).Error
}
