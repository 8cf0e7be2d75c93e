package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"skillnet_backend/internal/models"
)

var ErrProjectNotFound = errors.New("project not found")

// ProjectFilter holds the composable criteria for listing projects.
// Zero-valued fields do not constrain the result.
type ProjectFilter struct {
	SearchTerm   string
	Categories   []string
	Technologies []string
	Domains      []string
	Skip         int
	Take         int
}

const DefaultPageSize = 20

type ProjectRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Project, error)
	FindWithFilter(db *gorm.DB, filter ProjectFilter) ([]models.Project, error)
	FindByUserID(db *gorm.DB, userID string) ([]models.Project, error)
	Create(db *gorm.DB, project *models.Project) error
	Update(db *gorm.DB, project *models.Project) error
	Delete(db *gorm.DB, id string) error
}

type projectRepository struct{}

func NewProjectRepository() ProjectRepository {
	return &projectRepository{}
}

func (r *projectRepository) FindByID(db *gorm.DB, id string) (*models.Project, error) {
	var project models.Project
	err := db.Preload("User").Preload("User.Skills").
		First(&project, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

// FindWithFilter applies every present criterion conjunctively, orders
// newest first, then paginates.
func (r *projectRepository) FindWithFilter(db *gorm.DB, filter ProjectFilter) ([]models.Project, error) {
	query := db.Model(&models.Project{}).Preload("User").Preload("User.Skills")

	if filter.SearchTerm != "" {
		pattern := "%" + strings.ToLower(filter.SearchTerm) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(category) LIKE ? OR LOWER(technology) LIKE ? OR LOWER(domain) LIKE ?",
			pattern, pattern, pattern, pattern, pattern,
		)
	}
	if len(filter.Categories) > 0 {
		query = query.Where("category IN ?", filter.Categories)
	}
	if len(filter.Technologies) > 0 {
		query = query.Where("technology IN ?", filter.Technologies)
	}
	if len(filter.Domains) > 0 {
		query = query.Where("domain IN ?", filter.Domains)
	}

	// Take is taken literally: callers default it to DefaultPageSize
	// when the client omits it, and an explicit 0 yields an empty page.
	var projects []models.Project
	err := query.
		Order("created_at DESC").
		Offset(filter.Skip).
		Limit(filter.Take).
		Find(&projects).Error
	return projects, err
}

func (r *projectRepository) FindByUserID(db *gorm.DB, userID string) ([]models.Project, error) {
	var projects []models.Project
	err := db.Preload("User").Preload("User.Skills").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

func (r *projectRepository) Create(db *gorm.DB, project *models.Project) error {
	return db.Create(project).Error
}

func (r *projectRepository) Update(db *gorm.DB, project *models.Project) error {
	return db.Save(project).Error
}

func (r *projectRepository) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Project{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}
