package services

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"skillnet_backend/internal/logger"
	"skillnet_backend/internal/models"
	"skillnet_backend/internal/repositories"
	"skillnet_backend/internal/services/dto"
	"skillnet_backend/pkg/apperrors"
)

type ProjectService interface {
	List(db *gorm.DB, query *dto.ProjectFilterQuery) ([]dto.ProjectResponse, error)
	GetByID(db *gorm.DB, id string) (*dto.ProjectResponse, error)
	ListByUser(db *gorm.DB, userID string) ([]dto.ProjectResponse, error)
	Create(db *gorm.DB, ownerID string, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	Update(db *gorm.DB, callerID, projectID string, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	Delete(db *gorm.DB, callerID, projectID string) error
}

type projectService struct {
	projectRepo repositories.ProjectRepository
	userRepo    repositories.UserRepository
}

func NewProjectService(projectRepo repositories.ProjectRepository, userRepo repositories.UserRepository) ProjectService {
	return &projectService{projectRepo: projectRepo, userRepo: userRepo}
}

// List runs the composable filter: every present criterion narrows the
// result, newest projects come first.
func (s *projectService) List(db *gorm.DB, query *dto.ProjectFilterQuery) ([]dto.ProjectResponse, error) {
	filter := repositories.ProjectFilter{
		SearchTerm:   query.SearchTerm,
		Categories:   query.Categories,
		Technologies: query.Technologies,
		Domains:      query.Domains,
		Skip:         query.Skip,
		Take:         query.Take,
	}
	projects, err := s.projectRepo.FindWithFilter(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toProjectResponses(projects), nil
}

func (s *projectService) GetByID(db *gorm.DB, id string) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	resp := toProjectResponse(project)
	return &resp, nil
}

func (s *projectService) ListByUser(db *gorm.DB, userID string) ([]dto.ProjectResponse, error) {
	if _, err := s.userRepo.FindByID(db, userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	projects, err := s.projectRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toProjectResponses(projects), nil
}

func (s *projectService) Create(db *gorm.DB, ownerID string, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	project := &models.Project{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Technology:  req.Technology,
		Domain:      req.Domain,
		TechStack:   datatypes.NewJSONSlice(req.TechStack),
		GithubLink:  req.GithubLink,
		UserID:      ownerID,
	}
	if err := s.projectRepo.Create(db, project); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("project created", "project_id", project.ID, "user_id", ownerID)

	// Reload with the owner preloaded.
	return s.GetByID(db, project.ID)
}

// Update applies only the fields present in the request. Only the
// owner may update a project.
func (s *projectService) Update(db *gorm.DB, callerID, projectID string, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(db, projectID)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if project.UserID != callerID {
		return nil, apperrors.ErrNotProjectOwner
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Category != nil {
		project.Category = *req.Category
	}
	if req.Technology != nil {
		project.Technology = *req.Technology
	}
	if req.Domain != nil {
		project.Domain = *req.Domain
	}
	if req.TechStack != nil {
		project.TechStack = datatypes.NewJSONSlice(*req.TechStack)
	}
	if req.GithubLink != nil {
		project.GithubLink = *req.GithubLink
	}

	if err := s.projectRepo.Update(db, project); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := toProjectResponse(project)
	return &resp, nil
}

func (s *projectService) Delete(db *gorm.DB, callerID, projectID string) error {
	project, err := s.projectRepo.FindByID(db, projectID)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return apperrors.InternalError(err)
	}
	if project.UserID != callerID {
		return apperrors.ErrNotProjectOwner
	}

	if err := s.projectRepo.Delete(db, projectID); err != nil {
		return apperrors.InternalError(err)
	}
	logger.Info("project deleted", "project_id", projectID, "user_id", callerID)
	return nil
}

func toProjectResponse(project *models.Project) dto.ProjectResponse {
	return dto.ProjectResponse{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		Category:    project.Category,
		Technology:  project.Technology,
		Domain:      project.Domain,
		TechStack:   project.TechStack,
		GithubLink:  project.GithubLink,
		User: dto.UserDTO{
			ID:        project.User.ID,
			Name:      project.User.Name,
			Email:     project.User.Email,
			Avatar:    project.User.Avatar,
			Rating:    project.User.Rating,
			CreatedAt: project.User.CreatedAt,
		},
		CreatedAt: project.CreatedAt,
	}
}

func toProjectResponses(projects []models.Project) []dto.ProjectResponse {
	responses := make([]dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		responses = append(responses, toProjectResponse(&projects[i]))
	}
	return responses
}
