package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"skillnet_backend/internal/models"
	"skillnet_backend/internal/repositories"
	"skillnet_backend/internal/services/dto"
	"skillnet_backend/pkg/apperrors"
)

type UserService interface {
	GetProfile(db *gorm.DB, userID string) (*dto.UserProfileResponse, error)
	UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error)
	Search(db *gorm.DB, query *dto.UserSearchQuery) ([]dto.UserProfileResponse, error)
	FindBySkill(db *gorm.DB, skillName string, skip, take int) ([]dto.UserProfileResponse, error)
	AddSkill(db *gorm.DB, userID string, req *dto.AddSkillRequest) error
	RemoveSkill(db *gorm.DB, userID, skillName string) error
	RecordProfileView(db *gorm.DB, profileID string, viewerID *string, ip, userAgent string) error
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetProfile(db *gorm.DB, userID string) (*dto.UserProfileResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return s.toProfile(db, user)
}

// UpdateProfile applies only the fields present in the request.
func (s *userService) UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.Latitude != nil {
		user.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		user.Longitude = req.Longitude
	}

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.toProfile(db, user)
}

func (s *userService) Search(db *gorm.DB, query *dto.UserSearchQuery) ([]dto.UserProfileResponse, error) {
	users, err := s.userRepo.Search(db, query.Term, query.Take, query.Skip)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.toProfiles(db, users)
}

func (s *userService) FindBySkill(db *gorm.DB, skillName string, skip, take int) ([]dto.UserProfileResponse, error) {
	users, err := s.userRepo.FindBySkill(db, skillName, take, skip)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.toProfiles(db, users)
}

// AddSkill upserts the (user, skill) pair. Re-adding an existing skill
// updates its level and never creates a duplicate row.
func (s *userService) AddSkill(db *gorm.DB, userID string, req *dto.AddSkillRequest) error {
	if _, err := s.userRepo.FindByID(db, userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	skill := &models.UserSkill{
		UserID:           userID,
		SkillName:        strings.TrimSpace(req.SkillName),
		ProficiencyLevel: req.ProficiencyLevel,
	}
	if err := s.userRepo.UpsertSkill(db, skill); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *userService) RemoveSkill(db *gorm.DB, userID, skillName string) error {
	if err := s.userRepo.RemoveSkill(db, userID, skillName); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// RecordProfileView stores one view row. Anonymous viewers leave
// ViewerID nil; self-views are not recorded.
func (s *userService) RecordProfileView(db *gorm.DB, profileID string, viewerID *string, ip, userAgent string) error {
	if viewerID != nil && *viewerID == profileID {
		return nil
	}
	view := &models.ProfileView{
		ProfileID: profileID,
		ViewerID:  viewerID,
		IPAddress: ip,
		UserAgent: userAgent,
	}
	if err := s.userRepo.CreateProfileView(db, view); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *userService) toProfile(db *gorm.DB, user *models.User) (*dto.UserProfileResponse, error) {
	projectCount, err := s.userRepo.CountProjects(db, user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	viewCount, err := s.userRepo.CountProfileViews(db, user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	skills := make([]dto.SkillDTO, 0, len(user.Skills))
	for _, skill := range user.Skills {
		skills = append(skills, dto.SkillDTO{
			SkillName:        skill.SkillName,
			ProficiencyLevel: skill.ProficiencyLevel,
		})
	}

	return &dto.UserProfileResponse{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Avatar:       user.Avatar,
		Rating:       user.Rating,
		Address:      user.Address,
		Latitude:     user.Latitude,
		Longitude:    user.Longitude,
		Skills:       skills,
		ProjectCount: projectCount,
		ProfileViews: viewCount,
		CreatedAt:    user.CreatedAt,
	}, nil
}

func (s *userService) toProfiles(db *gorm.DB, users []models.User) ([]dto.UserProfileResponse, error) {
	profiles := make([]dto.UserProfileResponse, 0, len(users))
	for i := range users {
		profile, err := s.toProfile(db, &users[i])
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *profile)
	}
	return profiles, nil
}
