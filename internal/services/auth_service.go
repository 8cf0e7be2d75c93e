package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"skillnet_backend/internal/auth"
	"skillnet_backend/internal/config"
	"skillnet_backend/internal/logger"
	"skillnet_backend/internal/models"
	"skillnet_backend/internal/repositories"
	"skillnet_backend/internal/services/dto"
	"skillnet_backend/pkg/apperrors"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	RefreshSession(db *gorm.DB, refreshToken string) (*dto.AuthResponse, error)
	RevokeSession(db *gorm.DB, refreshToken string) error
}

type authService struct {
	userRepo  repositories.UserRepository
	tokenRepo repositories.RefreshTokenRepository
	jwtCfg    *config.JWTConfig
}

func NewAuthService(userRepo repositories.UserRepository, tokenRepo repositories.RefreshTokenRepository, jwtCfg *config.JWTConfig) AuthService {
	return &authService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		jwtCfg:    jwtCfg,
	}
}

// Register creates the account and signs the user in. Identity rule
// violations are aggregated into one validation error; a taken email
// is a conflict and leaves no partial state behind.
func (s *authService) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ValidationError(map[string]string{"password": err.Error()})
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("user registered", "user_id", user.ID)
	return s.issueSession(db, user)
}

// Login verifies credentials. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *authService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueSession(db, user)
}

// RefreshSession trades a live refresh token for a fresh pair. The
// presented token is rotated out: it is revoked before the new one is
// issued, so it cannot be replayed.
func (s *authService) RefreshSession(db *gorm.DB, refreshToken string) (*dto.AuthResponse, error) {
	stored, err := s.tokenRepo.FindActiveByToken(db, refreshToken)
	if err != nil {
		if errors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}

	user, err := s.userRepo.FindByID(db, stored.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.tokenRepo.Revoke(db, refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.issueSession(db, user)
}

// RevokeSession invalidates a refresh token. Revoking a token that is
// unknown, already revoked or expired is reported as not found.
func (s *authService) RevokeSession(db *gorm.DB, refreshToken string) error {
	if err := s.tokenRepo.Revoke(db, refreshToken); err != nil {
		if errors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return apperrors.ErrRefreshTokenNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *authService) issueSession(db *gorm.DB, user *models.User) (*dto.AuthResponse, error) {
	accessToken, expiresAt, err := auth.GenerateToken(s.jwtCfg, user.ID, user.Name, user.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshValue, err := auth.GenerateRefreshToken()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refresh := &models.RefreshToken{
		UserID:    user.ID,
		Token:     refreshValue,
		ExpiresAt: time.Now().Add(time.Duration(s.jwtCfg.RefreshTTLDays) * 24 * time.Hour),
	}
	if err := s.tokenRepo.Create(db, refresh); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshValue,
		Expiration:   expiresAt,
		User: dto.UserDTO{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			Avatar:    user.Avatar,
			Rating:    user.Rating,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}
