package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillnet_backend/internal/config"
	"skillnet_backend/internal/logger"
	"skillnet_backend/internal/middleware"
	"skillnet_backend/internal/services"
	"skillnet_backend/internal/services/dto"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
	jwtCfg      *config.JWTConfig
}

func NewUserHandler(base *BaseHandler, userService services.UserService, jwtCfg *config.JWTConfig) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
		jwtCfg:      jwtCfg,
	}
}

// RegisterRoutes registers the user routes. The profile route uses
// optional auth so anonymous views are still counted.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.GET("/search", h.Search)
		users.GET("/by-skill/:skill", h.FindBySkill)
		users.GET("/:id", middleware.OptionalAuthMiddleware(h.jwtCfg), h.GetProfile)
	}

	me := rg.Group("/me")
	me.Use(middleware.AuthMiddleware(h.jwtCfg))
	{
		me.GET("", h.GetOwnProfile)
		me.PATCH("", h.UpdateProfile)
		me.POST("/skills", h.AddSkill)
		me.DELETE("/skills/:skill", h.RemoveSkill)
	}
}

// GetProfile godoc
// @Summary Get a user's public profile
// @Description Records a profile view; authenticated viewers are attributed, anonymous ones are not
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserProfileResponse
// @Failure 404 {object} apperrors.ErrorResponse "User not found"
// @Router /users/{id} [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	db := h.GetDB(c)
	profileID := c.Param("id")

	profile, err := h.userService.GetProfile(db, profileID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	// Record the view after the profile is known to exist. A failure
	// here must not fail the read.
	var viewerID *string
	if id := middleware.GetUserID(c); id != "" {
		viewerID = &id
	}
	if err := h.userService.RecordProfileView(db, profileID, viewerID, c.ClientIP(), c.Request.UserAgent()); err != nil {
		logger.CtxWithError(c.Request.Context(), "failed to record profile view", err, "profile_id", profileID)
	}

	c.JSON(http.StatusOK, profile)
}

// GetOwnProfile godoc
// @Summary Get the authenticated user's profile
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserProfileResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /me [get]
func (h *UserHandler) GetOwnProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	db := h.GetDB(c)

	profile, err := h.userService.GetProfile(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Update the authenticated user's profile
// @Description Partial update; omitted fields are left untouched
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} dto.UserProfileResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /me [patch]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	profile, err := h.userService.UpdateProfile(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Search godoc
// @Summary Search users by name, email or skill
// @Tags users
// @Produce json
// @Param searchTerm query string false "Search term"
// @Param skip query int false "Offset"
// @Param take query int false "Page size (default 20)"
// @Success 200 {array} dto.UserProfileResponse
// @Router /users/search [get]
func (h *UserHandler) Search(c *gin.Context) {
	var query dto.UserSearchQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	db := h.GetDB(c)

	users, err := h.userService.Search(db, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// FindBySkill godoc
// @Summary List users having a skill
// @Tags users
// @Produce json
// @Param skill path string true "Skill name"
// @Success 200 {array} dto.UserProfileResponse
// @Router /users/by-skill/{skill} [get]
func (h *UserHandler) FindBySkill(c *gin.Context) {
	db := h.GetDB(c)
	skill := c.Param("skill")
	skip := ParseQueryInt(c, "skip", 0)
	take := ParseQueryInt(c, "take", 20)

	users, err := h.userService.FindBySkill(db, skill, skip, take)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// AddSkill godoc
// @Summary Add or update a skill on the authenticated user's profile
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.AddSkillRequest true "Skill"
// @Success 200 {object} map[string]string
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /me/skills [post]
func (h *UserHandler) AddSkill(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AddSkillRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.userService.AddSkill(db, userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Skill saved"})
}

// RemoveSkill godoc
// @Summary Remove a skill from the authenticated user's profile
// @Tags users
// @Produce json
// @Param skill path string true "Skill name"
// @Success 200 {object} map[string]string
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /me/skills/{skill} [delete]
func (h *UserHandler) RemoveSkill(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.userService.RemoveSkill(db, userID, c.Param("skill")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Skill removed"})
}
