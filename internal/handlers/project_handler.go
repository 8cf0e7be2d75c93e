package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillnet_backend/internal/config"
	"skillnet_backend/internal/middleware"
	"skillnet_backend/internal/services"
	"skillnet_backend/internal/services/dto"
)

type ProjectHandler struct {
	*BaseHandler
	projectService services.ProjectService
	jwtCfg         *config.JWTConfig
}

func NewProjectHandler(base *BaseHandler, projectService services.ProjectService, jwtCfg *config.JWTConfig) *ProjectHandler {
	return &ProjectHandler{
		BaseHandler:    base,
		projectService: projectService,
		jwtCfg:         jwtCfg,
	}
}

// RegisterRoutes registers all project routes. Reads are public,
// mutations require auth.
func (h *ProjectHandler) RegisterRoutes(rg *gin.RouterGroup) {
	projects := rg.Group("/projects")
	{
		projects.GET("", h.List)
		projects.GET("/search", h.Search)
		projects.GET("/:id", h.GetByID)
		projects.GET("/user/:id", h.ListByUser)
	}

	authed := rg.Group("/projects")
	authed.Use(middleware.AuthMiddleware(h.jwtCfg))
	{
		authed.POST("", h.Create)
		authed.PATCH("/:id", h.Update)
		authed.DELETE("/:id", h.Delete)
	}

	mine := rg.Group("/me/projects")
	mine.Use(middleware.AuthMiddleware(h.jwtCfg))
	{
		mine.GET("", h.ListOwn)
	}
}

// List godoc
// @Summary List projects
// @Description Filters combine with AND; repeated categories/technologies/domains params form IN-sets
// @Tags projects
// @Produce json
// @Param searchTerm query string false "Free-text search over title, description, category, technology and domain"
// @Param categories query []string false "Category filter" collectionFormat(multi)
// @Param technologies query []string false "Technology filter" collectionFormat(multi)
// @Param domains query []string false "Domain filter" collectionFormat(multi)
// @Param skip query int false "Offset"
// @Param take query int false "Page size (default 20)"
// @Success 200 {array} dto.ProjectResponse
// @Router /projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	var query dto.ProjectFilterQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	db := h.GetDB(c)

	projects, err := h.projectService.List(db, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// Search is the term-only variant of List. The term is required;
// a blank one is a bad request, not an empty result.
//
// Search godoc
// @Summary Search projects by term
// @Tags projects
// @Produce json
// @Param searchTerm query string true "Search term"
// @Param skip query int false "Offset"
// @Param take query int false "Page size (default 20)"
// @Success 200 {array} dto.ProjectResponse
// @Failure 400 {object} apperrors.ErrorResponse "Blank search term"
// @Router /projects/search [get]
func (h *ProjectHandler) Search(c *gin.Context) {
	var query dto.ProjectSearchQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	db := h.GetDB(c)

	projects, err := h.projectService.List(db, &dto.ProjectFilterQuery{
		SearchTerm: query.SearchTerm,
		Skip:       query.Skip,
		Take:       query.Take,
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetByID godoc
// @Summary Get one project with its owner
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 404 {object} apperrors.ErrorResponse "Project not found"
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetByID(c *gin.Context) {
	db := h.GetDB(c)

	project, err := h.projectService.GetByID(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// ListByUser godoc
// @Summary List a user's projects
// @Tags projects
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {array} dto.ProjectResponse
// @Failure 404 {object} apperrors.ErrorResponse "User not found"
// @Router /projects/user/{id} [get]
func (h *ProjectHandler) ListByUser(c *gin.Context) {
	db := h.GetDB(c)

	projects, err := h.projectService.ListByUser(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// ListOwn godoc
// @Summary List the authenticated user's projects
// @Tags projects
// @Produce json
// @Success 200 {array} dto.ProjectResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /me/projects [get]
func (h *ProjectHandler) ListOwn(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	db := h.GetDB(c)

	projects, err := h.projectService.ListByUser(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// Create godoc
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Param request body dto.CreateProjectRequest true "Project data"
// @Success 201 {object} dto.ProjectResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	project, err := h.projectService.Create(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// Update godoc
// @Summary Update an owned project
// @Description Partial update; omitted fields are left untouched
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param request body dto.UpdateProjectRequest true "Fields to change"
// @Success 200 {object} dto.ProjectResponse
// @Failure 403 {object} apperrors.ErrorResponse "Not the owner"
// @Failure 404 {object} apperrors.ErrorResponse "Project not found"
// @Router /projects/{id} [patch]
func (h *ProjectHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	project, err := h.projectService.Update(db, userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// Delete godoc
// @Summary Delete an owned project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} apperrors.ErrorResponse "Not the owner"
// @Failure 404 {object} apperrors.ErrorResponse "Project not found"
// @Router /projects/{id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.projectService.Delete(db, userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}
