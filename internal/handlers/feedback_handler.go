package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillnet_backend/internal/config"
	"skillnet_backend/internal/middleware"
	"skillnet_backend/internal/services"
	"skillnet_backend/internal/services/dto"
)

type FeedbackHandler struct {
	*BaseHandler
	feedbackService services.FeedbackService
	jwtCfg          *config.JWTConfig
}

func NewFeedbackHandler(base *BaseHandler, feedbackService services.FeedbackService, jwtCfg *config.JWTConfig) *FeedbackHandler {
	return &FeedbackHandler{
		BaseHandler:     base,
		feedbackService: feedbackService,
		jwtCfg:          jwtCfg,
	}
}

// RegisterRoutes registers the feedback routes. Submission is public;
// the listing requires auth because entries carry contact details.
func (h *FeedbackHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/feedback", h.Submit)
	rg.GET("/feedback", middleware.AuthMiddleware(h.jwtCfg), h.List)
}

// Submit godoc
// @Summary Submit feedback
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body dto.CreateFeedbackRequest true "Feedback form"
// @Success 201 {object} dto.FeedbackResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /feedback [post]
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req dto.CreateFeedbackRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	feedback, err := h.feedbackService.Submit(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, feedback)
}

// List godoc
// @Summary List submitted feedback, newest first
// @Tags feedback
// @Produce json
// @Param skip query int false "Offset"
// @Param take query int false "Page size (default 20)"
// @Success 200 {array} dto.FeedbackResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /feedback [get]
func (h *FeedbackHandler) List(c *gin.Context) {
	var query dto.FeedbackListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	db := h.GetDB(c)

	items, err := h.feedbackService.List(db, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
