package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/caterops/catering_backend/internal/apperrors"
	portssvc "github.com/caterops/catering_backend/internal/core/ports/services"
	"github.com/caterops/catering_backend/internal/dto"
	"github.com/caterops/catering_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// extraHandler handles HTTP requests related to extra cost templates.
type extraHandler struct {
	extraService portssvc.ExtraSvcFacade
}

// newExtraHandler creates a new extraHandler.
func newExtraHandler(es portssvc.ExtraSvcFacade) *extraHandler {
	return &extraHandler{
		extraService: es,
	}
}

// registerExtraRoutes registers routes related to extra cost templates.
func registerExtraRoutes(rg *gin.RouterGroup, extraService portssvc.ExtraSvcFacade) {
	h := newExtraHandler(extraService)

	extras := rg.Group("/extras")
	{
		extras.POST("", h.createExtra)
		extras.GET("", h.listExtras)
		extras.GET("/:extraID", h.getExtraByID)
		extras.PUT("/:extraID", h.updateExtra)
		extras.DELETE("/:extraID", h.deleteExtra)
	}
}

// createExtra godoc
// @Summary Create a new extra cost template
// @Description Adds a reusable fixed cost that events can select
// @Tags extras
// @Accept  json
// @Produce  json
// @Param   extra body dto.CreateExtraRequest true "Extra details"
// @Success 201 {object} dto.ExtraResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create extra"
// @Router /extras [post]
func (h *extraHandler) createExtra(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExtraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExtra", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create extra", slog.String("extra_name", req.Name))

	createdExtra, err := h.extraService.CreateExtra(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating extra", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create extra in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create extra"})
		}
		return
	}

	logger.Info("Extra created successfully", slog.String("extra_id", createdExtra.ExtraID))
	c.JSON(http.StatusCreated, dto.ToExtraResponse(createdExtra))
}

// getExtraByID godoc
// @Summary Get an extra cost template by ID
// @Tags extras
// @Produce  json
// @Param   extraID path string true "Extra ID"
// @Success 200 {object} dto.ExtraResponse
// @Failure 404 {object} map[string]string "Extra not found"
// @Failure 500 {object} map[string]string "Failed to retrieve extra"
// @Router /extras/{extraID} [get]
func (h *extraHandler) getExtraByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	extraID := c.Param("extraID")
	logger = logger.With(slog.String("extra_id", extraID))
	logger.Info("Received request to get extra by ID")

	extra, err := h.extraService.GetExtraByID(c.Request.Context(), extraID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Extra not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Extra not found"})
		} else {
			logger.Error("Failed to get extra from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve extra"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToExtraResponse(extra))
}

// listExtras godoc
// @Summary List all extra cost templates
// @Tags extras
// @Produce  json
// @Success 200 {array} dto.ExtraResponse
// @Failure 500 {object} map[string]string "Failed to list extras"
// @Router /extras [get]
func (h *extraHandler) listExtras(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to list extras")

	extras, err := h.extraService.ListExtras(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list extras from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list extras"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListExtraResponse(extras))
}

// updateExtra godoc
// @Summary Update an extra cost template
// @Description Updates the template only; events that already copied the cost are unaffected
// @Tags extras
// @Accept  json
// @Produce  json
// @Param   extraID path string true "Extra ID"
// @Param   extra body dto.UpdateExtraRequest true "Fields to update"
// @Success 200 {object} dto.ExtraResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Extra not found"
// @Failure 500 {object} map[string]string "Failed to update extra"
// @Router /extras/{extraID} [put]
func (h *extraHandler) updateExtra(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	extraID := c.Param("extraID")
	logger = logger.With(slog.String("extra_id", extraID))

	var req dto.UpdateExtraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateExtra", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to update extra")

	updatedExtra, err := h.extraService.UpdateExtra(c.Request.Context(), extraID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Extra not found for update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Extra not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating extra", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update extra in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update extra"})
		}
		return
	}

	logger.Info("Extra updated successfully")
	c.JSON(http.StatusOK, dto.ToExtraResponse(updatedExtra))
}

// deleteExtra godoc
// @Summary Delete an extra cost template
// @Tags extras
// @Produce  json
// @Param   extraID path string true "Extra ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Extra not found"
// @Failure 500 {object} map[string]string "Failed to delete extra"
// @Router /extras/{extraID} [delete]
func (h *extraHandler) deleteExtra(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	extraID := c.Param("extraID")
	logger = logger.With(slog.String("extra_id", extraID))
	logger.Info("Received request to delete extra")

	if err := h.extraService.DeleteExtra(c.Request.Context(), extraID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Extra not found for delete")
			c.JSON(http.StatusNotFound, gin.H{"error": "Extra not found"})
		} else {
			logger.Error("Failed to delete extra in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete extra"})
		}
		return
	}

	logger.Info("Extra deleted successfully")
	c.Status(http.StatusNoContent)
}
