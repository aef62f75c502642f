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

// packageHandler handles HTTP requests related to product bundles.
type packageHandler struct {
	packageService portssvc.PackageSvcFacade
}

// newPackageHandler creates a new packageHandler.
func newPackageHandler(ps portssvc.PackageSvcFacade) *packageHandler {
	return &packageHandler{
		packageService: ps,
	}
}

// registerPackageRoutes registers routes related to product bundles.
func registerPackageRoutes(rg *gin.RouterGroup, packageService portssvc.PackageSvcFacade) {
	h := newPackageHandler(packageService)

	packages := rg.Group("/packages")
	{
		packages.POST("", h.createPackage)
		packages.GET("", h.listPackages)
		packages.GET("/:packageID", h.getPackageByID)
		packages.PUT("/:packageID", h.updatePackage)
		packages.DELETE("/:packageID", h.deletePackage)
	}
}

// createPackage godoc
// @Summary Create a new product bundle
// @Description Groups existing catalog products under one selectable package
// @Tags packages
// @Accept  json
// @Produce  json
// @Param   package body dto.CreatePackageRequest true "Package details"
// @Success 201 {object} dto.PackageResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown product reference"
// @Failure 500 {object} map[string]string "Failed to create package"
// @Router /packages [post]
func (h *packageHandler) createPackage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePackage", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create package", slog.String("package_name", req.Name))

	createdPackage, err := h.packageService.CreatePackage(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrMissingCatalogRef) {
			logger.Warn("Validation error creating package", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create package in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create package"})
		}
		return
	}

	logger.Info("Package created successfully", slog.String("package_id", createdPackage.PackageID))
	c.JSON(http.StatusCreated, dto.ToPackageResponse(createdPackage))
}

// getPackageByID godoc
// @Summary Get a product bundle by ID
// @Tags packages
// @Produce  json
// @Param   packageID path string true "Package ID"
// @Success 200 {object} dto.PackageResponse
// @Failure 404 {object} map[string]string "Package not found"
// @Failure 500 {object} map[string]string "Failed to retrieve package"
// @Router /packages/{packageID} [get]
func (h *packageHandler) getPackageByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	packageID := c.Param("packageID")
	logger = logger.With(slog.String("package_id", packageID))
	logger.Info("Received request to get package by ID")

	pkg, err := h.packageService.GetPackageByID(c.Request.Context(), packageID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Package not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
		} else {
			logger.Error("Failed to get package from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve package"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPackageResponse(pkg))
}

// listPackages godoc
// @Summary List all product bundles
// @Tags packages
// @Produce  json
// @Success 200 {array} dto.PackageResponse
// @Failure 500 {object} map[string]string "Failed to list packages"
// @Router /packages [get]
func (h *packageHandler) listPackages(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to list packages")

	packages, err := h.packageService.ListPackages(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list packages from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list packages"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPackageResponse(packages))
}

// updatePackage godoc
// @Summary Update a product bundle
// @Tags packages
// @Accept  json
// @Produce  json
// @Param   packageID path string true "Package ID"
// @Param   package body dto.UpdatePackageRequest true "Fields to update"
// @Success 200 {object} dto.PackageResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown product reference"
// @Failure 404 {object} map[string]string "Package not found"
// @Failure 500 {object} map[string]string "Failed to update package"
// @Router /packages/{packageID} [put]
func (h *packageHandler) updatePackage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	packageID := c.Param("packageID")
	logger = logger.With(slog.String("package_id", packageID))

	var req dto.UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePackage", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to update package")

	updatedPackage, err := h.packageService.UpdatePackage(c.Request.Context(), packageID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Package not found for update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
		} else if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrMissingCatalogRef) {
			logger.Warn("Validation error updating package", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update package in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update package"})
		}
		return
	}

	logger.Info("Package updated successfully")
	c.JSON(http.StatusOK, dto.ToPackageResponse(updatedPackage))
}

// deletePackage godoc
// @Summary Delete a product bundle
// @Description Removes the bundle only; events that already expanded it keep their line items
// @Tags packages
// @Produce  json
// @Param   packageID path string true "Package ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Package not found"
// @Failure 500 {object} map[string]string "Failed to delete package"
// @Router /packages/{packageID} [delete]
func (h *packageHandler) deletePackage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	packageID := c.Param("packageID")
	logger = logger.With(slog.String("package_id", packageID))
	logger.Info("Received request to delete package")

	if err := h.packageService.DeletePackage(c.Request.Context(), packageID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Package not found for delete")
			c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
		} else {
			logger.Error("Failed to delete package in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete package"})
		}
		return
	}

	logger.Info("Package deleted successfully")
	c.Status(http.StatusNoContent)
}
