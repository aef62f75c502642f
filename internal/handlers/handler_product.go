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

// productHandler handles HTTP requests related to catalog products.
type productHandler struct {
	productService portssvc.ProductSvcFacade
}

// newProductHandler creates a new productHandler.
func newProductHandler(ps portssvc.ProductSvcFacade) *productHandler {
	return &productHandler{
		productService: ps,
	}
}

// registerProductRoutes registers routes related to catalog products.
func registerProductRoutes(rg *gin.RouterGroup, productService portssvc.ProductSvcFacade) {
	h := newProductHandler(productService)

	products := rg.Group("/products")
	{
		products.POST("", h.createProduct)
		products.GET("", h.listProducts)
		products.GET("/:productID", h.getProductByID)
		products.PUT("/:productID", h.updateProduct)
		products.DELETE("/:productID", h.deleteProduct)
	}
}

// createProduct godoc
// @Summary Create a new catalog product
// @Description Adds a product with its unit cost and per-person consumption factor
// @Tags products
// @Accept  json
// @Produce  json
// @Param   product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create product"
// @Router /products [post]
func (h *productHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateProduct", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create product", slog.String("product_name", req.Name))

	createdProduct, err := h.productService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating product", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create product in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		}
		return
	}

	logger.Info("Product created successfully", slog.String("product_id", createdProduct.ProductID))
	c.JSON(http.StatusCreated, dto.ToProductResponse(createdProduct))
}

// getProductByID godoc
// @Summary Get a product by ID
// @Description Retrieves details for a specific catalog product
// @Tags products
// @Produce  json
// @Param   productID path string true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Failed to retrieve product"
// @Router /products/{productID} [get]
func (h *productHandler) getProductByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("productID")
	logger = logger.With(slog.String("product_id", productID))
	logger.Info("Received request to get product by ID")

	product, err := h.productService.GetProductByID(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Product not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			logger.Error("Failed to get product from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// listProducts godoc
// @Summary List all catalog products
// @Description Retrieves the full product catalog ordered by name
// @Tags products
// @Produce  json
// @Success 200 {array} dto.ProductResponse
// @Failure 500 {object} map[string]string "Failed to list products"
// @Router /products [get]
func (h *productHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to list products")

	products, err := h.productService.ListProducts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list products from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListProductResponse(products))
}

// updateProduct godoc
// @Summary Update a catalog product
// @Description Updates name, unit cost or factor of an existing product
// @Tags products
// @Accept  json
// @Produce  json
// @Param   productID path string true "Product ID"
// @Param   product body dto.UpdateProductRequest true "Fields to update"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Failed to update product"
// @Router /products/{productID} [put]
func (h *productHandler) updateProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("productID")
	logger = logger.With(slog.String("product_id", productID))

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateProduct", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to update product")

	updatedProduct, err := h.productService.UpdateProduct(c.Request.Context(), productID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Product not found for update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating product", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update product in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		}
		return
	}

	logger.Info("Product updated successfully")
	c.JSON(http.StatusOK, dto.ToProductResponse(updatedProduct))
}

// deleteProduct godoc
// @Summary Delete a catalog product
// @Description Removes the product from the catalog; existing events keep their snapshot quantities
// @Tags products
// @Produce  json
// @Param   productID path string true "Product ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Failed to delete product"
// @Router /products/{productID} [delete]
func (h *productHandler) deleteProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("productID")
	logger = logger.With(slog.String("product_id", productID))
	logger.Info("Received request to delete product")

	if err := h.productService.DeleteProduct(c.Request.Context(), productID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Product not found for delete")
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			logger.Error("Failed to delete product in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		}
		return
	}

	logger.Info("Product deleted successfully")
	c.Status(http.StatusNoContent)
}
