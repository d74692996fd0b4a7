package delivery

import (
	"net/http"
	"strconv"

	"products_service/internal/domain"
	"products_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ProductHandler struct {
	useCase usecase.ProductUseCase
	log     *logrus.Logger
}

func NewProductHandler(uc usecase.ProductUseCase, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *ProductHandler) RegisterRoutes(router gin.IRouter) {
	products := router.Group("/products")
	{
		products.POST("", h.CreateProduct)
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProductByID)
		products.PATCH("/:id", h.UpdateProduct)
		products.DELETE("/:id", h.RemoveProduct)
	}
}

func (h *ProductHandler) parseID(c *gin.Context) (int64, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		h.log.Warnf("Invalid product ID parameter: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return 0, false
	}
	return id, true
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req domain.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind JSON for create product: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	created, err := h.useCase.Create(c.Request.Context(), req)
	if err != nil {
		statusCode := failWith(c, "Failed to create product", err)
		h.log.Errorf("Failed to create product '%s' (status %d): %v", req.Name, statusCode, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "Product created successfully", created)
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	var query domain.PaginationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.log.Warnf("Invalid pagination parameters: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid pagination parameters: "+err.Error())
		return
	}

	page, err := h.useCase.FindAll(c.Request.Context(), query)
	if err != nil {
		statusCode := failWith(c, "Failed to retrieve products", err)
		h.log.Errorf("Failed to list products (status %d): %v", statusCode, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "Products retrieved successfully", page)
}

func (h *ProductHandler) GetProductByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	product, err := h.useCase.FindOne(c.Request.Context(), id)
	if err != nil {
		statusCode := failWith(c, "Failed to retrieve product", err)
		h.log.Warnf("Failed to get product by ID %d (status %d): %v", id, statusCode, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "Product retrieved successfully", product)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req domain.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind JSON for update product ID %d: %v", id, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	updated, err := h.useCase.Update(c.Request.Context(), id, req)
	if err != nil {
		statusCode := failWith(c, "Failed to update product", err)
		h.log.Errorf("Failed to update product ID %d (status %d): %v", id, statusCode, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "Product updated successfully", updated)
}

func (h *ProductHandler) RemoveProduct(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	removed, err := h.useCase.Remove(c.Request.Context(), id)
	if err != nil {
		statusCode := failWith(c, "Failed to delete product", err)
		h.log.Warnf("Failed to delete product ID %d (status %d): %v", id, statusCode, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "Product deleted successfully", removed)
}
