package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/business_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/business_management_app/internal/core/ports/services"
	"github.com/SscSPs/business_management_app/internal/dto"
	"github.com/SscSPs/business_management_app/internal/middleware"
	"github.com/SscSPs/business_management_app/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// warehouseHandler handles HTTP requests for products and stock movements.
type warehouseHandler struct {
	warehouseService portssvc.WarehouseSvcFacade
	location         *time.Location
}

// RegisterWarehouseRoutes registers routes for the warehouse module.
func RegisterWarehouseRoutes(rg *gin.RouterGroup, warehouseService portssvc.WarehouseSvcFacade, loc *time.Location) {
	h := &warehouseHandler{warehouseService: warehouseService, location: loc}

	warehouse := rg.Group("/warehouse")
	{
		warehouse.GET("/products", h.listProducts)
		warehouse.POST("/products", h.createProduct)
		warehouse.GET("/movements", h.listMovements)
		warehouse.POST("/movements", h.registerMovement)
		warehouse.GET("/stats", h.getStats)
	}
}

func pageOf(page, pageSize int) domain.Page {
	if page == 0 && pageSize == 0 {
		return domain.Page{}
	}
	p, size := pagination.Normalize(page, pageSize)
	return domain.Page{Page: p, PageSize: size}
}

// listProducts godoc
// @Summary List products
// @Tags warehouse
// @Produce json
// @Param search query string false "Case-insensitive name search"
// @Param category query string false "Category"
// @Param page query int false "Page number, 1-based"
// @Param pageSize query int false "Rows per page"
// @Success 200 {object} dto.ListProductsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list products"
// @Security BearerAuth
// @Router /warehouse/products [get]
func (h *warehouseHandler) listProducts(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var params dto.ListProductsParams
	if !bindQuery(c, &params) {
		return
	}
	filter := domain.ProductFilter{Search: params.Search, Category: params.Category, Page: pageOf(params.Page, params.PageSize)}

	page, err := h.warehouseService.ListProducts(c.Request.Context(), userID, filter)
	if err != nil {
		handleServiceError(c, err, "Failed to list products")
		return
	}

	res := dto.ListProductsResponse{Products: page.Products, Total: page.Total}
	if filter.Page.Enabled() {
		res.Page = filter.Page.Page
		res.PageSize = filter.Page.PageSize
		res.TotalPages = pagination.TotalPages(page.Total, filter.Page.PageSize)
	}
	c.JSON(http.StatusOK, res)
}

// createProduct godoc
// @Summary Create a product
// @Tags warehouse
// @Accept json
// @Produce json
// @Param product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} domain.Product
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Product already exists"
// @Failure 500 {object} map[string]string "Failed to create product"
// @Security BearerAuth
// @Router /warehouse/products [post]
func (h *warehouseHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.warehouseService.CreateProduct(c.Request.Context(), userID, req)
	if err != nil {
		handleServiceError(c, err, "Failed to create product")
		return
	}

	logger.Info("Product created successfully", slog.String("product_id", product.ProductID))
	c.JSON(http.StatusCreated, product)
}

// listMovements godoc
// @Summary List stock movements
// @Description Movements newest first, with the product name and category at the time of listing.
// @Tags warehouse
// @Produce json
// @Param type query string false "in, out or all"
// @Param productID query string false "Product ID"
// @Param from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param to query string false "Exclusive end date (YYYY-MM-DD)"
// @Param page query int false "Page number, 1-based"
// @Param pageSize query int false "Rows per page"
// @Success 200 {object} dto.ListMovementsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list movements"
// @Security BearerAuth
// @Router /warehouse/movements [get]
func (h *warehouseHandler) listMovements(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var params dto.ListMovementsParams
	if !bindQuery(c, &params) {
		return
	}
	from, until, err := parseRange(params.From, params.To, h.location)
	if err != nil {
		handleServiceError(c, err, "Invalid date range")
		return
	}
	filter := domain.MovementFilter{
		Type:      domain.MovementTypeFilter(params.Type),
		ProductID: params.ProductID,
		From:      from,
		Until:     until,
		Page:      pageOf(params.Page, params.PageSize),
	}

	page, err := h.warehouseService.ListMovements(c.Request.Context(), userID, filter)
	if err != nil {
		handleServiceError(c, err, "Failed to list movements")
		return
	}

	res := dto.ListMovementsResponse{Movements: page.Movements, Total: page.Total}
	if filter.Page.Enabled() {
		res.Page = filter.Page.Page
		res.PageSize = filter.Page.PageSize
		res.TotalPages = pagination.TotalPages(page.Total, filter.Page.PageSize)
	}
	c.JSON(http.StatusOK, res)
}

// registerMovement godoc
// @Summary Register a stock movement
// @Description Records an entry or exit and updates the product stock atomically. Exits beyond the available stock are rejected.
// @Tags warehouse
// @Accept json
// @Produce json
// @Param movement body dto.RegisterMovementRequest true "Movement details"
// @Success 201 {object} domain.Movement
// @Failure 400 {object} map[string]string "Invalid input or insufficient stock"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Failed to register movement"
// @Security BearerAuth
// @Router /warehouse/movements [post]
func (h *warehouseHandler) registerMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.RegisterMovementRequest
	if !bindJSON(c, &req) {
		return
	}

	movement, err := h.warehouseService.RegisterMovement(c.Request.Context(), userID, req)
	if err != nil {
		handleServiceError(c, err, "Failed to register movement")
		return
	}

	logger.Info("Movement registered successfully", slog.String("movement_id", movement.MovementID))
	c.JSON(http.StatusCreated, movement)
}

// getStats godoc
// @Summary Warehouse statistics
// @Description Product count, low-stock count, category distribution and the top products by stock.
// @Tags warehouse
// @Produce json
// @Success 200 {object} domain.WarehouseStats
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute warehouse statistics"
// @Security BearerAuth
// @Router /warehouse/stats [get]
func (h *warehouseHandler) getStats(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	stats, err := h.warehouseService.GetWarehouseStats(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err, "Failed to compute warehouse statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}
