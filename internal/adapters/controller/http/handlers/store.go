package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ironclub/gym-server/internal/adapters/controller/http/middleware"
	"github.com/ironclub/gym-server/internal/adapters/controller/http/response"
	"github.com/ironclub/gym-server/internal/domain/dto"
	"github.com/ironclub/gym-server/internal/domain/entity"
	"github.com/ironclub/gym-server/internal/domain/service"
	"github.com/ironclub/gym-server/pkg/logger/types"
)

type StoreHandler struct {
	logger   *types.Logger
	products *service.ProductService
}

func NewStoreHandler(logger *types.Logger, products *service.ProductService) *StoreHandler {
	return &StoreHandler{
		logger:   logger,
		products: products,
	}
}

func (h *StoreHandler) ListProducts(c *gin.Context) {
	products, err := h.products.GetAll(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

type productRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Price       int    `json:"price" binding:"required"`
	ImageURL    string `json:"imageUrl"`
	Stock       int    `json:"stock"`
	Active      *bool  `json:"active"`
}

func (h *StoreHandler) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	product, err := h.products.Create(c.Request.Context(), &entity.Product{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Stock:       req.Stock,
		Active:      req.Active,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *StoreHandler) UpdateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	product, err := h.products.Update(c.Request.Context(), &entity.Product{
		ID:          c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Stock:       req.Stock,
		Active:      req.Active,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *StoreHandler) DeleteProduct(c *gin.Context) {
	if err := h.products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success{Message: "product deleted"})
}

func (h *StoreHandler) GetCart(c *gin.Context) {
	items, err := h.products.GetCart(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		response.FromError(c, err)
		return
	}
	if items == nil {
		items = []dto.CartItem{}
	}
	c.JSON(http.StatusOK, items)
}

// SaveCart replaces the user's cart. Item payloads arrive in several
// historical shapes and are normalized on write.
func (h *StoreHandler) SaveCart(c *gin.Context) {
	var inputs []dto.CartItemInput
	if err := c.ShouldBindJSON(&inputs); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	items, err := h.products.SaveCart(c.Request.Context(), c.GetString(middleware.ContextUserID), inputs)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *StoreHandler) Checkout(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	payment, total, err := h.products.Checkout(c.Request.Context(), userID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	h.logger.Infof("store checkout: user %s total %d", userID, total)
	c.JSON(http.StatusOK, gin.H{
		"paymentId": payment.ID,
		"total":     total,
	})
}
