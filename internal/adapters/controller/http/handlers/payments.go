package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ironclub/gym-server/internal/adapters/controller/http/middleware"
	"github.com/ironclub/gym-server/internal/adapters/controller/http/response"
	"github.com/ironclub/gym-server/internal/domain/entity"
	"github.com/ironclub/gym-server/internal/domain/service"
	"github.com/ironclub/gym-server/internal/domain/utils/location"
	"github.com/ironclub/gym-server/pkg/logger/types"
)

type PaymentHandler struct {
	logger   *types.Logger
	payments *service.PaymentService
}

func NewPaymentHandler(logger *types.Logger, payments *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		logger:   logger,
		payments: payments,
	}
}

type registerPaymentRequest struct {
	UserID  string `json:"userId" binding:"required"`
	Amount  int    `json:"amount" binding:"required"`
	Months  int    `json:"months" binding:"required"`
	Method  string `json:"method"`
	Concept string `json:"concept"`
}

// Register records a membership payment and extends the member's
// paid-through date.
func (h *PaymentHandler) Register(c *gin.Context) {
	var req registerPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if req.Months < 1 {
		response.BadRequest(c, "months must be at least 1")
		return
	}
	method := req.Method
	if method == "" {
		method = entity.PaymentMethodCash
	}

	payment, err := h.payments.Register(c.Request.Context(), req.UserID, req.Amount, req.Months, method, req.Concept, location.Now())
	if err != nil {
		response.FromError(c, err)
		return
	}
	h.logger.Infof("payment registered: user %s months %d", req.UserID, req.Months)
	c.JSON(http.StatusCreated, payment)
}

func (h *PaymentHandler) ListAll(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	payments, err := h.payments.GetAll(c.Request.Context(), limit, offset)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) ListMine(c *gin.Context) {
	payments, err := h.payments.GetByUser(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}
