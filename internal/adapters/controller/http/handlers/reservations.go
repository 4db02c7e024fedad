package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ironclub/gym-server/internal/adapters/controller/http/middleware"
	"github.com/ironclub/gym-server/internal/adapters/controller/http/response"
	"github.com/ironclub/gym-server/internal/domain/service"
	"github.com/ironclub/gym-server/internal/domain/utils/location"
	"github.com/ironclub/gym-server/pkg/logger/types"
)

type ReservationHandler struct {
	logger       *types.Logger
	reservations *service.ReservationService
}

func NewReservationHandler(logger *types.Logger, reservations *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{
		logger:       logger,
		reservations: reservations,
	}
}

type bookRequest struct {
	BlockID string `json:"blockId" binding:"required"`
	Date    string `json:"date" binding:"required"`
}

func (h *ReservationHandler) Book(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	reservation, err := h.reservations.Book(c.Request.Context(), userID, req.BlockID, req.Date, location.Now())
	if err != nil {
		response.FromError(c, err)
		return
	}
	h.logger.Infof("reservation: user %s block %s date %s", userID, req.BlockID, req.Date)
	c.JSON(http.StatusCreated, reservation)
}

func (h *ReservationHandler) Cancel(c *gin.Context) {
	if err := h.reservations.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success{Message: "reservation cancelled"})
}

func (h *ReservationHandler) ListMine(c *gin.Context) {
	list, err := h.reservations.ListForUser(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ReservationHandler) ListForDate(c *gin.Context) {
	list, err := h.reservations.ListForDate(c.Request.Context(), c.Query("date"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
