package handlers

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ironclub/gym-server/internal/adapters/controller/http/middleware"
	"github.com/ironclub/gym-server/internal/adapters/controller/http/response"
	"github.com/ironclub/gym-server/internal/adapters/feed"
	"github.com/ironclub/gym-server/internal/domain/common/errorz"
	"github.com/ironclub/gym-server/internal/domain/entity"
	"github.com/ironclub/gym-server/internal/domain/service"
	"github.com/ironclub/gym-server/internal/domain/utils/dates"
	"github.com/ironclub/gym-server/internal/domain/utils/location"
	"github.com/ironclub/gym-server/pkg/logger/types"
	qr "github.com/ironclub/gym-server/pkg/qrcode"
)

type AttendanceHandler struct {
	logger     *types.Logger
	attendance *service.AttendanceService
	users      *service.UserService
	live       *feed.Feed
	logoPath   string
}

func NewAttendanceHandler(logger *types.Logger, attendance *service.AttendanceService, users *service.UserService, live *feed.Feed, logoPath string) *AttendanceHandler {
	return &AttendanceHandler{
		logger:     logger,
		attendance: attendance,
		users:      users,
		live:       live,
		logoPath:   logoPath,
	}
}

type markRequest struct {
	Date   string `json:"date" binding:"required"`
	UserID string `json:"userId" binding:"required"`
	Name   string `json:"name"`
	Time   string `json:"time"`
}

// Mark registers a presence mark from the staff report. Marking the same
// member twice on one date updates the existing record.
func (h *AttendanceHandler) Mark(c *gin.Context) {
	var req markRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	clock := req.Time
	if clock == "" {
		clock = location.Now().Format(dates.ClockLayout)
	}
	record, err := h.attendance.MarkPresent(c.Request.Context(), req.Date, req.UserID, req.Name, clock)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

type checkInRequest struct {
	Payload string `json:"payload" binding:"required"`
}

// CheckIn marks attendance from a scanned member code at the front desk.
func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	var req checkInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID, err := qr.ParseCheckInPayload(req.Payload)
	if err != nil {
		response.FromError(c, err)
		return
	}

	ctx := c.Request.Context()
	user, err := h.users.Get(ctx, userID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	now := location.Now()
	if service.MembershipState(user, now) == service.MembershipExpired {
		response.FromError(c, errorz.ErrMembershipExpired)
		return
	}

	record, err := h.attendance.MarkPresent(
		ctx,
		dates.Today(now),
		user.ID,
		user.Name,
		now.Format(dates.ClockLayout),
	)
	if err != nil {
		response.FromError(c, err)
		return
	}
	h.logger.Infof("check-in: %s on %s", user.ID, record.Date)
	c.JSON(http.StatusOK, record)
}

// MyCode renders the signed-in member's check-in QR code.
func (h *AttendanceHandler) MyCode(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	data, err := qr.GenerateCheckIn(userID, h.logoPath)
	if err != nil {
		h.logger.Errorf("failed to render check-in code for %s: %v", userID, err)
		response.FromError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", data)
}

// List returns the attendance sheet for one date.
func (h *AttendanceHandler) List(c *gin.Context) {
	records, err := h.attendance.ListForDate(c.Request.Context(), c.Query("date"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// Export downloads the attendance sheet for one date as a spreadsheet.
func (h *AttendanceHandler) Export(c *gin.Context) {
	date := c.Query("date")
	buf, err := h.attendance.ExportXLSX(c.Request.Context(), date)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="attendance-`+date+`.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// Stream pushes live attendance marks for a set of dates over SSE. The
// dates query can change between report months; each connection owns a
// reconciled subscription set that is torn down on disconnect.
func (h *AttendanceHandler) Stream(c *gin.Context) {
	var dateKeys []string
	for _, d := range strings.Split(c.Query("dates"), ",") {
		if d = strings.TrimSpace(d); d != "" {
			dateKeys = append(dateKeys, d)
		}
	}
	if len(dateKeys) == 0 {
		response.BadRequest(c, "dates query is required")
		return
	}

	marks := make(chan entity.Attendance, 16)
	reconciler := feed.NewReconciler(func(key string) context.CancelFunc {
		return h.live.Subscribe(key, func(record entity.Attendance) {
			select {
			case marks <- record:
			default:
				// A stalled client drops marks rather than blocking the feed.
			}
		})
	})
	reconciler.Reconcile(dateKeys)
	defer reconciler.Close()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case record := <-marks:
			c.SSEvent("mark", record)
			return true
		}
	})
}
