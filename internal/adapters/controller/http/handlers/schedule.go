package handlers

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ironclub/gym-server/internal/adapters/controller/http/response"
	"github.com/ironclub/gym-server/internal/domain/dto"
	"github.com/ironclub/gym-server/internal/domain/entity"
	"github.com/ironclub/gym-server/internal/domain/service"
	"github.com/ironclub/gym-server/internal/domain/utils/calendar"
	"github.com/ironclub/gym-server/internal/domain/utils/validator"
	"github.com/ironclub/gym-server/pkg/logger/types"
)

type ScheduleHandler struct {
	logger   *types.Logger
	schedule *service.ScheduleService
}

func NewScheduleHandler(logger *types.Logger, schedule *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{
		logger:   logger,
		schedule: schedule,
	}
}

// Week returns the full weekly calendar: active weekdays plus the blocks
// of each day, colored and sorted.
func (h *ScheduleHandler) Week(c *gin.Context) {
	view, err := h.weekView(c)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// WeekICS exports the weekly calendar as recurring iCalendar events.
func (h *ScheduleHandler) WeekICS(c *gin.Context) {
	view, err := h.weekView(c)
	if err != nil {
		response.FromError(c, err)
		return
	}

	var blocks []dto.CalendarBlock
	for _, day := range view.ActiveWeekdays {
		blocks = append(blocks, view.Blocks[day]...)
	}
	data, err := calendar.ExportWeekToICS(blocks)
	if err != nil {
		h.logger.Errorf("failed to export schedule: %v", err)
		response.FromError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="schedule.ics"`)
	c.Data(http.StatusOK, "text/calendar", data)
}

func (h *ScheduleHandler) weekView(c *gin.Context) (*dto.WeekView, error) {
	ctx := c.Request.Context()
	blocks, err := h.schedule.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	active := service.ActiveWeekdays(blocks)
	days := make([]int, 0, len(active))
	for day := range active {
		days = append(days, day)
	}
	sort.Ints(days)

	view := dto.WeekView{
		ActiveWeekdays: days,
		Blocks:         make(map[int][]dto.CalendarBlock, len(days)),
	}
	for _, day := range days {
		for _, block := range service.BlocksForWeekday(blocks, day) {
			view.Blocks[day] = append(view.Blocks[day], dto.NewCalendarBlockFromEntity(block, service.ColorFor(block.ColorLookupKey())))
		}
	}
	return &view, nil
}

// Day returns the ordered blocks for one weekday.
func (h *ScheduleHandler) Day(c *gin.Context) {
	day, err := strconv.Atoi(c.Query("day"))
	if err != nil || day < 0 || day > 6 {
		response.BadRequest(c, "day must be 0-6")
		return
	}

	blocks, err := h.schedule.GetAll(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	views := make([]dto.CalendarBlock, 0)
	for _, block := range service.BlocksForWeekday(blocks, day) {
		views = append(views, dto.NewCalendarBlockFromEntity(block, service.ColorFor(block.ColorLookupKey())))
	}
	c.JSON(http.StatusOK, views)
}

type blockRequest struct {
	DayOfWeek     *int   `json:"dayOfWeek"`
	StartTime     string `json:"startTime" binding:"required"`
	EndTime       string `json:"endTime" binding:"required"`
	Type          string `json:"type" binding:"required"`
	ColorKey      string `json:"colorKey"`
	ProfessorID   string `json:"professorId"`
	ProfessorName string `json:"professorName"`
	MinCapacity   int    `json:"minCapacity"`
	MaxCapacity   int    `json:"maxCapacity"`
	Active        *bool  `json:"active"`
	Permanent     *bool  `json:"permanent"`
}

func (r *blockRequest) toEntity() *entity.ClassBlock {
	return &entity.ClassBlock{
		DayOfWeek:     r.DayOfWeek,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		Type:          r.Type,
		ColorKey:      r.ColorKey,
		ProfessorID:   r.ProfessorID,
		ProfessorName: r.ProfessorName,
		MinCapacity:   r.MinCapacity,
		MaxCapacity:   r.MaxCapacity,
		Active:        r.Active,
		Permanent:     r.Permanent,
	}
}

func (h *ScheduleHandler) Create(c *gin.Context) {
	var req blockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if !validator.Clock(req.StartTime) || !validator.Clock(req.EndTime) {
		response.BadRequest(c, "startTime and endTime must be HH:MM")
		return
	}

	block, err := h.schedule.Create(c.Request.Context(), req.toEntity())
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewCalendarBlockFromEntity(*block, service.ColorFor(block.ColorLookupKey())))
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	var req blockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if !validator.Clock(req.StartTime) || !validator.Clock(req.EndTime) {
		response.BadRequest(c, "startTime and endTime must be HH:MM")
		return
	}

	block := req.toEntity()
	block.ID = c.Param("id")
	updated, err := h.schedule.Update(c.Request.Context(), block)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCalendarBlockFromEntity(*updated, service.ColorFor(updated.ColorLookupKey())))
}

func (h *ScheduleHandler) Delete(c *gin.Context) {
	if err := h.schedule.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success{Message: "block deleted"})
}
