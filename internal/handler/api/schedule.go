package api

import (
	"errors"
	"net/http"
	"strconv"

	"portaria/internal/domain/schedule"
	reqdto "portaria/internal/handler/dto/request"
	resdto "portaria/internal/handler/dto/response"
	"portaria/internal/handler/middleware"
	"portaria/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ScheduleHandler struct {
	scheduleUseCase usecase.ScheduleUseCase
}

func NewScheduleHandler(scheduleUseCase usecase.ScheduleUseCase) *ScheduleHandler {
	return &ScheduleHandler{scheduleUseCase: scheduleUseCase}
}

// @Summary Create schedule
// @Description Register a new access request; always succeeds locally even when the database is down
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateScheduleRequest true "Schedule"
// @Success 201 {object} resdto.ScheduleResponse
// @Failure 400 {object} map[string]string
// @Router /schedules [post]
func (h *ScheduleHandler) Create(c *gin.Context) {
	var req reqdto.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	payload, err := req.ToPayload()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid payload for kind " + req.Kind,
		})
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	result, err := h.scheduleUseCase.Create(c.Request.Context(), usecase.CreateScheduleParams{
		RequestedBy:     userID,
		RequestedByName: req.GetDisplayName(),
		EmailHint:       req.Email,
		Payload:         payload,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromWriteResult(result))
}

// @Summary My schedules
// @Description List the authenticated requester's schedules, newest first
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ScheduleResponse
// @Router /schedules [get]
func (h *ScheduleHandler) GetMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromScheduleRMs(h.scheduleUseCase.ByRequester(userID)))
}

// @Summary Pending schedules
// @Description List schedules awaiting review, newest first
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ScheduleResponse
// @Router /schedules/pending [get]
func (h *ScheduleHandler) GetPending(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromScheduleRMs(h.scheduleUseCase.Pending()))
}

// @Summary Approved schedules
// @Description List approved schedules for the gate dashboard, including already checked-in records
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ScheduleResponse
// @Router /schedules/approved [get]
func (h *ScheduleHandler) GetApproved(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromScheduleRMs(h.scheduleUseCase.Approved()))
}

// @Summary Schedule by ID
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Schedule ID"
// @Success 200 {object} resdto.ScheduleResponse
// @Failure 404 {object} map[string]string
// @Router /schedules/{id} [get]
func (h *ScheduleHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	rm, err := h.scheduleUseCase.Get(id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromScheduleRM(rm))
}

// @Summary Review schedule
// @Description Approve or reject a pending schedule; rejection requires a note
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Schedule ID"
// @Param request body reqdto.DecisionRequest true "Decision"
// @Success 200 {object} resdto.ScheduleResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /schedules/{id}/status [patch]
func (h *ScheduleHandler) UpdateStatus(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req reqdto.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	reviewer, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	decision, err := schedule.NewStatus(req.Decision)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Decision must be approved or rejected",
		})
		return
	}

	result, err := h.scheduleUseCase.UpdateStatus(c.Request.Context(), id, reviewer, decision, req.GetNote())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromWriteResult(result))
}

// @Summary Record check-in
// @Description Record the gate outcome for an approved schedule; one outcome per schedule
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Schedule ID"
// @Param request body reqdto.CheckInRequest true "Outcome"
// @Success 200 {object} resdto.ScheduleResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /schedules/{id}/check-in [patch]
func (h *ScheduleHandler) CheckIn(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req reqdto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	outcome, err := schedule.NewCheckInStatus(req.Outcome)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Outcome must be authorized, denied or no_show",
		})
		return
	}

	result, err := h.scheduleUseCase.UpdateCheckIn(c.Request.Context(), id, outcome)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromWriteResult(result))
}

// @Summary Edit schedule
// @Description Update the payload or requester display name of an own pending schedule
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Schedule ID"
// @Param request body reqdto.EditScheduleRequest true "Changes"
// @Success 200 {object} resdto.ScheduleResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /schedules/{id} [patch]
func (h *ScheduleHandler) Edit(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req reqdto.EditScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	current, err := h.scheduleUseCase.Get(id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	kind, err := schedule.NewKind(current.Kind)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	payload, err := req.ToPayload(kind)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid payload for kind " + current.Kind,
		})
		return
	}

	result, err := h.scheduleUseCase.Edit(c.Request.Context(), id, userID, payload, req.GetDisplayName())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromWriteResult(result))
}

// @Summary Cancel schedule
// @Description Cancel an own pending schedule
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Schedule ID"
// @Success 200 {object} resdto.ScheduleResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /schedules/{id}/cancel [post]
func (h *ScheduleHandler) Cancel(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	result, err := h.scheduleUseCase.Cancel(c.Request.Context(), id, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromWriteResult(result))
}

// @Summary Purge resolved schedules
// @Description Remove resolved schedules older than the retention window
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param days query int false "Retention window in days"
// @Success 200 {object} map[string]int
// @Router /schedules/purge [delete]
func (h *ScheduleHandler) Purge(c *gin.Context) {
	days := usecase.DefaultRetentionDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "days must be a positive integer",
			})
			return
		}
		days = parsed
	}

	removed, err := h.scheduleUseCase.PurgeOldResolved(c.Request.Context(), days)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"removed": removed,
	})
}

func (h *ScheduleHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid schedule ID",
		})
		return uuid.Nil, false
	}
	return id, true
}

func (h *ScheduleHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrScheduleNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Schedule not found",
		})
	case errors.Is(err, usecase.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Schedule belongs to another requester",
		})
	case errors.Is(err, usecase.ErrInvalidDecision):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Decision must be approved or rejected",
		})
	case errors.Is(err, usecase.ErrValidationFailed):
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
