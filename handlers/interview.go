package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hireflow/models"
	"hireflow/services/interview"
	"hireflow/utils"
)

// InterviewHandler exposes the scheduling service over HTTP.
type InterviewHandler struct {
	Svc    interview.SchedulingService
	Logger *zap.Logger
}

func NewInterviewHandler(svc interview.SchedulingService, logger *zap.Logger) *InterviewHandler {
	return &InterviewHandler{Svc: svc, Logger: logger}
}

// actorID returns the pre-authenticated caller identity. Authentication
// itself happens upstream of this service.
func actorID(c *gin.Context) string {
	if actor := c.GetHeader("X-Actor-ID"); actor != "" {
		return actor
	}
	return "system"
}

// respondError maps a service error onto its HTTP status; anything else is
// genericized to a 500.
func (h *InterviewHandler) respondError(c *gin.Context, err error) {
	if svcErr, ok := interview.AsServiceError(err); ok {
		var fields interface{}
		if len(svcErr.Fields) > 0 {
			fields = svcErr.Fields
		}
		utils.JSONError(c, svcErr.Status, svcErr.Code, svcErr.Message, fields)
		return
	}
	h.Logger.Error("unhandled service error", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, interview.CodeInternal, "an unexpected error occurred", nil)
}

// CreateInterviewHandler handles POST /api/interviews.
func (h *InterviewHandler) CreateInterviewHandler(c *gin.Context) {
	var input models.InterviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, interview.CodeValidation, "invalid request body", nil)
		return
	}

	view, err := h.Svc.Create(c.Request.Context(), input, actorID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"interview": view})
}

// GetInterviewHandler handles GET /api/interviews/:id.
func (h *InterviewHandler) GetInterviewHandler(c *gin.Context) {
	view, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"interview": view})
}

// ListInterviewsHandler handles GET /api/interviews.
func (h *InterviewHandler) ListInterviewsHandler(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	query := interview.ListQuery{
		Status:      c.Query("status"),
		Type:        c.Query("type"),
		CandidateID: c.Query("candidateId"),
		JobID:       c.Query("jobId"),
		DateFrom:    c.Query("dateFrom"),
		DateTo:      c.Query("dateTo"),
		Search:      c.Query("q"),
		Page:        page,
		Limit:       limit,
	}

	result, err := h.Svc.List(c.Request.Context(), query)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpdateInterviewHandler handles PATCH /api/interviews/:id.
func (h *InterviewHandler) UpdateInterviewHandler(c *gin.Context) {
	var patch models.InterviewPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, interview.CodeValidation, "invalid request body", nil)
		return
	}

	view, err := h.Svc.Update(c.Request.Context(), c.Param("id"), patch, actorID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"interview": view})
}

// DeleteInterviewHandler handles DELETE /api/interviews/:id (soft delete).
func (h *InterviewHandler) DeleteInterviewHandler(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id"), actorID(c)); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "interview deleted"})
}

// DailyStatsHandler handles GET /api/interviews/stats/daily?date=YYYY-MM-DD.
func (h *InterviewHandler) DailyStatsHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, interview.CodeValidation, "date query parameter is required", nil)
		return
	}

	stats, err := h.Svc.StatsForDate(c.Request.Context(), date)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
