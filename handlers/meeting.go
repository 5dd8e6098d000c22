package handlers

import (
	"context"
	"errors"
	"net/http"

	"tutorsched/middleware"
	"tutorsched/models"
	"tutorsched/services/meeting"
	"tutorsched/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MeetingHandler exposes the meeting scheduling endpoints.
type MeetingHandler struct {
	Service meeting.MeetingService
	Logger  *zap.Logger
}

func NewMeetingHandler(svc meeting.MeetingService, logger *zap.Logger) *MeetingHandler {
	return &MeetingHandler{Service: svc, Logger: logger}
}

func tutorIDFrom(c *gin.Context) (string, bool) {
	tutorID := c.GetString(middleware.TutorIDKey)
	if tutorID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return "", false
	}
	return tutorID, true
}

// writeServiceError maps scheduling errors to HTTP statuses. Anything unclassified is a 500
// and its details stay in the log.
func (h *MeetingHandler) writeServiceError(c *gin.Context, op string, err error) {
	var (
		vErr  *meeting.ValidationError
		nErr  *meeting.NotFoundError
		cErr  *meeting.MeetingConflictError
		rErr  *meeting.InvalidRecurrenceRuleError
		tErr  *meeting.InvalidTimeInputError
		lkErr *meeting.LockTimeoutError
	)
	switch {
	case errors.As(err, &vErr):
		utils.JSONError(c, http.StatusBadRequest, meeting.CodeValidation, vErr.Message)
	case errors.As(err, &rErr):
		utils.JSONError(c, http.StatusBadRequest, meeting.CodeInvalidRecurrence, rErr.Error())
	case errors.As(err, &tErr):
		utils.JSONError(c, http.StatusBadRequest, meeting.CodeInvalidTime, tErr.Error())
	case errors.As(err, &nErr):
		utils.JSONError(c, http.StatusNotFound, meeting.CodeNotFound, nErr.Error())
	case errors.As(err, &cErr):
		utils.JSONError(c, http.StatusConflict, meeting.CodeConflict, cErr.Error())
	case errors.As(err, &lkErr):
		utils.JSONError(c, http.StatusServiceUnavailable, meeting.CodeLockTimeout, lkErr.Error())
	default:
		h.Logger.Error("meeting operation failed", zap.String("op", op), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal Server Error")
	}
}

func (h *MeetingHandler) CreateMeetingHandler(c *gin.Context) {
	tutorID, ok := tutorIDFrom(c)
	if !ok {
		return
	}

	var req models.MeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, meeting.CodeValidation, "Invalid request payload")
		return
	}

	created, err := h.Service.CreateMeeting(c.Request.Context(), tutorID, req)
	if err != nil {
		h.writeServiceError(c, "create", err)
		return
	}

	if req.Recurring != models.RecurrenceNone {
		c.JSON(http.StatusCreated, gin.H{"message": "Recurring meetings created", "meetings": created})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Meeting created successfully", "meeting": created[0]})
}

func (h *MeetingHandler) GetMeetingsHandler(c *gin.Context) {
	h.list(c, "list", h.Service.ListMeetings)
}

func (h *MeetingHandler) GetUpcomingMeetingsHandler(c *gin.Context) {
	h.list(c, "listUpcoming", h.Service.ListUpcoming)
}

func (h *MeetingHandler) GetPastMeetingsHandler(c *gin.Context) {
	h.list(c, "listPast", h.Service.ListPast)
}

func (h *MeetingHandler) list(c *gin.Context, op string, fetch func(ctx context.Context, tutorID string) ([]models.Meeting, error)) {
	tutorID, ok := tutorIDFrom(c)
	if !ok {
		return
	}
	meetings, err := fetch(c.Request.Context(), tutorID)
	if err != nil {
		h.writeServiceError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, meetings)
}

func (h *MeetingHandler) UpdateMeetingHandler(c *gin.Context) {
	tutorID, ok := tutorIDFrom(c)
	if !ok {
		return
	}
	id := c.Query("id")
	if id == "" {
		utils.JSONError(c, http.StatusBadRequest, meeting.CodeValidation, "Meeting ID is required")
		return
	}

	var patch models.MeetingPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, meeting.CodeValidation, "Invalid request payload")
		return
	}

	updated, err := h.Service.UpdateMeeting(c.Request.Context(), tutorID, id, patch)
	if err != nil {
		h.writeServiceError(c, "update", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meeting updated successfully", "meeting": updated})
}

func (h *MeetingHandler) DeleteMeetingHandler(c *gin.Context) {
	tutorID, ok := tutorIDFrom(c)
	if !ok {
		return
	}
	var body struct {
		ID string `json:"_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.ID == "" {
		utils.JSONError(c, http.StatusBadRequest, meeting.CodeValidation, "Meeting ID is required")
		return
	}

	if err := h.Service.DeleteMeeting(c.Request.Context(), tutorID, body.ID); err != nil {
		h.writeServiceError(c, "delete", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meeting deleted successfully"})
}

func (h *MeetingHandler) DeleteRecurringMeetingsHandler(c *gin.Context) {
	tutorID, ok := tutorIDFrom(c)
	if !ok {
		return
	}
	var body struct {
		RecurringID string `json:"meetingrecurringid"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.RecurringID == "" {
		utils.JSONError(c, http.StatusBadRequest, meeting.CodeValidation, "Recurring Meeting ID is required")
		return
	}

	res, err := h.Service.DeleteSeries(c.Request.Context(), tutorID, body.RecurringID)
	if err != nil {
		h.writeServiceError(c, "deleteSeries", err)
		return
	}
	msg := "Upcoming recurring meetings deleted successfully"
	if res.Deleted == 0 {
		msg = "No upcoming recurring meetings to delete"
	}
	c.JSON(http.StatusOK, gin.H{"message": msg, "result": res})
}

func (h *MeetingHandler) CalendarHandler(c *gin.Context) {
	tutorID, ok := tutorIDFrom(c)
	if !ok {
		return
	}
	body, err := h.Service.ExportCalendar(c.Request.Context(), tutorID)
	if err != nil {
		h.writeServiceError(c, "calendar", err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="meetings.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(body))
}
