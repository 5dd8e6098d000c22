// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Meeting endpoints
	CreateMeetingHandler           gin.HandlerFunc
	GetMeetingsHandler             gin.HandlerFunc
	GetUpcomingMeetingsHandler     gin.HandlerFunc
	GetPastMeetingsHandler         gin.HandlerFunc
	UpdateMeetingHandler           gin.HandlerFunc
	DeleteMeetingHandler           gin.HandlerFunc
	DeleteRecurringMeetingsHandler gin.HandlerFunc
	CalendarHandler                gin.HandlerFunc

	// Operational endpoints
	HealthHandler  gin.HandlerFunc
	MetricsHandler gin.HandlerFunc
}

// NewMeetingBundle fills the meeting endpoints of a bundle from h.
func NewMeetingBundle(h *MeetingHandler) *HandlerBundle {
	return &HandlerBundle{
		CreateMeetingHandler:           h.CreateMeetingHandler,
		GetMeetingsHandler:             h.GetMeetingsHandler,
		GetUpcomingMeetingsHandler:     h.GetUpcomingMeetingsHandler,
		GetPastMeetingsHandler:         h.GetPastMeetingsHandler,
		UpdateMeetingHandler:           h.UpdateMeetingHandler,
		DeleteMeetingHandler:           h.DeleteMeetingHandler,
		DeleteRecurringMeetingsHandler: h.DeleteRecurringMeetingsHandler,
		CalendarHandler:                h.CalendarHandler,
	}
}
