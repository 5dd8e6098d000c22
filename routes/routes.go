package routes

import (
	"time"

	"tutorsched/config"
	"tutorsched/handlers"
	"tutorsched/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterMeetingRoutes registers the tutor meeting endpoints.
func RegisterMeetingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/meeting")
	{
		api.Use(middleware.JWTAuthTutorMiddleware())
		api.POST("/add-meeting", hb.CreateMeetingHandler)
		api.GET("/get-meetings", hb.GetMeetingsHandler)
		api.GET("/get-uo-meetings", hb.GetUpcomingMeetingsHandler)
		api.GET("/get-p-meetings", hb.GetPastMeetingsHandler)
		api.PUT("/update-meeting", hb.UpdateMeetingHandler)
		api.DELETE("/delete-meeting", hb.DeleteMeetingHandler)
		api.DELETE("/delete-recurring-meetings", hb.DeleteRecurringMeetingsHandler)
		api.GET("/calendar.ics", hb.CalendarHandler)
	}
}

// RegisterOpsRoutes registers health and metrics endpoints.
func RegisterOpsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	if hb.HealthHandler != nil {
		r.GET("/health", hb.HealthHandler)
	}
	if hb.MetricsHandler != nil {
		r.GET("/metrics", hb.MetricsHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppConfig.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterMeetingRoutes(r, hb)
	RegisterOpsRoutes(r, hb)
}
