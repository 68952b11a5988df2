package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hireflow/handlers"
)

// RegisterInterviewRoutes registers all endpoints for interview scheduling.
func RegisterInterviewRoutes(r *gin.Engine, ih *handlers.InterviewHandler) {
	api := r.Group("/api/interviews")
	{
		api.POST("", ih.CreateInterviewHandler)
		api.GET("", ih.ListInterviewsHandler)
		api.GET("/stats/daily", ih.DailyStatsHandler)
		api.GET("/:id", ih.GetInterviewHandler)
		api.PATCH("/:id", ih.UpdateInterviewHandler)
		api.DELETE("/:id", ih.DeleteInterviewHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Hireflow"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, ih *handlers.InterviewHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Actor-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterInterviewRoutes(r, ih)
}
