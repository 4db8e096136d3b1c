package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with CORS, the public auth endpoints, and
// the token-protected tracker endpoints.
func (s *Server) NewRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     s.config.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", s.healthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", s.register)
			auth.POST("/login", s.login)
			auth.POST("/refresh", s.refresh)
			auth.GET("/me", s.authMiddleware(), s.me)
			auth.PUT("/password", s.authMiddleware(), s.changePassword)
			auth.DELETE("/account", s.authMiddleware(), s.deleteAccount)
		}

		protected := api.Group("", s.authMiddleware())
		{
			moods := protected.Group("/moods")
			{
				moods.POST("", s.createMood)
				moods.GET("", s.listMoods)
				moods.GET("/range", s.moodsByDateRange)
				moods.GET("/:id", s.getMood)
				moods.DELETE("/:id", s.deleteMood)
			}

			journal := protected.Group("/journal")
			{
				journal.POST("", s.createJournalEntry)
				journal.GET("", s.listJournalEntries)
				journal.GET("/range", s.journalEntriesByDateRange)
				journal.GET("/:id", s.getJournalEntry)
				journal.DELETE("/:id", s.deleteJournalEntry)
			}

			activities := protected.Group("/activities")
			{
				activities.POST("", s.createActivity)
				activities.GET("", s.listActivities)
				activities.GET("/range", s.activitiesByDateRange)
				activities.GET("/:id", s.getActivity)
				activities.DELETE("/:id", s.deleteActivity)
			}

			protected.GET("/dashboard", s.getDashboard)
			protected.POST("/export", s.createExport)
		}
	}

	return r
}
