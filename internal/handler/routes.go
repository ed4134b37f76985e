package handler

import (
	"github.com/gin-gonic/gin"

	"event-management-api/internal/middleware"
)

// Routes builds the full API surface. Reads on events and comments are
// public; every mutation goes through the bearer-token middleware, and the
// organizer-only surfaces through the role gate on top of it.
func Routes(h *Handler, rl *middleware.RateLimiter) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.CORS(), middleware.Metrics())

	api := r.Group("/api")

	api.POST("/register", middleware.RateLimit(rl), h.Register)
	api.POST("/login", middleware.RateLimit(rl), h.Login)
	api.POST("/refresh", h.Refresh)

	api.GET("/events", h.ListEvents)
	api.GET("/events/:id", h.GetEvent)
	api.GET("/events/:id/comments", h.ListComments)

	authed := api.Group("", middleware.Auth(h.secret))
	{
		authed.POST("/logout", h.Logout)
		authed.GET("/profile", h.GetProfile)
		authed.PUT("/profile", h.UpdateProfile)

		authed.POST("/events", middleware.RequireOrganizer(), h.CreateEvent)
		authed.PUT("/events/:id", h.UpdateEvent)
		authed.DELETE("/events/:id", h.DeleteEvent)

		authed.POST("/rsvp", h.CreateRSVP)
		authed.GET("/rsvp/:eventId", h.RSVPStatus)
		authed.DELETE("/rsvp/:eventId", h.CancelRSVP)

		authed.POST("/events/:id/comments", h.CreateComment)
		authed.DELETE("/comments/:id", h.DeleteComment)

		org := authed.Group("/organizer", middleware.RequireOrganizer())
		org.GET("/events", h.OrganizerEvents)
		org.GET("/events/:id/rsvps", h.EventRSVPs)
	}

	return r
}
