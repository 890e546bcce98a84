package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"syncnotes.app/api-server/internal/http/handler"
	"syncnotes.app/api-server/internal/http/middleware"
	"syncnotes.app/api-server/internal/service"
)

type RouterConfig struct {
	CookieName   string
	CookieSecure bool
	SessionTTL   time.Duration
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authService := services.Auth()
	requireAuth := middleware.RequireAuth(authService, cfg.CookieName, cfg.CookieSecure)

	authHandler := handler.NewAuthHandler(authService, cfg.CookieName, cfg.CookieSecure, cfg.SessionTTL)
	AuthRouter(router.Group("/auth"), authHandler, requireAuth)

	v1 := router.Group("/api/v1")
	v1.Use(requireAuth)
	{
		orgHandler := handler.NewOrganizationHandler(services.Organizations())
		memberHandler := handler.NewMemberHandler(services.Members())
		noteHandler := handler.NewNoteHandler(services.Notes())
		invitationHandler := handler.NewInvitationHandler(services.Invitations())
		activityHandler := handler.NewActivityHandler(services.Activity())

		OrganizationRouter(v1.Group("/organizations"), orgHandler, memberHandler, noteHandler, invitationHandler, activityHandler)
		NoteRouter(v1.Group("/notes"), noteHandler)
		InvitationRouter(v1.Group("/invitations"), invitationHandler)
	}
}
