package router

import (
	"github.com/gin-gonic/gin"

	"syncnotes.app/api-server/internal/http/handler"
)

func AuthRouter(rg *gin.RouterGroup, h *handler.AuthHandler, requireAuth gin.HandlerFunc) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
	rg.POST("/otp/request", h.RequestOTP)
	rg.POST("/otp/verify", h.VerifyOTP)

	rg.POST("/logout", requireAuth, h.Logout)
	rg.GET("/me", requireAuth, h.Me)
}
