package router

import (
	"github.com/gin-gonic/gin"

	"syncnotes.app/api-server/internal/http/handler"
)

func InvitationRouter(rg *gin.RouterGroup, h *handler.InvitationHandler) {
	rg.GET("", h.ListMine)
	rg.POST("/:invitationID/accept", h.Accept)
	rg.POST("/:invitationID/reject", h.Reject)
}
