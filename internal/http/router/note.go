package router

import (
	"github.com/gin-gonic/gin"

	"syncnotes.app/api-server/internal/http/handler"
)

func NoteRouter(rg *gin.RouterGroup, h *handler.NoteHandler) {
	rg.GET("/:noteID", h.Get)
	rg.PUT("/:noteID", h.Update)
	rg.DELETE("/:noteID", h.Delete)
	rg.PUT("/:noteID/sharing", h.SetSharing)
	rg.GET("/:noteID/history", h.History)
}
