package router

import (
	"github.com/gin-gonic/gin"

	"syncnotes.app/api-server/internal/http/handler"
)

func OrganizationRouter(
	rg *gin.RouterGroup,
	orgs *handler.OrganizationHandler,
	members *handler.MemberHandler,
	notes *handler.NoteHandler,
	invitations *handler.InvitationHandler,
	activity *handler.ActivityHandler,
) {
	rg.POST("", orgs.Create)
	rg.GET("", orgs.List)

	org := rg.Group("/:orgID")
	{
		org.GET("", orgs.Get)
		org.PATCH("", orgs.Update)
		org.DELETE("", orgs.Delete)

		org.GET("/members", members.List)
		org.PATCH("/members/:memberID", members.UpdateRole)
		org.DELETE("/members/:memberID", members.Remove)

		org.POST("/notes", notes.Create)
		org.GET("/notes", notes.List)

		org.POST("/invitations", invitations.Create)
		org.GET("/invitations", invitations.ListForOrganization)
		org.DELETE("/invitations/:invitationID", invitations.Revoke)

		org.GET("/activity", activity.List)
	}
}
