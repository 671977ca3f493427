package router

import (
	"bebit-api/core/constants"
	"bebit-api/core/middleware"
	"bebit-api/modules/invitation/controller"

	"github.com/labstack/echo/v4"
)

type InvitationRouter struct {
	controller *controller.InvitationController
}

func NewInvitationRouter(controller *controller.InvitationController) *InvitationRouter {
	return &InvitationRouter{controller: controller}
}

func (r *InvitationRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	invitations := g.Group("/invitations")
	invitations.Use(mw.AuthMiddleware())

	invitations.GET("", r.controller.ListInvitations)
	invitations.POST("", r.controller.CreateInvitation, mw.RequireRole(constants.RoleClub))
	invitations.PATCH("/:id", r.controller.UpdateStatus)
}
