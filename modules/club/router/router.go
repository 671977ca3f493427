package router

import (
	"bebit-api/core/constants"
	"bebit-api/core/middleware"
	"bebit-api/modules/club/controller"

	"github.com/labstack/echo/v4"
)

type ClubRouter struct {
	controller *controller.ClubController
}

func NewClubRouter(controller *controller.ClubController) *ClubRouter {
	return &ClubRouter{controller: controller}
}

func (r *ClubRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	clubs := g.Group("/clubs")

	clubs.GET("/popular", r.controller.Popular)
	clubs.GET("/:id", r.controller.GetClub)
	clubs.GET("/:id/events", r.controller.ApprovedEvents)
	clubs.POST("", r.controller.CreateProfile, mw.AuthMiddleware(), mw.RequireRole(constants.RoleClub))
	clubs.PATCH("/:id", r.controller.UpdateProfile, mw.AuthMiddleware())
}
