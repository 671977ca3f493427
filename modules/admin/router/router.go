package router

import (
	"bebit-api/core/constants"
	"bebit-api/core/middleware"
	"bebit-api/modules/admin/controller"

	"github.com/labstack/echo/v4"
)

type AdminRouter struct {
	controller *controller.AdminController
}

func NewAdminRouter(controller *controller.AdminController) *AdminRouter {
	return &AdminRouter{controller: controller}
}

func (r *AdminRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	admin := g.Group("/admin", mw.AuthMiddleware(), mw.RequireRole(constants.RoleAdmin))

	admin.GET("/stats", r.controller.Stats)
	admin.GET("/events/pending", r.controller.PendingEvents)
	admin.PATCH("/events/:id/approve", r.controller.ApproveEvent)
	admin.PATCH("/users/:id/verify", r.controller.VerifyUser)
}
