package router

import (
	"bebit-api/core/middleware"
	"bebit-api/modules/user/controller"

	"github.com/labstack/echo/v4"
)

type UserRouter struct {
	controller *controller.UserController
}

func NewUserRouter(controller *controller.UserController) *UserRouter {
	return &UserRouter{controller: controller}
}

func (r *UserRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	users := g.Group("/users")

	users.GET("/:id", r.controller.GetUser)
	users.PATCH("/:id", r.controller.UpdateUser, mw.AuthMiddleware())
}
