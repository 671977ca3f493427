package router

import (
	"bebit-api/core/middleware"
	"bebit-api/modules/feedback/controller"

	"github.com/labstack/echo/v4"
)

type FeedbackRouter struct {
	controller *controller.FeedbackController
}

func NewFeedbackRouter(controller *controller.FeedbackController) *FeedbackRouter {
	return &FeedbackRouter{controller: controller}
}

func (r *FeedbackRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	feedback := g.Group("/feedback")

	feedback.GET("", r.controller.ListFeedback)
	feedback.POST("", r.controller.CreateFeedback, mw.AuthMiddleware())
	feedback.POST("/:id/reply", r.controller.Reply, mw.AuthMiddleware())
}
