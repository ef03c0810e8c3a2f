package router

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	cropctrl "farmtrack/pkg/crop/controller"
	"farmtrack/pkg/logger"
	"farmtrack/pkg/middleware"
	rotationctrl "farmtrack/pkg/rotation/controller"
)

func New(
	e *echo.Echo,
	log *logger.Logger,
	cropCtrl cropctrl.CropController,
	rotationCtrl rotationctrl.RotationController,
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(log))

	e.GET("/health", healthCtrl.Health)

	crops := e.Group("/crops")
	crops.GET("", cropCtrl.List)
	crops.POST("", cropCtrl.Create)
	crops.GET("/:id", cropCtrl.Get)
	crops.PATCH("/:id", cropCtrl.Update)
	crops.PUT("/:id", cropCtrl.Update)
	crops.DELETE("/:id", cropCtrl.Delete)

	g := e.Group("/rotation")
	g.GET("/history", rotationCtrl.History)
	g.GET("/charts", rotationCtrl.Charts)
	g.GET("/plans", rotationCtrl.ListPlans)
	g.POST("/plans", rotationCtrl.CreatePlan)
	g.GET("/plans/:id", rotationCtrl.GetPlan)
	g.PUT("/plans/:id", rotationCtrl.UpdatePlan)
	g.DELETE("/plans/:id", rotationCtrl.DeletePlan)
	return e
}
