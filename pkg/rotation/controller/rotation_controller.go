package controller

import "github.com/labstack/echo/v4"

type RotationController interface {
	History(c echo.Context) error
	Charts(c echo.Context) error
	ListPlans(c echo.Context) error
	GetPlan(c echo.Context) error
	CreatePlan(c echo.Context) error
	UpdatePlan(c echo.Context) error
	DeletePlan(c echo.Context) error
}
