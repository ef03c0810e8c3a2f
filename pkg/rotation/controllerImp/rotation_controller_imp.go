package controllerImp

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"farmtrack/pkg/apperr"
	"farmtrack/pkg/rotation/controller"
	"farmtrack/pkg/rotation/service"
	"farmtrack/pkg/rotation/types"
)

type RotationCtrl struct{ svc service.RotationService }

var _ controller.RotationController = (*RotationCtrl)(nil)

func NewRotationCtrl(svc service.RotationService) *RotationCtrl { return &RotationCtrl{svc: svc} }

func (h *RotationCtrl) History(c echo.Context) error {
	farmID, err := farmParam(c)
	if err != nil {
		return c.JSON(apperr.HTTPStatus(err), apperr.Body(err))
	}
	return c.JSON(http.StatusOK, h.svc.History(farmID))
}

func (h *RotationCtrl) Charts(c echo.Context) error {
	farmID, err := farmParam(c)
	if err != nil {
		return c.JSON(apperr.HTTPStatus(err), apperr.Body(err))
	}
	return c.JSON(http.StatusOK, h.svc.Charts(farmID))
}

func (h *RotationCtrl) ListPlans(c echo.Context) error {
	farmID, err := farmParam(c)
	if err != nil {
		return c.JSON(apperr.HTTPStatus(err), apperr.Body(err))
	}
	return c.JSON(http.StatusOK, h.svc.ListPlans(types.PlanQuery{
		SearchTerm: c.QueryParam("search"),
		FarmID:     farmID,
	}))
}

func (h *RotationCtrl) GetPlan(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return c.JSON(apperr.HTTPStatus(err), apperr.Body(err))
	}
	p, err := h.svc.GetPlanByID(id)
	if err != nil {
		return c.JSON(apperr.HTTPStatus(err), apperr.Body(err))
	}
	return c.JSON(http.StatusOK, p)
}

func (h *RotationCtrl) CreatePlan(c echo.Context) error {
	var in types.PlanInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	p, err := h.svc.CreatePlan(in)
	if err != nil {
		return c.JSON(apperr.HTTPStatus(err), apperr.Body(err))
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *RotationCtrl) UpdatePlan(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return c.JSON(apperr.HTTPStatus(err), apperr.Body(err))
	}
	var in types.PlanInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	p, err := h.svc.UpdatePlan(id, in)
	if err != nil {
		return c.JSON(apperr.HTTPStatus(err), apperr.Body(err))
	}
	return c.JSON(http.StatusOK, p)
}

func (h *RotationCtrl) DeletePlan(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return c.JSON(apperr.HTTPStatus(err), apperr.Body(err))
	}
	if _, err := h.svc.DeletePlan(id); err != nil {
		return c.JSON(apperr.HTTPStatus(err), apperr.Body(err))
	}
	return c.NoContent(http.StatusNoContent)
}

func idParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, apperr.Invalid("id", "must be a positive integer")
	}
	return uint(id), nil
}

// farmParam reads the optional farm_id query parameter; absent means all
// farms.
func farmParam(c echo.Context) (*uint, error) {
	raw := strings.TrimSpace(c.QueryParam("farm_id"))
	if raw == "" {
		return nil, nil
	}
	id, err := types.FarmRef(raw).ID()
	if err != nil {
		return nil, apperr.Invalid("farm_id", err.Error())
	}
	return &id, nil
}
