package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"farmtrack/entities"
	"farmtrack/pkg/apperr"
	"farmtrack/pkg/crop/controller"
	"farmtrack/pkg/crop/service"
)

type CropCtrl struct{ svc service.CropService }

var _ controller.CropController = (*CropCtrl)(nil)

func New(svc service.CropService) *CropCtrl { return &CropCtrl{svc} }

// List returns the whole store unless a search or status filter is given,
// in which case only crops are considered.
func (h *CropCtrl) List(c echo.Context) error {
	q := service.CropQuery{Search: c.QueryParam("search"), Status: c.QueryParam("status")}
	if q.Search == "" && q.Status == "" {
		return c.JSON(http.StatusOK, h.svc.ListAll())
	}
	return c.JSON(http.StatusOK, h.svc.Search(q))
}

func (h *CropCtrl) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return c.JSON(apperr.HTTPStatus(err), apperr.Body(err))
	}
	rec, err := h.svc.GetByID(id)
	if err != nil {
		return c.JSON(apperr.HTTPStatus(err), apperr.Body(err))
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *CropCtrl) Create(c echo.Context) error {
	var p entities.CropPatch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	rec, err := h.svc.Create(p)
	if err != nil {
		return c.JSON(apperr.HTTPStatus(err), apperr.Body(err))
	}
	return c.JSON(http.StatusCreated, rec)
}

// Update serves both PATCH and PUT; either way only the fields in the body
// change.
func (h *CropCtrl) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return c.JSON(apperr.HTTPStatus(err), apperr.Body(err))
	}
	var p entities.CropPatch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	rec, err := h.svc.Update(id, p)
	if err != nil {
		return c.JSON(apperr.HTTPStatus(err), apperr.Body(err))
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *CropCtrl) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return c.JSON(apperr.HTTPStatus(err), apperr.Body(err))
	}
	rec, err := h.svc.Delete(id)
	if err != nil {
		return c.JSON(apperr.HTTPStatus(err), apperr.Body(err))
	}
	return c.JSON(http.StatusOK, rec)
}

func idParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, apperr.Invalid("id", "must be a positive integer")
	}
	return uint(id), nil
}
