package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmtrack/entities"
	"farmtrack/pkg/crop/repositoryImp"
	"farmtrack/pkg/crop/serviceImp"
	"farmtrack/pkg/logger"
)

func newServer(t *testing.T) *echo.Echo {
	t.Helper()
	store, err := repositoryImp.NewMemoryStore([]entities.CropRecord{
		{ID: 1, FarmID: 1, Kind: entities.KindCrop, CropType: "Corn", Status: entities.StatusGrowing, Location: "North Field"},
		{ID: 2, FarmID: 1, Kind: entities.KindRotationPlan, Status: entities.StatusPlanned,
			CropSequence: []string{"Corn", "Soybeans"}},
	})
	require.NoError(t, err)
	h := New(serviceImp.NewCropService(store, logger.NewNop()))

	e := echo.New()
	e.GET("/crops", h.List)
	e.POST("/crops", h.Create)
	e.GET("/crops/:id", h.Get)
	e.PATCH("/crops/:id", h.Update)
	e.PUT("/crops/:id", h.Update)
	e.DELETE("/crops/:id", h.Delete)
	return e
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestCropLifecycle(t *testing.T) {
	e := newServer(t)

	rec := do(e, http.MethodPost, "/crops",
		`{"farm_id":2,"type":"Tomatoes","planting_date":"2025-04-01","quantity":30,"location":"Greenhouse"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[entities.CropRecord](t, rec)
	assert.Equal(t, uint(3), created.ID)
	assert.Equal(t, "2025-04-01", created.PlantingDate.String())
	assert.Equal(t, entities.StatusPlanted, created.Status)

	rec = do(e, http.MethodPatch, "/crops/3", `{"status":"harvested","quantity":42}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[entities.CropRecord](t, rec)
	assert.Equal(t, entities.StatusHarvested, updated.Status)
	assert.Equal(t, 42.0, updated.Quantity)
	assert.Equal(t, "Greenhouse", updated.Location)

	rec = do(e, http.MethodGet, "/crops?status=harvested", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]entities.CropRecord](t, rec), 1)

	rec = do(e, http.MethodDelete, "/crops/3", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = do(e, http.MethodGet, "/crops/3", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, map[string]string{"error": "crop record 3 not found"}, decode[map[string]string](t, rec))
}

func TestListCrops(t *testing.T) {
	e := newServer(t)

	rec := do(e, http.MethodGet, "/crops", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]entities.CropRecord](t, rec), 2, "plain list includes plans")

	rec = do(e, http.MethodGet, "/crops?search=north", "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[[]entities.CropRecord](t, rec)
	require.Len(t, got, 1)
	assert.Equal(t, "Corn", got[0].CropType)
}

func TestCropHandlerErrors(t *testing.T) {
	e := newServer(t)

	tests := []struct {
		method, target, body string
		status               int
		field                string
	}{
		{http.MethodPost, "/crops", `{"farm_id":1}`, http.StatusBadRequest, "type"},
		{http.MethodPost, "/crops", `{"type":"Corn","status":"rotting"}`, http.StatusBadRequest, "status"},
		{http.MethodPost, "/crops", `{"type":`, http.StatusBadRequest, ""},
		{http.MethodPut, "/crops/9", `{"quantity":1}`, http.StatusNotFound, ""},
		{http.MethodGet, "/crops/x", "", http.StatusBadRequest, "id"},
		{http.MethodDelete, "/crops/9", "", http.StatusNotFound, ""},
		{http.MethodPatch, "/crops/2", `{"kind":"crop"}`, http.StatusNotFound, ""},
		{http.MethodPatch, "/crops/1", `{"crop_sequence":["a","b","c","d"]}`, http.StatusBadRequest, "crop_sequence"},
	}
	for _, v := range tests {
		rec := do(e, v.method, v.target, v.body)
		assert.Equal(t, v.status, rec.Code, v.method+" "+v.target)
		body := decode[map[string]string](t, rec)
		assert.Equal(t, v.field, body["field"], v.method+" "+v.target)
	}
}
