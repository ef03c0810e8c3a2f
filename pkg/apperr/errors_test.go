package apperr

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFound(t *testing.T) {
	err := fmt.Errorf("get plan: %w", NotFound("crop record", 7))

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrValidation)

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, uint(7), nf.ID)
	assert.Equal(t, "get plan: crop record 7 not found", err.Error())
}

func TestValidation(t *testing.T) {
	err := Invalid("startYear", "must not be before 2025")

	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "startYear", Field(err))
	assert.Equal(t, "", Field(errors.New("plain")))
	assert.Contains(t, err.Error(), "startYear")
}

func TestUpstream(t *testing.T) {
	err := Upstream("data/crops.json", fs.ErrNotExist)

	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	assert.ErrorIs(t, err, fs.ErrNotExist, "cause stays reachable")
	assert.Contains(t, err.Error(), "data/crops.json")
}

func TestHTTPMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
		body   map[string]string
	}{
		{NotFound("rotation plan", 3), 404, map[string]string{"error": "rotation plan 3 not found"}},
		{Invalid("farm_id", "is required"), 400, map[string]string{"error": "invalid farm_id: is required", "field": "farm_id"}},
		{Upstream("crops.json", fs.ErrNotExist), 503, map[string]string{"error": `seed source "crops.json" unavailable: file does not exist`}},
		{errors.New("boom"), 500, map[string]string{"error": "boom"}},
	}
	for _, v := range tests {
		assert.Equal(t, v.status, HTTPStatus(v.err), v.err.Error())
		assert.Equal(t, v.body, Body(v.err), v.err.Error())
	}
}
