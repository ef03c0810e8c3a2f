package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"farmtrack/pkg/seed"
)

// Counter is the part of the record store health looks at.
type Counter interface{ Len() int }

type HealthCtrl struct {
	store   Counter
	sources []string
	started time.Time
	now     func() time.Time
}

func NewHealthCtrl(store Counter, sources []string) *HealthCtrl {
	redacted := make([]string, 0, len(sources))
	for _, s := range sources {
		redacted = append(redacted, seed.Redact(s))
	}
	return &HealthCtrl{store: store, sources: redacted, started: time.Now(), now: time.Now}
}

func (h *HealthCtrl) Health(c echo.Context) error {
	storeOK := h.store != nil
	records := 0
	if storeOK {
		records = h.store.Len()
	}

	status := http.StatusOK
	if !storeOK {
		status = http.StatusServiceUnavailable
	}

	type sub struct {
		OK      bool `json:"ok"`
		Records int  `json:"records"`
	}

	now := h.now()
	resp := map[string]any{
		"status":       map[string]any{"ok": storeOK},
		"uptime_sec":   int(now.Sub(h.started).Seconds()),
		"seed_sources": h.sources,
		"checks": map[string]any{
			"store": sub{OK: storeOK, Records: records},
		},
		"time": now.Format(time.RFC3339),
	}
	return c.JSON(status, resp)
}
