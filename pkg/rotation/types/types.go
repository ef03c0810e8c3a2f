package types

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PlanInput is the rotation-plan form as submitted by clients.
type PlanInput struct {
	FarmID       FarmRef  `json:"farm_id"`
	CropSequence []string `json:"crop_sequence"`
	StartYear    int      `json:"start_year"`
	Duration     int      `json:"duration,omitempty"`
	Notes        string   `json:"notes,omitempty"`
}

// PlanQuery narrows a plan list. Empty SearchTerm and nil FarmID pass
// everything through.
type PlanQuery struct {
	SearchTerm string
	FarmID     *uint
}

// FarmRef holds a farm id exactly as the client sent it. Forms post it as a
// string ("3"), API clients as a number (3); both decode here.
type FarmRef string

func (f *FarmRef) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FarmRef(s)
		return nil
	}
	*f = FarmRef(raw)
	return nil
}

func FarmRefOf(id uint) FarmRef { return FarmRef(strconv.FormatUint(uint64(id), 10)) }

// ID coerces the reference to a positive farm id.
func (f FarmRef) ID() (uint, error) {
	s := strings.TrimSpace(string(f))
	if s == "" {
		return 0, fmt.Errorf("is required")
	}
	if v, err := strconv.ParseUint(s, 10, 32); err == nil {
		if v == 0 {
			return 0, fmt.Errorf("must be positive")
		}
		return uint(v), nil
	}
	fv, err := strconv.ParseFloat(s, 64)
	if err != nil || fv != math.Trunc(fv) || fv < 1 || fv > math.MaxUint32 {
		return 0, fmt.Errorf("%q is not a farm id", s)
	}
	return uint(fv), nil
}
