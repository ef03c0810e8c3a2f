package seed

import (
	"fmt"
	"strings"
	"time"

	"farmtrack/entities"
)

// rawRecord is a seed row in the dataset's own camelCase shape. Legacy
// rows carry no kind and mark plans with type "rotation_plan".
type rawRecord struct {
	ID              uint     `json:"Id" yaml:"Id"`
	FarmID          uint     `json:"farmId" yaml:"farmId"`
	Kind            string   `json:"kind,omitempty" yaml:"kind,omitempty"`
	Type            string   `json:"type" yaml:"type"`
	Status          string   `json:"status" yaml:"status"`
	PlantingDate    string   `json:"plantingDate,omitempty" yaml:"plantingDate,omitempty"`
	ExpectedHarvest string   `json:"expectedHarvest,omitempty" yaml:"expectedHarvest,omitempty"`
	Quantity        float64  `json:"quantity" yaml:"quantity"`
	Location        string   `json:"location,omitempty" yaml:"location,omitempty"`
	CropSequence    []string `json:"cropSequence,omitempty" yaml:"cropSequence,omitempty"`
	StartYear       int      `json:"startYear,omitempty" yaml:"startYear,omitempty"`
	Duration        int      `json:"duration,omitempty" yaml:"duration,omitempty"`
	Notes           string   `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt       string   `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
	UpdatedAt       string   `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty"`
}

func (r rawRecord) record() (entities.CropRecord, error) {
	out := entities.CropRecord{
		ID:           r.ID,
		FarmID:       r.FarmID,
		Kind:         entities.Kind(strings.TrimSpace(r.Kind)),
		CropType:     r.Type,
		Status:       entities.Status(strings.ToLower(strings.TrimSpace(r.Status))),
		Quantity:     r.Quantity,
		Location:     r.Location,
		CropSequence: r.CropSequence,
		StartYear:    r.StartYear,
		Duration:     r.Duration,
		Notes:        r.Notes,
	}
	var err error
	if out.PlantingDate, err = entities.ParseDate(r.PlantingDate); err != nil {
		return out, fmt.Errorf("record %d plantingDate: %w", r.ID, err)
	}
	if out.ExpectedHarvest, err = entities.ParseDate(r.ExpectedHarvest); err != nil {
		return out, fmt.Errorf("record %d expectedHarvest: %w", r.ID, err)
	}
	if out.CreatedAt, err = parseStamp(r.CreatedAt); err != nil {
		return out, fmt.Errorf("record %d createdAt: %w", r.ID, err)
	}
	if out.UpdatedAt, err = parseStamp(r.UpdatedAt); err != nil {
		return out, fmt.Errorf("record %d updatedAt: %w", r.ID, err)
	}
	return out, nil
}

func records(raws []rawRecord) ([]entities.CropRecord, error) {
	out := make([]entities.CropRecord, 0, len(raws))
	for _, r := range raws {
		rec, err := r.record()
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func parseStamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}
