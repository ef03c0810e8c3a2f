package entities

import (
	"strings"
	"time"
)

// Kind tags what a CropRecord represents. Planted crops and rotation plans
// live in the same collection and are told apart only by this tag.
type Kind string

const (
	KindCrop         Kind = "crop"
	KindRotationPlan Kind = "rotation_plan"
)

type Status string

const (
	StatusPlanted   Status = "planted"
	StatusGrowing   Status = "growing"
	StatusReady     Status = "ready"
	StatusHarvested Status = "harvested"
	StatusPlanned   Status = "planned"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPlanted, StatusGrowing, StatusReady, StatusHarvested, StatusPlanned:
		return true
	}
	return false
}

const (
	// DefaultPlanDuration is the rotation length in years when a plan omits it.
	DefaultPlanDuration = 3
	// MaxSequenceLen is the number of years a rotation plan can describe.
	MaxSequenceLen = 3
)

type CropRecord struct {
	ID              uint     `gorm:"primaryKey" json:"id"`
	FarmID          uint     `gorm:"index" json:"farm_id"`
	Kind            Kind     `gorm:"index" json:"kind"`
	CropType        string   `json:"type"`
	Status          Status   `gorm:"index" json:"status"`
	PlantingDate    Date     `json:"planting_date"`
	ExpectedHarvest Date     `json:"expected_harvest"`
	Quantity        float64  `json:"quantity"`
	Location        string   `json:"location"`
	CropSequence    []string `gorm:"serializer:json" json:"crop_sequence,omitempty"`
	StartYear       int      `json:"start_year,omitempty"`
	Duration        int      `json:"duration,omitempty"`
	Notes           string   `json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}

func (r CropRecord) IsPlan() bool      { return r.Kind == KindRotationPlan }
func (r CropRecord) IsHarvested() bool { return r.Status == StatusHarvested }

// Clone returns a copy that shares no memory with r.
func (r CropRecord) Clone() CropRecord {
	out := r
	if r.CropSequence != nil {
		out.CropSequence = append([]string(nil), r.CropSequence...)
	}
	return out
}

// CleanSequence trims every slot, drops the empty ones and keeps at most
// MaxSequenceLen entries.
func CleanSequence(seq []string) []string {
	out := make([]string, 0, len(seq))
	for _, s := range seq {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	if len(out) > MaxSequenceLen {
		out = out[:MaxSequenceLen]
	}
	return out
}

// Normalize folds legacy seed rows into the tagged shape: a crop type of
// "rotation_plan" becomes the plan kind, and plans get their defaults.
func Normalize(r CropRecord) CropRecord {
	r = r.Clone()
	if strings.EqualFold(strings.TrimSpace(r.CropType), string(KindRotationPlan)) {
		r.Kind = KindRotationPlan
		r.CropType = ""
	}
	if r.Kind == "" {
		r.Kind = KindCrop
	}
	r.CropType = strings.TrimSpace(r.CropType)
	if r.Kind == KindRotationPlan {
		if r.Status == "" {
			r.Status = StatusPlanned
		}
		if r.Duration == 0 {
			r.Duration = DefaultPlanDuration
		}
		r.CropSequence = CleanSequence(r.CropSequence)
	} else if r.Status == "" {
		r.Status = StatusPlanted
	}
	return r
}
