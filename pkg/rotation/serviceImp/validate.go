package serviceImp

import (
	"fmt"
	"strings"

	"farmtrack/entities"
	"farmtrack/pkg/apperr"
	"farmtrack/pkg/rotation/types"
)

// validate checks a plan form and turns it into the full set of plan
// fields. The first two rotation years are mandatory, the third is not.
func (s *PlanSvc) validate(in types.PlanInput) (entities.CropPatch, error) {
	farmID, err := in.FarmID.ID()
	if err != nil {
		return entities.CropPatch{}, apperr.Invalid("farm_id", err.Error())
	}

	for i := 0; i < 2; i++ {
		if i >= len(in.CropSequence) || strings.TrimSpace(in.CropSequence[i]) == "" {
			return entities.CropPatch{}, apperr.Invalid(fmt.Sprintf("crop_sequence[%d]", i),
				fmt.Sprintf("crop for year %d is required", i+1))
		}
	}
	seq := make([]string, 0, len(in.CropSequence))
	for _, c := range in.CropSequence {
		if c = strings.TrimSpace(c); c != "" {
			seq = append(seq, c)
		}
	}
	if len(seq) > entities.MaxSequenceLen {
		return entities.CropPatch{}, apperr.Invalid("crop_sequence",
			fmt.Sprintf("at most %d years can be planned", entities.MaxSequenceLen))
	}

	if year := s.currentYear(); in.StartYear < year {
		return entities.CropPatch{}, apperr.Invalid("start_year", fmt.Sprintf("must be %d or later", year))
	}

	duration := in.Duration
	switch {
	case duration == 0:
		duration = entities.DefaultPlanDuration
	case duration < 0:
		return entities.CropPatch{}, apperr.Invalid("duration", "must be positive")
	}

	kind := entities.KindRotationPlan
	status := entities.StatusPlanned
	cropType := ""
	notes := in.Notes
	startYear := in.StartYear
	return entities.CropPatch{
		FarmID:       &farmID,
		Kind:         &kind,
		CropType:     &cropType,
		Status:       &status,
		CropSequence: seq,
		StartYear:    &startYear,
		Duration:     &duration,
		Notes:        &notes,
	}, nil
}
