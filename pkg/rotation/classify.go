// Package rotation splits the crop record pool into rotation plans and
// harvested history, and filters plans for display.
package rotation

import (
	"strings"

	"farmtrack/entities"
	"farmtrack/pkg/rotation/types"
)

// Classify returns the plans and the harvested history among records,
// optionally limited to one farm. Each set is chosen by its own predicate,
// so a record could in principle land in both. Input order is kept.
func Classify(records []entities.CropRecord, farmID *uint) (plans, history []entities.CropRecord) {
	plans = []entities.CropRecord{}
	history = []entities.CropRecord{}
	for _, r := range records {
		if farmID != nil && r.FarmID != *farmID {
			continue
		}
		if r.IsPlan() {
			plans = append(plans, r)
		}
		if r.IsHarvested() {
			history = append(history, r)
		}
	}
	return plans, history
}

// FilterPlans keeps plans whose crop sequence or notes contain the search
// term (case-insensitive) and that belong to the requested farm.
func FilterPlans(plans []entities.CropRecord, q types.PlanQuery) []entities.CropRecord {
	term := strings.ToLower(q.SearchTerm)
	out := []entities.CropRecord{}
	for _, p := range plans {
		if q.FarmID != nil && p.FarmID != *q.FarmID {
			continue
		}
		if term != "" && !matches(p, term) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matches(p entities.CropRecord, term string) bool {
	for _, c := range p.CropSequence {
		if strings.Contains(strings.ToLower(c), term) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(p.Notes), term)
}
