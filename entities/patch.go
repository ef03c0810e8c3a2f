package entities

// CropPatch is a partial CropRecord. A nil field is absent and leaves the
// stored value untouched; CropSequence is absent when nil.
type CropPatch struct {
	FarmID          *uint    `json:"farm_id"`
	Kind            *Kind    `json:"kind"`
	CropType        *string  `json:"type"`
	Status          *Status  `json:"status"`
	PlantingDate    *Date    `json:"planting_date"`
	ExpectedHarvest *Date    `json:"expected_harvest"`
	Quantity        *float64 `json:"quantity"`
	Location        *string  `json:"location"`
	CropSequence    []string `json:"crop_sequence"`
	StartYear       *int     `json:"start_year"`
	Duration        *int     `json:"duration"`
	Notes           *string  `json:"notes"`
}

// Apply merges the present fields of p over r.
func (p CropPatch) Apply(r *CropRecord) {
	if p.FarmID != nil {
		r.FarmID = *p.FarmID
	}
	if p.Kind != nil {
		r.Kind = *p.Kind
	}
	if p.CropType != nil {
		r.CropType = *p.CropType
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.PlantingDate != nil {
		r.PlantingDate = *p.PlantingDate
	}
	if p.ExpectedHarvest != nil {
		r.ExpectedHarvest = *p.ExpectedHarvest
	}
	if p.Quantity != nil {
		r.Quantity = *p.Quantity
	}
	if p.Location != nil {
		r.Location = *p.Location
	}
	if p.CropSequence != nil {
		r.CropSequence = append([]string{}, p.CropSequence...)
	}
	if p.StartYear != nil {
		r.StartYear = *p.StartYear
	}
	if p.Duration != nil {
		r.Duration = *p.Duration
	}
	if p.Notes != nil {
		r.Notes = *p.Notes
	}
}

// Record builds a fresh record holding only the fields present in p.
func (p CropPatch) Record() CropRecord {
	var r CropRecord
	p.Apply(&r)
	return r
}
