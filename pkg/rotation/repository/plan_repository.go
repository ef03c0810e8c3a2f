package repository

import "farmtrack/entities"

// PlanRepository is the rotation-plan view of the shared crop store.
// FindPlan, Update and Delete treat records of any other kind as missing.
type PlanRepository interface {
	Records() []entities.CropRecord
	FindPlan(id uint) (entities.CropRecord, error)
	Create(rec entities.CropRecord) (entities.CropRecord, error)
	Update(id uint, patch entities.CropPatch) (entities.CropRecord, error)
	Delete(id uint) (entities.CropRecord, error)
}
