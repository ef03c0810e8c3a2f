package service

import "farmtrack/entities"

// CropQuery mirrors the crops page filters. Status "" or "all" keeps every
// status.
type CropQuery struct {
	Search string
	Status string
}

type CropService interface {
	ListAll() []entities.CropRecord
	Search(q CropQuery) []entities.CropRecord
	GetByID(id uint) (entities.CropRecord, error)
	Create(p entities.CropPatch) (entities.CropRecord, error)
	Update(id uint, p entities.CropPatch) (entities.CropRecord, error)
	Delete(id uint) (entities.CropRecord, error)
}
