package repository

import "farmtrack/entities"

// CropRepository owns the crop record collection. Rotation plans share the
// collection with planted crops. Every method hands out copies.
type CropRepository interface {
	List() []entities.CropRecord
	Get(id uint) (entities.CropRecord, error)
	Insert(rec entities.CropRecord) (entities.CropRecord, error)
	Replace(id uint, patch entities.CropPatch) (entities.CropRecord, error)
	Remove(id uint) (entities.CropRecord, error)
	// ReplaceIf and RemoveIf check keep and write under one lock; a record
	// keep rejects is reported as not found.
	ReplaceIf(id uint, patch entities.CropPatch, keep func(entities.CropRecord) bool) (entities.CropRecord, error)
	RemoveIf(id uint, keep func(entities.CropRecord) bool) (entities.CropRecord, error)
	Len() int
}
