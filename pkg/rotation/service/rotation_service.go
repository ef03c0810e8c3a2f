package service

import (
	"farmtrack/entities"
	"farmtrack/pkg/analytics"
	"farmtrack/pkg/rotation/types"
)

type RotationService interface {
	History(farmID *uint) []analytics.HistoryEntry
	Charts(farmID *uint) analytics.ChartSet
	ListPlans(q types.PlanQuery) []entities.CropRecord
	GetPlanByID(id uint) (entities.CropRecord, error)
	CreatePlan(in types.PlanInput) (entities.CropRecord, error)
	UpdatePlan(id uint, in types.PlanInput) (entities.CropRecord, error)
	DeletePlan(id uint) (entities.CropRecord, error)
}
