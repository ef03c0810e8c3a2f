package repositoryImp

import (
	"farmtrack/entities"
	"farmtrack/pkg/apperr"
	croprepo "farmtrack/pkg/crop/repository"
	"farmtrack/pkg/rotation/repository"
)

const entityName = "rotation plan"

type planView struct{ store croprepo.CropRepository }

func New(store croprepo.CropRepository) repository.PlanRepository { return &planView{store} }

func (r *planView) Records() []entities.CropRecord { return r.store.List() }

func (r *planView) FindPlan(id uint) (entities.CropRecord, error) {
	rec, err := r.store.Get(id)
	if err != nil || !rec.IsPlan() {
		return entities.CropRecord{}, apperr.NotFound(entityName, id)
	}
	return rec, nil
}

func (r *planView) Create(rec entities.CropRecord) (entities.CropRecord, error) {
	rec.Kind = entities.KindRotationPlan
	return r.store.Insert(rec)
}

func (r *planView) Update(id uint, patch entities.CropPatch) (entities.CropRecord, error) {
	out, err := r.store.ReplaceIf(id, patch, isPlan)
	if err != nil {
		return entities.CropRecord{}, apperr.NotFound(entityName, id)
	}
	return out, nil
}

func (r *planView) Delete(id uint) (entities.CropRecord, error) {
	out, err := r.store.RemoveIf(id, isPlan)
	if err != nil {
		return entities.CropRecord{}, apperr.NotFound(entityName, id)
	}
	return out, nil
}

func isPlan(rec entities.CropRecord) bool { return rec.IsPlan() }
