package serviceImp

import (
	"strings"

	"farmtrack/entities"
	"farmtrack/pkg/apperr"
	"farmtrack/pkg/crop/repository"
	"farmtrack/pkg/crop/service"
	"farmtrack/pkg/logger"
)

type cropSvc struct {
	r   repository.CropRepository
	log *logger.Logger
}

func NewCropService(r repository.CropRepository, log *logger.Logger) service.CropService {
	return &cropSvc{r: r, log: log.With("service", "crop")}
}

// ListAll returns every record in the store, plans included.
func (s *cropSvc) ListAll() []entities.CropRecord { return s.r.List() }

func (s *cropSvc) Search(q service.CropQuery) []entities.CropRecord {
	term := strings.ToLower(strings.TrimSpace(q.Search))
	status := strings.ToLower(strings.TrimSpace(q.Status))
	out := []entities.CropRecord{}
	for _, r := range s.r.List() {
		if r.IsPlan() {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(r.CropType), term) &&
			!strings.Contains(strings.ToLower(r.Location), term) {
			continue
		}
		if status != "" && status != "all" && string(r.Status) != status {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (s *cropSvc) GetByID(id uint) (entities.CropRecord, error) { return s.r.Get(id) }

func (s *cropSvc) Create(p entities.CropPatch) (entities.CropRecord, error) {
	if p.CropType == nil || strings.TrimSpace(*p.CropType) == "" {
		return entities.CropRecord{}, apperr.Invalid("type", "is required")
	}
	if err := checkPatch(p); err != nil {
		return entities.CropRecord{}, err
	}
	rec := p.Record()
	rec.Kind = entities.KindCrop
	rec.CropType = strings.TrimSpace(rec.CropType)
	if rec.Status == "" {
		rec.Status = entities.StatusPlanted
	}
	out, err := s.r.Insert(rec)
	if err != nil {
		return entities.CropRecord{}, err
	}
	s.log.Info("crop created", "id", out.ID, "farm_id", out.FarmID, "type", out.CropType)
	return out, nil
}

// Update is last-write-wins over the fields present in p. Plans are not
// visible here; they change only through the rotation service.
func (s *cropSvc) Update(id uint, p entities.CropPatch) (entities.CropRecord, error) {
	if p.CropType != nil && strings.TrimSpace(*p.CropType) == "" {
		return entities.CropRecord{}, apperr.Invalid("type", "must not be empty")
	}
	if err := checkPatch(p); err != nil {
		return entities.CropRecord{}, err
	}
	out, err := s.r.ReplaceIf(id, p, isCrop)
	if err != nil {
		return entities.CropRecord{}, err
	}
	s.log.Info("crop updated", "id", out.ID)
	return out, nil
}

func (s *cropSvc) Delete(id uint) (entities.CropRecord, error) {
	out, err := s.r.Remove(id)
	if err != nil {
		return entities.CropRecord{}, err
	}
	s.log.Info("crop deleted", "id", out.ID, "kind", out.Kind)
	return out, nil
}

// checkPatch rejects bad values among the fields present. The kind tag
// can only be set by the plan service.
func checkPatch(p entities.CropPatch) error {
	if p.Kind != nil && *p.Kind != entities.KindCrop {
		return apperr.Invalid("kind", "crop endpoints only manage crops")
	}
	if p.CropType != nil && strings.EqualFold(strings.TrimSpace(*p.CropType), string(entities.KindRotationPlan)) {
		return apperr.Invalid("type", "rotation plans are managed under /rotation/plans")
	}
	if p.CropSequence != nil {
		return apperr.Invalid("crop_sequence", "rotation sequences are managed under /rotation/plans")
	}
	if p.Status != nil && !p.Status.Valid() {
		return apperr.Invalid("status", "unknown status "+string(*p.Status))
	}
	if p.Quantity != nil && *p.Quantity < 0 {
		return apperr.Invalid("quantity", "must not be negative")
	}
	return nil
}

func isCrop(rec entities.CropRecord) bool { return !rec.IsPlan() }
