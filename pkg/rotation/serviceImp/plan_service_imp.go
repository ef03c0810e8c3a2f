package serviceImp

import (
	"time"

	"farmtrack/entities"
	"farmtrack/pkg/analytics"
	"farmtrack/pkg/logger"
	"farmtrack/pkg/rotation"
	planrepo "farmtrack/pkg/rotation/repository"
	"farmtrack/pkg/rotation/service"
	"farmtrack/pkg/rotation/types"
)

type PlanSvc struct {
	repo planrepo.PlanRepository
	log  *logger.Logger
	now  func() time.Time
	loc  *time.Location
}

type Option func(*PlanSvc)

// WithClock sets the clock used to decide the current year.
func WithClock(now func() time.Time) Option {
	return func(s *PlanSvc) { s.now = now }
}

// WithLocation sets the time zone in which the current year is read.
func WithLocation(loc *time.Location) Option {
	return func(s *PlanSvc) {
		if loc != nil {
			s.loc = loc
		}
	}
}

var _ service.RotationService = (*PlanSvc)(nil)

func NewPlanService(repo planrepo.PlanRepository, log *logger.Logger, opts ...Option) *PlanSvc {
	s := &PlanSvc{repo: repo, log: log.With("service", "rotation"), now: time.Now, loc: time.UTC}
	for _, o := range opts {
		o(s)
	}
	return s
}

// History returns the harvested records of a farm (or of all farms when
// farmID is nil) with their soil-health score and yield figures.
func (s *PlanSvc) History(farmID *uint) []analytics.HistoryEntry {
	_, history := rotation.Classify(s.repo.Records(), farmID)
	return analytics.Enrich(history)
}

func (s *PlanSvc) Charts(farmID *uint) analytics.ChartSet {
	return analytics.Build(s.History(farmID))
}

func (s *PlanSvc) ListPlans(q types.PlanQuery) []entities.CropRecord {
	plans, _ := rotation.Classify(s.repo.Records(), nil)
	return rotation.FilterPlans(plans, q)
}

func (s *PlanSvc) GetPlanByID(id uint) (entities.CropRecord, error) {
	return s.repo.FindPlan(id)
}

// CreatePlan validates in completely before the store is touched.
func (s *PlanSvc) CreatePlan(in types.PlanInput) (entities.CropRecord, error) {
	patch, err := s.validate(in)
	if err != nil {
		return entities.CropRecord{}, err
	}
	p, err := s.repo.Create(patch.Record())
	if err != nil {
		return entities.CropRecord{}, err
	}
	s.log.Info("rotation plan created", "id", p.ID, "farm_id", p.FarmID, "sequence", p.CropSequence)
	return p, nil
}

func (s *PlanSvc) UpdatePlan(id uint, in types.PlanInput) (entities.CropRecord, error) {
	patch, err := s.validate(in)
	if err != nil {
		return entities.CropRecord{}, err
	}
	p, err := s.repo.Update(id, patch)
	if err != nil {
		return entities.CropRecord{}, err
	}
	s.log.Info("rotation plan updated", "id", p.ID, "farm_id", p.FarmID, "sequence", p.CropSequence)
	return p, nil
}

func (s *PlanSvc) DeletePlan(id uint) (entities.CropRecord, error) {
	p, err := s.repo.Delete(id)
	if err != nil {
		return entities.CropRecord{}, err
	}
	s.log.Info("rotation plan deleted", "id", p.ID, "farm_id", p.FarmID)
	return p, nil
}

func (s *PlanSvc) currentYear() int { return s.now().In(s.loc).Year() }
