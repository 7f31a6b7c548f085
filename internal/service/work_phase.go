package service

import (
	"context"

	"github.com/deppfellow/timesheet/internal/model"
)

type WorkPhaseService struct {
	phases WorkPhaseStore
}

func NewWorkPhaseService(phases WorkPhaseStore) *WorkPhaseService {
	return &WorkPhaseService{phases: phases}
}

func (s *WorkPhaseService) List(ctx context.Context) ([]model.WorkPhase, error) {
	return s.phases.List(ctx)
}

// Create adds a phase. A reused code fails with a unique violation that the
// error handler turns into 409.
func (s *WorkPhaseService) Create(ctx context.Context, req *model.CreateWorkPhaseRequest) (*model.WorkPhase, error) {
	phase := req.WorkPhase()
	if err := s.phases.Create(ctx, phase); err != nil {
		return nil, err
	}
	return phase, nil
}

func (s *WorkPhaseService) Update(ctx context.Context, req *model.UpdateWorkPhaseRequest) (*model.WorkPhase, error) {
	existing, err := s.phases.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	phase := req.Apply(*existing)
	if err := s.phases.Update(ctx, phase); err != nil {
		return nil, err
	}
	return phase, nil
}

func (s *WorkPhaseService) Delete(ctx context.Context, id int) error {
	return s.phases.Delete(ctx, id)
}
