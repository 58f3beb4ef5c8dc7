package service

import (
	"fmt"
	"log/slog"

	"github.com/mmynk/gymdesk/internal/models"
	"github.com/mmynk/gymdesk/internal/records"
)

// PlanUpdate carries a partial plan modification. Empty strings and a
// non-positive price leave the current value in place.
type PlanUpdate struct {
	Name        string
	Price       float64
	Description string
}

// PlanService manages subscription plans.
type PlanService struct {
	plans  *records.Store[models.Plan]
	logger *slog.Logger
}

// NewPlanService creates a PlanService over the given store.
func NewPlanService(plans *records.Store[models.Plan], logger *slog.Logger) *PlanService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlanService{plans: plans, logger: logger}
}

// List returns all plans in store order.
func (s *PlanService) List() []models.Plan {
	return s.plans.All()
}

// Get returns the plan with the given ID.
func (s *PlanService) Get(id int) (models.Plan, error) {
	p, err := s.plans.Get(id)
	if err != nil {
		return p, notFound("plan", id)
	}
	return p, nil
}

// Create adds a plan with the next free ID.
func (s *PlanService) Create(name string, price float64, description string) (models.Plan, error) {
	s.logger.Info("CreatePlan request", "name", name, "price", price)

	if s.plans.Full() {
		s.logger.Warn("CreatePlan refused, store full", "capacity", s.plans.Cap())
		return models.Plan{}, fmt.Errorf("plan: %w", ErrCapacityExceeded)
	}

	plan := models.Plan{
		ID:          s.plans.NextID(),
		Name:        models.Clip(name, models.MaxPlanNameLen),
		Price:       price,
		Description: models.Clip(description, models.MaxPlanDescriptionLen),
	}
	if plan.Name == "" {
		return models.Plan{}, emptyField("name")
	}
	if plan.Description == "" {
		return models.Plan{}, emptyField("description")
	}

	if err := s.plans.Append(plan); err != nil {
		return models.Plan{}, fmt.Errorf("plan: %w", err)
	}

	s.logger.Info("Plan created", "plan_id", plan.ID)
	return plan, nil
}

// Modify applies u to the plan with the given ID. It succeeds whenever the
// plan exists, even if nothing changed.
func (s *PlanService) Modify(id int, u PlanUpdate) (models.Plan, error) {
	s.logger.Info("ModifyPlan request", "plan_id", id)

	i, err := s.plans.FindByID(id)
	if err != nil {
		return models.Plan{}, notFound("plan", id)
	}

	plan, err := s.plans.UpdateAt(i, func(p *models.Plan) {
		if u.Name != "" {
			p.Name = models.Clip(u.Name, models.MaxPlanNameLen)
		}
		if u.Price > 0 {
			p.Price = u.Price
		}
		if u.Description != "" {
			p.Description = models.Clip(u.Description, models.MaxPlanDescriptionLen)
		}
	})
	if err != nil {
		return models.Plan{}, err
	}

	s.logger.Info("Plan modified", "plan_id", id)
	return plan, nil
}

// Delete removes the plan with the given ID. Members subscribed to it keep
// the now dangling plan ID.
func (s *PlanService) Delete(id int) (models.Plan, error) {
	s.logger.Info("DeletePlan request", "plan_id", id)

	i, err := s.plans.FindByID(id)
	if err != nil {
		return models.Plan{}, notFound("plan", id)
	}
	removed, err := s.plans.RemoveAt(i)
	if err != nil {
		return models.Plan{}, err
	}

	s.logger.Info("Plan deleted", "plan_id", id, "name", removed.Name)
	return removed, nil
}
