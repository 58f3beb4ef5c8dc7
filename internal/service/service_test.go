package service

import (
	"io"
	"log/slog"
	"testing"

	"github.com/mmynk/gymdesk/internal/models"
	"github.com/mmynk/gymdesk/internal/records"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newPlanService(t *testing.T) (*PlanService, *records.Store[models.Plan]) {
	t.Helper()
	store := records.New[models.Plan](models.MaxPlans)
	return NewPlanService(store, discardLogger()), store
}

func newEquipmentService(t *testing.T) (*EquipmentService, *records.Store[models.Equipment]) {
	t.Helper()
	store := records.New[models.Equipment](models.MaxEquipment)
	return NewEquipmentService(store, discardLogger()), store
}

func newMemberService(t *testing.T) (*MemberService, *records.Store[models.Member]) {
	t.Helper()
	store := records.New[models.Member](models.MaxMembers)
	return NewMemberService(store, discardLogger()), store
}

func mustCreatePlan(t *testing.T, s *PlanService, name string, price float64, desc string) models.Plan {
	t.Helper()
	p, err := s.Create(name, price, desc)
	if err != nil {
		t.Fatalf("Create(%q) failed: %v", name, err)
	}
	return p
}
