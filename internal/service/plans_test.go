package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/mmynk/gymdesk/internal/models"
	"github.com/mmynk/gymdesk/internal/storage/flatfile"
)

func TestCreatePlan(t *testing.T) {
	t.Run("assigns sequential IDs", func(t *testing.T) {
		s, _ := newPlanService(t)
		first := mustCreatePlan(t, s, "Cardio", 49.99, "Cardio only")
		second := mustCreatePlan(t, s, "Full", 89.99, "All access")
		if first.ID != 1 || second.ID != 2 {
			t.Errorf("IDs = %d, %d; want 1, 2", first.ID, second.ID)
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		s, store := newPlanService(t)
		_, err := s.Create("", 10, "desc")
		if !errors.Is(err, ErrValidationFailed) {
			t.Errorf("error = %v, want ErrValidationFailed", err)
		}
		if store.Len() != 0 {
			t.Errorf("store has %d plans, want 0", store.Len())
		}
	})

	t.Run("clips long fields", func(t *testing.T) {
		s, _ := newPlanService(t)
		p := mustCreatePlan(t, s, strings.Repeat("n", 80), 1, strings.Repeat("d", 150))
		if len(p.Name) != models.MaxPlanNameLen {
			t.Errorf("name length = %d, want %d", len(p.Name), models.MaxPlanNameLen)
		}
		if len(p.Description) != models.MaxPlanDescriptionLen {
			t.Errorf("description length = %d, want %d", len(p.Description), models.MaxPlanDescriptionLen)
		}
	})

	t.Run("refuses beyond capacity and leaves store unchanged", func(t *testing.T) {
		s, store := newPlanService(t)
		for i := 0; i < models.MaxPlans; i++ {
			mustCreatePlan(t, s, fmt.Sprintf("Plan %d", i), 10, "desc")
		}
		before := store.All()

		_, err := s.Create("Overflow", 10, "desc")
		if !errors.Is(err, ErrCapacityExceeded) {
			t.Fatalf("error = %v, want ErrCapacityExceeded", err)
		}
		if !reflect.DeepEqual(store.All(), before) {
			t.Error("store contents changed after refused create")
		}
	})
}

func TestModifyPlan(t *testing.T) {
	t.Run("empty and non-positive inputs keep every field", func(t *testing.T) {
		s, _ := newPlanService(t)
		orig := mustCreatePlan(t, s, "Cardio", 49.99, "Cardio only")

		for _, price := range []float64{0, -5} {
			got, err := s.Modify(orig.ID, PlanUpdate{Price: price})
			if err != nil {
				t.Fatalf("Modify failed: %v", err)
			}
			if got != orig {
				t.Errorf("Modify with price %v changed plan: got %+v, want %+v", price, got, orig)
			}
		}
	})

	t.Run("provided fields replace current values", func(t *testing.T) {
		s, _ := newPlanService(t)
		orig := mustCreatePlan(t, s, "Cardio", 49.99, "Cardio only")

		got, err := s.Modify(orig.ID, PlanUpdate{Price: 55})
		if err != nil {
			t.Fatalf("Modify failed: %v", err)
		}
		want := models.Plan{ID: 1, Name: "Cardio", Price: 55, Description: "Cardio only"}
		if got != want {
			t.Errorf("got %+v, want %+v", got, want)
		}

		got, _ = s.Modify(orig.ID, PlanUpdate{Name: "Cardio+", Description: "Cardio and pool"})
		want = models.Plan{ID: 1, Name: "Cardio+", Price: 55, Description: "Cardio and pool"}
		if got != want {
			t.Errorf("got %+v, want %+v", got, want)
		}
		if stored, _ := s.Get(1); stored != want {
			t.Errorf("stored %+v, want %+v", stored, want)
		}
	})

	t.Run("unknown ID", func(t *testing.T) {
		s, _ := newPlanService(t)
		if _, err := s.Modify(9, PlanUpdate{Name: "x"}); !errors.Is(err, ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})
}

func TestDeletePlan(t *testing.T) {
	t.Run("middle delete preserves order of survivors", func(t *testing.T) {
		s, store := newPlanService(t)
		a := mustCreatePlan(t, s, "A", 1, "a")
		mustCreatePlan(t, s, "B", 2, "b")
		c := mustCreatePlan(t, s, "C", 3, "c")

		removed, err := s.Delete(2)
		if err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if removed.Name != "B" {
			t.Errorf("removed %q, want B", removed.Name)
		}
		if store.Len() != 2 {
			t.Errorf("Len() = %d, want 2", store.Len())
		}
		if got := s.List(); !reflect.DeepEqual(got, []models.Plan{a, c}) {
			t.Errorf("got %+v, want [A C]", got)
		}
	})

	t.Run("unknown ID is a no-op", func(t *testing.T) {
		s, store := newPlanService(t)
		mustCreatePlan(t, s, "A", 1, "a")
		if _, err := s.Delete(5); !errors.Is(err, ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
		if store.Len() != 1 {
			t.Errorf("Len() = %d, want 1", store.Len())
		}
	})
}

// TestPlanIDReuseScenario walks the create/delete/create sequence in which a
// freed ID is handed out again, then checks the result survives a save and
// load through the flat file format.
func TestPlanIDReuseScenario(t *testing.T) {
	s, store := newPlanService(t)

	if p := mustCreatePlan(t, s, "Cardio", 49.99, "Cardio only"); p.ID != 1 {
		t.Fatalf("Cardio ID = %d, want 1", p.ID)
	}
	if p := mustCreatePlan(t, s, "Full", 89.99, "All access"); p.ID != 2 {
		t.Fatalf("Full ID = %d, want 2", p.ID)
	}
	if _, err := s.Delete(1); err != nil {
		t.Fatalf("Delete(1) failed: %v", err)
	}
	if p := mustCreatePlan(t, s, "Basic", 29.99, "Gym floor"); p.ID != 3 {
		// max ID is 2, so the next ID is 3
		t.Fatalf("Basic ID = %d, want 3", p.ID)
	}

	// Deleting the max ID frees it for reuse.
	if _, err := s.Delete(3); err != nil {
		t.Fatalf("Delete(3) failed: %v", err)
	}
	if p := mustCreatePlan(t, s, "Basic", 29.99, "Gym floor"); p.ID != 3 {
		t.Fatalf("Basic ID after deleting max = %d, want 3", p.ID)
	}

	dir := t.TempDir()
	fs := flatfile.New(dir, discardLogger())
	ctx := context.Background()
	if err := fs.SavePlans(ctx, store.All()); err != nil {
		t.Fatalf("SavePlans failed: %v", err)
	}
	loaded, err := fs.LoadPlans(ctx)
	if err != nil {
		t.Fatalf("LoadPlans failed: %v", err)
	}

	want := []models.Plan{
		{ID: 2, Name: "Full", Price: 89.99, Description: "All access"},
		{ID: 3, Name: "Basic", Price: 29.99, Description: "Gym floor"},
	}
	if !reflect.DeepEqual(loaded, want) {
		t.Errorf("loaded %+v, want %+v", loaded, want)
	}
}
