// Package session runs the interactive gym desk: it loads the three record
// stores, drives the member and admin menus, and writes stores back after
// each change and at exit.
//
// Nothing here is fatal. Save failures are shown to the operator and logged,
// and the in-memory state stays as it was so the operator can keep working.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mmynk/gymdesk/internal/auth"
	"github.com/mmynk/gymdesk/internal/metrics"
	"github.com/mmynk/gymdesk/internal/models"
	"github.com/mmynk/gymdesk/internal/records"
	"github.com/mmynk/gymdesk/internal/service"
	"github.com/mmynk/gymdesk/internal/storage"
)

// Options configures a Session.
type Options struct {
	Store   storage.Store
	Admin   *auth.AdminAuthenticator
	Metrics *metrics.Recorder
	Logger  *slog.Logger

	// SkipPause disables the "Press Enter to continue" stops.
	SkipPause bool
}

// Session owns the record stores for one operator.
type Session struct {
	store   storage.Store
	admin   *auth.AdminAuthenticator
	metrics *metrics.Recorder
	logger  *slog.Logger

	plans     *records.Store[models.Plan]
	equipment *records.Store[models.Equipment]
	members   *records.Store[models.Member]

	Plans     *service.PlanService
	Equipment *service.EquipmentService
	Members   *service.MemberService

	skipPause bool
	in        *prompter
	out       io.Writer
}

// New creates a Session with empty stores. Call Load before Run.
func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("session_id", uuid.NewString())

	rec := opts.Metrics
	if rec == nil {
		rec = metrics.New()
	}

	s := &Session{
		store:     opts.Store,
		admin:     opts.Admin,
		metrics:   rec,
		logger:    logger,
		plans:     records.New[models.Plan](models.MaxPlans),
		equipment: records.New[models.Equipment](models.MaxEquipment),
		members:   records.New[models.Member](models.MaxMembers),
		skipPause: opts.SkipPause,
		out:       io.Discard,
	}
	s.Plans = service.NewPlanService(s.plans, logger)
	s.Equipment = service.NewEquipmentService(s.equipment, logger)
	s.Members = service.NewMemberService(s.members, logger)
	return s
}

// Load fills all three stores from the backend. Missing or damaged data
// yields fewer records, not an error.
func (s *Session) Load(ctx context.Context) error {
	plans, err := s.store.LoadPlans(ctx)
	if err != nil {
		return fmt.Errorf("failed to load plans: %w", err)
	}
	equipment, err := s.store.LoadEquipment(ctx)
	if err != nil {
		return fmt.Errorf("failed to load equipment: %w", err)
	}
	members, err := s.store.LoadMembers(ctx)
	if err != nil {
		return fmt.Errorf("failed to load members: %w", err)
	}

	s.metrics.Loaded(metrics.EntityPlan, s.plans.Replace(plans))
	s.metrics.Loaded(metrics.EntityEquipment, s.equipment.Replace(equipment))
	s.metrics.Loaded(metrics.EntityMember, s.members.Replace(members))

	s.logger.Info("Session loaded",
		"plans", s.plans.Len(),
		"equipment", s.equipment.Len(),
		"members", s.members.Len(),
	)
	return nil
}

// SavePlans writes the plan store back. Saves ignore cancellation of ctx:
// a change already made in memory is always written.
func (s *Session) SavePlans(ctx context.Context) error {
	err := s.store.SavePlans(context.WithoutCancel(ctx), s.plans.All())
	return s.saved(metrics.EntityPlan, err)
}

// SaveEquipment writes the equipment store back, ignoring cancellation of ctx.
func (s *Session) SaveEquipment(ctx context.Context) error {
	err := s.store.SaveEquipment(context.WithoutCancel(ctx), s.equipment.All())
	return s.saved(metrics.EntityEquipment, err)
}

// SaveMembers writes the member store back, ignoring cancellation of ctx.
func (s *Session) SaveMembers(ctx context.Context) error {
	err := s.store.SaveMembers(context.WithoutCancel(ctx), s.members.All())
	return s.saved(metrics.EntityMember, err)
}

// SaveAll writes every store, continuing past failures, and returns the
// joined errors.
func (s *Session) SaveAll(ctx context.Context) error {
	return errors.Join(
		s.SavePlans(ctx),
		s.SaveEquipment(ctx),
		s.SaveMembers(ctx),
	)
}

// Metrics returns the session's recorder.
func (s *Session) Metrics() *metrics.Recorder {
	return s.metrics
}

func (s *Session) saved(entity string, err error) error {
	s.metrics.Saved(entity, err)
	if err != nil {
		s.logger.Error("Save failed", "kind", entity, "error", err)
		fmt.Fprintf(s.out, "\nError: Cannot save %s data: %v\n", entity, err)
		return err
	}
	return nil
}

// Run drives the main menu until the operator exits, input ends or ctx is
// done, then saves every store.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	// stop releases the input reader once the session is over.
	ctx, stop := context.WithCancel(ctx)
	defer stop()
	s.in = newPrompter(ctx, in, out)
	s.out = out
	defer func() { s.out = io.Discard }()

	s.logger.Info("Session started")
	fmt.Fprintln(out, "===== GYM MANAGEMENT SYSTEM =====")
	fmt.Fprintf(out, "%d plan(s), %d equipment item(s), %d member(s) loaded.\n",
		s.plans.Len(), s.equipment.Len(), s.members.Len())

	for {
		if err := ctx.Err(); err != nil {
			break
		}
		header(out, "GYM MANAGEMENT SYSTEM")
		fmt.Fprintln(out, "1 - Member Login")
		fmt.Fprintln(out, "2 - Admin Login")
		fmt.Fprintln(out, "0 - Exit")
		separator(out)
		choice := s.in.number("Your choice: ")
		if s.in.done && choice == 0 {
			break
		}

		switch choice {
		case 1:
			s.memberSection(ctx)
		case 2:
			s.adminSection(ctx)
		case 0:
		default:
			fmt.Fprintln(out, "\nInvalid choice. Please try again.")
			s.pause()
		}
		if choice == 0 || s.in.done {
			break
		}
	}

	if ctx.Err() != nil {
		s.logger.Info("Session interrupted")
		fmt.Fprintln(out, "\n\nInterrupted.")
	}
	fmt.Fprintln(out, "\nSaving all data...")
	err := s.SaveAll(ctx)
	if err == nil {
		fmt.Fprintln(out, "All data saved successfully!")
	}
	fmt.Fprintln(out, "Thank you for using Gym Management System. Goodbye!")
	s.logger.Info("Session ended", "save_error", err)
	return err
}

func (s *Session) pause() {
	if s.skipPause || s.in.done {
		return
	}
	s.in.line("\nPress Enter to continue...")
}

func header(w io.Writer, title string) {
	fmt.Fprintln(w, "\n===========================")
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, "===========================")
}

func separator(w io.Writer) {
	fmt.Fprintln(w, "===========================")
}
