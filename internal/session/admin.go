package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmynk/gymdesk/internal/metrics"
	"github.com/mmynk/gymdesk/internal/service"
)

func (s *Session) adminSection(ctx context.Context) {
	header(s.out, "ADMIN LOGIN")
	username := s.in.line("Enter Admin Username: ")
	password := s.in.line("Enter Admin Password: ")
	if s.in.interrupted() {
		return
	}

	if err := s.admin.Authenticate(username, password); err != nil {
		s.logger.Warn("Admin login failed", "username", username)
		fmt.Fprintln(s.out, "\nError: Incorrect admin credentials!")
		s.pause()
		return
	}
	s.logger.Info("Admin logged in")
	fmt.Fprintln(s.out, "\n[SUCCESS] Login successful! Welcome Admin!")
	s.pause()

	s.adminMenu(ctx)
	s.SaveAll(ctx)
}

func (s *Session) adminMenu(ctx context.Context) {
	for !s.in.done {
		header(s.out, "ADMIN MENU")
		fmt.Fprintln(s.out, "1 - Manage Plans")
		fmt.Fprintln(s.out, "2 - Manage Equipment")
		fmt.Fprintln(s.out, "3 - Manage Members")
		fmt.Fprintln(s.out, "0 - Logout")
		separator(s.out)

		switch s.in.number("Your choice: ") {
		case 1:
			s.managePlans(ctx)
		case 2:
			s.manageEquipment(ctx)
		case 3:
			s.manageMembers(ctx)
		case 0:
			fmt.Fprintln(s.out, "\nLogging out...")
			return
		default:
			fmt.Fprintln(s.out, "\nInvalid choice. Try again.")
			s.pause()
		}
	}
}

func (s *Session) managePlans(ctx context.Context) {
	for !s.in.done {
		header(s.out, "PLAN MANAGEMENT")
		fmt.Fprintln(s.out, "1 - Add New Plan")
		fmt.Fprintln(s.out, "2 - View All Plans")
		fmt.Fprintln(s.out, "3 - Modify Plan")
		fmt.Fprintln(s.out, "4 - Delete Plan")
		fmt.Fprintln(s.out, "0 - Back to Admin Menu")
		separator(s.out)

		switch s.in.number("Your choice: ") {
		case 1:
			s.addPlan(ctx)
		case 2:
			s.showPlans()
		case 3:
			s.modifyPlan(ctx)
		case 4:
			s.deletePlan(ctx)
		case 0:
			return
		default:
			fmt.Fprintln(s.out, "\nInvalid choice. Try again.")
		}
		s.pause()
	}
}

func (s *Session) addPlan(ctx context.Context) {
	if s.plans.Full() {
		fmt.Fprintf(s.out, "\nError: Maximum number of plans reached (%d).\n", s.plans.Cap())
		return
	}
	fmt.Fprintln(s.out, "\n--- Add New Plan ---")
	name := s.in.line("Plan Name: ")
	price := s.in.decimal("Price (DT/month): ")
	desc := s.in.line("Description: ")

	p, err := s.Plans.Create(name, price, desc)
	if err != nil {
		s.reportError(err)
		return
	}
	s.metrics.Created(metrics.EntityPlan)
	fmt.Fprintf(s.out, "\nPlan added successfully! (ID: %d)\n", p.ID)
	s.SavePlans(ctx)
}

func (s *Session) modifyPlan(ctx context.Context) {
	s.showPlans()
	if s.plans.Len() == 0 {
		return
	}
	id := s.in.number("\nEnter Plan ID to modify: ")
	current, err := s.Plans.Get(id)
	if err != nil {
		fmt.Fprintf(s.out, "\nError: Plan with ID %d not found.\n", id)
		return
	}

	fmt.Fprintf(s.out, "\n--- Modify Plan (ID: %d) ---\n", id)
	fmt.Fprintln(s.out, "Current details:")
	printPlan(s.out, current)

	var u service.PlanUpdate
	u.Name = s.in.line("\nNew Plan Name (or press Enter to keep current): ")
	u.Price = s.in.decimal("New Price (or 0 to keep current): ")
	u.Description = s.in.line("New Description (or press Enter to keep current): ")

	if _, err := s.Plans.Modify(id, u); err != nil {
		s.reportError(err)
		return
	}
	s.metrics.Modified(metrics.EntityPlan)
	fmt.Fprintln(s.out, "\nPlan modified successfully!")
	s.SavePlans(ctx)
}

func (s *Session) deletePlan(ctx context.Context) {
	s.showPlans()
	if s.plans.Len() == 0 {
		return
	}
	id := s.in.number("\nEnter Plan ID to delete: ")
	removed, err := s.Plans.Delete(id)
	if err != nil {
		fmt.Fprintf(s.out, "\nError: Plan with ID %d not found.\n", id)
		return
	}
	s.metrics.Deleted(metrics.EntityPlan)
	fmt.Fprintf(s.out, "\nDeleting plan: %s\n", removed.Name)
	fmt.Fprintln(s.out, "Plan deleted successfully!")
	s.SavePlans(ctx)
}

func (s *Session) manageEquipment(ctx context.Context) {
	for !s.in.done {
		header(s.out, "EQUIPMENT MANAGEMENT")
		fmt.Fprintln(s.out, "1 - Add New Equipment")
		fmt.Fprintln(s.out, "2 - View All Equipment")
		fmt.Fprintln(s.out, "3 - Modify Equipment")
		fmt.Fprintln(s.out, "4 - Delete Equipment")
		fmt.Fprintln(s.out, "0 - Back to Admin Menu")
		separator(s.out)

		switch s.in.number("Your choice: ") {
		case 1:
			s.addEquipment(ctx)
		case 2:
			s.showEquipment()
		case 3:
			s.modifyEquipment(ctx)
		case 4:
			s.deleteEquipment(ctx)
		case 0:
			return
		default:
			fmt.Fprintln(s.out, "\nInvalid choice. Try again.")
		}
		s.pause()
	}
}

func (s *Session) addEquipment(ctx context.Context) {
	if s.equipment.Full() {
		fmt.Fprintf(s.out, "\nError: Maximum number of equipment reached (%d).\n", s.equipment.Cap())
		return
	}
	fmt.Fprintln(s.out, "\n--- Add New Equipment ---")
	name := s.in.line("Equipment Name: ")
	qty := s.in.number("Quantity: ")
	desc := s.in.line("Description: ")

	e, err := s.Equipment.Create(name, desc, qty)
	if err != nil {
		s.reportError(err)
		return
	}
	s.metrics.Created(metrics.EntityEquipment)
	fmt.Fprintf(s.out, "\nEquipment added successfully! (ID: %d)\n", e.ID)
	s.SaveEquipment(ctx)
}

func (s *Session) modifyEquipment(ctx context.Context) {
	s.showEquipment()
	if s.equipment.Len() == 0 {
		return
	}
	id := s.in.number("\nEnter Equipment ID to modify: ")
	current, err := s.Equipment.Get(id)
	if err != nil {
		fmt.Fprintf(s.out, "\nError: Equipment with ID %d not found.\n", id)
		return
	}

	fmt.Fprintf(s.out, "\n--- Modify Equipment (ID: %d) ---\n", id)
	fmt.Fprintln(s.out, "Current details:")
	printEquipment(s.out, current)

	var u service.EquipmentUpdate
	u.Name = s.in.line("\nNew Equipment Name (or press Enter to keep current): ")
	u.Quantity = s.in.number("New Quantity (or 0 to keep current): ")
	u.Description = s.in.line("New Description (or press Enter to keep current): ")

	if _, err := s.Equipment.Modify(id, u); err != nil {
		s.reportError(err)
		return
	}
	s.metrics.Modified(metrics.EntityEquipment)
	fmt.Fprintln(s.out, "\nEquipment modified successfully!")
	s.SaveEquipment(ctx)
}

func (s *Session) deleteEquipment(ctx context.Context) {
	s.showEquipment()
	if s.equipment.Len() == 0 {
		return
	}
	id := s.in.number("\nEnter Equipment ID to delete: ")
	removed, err := s.Equipment.Delete(id)
	if err != nil {
		fmt.Fprintf(s.out, "\nError: Equipment with ID %d not found.\n", id)
		return
	}
	s.metrics.Deleted(metrics.EntityEquipment)
	fmt.Fprintf(s.out, "\nDeleting equipment: %s\n", removed.Name)
	fmt.Fprintln(s.out, "Equipment deleted successfully!")
	s.SaveEquipment(ctx)
}

func (s *Session) manageMembers(ctx context.Context) {
	for !s.in.done {
		header(s.out, "MEMBER MANAGEMENT")
		fmt.Fprintln(s.out, "1 - View All Members")
		fmt.Fprintln(s.out, "2 - Search Member by Username")
		fmt.Fprintln(s.out, "3 - Delete Member")
		fmt.Fprintln(s.out, "0 - Back to Admin Menu")
		separator(s.out)

		switch s.in.number("Your choice: ") {
		case 1:
			s.showMembers()
		case 2:
			username := s.in.line("\nEnter username to search: ")
			m, err := s.Members.FindByUsername(username)
			if err != nil {
				fmt.Fprintln(s.out, "\nMember not found.")
			} else {
				fmt.Fprintln(s.out, "\n--- Member Found ---")
				printProfile(s.out, m)
			}
		case 3:
			s.deleteMember(ctx)
		case 0:
			return
		default:
			fmt.Fprintln(s.out, "\nInvalid choice. Try again.")
		}
		s.pause()
	}
}

func (s *Session) deleteMember(ctx context.Context) {
	if s.members.Len() == 0 {
		fmt.Fprintln(s.out, "\nNo members to delete.")
		return
	}
	username := s.in.line("\nEnter username to delete: ")
	removed, err := s.Members.DeleteByUsername(username)
	if err != nil {
		fmt.Fprintln(s.out, "\nMember not found.")
		return
	}
	s.metrics.Deleted(metrics.EntityMember)
	fmt.Fprintf(s.out, "\nDeleting member: %s (%s)\n", removed.Name, removed.Username)
	fmt.Fprintln(s.out, "Member deleted successfully!")
	s.SaveMembers(ctx)
}

func (s *Session) reportError(err error) {
	switch {
	case errors.Is(err, service.ErrCapacityExceeded):
		fmt.Fprintf(s.out, "\nError: Store is full: %v\n", err)
	case errors.Is(err, service.ErrNotFound):
		fmt.Fprintf(s.out, "\nError: Not found: %v\n", err)
	default:
		fmt.Fprintf(s.out, "\nError: %v\n", err)
	}
}
