package session

import (
	"fmt"
	"io"

	"github.com/mmynk/gymdesk/internal/models"
)

func printPlan(w io.Writer, p models.Plan) {
	fmt.Fprintf(w, "ID: %d | %s | %.2f DT/month\n", p.ID, p.Name, p.Price)
	fmt.Fprintf(w, "Description: %s\n", p.Description)
}

func printEquipment(w io.Writer, e models.Equipment) {
	fmt.Fprintf(w, "ID: %d | %s | Quantity: %d\n", e.ID, e.Name, e.Quantity)
	fmt.Fprintf(w, "Description: %s\n", e.Description)
}

func printProfile(w io.Writer, m models.Member) {
	header(w, "MY PROFILE")
	fmt.Fprintf(w, "Member ID: %d\n", m.ID)
	fmt.Fprintf(w, "Name: %s\n", m.Name)
	fmt.Fprintf(w, "Username: %s\n", m.Username)
	if m.Subscribed() {
		fmt.Fprintf(w, "Current Subscription: Plan ID %d\n", m.CurrentPlanID)
	} else {
		fmt.Fprintln(w, "Current Subscription: None")
	}
}

// PrintPlans lists plans with their position in the store.
func PrintPlans(w io.Writer, plans []models.Plan) {
	if len(plans) == 0 {
		fmt.Fprintln(w, "\nNo plans available.")
		return
	}
	fmt.Fprintln(w, "\n--- Available Plans ---")
	for i, p := range plans {
		fmt.Fprintf(w, "\nPlan %d:\n", i+1)
		printPlan(w, p)
	}
}

// PrintEquipment lists equipment with its position in the store.
func PrintEquipment(w io.Writer, equipment []models.Equipment) {
	if len(equipment) == 0 {
		fmt.Fprintln(w, "\nNo equipment available.")
		return
	}
	fmt.Fprintln(w, "\n--- Equipment List ---")
	for i, e := range equipment {
		fmt.Fprintf(w, "\nEquipment %d:\n", i+1)
		printEquipment(w, e)
	}
}

// PrintMembers lists members without their passwords.
func PrintMembers(w io.Writer, members []models.Member) {
	if len(members) == 0 {
		fmt.Fprintln(w, "\nNo members registered.")
		return
	}
	fmt.Fprintln(w, "\n--- All Members ---")
	fmt.Fprintf(w, "Total Members: %d\n", len(members))
	for i, m := range members {
		fmt.Fprintf(w, "\nMember %d:\n", i+1)
		fmt.Fprintf(w, "  ID: %d\n", m.ID)
		fmt.Fprintf(w, "  Name: %s\n", m.Name)
		fmt.Fprintf(w, "  Username: %s\n", m.Username)
		if m.Subscribed() {
			fmt.Fprintf(w, "  Subscription: Plan ID %d\n", m.CurrentPlanID)
		} else {
			fmt.Fprintln(w, "  Subscription: None")
		}
	}
}

func (s *Session) showPlans()     { PrintPlans(s.out, s.Plans.List()) }
func (s *Session) showEquipment() { PrintEquipment(s.out, s.Equipment.List()) }
func (s *Session) showMembers()   { PrintMembers(s.out, s.Members.List()) }
