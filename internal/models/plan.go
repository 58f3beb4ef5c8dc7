package models

const (
	// MaxPlans is the capacity of the plan store.
	MaxPlans = 50

	// MaxPlanNameLen bounds Plan.Name.
	MaxPlanNameLen = 49

	// MaxPlanDescriptionLen bounds Plan.Description.
	MaxPlanDescriptionLen = 99
)

// Plan represents a subscription plan (e.g., "Cardio only", "Full access").
type Plan struct {
	// ID is assigned by the plan store.
	ID int

	// Name is the display name of the plan.
	Name string

	// Price is the monthly price. No sign constraint is enforced.
	Price float64

	// Description is free text. On disk it runs to the end of the line,
	// so it is the one field that may safely contain the delimiter.
	Description string
}

// RecordID returns the plan ID.
func (p Plan) RecordID() int { return p.ID }
