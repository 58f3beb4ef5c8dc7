package models

const (
	// MaxMembers is the capacity of the member store.
	MaxMembers = 200

	// MaxUsernameLen bounds Member.Username.
	MaxUsernameLen = 49

	// MaxPasswordLen bounds Member.Password.
	MaxPasswordLen = 49

	// MaxMemberNameLen bounds Member.Name.
	MaxMemberNameLen = 99

	// NoPlan is the CurrentPlanID of a member without a subscription.
	NoPlan = -1
)

// Member represents a gym member account.
type Member struct {
	// ID is assigned by the member store.
	ID int

	// Username is unique among members. Uniqueness is checked when the
	// account is created and nowhere else.
	Username string

	// Password is stored as entered. The file format has no room for a hash.
	Password string

	// Name is the member's full name.
	Name string

	// CurrentPlanID is a soft reference to a Plan ID, or NoPlan.
	CurrentPlanID int
}

// RecordID returns the member ID.
func (m Member) RecordID() int { return m.ID }

// Subscribed reports whether the member has a current plan.
func (m Member) Subscribed() bool { return m.CurrentPlanID != NoPlan }
