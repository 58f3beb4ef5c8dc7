package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmynk/gymdesk/internal/metrics"
	"github.com/mmynk/gymdesk/internal/service"
)

func (s *Session) memberSection(ctx context.Context) {
	for !s.in.done {
		header(s.out, "MEMBER LOGIN")
		fmt.Fprintln(s.out, "1 - Create New Account")
		fmt.Fprintln(s.out, "2 - Login")
		fmt.Fprintln(s.out, "3 - Back to Main Menu")
		separator(s.out)

		switch s.in.number("Your choice: ") {
		case 1:
			s.createAccount(ctx)
			s.pause()
		case 2:
			if id, ok := s.memberLogin(); ok {
				s.pause()
				s.memberMenu(ctx, id)
				// Subscriptions are saved as they happen; this catches the rest.
				s.SaveMembers(ctx)
			} else {
				s.pause()
			}
		case 3:
			return
		default:
			if s.in.done {
				return
			}
			fmt.Fprintln(s.out, "\nInvalid choice. Try again.")
			s.pause()
		}
	}
}

func (s *Session) createAccount(ctx context.Context) {
	header(s.out, "CREATE NEW ACCOUNT")
	if s.members.Full() {
		fmt.Fprintf(s.out, "\nError: Maximum number of members reached (%d).\n", s.members.Cap())
		return
	}
	var r service.Registration
	// Prompts stop at the first empty required field, as validation does.
	if r.Name = s.in.line("Enter Your Full Name: "); r.Name != "" {
		if r.Username = s.in.line("Enter Username: "); r.Username != "" {
			if _, err := s.Members.FindByUsername(r.Username); err != nil {
				if r.Password = s.in.line("Enter Password: "); r.Password != "" {
					r.ConfirmPassword = s.in.line("Confirm Password: ")
				}
			}
		}
	}

	if s.in.interrupted() {
		return
	}

	m, err := s.Members.Register(r)
	switch {
	case err == nil:
		s.metrics.Created(metrics.EntityMember)
		fmt.Fprintln(s.out, "\n[SUCCESS] Account created successfully!")
		fmt.Fprintf(s.out, "Your Member ID: %d\n", m.ID)
		fmt.Fprintln(s.out, "You can now login with your username and password.")
		s.SaveMembers(ctx)
	case errors.Is(err, service.ErrCapacityExceeded):
		fmt.Fprintf(s.out, "\nError: Maximum number of members reached (%d).\n", s.members.Cap())
	case errors.Is(err, service.ErrUsernameTaken):
		fmt.Fprintf(s.out, "\nError: Username '%s' already exists!\n", r.Username)
		fmt.Fprintln(s.out, "Please try again with a different username.")
	case errors.Is(err, service.ErrPasswordMismatch):
		fmt.Fprintln(s.out, "\nError: Passwords do not match!")
	default:
		fmt.Fprintf(s.out, "\nError: %v\n", err)
	}
}

func (s *Session) memberLogin() (int, bool) {
	header(s.out, "MEMBER LOGIN")
	username := s.in.line("Enter Username: ")
	if s.in.interrupted() {
		return 0, false
	}
	if _, err := s.Members.FindByUsername(username); err != nil {
		fmt.Fprintln(s.out, "\nError: Username not found!")
		fmt.Fprintln(s.out, "Please check your username or create a new account.")
		return 0, false
	}

	password := s.in.line("Enter Password: ")
	if s.in.interrupted() {
		return 0, false
	}
	m, err := s.Members.Authenticate(username, password)
	if err != nil {
		fmt.Fprintln(s.out, "\nError: Incorrect password!")
		return 0, false
	}

	fmt.Fprintf(s.out, "\n[SUCCESS] Login successful! Welcome %s!\n", m.Name)
	return m.ID, true
}

func (s *Session) memberMenu(ctx context.Context, memberID int) {
	for !s.in.done {
		header(s.out, "MEMBER MENU")
		fmt.Fprintln(s.out, "1 - View Available Plans")
		fmt.Fprintln(s.out, "2 - Subscribe to a Plan")
		fmt.Fprintln(s.out, "3 - View My Subscription")
		fmt.Fprintln(s.out, "4 - My Profile")
		fmt.Fprintln(s.out, "5 - Update Profile")
		fmt.Fprintln(s.out, "0 - Logout")
		separator(s.out)

		switch s.in.number("Your choice: ") {
		case 1:
			s.showPlans()
			s.pause()
		case 2:
			s.subscribe(ctx, memberID)
			s.pause()
		case 3:
			s.showSubscription(memberID)
			s.pause()
		case 4:
			s.showProfile(memberID)
			s.pause()
		case 5:
			s.updateProfile(ctx, memberID)
			s.pause()
		case 0:
			fmt.Fprintln(s.out, "\nLogging out...")
			return
		default:
			fmt.Fprintln(s.out, "\nInvalid choice. Please try again.")
			s.pause()
		}
	}
}

// subscribe checks the plan exists before handing off to the member
// service, which itself accepts any ID.
func (s *Session) subscribe(ctx context.Context, memberID int) {
	s.showPlans()
	planID := s.in.number("\nEnter Plan ID to subscribe (or 0 to cancel): ")
	if planID == 0 {
		return
	}
	if _, err := s.Plans.Get(planID); err != nil {
		fmt.Fprintln(s.out, "\nError: Invalid Plan ID!")
		return
	}

	_, err := s.Members.Subscribe(memberID, planID)
	switch {
	case err == nil:
		s.metrics.Modified(metrics.EntityMember)
		fmt.Fprintln(s.out, "\n[SUCCESS] Subscription successful!")
		fmt.Fprintf(s.out, "You are now subscribed to Plan ID: %d\n", planID)
		s.SaveMembers(ctx)
	case errors.Is(err, service.ErrAlreadySubscribed):
		fmt.Fprintln(s.out, "\nYou are already subscribed to this plan!")
	default:
		fmt.Fprintf(s.out, "\nError: %v\n", err)
	}
}

func (s *Session) showSubscription(memberID int) {
	header(s.out, "MY SUBSCRIPTION")
	m, err := s.Members.Get(memberID)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	if !m.Subscribed() {
		fmt.Fprintln(s.out, "You have no active subscription.")
		fmt.Fprintln(s.out, "Please subscribe to a plan to access gym facilities.")
		return
	}

	fmt.Fprintf(s.out, "Current Plan ID: %d\n", m.CurrentPlanID)
	fmt.Fprintln(s.out, "Status: Active")
	fmt.Fprintln(s.out, "Billing: Monthly")
	// The plan may have been deleted since; then there is nothing to show.
	if p, err := s.Plans.Get(m.CurrentPlanID); err == nil {
		fmt.Fprintln(s.out, "\nPlan Details:")
		printPlan(s.out, p)
	}
}

func (s *Session) showProfile(memberID int) {
	m, err := s.Members.Get(memberID)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	printProfile(s.out, m)
}

func (s *Session) updateProfile(ctx context.Context, memberID int) {
	header(s.out, "UPDATE PROFILE")
	var u service.MemberUpdate
	u.Name = s.in.line("New Full Name (or press Enter to keep current): ")
	u.Password = s.in.line("New Password (or press Enter to keep current): ")
	if u.Name == "" && u.Password == "" {
		fmt.Fprintln(s.out, "\nNothing changed.")
		return
	}

	if _, err := s.Members.Modify(memberID, u); err != nil {
		s.reportError(err)
		return
	}
	s.metrics.Modified(metrics.EntityMember)
	fmt.Fprintln(s.out, "\nProfile updated successfully!")
	s.SaveMembers(ctx)
}
