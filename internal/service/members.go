package service

import (
	"fmt"
	"log/slog"

	"github.com/mmynk/gymdesk/internal/models"
	"github.com/mmynk/gymdesk/internal/records"
)

// Registration is the input for creating a member account.
type Registration struct {
	Name            string
	Username        string
	Password        string
	ConfirmPassword string
}

// MemberUpdate carries a partial profile modification. Empty strings leave
// the current value in place. Usernames cannot be changed.
type MemberUpdate struct {
	Name     string
	Password string
}

// MemberService manages member accounts and their subscriptions.
type MemberService struct {
	members *records.Store[models.Member]
	logger  *slog.Logger
}

// NewMemberService creates a MemberService over the given store.
func NewMemberService(members *records.Store[models.Member], logger *slog.Logger) *MemberService {
	if logger == nil {
		logger = slog.Default()
	}
	return &MemberService{members: members, logger: logger}
}

// List returns all members in store order.
func (s *MemberService) List() []models.Member {
	return s.members.All()
}

// Get returns the member with the given ID.
func (s *MemberService) Get(id int) (models.Member, error) {
	m, err := s.members.Get(id)
	if err != nil {
		return m, notFound("member", id)
	}
	return m, nil
}

// FindByUsername returns the member with exactly this username. The match
// is case-sensitive.
func (s *MemberService) FindByUsername(username string) (models.Member, error) {
	i, err := s.indexOf(username)
	if err != nil {
		return models.Member{}, err
	}
	return s.members.At(i)
}

// Register creates a member account with no subscription.
//
// Checks run in this order: capacity, name, username, username taken,
// password, confirmation. The first failure is returned.
func (s *MemberService) Register(r Registration) (models.Member, error) {
	s.logger.Info("Register request", "username", r.Username)

	if s.members.Full() {
		s.logger.Warn("Register refused, store full", "capacity", s.members.Cap())
		return models.Member{}, fmt.Errorf("member: %w", ErrCapacityExceeded)
	}

	m := models.Member{
		ID:            s.members.NextID(),
		Name:          models.Clip(r.Name, models.MaxMemberNameLen),
		Username:      models.Clip(r.Username, models.MaxUsernameLen),
		Password:      models.Clip(r.Password, models.MaxPasswordLen),
		CurrentPlanID: models.NoPlan,
	}
	if m.Name == "" {
		return models.Member{}, emptyField("name")
	}
	if m.Username == "" {
		return models.Member{}, emptyField("username")
	}
	if _, err := s.indexOf(m.Username); err == nil {
		s.logger.Warn("Register refused, username taken", "username", m.Username)
		return models.Member{}, fmt.Errorf("%q: %w", m.Username, ErrUsernameTaken)
	}
	if m.Password == "" {
		return models.Member{}, emptyField("password")
	}
	if m.Password != models.Clip(r.ConfirmPassword, models.MaxPasswordLen) {
		return models.Member{}, ErrPasswordMismatch
	}

	if err := s.members.Append(m); err != nil {
		return models.Member{}, fmt.Errorf("member: %w", err)
	}

	s.logger.Info("Member registered", "member_id", m.ID, "username", m.Username)
	return m, nil
}

// Authenticate checks a username and password against the stored values.
// An unknown username yields ErrNotFound, a wrong password
// ErrInvalidCredentials.
func (s *MemberService) Authenticate(username, password string) (models.Member, error) {
	m, err := s.FindByUsername(username)
	if err != nil {
		s.logger.Warn("Login failed, unknown username", "username", username)
		return models.Member{}, err
	}
	if m.Password != password {
		s.logger.Warn("Login failed, wrong password", "username", username)
		return models.Member{}, ErrInvalidCredentials
	}

	s.logger.Info("Member logged in", "member_id", m.ID)
	return m, nil
}

// Modify applies u to the member with the given ID.
func (s *MemberService) Modify(id int, u MemberUpdate) (models.Member, error) {
	s.logger.Info("ModifyMember request", "member_id", id)

	i, err := s.members.FindByID(id)
	if err != nil {
		return models.Member{}, notFound("member", id)
	}

	m, err := s.members.UpdateAt(i, func(m *models.Member) {
		if u.Name != "" {
			m.Name = models.Clip(u.Name, models.MaxMemberNameLen)
		}
		if u.Password != "" {
			m.Password = models.Clip(u.Password, models.MaxPasswordLen)
		}
	})
	if err != nil {
		return models.Member{}, err
	}

	s.logger.Info("Member modified", "member_id", id)
	return m, nil
}

// Subscribe points the member at planID. The plan is not looked up; any ID
// is accepted except the one the member already has.
func (s *MemberService) Subscribe(memberID, planID int) (models.Member, error) {
	s.logger.Info("Subscribe request", "member_id", memberID, "plan_id", planID)

	i, err := s.members.FindByID(memberID)
	if err != nil {
		return models.Member{}, notFound("member", memberID)
	}
	current, err := s.members.At(i)
	if err != nil {
		return models.Member{}, err
	}
	if current.CurrentPlanID == planID {
		return current, ErrAlreadySubscribed
	}

	m, err := s.members.UpdateAt(i, func(m *models.Member) {
		m.CurrentPlanID = planID
	})
	if err != nil {
		return models.Member{}, err
	}

	s.logger.Info("Member subscribed", "member_id", memberID, "plan_id", planID)
	return m, nil
}

// Delete removes the member with the given ID.
func (s *MemberService) Delete(id int) (models.Member, error) {
	s.logger.Info("DeleteMember request", "member_id", id)

	i, err := s.members.FindByID(id)
	if err != nil {
		return models.Member{}, notFound("member", id)
	}
	return s.removeAt(i)
}

// DeleteByUsername removes the member with exactly this username.
func (s *MemberService) DeleteByUsername(username string) (models.Member, error) {
	s.logger.Info("DeleteMember request", "username", username)

	i, err := s.indexOf(username)
	if err != nil {
		return models.Member{}, err
	}
	return s.removeAt(i)
}

func (s *MemberService) removeAt(i int) (models.Member, error) {
	removed, err := s.members.RemoveAt(i)
	if err != nil {
		return models.Member{}, err
	}
	s.logger.Info("Member deleted", "member_id", removed.ID, "username", removed.Username)
	return removed, nil
}

func (s *MemberService) indexOf(username string) (int, error) {
	i, err := s.members.Find(func(m models.Member) bool {
		return m.Username == username
	})
	if err != nil {
		return -1, fmt.Errorf("username %q: %w", username, ErrNotFound)
	}
	return i, nil
}
