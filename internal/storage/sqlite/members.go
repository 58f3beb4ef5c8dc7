package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/gymdesk/internal/models"
)

// LoadMembers returns the stored members in store order.
func (s *SQLiteStore) LoadMembers(ctx context.Context) ([]models.Member, error) {
	query := `
		SELECT id, username, password, name, current_plan_id
		FROM members
		ORDER BY position
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, models.MaxMembers)
	if err != nil {
		return nil, fmt.Errorf("failed to query members: %w", err)
	}
	defer rows.Close()

	var members []models.Member
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(
			&m.ID,
			&m.Username,
			&m.Password,
			&m.Name,
			&m.CurrentPlanID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating members: %w", err)
	}

	s.logger.Info("Loaded records", "kind", "member", "count", len(members))
	return members, nil
}

// SaveMembers replaces the stored members.
func (s *SQLiteStore) SaveMembers(ctx context.Context, members []models.Member) error {
	query := `
		INSERT INTO members (position, id, username, password, name, current_plan_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	err := s.replace(ctx, "members", len(members), func(tx *sql.Tx) error {
		for i, m := range members {
			if _, err := tx.ExecContext(ctx, query,
				i,
				m.ID,
				m.Username,
				m.Password,
				m.Name,
				m.CurrentPlanID,
			); err != nil {
				return fmt.Errorf("failed to insert member %d: %w", m.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.Info("Saved records", "kind", "member", "count", len(members))
	return nil
}
