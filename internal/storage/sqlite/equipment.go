package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/gymdesk/internal/models"
)

// LoadEquipment returns the stored equipment in store order.
func (s *SQLiteStore) LoadEquipment(ctx context.Context) ([]models.Equipment, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, description, quantity FROM equipment ORDER BY position LIMIT ?",
		models.MaxEquipment,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query equipment: %w", err)
	}
	defer rows.Close()

	var equipment []models.Equipment
	for rows.Next() {
		var e models.Equipment
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan equipment: %w", err)
		}
		equipment = append(equipment, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate equipment: %w", err)
	}

	s.logger.Info("Loaded records", "kind", "equipment", "count", len(equipment))
	return equipment, nil
}

// SaveEquipment replaces the stored equipment.
func (s *SQLiteStore) SaveEquipment(ctx context.Context, equipment []models.Equipment) error {
	err := s.replace(ctx, "equipment", len(equipment), func(tx *sql.Tx) error {
		for i, e := range equipment {
			_, err := tx.ExecContext(ctx,
				"INSERT INTO equipment (position, id, name, description, quantity) VALUES (?, ?, ?, ?, ?)",
				i, e.ID, e.Name, e.Description, e.Quantity,
			)
			if err != nil {
				return fmt.Errorf("failed to insert equipment %d: %w", e.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.Info("Saved records", "kind", "equipment", "count", len(equipment))
	return nil
}
