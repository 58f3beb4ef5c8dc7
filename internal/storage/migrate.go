package storage

import (
	"context"
	"fmt"
)

// Counts reports how many records of each kind were copied.
type Counts struct {
	Plans     int
	Equipment int
	Members   int
}

// Copy loads every record set from src and saves it to dst, replacing what
// dst held. It stops at the first failure.
func Copy(ctx context.Context, src, dst Store) (Counts, error) {
	var c Counts

	plans, err := src.LoadPlans(ctx)
	if err != nil {
		return c, fmt.Errorf("failed to load plans: %w", err)
	}
	if err := dst.SavePlans(ctx, plans); err != nil {
		return c, fmt.Errorf("failed to save plans: %w", err)
	}
	c.Plans = len(plans)

	equipment, err := src.LoadEquipment(ctx)
	if err != nil {
		return c, fmt.Errorf("failed to load equipment: %w", err)
	}
	if err := dst.SaveEquipment(ctx, equipment); err != nil {
		return c, fmt.Errorf("failed to save equipment: %w", err)
	}
	c.Equipment = len(equipment)

	members, err := src.LoadMembers(ctx)
	if err != nil {
		return c, fmt.Errorf("failed to load members: %w", err)
	}
	if err := dst.SaveMembers(ctx, members); err != nil {
		return c, fmt.Errorf("failed to save members: %w", err)
	}
	c.Members = len(members)

	return c, nil
}
