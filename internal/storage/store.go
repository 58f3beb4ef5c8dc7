// Package storage provides abstractions for persisting the record stores.
package storage

import (
	"context"

	"github.com/mmynk/gymdesk/internal/models"
)

// Store defines how the three record stores are loaded and saved.
// This abstraction allows swapping between flat files and SQLite without
// changing the session layer.
//
// Loads never fail on missing or damaged data: they return whatever could
// be read, possibly nothing. An error means the backend itself is unusable.
// Saves replace the persisted contents with the given records in order.
type Store interface {
	LoadPlans(ctx context.Context) ([]models.Plan, error)
	SavePlans(ctx context.Context, plans []models.Plan) error

	LoadEquipment(ctx context.Context) ([]models.Equipment, error)
	SaveEquipment(ctx context.Context, equipment []models.Equipment) error

	LoadMembers(ctx context.Context) ([]models.Member, error)
	SaveMembers(ctx context.Context, members []models.Member) error

	// Close releases any resources held by the store.
	Close() error
}
