package service

import (
	"fmt"
	"log/slog"

	"github.com/mmynk/gymdesk/internal/models"
	"github.com/mmynk/gymdesk/internal/records"
)

// EquipmentUpdate carries a partial equipment modification. Empty strings
// and a non-positive quantity leave the current value in place.
type EquipmentUpdate struct {
	Name        string
	Description string
	Quantity    int
}

// EquipmentService manages the equipment inventory.
type EquipmentService struct {
	equipment *records.Store[models.Equipment]
	logger    *slog.Logger
}

// NewEquipmentService creates an EquipmentService over the given store.
func NewEquipmentService(equipment *records.Store[models.Equipment], logger *slog.Logger) *EquipmentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &EquipmentService{equipment: equipment, logger: logger}
}

// List returns all equipment in store order.
func (s *EquipmentService) List() []models.Equipment {
	return s.equipment.All()
}

// Get returns the equipment with the given ID.
func (s *EquipmentService) Get(id int) (models.Equipment, error) {
	e, err := s.equipment.Get(id)
	if err != nil {
		return e, notFound("equipment", id)
	}
	return e, nil
}

// Create adds an equipment line with the next free ID.
func (s *EquipmentService) Create(name, description string, quantity int) (models.Equipment, error) {
	s.logger.Info("CreateEquipment request", "name", name, "quantity", quantity)

	if s.equipment.Full() {
		s.logger.Warn("CreateEquipment refused, store full", "capacity", s.equipment.Cap())
		return models.Equipment{}, fmt.Errorf("equipment: %w", ErrCapacityExceeded)
	}

	eq := models.Equipment{
		ID:          s.equipment.NextID(),
		Name:        models.Clip(name, models.MaxEquipmentNameLen),
		Description: models.Clip(description, models.MaxEquipmentDescriptionLen),
		Quantity:    quantity,
	}
	if eq.Name == "" {
		return models.Equipment{}, emptyField("name")
	}
	if eq.Description == "" {
		return models.Equipment{}, emptyField("description")
	}

	if err := s.equipment.Append(eq); err != nil {
		return models.Equipment{}, fmt.Errorf("equipment: %w", err)
	}

	s.logger.Info("Equipment created", "equipment_id", eq.ID)
	return eq, nil
}

// Modify applies u to the equipment with the given ID.
func (s *EquipmentService) Modify(id int, u EquipmentUpdate) (models.Equipment, error) {
	s.logger.Info("ModifyEquipment request", "equipment_id", id)

	i, err := s.equipment.FindByID(id)
	if err != nil {
		return models.Equipment{}, notFound("equipment", id)
	}

	eq, err := s.equipment.UpdateAt(i, func(e *models.Equipment) {
		if u.Name != "" {
			e.Name = models.Clip(u.Name, models.MaxEquipmentNameLen)
		}
		if u.Quantity > 0 {
			e.Quantity = u.Quantity
		}
		if u.Description != "" {
			e.Description = models.Clip(u.Description, models.MaxEquipmentDescriptionLen)
		}
	})
	if err != nil {
		return models.Equipment{}, err
	}

	s.logger.Info("Equipment modified", "equipment_id", id)
	return eq, nil
}

// Delete removes the equipment with the given ID.
func (s *EquipmentService) Delete(id int) (models.Equipment, error) {
	s.logger.Info("DeleteEquipment request", "equipment_id", id)

	i, err := s.equipment.FindByID(id)
	if err != nil {
		return models.Equipment{}, notFound("equipment", id)
	}
	removed, err := s.equipment.RemoveAt(i)
	if err != nil {
		return models.Equipment{}, err
	}

	s.logger.Info("Equipment deleted", "equipment_id", id, "name", removed.Name)
	return removed, nil
}
