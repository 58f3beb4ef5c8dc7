package models

const (
	// MaxEquipment is the capacity of the equipment store.
	MaxEquipment = 100

	// MaxEquipmentNameLen bounds Equipment.Name.
	MaxEquipmentNameLen = 49

	// MaxEquipmentDescriptionLen bounds Equipment.Description.
	MaxEquipmentDescriptionLen = 99
)

// Equipment represents one inventory line of gym equipment.
type Equipment struct {
	ID          int
	Name        string
	Description string
	Quantity    int
}

// RecordID returns the equipment ID.
func (e Equipment) RecordID() int { return e.ID }
