package flatfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mmynk/gymdesk/internal/models"
)

// PlanCodec handles id|name|price|description. The description runs to
// the end of the line, so it may contain the delimiter.
var PlanCodec = Codec[models.Plan]{
	Kind:     "plan",
	Capacity: models.MaxPlans,
	encode: func(p models.Plan) string {
		return fmt.Sprintf("%d|%s|%.2f|%s", p.ID, p.Name, p.Price, p.Description)
	},
	decode: func(line string) (models.Plan, error) {
		var p models.Plan
		fields := strings.SplitN(line, Delimiter, 4)
		if len(fields) != 4 {
			return p, fmt.Errorf("expected 4 fields, got %d", len(fields))
		}

		var err error
		if p.ID, err = parseInt(fields[0], "id"); err != nil {
			return p, err
		}
		if p.Name, err = parseText(fields[1], "name", models.MaxPlanNameLen); err != nil {
			return p, err
		}
		if p.Price, err = strconv.ParseFloat(strings.TrimSpace(fields[2]), 64); err != nil {
			return p, fmt.Errorf("invalid price %q", fields[2])
		}
		if p.Description, err = parseText(fields[3], "description", models.MaxPlanDescriptionLen); err != nil {
			return p, err
		}
		return p, nil
	},
}

// EquipmentCodec handles id|name|description|quantity.
var EquipmentCodec = Codec[models.Equipment]{
	Kind:     "equipment",
	Capacity: models.MaxEquipment,
	encode: func(e models.Equipment) string {
		return fmt.Sprintf("%d|%s|%s|%d", e.ID, e.Name, e.Description, e.Quantity)
	},
	decode: func(line string) (models.Equipment, error) {
		var e models.Equipment
		fields, err := splitFields(line, 4)
		if err != nil {
			return e, err
		}
		if e.ID, err = parseInt(fields[0], "id"); err != nil {
			return e, err
		}
		if e.Name, err = parseText(fields[1], "name", models.MaxEquipmentNameLen); err != nil {
			return e, err
		}
		if e.Description, err = parseText(fields[2], "description", models.MaxEquipmentDescriptionLen); err != nil {
			return e, err
		}
		if e.Quantity, err = parseInt(fields[3], "quantity"); err != nil {
			return e, err
		}
		return e, nil
	},
}

// MemberCodec handles id|username|password|name|current_plan_id.
var MemberCodec = Codec[models.Member]{
	Kind:     "member",
	Capacity: models.MaxMembers,
	encode: func(m models.Member) string {
		return fmt.Sprintf("%d|%s|%s|%s|%d", m.ID, m.Username, m.Password, m.Name, m.CurrentPlanID)
	},
	decode: func(line string) (models.Member, error) {
		var m models.Member
		fields, err := splitFields(line, 5)
		if err != nil {
			return m, err
		}
		if m.ID, err = parseInt(fields[0], "id"); err != nil {
			return m, err
		}
		if m.Username, err = parseText(fields[1], "username", models.MaxUsernameLen); err != nil {
			return m, err
		}
		if m.Password, err = parseText(fields[2], "password", models.MaxPasswordLen); err != nil {
			return m, err
		}
		if m.Name, err = parseText(fields[3], "name", models.MaxMemberNameLen); err != nil {
			return m, err
		}
		if m.CurrentPlanID, err = parseInt(fields[4], "current plan id"); err != nil {
			return m, err
		}
		return m, nil
	},
}
