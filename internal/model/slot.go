package model

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Slot — слот экипировки персонажа.
type Slot uint8

const (
	SlotMainHand Slot = iota
	SlotOffHand
	SlotHelmet
	SlotBodyArmour
	SlotGloves
	SlotBoots
	SlotLeftRing
	SlotRightRing
	SlotAmulet

	// SlotCount is the number of equipment slots.
	SlotCount
)

var slotNames = [SlotCount]string{
	SlotMainHand:   "main_hand",
	SlotOffHand:    "off_hand",
	SlotHelmet:     "helmet",
	SlotBodyArmour: "body_armour",
	SlotGloves:     "gloves",
	SlotBoots:      "boots",
	SlotLeftRing:   "left_ring",
	SlotRightRing:  "right_ring",
	SlotAmulet:     "amulet",
}

// ErrUnknownSlot is returned when a name does not match any slot.
var ErrUnknownSlot = errors.New("unknown equipment slot")

// String returns the config name of the slot, e.g. "main_hand".
func (s Slot) String() string {
	if s >= SlotCount {
		return fmt.Sprintf("Slot(%d)", uint8(s))
	}
	return slotNames[s]
}

// ParseSlot returns the slot with the given config name.
func ParseSlot(name string) (Slot, error) {
	for i, n := range slotNames {
		if n == name {
			return Slot(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSlot, name)
}

// UnmarshalYAML decodes a slot name.
func (s *Slot) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseSlot(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*s = parsed
	return nil
}
