package model

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrInvalidItem is returned by ItemTemplate.Validate.
var ErrInvalidItem = errors.New("invalid item template")

// ItemTemplate — шаблон предмета из каталога.
// Rolling a template produces a concrete Item with fixed affix values.
type ItemTemplate struct {
	Name      string     `yaml:"name"`
	Slot      Slot       `yaml:"slot"`
	Modifiers []Modifier `yaml:"modifiers"`
}

// Validate checks name, slot and every modifier.
func (t *ItemTemplate) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidItem)
	}
	if t.Slot >= SlotCount {
		return fmt.Errorf("%w: %q: %s", ErrInvalidItem, t.Name, t.Slot)
	}
	for i, m := range t.Modifiers {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("%w: %q modifier %d: %w", ErrInvalidItem, t.Name, i, err)
		}
	}
	return nil
}

// Roll creates an item with every modifier rolled once.
func (t *ItemTemplate) Roll(r *rand.Rand) *Item {
	affixes := make([]Affix, len(t.Modifiers))
	for i, m := range t.Modifiers {
		affixes[i] = m.Roll(r)
	}
	return NewItem(t.Name, t.Slot, affixes)
}
