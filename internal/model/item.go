package model

import "slices"

// Item — конкретный предмет с зафиксированными значениями аффиксов.
type Item struct {
	name    string
	slot    Slot
	affixes []Affix
}

// NewItem creates an item. affixes is copied.
func NewItem(name string, slot Slot, affixes []Affix) *Item {
	if slot >= SlotCount {
		panic("NewItem: slot out of range")
	}
	return &Item{
		name:    name,
		slot:    slot,
		affixes: slices.Clone(affixes),
	}
}

// Name returns the item name.
func (i *Item) Name() string {
	return i.name
}

// Slot returns the equipment slot the item occupies.
func (i *Item) Slot() Slot {
	return i.slot
}

// Affixes returns a copy of the rolled affixes.
func (i *Item) Affixes() []Affix {
	return slices.Clone(i.affixes)
}
