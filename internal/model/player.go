// Package model holds the player and equipment that feed a stats.Map.
package model

import (
	"github.com/udisondev/sparsestats/internal/stats"
)

// Base pools of a fresh character before any stat scaling.
const (
	BaseHealth       = 100
	BaseMana         = 100
	BaseEnergyShield = 100
)

// Player is a character with a stat accumulator and nine equipment slots.
//
// Player is owned by a single caller and is not safe for concurrent use.
type Player struct {
	health       int32
	mana         int32
	energyShield int32

	stats *stats.Map
	base  *stats.Map // contributions not tied to equipment (class, passives)

	equipment [SlotCount]*Item
}

// NewPlayer creates a player at full base pools with every stat seeded at zero.
func NewPlayer() *Player {
	return &Player{
		health:       BaseHealth,
		mana:         BaseMana,
		energyShield: BaseEnergyShield,
		stats:        stats.NewSeededMap(),
		base:         stats.NewMap(),
	}
}

// Stats returns the live stat map. Callers may Add to it directly; such
// contributions are dropped by Recalculate.
func (p *Player) Stats() *stats.Map {
	return p.stats
}

// Health returns current health.
func (p *Player) Health() int32 { return p.health }

// Mana returns current mana.
func (p *Player) Mana() int32 { return p.mana }

// EnergyShield returns current energy shield.
func (p *Player) EnergyShield() int32 { return p.energyShield }

// AddBase records a permanent contribution and applies it to the live stats.
func (p *Player) AddBase(stat stats.Stat, delta int32) {
	p.base.Add(stat, delta)
	p.stats.Add(stat, delta)
}

// Equip puts item into its slot and returns the item it replaced, if any.
// Stats are adjusted incrementally: the previous item's affixes are
// subtracted and the new item's added.
func (p *Player) Equip(item *Item) *Item {
	if item == nil {
		panic("Player.Equip: item cannot be nil")
	}
	prev := p.Unequip(item.slot)
	p.equipment[item.slot] = item
	applyAffixes(p.stats, item.affixes, 1)
	return prev
}

// Unequip empties slot and returns the removed item, or nil if it was empty.
func (p *Player) Unequip(slot Slot) *Item {
	if slot >= SlotCount {
		return nil
	}
	item := p.equipment[slot]
	if item == nil {
		return nil
	}
	p.equipment[slot] = nil
	applyAffixes(p.stats, item.affixes, -1)
	return item
}

// Equipped returns the item in slot, or nil.
func (p *Player) Equipped(slot Slot) *Item {
	if slot >= SlotCount {
		return nil
	}
	return p.equipment[slot]
}

// Recalculate rebuilds the stat map from base contributions and equipment.
// Used after a respec or when the live map was edited by hand.
func (p *Player) Recalculate() {
	p.stats.ResetAll()
	p.stats.Seed()
	p.stats.Merge(p.base)
	for _, item := range p.equipment {
		if item != nil {
			applyAffixes(p.stats, item.affixes, 1)
		}
	}
}

// MaxHealth returns BaseHealth plus flat MaxHealth, scaled by MaxHealthInc.
func (p *Player) MaxHealth() int32 {
	return scaled(BaseHealth+p.stats.Get(stats.MaxHealth), p.stats.Get(stats.MaxHealthInc))
}

// MaxMana returns BaseMana plus flat MaxMana, scaled by MaxManaInc.
func (p *Player) MaxMana() int32 {
	return scaled(BaseMana+p.stats.Get(stats.MaxMana), p.stats.Get(stats.MaxManaInc))
}

// MaxEnergyShield returns BaseEnergyShield plus flat MaxEnergyShield, scaled by MaxEnergyShieldInc.
func (p *Player) MaxEnergyShield() int32 {
	return scaled(BaseEnergyShield+p.stats.Get(stats.MaxEnergyShield), p.stats.Get(stats.MaxEnergyShieldInc))
}

// scaled applies "inc" percent points to flat: flat * (100 + inc) / 100.
func scaled(flat, inc int32) int32 {
	return int32(int64(flat) * (100 + int64(inc)) / 100)
}
