package stats

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Stat identifies a numeric character attribute.
// The ordinal is the declaration position and is used directly as a sparse key,
// so new stats go at the end of the list.
type Stat uint16

const (
	MaxHealth Stat = iota // at 0 health you are dead
	MaxHealthInc

	MaxMana // drained over a skill's action time according to its cost
	MaxManaInc

	MaxEnergyShield // absorbs damage before health; chaos bypasses it
	MaxEnergyShieldInc

	MaxSpirit // reserved by persistent skills

	Evasion // chance to avoid attacks and spell projectiles
	EvasionInc

	Armour // reduces physical damage taken
	ArmourInc

	Accuracy // chance to hit, compared against enemy evasion
	AccuracyInc

	LightningResist
	ColdResist
	FireResist
	ChaosResist

	// Crit chance is in hundredths of a percent; a crit multiplies damage by 100+CritDamageBonus.
	CritChance
	CritChanceInc
	CritChanceLocal
	CritChanceLocalInc
	CritDamageBonus

	ActionSpeed // scales everything the character does
	MoveSpeed
	SkillSpeed
	AttackSpeed
	SpellSpeed
	TrapThrowingSpeed

	ExpireSpeed // time based effects
	Cooldown

	DamageInc // generic damage, scales every damage type

	// Damage types.
	Physical
	PhysicalInc
	PhysicalLocal
	PhysicalLocalInc

	Lightning
	LightningInc

	Cold
	ColdInc

	Fire
	FireInc

	Chaos
	ChaosInc

	// Damage sources.
	AttackInc
	SpellInc
	DamageOverTimeInc

	StunChance
	StunThreshold

	// Ailments.
	BleedInc
	BleedChance

	ShockInc
	ShockChance

	ChillInc
	ChillChance

	FreezeInc
	FreezeChance

	IgniteInc
	IgniteChance

	PoisonInc
	PoisonChance

	// Debuffs.
	IntimidateChance // 20% increased attack damage taken
	UnnerveChance    // 20% increased spell damage taken

	MaimChance   // 20% reduced movement speed, attacks only
	HinderChance // 20% reduced movement speed, spells only

	BlindChance // 20% less evasion and accuracy

	// NumStats is the number of declared stats. Not a stat itself.
	NumStats
)

var statNames = [NumStats]string{
	MaxHealth:          "MaxHealth",
	MaxHealthInc:       "MaxHealthInc",
	MaxMana:            "MaxMana",
	MaxManaInc:         "MaxManaInc",
	MaxEnergyShield:    "MaxEnergyShield",
	MaxEnergyShieldInc: "MaxEnergyShieldInc",
	MaxSpirit:          "MaxSpirit",
	Evasion:            "Evasion",
	EvasionInc:         "EvasionInc",
	Armour:             "Armour",
	ArmourInc:          "ArmourInc",
	Accuracy:           "Accuracy",
	AccuracyInc:        "AccuracyInc",
	LightningResist:    "LightningResist",
	ColdResist:         "ColdResist",
	FireResist:         "FireResist",
	ChaosResist:        "ChaosResist",
	CritChance:         "CritChance",
	CritChanceInc:      "CritChanceInc",
	CritChanceLocal:    "CritChanceLocal",
	CritChanceLocalInc: "CritChanceLocalInc",
	CritDamageBonus:    "CritDamageBonus",
	ActionSpeed:        "ActionSpeed",
	MoveSpeed:          "MoveSpeed",
	SkillSpeed:         "SkillSpeed",
	AttackSpeed:        "AttackSpeed",
	SpellSpeed:         "SpellSpeed",
	TrapThrowingSpeed:  "TrapThrowingSpeed",
	ExpireSpeed:        "ExpireSpeed",
	Cooldown:           "Cooldown",
	DamageInc:          "DamageInc",
	Physical:           "Physical",
	PhysicalInc:        "PhysicalInc",
	PhysicalLocal:      "PhysicalLocal",
	PhysicalLocalInc:   "PhysicalLocalInc",
	Lightning:          "Lightning",
	LightningInc:       "LightningInc",
	Cold:               "Cold",
	ColdInc:            "ColdInc",
	Fire:               "Fire",
	FireInc:            "FireInc",
	Chaos:              "Chaos",
	ChaosInc:           "ChaosInc",
	AttackInc:          "AttackInc",
	SpellInc:           "SpellInc",
	DamageOverTimeInc:  "DamageOverTimeInc",
	StunChance:         "StunChance",
	StunThreshold:      "StunThreshold",
	BleedInc:           "BleedInc",
	BleedChance:        "BleedChance",
	ShockInc:           "ShockInc",
	ShockChance:        "ShockChance",
	ChillInc:           "ChillInc",
	ChillChance:        "ChillChance",
	FreezeInc:          "FreezeInc",
	FreezeChance:       "FreezeChance",
	IgniteInc:          "IgniteInc",
	IgniteChance:       "IgniteChance",
	PoisonInc:          "PoisonInc",
	PoisonChance:       "PoisonChance",
	IntimidateChance:   "IntimidateChance",
	UnnerveChance:      "UnnerveChance",
	MaimChance:         "MaimChance",
	HinderChance:       "HinderChance",
	BlindChance:        "BlindChance",
}

// statByName — обратный индекс для ParseStat.
var statByName = func() map[string]Stat {
	m := make(map[string]Stat, NumStats)
	for i, name := range statNames {
		m[name] = Stat(i)
	}
	return m
}()

// ErrUnknownStat is returned when a name does not match any stat.
var ErrUnknownStat = errors.New("unknown stat")

// AllStats returns every stat in declaration order.
func AllStats() []Stat {
	all := make([]Stat, NumStats)
	for i := range all {
		all[i] = Stat(i)
	}
	return all
}

// Valid reports whether s is a declared stat.
func (s Stat) Valid() bool {
	return s < NumStats
}

// String returns the stat name, e.g. "CritChanceInc".
func (s Stat) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Stat(%d)", uint16(s))
	}
	return statNames[s]
}

// ParseStat returns the stat with the given name. Names are case-sensitive.
func ParseStat(name string) (Stat, error) {
	s, ok := statByName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownStat, name)
	}
	return s, nil
}

// MarshalYAML encodes the stat by name.
func (s Stat) MarshalYAML() (any, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStat, uint16(s))
	}
	return s.String(), nil
}

// UnmarshalYAML decodes a stat name.
func (s *Stat) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: stat must be a scalar name", node.Line)
	}
	parsed, err := ParseStat(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*s = parsed
	return nil
}
