package model

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/udisondev/sparsestats/internal/stats"
)

// ErrInvalidModifier is returned by Modifier.Validate.
var ErrInvalidModifier = errors.New("invalid modifier")

// Modifier is a ranged stat bonus on an item template, e.g. "adds 15 to 24
// local physical damage". Rolling it produces a fixed Affix.
type Modifier struct {
	Stat stats.Stat `yaml:"stat"`
	Min  int32      `yaml:"min"`
	Max  int32      `yaml:"max"`
}

// Validate checks the stat is declared and the range is not inverted.
func (m Modifier) Validate() error {
	if !m.Stat.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidModifier, m.Stat)
	}
	if m.Min > m.Max {
		return fmt.Errorf("%w: %s min %d > max %d", ErrInvalidModifier, m.Stat, m.Min, m.Max)
	}
	return nil
}

// Roll picks a value in [Min, Max].
func (m Modifier) Roll(r *rand.Rand) Affix {
	if m.Min == m.Max {
		return Affix{Stat: m.Stat, Value: m.Min}
	}
	span := int64(m.Max) - int64(m.Min) + 1
	return Affix{Stat: m.Stat, Value: int32(int64(m.Min) + r.Int64N(span))}
}

// Affix is a rolled stat contribution carried by an item.
type Affix struct {
	Stat  stats.Stat
	Value int32
}

// applyAffixes adds each affix value times sign to m.
func applyAffixes(m *stats.Map, affixes []Affix, sign int32) {
	for _, a := range affixes {
		m.Add(a.Stat, sign*a.Value)
	}
}
