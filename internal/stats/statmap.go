// Package stats accumulates signed stat contributions per character.
//
// A Map holds one int32 per Stat. Every source (item affix, passive, buff)
// adds its contribution with Add; a stat that was never added reads as zero.
// Percentage modifiers are stored as plain points (e.g. 20 for "20% increased")
// and turned into multipliers by the caller.
package stats

import (
	"fmt"
	"iter"

	"github.com/udisondev/sparsestats/internal/sparse"
)

// Capacity is the key space of a Map. It leaves room for stats added later
// without changing the sparse layout.
const Capacity = 2048

// Fails to compile if the declared stats outgrow Capacity.
const _ uint = Capacity - uint(NumStats)

// Map is a per-character stat accumulator. Not safe for concurrent use.
type Map struct {
	vec *sparse.Vec[Stat, int32]
}

// NewMap returns an empty Map; every stat reads as zero.
func NewMap() *Map {
	vec, err := sparse.New[Stat, int32](Capacity)
	if err != nil {
		panic(fmt.Sprintf("stats.NewMap: %v", err))
	}
	return &Map{vec: vec}
}

// NewSeededMap returns a Map with every declared stat present at zero, so
// DebugGetMut is valid for all of them.
func NewSeededMap() *Map {
	m := NewMap()
	m.Seed()
	return m
}

// Seed inserts a zero entry for every declared stat that is not present.
// Present values are kept.
func (m *Map) Seed() {
	for s := range NumStats {
		m.vec.Entry(s).OrInsert(0)
	}
}

// Get returns the accumulated value of stat, or 0 if it was never added.
func (m *Map) Get(stat Stat) int32 {
	v, _ := m.vec.Get(stat)
	return v
}

// Contains reports whether stat has an entry (including a zero one).
func (m *Map) Contains(stat Stat) bool {
	return m.vec.Contains(stat)
}

// Add accumulates delta into stat, creating the entry if absent.
// Overflow wraps around like any int32 addition, so the result does not
// depend on the order of Add calls.
func (m *Map) Add(stat Stat, delta int32) {
	m.vec.Entry(stat).
		AndModify(func(v *int32) { *v += delta }).
		OrInsert(delta)
}

// Reset removes stat; Get returns 0 for it afterwards.
func (m *Map) Reset(stat Stat) {
	m.vec.Remove(stat)
}

// ResetAll removes every stat.
func (m *Map) ResetAll() {
	m.vec.Clear()
}

// DebugGetMut returns a pointer to the value of a present stat, for editors
// that bind directly to a numeric field. It panics if stat has no entry; use
// NewSeededMap or Seed first. The pointer is invalidated by Add of a new
// stat, Reset, ResetAll and Sort.
func (m *Map) DebugGetMut(stat Stat) *int32 {
	p := m.vec.GetMut(stat)
	if p == nil {
		panic(fmt.Sprintf("stats.Map.DebugGetMut: %s has no entry", stat))
	}
	return p
}

// Len returns the number of stats with an entry.
func (m *Map) Len() int {
	return m.vec.Len()
}

// Merge adds every entry of other into m.
func (m *Map) Merge(other *Map) {
	for s, v := range other.vec.All() {
		m.Add(s, v)
	}
}

// Clone returns an independent copy of m.
func (m *Map) Clone() *Map {
	c := NewMap()
	for s, v := range m.vec.All() {
		c.vec.Insert(s, v)
	}
	return c
}

// Sort orders entries by stat declaration order, so All yields a stable listing.
func (m *Map) Sort() {
	m.vec.Sort()
}

// All iterates present entries. The order is insertion order unless Sort was called.
func (m *Map) All() iter.Seq2[Stat, int32] {
	return m.vec.All()
}
