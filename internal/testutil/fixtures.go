// Package testutil holds shared test fixtures and helpers.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Fixtures содержит готовые YAML документы для тестов загрузчиков.
var Fixtures = struct {
	// WeaponsCatalog defines two main-hand weapons.
	WeaponsCatalog string
	// JewelleryCatalog defines a ring and an amulet.
	JewelleryCatalog string
	// Statsheet is a config that equips one item from each catalog.
	Statsheet string
}{
	WeaponsCatalog: `items:
  - name: Rusted Sword
    slot: main_hand
    modifiers:
      - stat: PhysicalLocal
        min: 15
        max: 24
      - stat: CritChanceLocal
        min: 500
        max: 500
  - name: Driftwood Wand
    slot: main_hand
    modifiers:
      - stat: SpellInc
        min: 10
        max: 14
`,
	JewelleryCatalog: `items:
  - name: Iron Ring
    slot: left_ring
    modifiers:
      - stat: Accuracy
        min: 30
        max: 30
  - name: Coral Amulet
    slot: amulet
    modifiers:
      - stat: MaxHealth
        min: 20
        max: 30
`,
	Statsheet: `log_level: debug
seed: 42
equip:
  - Rusted Sword
  - Iron Ring
base:
  Accuracy: 50
  CritDamageBonus: 10
`,
}

// WriteFile writes content to dir/name and returns the full path.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing fixture %s: %v", path, err)
	}
	return path
}
