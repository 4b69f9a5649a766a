package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-item-converter/internal/services/catalog"
)

// TestItemsBaseJSON is a small items-base document covering the weapon,
// armor and ammunition shapes the converter resolves against.
const TestItemsBaseJSON = `{
	"baseitem": [
		{"name": "Dagger", "source": "PHB", "page": 149, "srd": true, "type": "M", "rarity": "none",
			"weight": 1, "value": 200, "weaponCategory": "simple", "property": ["F", "L", "T"],
			"range": "20/60", "dmg1": "1d4", "dmgType": "P", "weapon": true, "dagger": true},
		{"name": "Shortsword", "source": "PHB", "page": 149, "srd": true, "type": "M", "rarity": "none",
			"weight": 2, "value": 1000, "weaponCategory": "martial", "property": ["F", "L"],
			"dmg1": "1d6", "dmgType": "P", "sword": true, "weapon": true},
		{"name": "Longsword", "source": "PHB", "page": 149, "srd": true, "type": "M", "rarity": "none",
			"weight": 3, "value": 1500, "weaponCategory": "martial", "property": ["V"],
			"dmg1": "1d8", "dmg2": "1d10", "dmgType": "S", "sword": true, "weapon": true},
		{"name": "Quarterstaff", "source": "PHB", "page": 149, "srd": true, "type": "M", "rarity": "none",
			"weight": 4, "value": 20, "weaponCategory": "simple", "property": ["V"],
			"dmg1": "1d6", "dmg2": "1d8", "dmgType": "B", "staff": true, "weapon": true},
		{"name": "Longbow", "source": "PHB", "page": 149, "srd": true, "type": "R", "rarity": "none",
			"weight": 2, "value": 5000, "weaponCategory": "martial", "property": ["A", "H", "2H"],
			"range": "150/600", "dmg1": "1d8", "dmgType": "P", "bow": true, "weapon": true},
		{"name": "Plate Armor", "source": "PHB", "page": 145, "srd": true, "type": "HA", "rarity": "none",
			"weight": 65, "value": 150000, "ac": 18, "strength": "15", "stealth": true, "armor": true},
		{"name": "Splint Armor", "source": "PHB", "page": 145, "srd": true, "type": "HA", "rarity": "none",
			"weight": 60, "value": 20000, "ac": 17, "strength": "15", "stealth": true, "armor": true},
		{"name": "Half Plate Armor", "source": "PHB", "page": 145, "srd": true, "type": "MA", "rarity": "none",
			"weight": 40, "value": 75000, "ac": 15, "stealth": true, "armor": true},
		{"name": "Leather Armor", "source": "PHB", "page": 144, "srd": true, "type": "LA", "rarity": "none",
			"weight": 10, "value": 1000, "ac": 11, "armor": true},
		{"name": "Studded Leather Armor", "source": "PHB", "page": 144, "srd": true, "type": "LA", "rarity": "none",
			"weight": 13, "value": 4500, "ac": 12, "armor": true},
		{"name": "Crossbow Bolt", "source": "PHB", "page": 150, "srd": true, "type": "A", "rarity": "none",
			"weight": 0.075, "value": 5, "crossbowBolt": true},
		{"name": "Trident", "source": "PHB", "page": 149, "srd": true, "type": "M", "rarity": "none",
			"weight": 4, "value": 500, "weaponCategory": "martial", "property": ["T", "V"],
			"dmg1": "1d6", "dmg2": "1d8", "dmgType": "P", "weapon": true, "_copy": {"name": "Spear"}},
		{"name": "Yklwa", "source": "ToA", "page": 32, "type": "M", "rarity": "none",
			"weight": 2, "value": 100, "weaponCategory": "simple", "property": ["T"],
			"dmg1": "1d8", "dmgType": "P", "weapon": true}
	]
}`

// TestClassesJSON lists the classes multi-class attunement clauses refer to
const TestClassesJSON = `{
	"class": [
		{"name": "Bard", "source": "PHB"},
		{"name": "Cleric", "source": "PHB"},
		{"name": "Druid", "source": "PHB"},
		{"name": "Paladin", "source": "PHB"},
		{"name": "Sorcerer", "source": "PHB"},
		{"name": "Warlock", "source": "PHB"},
		{"name": "Wizard", "source": "PHB"}
	]
}`

// CreateTestCatalogConfig parses the test documents into a catalog config
func CreateTestCatalogConfig(t *testing.T) *catalog.Config {
	baseItems, err := catalog.ParseBaseItems([]byte(TestItemsBaseJSON))
	require.NoError(t, err, "failed to parse test base items")

	classes, err := catalog.ParseClasses([]byte(TestClassesJSON))
	require.NoError(t, err, "failed to parse test classes")

	return &catalog.Config{
		BaseItems: baseItems,
		Classes:   classes,
	}
}

// CreateTestCatalog builds an index over the test documents
func CreateTestCatalog(t *testing.T) *catalog.Index {
	idx, err := catalog.New(CreateTestCatalogConfig(t))
	require.NoError(t, err, "failed to build test catalog")

	return idx
}
