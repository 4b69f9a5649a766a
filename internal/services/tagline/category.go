package tagline

import (
	"strings"

	"github.com/KirkDiggler/rpg-item-converter/internal/entities/item"
)

var categoryTags = map[string]func(*item.Item){
	"wondrous item": func(it *item.Item) { it.Wondrous = true },
	"wondrous item (tattoo)": func(it *item.Item) {
		it.Wondrous = true
		it.Tattoo = true
	},
	"potion":      func(it *item.Item) { it.Type = item.TypePotion },
	"ring":        func(it *item.Item) { it.Type = item.TypeRing },
	"rod":         func(it *item.Item) { it.Type = item.TypeRod },
	"wand":        func(it *item.Item) { it.Type = item.TypeWand },
	"ammunition":  func(it *item.Item) { it.Type = item.TypeAmmunition },
	"staff":       func(it *item.Item) { it.Staff = true },
	"master rune": func(it *item.Item) { it.Type = item.TypeMasterRune },
	"scroll":      func(it *item.Item) { it.Type = item.TypeScroll },
}

func classifyCategory(st *state, segments []string, pos int) (int, bool, error) {
	tag, ok := categoryTags[strings.ToLower(segments[pos])]
	if !ok {
		return pos, false, nil
	}
	tag(st.draft)
	return pos + 1, true, nil
}
