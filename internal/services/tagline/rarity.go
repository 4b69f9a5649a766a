package tagline

import (
	"strings"

	"github.com/KirkDiggler/rpg-item-converter/internal/entities/item"
)

var literalRarities = map[string]item.Rarity{
	"common":    item.RarityCommon,
	"uncommon":  item.RarityUncommon,
	"rare":      item.RarityRare,
	"very rare": item.RarityVeryRare,
	"legendary": item.RarityLegendary,
	"artifact":  item.RarityArtifact,
}

// applyRarity sets the draft rarity when text is an exact rarity phrase
func applyRarity(st *state, text string) bool {
	text = strings.ToLower(strings.TrimSpace(text))

	if r, ok := literalRarities[text]; ok {
		st.draft.Rarity = r
		return true
	}

	switch text {
	case "rarity varies":
		st.draft.Rarity = item.RarityVaries
		st.result.ItemGroup = true
		return true
	case "unknown rarity":
		if looksMagic(st.draft) {
			st.draft.Rarity = item.RarityUnknownMagic
		} else {
			st.draft.Rarity = item.RarityUnknown
		}
		return true
	}

	return false
}

func looksMagic(draft *item.Item) bool {
	return draft.Wondrous || draft.Staff || draft.Type.IsMagic()
}

func classifyRarity(st *state, segments []string, pos int) (int, bool, error) {
	if !applyRarity(st, segments[pos]) {
		return pos, false, nil
	}
	return pos + 1, true, nil
}
