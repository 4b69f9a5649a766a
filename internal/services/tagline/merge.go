package tagline

import (
	"strings"

	"github.com/KirkDiggler/rpg-item-converter/internal/entities/item"
)

// catalog fields that never carry over onto a derived item
var mergeBlacklist = map[string]bool{
	item.FieldSource: true,
	item.FieldSRD:    true,
	item.FieldPage:   true,
}

// MergeBaseItem copies the base item's stats onto the draft without
// overwriting anything the draft already has.
func MergeBaseItem(draft *item.Item, base *item.BaseItem, coreSource string) {
	if base == nil {
		return
	}

	for _, k := range base.Keys() {
		if strings.HasPrefix(k, "_") || mergeBlacklist[k] || draft.Has(k) {
			continue
		}
		if v, ok := base.Get(k); ok {
			draft.Set(k, v)
		}
	}

	draft.Delete(item.FieldArmor)
	draft.Delete(item.FieldValue)

	draft.BaseItem = baseItemRef(base, coreSource)
}

// baseItemRef is "dagger" for core items and "yklwa|ToA" style otherwise
func baseItemRef(base *item.BaseItem, coreSource string) string {
	ref := strings.ToLower(base.Name)
	if base.Source == coreSource {
		return ref
	}
	return ref + "|" + base.Source
}
