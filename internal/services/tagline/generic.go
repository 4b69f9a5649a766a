package tagline

import (
	"regexp"
	"strings"

	"github.com/KirkDiggler/rpg-item-converter/internal/entities/item"
	"github.com/KirkDiggler/rpg-item-converter/internal/errors"
)

const exceptionKeywords = `except|but\s*(?:not)?|without`

var (
	// weapon (dagger, shortsword), armor (plate, half plate, or splint),
	// weapon (any sword except a scimitar)
	genericPattern = regexp.MustCompile(
		`(?i)^(weapon|staff|armor)\s*\((.+?)(?:,?\s*(` + exceptionKeywords + `)\s+([^)]*))?\)` +
			`(?:\s*(` + exceptionKeywords + `)\s+(.+))?$`)

	// a trailing "except dagger" segment split off by the comma splitter
	exceptionPattern = regexp.MustCompile(`(?i)^(` + exceptionKeywords + `)\s+(.+)$`)

	listSeparator = regexp.MustCompile(`(?i)(?:\s+or|\s*,|\s+and)(?: or)?\s+`)
	listArticle   = regexp.MustCompile(`(?i)^(a|an|any)\s+`)
)

var generalShortcuts = map[string]item.Bucket{
	"weapon":       item.BucketWeapon,
	"weapon (any)": item.BucketWeapon,
	"armor":        item.BucketArmor,
	"armor (any)":  item.BucketArmor,
}

var weaponBuckets = map[string]item.Bucket{
	"any":           item.BucketWeapon,
	"melee":         item.BucketMelee,
	"melee weapon":  item.BucketMelee,
	"ranged":        item.BucketRanged,
	"ranged weapon": item.BucketRanged,
	"sword":         item.BucketSword,
	"axe":           item.BucketAxe,
	"bow":           item.BucketBow,
	"crossbow":      item.BucketCrossbow,
}

// classifyGeneric resolves "category (list)" segments into a concrete base
// item, bucket tags or a list of variant bases.
func classifyGeneric(st *state, segments []string, pos int) (int, bool, error) {
	segment := segments[pos]
	lower := strings.ToLower(segment)

	if bucket, ok := generalShortcuts[lower]; ok {
		st.result.GenericTypes = append(st.result.GenericTypes, bucket)
		return st.trailingException(segments, pos+1)
	}

	m := genericPattern.FindStringSubmatch(segment)
	if m == nil {
		return pos, false, nil
	}

	category := strings.ToLower(m[1])
	list := strings.TrimSpace(m[2])
	if category == "staff" {
		st.draft.Staff = true
	}

	base, err := st.lookupBase(list, category)
	if err != nil {
		return pos, true, err
	}

	if base != nil {
		if st.result.BaseItem != nil {
			st.warnf("Multiple base items found, keeping %q over %q", st.result.BaseItem.Name, base.Name)
		} else {
			st.result.BaseItem = base
		}
	} else if err := st.resolveList(list, category); err != nil {
		return pos, true, err
	}

	switch {
	case m[3] != "":
		if err := st.resolveExceptions(m[4]); err != nil {
			return pos, true, err
		}
	case m[5] != "":
		if err := st.resolveExceptions(m[6]); err != nil {
			return pos, true, err
		}
	default:
		return st.trailingException(segments, pos+1)
	}

	return pos + 1, true, nil
}

// resolveList splits "dagger, shortsword" and sorts each member into a
// bucket or a concrete variant base.
func (st *state) resolveList(list, category string) error {
	for _, token := range splitList(list) {
		switch category {
		case "weapon", "staff":
			if bucket, ok := weaponBuckets[token]; ok {
				st.result.GenericTypes = append(st.result.GenericTypes, bucket)
				continue
			}
		case "armor":
			if bucket, ok := armorBucket(token); ok {
				st.result.GenericTypes = append(st.result.GenericTypes, bucket)
				continue
			}
		}

		base, err := st.lookupBase(token, category)
		if err != nil {
			return err
		}
		if base == nil {
			return errors.NotFoundf("could not find base item %q", token).
				WithMeta("name", token).
				WithMeta("category", category)
		}
		st.result.VariantBases = append(st.result.VariantBases, base)
	}
	return nil
}

// resolveExceptions records the catalog names of excluded items. Exceptions
// only apply once something has been collected for them to exclude from.
func (st *state) resolveExceptions(list string) error {
	if !st.result.IsGeneric() {
		st.warnf("Exception %q requires manual conversion", strings.TrimSpace(list))
		return nil
	}

	for _, token := range splitList(list) {
		base, err := st.lookupBase(token, "armor")
		if err != nil {
			return err
		}
		if base == nil {
			return errors.NotFoundf("could not find exception item %q", token).
				WithMeta("name", token)
		}
		st.result.Exceptions = append(st.result.Exceptions, base.Name)
	}
	return nil
}

// trailingException consumes an "except ..." segment following a generic one.
// Without generic types or variant bases the segment is left for the
// unrecognized segment warning.
func (st *state) trailingException(segments []string, next int) (int, bool, error) {
	if next >= len(segments) || !st.result.IsGeneric() {
		return next, true, nil
	}

	m := exceptionPattern.FindStringSubmatch(segments[next])
	if m == nil {
		return next, true, nil
	}

	if err := st.resolveExceptions(m[2]); err != nil {
		return next, true, err
	}
	return next + 1, true, nil
}

// lookupBase resolves name, retrying "plate" as "plate armor" for armor
func (st *state) lookupBase(name, category string) (*item.BaseItem, error) {
	base, err := st.catalog.LookupItem(name)
	if err != nil {
		return nil, err
	}
	if base == nil && category == "armor" {
		return st.catalog.LookupItem(name + " armor")
	}
	return base, nil
}

func armorBucket(token string) (item.Bucket, bool) {
	switch {
	case token == "any":
		return item.BucketArmor, true
	case strings.HasPrefix(token, "heavy"):
		return item.BucketHeavyArmor, true
	case strings.HasPrefix(token, "medium"):
		return item.BucketMediumArmor, true
	case strings.HasPrefix(token, "light"):
		return item.BucketLightArmor, true
	}
	return "", false
}

func splitList(list string) []string {
	var tokens []string
	for _, raw := range listSeparator.Split(strings.TrimSpace(list), -1) {
		token := strings.ToLower(strings.TrimSpace(raw))
		token = strings.TrimSpace(listArticle.ReplaceAllString(token, ""))
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
