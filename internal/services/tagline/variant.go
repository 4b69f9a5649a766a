package tagline

import (
	"regexp"
	"strings"

	"github.com/KirkDiggler/rpg-item-converter/internal/entities/item"
	"github.com/KirkDiggler/rpg-item-converter/internal/errors"
)

var (
	weaponNamePrefix = regexp.MustCompile(`(?i)^weapon `)
	suffixName       = regexp.MustCompile(`(?i)^\s*of `)
)

var bucketConstraints = map[item.Bucket]item.Constraint{
	item.BucketWeapon:      {"weapon": true},
	item.BucketMelee:       {"type": string(item.TypeMelee)},
	item.BucketRanged:      {"type": string(item.TypeRanged)},
	item.BucketSword:       {"sword": true},
	item.BucketAxe:         {"axe": true},
	item.BucketBow:         {"bow": true},
	item.BucketCrossbow:    {"crossbow": true},
	item.BucketArmor:       {"armor": true},
	item.BucketHeavyArmor:  {"type": string(item.TypeHeavyArmor)},
	item.BucketMediumArmor: {"type": string(item.TypeMediumArmor)},
	item.BucketLightArmor:  {"type": string(item.TypeLightArmor)},
}

// SynthesizeVariant turns a finished draft into a generic variant whose
// inherited fields apply to every base item matching the requirements.
func SynthesizeVariant(draft *item.Item, res *Result) (*item.GenericVariant, error) {
	if res == nil || !res.IsGeneric() {
		return nil, errors.Internal("no generic types or variant bases to synthesize from")
	}
	if strings.TrimSpace(draft.Name) == "" {
		return nil, errors.Internal("generic variant has no name")
	}

	inherits := &item.Inherits{Item: draft}
	affix := strings.TrimSpace(weaponNamePrefix.ReplaceAllString(draft.Name, ""))
	if suffixName.MatchString(affix) {
		inherits.NameSuffix = " " + affix
	} else {
		inherits.NamePrefix = affix + " "
	}

	variant := &item.GenericVariant{
		Name:     draft.Name,
		Inherits: inherits,
	}

	if len(res.GenericTypes) > 0 {
		for _, bucket := range res.GenericTypes {
			constraint, ok := bucketConstraints[bucket]
			if !ok {
				return nil, errors.Internalf("unhandled generic type %q", bucket).
					WithMeta("bucket", string(bucket))
			}
			variant.Requires = append(variant.Requires, copyConstraint(constraint))
		}
	} else {
		for _, base := range res.VariantBases {
			variant.Requires = append(variant.Requires, item.Constraint{"name": base.Name})
		}
	}

	if len(res.Exceptions) > 0 {
		variant.Excludes = item.Constraint{"name": append([]string(nil), res.Exceptions...)}
	}

	return variant, nil
}

func copyConstraint(c item.Constraint) item.Constraint {
	out := make(item.Constraint, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}
