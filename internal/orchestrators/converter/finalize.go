package converter

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-item-converter/internal/entities/item"
	"github.com/KirkDiggler/rpg-item-converter/internal/errors"
	"github.com/KirkDiggler/rpg-item-converter/internal/services/tagline"
)

var (
	weightPattern = regexp.MustCompile(`weighs ([a-zA-Z0-9,]+) (pounds?|lbs?\.|tons?)`)
	objectPattern = regexp.MustCompile(`is a (tiny|small|medium|large|huge|gargantuan) object`)
)

var numberWords = map[string]float64{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6, "seven": 7,
	"eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13,
	"fourteen": 14, "fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18,
	"nineteen": 19, "twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90, "hundred": 100,
}

// quarterstaff fields that describe the catalog entry rather than the weapon
var quarterstaffSkip = map[string]bool{
	item.FieldName:   true,
	item.FieldSource: true,
	item.FieldPage:   true,
	item.FieldSRD:    true,
	item.FieldRarity: true,
	item.FieldValue:  true,
	item.FieldWeapon: true,
}

// setWeight reads "weighs 12 pounds" style phrases out of the body text
func setWeight(draft *item.Item, warn tagline.WarnFunc) {
	m := weightPattern.FindStringSubmatch(strings.Join(draft.Entries, "\n"))
	if m == nil {
		return
	}

	amount, unit := m[1], strings.ToLower(m[2])
	if strings.HasPrefix(unit, "ton") {
		warn(draft.Label() + "Weight in tons requires manual conversion")
		return
	}

	if weight, ok := parseWeight(amount); ok && weight != 0 {
		draft.Weight = &weight
		return
	}

	warn(draft.Label() + `Weight "` + amount + `" requires manual conversion`)
}

func parseWeight(amount string) (float64, bool) {
	if f, err := strconv.ParseFloat(strings.ReplaceAll(amount, ",", ""), 64); err == nil {
		return f, true
	}
	f, ok := numberWords[strings.ToLower(amount)]
	return f, ok
}

// setQuarterstaffStats gives staves the weapon stats of a quarterstaff
func (o *orchestrator) setQuarterstaffStats(draft *item.Item, warn tagline.WarnFunc) error {
	staff, err := o.catalog.LookupItem("quarterstaff")
	if err != nil {
		return errors.Wrap(err, "failed to look up quarterstaff")
	}
	if staff == nil {
		warn(draft.Label() + "Quarterstaff stats require manual conversion")
		return nil
	}

	for _, k := range staff.Keys() {
		if strings.HasPrefix(k, "_") || quarterstaffSkip[k] || draft.Has(k) {
			continue
		}
		if v, ok := staff.Get(k); ok {
			draft.Set(k, v)
		}
	}
	return nil
}

func mentionsObject(entries []string) bool {
	for _, e := range entries {
		if objectPattern.MatchString(e) {
			return true
		}
	}
	return false
}
