package external

import (
	"strconv"
	"strings"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/rpg-item-converter/internal/entities/item"
)

// copper per coin
var coinValues = map[string]float64{
	"cp": 1,
	"sp": 10,
	"ep": 50,
	"gp": 100,
	"pp": 1000,
}

// SRD weapon property names to item property codes
var propertyCodes = map[string]string{
	"ammunition": "A",
	"finesse":    "F",
	"heavy":      "H",
	"light":      "L",
	"loading":    "LD",
	"reach":      "R",
	"special":    "S",
	"thrown":     "T",
	"two-handed": "2H",
	"versatile":  "V",
}

var armorTypes = map[string]item.TypeCode{
	"light":  item.TypeLightArmor,
	"medium": item.TypeMediumArmor,
	"heavy":  item.TypeHeavyArmor,
	"shield": item.TypeShield,
}

// convertEquipment maps an SRD equipment entry onto base item fields
func convertEquipment(equipment dnd5e.EquipmentInterface) *item.BaseItem {
	if equipment == nil {
		return nil
	}

	fields := map[string]any{
		item.FieldSource: SourceSRD,
		item.FieldSRD:    true,
	}

	switch eq := equipment.(type) {
	case *entities.Weapon:
		fields[item.FieldName] = eq.Name
		setWeightAndValue(fields, eq.Weight, eq.Cost)
		convertWeapon(fields, eq)

	case *entities.Armor:
		fields[item.FieldName] = eq.Name
		setWeightAndValue(fields, eq.Weight, eq.Cost)
		convertArmor(fields, eq)

	case *entities.Equipment:
		fields[item.FieldName] = eq.Name
		setWeightAndValue(fields, eq.Weight, eq.Cost)

	default:
		return nil
	}

	return item.NewBaseItem(fields)
}

func convertWeapon(fields map[string]any, eq *entities.Weapon) {
	fields[item.FieldWeapon] = true
	if eq.WeaponCategory != "" {
		fields["weaponCategory"] = strings.ToLower(eq.WeaponCategory)
	}

	switch strings.ToLower(eq.WeaponRange) {
	case "melee":
		fields[item.FieldType] = string(item.TypeMelee)
	case "ranged":
		fields[item.FieldType] = string(item.TypeRanged)
	}

	if eq.Damage != nil {
		if eq.Damage.DamageDice != "" {
			fields["dmg1"] = eq.Damage.DamageDice
		}
		if eq.Damage.DamageType != nil && eq.Damage.DamageType.Name != "" {
			fields["dmgType"] = strings.ToUpper(eq.Damage.DamageType.Name[:1])
		}
	}

	var properties []any
	for _, p := range eq.Properties {
		if p == nil {
			continue
		}
		if code, ok := propertyCodes[strings.ToLower(p.Name)]; ok {
			properties = append(properties, code)
		}
	}
	if len(properties) > 0 {
		fields["property"] = properties
	}

	for flag, set := range weaponFlags(eq.Name) {
		fields[flag] = set
	}
}

// weaponFlags tags the weapon families taglines refer to
func weaponFlags(name string) map[string]bool {
	lower := strings.ToLower(name)
	flags := map[string]bool{}

	switch {
	case strings.Contains(lower, "crossbow"):
		flags["crossbow"] = true
	case strings.HasSuffix(lower, "bow"):
		flags["bow"] = true
	}
	if strings.Contains(lower, "sword") || lower == "rapier" || lower == "scimitar" {
		flags["sword"] = true
	}
	if strings.Contains(lower, "axe") {
		flags["axe"] = true
	}
	if lower == "quarterstaff" {
		flags["staff"] = true
	}
	return flags
}

func convertArmor(fields map[string]any, eq *entities.Armor) {
	code, ok := armorTypes[strings.ToLower(eq.ArmorCategory)]
	if ok {
		fields[item.FieldType] = string(code)
	}
	if code != item.TypeShield {
		fields[item.FieldArmor] = true
	}

	if eq.ArmorClass != nil {
		fields["ac"] = float64(eq.ArmorClass.Base)
	}
	if eq.StrMinimum > 0 {
		fields["strength"] = strconv.Itoa(eq.StrMinimum)
	}
	if eq.StealthDisadvantage {
		fields["stealth"] = true
	}
}

func setWeightAndValue(fields map[string]any, weight float32, cost *entities.Cost) {
	if weight > 0 {
		fields[item.FieldWeight] = float64(weight)
	}
	if cost == nil {
		return
	}
	if per, ok := coinValues[strings.ToLower(cost.Unit)]; ok {
		fields[item.FieldValue] = float64(cost.Quantity) * per
	}
}
