package item

import (
	"encoding/json"
	"strings"
)

// Attunement describes the reqAttune field.
// The zero value means no attunement is required.
type Attunement struct {
	Required  bool
	Condition string
}

// Value returns the JSON value of the field: true, the condition text, or nil
func (a Attunement) Value() any {
	if !a.Required {
		return nil
	}
	if a.Condition == "" {
		return true
	}
	return a.Condition
}

// Item is the record built up while converting one pasted item.
// Well-known fields are typed; anything merged in from a catalog entry
// lands in Props.
type Item struct {
	Name      string
	Source    string
	Page      int
	Rarity    Rarity
	ReqAttune Attunement
	Type      TypeCode
	Wondrous  bool
	Staff     bool
	Tattoo    bool
	BaseItem  string
	Weight    *float64
	Entries   []string
	Props     map[string]any
}

// Has reports whether the item already carries a value for key
func (it *Item) Has(key string) bool {
	switch key {
	case FieldName:
		return it.Name != ""
	case FieldSource:
		return it.Source != ""
	case FieldPage:
		return it.Page != 0
	case FieldRarity:
		return it.Rarity != ""
	case FieldReqAttune:
		return it.ReqAttune.Required
	case FieldType:
		return it.Type != ""
	case FieldWondrous:
		return it.Wondrous
	case FieldStaff:
		return it.Staff
	case FieldTattoo:
		return it.Tattoo
	case FieldBaseItem:
		return it.BaseItem != ""
	case FieldWeight:
		return it.Weight != nil
	case FieldEntries:
		return len(it.Entries) > 0
	}
	_, ok := it.Props[key]
	return ok
}

// Set assigns key, converting catalog values onto the typed fields.
// Values of the wrong shape for a typed field are ignored.
func (it *Item) Set(key string, value any) {
	switch key {
	case FieldName:
		if s, ok := value.(string); ok {
			it.Name = s
		}
	case FieldSource:
		if s, ok := value.(string); ok {
			it.Source = s
		}
	case FieldPage:
		if f, ok := toFloat(value); ok {
			it.Page = int(f)
		}
	case FieldRarity:
		if s, ok := value.(string); ok {
			it.Rarity = Rarity(s)
		}
	case FieldReqAttune:
		switch v := value.(type) {
		case bool:
			it.ReqAttune = Attunement{Required: v}
		case string:
			it.ReqAttune = Attunement{Required: true, Condition: v}
		}
	case FieldType:
		if s, ok := value.(string); ok {
			it.Type = TypeCode(s)
		}
	case FieldWondrous:
		it.Wondrous, _ = value.(bool)
	case FieldStaff:
		it.Staff, _ = value.(bool)
	case FieldTattoo:
		it.Tattoo, _ = value.(bool)
	case FieldBaseItem:
		if s, ok := value.(string); ok {
			it.BaseItem = s
		}
	case FieldWeight:
		if f, ok := toFloat(value); ok {
			it.Weight = &f
		}
	case FieldEntries:
		if entries, ok := value.([]string); ok {
			it.Entries = entries
		}
	default:
		if it.Props == nil {
			it.Props = make(map[string]any)
		}
		it.Props[key] = value
	}
}

// Delete removes a merged property
func (it *Item) Delete(key string) {
	delete(it.Props, key)
}

// Fields flattens the item into its output field map
func (it *Item) Fields() map[string]any {
	out := make(map[string]any, len(it.Props)+12)
	for k, v := range it.Props {
		out[k] = v
	}

	if it.Name != "" {
		out[FieldName] = it.Name
	}
	if it.Source != "" {
		out[FieldSource] = it.Source
	}
	if it.Page != 0 {
		out[FieldPage] = it.Page
	}
	if it.Rarity != "" {
		out[FieldRarity] = string(it.Rarity)
	}
	if v := it.ReqAttune.Value(); v != nil {
		out[FieldReqAttune] = v
	}
	if it.Type != "" {
		out[FieldType] = string(it.Type)
	}
	if it.Wondrous {
		out[FieldWondrous] = true
	}
	if it.Staff {
		out[FieldStaff] = true
	}
	if it.Tattoo {
		out[FieldTattoo] = true
	}
	if it.BaseItem != "" {
		out[FieldBaseItem] = it.BaseItem
	}
	if it.Weight != nil {
		out[FieldWeight] = *it.Weight
	}
	if len(it.Entries) > 0 {
		out[FieldEntries] = it.Entries
	}
	return out
}

// MarshalJSON implements json.Marshaler
func (it *Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(it.Fields())
}

// Label prefixes warnings about this item, e.g. "(Flame Tongue) "
func (it *Item) Label() string {
	if strings.TrimSpace(it.Name) == "" {
		return ""
	}
	return "(" + it.Name + ") "
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}
