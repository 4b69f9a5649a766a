package item

import (
	"encoding/json"
)

// Kind tells the caller where a converted record belongs
type Kind string

// Result kinds
const (
	KindItem      Kind = "item"
	KindItemGroup Kind = "itemGroup"
	KindVariant   Kind = "variant"
)

// Result is the finished output of a conversion: a PlainItem, an ItemGroup
// or a GenericVariant.
type Result interface {
	Kind() Kind
	Fields() map[string]any
	isResult()
}

// Constraint is a set of predicates a base item must satisfy, e.g. {"type": "HA"}
type Constraint map[string]any

// PlainItem is a single concrete item
type PlainItem struct {
	Item *Item
}

// ItemGroup is an item whose rarity varies across its members
type ItemGroup struct {
	Item *Item
}

// GenericVariant is a magical effect that applies to a family of base items
type GenericVariant struct {
	Name     string
	Requires []Constraint
	Excludes Constraint
	Inherits *Inherits
}

// Inherits holds the fields every concrete variant inherits. The name is
// replaced by a prefix or suffix applied to the base item's name.
type Inherits struct {
	Item       *Item
	NamePrefix string
	NameSuffix string
}

// Kind implements Result
func (PlainItem) Kind() Kind { return KindItem }

// Fields implements Result
func (p PlainItem) Fields() map[string]any { return p.Item.Fields() }

func (PlainItem) isResult() {}

// MarshalJSON implements json.Marshaler
func (p PlainItem) MarshalJSON() ([]byte, error) { return json.Marshal(p.Fields()) }

// Kind implements Result
func (ItemGroup) Kind() Kind { return KindItemGroup }

// Fields implements Result
func (g ItemGroup) Fields() map[string]any { return g.Item.Fields() }

func (ItemGroup) isResult() {}

// MarshalJSON implements json.Marshaler
func (g ItemGroup) MarshalJSON() ([]byte, error) { return json.Marshal(g.Fields()) }

// Kind implements Result
func (*GenericVariant) Kind() Kind { return KindVariant }

func (*GenericVariant) isResult() {}

// Fields implements Result
func (v *GenericVariant) Fields() map[string]any {
	out := map[string]any{
		FieldName: v.Name,
		FieldType: string(TypeGenericVariant),
	}
	if len(v.Requires) > 0 {
		requires := make([]any, len(v.Requires))
		for i, c := range v.Requires {
			requires[i] = map[string]any(c)
		}
		out["requires"] = requires
	}
	if len(v.Excludes) > 0 {
		out["excludes"] = map[string]any(v.Excludes)
	}
	if v.Inherits != nil {
		out["inherits"] = v.Inherits.Fields()
	}
	return out
}

// MarshalJSON implements json.Marshaler
func (v *GenericVariant) MarshalJSON() ([]byte, error) { return json.Marshal(v.Fields()) }

// Fields returns the inherited fields, without a name
func (in *Inherits) Fields() map[string]any {
	out := map[string]any{}
	if in.Item != nil {
		out = in.Item.Fields()
	}
	delete(out, FieldName)
	if in.NamePrefix != "" {
		out["namePrefix"] = in.NamePrefix
	}
	if in.NameSuffix != "" {
		out["nameSuffix"] = in.NameSuffix
	}
	return out
}
