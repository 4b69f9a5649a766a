package item

import (
	"sort"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// BaseItem is an immutable catalog entry such as "Dagger" or "Plate Armor".
// Fields holds every property of the entry, name and source included.
type BaseItem struct {
	Name   string
	Source string
	Fields map[string]any
}

// Class is an immutable class catalog entry
type Class struct {
	Name   string
	Source string
}

// Compile-time check that catalog entries are rpg-toolkit entities
var (
	_ core.Entity = (*BaseItem)(nil)
	_ core.Entity = (*Class)(nil)
)

// NewBaseItem builds a catalog entry from its raw field map.
// It returns nil when the map has no usable name.
func NewBaseItem(fields map[string]any) *BaseItem {
	name, _ := fields[FieldName].(string)
	if strings.TrimSpace(name) == "" {
		return nil
	}
	source, _ := fields[FieldSource].(string)

	return &BaseItem{
		Name:   name,
		Source: source,
		Fields: fields,
	}
}

// GetID returns "<name>|<source>" in lowercase
func (b *BaseItem) GetID() string {
	return entityID(b.Name, b.Source)
}

// GetType returns the entity type for rpg-toolkit
func (b *BaseItem) GetType() string {
	return EntityTypeBaseItem
}

// Get returns a raw field of the entry
func (b *BaseItem) Get(key string) (any, bool) {
	v, ok := b.Fields[key]
	return v, ok
}

// Keys returns the raw field names in sorted order
func (b *BaseItem) Keys() []string {
	keys := make([]string, 0, len(b.Fields))
	for k := range b.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetID returns "<name>|<source>" in lowercase
func (c *Class) GetID() string {
	return entityID(c.Name, c.Source)
}

// GetType returns the entity type for rpg-toolkit
func (c *Class) GetType() string {
	return EntityTypeClass
}

func entityID(name, source string) string {
	return strings.ToLower(name) + "|" + strings.ToLower(source)
}
