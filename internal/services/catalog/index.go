// Package catalog resolves item and class names against the read-only
// catalogs the converter is started with.
package catalog

import (
	"sort"
	"strings"

	"github.com/KirkDiggler/rpg-item-converter/internal/entities/item"
	"github.com/KirkDiggler/rpg-item-converter/internal/errors"
)

//go:generate mockgen -destination=mock/mock_catalog.go -package=catalogmock github.com/KirkDiggler/rpg-item-converter/internal/services/catalog Catalog

// Catalog is the lookup surface used by the tagline parser
type Catalog interface {
	// LookupItem returns the base item with the given name, or nil when there is none.
	// More than one match is a FailedPrecondition error.
	LookupItem(name string) (*item.BaseItem, error)

	// IsClass reports whether name is a known class
	IsClass(name string) bool
}

// itemAliases maps shorthand used in taglines onto catalog names
var itemAliases = map[string]string{
	"studded leather": "studded leather armor",
	"leather":         "leather armor",
	"bolt":            "crossbow bolt",
}

// Config holds the entries an Index is built from
type Config struct {
	BaseItems []*item.BaseItem
	Classes   []*item.Class
}

// Validate ensures the configuration is valid
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	for i, b := range c.BaseItems {
		if b == nil || strings.TrimSpace(b.Name) == "" {
			vb.Fieldf("BaseItems", "entry %d has no name", i)
		}
	}
	for i, cl := range c.Classes {
		if cl == nil || strings.TrimSpace(cl.Name) == "" {
			vb.Fieldf("Classes", "entry %d has no name", i)
		}
	}
	return vb.Build()
}

// Index is an immutable name index over the base item and class catalogs.
// It is safe for concurrent use.
type Index struct {
	items     map[string][]*item.BaseItem
	classes   map[string]*item.Class
	baseItems []*item.BaseItem
	classList []*item.Class
}

// New builds an index. Every entry is indexed under its name, so entries
// sharing a name stay ambiguous for LookupItem.
func New(cfg *Config) (*Index, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	idx := &Index{
		items:   make(map[string][]*item.BaseItem, len(cfg.BaseItems)),
		classes: make(map[string]*item.Class, len(cfg.Classes)),
	}

	for _, b := range cfg.BaseItems {
		key := normalize(b.Name)
		idx.items[key] = append(idx.items[key], b)
		idx.baseItems = append(idx.baseItems, b)
	}

	for _, c := range cfg.Classes {
		key := normalize(c.Name)
		if _, ok := idx.classes[key]; ok {
			continue
		}
		idx.classes[key] = c
		idx.classList = append(idx.classList, c)
	}

	return idx, nil
}

// LookupItem implements Catalog
func (i *Index) LookupItem(name string) (*item.BaseItem, error) {
	key := normalize(name)
	if alias, ok := itemAliases[key]; ok {
		key = alias
	}

	matches := i.items[key]
	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		return matches[0], nil
	}

	ids := make([]string, len(matches))
	for n, m := range matches {
		ids[n] = m.GetID()
	}
	sort.Strings(ids)

	return nil, errors.FailedPreconditionf("multiple items found with name %q", name).
		WithMeta("name", name).
		WithMeta("matches", strings.Join(ids, ", "))
}

// IsClass implements Catalog
func (i *Index) IsClass(name string) bool {
	_, ok := i.classes[normalize(name)]
	return ok
}

// BaseItems returns the indexed base items in load order
func (i *Index) BaseItems() []*item.BaseItem {
	return i.baseItems
}

// Classes returns the indexed classes in load order
func (i *Index) Classes() []*item.Class {
	return i.classList
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
