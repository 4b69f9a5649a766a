// Package tagline classifies the second line of a pasted item, the one
// that packs rarity, attunement, type and base item into free text.
package tagline

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-item-converter/internal/entities/item"
	"github.com/KirkDiggler/rpg-item-converter/internal/errors"
	"github.com/KirkDiggler/rpg-item-converter/internal/services/catalog"
)

// DefaultCoreSource is the source whose base items are referenced without
// a "|source" qualifier
const DefaultCoreSource = "DMG"

// WarnFunc receives non-fatal conversion warnings
type WarnFunc func(msg string)

// Result carries what the tagline said about base items. It never becomes
// part of the converted item.
type Result struct {
	BaseItem     *item.BaseItem
	GenericTypes []item.Bucket
	VariantBases []*item.BaseItem
	Exceptions   []string
	ItemGroup    bool
}

// IsGeneric reports whether a generic variant should be synthesized
func (r *Result) IsGeneric() bool {
	return len(r.GenericTypes) > 0 || len(r.VariantBases) > 0
}

// Config holds the dependencies for a Parser
type Config struct {
	Catalog    catalog.Catalog
	CoreSource string
}

// Validate ensures the configuration is valid
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	return vb.Build()
}

// Parser classifies taglines against a catalog
type Parser struct {
	catalog    catalog.Catalog
	coreSource string
}

// New creates a new tagline parser
func New(cfg *Config) (*Parser, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	coreSource := cfg.CoreSource
	if coreSource == "" {
		coreSource = DefaultCoreSource
	}

	return &Parser{
		catalog:    cfg.Catalog,
		coreSource: coreSource,
	}, nil
}

// classifier inspects segments[pos] and returns the position after the
// segments it consumed
type classifier func(st *state, segments []string, pos int) (next int, matched bool, err error)

var classifiers = []classifier{
	classifyCategory,
	classifyRarity,
	classifyAttunement,
	classifyGeneric,
}

type state struct {
	draft   *item.Item
	result  *Result
	catalog catalog.Catalog
	warn    WarnFunc
}

func (st *state) warnf(format string, args ...interface{}) {
	if st.warn == nil {
		return
	}
	st.warn(st.draft.Label() + fmt.Sprintf(format, args...))
}

// Parse classifies the tagline onto draft. When the tagline names exactly
// one concrete base item its stats are merged into the draft.
func (p *Parser) Parse(draft *item.Item, tagline string, warn WarnFunc) (*Result, error) {
	if draft == nil {
		return nil, errors.InvalidArgument("draft item is required")
	}

	st := &state{
		draft:   draft,
		result:  &Result{},
		catalog: p.catalog,
		warn:    warn,
	}

	segments := Split(tagline)
	for pos := 0; pos < len(segments); {
		next, err := p.classify(st, segments, pos)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse tagline segment %q", segments[pos])
		}
		pos = next
	}

	if st.result.BaseItem != nil {
		MergeBaseItem(draft, st.result.BaseItem, p.coreSource)
	}

	return st.result, nil
}

func (p *Parser) classify(st *state, segments []string, pos int) (int, error) {
	for _, c := range classifiers {
		next, matched, err := c(st, segments, pos)
		if err != nil {
			return pos, err
		}
		if matched {
			return next, nil
		}
	}

	st.warnf("Tagline part %q requires manual conversion", strings.TrimSpace(segments[pos]))
	return pos + 1, nil
}

// Finalize picks the output shape for a finished draft
func (p *Parser) Finalize(draft *item.Item, res *Result) (item.Result, error) {
	if res != nil && res.IsGeneric() {
		variant, err := SynthesizeVariant(draft, res)
		if err != nil {
			return nil, err
		}
		return variant, nil
	}

	if res != nil && res.ItemGroup {
		return item.ItemGroup{Item: draft}, nil
	}
	return item.PlainItem{Item: draft}, nil
}
