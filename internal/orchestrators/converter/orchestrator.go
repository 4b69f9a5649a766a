// Package converter turns pasted item text into converted item records
package converter

//go:generate mockgen -destination=mock/mock_service.go -package=convertermock github.com/KirkDiggler/rpg-item-converter/internal/orchestrators/converter Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-item-converter/internal/entities/item"
	"github.com/KirkDiggler/rpg-item-converter/internal/errors"
	"github.com/KirkDiggler/rpg-item-converter/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-item-converter/internal/services/catalog"
	"github.com/KirkDiggler/rpg-item-converter/internal/services/tagline"
)

// Service converts pasted item descriptions
type Service interface {
	ConvertItem(ctx context.Context, input *ConvertItemInput) (*ConvertItemOutput, error)
}

// Config holds the dependencies for the converter orchestrator
type Config struct {
	Catalog     catalog.Catalog
	IDGenerator idgen.Generator

	// DefaultSource is used when the input carries no source
	DefaultSource string
	// CoreSource base items are referenced without a source qualifier
	CoreSource string
	// TitleCase title-cases every name, not only those that ask for it
	TitleCase bool
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

type orchestrator struct {
	catalog       catalog.Catalog
	parser        *tagline.Parser
	idGen         idgen.Generator
	defaultSource string
	titleCase     bool
}

// NewOrchestrator creates a new converter orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	parser, err := tagline.New(&tagline.Config{
		Catalog:    cfg.Catalog,
		CoreSource: cfg.CoreSource,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create tagline parser")
	}

	return &orchestrator{
		catalog:       cfg.Catalog,
		parser:        parser,
		idGen:         cfg.IDGenerator,
		defaultSource: cfg.DefaultSource,
		titleCase:     cfg.TitleCase,
	}, nil
}

// ConvertItem converts one pasted item. Catalog failures abort the
// conversion; anything merely unparsed is reported as a warning.
func (o *orchestrator) ConvertItem(ctx context.Context, input *ConvertItemInput) (*ConvertItemOutput, error) {
	if input == nil || strings.TrimSpace(input.Text) == "" {
		return nil, errors.InvalidArgument("no input")
	}

	conversionID := o.idGen.Generate()
	logger := slog.With("conversion_id", conversionID)

	lines := splitLines(normalizeInput(input.Text))

	source := input.Source
	if source == "" {
		source = o.defaultSource
	}

	name := lines[0]
	if input.TitleCase || o.titleCase {
		name = titleCase(name)
	}

	draft := &item.Item{
		Name:   name,
		Source: source,
		Page:   input.Page,
	}

	var warnings []string
	warn := func(msg string) {
		logger.Debug("conversion warning", "warning", msg)
		warnings = append(warnings, msg)
	}

	logger.Debug("converting item", "name", draft.Name, "lines", len(lines))

	res := &tagline.Result{}
	if len(lines) > 1 {
		var err error
		res, err = o.parser.Parse(draft, lines[1], warn)
		if err != nil {
			logger.Warn("failed to parse tagline", "name", draft.Name, "error", err)
			return nil, errors.Wrapf(err, "failed to convert %q", draft.Name).
				WithMeta("conversion_id", conversionID)
		}
	}

	if len(lines) > 2 {
		draft.Entries = coalesceLines(lines[2:])
	}

	result, err := o.finalize(ctx, draft, res, warn)
	if err != nil {
		logger.Warn("failed to finalize item", "name", draft.Name, "error", err)
		return nil, errors.Wrapf(err, "failed to convert %q", draft.Name).
			WithMeta("conversion_id", conversionID)
	}

	logger.Info("converted item",
		"name", draft.Name,
		"kind", string(result.Kind()),
		"warnings", len(warnings))

	return &ConvertItemOutput{
		ConversionID: conversionID,
		Result:       result,
		Warnings:     warnings,
	}, nil
}

// finalize runs the body text passes and picks the output shape
func (o *orchestrator) finalize(_ context.Context, draft *item.Item, res *tagline.Result, warn tagline.WarnFunc) (item.Result, error) {
	if len(draft.Entries) == 0 {
		draft.Entries = nil
	} else {
		setWeight(draft, warn)
	}

	if draft.Staff {
		if err := o.setQuarterstaffStats(draft, warn); err != nil {
			return nil, err
		}
	}

	if mentionsObject(draft.Entries) {
		warn(draft.Label() + "Item may be an object!")
	}

	return o.parser.Finalize(draft, res)
}
