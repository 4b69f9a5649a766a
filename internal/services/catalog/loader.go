package catalog

import (
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strconv"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/rpg-item-converter/internal/entities/item"
	"github.com/KirkDiggler/rpg-item-converter/internal/errors"
)

var damageDicePattern = regexp.MustCompile(`^(\d+)d(\d+)$`)

// damageFields are validated as dice notation while loading
var damageFields = []string{"dmg1", "dmg2"}

// ParseBaseItems reads the "baseitem" array of an items-base document.
// A bare top-level array is accepted as well.
func ParseBaseItems(data []byte) ([]*item.BaseItem, error) {
	entries, err := entryArray(data, "baseitem")
	if err != nil {
		return nil, err
	}

	var out []*item.BaseItem
	var parseErr error
	entries.ForEach(func(_, value gjson.Result) bool {
		fields, ok := value.Value().(map[string]interface{})
		if !ok {
			parseErr = errors.InvalidArgumentf("base item entry is not an object: %s", value.Raw)
			return false
		}

		b := item.NewBaseItem(fields)
		if b == nil {
			slog.Warn("skipping base item without name", "entry", value.Raw)
			return true
		}

		for _, field := range damageFields {
			notation := value.Get(field)
			if !notation.Exists() {
				continue
			}
			if err := ValidateDamageDice(notation.String()); err != nil {
				slog.Warn("base item has invalid damage dice",
					"item", b.Name,
					"field", field,
					"value", notation.String(),
					"error", err)
			}
		}

		out = append(out, b)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return out, nil
}

// ParseClasses reads the "class" array of a class document.
// A bare top-level array is accepted as well.
func ParseClasses(data []byte) ([]*item.Class, error) {
	entries, err := entryArray(data, "class")
	if err != nil {
		return nil, err
	}

	var out []*item.Class
	entries.ForEach(func(_, value gjson.Result) bool {
		name := value.Get("name").String()
		if name == "" {
			return true
		}
		out = append(out, &item.Class{
			Name:   name,
			Source: value.Get("source").String(),
		})
		return true
	})

	return out, nil
}

// LoadFiles reads and indexes the given catalog files.
// An empty path is skipped.
func LoadFiles(itemsFile, classesFile string) (*Config, error) {
	cfg := &Config{}

	if itemsFile != "" {
		data, err := os.ReadFile(itemsFile)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read items file %s", itemsFile)
		}
		cfg.BaseItems, err = ParseBaseItems(data)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse items file %s", itemsFile)
		}
	}

	if classesFile != "" {
		data, err := os.ReadFile(classesFile)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read classes file %s", classesFile)
		}
		cfg.Classes, err = ParseClasses(data)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse classes file %s", classesFile)
		}
	}

	slog.Info("loaded catalog files",
		"base_items", len(cfg.BaseItems),
		"classes", len(cfg.Classes))

	return cfg, nil
}

// ValidateDamageDice checks notation such as "1d8" with the dice roller.
// Flat damage such as "1" is accepted.
func ValidateDamageDice(notation string) error {
	if _, err := strconv.Atoi(notation); err == nil {
		return nil
	}

	matches := damageDicePattern.FindStringSubmatch(notation)
	if len(matches) != 3 {
		return errors.InvalidArgumentf("invalid dice notation: %s", notation)
	}

	count, _ := strconv.Atoi(matches[1])
	size, _ := strconv.Atoi(matches[2])
	if count <= 0 {
		return errors.InvalidArgumentf("dice count must be positive: %s", notation)
	}

	if _, err := dice.NewRoll(count, size); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, fmt.Sprintf("invalid dice notation: %s", notation))
	}
	return nil
}

func entryArray(data []byte, key string) (gjson.Result, error) {
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, errors.InvalidArgument("catalog data is not valid JSON")
	}

	root := gjson.ParseBytes(data)
	if root.IsArray() {
		return root, nil
	}

	entries := root.Get(key)
	if !entries.Exists() {
		return gjson.Result{}, errors.InvalidArgumentf("catalog data has no %q array", key)
	}
	if !entries.IsArray() {
		return gjson.Result{}, errors.InvalidArgumentf("catalog field %q is not an array", key)
	}
	return entries, nil
}
