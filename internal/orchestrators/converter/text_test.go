package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-item-converter/internal/entities/item"
)

func TestNormalizeInput(t *testing.T) {
	in := "Driftglobe\r\nWondrous item\r‘small’ “globe”"
	assert.Equal(t, "Driftglobe\nWondrous item\n'small' \"globe\"", normalizeInput(in))
}

func TestCoalesceLines(t *testing.T) {
	testCases := []struct {
		name     string
		lines    []string
		expected []string
	}{
		{
			name:     "complete sentences stay apart",
			lines:    []string{"First.", "Second!", "Third?"},
			expected: []string{"First.", "Second!", "Third?"},
		},
		{
			name:     "wrapped lines are joined",
			lines:    []string{"While holding this", "staff, you can cast", "fireball.", "Next."},
			expected: []string{"While holding this staff, you can cast fireball.", "Next."},
		},
		{
			name:     "colon and paren end a block",
			lines:    []string{"Properties:", "charges (3)", "more"},
			expected: []string{"Properties:", "charges (3)", "more"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, coalesceLines(tc.lines))
		})
	}
}

func TestTitleCase(t *testing.T) {
	testCases := map[string]string{
		"flame tongue":              "Flame Tongue",
		"RING OF THE RAM":           "Ring of the Ram",
		"the  staff of power":       "The Staff of Power",
		"cloak of elvenkind":        "Cloak of Elvenkind",
		"sword of life stealing":    "Sword of Life Stealing",
		"bag of tricks, gray":       "Bag of Tricks, Gray",
		"potion of giant strength":  "Potion of Giant Strength",
		"armor of the war and fire": "Armor of the War and Fire",
	}

	for in, expected := range testCases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, expected, titleCase(in))
		})
	}
}

func TestSetWeight(t *testing.T) {
	testCases := []struct {
		name     string
		entries  []string
		expected *float64
		warning  string
	}{
		{name: "digits", entries: []string{"It weighs 12 pounds."}, expected: ptr(12)},
		{name: "thousands separator", entries: []string{"It weighs 1,200 lb. when full."}, expected: ptr(1200)},
		{name: "number word", entries: []string{"It weighs three pounds."}, expected: ptr(3)},
		{name: "single pound", entries: []string{"It weighs 1 pound."}, expected: ptr(1)},
		{name: "no weight phrase", entries: []string{"It is light."}},
		{name: "unreadable amount", entries: []string{"It weighs many pounds."}, warning: `Weight "many" requires manual conversion`},
		{name: "zero weight", entries: []string{"It weighs 0 pounds."}, warning: `Weight "0" requires manual conversion`},
		{name: "tons", entries: []string{"It weighs 2 tons."}, warning: "Weight in tons requires manual conversion"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var warnings []string
			draft := &item.Item{Entries: tc.entries}

			setWeight(draft, func(msg string) { warnings = append(warnings, msg) })

			assert.Equal(t, tc.expected, draft.Weight)
			if tc.warning == "" {
				assert.Empty(t, warnings)
			} else {
				assert.Equal(t, []string{tc.warning}, warnings)
			}
		})
	}
}

func TestMentionsObject(t *testing.T) {
	assert.True(t, mentionsObject([]string{"The chest is a medium object with AC 15."}))
	assert.False(t, mentionsObject([]string{"The chest is a Medium object."}))
	assert.False(t, mentionsObject(nil))
}

func ptr(f float64) *float64 {
	return &f
}
