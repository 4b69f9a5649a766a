package item_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-item-converter/internal/entities/item"
)

type ItemTestSuite struct {
	suite.Suite
}

func TestItemSuite(t *testing.T) {
	suite.Run(t, new(ItemTestSuite))
}

func (s *ItemTestSuite) TestAttunementValue() {
	testCases := []struct {
		name       string
		attunement item.Attunement
		expected   any
	}{
		{name: "not required", attunement: item.Attunement{}, expected: nil},
		{name: "required", attunement: item.Attunement{Required: true}, expected: true},
		{
			name:       "with condition",
			attunement: item.Attunement{Required: true, Condition: "by a wizard"},
			expected:   "by a wizard",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.attunement.Value())
		})
	}
}

func (s *ItemTestSuite) TestSetRoutesTypedFields() {
	it := &item.Item{}

	it.Set(item.FieldType, "M")
	it.Set(item.FieldWeight, 1)
	it.Set(item.FieldReqAttune, "by a cleric")
	it.Set("dmg1", "1d4")
	it.Set(item.FieldWondrous, "yes")

	s.Equal(item.TypeMelee, it.Type)
	s.Require().NotNil(it.Weight)
	s.Equal(1.0, *it.Weight)
	s.Equal(item.Attunement{Required: true, Condition: "by a cleric"}, it.ReqAttune)
	s.Equal("1d4", it.Props["dmg1"])
	s.False(it.Wondrous)

	s.True(it.Has(item.FieldType))
	s.True(it.Has("dmg1"))
	s.False(it.Has(item.FieldRarity))

	it.Delete("dmg1")
	s.False(it.Has("dmg1"))
}

func (s *ItemTestSuite) TestFieldsOmitsZeroValues() {
	it := &item.Item{
		Name:   "Flame Tongue",
		Rarity: item.RarityRare,
		ReqAttune: item.Attunement{
			Required: true,
		},
	}

	s.Equal(map[string]any{
		"name":      "Flame Tongue",
		"rarity":    "rare",
		"reqAttune": true,
	}, it.Fields())
}

func (s *ItemTestSuite) TestMarshalJSON() {
	weight := 3.0
	it := &item.Item{
		Name:     "Staff of Birdcalls",
		Staff:    true,
		Weight:   &weight,
		Entries:  []string{"This wooden staff is decorated with bird carvings."},
		Props:    map[string]any{"dmg1": "1d6"},
		BaseItem: "quarterstaff",
	}

	data, err := json.Marshal(it)
	s.Require().NoError(err)
	s.JSONEq(`{
		"name": "Staff of Birdcalls",
		"staff": true,
		"weight": 3,
		"entries": ["This wooden staff is decorated with bird carvings."],
		"dmg1": "1d6",
		"baseItem": "quarterstaff"
	}`, string(data))
}

func (s *ItemTestSuite) TestTypeCodeIsMagic() {
	s.True(item.TypePotion.IsMagic())
	s.True(item.TypeMasterRune.IsMagic())
	s.False(item.TypeMelee.IsMagic())
	s.False(item.TypeAmmunition.IsMagic())
}

func (s *ItemTestSuite) TestBaseItemEntity() {
	s.Nil(item.NewBaseItem(map[string]any{"source": "PHB"}))

	dagger := item.NewBaseItem(map[string]any{
		"name":   "Dagger",
		"source": "PHB",
		"dmg1":   "1d4",
	})
	s.Require().NotNil(dagger)
	s.Equal("dagger|phb", dagger.GetID())
	s.Equal(item.EntityTypeBaseItem, dagger.GetType())

	v, ok := dagger.Get("dmg1")
	s.True(ok)
	s.Equal("1d4", v)
	_, ok = dagger.Get("dmg2")
	s.False(ok)
	s.Equal([]string{"dmg1", "name", "source"}, dagger.Keys())

	class := &item.Class{Name: "Wizard", Source: "PHB"}
	s.Equal("wizard|phb", class.GetID())
	s.Equal(item.EntityTypeClass, class.GetType())
}
