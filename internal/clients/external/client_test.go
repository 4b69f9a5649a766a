package external

import (
	"context"
	"errors"
	"testing"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-item-converter/internal/entities/item"
	internalerrors "github.com/KirkDiggler/rpg-item-converter/internal/errors"
)

// mockDND5eClient is a mock implementation of the dnd5e.Interface for testing
type mockDND5eClient struct {
	mock.Mock
}

func (m *mockDND5eClient) ListRaces() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetRace(key string) (*entities.Race, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Race), args.Error(1)
}

func (m *mockDND5eClient) ListEquipment() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetEquipment(key string) (dnd5e.EquipmentInterface, error) {
	args := m.Called(key)
	return args.Get(0).(dnd5e.EquipmentInterface), args.Error(1)
}

func (m *mockDND5eClient) GetEquipmentCategory(key string) (*entities.EquipmentCategory, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.EquipmentCategory), args.Error(1)
}

func (m *mockDND5eClient) ListClasses() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetClass(key string) (*entities.Class, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Class), args.Error(1)
}

func (m *mockDND5eClient) ListSpells(input *dnd5e.ListSpellsInput) ([]*entities.ReferenceItem, error) {
	args := m.Called(input)
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetSpell(key string) (*entities.Spell, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Spell), args.Error(1)
}

func (m *mockDND5eClient) ListFeatures() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetFeature(key string) (*entities.Feature, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Feature), args.Error(1)
}

func (m *mockDND5eClient) ListSkills() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetSkill(key string) (*entities.Skill, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Skill), args.Error(1)
}

func (m *mockDND5eClient) ListMonsters() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) ListMonstersWithFilter(input *dnd5e.ListMonstersInput) ([]*entities.ReferenceItem, error) {
	args := m.Called(input)
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetMonster(key string) (*entities.Monster, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Monster), args.Error(1)
}

func (m *mockDND5eClient) GetClassLevel(key string, level int) (*entities.Level, error) {
	args := m.Called(key, level)
	return args.Get(0).(*entities.Level), args.Error(1)
}

func (m *mockDND5eClient) GetProficiency(key string) (*entities.Proficiency, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Proficiency), args.Error(1)
}

func (m *mockDND5eClient) ListDamageTypes() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetDamageType(key string) (*entities.DamageType, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.DamageType), args.Error(1)
}

func (m *mockDND5eClient) ListBackgrounds() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetBackground(key string) (*entities.Background, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Background), args.Error(1)
}

func TestNew(t *testing.T) {
	t.Run("defaults are applied", func(t *testing.T) {
		cfg := &Config{}
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "https://www.dnd5eapi.co/api/2014/", cfg.BaseURL)
		assert.Positive(t, cfg.HTTPTimeout)
		assert.Positive(t, cfg.CacheTTL)
	})

	t.Run("negative cache ttl is rejected", func(t *testing.T) {
		_, err := New(&Config{CacheTTL: -1})
		require.Error(t, err)
		assert.True(t, internalerrors.IsInvalidArgument(err))
	})

	t.Run("nil config is rejected", func(t *testing.T) {
		_, err := New(nil)
		assert.Error(t, err)
	})
}

func TestListBaseItems(t *testing.T) {
	t.Run("converts every equipment entry", func(t *testing.T) {
		mockClient := new(mockDND5eClient)
		client := &client{dnd5eClient: mockClient}

		refs := []*entities.ReferenceItem{
			{Key: "longsword", Name: "Longsword"},
			{Key: "chain-mail", Name: "Chain Mail"},
			{Key: "rope-hempen-50-feet", Name: "Rope, hempen (50 feet)"},
		}
		mockClient.On("ListEquipment").Return(refs, nil)
		mockClient.On("GetEquipment", "longsword").Return(&entities.Weapon{
			Key:            "longsword",
			Name:           "Longsword",
			WeaponCategory: "Martial",
			WeaponRange:    "Melee",
			Weight:         3.0,
			Cost:           &entities.Cost{Quantity: 15, Unit: "gp"},
			Damage:         &entities.Damage{DamageDice: "1d8", DamageType: &entities.ReferenceItem{Name: "Slashing"}},
			Properties:     []*entities.ReferenceItem{{Name: "Versatile"}},
		}, nil)
		mockClient.On("GetEquipment", "chain-mail").Return(&entities.Armor{
			Key:                 "chain-mail",
			Name:                "Chain Mail",
			ArmorCategory:       "Heavy",
			Weight:              55.0,
			Cost:                &entities.Cost{Quantity: 75, Unit: "gp"},
			ArmorClass:          &entities.ArmorClass{Base: 16},
			StrMinimum:          13,
			StealthDisadvantage: true,
		}, nil)
		mockClient.On("GetEquipment", "rope-hempen-50-feet").Return(&entities.Equipment{
			Key:    "rope-hempen-50-feet",
			Name:   "Rope, hempen (50 feet)",
			Weight: 10.0,
			Cost:   &entities.Cost{Quantity: 1, Unit: "gp"},
		}, nil)

		result, err := client.ListBaseItems(context.Background())
		require.NoError(t, err)
		require.Len(t, result, 3)

		assert.Equal(t, "Longsword", result[0].Name)
		assert.Equal(t, SourceSRD, result[0].Source)
		assert.Equal(t, "chain mail|srd", result[1].GetID())
		assert.Equal(t, "Rope, hempen (50 feet)", result[2].Name)

		mockClient.AssertExpectations(t)
	})

	t.Run("list failure", func(t *testing.T) {
		mockClient := new(mockDND5eClient)
		client := &client{dnd5eClient: mockClient}

		mockClient.On("ListEquipment").Return([]*entities.ReferenceItem(nil), errors.New("api down"))

		result, err := client.ListBaseItems(context.Background())
		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, internalerrors.IsUnavailable(err))
		assert.Contains(t, err.Error(), "failed to list equipment")

		mockClient.AssertExpectations(t)
	})

	t.Run("detail failure", func(t *testing.T) {
		mockClient := new(mockDND5eClient)
		client := &client{dnd5eClient: mockClient}

		mockClient.On("ListEquipment").Return([]*entities.ReferenceItem{{Key: "club", Name: "Club"}}, nil)
		mockClient.On("GetEquipment", "club").Return((*entities.Weapon)(nil), errors.New("not found"))

		result, err := client.ListBaseItems(context.Background())
		require.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "failed to get equipment club")

		mockClient.AssertExpectations(t)
	})
}

func TestListClasses(t *testing.T) {
	mockClient := new(mockDND5eClient)
	client := &client{dnd5eClient: mockClient}

	mockClient.On("ListClasses").Return([]*entities.ReferenceItem{
		{Key: "bard", Name: "Bard"},
		{Key: "wizard", Name: "Wizard"},
		{Key: "", Name: ""},
	}, nil)

	result, err := client.ListClasses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []*item.Class{
		{Name: "Bard", Source: SourceSRD},
		{Name: "Wizard", Source: SourceSRD},
	}, result)

	mockClient.AssertExpectations(t)
}

func TestConvertEquipment(t *testing.T) {
	t.Run("convert weapon equipment", func(t *testing.T) {
		weapon := &entities.Weapon{
			Key:               "longsword",
			Name:              "Longsword",
			WeaponCategory:    "Martial",
			WeaponRange:       "Melee",
			Weight:            3.0,
			Cost:              &entities.Cost{Quantity: 15, Unit: "gp"},
			Damage:            &entities.Damage{DamageDice: "1d8", DamageType: &entities.ReferenceItem{Name: "Slashing"}},
			Properties:        []*entities.ReferenceItem{{Name: "Versatile"}, {Name: "Monk"}},
			EquipmentCategory: &entities.ReferenceItem{Key: "martial-weapons"},
		}

		result := convertEquipment(weapon)

		require.NotNil(t, result)
		assert.Equal(t, map[string]any{
			"name":           "Longsword",
			"source":         "SRD",
			"srd":            true,
			"type":           "M",
			"weapon":         true,
			"weaponCategory": "martial",
			"weight":         3.0,
			"value":          1500.0,
			"dmg1":           "1d8",
			"dmgType":        "S",
			"property":       []any{"V"},
			"sword":          true,
		}, result.Fields)
	})

	t.Run("convert ranged weapon families", func(t *testing.T) {
		longbow := convertEquipment(&entities.Weapon{Name: "Longbow", WeaponRange: "Ranged"})
		require.NotNil(t, longbow)
		assert.Equal(t, "R", longbow.Fields["type"])
		assert.Equal(t, true, longbow.Fields["bow"])
		assert.NotContains(t, longbow.Fields, "crossbow")

		crossbow := convertEquipment(&entities.Weapon{Name: "Crossbow, light", WeaponRange: "Ranged"})
		require.NotNil(t, crossbow)
		assert.Equal(t, true, crossbow.Fields["crossbow"])
		assert.NotContains(t, crossbow.Fields, "bow")

		handaxe := convertEquipment(&entities.Weapon{Name: "Handaxe", WeaponRange: "Melee"})
		require.NotNil(t, handaxe)
		assert.Equal(t, true, handaxe.Fields["axe"])
	})

	t.Run("convert armor equipment", func(t *testing.T) {
		armor := &entities.Armor{
			Key:               "leather-armor",
			Name:              "Leather Armor",
			ArmorCategory:     "Light",
			Weight:            10.0,
			Cost:              &entities.Cost{Quantity: 10, Unit: "gp"},
			ArmorClass:        &entities.ArmorClass{Base: 11, DexBonus: true},
			EquipmentCategory: &entities.ReferenceItem{Key: "light-armor"},
		}

		result := convertEquipment(armor)

		require.NotNil(t, result)
		assert.Equal(t, map[string]any{
			"name":   "Leather Armor",
			"source": "SRD",
			"srd":    true,
			"type":   "LA",
			"armor":  true,
			"ac":     11.0,
			"weight": 10.0,
			"value":  1000.0,
		}, result.Fields)
	})

	t.Run("shields are not armor", func(t *testing.T) {
		result := convertEquipment(&entities.Armor{Name: "Shield", ArmorCategory: "Shield"})
		require.NotNil(t, result)
		assert.Equal(t, "S", result.Fields["type"])
		assert.NotContains(t, result.Fields, "armor")
	})

	t.Run("convert generic equipment", func(t *testing.T) {
		equipment := &entities.Equipment{
			Key:    "abacus",
			Name:   "Abacus",
			Weight: 2.0,
			Cost:   &entities.Cost{Quantity: 2, Unit: "gp"},
		}

		result := convertEquipment(equipment)

		require.NotNil(t, result)
		assert.Equal(t, "Abacus", result.Name)
		assert.Equal(t, 2.0, result.Fields["weight"])
		assert.Equal(t, 200.0, result.Fields["value"])
	})

	t.Run("convert nil equipment", func(t *testing.T) {
		assert.Nil(t, convertEquipment(nil))
	})
}
