package tagline_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-item-converter/internal/entities/item"
	"github.com/KirkDiggler/rpg-item-converter/internal/errors"
	"github.com/KirkDiggler/rpg-item-converter/internal/services/tagline"
)

type VariantTestSuite struct {
	suite.Suite
}

func TestVariantSuite(t *testing.T) {
	suite.Run(t, new(VariantTestSuite))
}

func (s *VariantTestSuite) TestSynthesizeVariant() {
	s.Run("buckets take precedence over bases", func() {
		draft := &item.Item{Name: "Weapon +1", Rarity: item.RarityUncommon}
		variant, err := tagline.SynthesizeVariant(draft, &tagline.Result{
			GenericTypes: []item.Bucket{item.BucketWeapon},
			VariantBases: []*item.BaseItem{{Name: "Dagger"}},
		})
		s.Require().NoError(err)
		s.Equal([]item.Constraint{{"weapon": true}}, variant.Requires)
		s.Equal("+1 ", variant.Inherits.NamePrefix)
	})

	constraints := []struct {
		bucket item.Bucket
		want   item.Constraint
	}{
		{item.BucketMelee, item.Constraint{"type": "M"}},
		{item.BucketRanged, item.Constraint{"type": "R"}},
		{item.BucketSword, item.Constraint{"sword": true}},
		{item.BucketHeavyArmor, item.Constraint{"type": "HA"}},
		{item.BucketLightArmor, item.Constraint{"type": "LA"}},
	}
	for _, tc := range constraints {
		s.Run("constraint for "+string(tc.bucket), func() {
			variant, err := tagline.SynthesizeVariant(&item.Item{Name: "Blade of Testing"}, &tagline.Result{
				GenericTypes: []item.Bucket{tc.bucket},
			})
			s.Require().NoError(err)
			s.Equal([]item.Constraint{tc.want}, variant.Requires)
		})
	}

	s.Run("unknown bucket is an internal error", func() {
		_, err := tagline.SynthesizeVariant(&item.Item{Name: "Odd"}, &tagline.Result{
			GenericTypes: []item.Bucket{"polearm"},
		})
		s.Require().Error(err)
		s.True(errors.IsInternal(err))
		s.Contains(err.Error(), `unhandled generic type "polearm"`)
	})

	s.Run("nothing to synthesize is an internal error", func() {
		_, err := tagline.SynthesizeVariant(&item.Item{Name: "Odd"}, &tagline.Result{})
		s.Require().Error(err)
		s.True(errors.IsInternal(err))
	})

	s.Run("missing name is an internal error", func() {
		_, err := tagline.SynthesizeVariant(&item.Item{}, &tagline.Result{
			GenericTypes: []item.Bucket{item.BucketArmor},
		})
		s.Require().Error(err)
		s.True(errors.IsInternal(err))
	})

	s.Run("constraints are not shared between variants", func() {
		res := &tagline.Result{GenericTypes: []item.Bucket{item.BucketBow}}
		first, err := tagline.SynthesizeVariant(&item.Item{Name: "Oathbow"}, res)
		s.Require().NoError(err)
		first.Requires[0]["bow"] = false

		second, err := tagline.SynthesizeVariant(&item.Item{Name: "Oathbow"}, res)
		s.Require().NoError(err)
		s.Equal(true, second.Requires[0]["bow"])
	})
}

func (s *VariantTestSuite) TestMergeBaseItem() {
	base := item.NewBaseItem(map[string]any{
		"name":     "Longsword",
		"source":   "PHB",
		"page":     149.0,
		"srd":      true,
		"type":     "M",
		"weight":   3.0,
		"value":    1500.0,
		"dmg1":     "1d8",
		"_comment": "internal",
	})

	s.Run("keeps draft values", func() {
		draft := &item.Item{Name: "Frost Brand", Type: item.TypeRanged, Page: 171}
		tagline.MergeBaseItem(draft, base, "PHB")

		s.Equal(item.TypeRanged, draft.Type)
		s.Equal(171, draft.Page)
		s.Empty(draft.Source)
		s.Equal("1d8", draft.Props["dmg1"])
		s.Require().NotNil(draft.Weight)
		s.Equal(3.0, *draft.Weight)
		s.NotContains(draft.Props, "value")
		s.NotContains(draft.Props, "srd")
		s.NotContains(draft.Props, "_comment")
		s.Equal("longsword", draft.BaseItem)
	})

	s.Run("nil base is a no-op", func() {
		draft := &item.Item{Name: "Frost Brand"}
		tagline.MergeBaseItem(draft, nil, "PHB")
		s.Equal(&item.Item{Name: "Frost Brand"}, draft)
	})
}
