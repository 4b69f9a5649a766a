package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-item-converter/internal/entities/item"
	"github.com/KirkDiggler/rpg-item-converter/internal/errors"
	mockclock "github.com/KirkDiggler/rpg-item-converter/internal/pkg/clock/mock"
	"github.com/KirkDiggler/rpg-item-converter/internal/redis"
	"github.com/KirkDiggler/rpg-item-converter/internal/repositories/catalog"
	"github.com/KirkDiggler/rpg-item-converter/internal/testutils"
)

type RedisCatalogTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockClock *mockclock.MockClock
	client    redis.Client
	mr        *miniredis.Miniredis
	repo      catalog.Repository
	ctx       context.Context
	now       time.Time
}

func (s *RedisCatalogTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.client, s.mr = testutils.CreateTestRedisClient(s.T())
	s.ctx = context.Background()
	s.now = time.Date(2025, 7, 18, 6, 12, 44, 500, time.UTC)

	repo, err := catalog.NewRedis(&catalog.RedisConfig{
		Client: s.client,
		Clock:  s.mockClock,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisCatalogTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RedisCatalogTestSuite) dagger() *item.BaseItem {
	return item.NewBaseItem(map[string]any{
		"name":     "Dagger",
		"source":   "PHB",
		"weight":   1.0,
		"dmg1":     "1d4",
		"property": []any{"F", "L", "T"},
		"weapon":   true,
	})
}

func (s *RedisCatalogTestSuite) plate() *item.BaseItem {
	return item.NewBaseItem(map[string]any{
		"name":   "Plate Armor",
		"source": "PHB",
		"type":   "HA",
		"ac":     18.0,
		"armor":  true,
	})
}

func (s *RedisCatalogTestSuite) TestNewRedis() {
	testCases := []struct {
		name    string
		config  *catalog.RedisConfig
		wantErr bool
		errMsg  string
	}{
		{
			name:   "success with valid config",
			config: &catalog.RedisConfig{Client: s.client},
		},
		{
			name:    "error with nil config",
			config:  nil,
			wantErr: true,
			errMsg:  "config cannot be nil",
		},
		{
			name:    "error with nil client",
			config:  &catalog.RedisConfig{},
			wantErr: true,
			errMsg:  "client cannot be nil",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := catalog.NewRedis(tc.config)
			if tc.wantErr {
				s.Error(err)
				s.Contains(err.Error(), tc.errMsg)
				s.Nil(repo)
				return
			}
			s.NoError(err)
			s.NotNil(repo)
		})
	}
}

func (s *RedisCatalogTestSuite) TestSave() {
	s.mockClock.EXPECT().Now().Return(s.now)

	output, err := s.repo.Save(s.ctx, catalog.SaveInput{
		BaseItems: []*item.BaseItem{s.plate(), s.dagger()},
		Classes:   []*item.Class{{Name: "Wizard", Source: "PHB"}},
	})
	s.Require().NoError(err)
	s.Equal(2, output.BaseItemCount)
	s.Equal(1, output.ClassCount)
	s.True(s.now.Truncate(time.Second).Equal(output.SyncedAt))

	s.True(s.mr.Exists("catalog:base_items"))
	s.Equal(`{"name":"Wizard","source":"PHB"}`, s.mr.HGet("catalog:classes", "wizard|phb"))
	s.NotEmpty(s.mr.HGet("catalog:base_items", "dagger|phb"))

	syncedAt, err := s.mr.Get("catalog:synced_at")
	s.NoError(err)
	s.Equal("2025-07-18T06:12:44Z", syncedAt)
}

func (s *RedisCatalogTestSuite) TestSaveReplacesPreviousSnapshot() {
	s.mockClock.EXPECT().Now().Return(s.now).Times(2)

	_, err := s.repo.Save(s.ctx, catalog.SaveInput{
		BaseItems: []*item.BaseItem{s.plate(), s.dagger()},
	})
	s.Require().NoError(err)

	_, err = s.repo.Save(s.ctx, catalog.SaveInput{
		BaseItems: []*item.BaseItem{s.dagger()},
	})
	s.Require().NoError(err)

	s.Equal("", s.mr.HGet("catalog:base_items", "plate armor|phb"))
	s.False(s.mr.Exists("catalog:classes"))
}

func (s *RedisCatalogTestSuite) TestSaveEmpty() {
	output, err := s.repo.Save(s.ctx, catalog.SaveInput{})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Nil(output)
}

func (s *RedisCatalogTestSuite) TestLoad() {
	testCases := []struct {
		name     string
		setup    func()
		wantErr  bool
		errCheck func(error) bool
		validate func(output *catalog.LoadOutput)
	}{
		{
			name: "round trip",
			setup: func() {
				s.mockClock.EXPECT().Now().Return(s.now)
				_, err := s.repo.Save(s.ctx, catalog.SaveInput{
					BaseItems: []*item.BaseItem{s.plate(), s.dagger()},
					Classes: []*item.Class{
						{Name: "Wizard", Source: "PHB"},
						{Name: "Bard", Source: "PHB"},
					},
				})
				s.Require().NoError(err)
			},
			validate: func(output *catalog.LoadOutput) {
				s.Require().Len(output.BaseItems, 2)
				s.Equal("dagger|phb", output.BaseItems[0].GetID())
				s.Equal(s.dagger().Fields, output.BaseItems[0].Fields)
				s.Equal("plate armor|phb", output.BaseItems[1].GetID())
				s.Equal([]*item.Class{
					{Name: "Bard", Source: "PHB"},
					{Name: "Wizard", Source: "PHB"},
				}, output.Classes)
				s.True(s.now.Truncate(time.Second).Equal(output.SyncedAt))
			},
		},
		{
			name:     "no snapshot",
			setup:    func() {},
			wantErr:  true,
			errCheck: errors.IsNotFound,
		},
		{
			name: "corrupt entry",
			setup: func() {
				s.Require().NoError(s.mr.Set("catalog:synced_at", "2025-07-18T06:12:44Z"))
				s.mr.HSet("catalog:base_items", "dagger|phb", "{not json")
			},
			wantErr:  true,
			errCheck: errors.IsInternal,
		},
		{
			name: "bad snapshot time",
			setup: func() {
				s.Require().NoError(s.mr.Set("catalog:synced_at", "yesterday"))
			},
			wantErr:  true,
			errCheck: errors.IsInternal,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mr.FlushAll()
			tc.setup()

			output, err := s.repo.Load(s.ctx, catalog.LoadInput{})
			if tc.wantErr {
				s.Error(err)
				s.True(tc.errCheck(err))
				s.Nil(output)
				return
			}
			s.Require().NoError(err)
			tc.validate(output)
		})
	}
}

func (s *RedisCatalogTestSuite) TestKeyPrefix() {
	s.mockClock.EXPECT().Now().Return(s.now)

	repo, err := catalog.NewRedis(&catalog.RedisConfig{
		Client:    s.client,
		Clock:     s.mockClock,
		KeyPrefix: "srd:",
	})
	s.Require().NoError(err)

	_, err = repo.Save(s.ctx, catalog.SaveInput{Classes: []*item.Class{{Name: "Bard", Source: "SRD"}}})
	s.Require().NoError(err)

	s.True(s.mr.Exists("srd:classes"))
	s.False(s.mr.Exists("catalog:classes"))
}

func TestRedisCatalogTestSuite(t *testing.T) {
	suite.Run(t, new(RedisCatalogTestSuite))
}
