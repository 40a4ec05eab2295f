package craftlog_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/forgebound/crafting-api/internal/entities"
	"github.com/forgebound/crafting-api/internal/errors"
	"github.com/forgebound/crafting-api/internal/pkg/clock"
	"github.com/forgebound/crafting-api/internal/pkg/idgen"
	"github.com/forgebound/crafting-api/internal/repositories/craftlog"
	"github.com/forgebound/crafting-api/internal/testutils"
)

const testPartyID = "party_123"

var (
	testPotion = entities.Material{Ref: entities.Ref{Kind: entities.KindConsumable, ID: 1}, Quantity: 1}
	testHerb   = entities.Material{Ref: entities.Ref{Kind: entities.KindConsumable, ID: 8}, Quantity: 2}
	testWater  = entities.Material{Ref: entities.Ref{Kind: entities.KindConsumable, ID: 9}, Quantity: 1}
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    craftlog.Repository
	clock   *clock.Fixed
	cleanup func()
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.clock = clock.NewFixed(time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC))

	repo, err := craftlog.NewRedisRepository(&craftlog.Config{
		Client:      client,
		Clock:       s.clock,
		IDGenerator: idgen.NewSequential("craft"),
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) appendCraft() *craftlog.Entry {
	out, err := s.repo.Append(s.ctx, craftlog.AppendInput{
		PartyID:   testPartyID,
		Result:    testPotion,
		Materials: []entities.Material{testHerb, testWater},
		Cost:      50,
	})
	s.Require().NoError(err)
	return out.Entry
}

func (s *RedisRepositoryTestSuite) TestAppendAssignsIDAndTime() {
	entry := s.appendCraft()

	s.Equal("craft_1", entry.ID)
	s.Equal(testPartyID, entry.PartyID)
	s.True(entry.CraftedAt.Equal(s.clock.Now()))
}

func (s *RedisRepositoryTestSuite) TestListNewestFirst() {
	first := s.appendCraft()
	s.clock.Advance(time.Minute)
	second := s.appendCraft()
	s.clock.Advance(time.Minute)
	third := s.appendCraft()

	out, err := s.repo.List(s.ctx, craftlog.ListInput{PartyID: testPartyID})
	s.NoError(err)
	s.Require().Len(out.Entries, 3)
	s.Equal(third.ID, out.Entries[0].ID)
	s.Equal(second.ID, out.Entries[1].ID)
	s.Equal(first.ID, out.Entries[2].ID)
	s.True(out.Entries[0].CraftedAt.After(out.Entries[2].CraftedAt))
}

func (s *RedisRepositoryTestSuite) TestListRespectsLimit() {
	for i := 0; i < 5; i++ {
		s.appendCraft()
	}

	out, err := s.repo.List(s.ctx, craftlog.ListInput{PartyID: testPartyID, Limit: 2})
	s.NoError(err)
	s.Require().Len(out.Entries, 2)
	s.Equal("craft_5", out.Entries[0].ID)
	s.Equal("craft_4", out.Entries[1].ID)
}

func (s *RedisRepositoryTestSuite) TestListEmptyParty() {
	out, err := s.repo.List(s.ctx, craftlog.ListInput{PartyID: "party_nobody"})
	s.NoError(err)
	s.Empty(out.Entries)
}

func (s *RedisRepositoryTestSuite) TestRetentionCap() {
	for i := 0; i < 105; i++ {
		s.appendCraft()
	}

	out, err := s.repo.List(s.ctx, craftlog.ListInput{PartyID: testPartyID, Limit: 1000})
	s.NoError(err)
	s.Require().Len(out.Entries, 100)
	s.Equal("craft_105", out.Entries[0].ID)
	s.Equal("craft_6", out.Entries[99].ID)
}

func (s *RedisRepositoryTestSuite) TestAppendValidation() {
	testCases := []struct {
		name  string
		input craftlog.AppendInput
	}{
		{
			name: "empty party ID",
			input: craftlog.AppendInput{
				Result: testPotion,
			},
		},
		{
			name: "invalid result ref",
			input: craftlog.AppendInput{
				PartyID: testPartyID,
				Result:  entities.Material{Ref: entities.Ref{Kind: "potion", ID: 1}, Quantity: 1},
			},
		},
		{
			name: "zero result quantity",
			input: craftlog.AppendInput{
				PartyID: testPartyID,
				Result:  entities.Material{Ref: testPotion.Ref},
			},
		},
		{
			name: "negative cost",
			input: craftlog.AppendInput{
				PartyID: testPartyID,
				Result:  testPotion,
				Cost:    -1,
			},
		},
	}

	for i, tc := range testCases {
		s.Run(fmt.Sprintf("case %d %s", i, tc.name), func() {
			_, err := s.repo.Append(s.ctx, tc.input)
			s.Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
