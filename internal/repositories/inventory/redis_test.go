package inventory_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/forgebound/crafting-api/internal/entities"
	"github.com/forgebound/crafting-api/internal/errors"
	"github.com/forgebound/crafting-api/internal/repositories/inventory"
	"github.com/forgebound/crafting-api/internal/testutils"
)

const testPartyID = "party_123"

var (
	testHerb   = entities.Ref{Kind: entities.KindConsumable, ID: 8}
	testWater  = entities.Ref{Kind: entities.KindConsumable, ID: 9}
	testPotion = entities.Ref{Kind: entities.KindConsumable, ID: 1}
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    inventory.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := inventory.NewRedisRepository(&inventory.Config{
		Client: client,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestAddAndQuantityOf() {
	out, err := s.repo.Add(s.ctx, inventory.AddInput{
		PartyID:  testPartyID,
		Ref:      testHerb,
		Quantity: 3,
	})
	s.NoError(err)
	s.Equal(3, out.NewQuantity)

	out, err = s.repo.Add(s.ctx, inventory.AddInput{
		PartyID:  testPartyID,
		Ref:      testHerb,
		Quantity: 2,
	})
	s.NoError(err)
	s.Equal(5, out.NewQuantity)

	qty, err := s.repo.QuantityOf(s.ctx, inventory.QuantityOfInput{
		PartyID: testPartyID,
		Ref:     testHerb,
	})
	s.NoError(err)
	s.Equal(5, qty.Quantity)

	qty, err = s.repo.QuantityOf(s.ctx, inventory.QuantityOfInput{
		PartyID: testPartyID,
		Ref:     testWater,
	})
	s.NoError(err)
	s.Equal(0, qty.Quantity)

	has, err := s.repo.Has(s.ctx, inventory.HasInput{PartyID: testPartyID, Ref: testHerb})
	s.NoError(err)
	s.True(has.Held)

	has, err = s.repo.Has(s.ctx, inventory.HasInput{PartyID: testPartyID, Ref: testWater})
	s.NoError(err)
	s.False(has.Held)
}

func (s *RedisRepositoryTestSuite) TestGetSnapshotEmptyParty() {
	out, err := s.repo.GetSnapshot(s.ctx, inventory.GetSnapshotInput{PartyID: "party_nobody"})
	s.NoError(err)
	s.Empty(out.Snapshot.Quantities)
	s.Equal(0, out.Snapshot.Currency)
}

func (s *RedisRepositoryTestSuite) TestCurrencyLifecycle() {
	out, err := s.repo.Currency(s.ctx, inventory.CurrencyInput{PartyID: testPartyID})
	s.NoError(err)
	s.Equal(0, out.Amount)

	added, err := s.repo.AddCurrency(s.ctx, inventory.AddCurrencyInput{
		PartyID: testPartyID,
		Amount:  60,
	})
	s.NoError(err)
	s.Equal(60, added.Balance)

	spent, err := s.repo.SpendCurrency(s.ctx, inventory.SpendCurrencyInput{
		PartyID: testPartyID,
		Amount:  50,
	})
	s.NoError(err)
	s.Equal(10, spent.Balance)

	_, err = s.repo.SpendCurrency(s.ctx, inventory.SpendCurrencyInput{
		PartyID: testPartyID,
		Amount:  20,
	})
	s.Error(err)
	s.True(errors.IsFailedPrecondition(err))

	out, err = s.repo.Currency(s.ctx, inventory.CurrencyInput{PartyID: testPartyID})
	s.NoError(err)
	s.Equal(10, out.Amount)
}

func (s *RedisRepositoryTestSuite) TestConsume() {
	_, err := s.repo.Add(s.ctx, inventory.AddInput{PartyID: testPartyID, Ref: testHerb, Quantity: 5})
	s.Require().NoError(err)

	out, err := s.repo.Consume(s.ctx, inventory.ConsumeInput{
		PartyID:  testPartyID,
		Ref:      testHerb,
		Quantity: 2,
	})
	s.NoError(err)
	s.Equal(3, out.NewQuantity)

	out, err = s.repo.Consume(s.ctx, inventory.ConsumeInput{
		PartyID:  testPartyID,
		Ref:      testHerb,
		Quantity: 3,
	})
	s.NoError(err)
	s.Equal(0, out.NewQuantity)

	// Fully consumed refs disappear from the snapshot entirely
	snap, err := s.repo.GetSnapshot(s.ctx, inventory.GetSnapshotInput{PartyID: testPartyID})
	s.NoError(err)
	s.NotContains(snap.Snapshot.Quantities, testHerb.String())

	_, err = s.repo.Consume(s.ctx, inventory.ConsumeInput{
		PartyID:  testPartyID,
		Ref:      testHerb,
		Quantity: 1,
	})
	s.Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *RedisRepositoryTestSuite) TestConsumeShortfallLeavesQuantity() {
	_, err := s.repo.Add(s.ctx, inventory.AddInput{PartyID: testPartyID, Ref: testHerb, Quantity: 1})
	s.Require().NoError(err)

	_, err = s.repo.Consume(s.ctx, inventory.ConsumeInput{
		PartyID:  testPartyID,
		Ref:      testHerb,
		Quantity: 2,
	})
	s.Error(err)
	s.True(errors.IsFailedPrecondition(err))

	qty, err := s.repo.QuantityOf(s.ctx, inventory.QuantityOfInput{PartyID: testPartyID, Ref: testHerb})
	s.NoError(err)
	s.Equal(1, qty.Quantity)
}

func (s *RedisRepositoryTestSuite) TestApplyExchange() {
	_, err := s.repo.Add(s.ctx, inventory.AddInput{PartyID: testPartyID, Ref: testHerb, Quantity: 2})
	s.Require().NoError(err)
	_, err = s.repo.Add(s.ctx, inventory.AddInput{PartyID: testPartyID, Ref: testWater, Quantity: 1})
	s.Require().NoError(err)
	_, err = s.repo.AddCurrency(s.ctx, inventory.AddCurrencyInput{PartyID: testPartyID, Amount: 60})
	s.Require().NoError(err)

	out, err := s.repo.ApplyExchange(s.ctx, inventory.ApplyExchangeInput{
		PartyID: testPartyID,
		Consume: []entities.Material{
			{Ref: testHerb, Quantity: 2},
			{Ref: testWater, Quantity: 1},
		},
		Grant:         []entities.Material{{Ref: testPotion, Quantity: 1}},
		SpendCurrency: 50,
	})
	s.NoError(err)
	s.Equal(10, out.Snapshot.Currency)
	s.Equal(1, out.Snapshot.QuantityOf(testPotion))
	s.Equal(0, out.Snapshot.QuantityOf(testHerb))
	s.Equal(0, out.Snapshot.QuantityOf(testWater))

	// The returned view matches what was persisted
	snap, err := s.repo.GetSnapshot(s.ctx, inventory.GetSnapshotInput{PartyID: testPartyID})
	s.NoError(err)
	s.Equal(out.Snapshot, snap.Snapshot)
}

func (s *RedisRepositoryTestSuite) TestApplyExchangeMaterialShortfall() {
	_, err := s.repo.Add(s.ctx, inventory.AddInput{PartyID: testPartyID, Ref: testHerb, Quantity: 1})
	s.Require().NoError(err)
	_, err = s.repo.AddCurrency(s.ctx, inventory.AddCurrencyInput{PartyID: testPartyID, Amount: 100})
	s.Require().NoError(err)

	_, err = s.repo.ApplyExchange(s.ctx, inventory.ApplyExchangeInput{
		PartyID:       testPartyID,
		Consume:       []entities.Material{{Ref: testHerb, Quantity: 2}},
		Grant:         []entities.Material{{Ref: testPotion, Quantity: 1}},
		SpendCurrency: 50,
	})
	s.Error(err)
	s.True(errors.IsFailedPrecondition(err))

	// Nothing moved
	snap, err := s.repo.GetSnapshot(s.ctx, inventory.GetSnapshotInput{PartyID: testPartyID})
	s.NoError(err)
	s.Equal(1, snap.Snapshot.QuantityOf(testHerb))
	s.Equal(0, snap.Snapshot.QuantityOf(testPotion))
	s.Equal(100, snap.Snapshot.Currency)
}

func (s *RedisRepositoryTestSuite) TestApplyExchangeCurrencyShortfall() {
	_, err := s.repo.Add(s.ctx, inventory.AddInput{PartyID: testPartyID, Ref: testHerb, Quantity: 2})
	s.Require().NoError(err)
	_, err = s.repo.AddCurrency(s.ctx, inventory.AddCurrencyInput{PartyID: testPartyID, Amount: 10})
	s.Require().NoError(err)

	_, err = s.repo.ApplyExchange(s.ctx, inventory.ApplyExchangeInput{
		PartyID:       testPartyID,
		Consume:       []entities.Material{{Ref: testHerb, Quantity: 2}},
		Grant:         []entities.Material{{Ref: testPotion, Quantity: 1}},
		SpendCurrency: 50,
	})
	s.Error(err)
	s.True(errors.IsFailedPrecondition(err))

	snap, err := s.repo.GetSnapshot(s.ctx, inventory.GetSnapshotInput{PartyID: testPartyID})
	s.NoError(err)
	s.Equal(2, snap.Snapshot.QuantityOf(testHerb))
	s.Equal(10, snap.Snapshot.Currency)
}

func (s *RedisRepositoryTestSuite) TestApplyExchangeAggregatesDuplicateRefs() {
	_, err := s.repo.Add(s.ctx, inventory.AddInput{PartyID: testPartyID, Ref: testHerb, Quantity: 3})
	s.Require().NoError(err)

	// Two materials of the same ref demand 4 in total
	_, err = s.repo.ApplyExchange(s.ctx, inventory.ApplyExchangeInput{
		PartyID: testPartyID,
		Consume: []entities.Material{
			{Ref: testHerb, Quantity: 2},
			{Ref: testHerb, Quantity: 2},
		},
	})
	s.Error(err)
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.repo.Add(s.ctx, inventory.AddInput{PartyID: testPartyID, Ref: testHerb, Quantity: 1})
	s.Require().NoError(err)

	out, err := s.repo.ApplyExchange(s.ctx, inventory.ApplyExchangeInput{
		PartyID: testPartyID,
		Consume: []entities.Material{
			{Ref: testHerb, Quantity: 2},
			{Ref: testHerb, Quantity: 2},
		},
	})
	s.NoError(err)
	s.Equal(0, out.Snapshot.QuantityOf(testHerb))
	s.NotContains(out.Snapshot.Quantities, testHerb.String())
}

func (s *RedisRepositoryTestSuite) TestInputValidation() {
	s.Run("empty party ID", func() {
		_, err := s.repo.GetSnapshot(s.ctx, inventory.GetSnapshotInput{})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("invalid ref", func() {
		_, err := s.repo.Add(s.ctx, inventory.AddInput{
			PartyID:  testPartyID,
			Ref:      entities.Ref{Kind: "potion", ID: 1},
			Quantity: 1,
		})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("zero quantity", func() {
		_, err := s.repo.Add(s.ctx, inventory.AddInput{
			PartyID: testPartyID,
			Ref:     testHerb,
		})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("negative spend in exchange", func() {
		_, err := s.repo.ApplyExchange(s.ctx, inventory.ApplyExchangeInput{
			PartyID:       testPartyID,
			SpendCurrency: -1,
		})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("zero quantity material in exchange", func() {
		_, err := s.repo.ApplyExchange(s.ctx, inventory.ApplyExchangeInput{
			PartyID: testPartyID,
			Consume: []entities.Material{{Ref: testHerb}},
		})
		s.True(errors.IsInvalidArgument(err))
	})
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func TestRedisRepositoryCorruptData(t *testing.T) {
	ctx := context.Background()

	t.Run("corrupt quantity", func(t *testing.T) {
		client, cleanup := testutils.CreateTestRedisClientWithSetup(t, func(mr *miniredis.Miniredis) {
			mr.HSet("inventory:"+testPartyID, testHerb.String(), "banana")
		})
		defer cleanup()

		repo, err := inventory.NewRedisRepository(&inventory.Config{Client: client})
		require.NoError(t, err)

		_, err = repo.GetSnapshot(ctx, inventory.GetSnapshotInput{PartyID: testPartyID})
		require.Error(t, err)
		require.True(t, errors.IsInternal(err))
	})

	t.Run("corrupt currency", func(t *testing.T) {
		client, cleanup := testutils.CreateTestRedisClientWithSetup(t, func(mr *miniredis.Miniredis) {
			require.NoError(t, mr.Set("currency:"+testPartyID, "lots"))
		})
		defer cleanup()

		repo, err := inventory.NewRedisRepository(&inventory.Config{Client: client})
		require.NoError(t, err)

		_, err = repo.Currency(ctx, inventory.CurrencyInput{PartyID: testPartyID})
		require.Error(t, err)
		require.True(t, errors.IsInternal(err))
	})
}
