package inventory

import (
	"context"
	"strconv"

	redis "github.com/redis/go-redis/v9"

	"github.com/forgebound/crafting-api/internal/entities"
	"github.com/forgebound/crafting-api/internal/errors"
	redisclient "github.com/forgebound/crafting-api/internal/redis"
)

const (
	// Key patterns: inventory:{party_id} is a hash of ref -> quantity,
	// currency:{party_id} is a plain integer string
	inventoryKeyPrefix = "inventory:"
	currencyKeyPrefix  = "currency:"

	// A concurrent writer invalidates the optimistic transaction; a few
	// retries ride out transient contention before giving up.
	maxExchangeAttempts = 5

	// Error messages
	errPartyIDEmpty        = "party ID cannot be empty"
	errRefInvalid          = "entity ref is invalid"
	errQuantityNotPositive = "quantity must be positive"
	errAmountNotPositive   = "amount must be positive"
	errSpendNegative       = "currency to spend cannot be negative"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis repository for party inventories
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// GetSnapshot reads the inventory hash and currency balance in one view
func (r *redisRepository) GetSnapshot(ctx context.Context, input GetSnapshotInput) (*GetSnapshotOutput, error) {
	if input.PartyID == "" {
		return nil, errors.InvalidArgument(errPartyIDEmpty)
	}

	snapshot, err := readSnapshot(ctx, r.client, input.PartyID)
	if err != nil {
		return nil, err
	}

	return &GetSnapshotOutput{
		Snapshot: snapshot,
	}, nil
}

// QuantityOf reads a single held quantity
func (r *redisRepository) QuantityOf(ctx context.Context, input QuantityOfInput) (*QuantityOfOutput, error) {
	if input.PartyID == "" {
		return nil, errors.InvalidArgument(errPartyIDEmpty)
	}
	if !input.Ref.Valid() {
		return nil, errors.InvalidArgument(errRefInvalid)
	}

	raw, err := r.client.HGet(ctx, buildInventoryKey(input.PartyID), input.Ref.String()).Result()
	if err != nil {
		if err == redis.Nil {
			return &QuantityOfOutput{Quantity: 0}, nil
		}
		return nil, errors.Wrapf(err, "failed to read quantity from Redis")
	}

	quantity, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.Internalf("corrupt quantity for %s: %q", input.Ref.String(), raw)
	}

	return &QuantityOfOutput{
		Quantity: quantity,
	}, nil
}

// Has reports whether at least one unit of the ref is held
func (r *redisRepository) Has(ctx context.Context, input HasInput) (*HasOutput, error) {
	out, err := r.QuantityOf(ctx, QuantityOfInput{
		PartyID: input.PartyID,
		Ref:     input.Ref,
	})
	if err != nil {
		return nil, err
	}

	return &HasOutput{
		Held: out.Quantity > 0,
	}, nil
}

// Currency reads the currency balance, zero when the key is absent
func (r *redisRepository) Currency(ctx context.Context, input CurrencyInput) (*CurrencyOutput, error) {
	if input.PartyID == "" {
		return nil, errors.InvalidArgument(errPartyIDEmpty)
	}

	amount, err := readCurrency(ctx, r.client, input.PartyID)
	if err != nil {
		return nil, err
	}

	return &CurrencyOutput{
		Amount: amount,
	}, nil
}

// Add grants units of an entity
func (r *redisRepository) Add(ctx context.Context, input AddInput) (*AddOutput, error) {
	if input.PartyID == "" {
		return nil, errors.InvalidArgument(errPartyIDEmpty)
	}
	if !input.Ref.Valid() {
		return nil, errors.InvalidArgument(errRefInvalid)
	}
	if input.Quantity <= 0 {
		return nil, errors.InvalidArgument(errQuantityNotPositive)
	}

	newQuantity, err := r.client.HIncrBy(ctx, buildInventoryKey(input.PartyID), input.Ref.String(), int64(input.Quantity)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to add %s to inventory", input.Ref.String())
	}

	return &AddOutput{
		NewQuantity: int(newQuantity),
	}, nil
}

// Consume removes units of an entity, failing cleanly on shortfall
func (r *redisRepository) Consume(ctx context.Context, input ConsumeInput) (*ConsumeOutput, error) {
	if input.PartyID == "" {
		return nil, errors.InvalidArgument(errPartyIDEmpty)
	}
	if !input.Ref.Valid() {
		return nil, errors.InvalidArgument(errRefInvalid)
	}
	if input.Quantity <= 0 {
		return nil, errors.InvalidArgument(errQuantityNotPositive)
	}

	snapshot, err := r.exchange(ctx, ApplyExchangeInput{
		PartyID: input.PartyID,
		Consume: []entities.Material{{Ref: input.Ref, Quantity: input.Quantity}},
	})
	if err != nil {
		return nil, err
	}

	return &ConsumeOutput{
		NewQuantity: snapshot.QuantityOf(input.Ref),
	}, nil
}

// AddCurrency grants currency
func (r *redisRepository) AddCurrency(ctx context.Context, input AddCurrencyInput) (*AddCurrencyOutput, error) {
	if input.PartyID == "" {
		return nil, errors.InvalidArgument(errPartyIDEmpty)
	}
	if input.Amount <= 0 {
		return nil, errors.InvalidArgument(errAmountNotPositive)
	}

	balance, err := r.client.IncrBy(ctx, buildCurrencyKey(input.PartyID), int64(input.Amount)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to add currency")
	}

	return &AddCurrencyOutput{
		Balance: int(balance),
	}, nil
}

// SpendCurrency spends currency, failing cleanly when the balance is short
func (r *redisRepository) SpendCurrency(ctx context.Context, input SpendCurrencyInput) (*SpendCurrencyOutput, error) {
	if input.PartyID == "" {
		return nil, errors.InvalidArgument(errPartyIDEmpty)
	}
	if input.Amount <= 0 {
		return nil, errors.InvalidArgument(errAmountNotPositive)
	}

	snapshot, err := r.exchange(ctx, ApplyExchangeInput{
		PartyID:       input.PartyID,
		SpendCurrency: input.Amount,
	})
	if err != nil {
		return nil, err
	}

	return &SpendCurrencyOutput{
		Balance: snapshot.Currency,
	}, nil
}

// ApplyExchange applies a whole resource exchange atomically
func (r *redisRepository) ApplyExchange(ctx context.Context, input ApplyExchangeInput) (*ApplyExchangeOutput, error) {
	if input.PartyID == "" {
		return nil, errors.InvalidArgument(errPartyIDEmpty)
	}
	for _, material := range input.Consume {
		if !material.Ref.Valid() {
			return nil, errors.InvalidArgument(errRefInvalid)
		}
		if material.Quantity <= 0 {
			return nil, errors.InvalidArgument(errQuantityNotPositive)
		}
	}
	for _, material := range input.Grant {
		if !material.Ref.Valid() {
			return nil, errors.InvalidArgument(errRefInvalid)
		}
		if material.Quantity <= 0 {
			return nil, errors.InvalidArgument(errQuantityNotPositive)
		}
	}
	if input.SpendCurrency < 0 {
		return nil, errors.InvalidArgument(errSpendNegative)
	}

	snapshot, err := r.exchange(ctx, input)
	if err != nil {
		return nil, err
	}

	return &ApplyExchangeOutput{
		Snapshot: snapshot,
	}, nil
}

// exchange runs the optimistic WATCH/MULTI/EXEC loop. Preconditions are
// re-verified against the watched keys on every attempt, so a concurrent
// mutation turns the exchange into a clean FailedPrecondition instead of
// a negative balance.
func (r *redisRepository) exchange(ctx context.Context, input ApplyExchangeInput) (entities.Snapshot, error) {
	inventoryKey := buildInventoryKey(input.PartyID)
	currencyKey := buildCurrencyKey(input.PartyID)

	var result entities.Snapshot
	attempt := func(tx *redis.Tx) error {
		snapshot, err := readSnapshot(ctx, tx, input.PartyID)
		if err != nil {
			return err
		}

		// Verify each consumption against the aggregate demand for its
		// ref; grants never fund consumption within the same exchange.
		demand := make(map[string]int)
		for _, material := range input.Consume {
			demand[material.Ref.String()] += material.Quantity
		}
		for _, material := range input.Consume {
			field := material.Ref.String()
			if snapshot.Quantities[field] < demand[field] {
				return errors.FailedPreconditionf("not enough %s: have %d, need %d",
					field, snapshot.Quantities[field], demand[field])
			}
		}
		if snapshot.Currency < input.SpendCurrency {
			return errors.FailedPreconditionf("not enough currency: have %d, need %d",
				snapshot.Currency, input.SpendCurrency)
		}

		next := make(map[string]int, len(snapshot.Quantities))
		for field, quantity := range snapshot.Quantities {
			next[field] = quantity
		}
		for _, material := range input.Consume {
			next[material.Ref.String()] -= material.Quantity
		}
		for _, material := range input.Grant {
			next[material.Ref.String()] += material.Quantity
		}
		balance := snapshot.Currency - input.SpendCurrency

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for field, quantity := range next {
				if quantity == snapshot.Quantities[field] {
					continue
				}
				if quantity <= 0 {
					pipe.HDel(ctx, inventoryKey, field)
				} else {
					pipe.HSet(ctx, inventoryKey, field, quantity)
				}
			}
			if input.SpendCurrency > 0 {
				pipe.Set(ctx, currencyKey, balance, 0)
			}
			return nil
		})
		if err != nil {
			return err
		}

		for field, quantity := range next {
			if quantity <= 0 {
				delete(next, field)
			}
		}
		result = entities.Snapshot{
			Quantities: next,
			Currency:   balance,
		}
		return nil
	}

	for i := 0; i < maxExchangeAttempts; i++ {
		err := r.client.Watch(ctx, attempt, inventoryKey, currencyKey)
		if err == nil {
			return result, nil
		}
		if err == redis.TxFailedErr {
			continue
		}
		return entities.Snapshot{}, err
	}

	return entities.Snapshot{}, errors.Abortedf("inventory exchange for party %s kept conflicting with concurrent writes", input.PartyID)
}

// readSnapshot works against either the live client or a transaction
func readSnapshot(ctx context.Context, c redis.Cmdable, partyID string) (entities.Snapshot, error) {
	fields, err := c.HGetAll(ctx, buildInventoryKey(partyID)).Result()
	if err != nil {
		return entities.Snapshot{}, errors.Wrapf(err, "failed to read inventory from Redis")
	}

	quantities := make(map[string]int, len(fields))
	for field, raw := range fields {
		quantity, err := strconv.Atoi(raw)
		if err != nil {
			return entities.Snapshot{}, errors.Internalf("corrupt quantity for %s: %q", field, raw)
		}
		quantities[field] = quantity
	}

	currency, err := readCurrency(ctx, c, partyID)
	if err != nil {
		return entities.Snapshot{}, err
	}

	return entities.Snapshot{
		Quantities: quantities,
		Currency:   currency,
	}, nil
}

func readCurrency(ctx context.Context, c redis.Cmdable, partyID string) (int, error) {
	raw, err := c.Get(ctx, buildCurrencyKey(partyID)).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, errors.Wrapf(err, "failed to read currency from Redis")
	}

	amount, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Internalf("corrupt currency balance: %q", raw)
	}

	return amount, nil
}

func buildInventoryKey(partyID string) string {
	return inventoryKeyPrefix + partyID
}

func buildCurrencyKey(partyID string) string {
	return currencyKeyPrefix + partyID
}
