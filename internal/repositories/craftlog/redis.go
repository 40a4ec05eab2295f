package craftlog

import (
	"context"
	"encoding/json"

	"github.com/forgebound/crafting-api/internal/errors"
	"github.com/forgebound/crafting-api/internal/pkg/clock"
	"github.com/forgebound/crafting-api/internal/pkg/idgen"
	redisclient "github.com/forgebound/crafting-api/internal/redis"
)

const (
	// Key pattern: craftlog:{party_id}, a list of JSON entries newest first
	logKeyPrefix = "craftlog:"

	// Retention cap per party; the list is trimmed after every push
	maxEntries = 100

	defaultListLimit = 20

	// Error messages
	errPartyIDEmpty     = "party ID cannot be empty"
	errResultInvalid    = "result must name a valid ref and positive quantity"
	errMaterialsInvalid = "materials must name valid refs and positive quantities"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client      redisclient.Client
	Clock       clock.Clock
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	if c.IDGenerator == nil {
		return errors.InvalidArgument("ID generator is required")
	}
	return nil
}

type redisRepository struct {
	client      redisclient.Client
	clock       clock.Clock
	idGenerator idgen.Generator
}

// NewRedisRepository creates a new Redis repository for craft history
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client:      cfg.Client,
		clock:       cfg.Clock,
		idGenerator: cfg.IDGenerator,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Append records a completed craft and trims the list to the retention cap
func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if err := validateAppendInput(input); err != nil {
		return nil, err
	}

	entry := &Entry{
		ID:        r.idGenerator.Generate(),
		PartyID:   input.PartyID,
		Result:    input.Result,
		Materials: input.Materials,
		Cost:      input.Cost,
		CraftedAt: r.clock.Now().UTC(),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal craft log entry")
	}

	key := buildLogKey(input.PartyID)
	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, maxEntries-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store craft log entry in Redis")
	}

	return &AppendOutput{
		Entry: entry,
	}, nil
}

// List returns the most recent crafts, newest first
func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.PartyID == "" {
		return nil, errors.InvalidArgument(errPartyIDEmpty)
	}

	limit := clampLimit(input.Limit)
	raw, err := r.client.LRange(ctx, buildLogKey(input.PartyID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read craft log from Redis")
	}

	entries := make([]*Entry, 0, len(raw))
	for _, item := range raw {
		var entry Entry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, errors.Internalf("corrupt craft log entry: %v", err)
		}
		entries = append(entries, &entry)
	}

	return &ListOutput{
		Entries: entries,
	}, nil
}

func validateAppendInput(input AppendInput) error {
	if input.PartyID == "" {
		return errors.InvalidArgument(errPartyIDEmpty)
	}
	if !input.Result.Ref.Valid() || input.Result.Quantity <= 0 {
		return errors.InvalidArgument(errResultInvalid)
	}
	for _, material := range input.Materials {
		if !material.Ref.Valid() || material.Quantity <= 0 {
			return errors.InvalidArgument(errMaterialsInvalid)
		}
	}
	if input.Cost < 0 {
		return errors.InvalidArgument("cost cannot be negative")
	}
	return nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxEntries {
		return maxEntries
	}
	return limit
}

func buildLogKey(partyID string) string {
	return logKeyPrefix + partyID
}
