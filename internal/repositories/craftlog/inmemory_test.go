package craftlog_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/forgebound/crafting-api/internal/entities"
	"github.com/forgebound/crafting-api/internal/pkg/clock"
	"github.com/forgebound/crafting-api/internal/pkg/idgen"
	"github.com/forgebound/crafting-api/internal/repositories/craftlog"
)

func newMemoryRepo(t *testing.T) craftlog.Repository {
	repo, err := craftlog.NewMemoryRepository(&craftlog.MemoryConfig{
		Clock:       clock.NewFixed(time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)),
		IDGenerator: idgen.NewSequential("craft"),
	})
	require.NoError(t, err)
	return repo
}

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("append and list newest first", func(t *testing.T) {
		repo := newMemoryRepo(t)

		for i := 0; i < 3; i++ {
			_, err := repo.Append(ctx, craftlog.AppendInput{
				PartyID:   testPartyID,
				Result:    testPotion,
				Materials: []entities.Material{testHerb, testWater},
				Cost:      50,
			})
			require.NoError(t, err)
		}

		out, err := repo.List(ctx, craftlog.ListInput{PartyID: testPartyID})
		require.NoError(t, err)
		require.Len(t, out.Entries, 3)
		require.Equal(t, "craft_3", out.Entries[0].ID)
		require.Equal(t, "craft_1", out.Entries[2].ID)
	})

	t.Run("retention cap", func(t *testing.T) {
		repo := newMemoryRepo(t)

		for i := 0; i < 103; i++ {
			_, err := repo.Append(ctx, craftlog.AppendInput{
				PartyID: testPartyID,
				Result:  testPotion,
			})
			require.NoError(t, err)
		}

		out, err := repo.List(ctx, craftlog.ListInput{PartyID: testPartyID, Limit: 1000})
		require.NoError(t, err)
		require.Len(t, out.Entries, 100)
		require.Equal(t, "craft_103", out.Entries[0].ID)
		require.Equal(t, "craft_4", out.Entries[99].ID)
	})

	t.Run("missing config rejected", func(t *testing.T) {
		_, err := craftlog.NewMemoryRepository(&craftlog.MemoryConfig{})
		require.Error(t, err)
	})
}
