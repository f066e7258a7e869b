package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/pto-planner/engine"
	"github.com/warp/pto-planner/engine/store"
)

func TestMemory_LoadBeforeSave(t *testing.T) {
	mem := store.NewMemory()

	_, ok, err := mem.LoadPlan(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemory_RoundTripIsolation(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()

	snap := engine.Snapshot{
		AsOfDate:      "2026-01-09",
		SelectedDates: []string{"2026-01-20"},
	}
	require.NoError(t, mem.SavePlan(ctx, snap))

	// Mutating the caller's slice must not reach the stored copy.
	snap.SelectedDates[0] = "2099-12-31"

	got, ok, err := mem.LoadPlan(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"2026-01-20"}, got.SelectedDates)
}

func TestMemory_SelectionToggles(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()

	require.NoError(t, mem.AddSelection(ctx, "2026-01-20"))
	require.NoError(t, mem.AddSelection(ctx, "2026-01-20")) // idempotent
	require.NoError(t, mem.AddSelection(ctx, "2026-02-02"))
	require.NoError(t, mem.RemoveSelection(ctx, "2026-01-20"))
	require.NoError(t, mem.RemoveSelection(ctx, "2026-09-09")) // absent

	got, ok, err := mem.LoadPlan(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"2026-02-02"}, got.SelectedDates)
}
