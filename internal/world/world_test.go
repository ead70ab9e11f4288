package world

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func TestGenerateDefaults(t *testing.T) {
	w, err := Generate(DefaultOptions(), 1234, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Equal(t, int64(1234), w.Seed)
	assert.Equal(t, w.Rules.Locations().Len(), w.Pool.Size())
	assert.NotEqual(t, ModelVillage, w.Pool.Start)
}

func TestGenerateLogsSummary(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	w, err := Generate(DefaultOptions(), 5, zap.New(core))
	require.NoError(t, err)

	entries := logs.FilterMessage("world generated").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, w.ID.String(), fields["generation_id"])
	assert.Equal(t, int64(5), fields["seed"])
	assert.Equal(t, "only_steal", fields["goal"])
	assert.Zero(t, logs.FilterMessage("filler").Len(), "debug lines below info level")
}

func TestGenerateRejectsInvalidOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.Goal = GoalAllTasks
	_, err := Generate(opts, 1, nil)
	var conflict *OptionConflictError
	require.True(t, errors.As(err, &conflict), "got %v", err)
}

func TestGenerateSameSeedSamePool(t *testing.T) {
	a, err := Generate(everything(), 77, nil)
	require.NoError(t, err)
	b, err := Generate(everything(), 77, nil)
	require.NoError(t, err)
	assert.Equal(t, a.Pool, b.Pool)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestManifestJSON(t *testing.T) {
	opts := DefaultOptions()
	opts.StartingArea = StartHighStreet
	opts.Goal = GoalAllMainTasks
	w, err := Generate(opts, 3, nil)
	require.NoError(t, err)

	raw, err := json.Marshal(w.Manifest())
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "High Street", decoded["start"])
	slot := decoded["slot_data"].(map[string]any)
	assert.Equal(t, "High Street", slot["starting_area"])
	assert.EqualValues(t, 2, slot["goal"])
	assert.EqualValues(t, 1, slot["include_model_church_pecks"])
	assert.Equal(t, true, slot["include_npc_souls"])

	locked := decoded["locked"].([]any)
	require.Len(t, locked, 2)
	assert.Equal(t, string(ObjectiveAllMain), locked[1].(map[string]any)["location"])
	assert.Equal(t, string(AllMainGoalsComplete), locked[1].(map[string]any)["token"])
}
