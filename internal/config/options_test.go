package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appengine-ltd/goose-world/internal/world"
)

func TestDecodeOptionsOverridesDefaults(t *testing.T) {
	opts, err := DecodeOptions(strings.NewReader(`
starting_area: pub
goal: four-final-tasks
include_extra_tasks: true
include_model_church_pecks: all_pecks
mega_honk_amount: 1
coin_weight: 0
death_link: true
`))
	require.NoError(t, err)

	want := world.DefaultOptions()
	want.StartingArea = world.StartPub
	want.Goal = world.GoalFourFinalTasks
	want.IncludeExtraTasks = true
	want.IncludeModelChurchPecks = world.PecksAll
	want.MegaHonkAmount = 1
	want.CoinWeight = 0
	want.DeathLink = true
	assert.Equal(t, want, opts)
	assert.NoError(t, opts.Validate())
}

func TestDecodeEmptyDocument(t *testing.T) {
	opts, err := DecodeOptions(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, world.DefaultOptions(), opts)
}

func TestDecodeRejectsUnknownKey(t *testing.T) {
	_, err := DecodeOptions(strings.NewReader("include_new_tasks: true\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "include_new_tasks")
}

func TestDecodeRejectsUnknownEnum(t *testing.T) {
	_, err := DecodeOptions(strings.NewReader("goal: win\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "four_final_tasks")
}

func TestDecodedConflictFailsValidation(t *testing.T) {
	opts, err := DecodeOptions(strings.NewReader("include_item_pickups: false\n"))
	require.NoError(t, err)
	var conflict *world.OptionConflictError
	require.True(t, errors.As(opts.Validate(), &conflict))
	assert.Equal(t, []string{"include_prop_souls", "include_item_pickups"}, conflict.Options)
}

func TestLoadOptions(t *testing.T) {
	opts, err := LoadOptions("")
	require.NoError(t, err)
	assert.Equal(t, world.DefaultOptions(), opts)

	path := filepath.Join(t.TempDir(), "options.yaml")
	require.NoError(t, os.WriteFile(path, []byte("starting_area: garden\n"), 0o644))
	opts, err = LoadOptions(path)
	require.NoError(t, err)
	assert.Equal(t, world.StartGarden, opts.StartingArea)

	_, err = LoadOptions(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
