package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/appengine-ltd/goose-world/internal/world"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(zaptest.NewLogger(t))
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeOptions(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "options.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "goose-world dev (none) unknown"), out)
}

func TestIDs(t *testing.T) {
	out, err := run(t, "ids")
	require.NoError(t, err)

	var got idMaps
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	tokens, err := world.TokenCatalogue()
	require.NoError(t, err)
	locations, err := world.LocationCatalogue()
	require.NoError(t, err)
	assert.Len(t, got.Tokens, len(tokens.All()))
	assert.Len(t, got.Locations, len(locations.All()))

	bell, err := tokens.Lookup(world.GoldenBell)
	require.NoError(t, err)
	assert.Equal(t, bell.ID, got.Tokens[world.GoldenBell])
}

func TestGenerateToStdout(t *testing.T) {
	path := writeOptions(t, "starting_area: back_gardens\ngoal: all_main_tasks\n")
	out, err := run(t, "generate", "--options", path, "--seed", "11")
	require.NoError(t, err)

	var m world.Manifest
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, int64(11), m.Seed)
	assert.Equal(t, world.BackGardens, m.Start)
	assert.Equal(t, []world.TokenName{world.BackGardensAccess}, m.Precollected)
	assert.Equal(t, len(m.Locations), len(m.Progression)+len(m.Locked)+len(m.Filler))
}

func TestGenerateSeedFromEnvironment(t *testing.T) {
	t.Setenv("GOOSE_WORLD_SEED", "42")
	dst := filepath.Join(t.TempDir(), "world.json")
	_, err := run(t, "generate", "-o", dst)
	require.NoError(t, err)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	var m world.Manifest
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, int64(42), m.Seed)
}

func TestGenerateRejectsConflictingOptions(t *testing.T) {
	path := writeOptions(t, "goal: all_tasks\n")
	_, err := run(t, "generate", "--options", path, "--seed", "1")
	var conflict *world.OptionConflictError
	require.True(t, errors.As(err, &conflict), "got %v", err)
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check", "garden access", "groundskeeper soul")
	require.NoError(t, err)
	assert.Contains(t, out, string(world.TaskGetIntoGarden)+"\n")
	assert.Contains(t, out, string(world.TaskGroundskeeperWet)+"\n")
	assert.NotContains(t, out, string(world.TaskPhoneBooth))
	assert.Contains(t, out, "goal complete: false")
}

func TestCheckJSON(t *testing.T) {
	out, err := run(t, "check", "--json", "--workers", "2", "Garden Access")
	require.NoError(t, err)

	var report checkReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, []world.TokenName{world.GardenAccess}, report.Tokens)
	assert.Contains(t, report.Regions, world.Garden)
	assert.NotContains(t, report.Regions, world.HighStreet)
	assert.False(t, report.Complete)
	assert.Positive(t, report.Total)
}

func TestCheckUnknownToken(t *testing.T) {
	_, err := run(t, "check", "Groundskeper Sole")
	var unknown *world.UnknownNameError
	require.True(t, errors.As(err, &unknown), "got %v", err)
	assert.Equal(t, "token", unknown.Kind)
}
