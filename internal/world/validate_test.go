package world

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestDefaultOptionsAreValid(t *testing.T) {
	require.NoError(t, DefaultOptions().Validate())
	require.NoError(t, everything().Validate())
}

func TestValidateConflicts(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Options)
		options []string
	}{
		{
			name:    "all tasks without extra tasks",
			mutate:  func(o *Options) { o.Goal = GoalAllTasksNoSpeedrun },
			options: []string{"goal", "include_extra_tasks"},
		},
		{
			name:    "speedrun goal without speedrun tasks",
			mutate:  func(o *Options) { o.Goal = GoalOnlySpeedrunTasks },
			options: []string{"goal", "include_speedrun_tasks"},
		},
		{
			name:    "prop souls without pickups",
			mutate:  func(o *Options) { o.IncludeItemPickups = false },
			options: []string{"include_prop_souls", "include_item_pickups"},
		},
		{
			name: "required npc souls that are not shuffled",
			mutate: func(o *Options) {
				o.IncludeNPCSouls = false
				o.LogicallyRequireNPCSouls = true
			},
			options: []string{"logically_require_npc_souls", "include_npc_souls"},
		},
		{
			name:    "honk out of range",
			mutate:  func(o *Options) { o.MegaHonkAmount = 4 },
			options: []string{"mega_honk_amount"},
		},
		{
			name:    "negative weight",
			mutate:  func(o *Options) { o.CoinWeight = -1 },
			options: []string{"coin_weight"},
		},
		{
			name:    "unknown goal",
			mutate:  func(o *Options) { o.Goal = Goal(9) },
			options: []string{"goal"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := DefaultOptions()
			tc.mutate(&opts)
			err := opts.Validate()
			require.Error(t, err)
			var conflict *OptionConflictError
			require.True(t, errors.As(err, &conflict), "got %v", err)
			assert.Equal(t, tc.options, conflict.Options)
			assert.NotEmpty(t, conflict.Reason)
		})
	}
}

func TestValidateReportsEveryViolation(t *testing.T) {
	opts := DefaultOptions()
	opts.Goal = GoalAllTasks
	opts.SpeedyFeetAmount = 11
	opts.IncludeItemPickups = false
	errs := multierr.Errors(opts.Validate())
	// extra tasks, speedrun tasks, speedy feet, prop souls.
	require.Len(t, errs, 4)
	for _, err := range errs {
		var conflict *OptionConflictError
		assert.True(t, errors.As(err, &conflict), "got %v", err)
	}
}

func TestParseEnums(t *testing.T) {
	g, err := ParseGoal("Four Final Tasks")
	require.NoError(t, err)
	assert.Equal(t, GoalFourFinalTasks, g)

	a, err := ParseStartingArea("back-gardens")
	require.NoError(t, err)
	assert.Equal(t, StartBackGardens, a)

	p, err := ParseChurchPecks("all_pecks")
	require.NoError(t, err)
	assert.Equal(t, PecksAll, p)

	_, err = ParseGoal("win")
	assert.ErrorContains(t, err, "only_steal")
	assert.Equal(t, "unknown(9)", Goal(9).String())
}

func TestDescribeOptions(t *testing.T) {
	infos := DescribeOptions()
	require.Len(t, infos, len(DefaultOptions().values()))

	byName := map[string]OptionInfo{}
	for _, info := range infos {
		byName[info.Name] = info
	}
	assert.Equal(t, OptionInfo{
		Name:    "goal",
		Default: "only_steal",
		Allowed: "only_steal, find_bell, all_main_tasks, only_speedrun_tasks, all_tasks_no_speedrun, all_tasks, four_final_tasks",
	}, byName["goal"])
	assert.Equal(t, OptionInfo{Name: "coin_weight", Default: "80", Allowed: "0..100"}, byName["coin_weight"])
	assert.Equal(t, OptionInfo{Name: "death_link", Default: "false", Allowed: "true, false"}, byName["death_link"])
}
