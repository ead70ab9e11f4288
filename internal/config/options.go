package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/appengine-ltd/goose-world/internal/world"
)

// optionsFile mirrors world.Options with every field optional. Unset fields
// keep their defaults.
type optionsFile struct {
	StartingArea *string `yaml:"starting_area"`
	Goal         *string `yaml:"goal"`

	IncludeNPCSouls          *bool `yaml:"include_npc_souls"`
	LogicallyRequireNPCSouls *bool `yaml:"logically_require_npc_souls"`
	IncludePropSouls         *bool `yaml:"include_prop_souls"`

	IncludeExtraTasks         *bool   `yaml:"include_extra_tasks"`
	IncludeSpeedrunTasks      *bool   `yaml:"include_speedrun_tasks"`
	IncludeItemPickups        *bool   `yaml:"include_item_pickups"`
	IncludeDragItems          *bool   `yaml:"include_drag_items"`
	IncludeInteractions       *bool   `yaml:"include_interactions"`
	IncludeModelChurchPecks   *string `yaml:"include_model_church_pecks"`
	IncludeMilestoneLocations *bool   `yaml:"include_milestone_locations"`

	MegaHonkAmount   *int  `yaml:"mega_honk_amount"`
	SpeedyFeetAmount *int  `yaml:"speedy_feet_amount"`
	SilentSteps      *bool `yaml:"silent_steps"`
	GooseDayAmount   *int  `yaml:"goose_day_amount"`

	CoinWeight            *int `yaml:"coin_weight"`
	TiredGooseWeight      *int `yaml:"tired_goose_weight"`
	ConfusedFeetWeight    *int `yaml:"confused_feet_weight"`
	ButterbeakWeight      *int `yaml:"butterbeak_weight"`
	SuspiciousGooseWeight *int `yaml:"suspicious_goose_weight"`

	DeathLink *bool `yaml:"death_link"`
}

// LoadOptions reads an options file. An empty path yields the defaults.
func LoadOptions(path string) (world.Options, error) {
	if path == "" {
		return world.DefaultOptions(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return world.Options{}, fmt.Errorf("read options: %w", err)
	}
	opts, err := DecodeOptions(bytes.NewReader(data))
	if err != nil {
		return world.Options{}, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

// DecodeOptions decodes a single YAML document over the default options.
// Unknown keys are rejected. The result is not validated.
func DecodeOptions(r io.Reader) (world.Options, error) {
	var f optionsFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return world.Options{}, fmt.Errorf("decode options: %w", err)
	}
	return f.apply(world.DefaultOptions())
}

func (f optionsFile) apply(o world.Options) (world.Options, error) {
	var err error
	if f.StartingArea != nil {
		if o.StartingArea, err = world.ParseStartingArea(*f.StartingArea); err != nil {
			return world.Options{}, err
		}
	}
	if f.Goal != nil {
		if o.Goal, err = world.ParseGoal(*f.Goal); err != nil {
			return world.Options{}, err
		}
	}
	if f.IncludeModelChurchPecks != nil {
		if o.IncludeModelChurchPecks, err = world.ParseChurchPecks(*f.IncludeModelChurchPecks); err != nil {
			return world.Options{}, err
		}
	}

	setBool(&o.IncludeNPCSouls, f.IncludeNPCSouls)
	setBool(&o.LogicallyRequireNPCSouls, f.LogicallyRequireNPCSouls)
	setBool(&o.IncludePropSouls, f.IncludePropSouls)
	setBool(&o.IncludeExtraTasks, f.IncludeExtraTasks)
	setBool(&o.IncludeSpeedrunTasks, f.IncludeSpeedrunTasks)
	setBool(&o.IncludeItemPickups, f.IncludeItemPickups)
	setBool(&o.IncludeDragItems, f.IncludeDragItems)
	setBool(&o.IncludeInteractions, f.IncludeInteractions)
	setBool(&o.IncludeMilestoneLocations, f.IncludeMilestoneLocations)
	setBool(&o.SilentSteps, f.SilentSteps)
	setBool(&o.DeathLink, f.DeathLink)

	setInt(&o.MegaHonkAmount, f.MegaHonkAmount)
	setInt(&o.SpeedyFeetAmount, f.SpeedyFeetAmount)
	setInt(&o.GooseDayAmount, f.GooseDayAmount)
	setInt(&o.CoinWeight, f.CoinWeight)
	setInt(&o.TiredGooseWeight, f.TiredGooseWeight)
	setInt(&o.ConfusedFeetWeight, f.ConfusedFeetWeight)
	setInt(&o.ButterbeakWeight, f.ButterbeakWeight)
	setInt(&o.SuspiciousGooseWeight, f.SuspiciousGooseWeight)
	return o, nil
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
