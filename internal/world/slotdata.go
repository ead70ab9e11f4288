package world

// SlotData is the configuration handed to the game client. Keys are part of
// the client protocol.
func SlotData(opts Options, start RegionName, seed int64) map[string]any {
	return map[string]any{
		"starting_area":               string(start),
		"goal":                        int(opts.Goal),
		"include_npc_souls":           opts.IncludeNPCSouls,
		"logically_require_npc_souls": opts.LogicallyRequireNPCSouls,
		"include_prop_souls":          opts.IncludePropSouls,
		"include_extra_tasks":         opts.IncludeExtraTasks,
		"include_speedrun_tasks":      opts.IncludeSpeedrunTasks,
		"include_item_pickups":        opts.IncludeItemPickups,
		"include_drag_items":          opts.IncludeDragItems,
		"include_interactions":        opts.IncludeInteractions,
		"include_model_church_pecks":  int(opts.IncludeModelChurchPecks),
		"include_milestone_locations": opts.IncludeMilestoneLocations,
		"death_link":                  opts.DeathLink,
		"seed":                        seed,
	}
}
