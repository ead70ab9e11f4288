package world

import "slices"

var speedrunTasks = []LocationName{
	SpeedrunGarden,
	SpeedrunHighStreet,
	SpeedrunBackGardens,
	SpeedrunPub,
}

// finalTasks are the capstone of each main task list.
var finalTasks = []LocationName{
	TaskHammerThumb,
	TaskTrapShopkeeper,
	TaskPruneRose,
	TaskDropBucket,
}

func (b *ruleBuilder) speedrunRules() {
	tidy := b.npc(SoulTidyNeighbour)
	messy := b.npc(SoulMessyNeighbour)
	drawer := b.prop(SoulDrawer)

	b.set(SpeedrunGarden, b.task(TaskHammerThumb))
	b.set(SpeedrunHighStreet, b.task(TaskTrapShopkeeper))
	// Dressing the bust only counts here with its own pieces.
	components := append(
		b.tasks(TaskBreakVase, TaskSpitTea, TaskRibbon, TaskBarefoot, TaskWashing),
		AllOf(messy, b.prop(SoulBustHat), b.prop(SoulBustGlasses), b.prop(SoulBustPipe)),
	)
	b.set(SpeedrunBackGardens, b.capstone(Capstone{
		Name:       string(SpeedrunBackGardens),
		Components: components,
		Threshold:  5,
		Required:   b.pruneRoseTools(tidy, messy, drawer),
	}))
	b.set(SpeedrunPub, b.task(TaskDropBucket))
}

// bellTokens are the five access tokens and the two souls the bell theft
// always needs. They are checked as tokens rather than as reachable regions,
// and the two souls are always shuffled so they are never gated.
func (b *ruleBuilder) bellTokens() []Predicate {
	var ps []Predicate
	for _, r := range areaRegions {
		t, _ := areaAccess(r)
		ps = append(ps, b.has(t))
	}
	return append(ps, b.has(SoulTimberHandle), b.has(SoulGoldenBell))
}

func (b *ruleBuilder) stealBell() Predicate {
	ps := b.bellTokens()
	if b.opts.LogicallyRequireNPCSouls {
		for _, t := range b.tokens.InGroup(TokenGroupNPC) {
			ps = append(ps, b.npc(t.Name))
		}
	}
	return AllOf(ps...)
}

func (b *ruleBuilder) victoryRules() {
	b.set(TaskReachModelVillage, b.in(ModelVillage))
	steal := b.stealBell()
	b.set(TaskStealBell, steal)
	b.set(TaskCompleteGame, steal)
}

func (b *ruleBuilder) list(tasks []LocationName, final LocationName) Predicate {
	return AllOf(b.tasks(slices.Concat(tasks, []LocationName{final})...)...)
}

func (b *ruleBuilder) milestoneRules() {
	garden := b.list(gardenTasks, TaskHammerThumb)
	highStreet := b.list(highStreetTasks, TaskTrapShopkeeper)
	backGardens := b.list(backGardensTasks, TaskPruneRose)
	pub := b.list(pubTasks, TaskDropBucket)
	allMain := AllOf(garden, highStreet, backGardens, pub)
	allExtra := AllOf(b.tasks(extraTasks...)...)
	allSpeedrun := AllOf(b.tasks(speedrunTasks...)...)
	allTasks := AllOf(allMain, allExtra, allSpeedrun)

	b.set(MilestoneGarden, garden)
	b.set(MilestoneHighStreet, highStreet)
	b.set(MilestoneBackGardens, backGardens)
	b.set(MilestonePub, pub)
	b.set(MilestoneAllMain, allMain)
	b.set(MilestoneAllExtra, allExtra)
	b.set(MilestoneAllSpeedrun, allSpeedrun)
	b.set(MilestoneAllTasks, allTasks)

	b.set(ObjectiveModelVillage, b.in(ModelVillage))
	b.set(ObjectiveAllMain, allMain)
	b.set(ObjectiveSpeedrun, allSpeedrun)
	b.set(ObjectiveNonSpeedrun, AllOf(allMain, allExtra))
	b.set(ObjectiveCompleteAll, allTasks)
	b.set(ObjectiveFourFinal, AllOf(b.tasks(finalTasks...)...))
}

func (b *ruleBuilder) completion() Predicate {
	ps := append(b.bellTokens(), b.has(GoldenBell))
	if t, ok := goalToken(b.opts.Goal); ok {
		ps = append(ps, b.has(t))
	}
	return AllOf(ps...)
}
