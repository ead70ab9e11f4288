package world

var backGardensTasks = []LocationName{
	TaskBreakVase,
	TaskSpitTea,
	TaskRibbon,
	TaskBarefoot,
	TaskWashing,
	TaskDressBust,
}

func (b *ruleBuilder) backGardensRules() {
	backGardens := b.in(BackGardens)
	tidy := b.npc(SoulTidyNeighbour)
	messy := b.npc(SoulMessyNeighbour)
	drawer := b.prop(SoulDrawer)

	b.set(TaskBreakVase, AllOf(backGardens, tidy, b.prop(SoulVase), drawer))
	b.set(TaskSpitTea, AllOf(backGardens, tidy, messy, b.prop(SoulTeaCup)))
	b.set(TaskRibbon, AllOf(backGardens, messy, b.prop(SoulDuckStatue), b.prop(SoulBow)))
	b.set(TaskBarefoot, AllOf(backGardens, tidy))
	b.set(TaskWashing, AllOf(
		backGardens,
		tidy,
		drawer,
		b.prop(SoulSock),
		b.prop(SoulRightStrap),
		b.prop(SoulSoap),
	))

	// The rose counts as a mouth piece once the other tasks hand it over.
	roseFromTasks := AllOf(
		AllOf(b.tasks(TaskBreakVase, TaskSpitTea, TaskRibbon, TaskBarefoot, TaskWashing)...),
		b.prop(SoulRose),
		b.prop(SoulClippers),
		b.prop(SoulCleanSign),
	)
	b.set(TaskDressBust, AllOf(
		backGardens,
		messy,
		drawer,
		AnyOf(b.prop(SoulBustHat), b.bustHatFromOutside()),
		AnyOf(b.prop(SoulBustGlasses), b.bustGlassesFromOutside()),
		AnyOf(b.prop(SoulBustPipe), b.bustMouthFromOutside(), roseFromTasks),
	))

	b.set(TaskPruneRose, b.capstone(Capstone{
		Name:       string(TaskPruneRose),
		Components: b.tasks(backGardensTasks...),
		Threshold:  5,
		Required:   b.pruneRoseTools(tidy, messy, drawer),
	}))
}

func (b *ruleBuilder) pruneRoseTools(tidy, messy, drawer Predicate) Predicate {
	return AllOf(tidy, messy, drawer, b.prop(SoulRose), b.prop(SoulClippers), b.prop(SoulCleanSign))
}

// Bust pieces found outside the back gardens.

func (b *ruleBuilder) bustHatFromOutside() Predicate {
	return AnyOf(
		AllOf(b.in(Garden), b.npc(SoulGroundskeeper)),
		AllOf(b.in(Pub), AnyOf(b.prop(SoulTrafficCone), b.npc(SoulOldMan))),
	)
}

func (b *ruleBuilder) bustGlassesFromOutside() Predicate {
	return AllOf(b.in(HighStreet), AnyOf(
		b.prop(SoulHornRimmedGlasses),
		b.prop(SoulRedGlasses),
		b.prop(SoulSunglasses),
		b.prop(SoulStereoscope),
		b.npc(SoulBoy),
	))
}

func (b *ruleBuilder) bustMouthFromOutside() Predicate {
	return AnyOf(
		b.prop(SoulDummy),
		AllOf(b.in(Garden), b.prop(SoulTulip)),
		AllOf(b.in(HighStreet), AnyOf(b.prop(SoulToothbrush), b.prop(SoulLilyFlower))),
		AllOf(b.in(Pub), AnyOf(
			b.prop(SoulKnife),
			b.prop(SoulFork),
			b.prop(SoulHarmonica),
			AllOf(b.npc(SoulFancyLadies), b.prop(SoulFlowerForVase)),
		)),
		AllOf(b.in(ModelVillage), b.prop(SoulPoppyFlower)),
	)
}
