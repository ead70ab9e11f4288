package world

var gardenTasks = []LocationName{
	TaskGetIntoGarden,
	TaskGroundskeeperWet,
	TaskStealKeys,
	TaskSunHat,
	TaskRakeInLake,
	TaskPicnic,
}

func (b *ruleBuilder) gardenRules() {
	garden := b.in(Garden)
	groundskeeper := b.npc(SoulGroundskeeper)

	b.set(TaskGetIntoGarden, garden)
	b.set(TaskGroundskeeperWet, AllOf(garden, groundskeeper))
	b.set(TaskStealKeys, AllOf(garden, groundskeeper))
	b.set(TaskSunHat, AllOf(garden, groundskeeper, b.prop(SoulStrawHat), b.prop(SoulTulip)))
	b.set(TaskRakeInLake, AllOf(garden, b.prop(SoulRake)))
	b.set(TaskPicnic, AllOf(
		garden,
		b.prop(SoulPicnicBasket),
		b.prop(SoulApple),
		b.prop(SoulSandwich),
		b.prop(SoulPumpkin),
		b.prop(SoulJam),
		b.prop(SoulThermos),
	))
	b.set(TaskHammerThumb, b.capstone(Capstone{
		Name:       string(TaskHammerThumb),
		Components: b.tasks(gardenTasks...),
		Threshold:  5,
		Required:   AllOf(groundskeeper, b.prop(SoulMallet)),
	}))
}
