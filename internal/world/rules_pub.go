package world

var pubTasks = []LocationName{
	TaskGetIntoPub,
	TaskBreakDartboard,
	TaskToyBoat,
	TaskOldManBum,
	TaskAwardedFlower,
	TaskStealPint,
	TaskSetTable,
}

func (b *ruleBuilder) pubRules() {
	pub := b.in(Pub)
	oldMan := b.npc(SoulOldMan)

	b.set(TaskGetIntoPub, pub)
	b.set(TaskBreakDartboard, AllOf(pub, oldMan, b.prop(SoulDartboard)))
	b.set(TaskToyBoat, AllOf(pub, b.prop(SoulToyBoat)))
	b.set(TaskOldManBum, AllOf(pub, oldMan, b.prop(SoulPortableStool)))
	b.set(TaskAwardedFlower, AllOf(pub, b.npc(SoulFancyLadies), b.prop(SoulFlowerForVase)))
	b.set(TaskStealPint, AllOf(pub, b.prop(SoulPintGlass)))
	b.set(TaskSetTable, AllOf(
		pub,
		b.prop(SoulPlate),
		b.prop(SoulFork),
		b.prop(SoulKnife),
		b.prop(SoulPepperGrinder),
		b.prop(SoulCandlestick),
	))
	b.set(TaskDropBucket, b.capstone(Capstone{
		Name:       string(TaskDropBucket),
		Components: b.tasks(pubTasks...),
		Threshold:  6,
		Required:   b.pubCapstoneRequired(),
	}))
}

func (b *ruleBuilder) pubCapstoneRequired() Predicate {
	return AllOf(
		b.npc(SoulBurlyMan),
		b.npc(SoulPubLady),
		b.prop(SoulBurlyMansBucket),
		b.prop(SoulNoGooseSign),
	)
}
