package world

func (b *ruleBuilder) dragRules() {
	b.set("Drag Fence Bolt", Always)
	b.set("Drag Tackle Box", b.prop(SoulTackleBox))

	garden := func(t TokenName) Predicate { return b.propIn(Garden, t) }
	b.set("Drag Rake", garden(SoulRake))
	b.set("Drag Picnic Basket", garden(SoulPicnicBasket))
	b.set("Drag Esky", garden(SoulEsky))
	b.set("Drag Shovel", garden(SoulShovel))
	b.setAll([]LocationName{"Drag Pumpkin", "Drag Pumpkin 2", "Drag Pumpkin 3", "Drag Pumpkin 4"}, garden(SoulPumpkin))
	b.set("Drag Watering Can", garden(SoulWateringCan))
	b.setAll(numberedNames("Drag Gumboot", 2), garden(SoulGumboot))
	b.set("Drag Gardener Sign", AllOf(
		b.npc(SoulGroundskeeper),
		AtLeast(5, b.tasks(gardenTasks...)...),
	))
	b.set("Drag Wooden Crate", garden(SoulWoodenCrate))
	b.set("Drag Mallet", b.task(TaskHammerThumb))
	b.setAll(numberedNames("Drag Topsoil Bag", 3), garden(SoulTopsoilBag))

	hs := func(t TokenName) Predicate { return b.propIn(HighStreet, t) }
	umbrella := AllOf(b.in(HighStreet), b.npc(SoulMarketLady), b.prop(SoulUmbrella))
	b.set("Drag Shopping Basket", hs(SoulShoppingBasket))
	b.setAll([]LocationName{"Drag Black Umbrella", "Drag Rainbow Umbrella", "Drag Red Umbrella"}, umbrella)
	b.set("Drag Push Broom", hs(SoulPushBroom))
	b.set("Drag Broken Broom Head", b.task(TaskBreakBroom))
	b.set("Drag Dustbin", hs(SoulDustbin))
	b.set("Drag Baby Doll", hs(SoulBabyDoll))
	b.set("Drag Pricing Gun", hs(SoulPricingGun))
	b.set("Drag Adding Machine", hs(SoulAddingMachine))

	bg := func(t TokenName) Predicate { return b.propIn(BackGardens, t) }
	behindDrawer := func(t TokenName) Predicate { return AllOf(bg(t), b.prop(SoulDrawer)) }
	cleanSign := AllOf(
		b.npc(SoulTidyNeighbour),
		b.prop(SoulCleanSign),
		AtLeast(5, b.tasks(backGardensTasks...)...),
	)
	b.set("Drag Rose Box", cleanSign)
	b.set("Drag Cricket Bat", bg(SoulCricketBat))
	b.set("Drag Tea Pot", bg(SoulTeaPot))
	b.set("Drag Clippers", bg(SoulClippers))
	b.set("Drag Duck Statue", behindDrawer(SoulDuckStatue))
	b.set("Drag Frog Statue", behindDrawer(SoulFrogStatue))
	b.set("Drag Jeremy Fish", behindDrawer(SoulJeremyFish))
	b.set("Drag Messy Sign", AllOf(b.prop(SoulMessySign), b.task(TaskPruneRose)))
	b.set("Drag Drawer", bg(SoulDrawer))
	b.set("Drag Enamel Jug", behindDrawer(SoulEnamelJug))
	b.set("Drag Clean Sign", cleanSign)

	pub := func(t TokenName) Predicate { return b.propIn(Pub, t) }
	b.set("Drag Traffic Cone", pub(SoulTrafficCone))
	b.set("Drag Exit Parcel", pub(SoulExitParcel))
	b.set("Drag Stealth Box", pub(SoulStealthBox))
	b.set("Drag No Goose Sign", AllOf(
		b.npc(SoulPubLady),
		b.prop(SoulNoGooseSign),
		AtLeast(6, b.tasks(pubTasks...)...),
	))
	b.set("Drag Portable Stool", pub(SoulPortableStool))
	b.set("Drag Dartboard", b.task(TaskBreakDartboard))
	b.set("Drag Mop Bucket", pub(SoulMopBucket))
	b.set("Drag Mop", pub(SoulMop))
	b.set("Drag Delivery Box", AllOf(b.in(Pub), b.npc(SoulCook)))
	b.set("Drag Burly Mans Bucket", pub(SoulBurlyMansBucket))

	mv := func(t TokenName) Predicate { return b.propIn(ModelVillage, t) }
	b.set("Drag Mini Bench", mv(SoulMiniBench))
	b.set("Drag Mini Pump", mv(SoulMiniPump))
	b.set("Drag Mini Street Bench", mv(SoulMiniStreetBench))
	b.set("Drag Birdbath", mv(SoulBirdbath))
	b.set("Drag Easel", mv(SoulEasel))
	b.set("Drag Sun Lounge", mv(SoulSunLounge))
}
