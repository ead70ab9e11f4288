package world

// propIn is the common shape of a pickup or drag: be in the region and hold
// the prop's soul.
func (b *ruleBuilder) propIn(region RegionName, t TokenName) Predicate {
	return AllOf(b.in(region), b.prop(t))
}

func (b *ruleBuilder) pickupRules() {
	b.hubPickups()
	b.gardenPickups()
	b.highStreetPickups()
	b.backGardensPickups()
	b.pubPickups()
	b.modelVillagePickups()
}

func (b *ruleBuilder) hubPickups() {
	b.set("Pick up Drink Can", b.prop(SoulDrinkCan))
	b.set("Pick up Tennis Ball", b.prop(SoulTennisBall))
	b.set("Pick up Bow (Blue)", b.prop(SoulBow))
	b.set("Pick up Dummy", b.prop(SoulDummy))
	b.set("Pick up Fishing Bobber", b.prop(SoulFishingBobber))
	b.set("Pick up Pint Bottle", b.prop(SoulPintBottle))
	b.setAll([]LocationName{"Pick up Garden Boot", "Pick up Hub Boot"}, b.prop(SoulBoot))
}

func (b *ruleBuilder) gardenPickups() {
	groundskeeper := AllOf(b.in(Garden), b.npc(SoulGroundskeeper))

	b.set("Pick up Radio", b.propIn(Garden, SoulRadio))
	b.set("Pick up Trowel", b.propIn(Garden, SoulTrowel))
	b.set("Pick up Keys", groundskeeper)
	b.set("Pick up Tulip", b.propIn(Garden, SoulTulip))
	b.setAll([]LocationName{"Pick up Apple", "Pick up Apple 2"}, b.propIn(Garden, SoulApple))
	b.set("Pick up Jam", b.propIn(Garden, SoulJam))
	b.set("Pick up Picnic Mug", b.propIn(Garden, SoulPicnicMug))
	b.set("Pick up Thermos", b.propIn(Garden, SoulThermos))
	b.setAll([]LocationName{"Pick up Sandwich (Right)", "Pick up Sandwich (Left)"}, b.propIn(Garden, SoulSandwich))
	b.set("Pick up Straw Hat", AllOf(groundskeeper, b.prop(SoulStrawHat)))
	b.set("Pick up Gardener Hat", AllOf(groundskeeper, b.prop(SoulTulip)))
	b.setAll(numberedNames("Pick up Carrot", 10), b.propIn(Garden, SoulCarrot))
}

func (b *ruleBuilder) highStreetPickups() {
	hs := func(t TokenName) Predicate { return b.propIn(HighStreet, t) }

	b.set("Pick up Boy's Glasses", AllOf(b.in(HighStreet), b.npc(SoulBoy)))
	b.set("Pick up Horn-Rimmed Glasses", hs(SoulHornRimmedGlasses))
	b.set("Pick up Red Glasses", hs(SoulRedGlasses))
	b.set("Pick up Sunglasses", hs(SoulSunglasses))
	b.set("Pick up Toilet Paper", hs(SoulLooPaper))
	b.set("Pick up Toy Car", hs(SoulToyCar))
	b.set("Pick up Hairbrush", hs(SoulHairbrush))
	b.set("Pick up Toothbrush", hs(SoulToothbrush))
	b.set("Pick up Stereoscope", hs(SoulStereoscope))
	b.set("Pick up Dish Soap Bottle", hs(SoulDishSoapBottle))
	b.setAll([]LocationName{"Pick up Blue Can", "Pick up Yellow Can", "Pick up Orange Can"}, hs(SoulTinnedFood))
	b.setAll([]LocationName{"Pick up Weed Tool", "Pick up Garden Fork"}, hs(SoulWeedTool))
	b.set("Pick up Lily Flower", hs(SoulLilyFlower))
	b.setAll([]LocationName{"Pick up Orange", "Pick up Orange 2", "Pick up Orange 3"}, hs(SoulOrange))
	b.setAll(numberedNames("Pick up Tomato", 3), hs(SoulTomato))
	b.setAll(numberedNames("Pick up Shop Carrot", 3), hs(SoulCarrot))
	b.setAll(numberedNames("Pick up Cucumber", 3), hs(SoulCucumber))
	b.setAll(numberedNames("Pick up Leek", 3), hs(SoulLeek))
	b.set("Pick up Fusilage", hs(SoulFusilage))
	b.setAll([]LocationName{"Pick up Pint Bottle 2", "Pick up Pint Bottle 3"}, hs(SoulPintBottle))
	b.set("Pick up Spray Bottle", hs(SoulSprayBottle))
	b.setAll([]LocationName{"Pick up Walkie Talkie", "Pick up Walkie Talkie B"}, hs(SoulWalkieTalkie))
	b.setAll([]LocationName{"Pick up Apple Core", "Pick up Apple Core 2"}, hs(SoulAppleCore))
	b.set("Pick up Dustbin Lid", hs(SoulDustbinLid))
	b.set("Pick up Chalk", b.task(TaskTrapShopkeeper))
}

func (b *ruleBuilder) backGardensPickups() {
	bg := func(t TokenName) Predicate { return b.propIn(BackGardens, t) }
	behindDrawer := func(t TokenName) Predicate { return AllOf(bg(t), b.prop(SoulDrawer)) }
	tidy := AllOf(b.in(BackGardens), b.npc(SoulTidyNeighbour))

	b.set("Pick up Bow", b.task(TaskRibbon))
	b.set("Pick up Cricket Ball", bg(SoulCricketBall))
	b.set("Pick up Bust Pipe", bg(SoulBustPipe))
	b.set("Pick up Bust Hat", bg(SoulBustHat))
	b.set("Pick up Bust Glasses", bg(SoulBustGlasses))
	b.setAll([]LocationName{"Pick up Right Slipper", "Pick up Left Slipper"}, tidy)
	b.set("Pick up Tea Cup", bg(SoulTeaCup))
	b.set("Pick up Newspaper", bg(SoulNewspaper))
	b.setAll([]LocationName{"Pick up Socks", "Pick up Socks 2"}, behindDrawer(SoulSock))
	b.set("Pick up Vase", behindDrawer(SoulVase))
	b.set("Pick up Pot Stack", behindDrawer(SoulPotStack))
	b.set("Pick up Soap", behindDrawer(SoulSoap))
	b.set("Pick up Paintbrush", behindDrawer(SoulPaintbrush))
	b.set("Pick up Right Strap", behindDrawer(SoulRightStrap))
	b.setAll(numberedNames("Pick up Broken Vase Piece", 2), AllOf(tidy, b.prop(SoulVase), b.prop(SoulDrawer)))
	b.set("Pick up Badminton Racket", AllOf(
		b.prop(SoulBadmintonRacket),
		b.prop(SoulMessySign),
		b.task(TaskPruneRose),
	))
	b.set("Pick up Rose", b.task(TaskPruneRose))
}

func (b *ruleBuilder) pubPickups() {
	pub := func(t TokenName) Predicate { return b.propIn(Pub, t) }
	oldMan := AllOf(b.in(Pub), b.npc(SoulOldMan))

	b.set("Pick up Exit Letter", pub(SoulExitLetter))
	b.setAll([]LocationName{"Pick up Plate", "Pick up Plate 2", "Pick up Plate 3"}, pub(SoulPlate))
	b.setAll(numberedNames("Pick up Green Quoit", 3), pub(SoulQuoit))
	b.setAll(numberedNames("Pick up Red Quoit", 3), pub(SoulQuoit))
	b.setAll([]LocationName{"Pick up Fork", "Pick up Fork 2"}, pub(SoulFork))
	b.setAll([]LocationName{"Pick up Knife", "Pick up Knife 2"}, pub(SoulKnife))
	b.set("Pick up Cork", pub(SoulCork))
	b.set("Pick up Candlestick", pub(SoulCandlestick))
	b.set("Pick up Flower for Vase", AllOf(pub(SoulFlowerForVase), b.npc(SoulFancyLadies)))
	b.setAll(numberedNames("Pick up Dart", 3), AllOf(oldMan, b.prop(SoulDartboard)))
	b.set("Pick up Harmonica", pub(SoulHarmonica))
	b.set("Pick up Pint Glass", pub(SoulPintGlass))
	b.set("Pick up Toy Boat", pub(SoulToyBoat))
	b.set("Pick up Wooly Hat", oldMan)
	b.set("Pick up Pepper Grinder", pub(SoulPepperGrinder))
	b.set("Pick up Pub Woman's Cloth", AllOf(b.in(Pub), b.npc(SoulPubLady)))

	// The first nine tomatoes sit behind the no goose sign.
	tomatoes := numberedNames("Pick up Pub Tomato", 11)
	behindSign := AllOf(
		b.npc(SoulPubLady),
		b.prop(SoulNoGooseSign),
		b.prop(SoulTomato),
		AtLeast(6, b.tasks(pubTasks...)...),
	)
	b.setAll(tomatoes[:9], behindSign)
	b.setAll(tomatoes[9:], pub(SoulTomato))
}

func (b *ruleBuilder) modelVillagePickups() {
	mv := func(t TokenName) Predicate { return b.propIn(ModelVillage, t) }

	b.setAll([]LocationName{
		"Pick up Mini Person (Child)",
		"Pick up Mini Person (Jumpsuit)",
		"Pick up Mini Person (Gardener)",
		"Pick up Mini Person (Old Woman)",
		"Pick up Mini Person (Postie)",
		"Pick up Mini Person (Vest Man)",
		"Pick up Mini Person",
	}, mv(SoulMiniPerson))
	b.set("Pick up Mini Person (Goose)", mv(SoulMiniGoose))
	b.set("Pick up Mini Shovel", mv(SoulMiniShovel))
	b.set("Pick up Poppy Flower", mv(SoulPoppyFlower))
	b.set("Pick up Mini Phone Door", mv(SoulMiniPhoneDoor))
	b.set("Pick up Mini Mail Pillar", mv(SoulMiniMailPillar))
	b.set("Pick up Timber Handle", mv(SoulTimberHandle))
	b.set("Pick up Golden Bell", b.task(TaskStealBell))
}
