package world

var extraTasks = []LocationName{
	ExtraLockOut,
	ExtraCabbagePicnic,
	ExtraPuddle,
	ExtraScales,
	ExtraUmbrellaTV,
	ExtraOutsideBuyBack,
	ExtraFiveFlowers,
	ExtraBoyInGarage,
	ExtraCatchObject,
	ExtraThrownOverFence,
	ExtraOutsideBust,
	ExtraScoreGoal,
	ExtraBoatUnderBridge,
	ExtraPerformRibbon,
	ExtraStealWoolenHat,
}

func (b *ruleBuilder) extraRules() {
	garden := b.in(Garden)
	highStreet := b.in(HighStreet)
	backGardens := b.in(BackGardens)
	pub := b.in(Pub)
	tidy := b.npc(SoulTidyNeighbour)
	messy := b.npc(SoulMessyNeighbour)
	drawer := b.prop(SoulDrawer)

	b.set(ExtraLockOut, AllOf(garden, b.npc(SoulGroundskeeper)))
	b.set(ExtraCabbagePicnic, garden)
	b.set(ExtraPuddle, AllOf(highStreet, b.npc(SoulBoy)))
	b.set(ExtraScales, b.scales())
	b.set(ExtraUmbrellaTV, AllOf(
		pub,
		b.npc(SoulTVShopOwner),
		b.npc(SoulMarketLady),
		b.prop(SoulUmbrella),
		AnyOf(b.npc(SoulBoy), b.prop(SoulWalkieTalkie)),
	))
	b.set(ExtraOutsideBuyBack, AllOf(
		garden,
		highStreet,
		b.npc(SoulGroundskeeper),
		b.npc(SoulMarketLady),
		b.prop(SoulTrowel),
	))
	b.set(ExtraFiveFlowers, AllOf(
		garden,
		highStreet,
		pub,
		b.in(ModelVillage),
		b.npc(SoulFancyLadies),
		b.prop(SoulTulip),
		b.prop(SoulLilyFlower),
		b.prop(SoulFlowerForVase),
		b.prop(SoulPoppyFlower),
		b.task(TaskPruneRose),
	))
	b.set(ExtraBoyInGarage, b.task(TaskTrapShopkeeper))
	b.set(ExtraCatchObject, AllOf(backGardens, tidy, drawer))
	b.set(ExtraThrownOverFence, AllOf(backGardens, pub, tidy, drawer, b.prop(SoulStealthBox)))
	b.set(ExtraOutsideBust, AllOf(
		backGardens,
		messy,
		drawer,
		b.bustHatFromOutside(),
		b.bustGlassesFromOutside(),
		b.bustMouthFromOutside(),
	))
	b.set(ExtraScoreGoal, AllOf(highStreet, b.task(TaskPruneRose), b.prop(SoulMessySign)))
	b.set(ExtraBoatUnderBridge, AllOf(pub, b.prop(SoulToyBoat)))
	b.set(ExtraPerformRibbon, AllOf(
		pub,
		backGardens,
		b.npc(SoulFancyLadies),
		messy,
		b.prop(SoulDuckStatue),
		b.prop(SoulBow),
		drawer,
	))
	b.set(ExtraStealWoolenHat, b.task(TaskOldManBum))
}

// scales is met outright by any bulk produce, otherwise by enough smaller
// items to tip the weight.
func (b *ruleBuilder) scales() Predicate {
	garden := b.in(Garden)
	backGardens := b.in(BackGardens)
	pub := b.in(Pub)
	drawer := b.prop(SoulDrawer)

	one := func(p Predicate) Weighted { return Weighted{Weight: 1, When: p} }
	two := func(p Predicate) Weighted { return Weighted{Weight: 2, When: p} }
	inGarden := func(t TokenName) Predicate { return AllOf(garden, b.prop(t)) }
	inBackGardens := func(t TokenName) Predicate { return AllOf(backGardens, b.prop(t)) }
	behindDrawer := func(t TokenName) Predicate { return AllOf(backGardens, drawer, b.prop(t)) }
	inPub := func(t TokenName) Predicate { return AllOf(pub, b.prop(t)) }

	bulk := AnyOf(
		b.prop(SoulCarrot),
		b.prop(SoulTomato),
		b.prop(SoulOrange),
		b.prop(SoulLeek),
		b.prop(SoulCucumber),
		b.prop(SoulTinnedFood),
		inPub(SoulQuoit),
		inPub(SoulPlate),
		inPub(SoulDartboard),
		b.prop(SoulPintBottle),
	)
	small := WeightAtLeast(3,
		one(b.prop(SoulToothbrush)),
		one(b.prop(SoulHairbrush)),
		one(b.prop(SoulLooPaper)),
		one(b.prop(SoulDishSoapBottle)),
		one(b.prop(SoulSprayBottle)),
		one(b.prop(SoulToyCar)),
		one(b.prop(SoulHornRimmedGlasses)),
		one(b.prop(SoulRedGlasses)),
		one(b.prop(SoulSunglasses)),
		one(b.npc(SoulBoy)),
		one(b.prop(SoulFusilage)),
		one(b.prop(SoulLilyFlower)),
		one(b.prop(SoulStereoscope)),
		one(b.prop(SoulDustbinLid)),
		two(b.prop(SoulAppleCore)),
		two(b.prop(SoulWalkieTalkie)),
		two(b.prop(SoulWeedTool)),

		one(b.prop(SoulTennisBall)),
		one(b.prop(SoulDummy)),
		one(b.prop(SoulFishingBobber)),
		one(b.prop(SoulDrinkCan)),
		one(b.prop(SoulBow)),
		two(b.prop(SoulBoot)),

		one(inGarden(SoulJam)),
		one(inGarden(SoulTulip)),
		one(inGarden(SoulPicnicMug)),
		one(inGarden(SoulThermos)),
		one(inGarden(SoulTrowel)),
		one(inGarden(SoulRadio)),
		two(inGarden(SoulApple)),
		two(inGarden(SoulSandwich)),

		one(inBackGardens(SoulTeaCup)),
		one(inBackGardens(SoulCricketBall)),
		one(inBackGardens(SoulBustPipe)),
		one(inBackGardens(SoulBustHat)),
		one(inBackGardens(SoulBustGlasses)),
		one(inBackGardens(SoulNewspaper)),
		one(behindDrawer(SoulSoap)),
		one(behindDrawer(SoulPotStack)),
		one(behindDrawer(SoulPaintbrush)),
		one(behindDrawer(SoulRightStrap)),
		two(behindDrawer(SoulSock)),

		one(inPub(SoulCork)),
		one(inPub(SoulExitLetter)),
		one(inPub(SoulCandlestick)),
		one(inPub(SoulHarmonica)),
		one(inPub(SoulToyBoat)),
		one(inPub(SoulPepperGrinder)),
		two(inPub(SoulKnife)),
		two(inPub(SoulFork)),
	)
	return AllOf(b.in(HighStreet), AnyOf(bulk, small))
}
