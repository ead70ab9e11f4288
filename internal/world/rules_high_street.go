package world

var highStreetTasks = []LocationName{
	TaskBreakBroom,
	TaskPhoneBooth,
	TaskWrongGlasses,
	TaskBuyBack,
	TaskGetOnTV,
	TaskGoShopping,
}

func (b *ruleBuilder) highStreetRules() {
	highStreet := b.in(HighStreet)
	boy := b.npc(SoulBoy)
	tvShopOwner := b.npc(SoulTVShopOwner)
	marketLady := b.npc(SoulMarketLady)

	b.set(TaskBreakBroom, AllOf(highStreet, marketLady, b.prop(SoulPushBroom)))
	b.set(TaskPhoneBooth, AllOf(highStreet, boy, tvShopOwner))
	b.set(TaskWrongGlasses, AllOf(highStreet, boy, AnyOf(
		b.prop(SoulHornRimmedGlasses),
		b.prop(SoulRedGlasses),
		b.prop(SoulSunglasses),
	)))
	b.set(TaskBuyBack, AllOf(highStreet, marketLady, AnyOf(
		AllOf(boy, b.prop(SoulFusilage)),
		AllOf(b.in(Garden), b.npc(SoulGroundskeeper), b.prop(SoulTrowel)),
	)))
	b.set(TaskGetOnTV, AllOf(highStreet, tvShopOwner, AnyOf(boy, b.prop(SoulWalkieTalkie))))
	b.set(TaskGoShopping, AllOf(
		highStreet,
		b.prop(SoulShoppingBasket),
		b.prop(SoulToothbrush),
		b.prop(SoulHairbrush),
		b.prop(SoulLooPaper),
		AnyOf(b.prop(SoulDishSoapBottle), b.prop(SoulSprayBottle)),
		AnyOf(
			b.prop(SoulOrange),
			b.prop(SoulCucumber),
			b.prop(SoulLeek),
			b.prop(SoulCarrot),
			b.prop(SoulTomato),
			AllOf(b.in(Garden), b.prop(SoulApple)),
		),
	))
	b.set(TaskTrapShopkeeper, b.capstone(Capstone{
		Name:       string(TaskTrapShopkeeper),
		Components: b.tasks(highStreetTasks...),
		Threshold:  5,
		Required:   AllOf(marketLady, b.prop(SoulChalk)),
	}))
}
