package world

func (b *ruleBuilder) interactionRules() {
	b.set("Ring the Bike Bell", Always)
	b.set("Open Intro Gate", Always)

	b.setAll([]LocationName{"Turn on Garden Tap", "Turn on Sprinkler"}, b.in(Garden))

	b.set("Unplug the Radio", b.in(HighStreet))
	b.setAll([]LocationName{
		"Open Black Umbrella",
		"Open Rainbow Umbrella",
		"Open Red Umbrella",
	}, AllOf(b.in(HighStreet), b.npc(SoulMarketLady), b.prop(SoulUmbrella)))
	b.setAll([]LocationName{
		"Untie Boy's Laces (Left)",
		"Untie Boy's Laces (Right)",
	}, AllOf(b.in(HighStreet), b.npc(SoulBoy)))

	b.setAll([]LocationName{"Break Through Boards", "Break Through Trellis"}, b.in(BackGardens))
	backYard := AllOf(b.in(BackGardens), b.prop(SoulDrawer))
	b.setAll([]LocationName{
		"Ring the Back Gardens Bell",
		"Spin the Windmill",
		"Spin Purple Flower",
		"Spin Sunflower",
	}, backYard)
	for _, note := range []string{"G", "F", "E", "D", "C", "B", "A"} {
		b.set(LocationName("Play Wind Chime ("+note+")"), backYard)
	}

	b.setAll([]LocationName{
		"Close Van Door (Left)",
		"Close Van Door (Right)",
		"Turn on Pub Tap",
	}, b.in(Pub))
	b.setAll([]LocationName{
		"Untie Burly Man's Laces (Left)",
		"Untie Burly Man's Laces (Right)",
	}, AllOf(b.in(Pub), b.npc(SoulBurlyMan)))

	village := b.in(ModelVillage)
	b.setAll([]LocationName{"Peck Model Church Doorway", "Peck Model Church Tower"}, village)
	b.setAll(numberedNames("Peck Model Church Doorway", 19), village)
	b.setAll(numberedNames("Peck Model Church Tower", 16), village)
}
