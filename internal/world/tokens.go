package world

import (
	"fmt"
	"sync"

	"github.com/appengine-ltd/goose-world/internal/names"
)

// BaseID offsets every token and location id so they never collide with
// other games registered with the same host.
const BaseID int64 = 119000000

type TokenName string

type Classification string

const (
	Progression Classification = "progression"
	Useful      Classification = "useful"
	Filler      Classification = "filler"
	Trap        Classification = "trap"
)

type TokenGroup string

const (
	TokenGroupArea    TokenGroup = "area"
	TokenGroupNPC     TokenGroup = "npc_soul"
	TokenGroupProp    TokenGroup = "prop_soul"
	TokenGroupFiller  TokenGroup = "filler"
	TokenGroupTrap    TokenGroup = "trap"
	TokenGroupGoal    TokenGroup = "goal"
	TokenGroupVictory TokenGroup = "victory"
)

type Token struct {
	Name  TokenName
	ID    int64
	Class Classification
	Group TokenGroup
}

// Area access.
const (
	GardenAccess       TokenName = "Garden Access"
	HighStreetAccess   TokenName = "High Street Access"
	BackGardensAccess  TokenName = "Back Gardens Access"
	PubAccess          TokenName = "Pub Access"
	ModelVillageAccess TokenName = "Model Village Access"
	ProgressiveArea    TokenName = "Progressive Area"
)

// NPC souls.
const (
	SoulGroundskeeper  TokenName = "Groundskeeper Soul"
	SoulBoy            TokenName = "Boy Soul"
	SoulTVShopOwner    TokenName = "TV Shop Owner Soul"
	SoulMarketLady     TokenName = "Market Lady Soul"
	SoulTidyNeighbour  TokenName = "Tidy Neighbour Soul"
	SoulMessyNeighbour TokenName = "Messy Neighbour Soul"
	SoulBurlyMan       TokenName = "Burly Man Soul"
	SoulOldMan         TokenName = "Old Man Soul"
	SoulPubLady        TokenName = "Pub Lady Soul"
	SoulFancyLadies    TokenName = "Fancy Ladies Soul"
	SoulCook           TokenName = "Cook Soul"
)

// Prop souls shared by several instances of the same prop.
const (
	SoulCarrot       TokenName = "Carrot Soul"
	SoulTomato       TokenName = "Tomato Soul"
	SoulPumpkin      TokenName = "Pumpkin Soul"
	SoulTopsoilBag   TokenName = "Topsoil Bag Soul"
	SoulQuoit        TokenName = "Quoit Soul"
	SoulPlate        TokenName = "Plate Soul"
	SoulOrange       TokenName = "Orange Soul"
	SoulLeek         TokenName = "Leek Soul"
	SoulCucumber     TokenName = "Cucumber Soul"
	SoulDart         TokenName = "Dart Soul"
	SoulUmbrella     TokenName = "Umbrella Soul"
	SoulTinnedFood   TokenName = "Tinned Food Soul"
	SoulSock         TokenName = "Sock Soul"
	SoulPintBottle   TokenName = "Pint Bottle Soul"
	SoulKnife        TokenName = "Knife Soul"
	SoulGumboot      TokenName = "Gumboot Soul"
	SoulFork         TokenName = "Fork Soul"
	SoulAppleCore    TokenName = "Apple Core Soul"
	SoulApple        TokenName = "Apple Soul"
	SoulSandwich     TokenName = "Sandwich Soul"
	SoulBow          TokenName = "Bow Soul"
	SoulWalkieTalkie TokenName = "Walkie Talkie Soul"
	SoulBoot         TokenName = "Boot Soul"
	SoulMiniPerson   TokenName = "Mini Person Soul"
)

// Garden prop souls.
const (
	SoulRadio        TokenName = "Radio Soul"
	SoulTrowel       TokenName = "Trowel Soul"
	SoulTulip        TokenName = "Tulip Soul"
	SoulJam          TokenName = "Jam Soul"
	SoulPicnicMug    TokenName = "Picnic Mug Soul"
	SoulThermos      TokenName = "Thermos Soul"
	SoulStrawHat     TokenName = "Straw Hat Soul"
	SoulDrinkCan     TokenName = "Drink Can Soul"
	SoulTennisBall   TokenName = "Tennis Ball Soul"
	SoulRake         TokenName = "Rake Soul"
	SoulPicnicBasket TokenName = "Picnic Basket Soul"
	SoulEsky         TokenName = "Esky Soul"
	SoulShovel       TokenName = "Shovel Soul"
	SoulWateringCan  TokenName = "Watering Can Soul"
	SoulFenceBolt    TokenName = "Fence Bolt Soul"
	SoulMallet       TokenName = "Mallet Soul"
	SoulWoodenCrate  TokenName = "Wooden Crate Soul"
	SoulGardenerSign TokenName = "Gardener Sign Soul"
)

// High Street prop souls.
const (
	SoulHornRimmedGlasses TokenName = "Horn-Rimmed Glasses Soul"
	SoulRedGlasses        TokenName = "Red Glasses Soul"
	SoulSunglasses        TokenName = "Sunglasses Soul"
	SoulLooPaper          TokenName = "Loo Paper Soul"
	SoulToyCar            TokenName = "Toy Car Soul"
	SoulHairbrush         TokenName = "Hairbrush Soul"
	SoulToothbrush        TokenName = "Toothbrush Soul"
	SoulStereoscope       TokenName = "Stereoscope Soul"
	SoulDishSoapBottle    TokenName = "Dish Soap Bottle Soul"
	SoulSprayBottle       TokenName = "Spray Bottle Soul"
	SoulWeedTool          TokenName = "Weed Tool Soul"
	SoulLilyFlower        TokenName = "Lily Flower Soul"
	SoulFusilage          TokenName = "Fusilage Soul"
	SoulChalk             TokenName = "Chalk Soul"
	SoulDustbinLid        TokenName = "Dustbin Lid Soul"
	SoulShoppingBasket    TokenName = "Shopping Basket Soul"
	SoulPushBroom         TokenName = "Push Broom Soul"
	SoulBrokenBroomHead   TokenName = "Broken Broom Head Soul"
	SoulDustbin           TokenName = "Dustbin Soul"
	SoulBabyDoll          TokenName = "Baby Doll Soul"
	SoulPricingGun        TokenName = "Pricing Gun Soul"
	SoulAddingMachine     TokenName = "Adding Machine Soul"
	SoulBoards            TokenName = "Boards Soul"
)

// Back Gardens prop souls.
const (
	SoulDummy           TokenName = "Dummy Soul"
	SoulCricketBall     TokenName = "Cricket Ball Soul"
	SoulBustPipe        TokenName = "Bust Pipe Soul"
	SoulBustHat         TokenName = "Bust Hat Soul"
	SoulBustGlasses     TokenName = "Bust Glasses Soul"
	SoulTeaCup          TokenName = "Tea Cup Soul"
	SoulNewspaper       TokenName = "Newspaper Soul"
	SoulBadmintonRacket TokenName = "Badminton Racket Soul"
	SoulPotStack        TokenName = "Pot Stack Soul"
	SoulSoap            TokenName = "Soap Soul"
	SoulPaintbrush      TokenName = "Paintbrush Soul"
	SoulVase            TokenName = "Vase Soul"
	SoulRightStrap      TokenName = "Right Strap Soul"
	SoulRose            TokenName = "Rose Soul"
	SoulRoseBox         TokenName = "Rose Box Soul"
	SoulCricketBat      TokenName = "Cricket Bat Soul"
	SoulTeaPot          TokenName = "Tea Pot Soul"
	SoulClippers        TokenName = "Clippers Soul"
	SoulDuckStatue      TokenName = "Duck Statue Soul"
	SoulFrogStatue      TokenName = "Frog Statue Soul"
	SoulJeremyFish      TokenName = "Jeremy Fish Soul"
	SoulMessySign       TokenName = "Messy Sign Soul"
	SoulDrawer          TokenName = "Drawer Soul"
	SoulEnamelJug       TokenName = "Enamel Jug Soul"
	SoulCleanSign       TokenName = "Clean Sign Soul"
)

// Pub prop souls.
const (
	SoulFishingBobber   TokenName = "Fishing Bobber Soul"
	SoulExitLetter      TokenName = "Exit Letter Soul"
	SoulPintGlass       TokenName = "Pint Glass Soul"
	SoulToyBoat         TokenName = "Toy Boat Soul"
	SoulPepperGrinder   TokenName = "Pepper Grinder Soul"
	SoulCork            TokenName = "Cork Soul"
	SoulCandlestick     TokenName = "Candlestick Soul"
	SoulFlowerForVase   TokenName = "Flower for Vase Soul"
	SoulHarmonica       TokenName = "Harmonica Soul"
	SoulTackleBox       TokenName = "Tackle Box Soul"
	SoulTrafficCone     TokenName = "Traffic Cone Soul"
	SoulExitParcel      TokenName = "Exit Parcel Soul"
	SoulStealthBox      TokenName = "Stealth Box Soul"
	SoulNoGooseSign     TokenName = "No Goose Sign Soul"
	SoulPortableStool   TokenName = "Portable Stool Soul"
	SoulDartboard       TokenName = "Dartboard Soul"
	SoulMopBucket       TokenName = "Mop Bucket Soul"
	SoulMop             TokenName = "Mop Soul"
	SoulDeliveryBox     TokenName = "Delivery Box Soul"
	SoulBurlyMansBucket TokenName = "Burly Mans Bucket Soul"
)

// Model Village prop souls.
const (
	SoulMiniMailPillar  TokenName = "Mini Mail Pillar Soul"
	SoulMiniPhoneDoor   TokenName = "Mini Phone Door Soul"
	SoulMiniShovel      TokenName = "Mini Shovel Soul"
	SoulPoppyFlower     TokenName = "Poppy Flower Soul"
	SoulTimberHandle    TokenName = "Timber Handle Soul"
	SoulBirdbath        TokenName = "Birdbath Soul"
	SoulEasel           TokenName = "Easel Soul"
	SoulMiniBench       TokenName = "Mini Bench Soul"
	SoulMiniPump        TokenName = "Mini Pump Soul"
	SoulMiniStreetBench TokenName = "Mini Street Bench Soul"
	SoulSunLounge       TokenName = "Sun Lounge Soul"
	SoulGoldenBell      TokenName = "Golden Bell Soul"
	SoulMiniGoose       TokenName = "Mini Goose Soul"
)

// Filler and traps.
const (
	MegaHonk        TokenName = "Mega Honk"
	SpeedyFeet      TokenName = "Speedy Feet"
	SilentSteps     TokenName = "Silent Steps"
	AGooseDay       TokenName = "A Goose Day"
	Coin            TokenName = "Coin"
	TiredGoose      TokenName = "Tired Goose"
	ConfusedFeet    TokenName = "Confused Feet"
	Butterbeak      TokenName = "Butterbeak"
	SuspiciousGoose TokenName = "Suspicious Goose"
)

// Goal flags and the victory token.
const (
	AllMainGoalsComplete        TokenName = "All Main Goals Complete"
	AllGoalsComplete            TokenName = "All Goals Complete"
	AllSpeedrunGoalsComplete    TokenName = "All Speedrun Goals Complete"
	AllNonSpeedrunGoalsComplete TokenName = "All Non-Speedrun Goals Complete"
	FourFinalGoalsComplete      TokenName = "Four Final Goals Complete"
	GoldenBell                  TokenName = "Golden Bell"
)

func areaToken(name TokenName, offset int64) Token {
	return Token{Name: name, ID: BaseID + offset, Class: Progression, Group: TokenGroupArea}
}

func npcToken(name TokenName, offset int64) Token {
	return Token{Name: name, ID: BaseID + offset, Class: Progression, Group: TokenGroupNPC}
}

func propToken(name TokenName, offset int64) Token {
	return Token{Name: name, ID: BaseID + offset, Class: Progression, Group: TokenGroupProp}
}

// DefaultTokens lists every token the world can emit. Offsets are stable:
// external consumers persist them, so removed entries leave gaps rather than
// being renumbered.
func DefaultTokens() []Token {
	return []Token{
		areaToken(GardenAccess, 100),
		areaToken(HighStreetAccess, 101),
		areaToken(BackGardensAccess, 102),
		areaToken(PubAccess, 103),
		areaToken(ModelVillageAccess, 104),
		areaToken(ProgressiveArea, 110),

		npcToken(SoulGroundskeeper, 120),
		npcToken(SoulBoy, 121),
		npcToken(SoulTVShopOwner, 122),
		npcToken(SoulMarketLady, 123),
		npcToken(SoulTidyNeighbour, 124),
		npcToken(SoulMessyNeighbour, 125),
		npcToken(SoulBurlyMan, 126),
		npcToken(SoulOldMan, 127),
		npcToken(SoulPubLady, 128),
		npcToken(SoulFancyLadies, 129),
		npcToken(SoulCook, 130),

		propToken(SoulCarrot, 400),
		propToken(SoulTomato, 401),
		propToken(SoulPumpkin, 402),
		propToken(SoulTopsoilBag, 403),
		propToken(SoulQuoit, 404),
		propToken(SoulPlate, 405),
		propToken(SoulOrange, 406),
		propToken(SoulLeek, 407),
		propToken(SoulCucumber, 408),
		propToken(SoulDart, 409),
		propToken(SoulUmbrella, 410),
		propToken(SoulTinnedFood, 411),
		propToken(SoulSock, 412),
		propToken(SoulPintBottle, 413),
		propToken(SoulKnife, 414),
		propToken(SoulGumboot, 415),
		propToken(SoulFork, 416),
		propToken(SoulAppleCore, 418),
		propToken(SoulApple, 419),
		propToken(SoulSandwich, 420),
		propToken(SoulBow, 422),
		propToken(SoulWalkieTalkie, 423),
		propToken(SoulBoot, 424),
		propToken(SoulMiniPerson, 425),

		propToken(SoulRadio, 500),
		propToken(SoulTrowel, 501),
		propToken(SoulTulip, 503),
		propToken(SoulJam, 504),
		propToken(SoulPicnicMug, 505),
		propToken(SoulThermos, 506),
		propToken(SoulStrawHat, 507),
		propToken(SoulDrinkCan, 508),
		propToken(SoulTennisBall, 509),
		propToken(SoulRake, 511),
		propToken(SoulPicnicBasket, 512),
		propToken(SoulEsky, 513),
		propToken(SoulShovel, 514),
		propToken(SoulWateringCan, 515),
		propToken(SoulFenceBolt, 516),
		propToken(SoulMallet, 517),
		propToken(SoulWoodenCrate, 518),
		propToken(SoulGardenerSign, 519),

		propToken(SoulHornRimmedGlasses, 521),
		propToken(SoulRedGlasses, 522),
		propToken(SoulSunglasses, 523),
		propToken(SoulLooPaper, 524),
		propToken(SoulToyCar, 525),
		propToken(SoulHairbrush, 526),
		propToken(SoulToothbrush, 527),
		propToken(SoulStereoscope, 528),
		propToken(SoulDishSoapBottle, 529),
		propToken(SoulSprayBottle, 530),
		propToken(SoulWeedTool, 531),
		propToken(SoulLilyFlower, 532),
		propToken(SoulFusilage, 533),
		propToken(SoulChalk, 535),
		propToken(SoulDustbinLid, 536),
		propToken(SoulShoppingBasket, 537),
		propToken(SoulPushBroom, 538),
		propToken(SoulBrokenBroomHead, 539),
		propToken(SoulDustbin, 540),
		propToken(SoulBabyDoll, 541),
		propToken(SoulPricingGun, 542),
		propToken(SoulAddingMachine, 543),
		propToken(SoulBoards, 544),

		propToken(SoulDummy, 550),
		propToken(SoulCricketBall, 551),
		propToken(SoulBustPipe, 552),
		propToken(SoulBustHat, 553),
		propToken(SoulBustGlasses, 554),
		propToken(SoulTeaCup, 555),
		propToken(SoulNewspaper, 556),
		propToken(SoulBadmintonRacket, 557),
		propToken(SoulPotStack, 558),
		propToken(SoulSoap, 559),
		propToken(SoulPaintbrush, 560),
		propToken(SoulVase, 561),
		propToken(SoulRightStrap, 562),
		propToken(SoulRose, 563),
		propToken(SoulRoseBox, 564),
		propToken(SoulCricketBat, 565),
		propToken(SoulTeaPot, 566),
		propToken(SoulClippers, 567),
		propToken(SoulDuckStatue, 568),
		propToken(SoulFrogStatue, 569),
		propToken(SoulJeremyFish, 570),
		propToken(SoulMessySign, 571),
		propToken(SoulDrawer, 572),
		propToken(SoulEnamelJug, 573),
		propToken(SoulCleanSign, 574),

		propToken(SoulFishingBobber, 580),
		propToken(SoulExitLetter, 581),
		propToken(SoulPintGlass, 582),
		propToken(SoulToyBoat, 583),
		propToken(SoulPepperGrinder, 585),
		propToken(SoulCork, 587),
		propToken(SoulCandlestick, 588),
		propToken(SoulFlowerForVase, 589),
		propToken(SoulHarmonica, 590),
		propToken(SoulTackleBox, 591),
		propToken(SoulTrafficCone, 592),
		propToken(SoulExitParcel, 593),
		propToken(SoulStealthBox, 594),
		propToken(SoulNoGooseSign, 595),
		propToken(SoulPortableStool, 596),
		propToken(SoulDartboard, 597),
		propToken(SoulMopBucket, 598),
		propToken(SoulMop, 599),
		propToken(SoulDeliveryBox, 600),
		propToken(SoulBurlyMansBucket, 601),

		propToken(SoulMiniMailPillar, 610),
		propToken(SoulMiniPhoneDoor, 611),
		propToken(SoulMiniShovel, 612),
		propToken(SoulPoppyFlower, 613),
		propToken(SoulTimberHandle, 614),
		propToken(SoulBirdbath, 615),
		propToken(SoulEasel, 616),
		propToken(SoulMiniBench, 617),
		propToken(SoulMiniPump, 618),
		propToken(SoulMiniStreetBench, 619),
		propToken(SoulSunLounge, 620),
		propToken(SoulGoldenBell, 621),
		propToken(SoulMiniGoose, 622),

		{Name: MegaHonk, ID: BaseID + 200, Class: Useful, Group: TokenGroupFiller},
		{Name: SpeedyFeet, ID: BaseID + 201, Class: Useful, Group: TokenGroupFiller},
		{Name: SilentSteps, ID: BaseID + 202, Class: Useful, Group: TokenGroupFiller},
		{Name: AGooseDay, ID: BaseID + 203, Class: Filler, Group: TokenGroupFiller},
		{Name: Coin, ID: BaseID + 204, Class: Filler, Group: TokenGroupFiller},

		{Name: TiredGoose, ID: BaseID + 300, Class: Trap, Group: TokenGroupTrap},
		{Name: ConfusedFeet, ID: BaseID + 301, Class: Trap, Group: TokenGroupTrap},
		{Name: Butterbeak, ID: BaseID + 302, Class: Trap, Group: TokenGroupTrap},
		{Name: SuspiciousGoose, ID: BaseID + 303, Class: Trap, Group: TokenGroupTrap},

		{Name: AllMainGoalsComplete, ID: BaseID + 310, Class: Progression, Group: TokenGroupGoal},
		{Name: AllGoalsComplete, ID: BaseID + 311, Class: Progression, Group: TokenGroupGoal},
		{Name: AllSpeedrunGoalsComplete, ID: BaseID + 312, Class: Progression, Group: TokenGroupGoal},
		{Name: AllNonSpeedrunGoalsComplete, ID: BaseID + 313, Class: Progression, Group: TokenGroupGoal},
		{Name: FourFinalGoalsComplete, ID: BaseID + 314, Class: Progression, Group: TokenGroupGoal},

		{Name: GoldenBell, ID: BaseID + 999, Class: Progression, Group: TokenGroupVictory},
	}
}

type TokenCatalog struct {
	byName map[TokenName]Token
	byID   map[int64]TokenName
	order  []Token
	index  *names.Index
}

func NewTokenCatalog(defs []Token) (*TokenCatalog, error) {
	c := &TokenCatalog{
		byName: make(map[TokenName]Token, len(defs)),
		byID:   make(map[int64]TokenName, len(defs)),
		index:  names.NewIndex(),
	}
	for _, t := range defs {
		if err := c.Define(t); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Define adds t to the catalog. Names and ids are both unique keys; an
// entry that would shadow either is rejected.
func (c *TokenCatalog) Define(t Token) error {
	if t.Name == "" {
		return fmt.Errorf("token with id %d has empty name", t.ID)
	}
	if t.ID <= 0 {
		return fmt.Errorf("token %q has non-positive id %d", t.Name, t.ID)
	}
	switch t.Class {
	case Progression, Useful, Filler, Trap:
	default:
		return fmt.Errorf("token %q has invalid classification %q", t.Name, t.Class)
	}
	if _, ok := c.byName[t.Name]; ok {
		return &DuplicateError{Kind: "token", Name: string(t.Name), ID: t.ID}
	}
	if other, ok := c.byID[t.ID]; ok {
		return &DuplicateError{Kind: "token", Name: string(t.Name), ID: t.ID, Other: string(other)}
	}
	c.byName[t.Name] = t
	c.byID[t.ID] = t.Name
	c.order = append(c.order, t)
	c.index.Add(string(t.Name))
	return nil
}

func (c *TokenCatalog) Lookup(name TokenName) (Token, error) {
	t, ok := c.byName[name]
	if !ok {
		return Token{}, unknownName("token", string(name), c.index)
	}
	return t, nil
}

func (c *TokenCatalog) ByID(id int64) (Token, error) {
	name, ok := c.byID[id]
	if !ok {
		return Token{}, fmt.Errorf("unknown token id %d", id)
	}
	return c.byName[name], nil
}

// Resolve maps loosely typed input ("groundskeeper soul") to a token.
func (c *TokenCatalog) Resolve(raw string) (Token, error) {
	if name, ok := c.index.Resolve(raw); ok {
		return c.byName[TokenName(name)], nil
	}
	return Token{}, unknownName("token", raw, c.index)
}

func (c *TokenCatalog) All() []Token {
	out := make([]Token, len(c.order))
	copy(out, c.order)
	return out
}

func (c *TokenCatalog) InGroup(group TokenGroup) []Token {
	var out []Token
	for _, t := range c.order {
		if t.Group == group {
			out = append(out, t)
		}
	}
	return out
}

func (c *TokenCatalog) NameToID() map[TokenName]int64 {
	out := make(map[TokenName]int64, len(c.order))
	for _, t := range c.order {
		out[t.Name] = t.ID
	}
	return out
}

var defaultTokenCatalog = sync.OnceValues(func() (*TokenCatalog, error) {
	return NewTokenCatalog(DefaultTokens())
})

// TokenCatalogue returns the process-wide catalog built from DefaultTokens.
func TokenCatalogue() (*TokenCatalog, error) {
	return defaultTokenCatalog()
}
