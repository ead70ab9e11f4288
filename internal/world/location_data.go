package world

import "fmt"

// Main task lists.
const (
	TaskGetIntoGarden     LocationName = "Get into the garden"
	TaskGroundskeeperWet  LocationName = "Get the groundskeeper wet"
	TaskStealKeys         LocationName = "Steal the groundskeeper's keys"
	TaskSunHat            LocationName = "Make the groundskeeper wear his sun hat"
	TaskRakeInLake        LocationName = "Rake in the lake"
	TaskPicnic            LocationName = "Have a picnic"
	TaskHammerThumb       LocationName = "Make the groundskeeper hammer his thumb"
	TaskBreakBroom        LocationName = "Break the broom"
	TaskPhoneBooth        LocationName = "Trap the boy in the phone booth"
	TaskWrongGlasses      LocationName = "Make the boy wear the wrong glasses"
	TaskBuyBack           LocationName = "Make someone buy back their own stuff"
	TaskGetOnTV           LocationName = "Get on TV"
	TaskGoShopping        LocationName = "Go shopping"
	TaskTrapShopkeeper    LocationName = "Trap the shopkeeper in the garage"
	TaskBreakVase         LocationName = "Make someone break the fancy vase"
	TaskDressBust         LocationName = "Help the woman dress up the bust"
	TaskSpitTea           LocationName = "Make the man spit out his tea"
	TaskRibbon            LocationName = "Get dressed up with a ribbon"
	TaskBarefoot          LocationName = "Make the man go barefoot"
	TaskWashing           LocationName = "Do the washing"
	TaskPruneRose         LocationName = "Make someone prune the prize rose"
	TaskGetIntoPub        LocationName = "Get into the pub"
	TaskBreakDartboard    LocationName = "Break the dartboard"
	TaskToyBoat           LocationName = "Get the toy boat"
	TaskOldManBum         LocationName = "Make the old man fall on his bum"
	TaskAwardedFlower     LocationName = "Be awarded a flower"
	TaskStealPint         LocationName = "Steal a pint glass"
	TaskSetTable          LocationName = "Set the table"
	TaskDropBucket        LocationName = "Drop a bucket on the burly man's head"
	TaskReachModelVillage LocationName = "Get to the model village"
	TaskStealBell         LocationName = "Steal the golden bell"
	TaskCompleteGame      LocationName = "Complete the game"
)

// Optional task lists and goal checks.
const (
	ExtraLockOut          LocationName = "Lock the groundskeeper out of the garden"
	ExtraCabbagePicnic    LocationName = "Cabbage picnic"
	ExtraPuddle           LocationName = "Trip the boy in the puddle"
	ExtraScales           LocationName = "Make the scales go ding"
	ExtraUmbrellaTV       LocationName = "Open an umbrella inside the TV shop"
	ExtraOutsideBuyBack   LocationName = "Make someone from outside the high street buy back their own stuff"
	ExtraFiveFlowers      LocationName = "Collect the five flowers"
	ExtraBoyInGarage      LocationName = "Trap the boy in the garage"
	ExtraCatchObject      LocationName = "Catch an object as it's thrown over the fence"
	ExtraThrownOverFence  LocationName = "Get thrown over the fence"
	ExtraOutsideBust      LocationName = "Dress up the bust with things from outside the back gardens"
	ExtraScoreGoal        LocationName = "Score a goal"
	ExtraBoatUnderBridge  LocationName = "Sail the toy boat under the bridge"
	ExtraPerformRibbon    LocationName = "Perform at the pub wearing a ribbon"
	ExtraStealWoolenHat   LocationName = "Steal the old man's woolen hat"
	SpeedrunGarden        LocationName = "Complete Garden before noon"
	SpeedrunHighStreet    LocationName = "Complete High Street before noon"
	SpeedrunBackGardens   LocationName = "Complete Back Gardens before noon"
	SpeedrunPub           LocationName = "Complete Pub before noon"
	MilestoneGarden       LocationName = "All Garden Tasks Complete"
	MilestoneHighStreet   LocationName = "All High Street Tasks Complete"
	MilestoneBackGardens  LocationName = "All Back Gardens Tasks Complete"
	MilestonePub          LocationName = "All Pub Tasks Complete"
	MilestoneAllMain      LocationName = "All Main Task Lists Complete"
	MilestoneAllExtra     LocationName = "All To Do (As Well) Tasks Complete"
	MilestoneAllSpeedrun  LocationName = "All To Do (Quickly!!) Tasks Complete"
	MilestoneAllTasks     LocationName = "All Tasks Complete"
	ObjectiveModelVillage LocationName = "Goal: Reach the Model Village"
	ObjectiveAllMain      LocationName = "Goal: Complete All Main Task Lists"
	ObjectiveSpeedrun     LocationName = "Goal: Complete All Speedrun Tasks"
	ObjectiveNonSpeedrun  LocationName = "Goal: Complete All Non-Speedrun Tasks"
	ObjectiveCompleteAll  LocationName = "Complete all goals"
	ObjectiveFourFinal    LocationName = "Goal: Complete the Four Final Tasks"
)

type entry struct {
	offset int64
	name   LocationName
}

func section(region RegionName, group LocationGroup, entries ...entry) []Location {
	out := make([]Location, len(entries))
	for i, e := range entries {
		out[i] = Location{Name: e.name, ID: BaseID + e.offset, Region: region, Group: group}
	}
	return out
}

// numbered expands "prefix 1".."prefix n" at consecutive offsets.
func numbered(prefix string, first int64, n int) []entry {
	out := make([]entry, n)
	for i := range n {
		out[i] = entry{first + int64(i), LocationName(fmt.Sprintf("%s %d", prefix, i+1))}
	}
	return out
}

func numberedNames(prefix string, n int) []LocationName {
	out := make([]LocationName, n)
	for i, e := range numbered(prefix, 0, n) {
		out[i] = e.name
	}
	return out
}

func concat(parts ...[]entry) []entry {
	var out []entry
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// DefaultLocations lists every location the world knows about. As with
// tokens the offsets are persisted by clients and must not be renumbered.
func DefaultLocations() []Location {
	var out []Location
	add := func(ls []Location) { out = append(out, ls...) }

	add(section(Garden, GroupMainTask,
		entry{1, TaskGetIntoGarden},
		entry{2, TaskGroundskeeperWet},
		entry{3, TaskStealKeys},
		entry{4, TaskSunHat},
		entry{5, TaskRakeInLake},
		entry{6, TaskPicnic},
		entry{7, TaskHammerThumb},
	))
	add(section(HighStreet, GroupMainTask,
		entry{10, TaskBreakBroom},
		entry{11, TaskPhoneBooth},
		entry{12, TaskWrongGlasses},
		entry{13, TaskBuyBack},
		entry{14, TaskGetOnTV},
		entry{15, TaskGoShopping},
		entry{16, TaskTrapShopkeeper},
	))
	add(section(BackGardens, GroupMainTask,
		entry{20, TaskBreakVase},
		entry{21, TaskDressBust},
		entry{22, TaskSpitTea},
		entry{23, TaskRibbon},
		entry{24, TaskBarefoot},
		entry{25, TaskWashing},
		entry{26, TaskPruneRose},
	))
	add(section(Pub, GroupMainTask,
		entry{30, TaskGetIntoPub},
		entry{31, TaskBreakDartboard},
		entry{32, TaskToyBoat},
		entry{33, TaskOldManBum},
		entry{34, TaskAwardedFlower},
		entry{35, TaskStealPint},
		entry{36, TaskSetTable},
		entry{37, TaskDropBucket},
	))
	add(section(ModelVillage, GroupVictory,
		entry{40, TaskReachModelVillage},
		entry{41, TaskStealBell},
		entry{42, TaskCompleteGame},
	))

	add(section(Garden, GroupExtraTask,
		entry{50, ExtraLockOut},
		entry{51, ExtraCabbagePicnic},
	))
	add(section(HighStreet, GroupExtraTask,
		entry{52, ExtraPuddle},
		entry{53, ExtraScales},
		entry{54, ExtraUmbrellaTV},
		entry{55, ExtraOutsideBuyBack},
		entry{56, ExtraFiveFlowers},
	))
	add(section(BackGardens, GroupExtraTask,
		entry{60, ExtraBoyInGarage},
		entry{61, ExtraCatchObject},
		entry{62, ExtraThrownOverFence},
		entry{63, ExtraOutsideBust},
		entry{64, ExtraScoreGoal},
	))
	add(section(Pub, GroupExtraTask,
		entry{65, ExtraBoatUnderBridge},
		entry{66, ExtraPerformRibbon},
		entry{67, ExtraStealWoolenHat},
	))

	add(section(Garden, GroupSpeedrunTask, entry{70, SpeedrunGarden}))
	add(section(HighStreet, GroupSpeedrunTask, entry{71, SpeedrunHighStreet}))
	add(section(BackGardens, GroupSpeedrunTask, entry{72, SpeedrunBackGardens}))
	add(section(Pub, GroupSpeedrunTask, entry{73, SpeedrunPub}))

	add(section(Garden, GroupMilestone, entry{81, MilestoneGarden}))
	add(section(HighStreet, GroupMilestone, entry{82, MilestoneHighStreet}))
	add(section(BackGardens, GroupMilestone, entry{83, MilestoneBackGardens}))
	add(section(Pub, GroupMilestone, entry{84, MilestonePub}))
	add(section(Hub, GroupMilestone, entry{85, MilestoneAllMain}))
	add(section(Hub, GroupMilestoneExtra, entry{86, MilestoneAllExtra}))
	add(section(Hub, GroupMilestoneSpeedrun, entry{87, MilestoneAllSpeedrun}))
	add(section(Hub, GroupMilestoneAll, entry{88, MilestoneAllTasks}))

	add(section(ModelVillage, GroupGoalModelVillage, entry{90, ObjectiveModelVillage}))
	add(section(Hub, GroupGoalAllMain, entry{91, ObjectiveAllMain}))
	add(section(Hub, GroupGoalSpeedrun, entry{92, ObjectiveSpeedrun}))
	add(section(Hub, GroupGoalNonSpeedrun, entry{93, ObjectiveNonSpeedrun}))
	add(section(Hub, GroupGoalAllTasks, entry{80, ObjectiveCompleteAll}))
	add(section(Hub, GroupGoalFourFinal, entry{95, ObjectiveFourFinal}))

	add(section(Hub, GroupPickup,
		entry{1015, "Pick up Drink Can"},
		entry{1016, "Pick up Tennis Ball"},
		entry{1071, "Pick up Bow (Blue)"},
		entry{1072, "Pick up Dummy"},
		entry{1101, "Pick up Fishing Bobber"},
		entry{1042, "Pick up Pint Bottle"},
		entry{1440, "Pick up Garden Boot"},
		entry{1441, "Pick up Hub Boot"},
	))
	add(section(Garden, GroupPickup, concat([]entry{
		{1002, "Pick up Radio"},
		{1003, "Pick up Trowel"},
		{1004, "Pick up Keys"},
		{1006, "Pick up Tulip"},
		{1007, "Pick up Apple"},
		{1008, "Pick up Jam"},
		{1009, "Pick up Picnic Mug"},
		{1010, "Pick up Thermos"},
		{1011, "Pick up Sandwich (Right)"},
		{1012, "Pick up Sandwich (Left)"},
		{1014, "Pick up Straw Hat"},
		{1017, "Pick up Gardener Hat"},
		{1018, "Pick up Apple 2"},
	}, numbered("Pick up Carrot", 1401, 10))...))
	add(section(HighStreet, GroupPickup,
		entry{1021, "Pick up Boy's Glasses"},
		entry{1022, "Pick up Horn-Rimmed Glasses"},
		entry{1023, "Pick up Red Glasses"},
		entry{1024, "Pick up Sunglasses"},
		entry{1025, "Pick up Toilet Paper"},
		entry{1026, "Pick up Toy Car"},
		entry{1027, "Pick up Hairbrush"},
		entry{1028, "Pick up Toothbrush"},
		entry{1029, "Pick up Stereoscope"},
		entry{1030, "Pick up Dish Soap Bottle"},
		entry{1031, "Pick up Blue Can"},
		entry{1032, "Pick up Yellow Can"},
		entry{1033, "Pick up Orange Can"},
		entry{1034, "Pick up Weed Tool"},
		entry{1035, "Pick up Lily Flower"},
		entry{1036, "Pick up Orange"},
		entry{1037, "Pick up Tomato 1"},
		entry{1038, "Pick up Shop Carrot 1"},
		entry{1039, "Pick up Cucumber 1"},
		entry{1040, "Pick up Leek 1"},
		entry{1041, "Pick up Fusilage"},
		entry{1043, "Pick up Spray Bottle"},
		entry{1044, "Pick up Walkie Talkie B"},
		entry{1045, "Pick up Walkie Talkie"},
		entry{1046, "Pick up Apple Core"},
		entry{1047, "Pick up Dustbin Lid"},
		entry{1048, "Pick up Pint Bottle 2"},
		entry{1050, "Pick up Chalk"},
		entry{1051, "Pick up Tomato 2"},
		entry{1052, "Pick up Orange 2"},
		entry{1053, "Pick up Orange 3"},
		entry{1054, "Pick up Shop Carrot 2"},
		entry{1055, "Pick up Cucumber 2"},
		entry{1056, "Pick up Leek 2"},
		entry{1057, "Pick up Shop Carrot 3"},
		entry{1058, "Pick up Apple Core 2"},
		entry{1059, "Pick up Leek 3"},
		entry{1060, "Pick up Tomato 3"},
		entry{1061, "Pick up Cucumber 3"},
		entry{1062, "Pick up Garden Fork"},
		entry{1063, "Pick up Pint Bottle 3"},
	))
	add(section(BackGardens, GroupPickup,
		entry{1073, "Pick up Cricket Ball"},
		entry{1074, "Pick up Bust Pipe"},
		entry{1075, "Pick up Bust Hat"},
		entry{1076, "Pick up Bust Glasses"},
		entry{1077, "Pick up Right Slipper"},
		entry{1078, "Pick up Left Slipper"},
		entry{1079, "Pick up Tea Cup"},
		entry{1080, "Pick up Newspaper"},
		entry{1081, "Pick up Socks"},
		entry{1082, "Pick up Socks 2"},
		entry{1083, "Pick up Vase"},
		entry{1084, "Pick up Bow"},
		entry{1085, "Pick up Pot Stack"},
		entry{1086, "Pick up Soap"},
		entry{1087, "Pick up Paintbrush"},
		entry{1088, "Pick up Broken Vase Piece 1"},
		entry{1089, "Pick up Broken Vase Piece 2"},
		entry{1090, "Pick up Right Strap"},
		entry{1093, "Pick up Badminton Racket"},
		entry{1094, "Pick up Rose"},
	))
	add(section(Pub, GroupPickup, concat([]entry{
		{1102, "Pick up Exit Letter"},
		{1104, "Pick up Plate"},
		{1105, "Pick up Plate 2"},
		{1106, "Pick up Plate 3"},
		{1107, "Pick up Green Quoit 1"},
		{1108, "Pick up Red Quoit 1"},
		{1109, "Pick up Fork"},
		{1110, "Pick up Fork 2"},
		{1111, "Pick up Knife"},
		{1112, "Pick up Knife 2"},
		{1113, "Pick up Cork"},
		{1114, "Pick up Candlestick"},
		{1115, "Pick up Flower for Vase"},
		{1116, "Pick up Dart 1"},
		{1117, "Pick up Dart 2"},
		{1118, "Pick up Dart 3"},
		{1119, "Pick up Harmonica"},
		{1120, "Pick up Pint Glass"},
		{1121, "Pick up Toy Boat"},
		{1122, "Pick up Wooly Hat"},
		{1123, "Pick up Pepper Grinder"},
		{1124, "Pick up Pub Woman's Cloth"},
		{1125, "Pick up Green Quoit 2"},
		{1126, "Pick up Green Quoit 3"},
		{1127, "Pick up Red Quoit 2"},
		{1128, "Pick up Red Quoit 3"},
	}, numbered("Pick up Pub Tomato", 1421, 11))...))
	add(section(ModelVillage, GroupPickup,
		entry{1131, "Pick up Mini Person (Child)"},
		entry{1132, "Pick up Mini Person (Jumpsuit)"},
		entry{1133, "Pick up Mini Person (Gardener)"},
		entry{1134, "Pick up Mini Shovel"},
		entry{1135, "Pick up Poppy Flower"},
		entry{1136, "Pick up Mini Person (Old Woman)"},
		entry{1137, "Pick up Mini Phone Door"},
		entry{1138, "Pick up Mini Mail Pillar"},
		entry{1139, "Pick up Mini Person (Postie)"},
		entry{1140, "Pick up Mini Person (Vest Man)"},
		entry{1141, "Pick up Mini Person"},
		entry{1142, "Pick up Timber Handle"},
		entry{1143, "Pick up Golden Bell"},
		entry{1144, "Pick up Mini Person (Goose)"},
	))

	add(section(Hub, GroupDrag,
		entry{1215, "Drag Fence Bolt"},
		entry{1270, "Drag Tackle Box"},
	))
	add(section(Garden, GroupDrag, concat([]entry{
		{1201, "Drag Rake"},
		{1202, "Drag Picnic Basket"},
		{1203, "Drag Esky"},
		{1205, "Drag Shovel"},
		{1206, "Drag Pumpkin"},
		{1207, "Drag Pumpkin 2"},
		{1208, "Drag Pumpkin 3"},
		{1209, "Drag Pumpkin 4"},
		{1210, "Drag Watering Can"},
		{1211, "Drag Gumboot 1"},
		{1212, "Drag Gumboot 2"},
		{1213, "Drag Gardener Sign"},
		{1214, "Drag Wooden Crate"},
		{1216, "Drag Mallet"},
	}, numbered("Drag Topsoil Bag", 1450, 3))...))
	add(section(HighStreet, GroupDrag,
		entry{1220, "Drag Shopping Basket"},
		entry{1221, "Drag Black Umbrella"},
		entry{1222, "Drag Push Broom"},
		entry{1223, "Drag Broken Broom Head"},
		entry{1224, "Drag Dustbin"},
		entry{1225, "Drag Baby Doll"},
		entry{1226, "Drag Pricing Gun"},
		entry{1227, "Drag Adding Machine"},
		entry{1228, "Drag Rainbow Umbrella"},
		entry{1229, "Drag Red Umbrella"},
	))
	add(section(BackGardens, GroupDrag,
		entry{1240, "Drag Rose Box"},
		entry{1241, "Drag Cricket Bat"},
		entry{1242, "Drag Tea Pot"},
		entry{1243, "Drag Clippers"},
		entry{1244, "Drag Duck Statue"},
		entry{1245, "Drag Frog Statue"},
		entry{1246, "Drag Jeremy Fish"},
		entry{1247, "Drag Messy Sign"},
		entry{1248, "Drag Drawer"},
		entry{1249, "Drag Enamel Jug"},
		entry{1250, "Drag Clean Sign"},
	))
	add(section(Pub, GroupDrag,
		entry{1271, "Drag Traffic Cone"},
		entry{1272, "Drag Exit Parcel"},
		entry{1273, "Drag Stealth Box"},
		entry{1274, "Drag No Goose Sign"},
		entry{1275, "Drag Portable Stool"},
		entry{1276, "Drag Dartboard"},
		entry{1277, "Drag Mop Bucket"},
		entry{1278, "Drag Mop"},
		entry{1279, "Drag Delivery Box"},
		entry{1280, "Drag Burly Mans Bucket"},
	))
	add(section(ModelVillage, GroupDrag,
		entry{1290, "Drag Mini Bench"},
		entry{1291, "Drag Mini Pump"},
		entry{1292, "Drag Mini Street Bench"},
		entry{1293, "Drag Birdbath"},
		entry{1294, "Drag Easel"},
		entry{1295, "Drag Sun Lounge"},
	))

	add(section(Hub, GroupInteraction,
		entry{1301, "Ring the Bike Bell"},
		entry{1306, "Open Intro Gate"},
	))
	add(section(Garden, GroupInteraction,
		entry{1302, "Turn on Garden Tap"},
		entry{1303, "Turn on Sprinkler"},
	))
	add(section(HighStreet, GroupInteraction,
		entry{1311, "Unplug the Radio"},
		entry{1313, "Open Black Umbrella"},
		entry{1314, "Open Rainbow Umbrella"},
		entry{1315, "Open Red Umbrella"},
		entry{1316, "Untie Boy's Laces (Left)"},
		entry{1317, "Untie Boy's Laces (Right)"},
	))
	add(section(BackGardens, GroupInteraction,
		entry{1310, "Break Through Boards"},
		entry{1320, "Ring the Back Gardens Bell"},
		entry{1322, "Spin the Windmill"},
		entry{1323, "Spin Purple Flower"},
		entry{1324, "Break Through Trellis"},
		entry{1325, "Spin Sunflower"},
		entry{1340, "Play Wind Chime (G)"},
		entry{1341, "Play Wind Chime (F)"},
		entry{1342, "Play Wind Chime (E)"},
		entry{1343, "Play Wind Chime (D)"},
		entry{1344, "Play Wind Chime (C)"},
		entry{1345, "Play Wind Chime (B)"},
		entry{1346, "Play Wind Chime (A)"},
	))
	add(section(Pub, GroupInteraction,
		entry{1330, "Close Van Door (Left)"},
		entry{1331, "Close Van Door (Right)"},
		entry{1332, "Untie Burly Man's Laces (Left)"},
		entry{1333, "Untie Burly Man's Laces (Right)"},
		entry{1334, "Turn on Pub Tap"},
	))

	add(section(ModelVillage, GroupChurchFirstPecks,
		entry{1348, "Peck Model Church Doorway"},
		entry{1349, "Peck Model Church Tower"},
	))
	add(section(ModelVillage, GroupChurchAllPecks, concat(
		numbered("Peck Model Church Doorway", 1350, 19),
		numbered("Peck Model Church Tower", 1369, 16),
	)...))

	return out
}
