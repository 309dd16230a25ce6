package glyph

import "github.com/matzehuels/badgeicon/pkg/badge"

// Path data for the registry, in a 24x24 view box.
const (
	pathCircle          = "M2 12a10 10 0 1 0 20 0a10 10 0 1 0 -20 0Z"
	pathCheck           = "M5 12.5L9.5 17L19 7"
	pathCheckSmall      = "M7.5 12.3L10.6 15.4L16.5 9.2"
	pathStar            = "M12 2.1L9.41 9.04L2.01 9.36L7.82 13.96L5.83 21.09L12 17L18.17 21.09L16.18 13.96L21.99 9.36L14.59 9.04Z"
	pathPlusH           = "M4 12L20 12M12 4L12 20"
	pathXmark           = "M5.5 5.5L18.5 18.5M18.5 5.5L5.5 18.5"
	pathTriangle        = "M12 2.5L22.5 20.5L1.5 20.5Z"
	pathExclBar         = "M12 9L12 14"
	pathExclDot         = "M10.7 17.2a1.3 1.3 0 1 0 2.6 0a1.3 1.3 0 1 0 -2.6 0Z"
	pathWifiDot         = "M10.2 19a1.8 1.8 0 1 0 3.6 0a1.8 1.8 0 1 0 -3.6 0Z"
	pathWifiA1          = "M8.11 15.11A5.5 5.5 0 0 1 15.89 15.11"
	pathWifiA2          = "M4.93 11.93A10 10 0 0 1 19.07 11.93"
	pathWifiA3          = "M3.07 7.57A14.5 14.5 0 0 1 20.93 7.57"
	pathEnvBody         = "M4.5 5H19.5a2.5 2.5 0 0 1 2.5 2.5V16.5a2.5 2.5 0 0 1 -2.5 2.5H4.5a2.5 2.5 0 0 1 -2.5 -2.5V7.5a2.5 2.5 0 0 1 2.5 -2.5Z"
	pathEnvFlap         = "M2.8 6.5L12 13.5L21.2 6.5"
	pathGlobeMeridian   = "M12 2c-3.2 3 -4.6 6.4 -4.6 10s1.4 7 4.6 10M12 2c3.2 3 4.6 6.4 4.6 10s-1.4 7 -4.6 10"
	pathGlobeLines      = "M2.5 12L21.5 12M4.2 7L19.8 7M4.2 17L19.8 17"
	pathGear            = "M22.4 13.48L22.4 10.52L19.55 10.06L18.71 8.03L20.4 5.7L18.3 3.6L15.97 5.29L13.94 4.45L13.48 1.6L10.52 1.6L10.06 4.45L8.03 5.29L5.7 3.6L3.6 5.7L5.29 8.03L4.45 10.06L1.6 10.52L1.6 13.48L4.45 13.94L5.29 15.97L3.6 18.3L5.7 20.4L8.03 18.71L10.06 19.55L10.52 22.4L13.48 22.4L13.94 19.55L15.97 18.71L18.3 20.4L20.4 18.3L18.71 15.97L19.55 13.94Z"
	pathGearHole        = "M8.6 12a3.4 3.4 0 1 0 6.8 0a3.4 3.4 0 1 0 -6.8 0Z"
	pathPersonHead      = "M7.5 7.5a4.5 4.5 0 1 0 9 0a4.5 4.5 0 1 0 -9 0Z"
	pathPersonBody      = "M3.5 21.5c0 -4.7 3.8 -8 8.5 -8s8.5 3.3 8.5 8Z"
	pathMessage         = "M12 3C6.5 3 2 6.6 2 11c0 2.4 1.3 4.5 3.4 6L4.5 21l4.3 -2.3c1 0.3 2.1 0.4 3.2 0.4c5.5 0 10 -3.6 10 -8S17.5 3 12 3Z"
	pathBolt            = "M13.5 2L4.5 13.5L10.5 13.5L9.5 22L18.5 10.5L12.5 10.5Z"
	pathBatteryBody     = "M4 7H17a2.5 2.5 0 0 1 2.5 2.5V14.5a2.5 2.5 0 0 1 -2.5 2.5H4a2.5 2.5 0 0 1 -2.5 -2.5V9.5a2.5 2.5 0 0 1 2.5 -2.5Z"
	pathBatteryNub      = "M21.2 10H21.5a1 1 0 0 1 1 1V13a1 1 0 0 1 -1 1H21.2a1 1 0 0 1 -1 -1V11a1 1 0 0 1 1 -1Z"
	pathBatteryLevel    = "M4.7 9H16.3a1.2 1.2 0 0 1 1.2 1.2V13.8a1.2 1.2 0 0 1 -1.2 1.2H4.7a1.2 1.2 0 0 1 -1.2 -1.2V10.2a1.2 1.2 0 0 1 1.2 -1.2Z"
	pathBoxOpen         = "M8 9H5.5v12.5h13V9H16"
	pathArrowUp         = "M12 2.5L12 14.5M8 6.5L12 2.5L16 6.5"
	pathBoxBack         = "M8.5 6.5V4h13v12.5h-2.5"
	pathBoxFront        = "M4 8.5H14a1.5 1.5 0 0 1 1.5 1.5V20a1.5 1.5 0 0 1 -1.5 1.5H4a1.5 1.5 0 0 1 -1.5 -1.5V10a1.5 1.5 0 0 1 1.5 -1.5Z"
	pathArrowUpSmall    = "M9 11L9 18M6.5 13.5L9 11L11.5 13.5"
	pathBulb            = "M12 1.8c-4.3 0 -7.5 3.2 -7.5 7.3c0 2.7 1.4 4.4 2.8 5.9c0.8 0.9 1.2 1.6 1.2 2.5h7c0 -0.9 0.4 -1.6 1.2 -2.5c1.4 -1.5 2.8 -3.2 2.8 -5.9c0 -4.1 -3.2 -7.3 -7.5 -7.3Z"
	pathBulbBase        = "M10 18.5H14a1.5 1.5 0 0 1 1.5 1.5V20.5a1.5 1.5 0 0 1 -1.5 1.5H10a1.5 1.5 0 0 1 -1.5 -1.5V20a1.5 1.5 0 0 1 1.5 -1.5Z"
	pathGiftBox         = "M5 11H19a1.5 1.5 0 0 1 1.5 1.5V20a1.5 1.5 0 0 1 -1.5 1.5H5a1.5 1.5 0 0 1 -1.5 -1.5V12.5a1.5 1.5 0 0 1 1.5 -1.5Z"
	pathGiftLid         = "M3.2 7H20.8a1.2 1.2 0 0 1 1.2 1.2V10.3a1.2 1.2 0 0 1 -1.2 1.2H3.2a1.2 1.2 0 0 1 -1.2 -1.2V8.2a1.2 1.2 0 0 1 1.2 -1.2Z"
	pathGiftRibbon      = "M12 7L12 21.5"
	pathGiftBow         = "M12 7C10.5 3.5 6.5 3 6.5 5.2S10 7 12 7Zm0 0c1.5 -3.5 5.5 -4 5.5 -1.8S14 7 12 7Z"
	pathAirplane        = "M12 1.5c0.8 0 1.3 0.8 1.3 1.8V9l8.2 4.6v2.1l-8.2 -2.5v5l2.3 1.7v1.6L12 20.5l-3.6 1v-1.6l2.3 -1.7v-5l-8.2 2.5v-2.1l8.2 -4.6V3.3c0 -1 0.5 -1.8 1.3 -1.8Z"
	pathPalette         = "M12 2C6.5 2 2 6.2 2 11.5S6.3 21.5 11 21.5c1.5 0 2.2 -0.9 2.2 -2c0 -1.3 -1 -1.6 -1 -2.7c0 -1 0.8 -1.8 2 -1.8h2.6c3 0 5.2 -2.2 5.2 -5C22 5.6 17.5 2 12 2Z"
	pathPalRed          = "M5.2 11.5a1.8 1.8 0 1 0 3.6 0a1.8 1.8 0 1 0 -3.6 0Z"
	pathPalYellow       = "M7.7 6.8a1.8 1.8 0 1 0 3.6 0a1.8 1.8 0 1 0 -3.6 0Z"
	pathPalGreen        = "M12.7 6.8a1.8 1.8 0 1 0 3.6 0a1.8 1.8 0 1 0 -3.6 0Z"
	pathPalBlue         = "M15.7 10.8a1.8 1.8 0 1 0 3.6 0a1.8 1.8 0 1 0 -3.6 0Z"
	pathNeedleN         = "M15.5 8.5L10.8 10.8L13.2 13.2Z"
	pathNeedleS         = "M8.5 15.5L10.8 10.8L13.2 13.2Z"
	pathBugBody         = "M12 7.5c-4.2 0 -7 3.4 -7 7.3c0 3.7 3 6.7 7 6.7s7 -3 7 -6.7c0 -3.9 -2.8 -7.3 -7 -7.3Z"
	pathBugHead         = "M9 5.2a3 3 0 1 0 6 0a3 3 0 1 0 -6 0Z"
	pathBugLine         = "M12 8L12 21.5"
	pathBugSpots        = "M7.3 13a1.3 1.3 0 1 0 2.6 0a1.3 1.3 0 1 0 -2.6 0ZM14.1 13a1.3 1.3 0 1 0 2.6 0a1.3 1.3 0 1 0 -2.6 0ZM7.8 17.3a1.2 1.2 0 1 0 2.4 0a1.2 1.2 0 1 0 -2.4 0ZM13.8 17.3a1.2 1.2 0 1 0 2.4 0a1.2 1.2 0 1 0 -2.4 0Z"
	pathAccessHead      = "M10.2 6a1.8 1.8 0 1 0 3.6 0a1.8 1.8 0 1 0 -3.6 0Z"
	pathAccessBody      = "M6 9.2l4 1.2v3.2l-2 6.2M18 9.2l-4 1.2v3.2l2 6.2M10 10.4h4"
	pathShield          = "M12 1.8L3.5 5.2v6.3c0 5.3 3.6 9.3 8.5 10.7c4.9 -1.4 8.5 -5.4 8.5 -10.7V5.2Z"
	pathBell            = "M12 2.5c-3.7 0 -6.2 2.8 -6.2 6.5v4.2L3.5 17v1.2h17V17l-2.3 -3.8V9c0 -3.7 -2.5 -6.5 -6.2 -6.5Z"
	pathBellClapper     = "M10.1 20.3a1.9 1.9 0 1 0 3.8 0a1.9 1.9 0 1 0 -3.8 0Z"
	pathHouse           = "M12 2.8L2 11.2l1.2 1.4l1.3 -1.1V21h5.5v-6h4v6h5.5v-9.5l1.3 1.1l1.2 -1.4Z"
	pathLockBody        = "M6 10.5H18a2 2 0 0 1 2 2V20a2 2 0 0 1 -2 2H6a2 2 0 0 1 -2 -2V12.5a2 2 0 0 1 2 -2Z"
	pathLockShackle     = "M7.5 10.5V7.2C7.5 4.5 9.5 2.5 12 2.5s4.5 2 4.5 4.7v3.3"
	pathMoon            = "M14.5 2.2A9.8 9.8 0 1 0 21.8 15A8 8 0 0 1 14.5 2.2Z"
	pathSunCore         = "M7.2 12a4.8 4.8 0 1 0 9.6 0a4.8 4.8 0 1 0 -9.6 0Z"
	pathSunRays         = "M19.5 12L22.5 12M17.3 6.7L19.42 4.58M12 4.5L12 1.5M6.7 6.7L4.58 4.58M4.5 12L1.5 12M6.7 17.3L4.58 19.42M12 19.5L12 22.5M17.3 17.3L19.42 19.42"
	pathMagnifierLens   = "M3.5 10a6.5 6.5 0 1 0 13 0a6.5 6.5 0 1 0 -13 0Z"
	pathMagnifierHandle = "M14.8 14.8L21 21"
	pathFolder          = "M2 6.5C2 5.1 3.1 4 4.5 4h4.8l2.2 2.5h8c1.4 0 2.5 1.1 2.5 2.5v9.5c0 1.4 -1.1 2.5 -2.5 2.5h-15C3.1 21 2 19.9 2 18.5Z"
	pathTrashCan        = "M5.5 7h13l-1.1 13.1c-0.1 1.1 -1 1.9 -2.1 1.9H8.7c-1.1 0 -2 -0.8 -2.1 -1.9Z"
	pathTrashLid        = "M4 4H20a1 1 0 0 1 1 1V5.4a1 1 0 0 1 -1 1H4a1 1 0 0 1 -1 -1V5a1 1 0 0 1 1 -1ZM10 2H14a1 1 0 0 1 1 1V3.6a1 1 0 0 1 -1 1H10a1 1 0 0 1 -1 -1V3a1 1 0 0 1 1 -1Z"
	pathInfoI           = "M12 10.5L12 17.5"
	pathInfoDot         = "M10.6 7.2a1.4 1.4 0 1 0 2.8 0a1.4 1.4 0 1 0 -2.8 0Z"
	pathCloud           = "M7 19.5c-2.8 0 -5 -2.1 -5 -4.8c0 -2.5 1.9 -4.5 4.4 -4.8C7.3 6.9 9.6 4.5 12.8 4.5c3.6 0 6.4 2.8 6.5 6.3c1.9 0.4 3.2 2.1 3.2 4.1c0 2.5 -2 4.6 -4.6 4.6Z"
	pathHeart           = "M12 21.2c-0.4 0 -0.8 -0.2 -1.1 -0.4C5.9 17 2 13.6 2 8.9C2 5.9 4.3 3.5 7.2 3.5c2 0 3.7 1.1 4.8 2.8c1.1 -1.7 2.8 -2.8 4.8 -2.8c2.9 0 5.2 2.4 5.2 5.4c0 4.7 -3.9 8.1 -8.9 11.9c-0.3 0.2 -0.7 0.4 -1.1 0.4Z"
	pathHand            = "M7 11V5.5a1.25 1.25 0 0 1 2.5 0V10h0.5V3.5a1.25 1.25 0 0 1 2.5 0V10h0.5V4.5a1.25 1.25 0 0 1 2.5 0V11h0.5V7a1.25 1.25 0 0 1 2.5 0v7c0 4.4 -3 7.5 -7 7.5c-3 0 -4.8 -1.6 -6.2 -4L3.6 13.3a1.3 1.3 0 0 1 2.1 -1.5L7 13.5Z"
	pathPhone           = "M6.6 2.5c0.6 -0.2 1.3 0 1.6 0.6l1.8 3.6c0.3 0.6 0.2 1.3 -0.3 1.7L8.2 9.6c1.2 2.5 3.4 4.7 5.9 5.9l1.2 -1.5c0.4 -0.5 1.1 -0.6 1.7 -0.3l3.6 1.8c0.6 0.3 0.8 1 0.6 1.6l-0.8 2.2c-0.3 0.9 -1.2 1.5 -2.2 1.4C9.9 19.9 4.1 14.1 3.3 5.8c-0.1 -1 0.5 -1.9 1.4 -2.2Z"
	pathApple           = "M16.4 12.6c0 -2.6 2.1 -3.8 2.2 -3.9c-1.2 -1.8 -3.1 -2 -3.7 -2c-1.6 -0.2 -3.1 0.9 -3.9 0.9c-0.8 0 -2 -0.9 -3.4 -0.9c-1.7 0 -3.3 1 -4.2 2.6c-1.8 3.1 -0.5 7.7 1.3 10.2c0.9 1.2 1.9 2.6 3.2 2.6c1.3 -0.1 1.8 -0.8 3.3 -0.8c1.6 0 2 0.8 3.4 0.8c1.4 0 2.3 -1.3 3.1 -2.5c1 -1.4 1.4 -2.8 1.4 -2.9c-0.1 0 -2.7 -1 -2.7 -4.1ZM13.9 5c0.7 -0.9 1.2 -2 1 -3.2c-1 0 -2.2 0.7 -3 1.5c-0.6 0.7 -1.2 1.9 -1.1 3.1c1.2 0.1 2.3 -0.6 3.1 -1.4Z"
)

var symbols = map[string]Shape{
	"accessibility": symbol(
		fill(pathCircle),
		knock(fill(pathAccessHead)),
		knock(line(pathAccessBody, 1.8)),
	),
	"airplane":   symbol(fill(pathAirplane)),
	"apple.logo": symbol(fill(pathApple)),
	"battery.100percent": symbol(
		line(pathBatteryBody, 1.5),
		fill(pathBatteryNub),
		tint(badge.Green, fill(pathBatteryLevel)),
	),
	"bell":      symbol(fill(pathBell), fill(pathBellClapper)),
	"bolt":      symbol(fill(pathBolt)),
	"checkmark": symbol(line(pathCheck, 2.5)),
	"checkmark.circle": symbol(
		fill(pathCircle),
		knock(line(pathCheckSmall, 2)),
	),
	"checkmark.shield": symbol(
		fill(pathShield),
		knock(line(pathCheckSmall, 2)),
	),
	"circle": symbol(fill(pathCircle)),
	"cloud":  symbol(fill(pathCloud)),
	"envelope": symbol(
		fill(pathEnvBody),
		knock(line(pathEnvFlap, 1.6)),
	),
	"exclamationmark.triangle": symbol(
		fill(pathTriangle),
		knock(line(pathExclBar, 2.2)),
		knock(fill(pathExclDot)),
	),
	"folder": symbol(fill(pathFolder)),
	"gearshape": symbol(
		fill(pathGear),
		knock(fill(pathGearHole)),
	),
	"gift": symbol(
		fill(pathGiftBox),
		fill(pathGiftLid),
		knock(tint(badge.Red, line(pathGiftRibbon, 2))),
		tint(badge.Red, fill(pathGiftBow)),
	),
	"globe": symbol(
		fill(pathCircle),
		knock(line(pathGlobeMeridian, 1.4)),
		knock(line(pathGlobeLines, 1.4)),
	),
	"hand.raised": symbol(fill(pathHand)),
	"heart":       symbol(fill(pathHeart)),
	"house":       symbol(fill(pathHouse)),
	"info.circle": symbol(
		fill(pathCircle),
		knock(line(pathInfoI, 2.2)),
		knock(fill(pathInfoDot)),
	),
	"ladybug": symbol(
		tint(badge.Red, fill(pathBugBody)),
		tint(badge.Black, fill(pathBugHead)),
		knock(tint(badge.Black, line(pathBugLine, 1.2))),
		knock(tint(badge.Black, fill(pathBugSpots))),
	),
	"lightbulb": symbol(
		tint(badge.Yellow, fill(pathBulb)),
		tint(badge.Gray, fill(pathBulbBase)),
	),
	"lock": symbol(
		line(pathLockShackle, 2),
		fill(pathLockBody),
	),
	"magnifyingglass": symbol(
		line(pathMagnifierLens, 2.2),
		line(pathMagnifierHandle, 2.6),
	),
	"message": symbol(fill(pathMessage)),
	"moon":    symbol(fill(pathMoon)),
	"paintpalette": symbol(
		fill(pathPalette),
		knock(tint(badge.Red, fill(pathPalRed))),
		knock(tint(badge.Yellow, fill(pathPalYellow))),
		knock(tint(badge.Green, fill(pathPalGreen))),
		knock(tint(badge.Blue, fill(pathPalBlue))),
	),
	"person": symbol(fill(pathPersonHead), fill(pathPersonBody)),
	"phone":  symbol(fill(pathPhone)),
	"plus":   symbol(line(pathPlusH, 2.5)),
	"safari": symbol(
		fill(pathCircle),
		knock(tint(badge.Red, fill(pathNeedleN))),
		knock(tint(badge.White, fill(pathNeedleS))),
	),
	"shield": symbol(fill(pathShield)),
	"square.and.arrow.up": symbol(
		line(pathBoxOpen, 1.8),
		line(pathArrowUp, 1.8),
	),
	"square.and.arrow.up.on.square": symbol(
		line(pathBoxBack, 1.6),
		fill(pathBoxFront),
		knock(line(pathArrowUpSmall, 1.6)),
	),
	"star": symbol(fill(pathStar)),
	"sun.max": symbol(
		fill(pathSunCore),
		line(pathSunRays, 2),
	),
	"trash": symbol(fill(pathTrashCan), fill(pathTrashLid)),
	"wifi": symbol(
		fill(pathWifiDot),
		line(pathWifiA1, 2.2),
		line(pathWifiA2, 2.2),
		line(pathWifiA3, 2.2),
	),
	"xmark": symbol(line(pathXmark, 2.5)),
}

// Symbol aliases for common alternative names.
var aliases = map[string]string{
	"checkmark.shield.fill": "checkmark.shield",
	"envelope.fill":         "envelope",
	"gear":                  "gearshape",
	"hand.raised.fill":      "hand.raised",
	"magnifier":             "magnifyingglass",
	"phone.fill":            "phone",
	"sun":                   "sun.max",
	"trash.fill":            "trash",
}

func symbol(layers ...Layer) Shape {
	return Shape{ViewBox: SymbolBox, Fill: layers}
}

func fill(d string) Layer {
	return Layer{D: d}
}

func line(d string, width float64) Layer {
	return Layer{D: d, Stroke: true, Width: width}
}

func knock(l Layer) Layer {
	l.Knockout = true
	return l
}

func tint(c badge.Color, l Layer) Layer {
	l.Color = &c
	return l
}
