package catalog

import (
	"github.com/matzehuels/badgeicon/pkg/badge"
	"github.com/matzehuels/badgeicon/pkg/glyph"
)

// Preset style values.
const (
	// ProminentPadding is the icon padding of prominent badges.
	ProminentPadding = 0.19
	// LiftOffset nudges line glyphs whose visual weight sits low.
	LiftOffset = -0.03
)

var (
	appStoreBadge = badge.Black.Opacity(0.9)
	appStoreIcon  = badge.White.Opacity(0.6)
)

// Prominent returns the spec of a badge with a white icon on a colored badge,
// with a little more padding than the default.
func Prominent(badgeColor badge.Color) badge.Spec {
	return badge.Spec{
		IconColor:   badge.Ptr(badge.White),
		IconPadding: badge.Ptr(ProminentPadding),
		BadgeColor:  badge.Ptr(badgeColor),
	}
}

func preset(name string, g badge.Glyph, spec badge.Spec) Entry {
	return Entry{Name: name, Glyph: g, Spec: spec}
}

func sym(name string) badge.Glyph { return glyph.Symbol(name) }

func color(c badge.Color) *badge.Color { return badge.Ptr(c) }

var lifted = badge.Point{Y: LiftOffset}

func presets() []Entry {
	return []Entry{
		preset("accessibility", sym("accessibility"), badge.Spec{
			IconFill:   badge.Ptr(false),
			BadgeColor: color(badge.Blue),
		}),
		preset("airplaneMode", sym("airplane"), badge.Spec{
			BadgeColor: color(badge.Orange),
		}),
		preset("alert", sym("exclamationmark.triangle"), badge.Spec{
			IconColor: color(badge.Orange),
		}),
		preset("appStore", sym("apple.logo"), badge.Spec{
			IconColor:  color(appStoreIcon),
			BadgeColor: color(appStoreBadge),
		}),
		preset("battery", sym("battery.100percent"), badge.Spec{
			BadgeColor: color(badge.Green),
		}),
		preset("bug", sym("ladybug"), badge.Spec{
			IconRenderingMode: badge.Multicolor,
		}),
		preset("checkmark", sym("checkmark.circle"), badge.Spec{
			IconColor: color(badge.Green),
		}),
		preset("email", sym("envelope"), badge.Spec{
			IconColor:  color(badge.White),
			BadgeColor: color(badge.Blue),
		}),
		preset("error", sym("exclamationmark.triangle"), badge.Spec{
			IconColor: color(badge.Red),
		}),
		preset("export", sym("square.and.arrow.up.on.square"), badge.Spec{
			IconFill:   badge.Ptr(false),
			IconOffset: lifted,
		}),
		preset("featureRequest", sym("gift"), badge.Spec{
			IconColor: color(badge.Pink),
		}),
		preset("heart", sym("heart"), badge.Spec{
			IconColor: color(badge.Red),
		}),
		preset("languageSettings", sym("globe"), badge.Spec{
			IconColor: color(badge.Cyan),
		}),
		preset("lightbulb", sym("lightbulb"), badge.Spec{
			IconColor:         color(badge.Yellow),
			IconColorScheme:   badge.Ptr(badge.Light),
			IconRenderingMode: badge.Multicolor,
		}),
		preset("message", sym("message"), badge.Spec{
			BadgeColor: color(badge.Green),
		}),
		preset("palette", sym("paintpalette"), badge.Spec{
			IconRenderingMode: badge.Multicolor,
		}),
		preset("person", sym("person"), badge.Spec{}),
		preset("phone", sym("phone"), badge.Spec{
			BadgeColor: color(badge.Green),
		}),
		preset("privacy", sym("hand.raised.fill"), badge.Spec{
			BadgeColor: color(badge.Blue),
		}),
		preset("prominentAlert", sym("exclamationmark.triangle"), Prominent(badge.Orange)),
		preset("prominentCheckmark", sym("checkmark.circle"), Prominent(badge.Green)),
		preset("prominentError", sym("exclamationmark.triangle"), Prominent(badge.Red)),
		preset("safari", sym("safari"), badge.Spec{
			IconColor: color(badge.Blue),
		}),
		preset("settings", sym("gearshape"), badge.Spec{
			BadgeColor: color(badge.Gray),
		}),
		preset("share", sym("square.and.arrow.up"), badge.Spec{
			IconFill:   badge.Ptr(false),
			IconOffset: lifted,
		}),
		preset("shield", sym("checkmark.shield.fill"), badge.Spec{
			IconColor: color(badge.Green),
		}),
		preset("star", sym("star"), badge.Spec{
			IconColor: color(badge.Yellow),
		}),
		preset("wifi", sym("wifi"), badge.Spec{
			BadgeColor: color(badge.Blue),
		}),

		// Settings-style presets.
		preset("notifications", sym("bell"), badge.Spec{
			BadgeColor: color(badge.Red),
		}),
		preset("focus", sym("moon"), badge.Spec{
			BadgeColor:         color(badge.Indigo),
			BadgeColorDarkMode: color(badge.Purple),
		}),
		preset("display", sym("sun.max"), badge.Spec{
			BadgeColor: color(badge.Blue),
		}),
		preset("passcode", sym("lock"), badge.Spec{
			BadgeColor: color(badge.Red),
		}),
		preset("search", sym("magnifyingglass"), badge.Spec{
			IconFill:   badge.Ptr(false),
			BadgeColor: color(badge.Gray),
		}),
		preset("files", sym("folder"), badge.Spec{
			IconColor: color(badge.Blue),
		}),
		preset("delete", sym("trash"), Prominent(badge.Red)),
		preset("about", sym("info.circle"), badge.Spec{
			IconColor: color(badge.Gray),
		}),
		preset("home", sym("house"), badge.Spec{
			IconColors: []badge.Color{badge.Orange, badge.Yellow},
		}),
		preset("cloud", sym("cloud"), badge.Spec{
			BadgeColor:    color(badge.Cyan),
			BadgeGradient: badge.Ptr(false),
		}),
		preset("power", sym("bolt"), badge.Spec{
			IconColor:         color(badge.Black),
			BadgeColor:        color(badge.Yellow),
			BadgeCornerRadius: badge.Ptr(0.5),
		}),
	}
}

// Default returns a new catalog of the built-in presets. Callers may add to
// it freely.
func Default() *Catalog {
	c, err := New(presets()...)
	if err != nil {
		panic("catalog: invalid preset: " + err.Error())
	}
	return c
}

// Preset returns the built-in preset called name.
func Preset(name string) (Entry, error) {
	return Default().Lookup(name)
}
