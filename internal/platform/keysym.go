package platform

import "fmt"

// Keysym is a layout-resolved symbolic key identifier, independent of the
// physical scan code. Values follow the xkbcommon keysym encoding, so
// printable Latin-1 symbols equal their codepoint.
type Keysym uint32

const (
	KeysymBackSpace Keysym = 0xff08
	KeysymTab       Keysym = 0xff09
	KeysymReturn    Keysym = 0xff0d
	KeysymEscape    Keysym = 0xff1b
	KeysymDelete    Keysym = 0xffff

	KeysymLeft  Keysym = 0xff51
	KeysymUp    Keysym = 0xff52
	KeysymRight Keysym = 0xff53
	KeysymDown  Keysym = 0xff54

	KeysymF1  Keysym = 0xffbe
	KeysymF2  Keysym = 0xffbf
	KeysymF3  Keysym = 0xffc0
	KeysymF4  Keysym = 0xffc1
	KeysymF5  Keysym = 0xffc2
	KeysymF6  Keysym = 0xffc3
	KeysymF7  Keysym = 0xffc4
	KeysymF8  Keysym = 0xffc5
	KeysymF9  Keysym = 0xffc6
	KeysymF10 Keysym = 0xffc7
	KeysymF11 Keysym = 0xffc8
	KeysymF12 Keysym = 0xffc9

	KeysymXF86MonBrightnessUp   Keysym = 0x1008ff02
	KeysymXF86MonBrightnessDown Keysym = 0x1008ff03
	KeysymXF86AudioLowerVolume  Keysym = 0x1008ff11
	KeysymXF86AudioMute         Keysym = 0x1008ff12
	KeysymXF86AudioRaiseVolume  Keysym = 0x1008ff13
	KeysymXF86AudioPlay         Keysym = 0x1008ff14
	KeysymXF86AudioPrev         Keysym = 0x1008ff16
	KeysymXF86AudioNext         Keysym = 0x1008ff17
)

var keysymNames = map[string]Keysym{
	"BackSpace": KeysymBackSpace,
	"Tab":       KeysymTab,
	"Return":    KeysymReturn,
	"Escape":    KeysymEscape,
	"Delete":    KeysymDelete,
	"Left":      KeysymLeft,
	"Up":        KeysymUp,
	"Right":     KeysymRight,
	"Down":      KeysymDown,
	"F1":        KeysymF1,
	"F2":        KeysymF2,
	"F3":        KeysymF3,
	"F4":        KeysymF4,
	"F5":        KeysymF5,
	"F6":        KeysymF6,
	"F7":        KeysymF7,
	"F8":        KeysymF8,
	"F9":        KeysymF9,
	"F10":       KeysymF10,
	"F11":       KeysymF11,
	"F12":       KeysymF12,

	"XF86MonBrightnessUp":   KeysymXF86MonBrightnessUp,
	"XF86MonBrightnessDown": KeysymXF86MonBrightnessDown,
	"XF86AudioLowerVolume":  KeysymXF86AudioLowerVolume,
	"XF86AudioMute":         KeysymXF86AudioMute,
	"XF86AudioRaiseVolume":  KeysymXF86AudioRaiseVolume,
	"XF86AudioPlay":         KeysymXF86AudioPlay,
	"XF86AudioPrev":         KeysymXF86AudioPrev,
	"XF86AudioNext":         KeysymXF86AudioNext,
}

// LookupKeysym resolves a keysym by its xkbcommon name. Single printable
// ASCII characters resolve to themselves ("q" -> 0x71).
func LookupKeysym(name string) (Keysym, error) {
	if sym, ok := keysymNames[name]; ok {
		return sym, nil
	}
	if len(name) == 1 && name[0] >= 0x20 && name[0] <= 0x7e {
		return Keysym(name[0]), nil
	}
	return 0, fmt.Errorf("unknown keysym name %q", name)
}

var modifierNames = map[string]Modifiers{
	"shift": ModShift,
	"ctrl":  ModCtrl,
	"alt":   ModAlt,
	"logo":  ModLogo,
	"super": ModLogo,
}

// LookupModifier resolves a modifier by name.
func LookupModifier(name string) (Modifiers, error) {
	if mod, ok := modifierNames[name]; ok {
		return mod, nil
	}
	return 0, fmt.Errorf("unknown modifier name %q", name)
}
