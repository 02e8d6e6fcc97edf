package config

// DefaultConfig returns the builtin policy: Alt-modified bindings, a small
// set of compositor actions, and launcher entries for common desktop
// programs and XF86 media keys.
func DefaultConfig() *Config {
	return &Config{
		Modifier:    "alt",
		BorderWidth: 2,
		RepeatRate:  25,
		RepeatDelay: 600,
		Actions: map[string]string{
			"Escape": "terminate",
			"F1":     "cycle",
			"q":      "close",
		},
		Programs: map[string]string{
			"Return":                "kitty",
			"F":                     "firefox",
			"e":                     "kitty ranger",
			"v":                     "pavucontrol",
			"r":                     "rofi -show drun",
			"c":                     "kitty qalc",
			"XF86MonBrightnessUp":   "light -A 10",
			"XF86MonBrightnessDown": "light -U 10",
			"XF86AudioPrev":         "playerctl previous",
			"XF86AudioNext":         "playerctl next",
			"XF86AudioPlay":         "playerctl play_pause",
			"XF86AudioRaiseVolume":  "pactl set-sink-volume @DEFAULT_SINK@ +10%",
			"XF86AudioLowerVolume":  "pactl set-sink-volume @DEFAULT_SINK@ -10%",
			"XF86AudioMute":         "pactl set-sink-mute @DEFAULT_SINK@ toggle",
		},
	}
}
