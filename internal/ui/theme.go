package ui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type palette struct {
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Accent  lipgloss.Color
	Border  lipgloss.Color
	Monster lipgloss.Color // monster cards
	Rare    lipgloss.Color // monsters with no level
	Empty   lipgloss.Color // no encounter
	Error   lipgloss.Color
}

var palettes = map[string]palette{
	"catppuccin": {
		Text:    lipgloss.Color("#cdd6f4"),
		Muted:   lipgloss.Color("#a6adc8"),
		Accent:  lipgloss.Color("#cba6f7"),
		Border:  lipgloss.Color("#585b70"),
		Monster: lipgloss.Color("#f38ba8"),
		Rare:    lipgloss.Color("#f9e2af"),
		Empty:   lipgloss.Color("#94e2d5"),
		Error:   lipgloss.Color("#eba0ac"),
	},
	"dracula": {
		Text:    lipgloss.Color("#f8f8f2"),
		Muted:   lipgloss.Color("#6272a4"),
		Accent:  lipgloss.Color("#bd93f9"),
		Border:  lipgloss.Color("#44475a"),
		Monster: lipgloss.Color("#ff79c6"),
		Rare:    lipgloss.Color("#f1fa8c"),
		Empty:   lipgloss.Color("#50fa7b"),
		Error:   lipgloss.Color("#ff5555"),
	},
	"gruvbox": {
		Text:    lipgloss.Color("#ebdbb2"),
		Muted:   lipgloss.Color("#a89984"),
		Accent:  lipgloss.Color("#fabd2f"),
		Border:  lipgloss.Color("#665c54"),
		Monster: lipgloss.Color("#fb4934"),
		Rare:    lipgloss.Color("#fe8019"),
		Empty:   lipgloss.Color("#b8bb26"),
		Error:   lipgloss.Color("#cc241d"),
	},
	"solarized_dark": {
		Text:    lipgloss.Color("#fdf6e3"),
		Muted:   lipgloss.Color("#93a1a1"),
		Accent:  lipgloss.Color("#268bd2"),
		Border:  lipgloss.Color("#586e75"),
		Monster: lipgloss.Color("#d33682"),
		Rare:    lipgloss.Color("#b58900"),
		Empty:   lipgloss.Color("#859900"),
		Error:   lipgloss.Color("#dc322f"),
	},
}

const defaultTheme = "catppuccin"

func paletteFor(name string) palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes[defaultTheme]
}

func themeNames() []string {
	names := make([]string, 0, len(palettes))
	for k := range palettes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func nextThemeName(current string, step int) string {
	names := themeNames()
	if len(names) == 0 {
		return current
	}
	idx := 0
	for i, name := range names {
		if name == current {
			idx = i
			break
		}
	}
	idx = (idx + step) % len(names)
	if idx < 0 {
		idx += len(names)
	}
	return names[idx]
}
