package viz

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/galaxysim/internal/galaxy"
	"github.com/san-kum/galaxysim/internal/surface"
)

// Theme pairs a star palette and sky color with the panel colors around it.
type Theme struct {
	Name      string
	Palette   []string
	Sky       string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
}

// Available themes
var (
	ThemeViolet = Theme{
		Name:      "violet",
		Palette:   galaxy.VioletHex,
		Sky:       "#131322",
		Primary:   lipgloss.Color("#d0bfff"),
		Secondary: lipgloss.Color("#9b59b6"),
		Accent:    lipgloss.Color("#e0c3fc"),
		Text:      lipgloss.Color("#f2ecff"),
		Muted:     lipgloss.Color("#666688"),
	}

	ThemeEmber = Theme{
		Name:      "ember",
		Palette:   []string{"#ffd6a5", "#ffb870", "#ff9a5a", "#ff7b54", "#e85d3f", "#fcd581", "#f6a469"},
		Sky:       "#1a0f0f",
		Primary:   lipgloss.Color("#ff9a5a"),
		Secondary: lipgloss.Color("#e85d3f"),
		Accent:    lipgloss.Color("#fcd581"),
		Text:      lipgloss.Color("#fff5f0"),
		Muted:     lipgloss.Color("#8b6b5c"),
	}

	ThemeIce = Theme{
		Name:      "ice",
		Palette:   []string{"#e0fbfc", "#c2dfe3", "#9bd1e5", "#6aa9cf", "#a8dadc", "#cdeffd", "#89c2d9"},
		Sky:       "#0b1320",
		Primary:   lipgloss.Color("#9bd1e5"),
		Secondary: lipgloss.Color("#00a8cc"),
		Accent:    lipgloss.Color("#e0fbfc"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
	}

	ThemeMono = Theme{
		Name:      "mono",
		Palette:   []string{"#ffffff", "#dddddd", "#bbbbbb", "#999999"},
		Sky:       "#000000",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Accent:    lipgloss.Color("#0088ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
	}

	// Default theme
	CurrentTheme = ThemeViolet

	// All available themes
	Themes = []Theme{
		ThemeViolet,
		ThemeEmber,
		ThemeIce,
		ThemeMono,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeViolet
}

// SetTheme changes the current theme
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

func (t Theme) Colors() []color.RGBA {
	return galaxy.MustPalette(t.Palette)
}

func (t Theme) Background() color.RGBA {
	bg, err := surface.ParseHex(t.Sky)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return bg
}
