package theme

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Mode selects between the light and dark palettes.
type Mode string

const (
	ModeDark  Mode = "dark"
	ModeLight Mode = "light"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Mode    Mode
	Gallery GalleryTheme
	Viewer  ViewerTheme
	Input   InputTheme
	Footer  FooterTheme
}

// GalleryTheme styles the bookmark tile grid.
type GalleryTheme struct {
	Tile           lipgloss.Style
	TileSelected   lipgloss.Style
	TileBroken     lipgloss.Style
	URL            lipgloss.Style
	Meta           lipgloss.Style
	BrokenMark     lipgloss.Style
	BrokenHint     lipgloss.Style
	EmptyState     lipgloss.Style
	SelectedAccent lipgloss.Style
}

// ViewerTheme styles the full-screen lightbox.
type ViewerTheme struct {
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Canvas   lipgloss.Style
	Meta     lipgloss.Style
	Position lipgloss.Style
}

// InputTheme styles the add-URL prompt.
type InputTheme struct {
	Frame   lipgloss.Style
	Prompt  lipgloss.Style
	Valid   lipgloss.Style
	Invalid lipgloss.Style
	Busy    lipgloss.Style
}

// FooterTheme groups styles used by the bottom status/help bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

type palette struct {
	accent  string
	text    string
	muted   string
	faint   string
	danger  string
	surface string
}

var (
	darkPalette = palette{
		accent:  "#ff79c6",
		text:    "#f8f8f2",
		muted:   "#9a9aa8",
		faint:   "#55555f",
		danger:  "#ff5555",
		surface: "#2a2a33",
	}
	lightPalette = palette{
		accent:  "#c2185b",
		text:    "#1d1d26",
		muted:   "#5a5a68",
		faint:   "#b4b4c0",
		danger:  "#c62828",
		surface: "#ececf2",
	}
)

// Default returns the dark theme.
func Default() Theme {
	return ForMode(ModeDark)
}

// ForMode builds the theme for mode, defaulting to dark for unknown values.
func ForMode(mode Mode) Theme {
	p := darkPalette
	if mode == ModeLight {
		p = lightPalette
	} else {
		mode = ModeDark
	}

	accent := lipgloss.Color(p.accent)
	text := lipgloss.Color(p.text)
	muted := lipgloss.Color(p.muted)
	faint := lipgloss.Color(p.faint)
	danger := lipgloss.Color(p.danger)
	dangerDim := blend(p.danger, p.surface, 0.4)

	tile := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(faint).
		Padding(0, 1)

	return Theme{
		Mode: mode,
		Gallery: GalleryTheme{
			Tile:           tile,
			TileSelected:   tile.BorderForeground(accent),
			TileBroken:     tile.BorderForeground(dangerDim),
			URL:            lipgloss.NewStyle().Foreground(text),
			Meta:           lipgloss.NewStyle().Foreground(muted),
			BrokenMark:     lipgloss.NewStyle().Foreground(danger).Bold(true),
			BrokenHint:     lipgloss.NewStyle().Foreground(muted).Italic(true),
			EmptyState:     lipgloss.NewStyle().Foreground(muted).Italic(true),
			SelectedAccent: lipgloss.NewStyle().Foreground(accent).Bold(true),
		},
		Viewer: ViewerTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.DoubleBorder()).
				BorderForeground(accent).
				Padding(1, 2),
			Title:    lipgloss.NewStyle().Foreground(text).Bold(true),
			Canvas:   lipgloss.NewStyle().Foreground(faint),
			Meta:     lipgloss.NewStyle().Foreground(muted),
			Position: lipgloss.NewStyle().Foreground(accent),
		},
		Input: InputTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accent).
				Padding(0, 1),
			Prompt:  lipgloss.NewStyle().Foreground(accent).Bold(true),
			Valid:   lipgloss.NewStyle().Foreground(lipgloss.Color(blendHex(p.accent, "#00c853", 0.6))),
			Invalid: lipgloss.NewStyle().Foreground(danger),
			Busy:    lipgloss.NewStyle().Foreground(muted).Italic(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(muted),
			Status: lipgloss.NewStyle().Foreground(faint),
			Error:  lipgloss.NewStyle().Foreground(danger),
		},
	}
}

// blend mixes two hex colors in Lab space.
func blend(hex, towards string, amount float64) color.Color {
	return lipgloss.Color(blendHex(hex, towards, amount))
}

func blendHex(hex, towards string, amount float64) string {
	from, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	to, err := colorful.Hex(towards)
	if err != nil {
		return hex
	}
	return from.BlendLab(to, amount).Clamped().Hex()
}
