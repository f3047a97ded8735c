package dashboard

import "github.com/charmbracelet/lipgloss"

// Brand colors shared by both themes.
const (
	colorNavy   = lipgloss.Color("#0F172A")
	colorIndigo = lipgloss.Color("#6366F1")
	colorAmber  = lipgloss.Color("#F59E0B")
	colorWhite  = lipgloss.Color("#FFFFFF")
)

// Palette is the set of theme-dependent colors.
type Palette struct {
	Text    lipgloss.Color
	Heading lipgloss.Color
	SubText lipgloss.Color
	Border  lipgloss.Color
	Surface lipgloss.Color
}

var (
	lightPalette = Palette{
		Text:    lipgloss.Color("#1E293B"),
		Heading: colorNavy,
		SubText: lipgloss.Color("#64748B"),
		Border:  lipgloss.Color("#E2E8F0"),
		Surface: colorWhite,
	}
	darkPalette = Palette{
		Text:    lipgloss.Color("#E5E7EB"),
		Heading: colorWhite,
		SubText: lipgloss.Color("#9CA3AF"),
		Border:  lipgloss.Color("#1F2937"),
		Surface: colorNavy,
	}
)

// PaletteFor returns the dark or light palette.
func PaletteFor(dark bool) Palette {
	if dark {
		return darkPalette
	}
	return lightPalette
}

// Styles holds every lipgloss style the dashboard renders with.
type Styles struct {
	Title        lipgloss.Style
	Text         lipgloss.Style
	Muted        lipgloss.Style
	Heading      lipgloss.Style
	Avatar       lipgloss.Style
	Card         lipgloss.Style
	SelectedCard lipgloss.Style
	Modal        lipgloss.Style
	ModalHeader  lipgloss.Style
	Section      lipgloss.Style
	Warning      lipgloss.Style
}

// NewStyles builds the style set for the given theme.
func NewStyles(dark bool) Styles {
	p := PaletteFor(dark)
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(p.Heading),
		Text:    lipgloss.NewStyle().Foreground(p.Text),
		Muted:   lipgloss.NewStyle().Foreground(p.SubText),
		Heading: lipgloss.NewStyle().Bold(true).Foreground(p.Heading),
		Avatar: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite).
			Background(colorIndigo).
			Padding(0, 1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.HiddenBorder(), false, false, false, true).
			PaddingLeft(1),
		SelectedCard: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(colorIndigo).
			PaddingLeft(1),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		ModalHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite).
			Background(colorIndigo).
			Padding(0, 1),
		Section: lipgloss.NewStyle().Bold(true).Foreground(p.Heading).MarginTop(1),
		Warning: lipgloss.NewStyle().Foreground(colorAmber),
	}
}

// ThemeLabel is the toggle caption: it names the theme the toggle switches to.
func ThemeLabel(dark bool) string {
	if dark {
		return "☀ Light mode"
	}
	return "☾ Dark mode"
}
