package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, true-color hex values.
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	Rosewater lipgloss.Color = "#f5e0dc"
	Pink      lipgloss.Color = "#f5c2e7"
	Mauve     lipgloss.Color = "#cba6f7"
	Red       lipgloss.Color = "#f38ba8"
	Peach     lipgloss.Color = "#fab387"
	Yellow    lipgloss.Color = "#f9e2af"
	Green     lipgloss.Color = "#a6e3a1"
	Teal      lipgloss.Color = "#94e2d5"
	Sapphire  lipgloss.Color = "#74c7ec"
	Blue      lipgloss.Color = "#89b4fa"
	Lavender  lipgloss.Color = "#b4befe"

	Text     lipgloss.Color = "#cdd6f4"
	Subtext0 lipgloss.Color = "#a6adc8"
	Overlay1 lipgloss.Color = "#7f849c"
	Overlay0 lipgloss.Color = "#6c7086"
	Surface2 lipgloss.Color = "#585b70"
	Surface1 lipgloss.Color = "#45475a"
	Surface0 lipgloss.Color = "#313244"
	Base     lipgloss.Color = "#1e1e2e"
	Mantle   lipgloss.Color = "#181825"
	Crust    lipgloss.Color = "#11111b"
)

// ---------------------------------------------------------------------------
// Semantic color aliases
// ---------------------------------------------------------------------------

const (
	Accent  = Pink
	Focus   = Lavender
	Primary = Blue
	Error   = Red
	Muted   = Overlay1
)

// Colors mirrors the four calendar color options. Empty fields take the
// defaults.
type Colors struct {
	Selected    string
	TodayBorder string
	Holiday     string
	Saturday    string
}

// Styles holds every lipgloss style the picker renders with.
type Styles struct {
	Frame        lipgloss.Style
	Header       lipgloss.Style
	HeaderArrow  lipgloss.Style
	Weekday      lipgloss.Style
	Day          lipgloss.Style
	DayOutside   lipgloss.Style
	DayDisabled  lipgloss.Style
	DayHoliday   lipgloss.Style
	DaySaturday  lipgloss.Style
	DaySelected  lipgloss.Style
	DayToday     lipgloss.Style
	Cursor       lipgloss.Style
	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	ItemCurrent  lipgloss.Style
	Button       lipgloss.Style
	ButtonMain   lipgloss.Style
	ButtonOff    lipgloss.Style
	Footer       lipgloss.Style
	TimeCell     lipgloss.Style
	TimeFocused  lipgloss.Style
	TimeDisabled lipgloss.Style
	KeyHint      lipgloss.Style
	KeyDesc      lipgloss.Style
}

// New builds the styles, falling back to the palette for unset colors.
func New(c Colors) Styles {
	selected := pick(c.Selected, Primary)
	todayBorder := pick(c.TodayBorder, selected)
	holiday := pick(c.Holiday, Error)
	saturday := pick(c.Saturday, Primary)

	return Styles{
		Frame:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Surface2).Padding(0, 1),
		Header:       lipgloss.NewStyle().Foreground(Text).Bold(true),
		HeaderArrow:  lipgloss.NewStyle().Foreground(Overlay1),
		Weekday:      lipgloss.NewStyle().Foreground(Subtext0),
		Day:          lipgloss.NewStyle().Foreground(Text),
		DayOutside:   lipgloss.NewStyle().Foreground(Overlay0).Faint(true),
		DayDisabled:  lipgloss.NewStyle().Foreground(Surface2).Strikethrough(true),
		DayHoliday:   lipgloss.NewStyle().Foreground(holiday),
		DaySaturday:  lipgloss.NewStyle().Foreground(saturday),
		DaySelected:  lipgloss.NewStyle().Foreground(Crust).Background(selected).Bold(true),
		DayToday:     lipgloss.NewStyle().Underline(true).Bold(true).Foreground(todayBorder),
		Cursor:       lipgloss.NewStyle().Background(Surface1).Bold(true),
		Item:         lipgloss.NewStyle().Foreground(Text),
		ItemSelected: lipgloss.NewStyle().Foreground(Crust).Background(selected).Bold(true),
		ItemCurrent:  lipgloss.NewStyle().Foreground(todayBorder).Bold(true),
		Button:       lipgloss.NewStyle().Foreground(Subtext0),
		ButtonMain:   lipgloss.NewStyle().Foreground(selected).Bold(true),
		ButtonOff:    lipgloss.NewStyle().Foreground(Surface2),
		Footer:       lipgloss.NewStyle().Foreground(Subtext0),
		TimeCell:     lipgloss.NewStyle().Foreground(Text),
		TimeFocused:  lipgloss.NewStyle().Foreground(Crust).Background(Focus).Bold(true),
		TimeDisabled: lipgloss.NewStyle().Foreground(Surface2),
		KeyHint:      lipgloss.NewStyle().Foreground(Accent).Bold(true),
		KeyDesc:      lipgloss.NewStyle().Foreground(Muted),
	}
}

// Default is New with no overrides.
func Default() Styles { return New(Colors{}) }

func pick(hex string, fallback lipgloss.Color) lipgloss.Color {
	hex = strings.TrimSpace(hex)
	if hex == "" {
		return fallback
	}
	return lipgloss.Color(hex)
}

// Palette returns every palette color for validation.
func Palette() []lipgloss.Color {
	return []lipgloss.Color{
		Rosewater, Pink, Mauve, Red, Peach, Yellow, Green, Teal,
		Sapphire, Blue, Lavender,
		Text, Subtext0, Overlay1, Overlay0,
		Surface2, Surface1, Surface0,
		Base, Mantle, Crust,
	}
}
