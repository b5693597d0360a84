package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles are derived from the active theme.
type styles struct {
	ball    lipgloss.Style
	label   lipgloss.Style
	box     lipgloss.Style
	footer  lipgloss.Style
	paused  lipgloss.Style
	heading lipgloss.Style
	item    lipgloss.Style
	bullet  lipgloss.Style
	missing lipgloss.Style
	help    lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		ball:    lipgloss.NewStyle().Foreground(t.Ball),
		label:   lipgloss.NewStyle().Foreground(t.Label).Background(t.Ball).Bold(true),
		box:     lipgloss.NewStyle().Foreground(t.Box).Bold(true),
		footer:  lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		paused:  lipgloss.NewStyle().Foreground(t.Warning).Bold(true),
		heading: lipgloss.NewStyle().Bold(true).MarginBottom(1),
		item:    lipgloss.NewStyle().Foreground(t.Text),
		bullet:  lipgloss.NewStyle().Foreground(t.Accent),
		missing: lipgloss.NewStyle().Foreground(t.Error),
		help: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Foreground(t.Text).
			Padding(1, 2),
	}
}

// titleBox lays out the centred title element. It is rendered without color
// so its cells can be composited onto the canvas.
func titleBox(title, subtitle string) []string {
	body := title
	if subtitle != "" {
		body += "\n" + subtitle
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 3).
		Align(lipgloss.Center).
		Render(body)
	return strings.Split(box, "\n")
}

// GradientText colors text with a linear gradient between two hex colors.
func GradientText(text string, startColor, endColor lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	sr, sg, sb := parseHex(string(startColor))
	er, eg, eb := parseHex(string(endColor))

	var result strings.Builder
	n := len(runes)
	for i, c := range runes {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		r := int(float64(sr) + t*float64(er-sr))
		g := int(float64(sg) + t*float64(eg-sg))
		b := int(float64(sb) + t*float64(eb-sb))

		style := lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(r, g, b))).Bold(true)
		result.WriteString(style.Render(string(c)))
	}

	return result.String()
}

// Separator draws a decorative rule.
func Separator(width int, style lipgloss.Style) string {
	if width < 8 {
		return style.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-2)
	right := strings.Repeat("─", width-mid-1)
	return style.Render(left + " ◆ " + right)
}

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	return parseHexByte(hex[1:3]), parseHexByte(hex[3:5]), parseHexByte(hex[5:7])
}

func parseHexByte(s string) int {
	var val int
	for _, c := range s {
		val *= 16
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'a' && c <= 'f':
			val += int(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += int(c - 'A' + 10)
		}
	}
	return val
}

func hexColor(r, g, b int) string {
	return "#" + hexByte(r) + hexByte(g) + hexByte(b)
}

func hexByte(v int) string {
	v = min(max(v, 0), 255)
	const hex = "0123456789abcdef"
	return string(hex[v/16]) + string(hex[v%16])
}
