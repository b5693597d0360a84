package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const helpText = `click   open a category
drag    pick up and move a ball
1-9     open a category by number
p       pause / resume
t       cycle theme
?       toggle this help
q       quit`

func (a *App) splashView() string {
	if a.screen.canvas == nil {
		return ""
	}
	if a.showHelp {
		return lipgloss.Place(a.screen.cols, a.screen.fieldRows()+footerRows,
			lipgloss.Center, lipgloss.Center, a.styles.help.Render(helpText))
	}
	if a.sim != nil {
		a.screen.draw(a.sim.Balls())
	}

	var b strings.Builder
	c := a.screen.canvas
	for row := 0; row < c.Height; row++ {
		b.WriteString(a.renderRow(row))
		b.WriteByte('\n')
	}
	b.WriteString(a.footer())
	return b.String()
}

// renderRow styles runs of cells that share a layer.
func (a *App) renderRow(row int) string {
	c := a.screen.canvas
	var b, run strings.Builder
	current := layerDots
	flush := func() {
		if run.Len() == 0 {
			return
		}
		b.WriteString(a.styleFor(current).Render(run.String()))
		run.Reset()
	}
	for col := 0; col < c.Width; col++ {
		r, l := c.Cell(col, row)
		if l != current {
			flush()
			current = l
		}
		run.WriteRune(r)
	}
	flush()
	return b.String()
}

func (a *App) styleFor(l layer) lipgloss.Style {
	switch l {
	case layerLabel:
		return a.styles.label
	case layerBox:
		return a.styles.box
	default:
		return a.styles.ball
	}
}

func (a *App) footer() string {
	hint := fmt.Sprintf("click to open · drag to move · 1-%d jump · p pause · t theme (%s) · ? help · q quit",
		len(a.cfg.Categories), a.theme.Name)
	status := ""
	if a.paused {
		status = a.styles.paused.Render("PAUSED") + "  "
	}
	line := status + a.styles.footer.Render(hint)
	return lipgloss.NewStyle().MaxWidth(a.screen.cols).Render(line)
}

func (a *App) directoryView() string {
	var b strings.Builder
	width := max(a.screen.cols-8, 20)

	if a.sectionErr != nil {
		b.WriteString(a.styles.missing.Render("No content available for this category."))
		b.WriteString("\n\n")
	} else {
		b.WriteString(a.styles.heading.Render(GradientText(a.section.Title, a.theme.Accent, a.theme.Ball)))
		b.WriteString("\n")
		b.WriteString(Separator(width, a.styles.footer))
		b.WriteString("\n\n")
		item := a.styles.item.Width(width - 2)
		for _, p := range a.section.Projects {
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, a.styles.bullet.Render("◆ "), item.Render(p)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(a.styles.footer.Render("esc back · q quit"))

	return lipgloss.NewStyle().Padding(1, 4).Render(b.String())
}
