package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/templui/nyr/internal/progress"
)

// StaticBar renders one immutable bar for an already computed display
// percentage. The bar is clamped for drawing; the percent text is not.
func StaticBar(percent float64, label, targetText string, width int) string {
	bar := newBar(width)

	pct := percentStyle.Render(fmt.Sprintf("%.0f%%", percent))
	if percent > 100 {
		pct = overachievedStyle.Render(fmt.Sprintf("%.0f%%", percent))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		barHeader(label, targetText, width),
		lipgloss.JoinHorizontal(lipgloss.Center, bar.ViewAs(clampUnit(percent)), " ", pct),
	)
}

// TargetText formats a target value for display next to a bar.
func TargetText(targetValue float64) string {
	return humanize.Ftoa(targetValue)
}

// RenderDashboard renders a static bar per row. Rows that could not be
// computed show their error in place of a bar.
func RenderDashboard(title string, rows []progress.TargetProgress, width int) string {
	sections := make([]string, 0, len(rows))
	for _, row := range rows {
		if row.Err != nil {
			sections = append(sections, lipgloss.JoinVertical(lipgloss.Left,
				barHeader(row.Name, TargetText(row.TargetValue), width),
				errorStyle.Render(row.Err.Error()),
			))
			continue
		}
		sections = append(sections, StaticBar(progress.DisplayPercent(row.Percentage), row.Name, TargetText(row.TargetValue), width))
	}

	if len(sections) == 0 {
		sections = append(sections, hintStyle.Render("No targets yet. Create one with: nyr targets create"))
	}

	return renderPanel(title, sections)
}

// RenderAnimated renders every animated bar at its current ratio.
func RenderAnimated(title string, bars []*AnimatedBar, width int) string {
	sections := make([]string, 0, len(bars))
	for _, b := range bars {
		sections = append(sections, b.View(width))
	}
	return renderPanel(title, sections)
}

func renderPanel(title string, sections []string) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(title),
		strings.Join(sections, "\n\n"),
	)
	return frameStyle.Render(body)
}

// Frame places the panel, clock and key hint in the terminal. Zero sizes
// skip centering, which is what non-interactive output uses.
func Frame(panel string, now time.Time, hint string, width, height int) string {
	parts := []string{panel}
	if !now.IsZero() {
		parts = append(parts, hintStyle.Render(now.Format("Mon Jan 2 15:04:05")))
	}
	if hint != "" {
		parts = append(parts, hintStyle.Render(hint))
	}
	content := lipgloss.JoinVertical(lipgloss.Center, parts...)

	if width <= 0 || height <= 0 {
		return content
	}
	// subtract one in case there's a scrollbar
	return lipgloss.Place(width-1, height, lipgloss.Center, lipgloss.Center, content)
}
