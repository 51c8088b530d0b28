package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(2, 8).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().Bold(true)

	targetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	percentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	overachievedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Underline(true).Padding(0, 1).Align(lipgloss.Center)

	tableCellStyle = lipgloss.NewStyle().Padding(0, 1)

	tableStripeStyle = tableCellStyle.Foreground(lipgloss.Color("7")).Faint(true)
)

// barHeader puts the label on the left and the target text on the right.
func barHeader(label, targetText string, width int) string {
	left := labelStyle.Render(label)
	right := targetStyle.Render(targetText)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + lipgloss.NewStyle().Width(gap).Render("") + right
}
