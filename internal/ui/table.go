package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/templui/nyr/internal/model"
)

const dateLayout = "2006-01-02"

var titleCase = cases.Title(language.English)

// TargetsTable lists targets under title.
func TargetsTable(title string, targets []*model.Target) string {
	rows := make([][]string, 0, len(targets))
	for _, t := range targets {
		rows = append(rows, []string{
			t.ID,
			t.Name,
			titleCase.String(t.TargetType.String()),
			t.TargetDate.Format(dateLayout),
			t.Status,
			humanize.Ftoa(t.StartValue),
			humanize.Ftoa(t.TargetValue),
		})
	}

	return renderTable(title, []string{"id", "name", "type", "target date", "status", "start", "target"}, rows)
}

// RecordsTable lists progress records under title. Missing values and
// item names render as "-".
func RecordsTable(title string, records []*model.ProgressRecord) string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		value := "-"
		if r.Value != nil {
			value = humanize.Ftoa(*r.Value)
		}
		item := "-"
		if r.ItemName != nil {
			item = *r.ItemName
		}

		rows = append(rows, []string{
			r.ID,
			r.TargetID,
			r.EntryDate.Format(dateLayout),
			value,
			item,
			humanize.Time(r.CreatedAt),
		})
	}

	return renderTable(title, []string{"id", "target id", "entry date", "value", "item", "logged"}, rows)
}

func renderTable(title string, headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return tableHeaderStyle
			case row%2 == 1:
				return tableStripeStyle
			default:
				return tableCellStyle
			}
		})

	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), t.Render())
}
