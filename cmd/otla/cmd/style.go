package cmd

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	colorCyan  = lipgloss.Color("36")  // headings
	colorAmber = lipgloss.Color("220") // trigger
	colorGray  = lipgloss.Color("245") // table headers
	colorDim   = lipgloss.Color("240") // borders, secondary text
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleTrigger = lipgloss.NewStyle().Foreground(colorAmber)
	styleHeader  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// newTable returns a bordered table; highlight marks body rows drawn in the
// trigger colour and may be nil.
func newTable(headers []string, rows [][]string, highlight func(row int) bool) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleDim).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			if highlight != nil && highlight(row) {
				return base.Inherit(styleTrigger)
			}
			return base
		})
}
