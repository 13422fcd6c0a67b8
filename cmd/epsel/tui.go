package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/epsel/epsel"
)

var (
	dim       = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
)

// browseModel is a scrollable ranked-results table with a detail pane for
// the selected thruster.
type browseModel struct {
	table   table.Model
	results []epsel.Performance
	req     epsel.MissionRequirements
}

func newBrowseModel(results []epsel.Performance, req epsel.MissionRequirements) browseModel {
	columns := []table.Column{
		{Title: "RANK", Width: 4},
		{Title: "ID", Width: 10},
		{Title: "NAME", Width: 18},
		{Title: "TYPE", Width: 12},
		{Title: "SCORE", Width: 10},
		{Title: "TOTAL (kg)", Width: 10},
		{Title: "DAYS", Width: 8},
		{Title: "OK", Width: 2},
	}
	ranks := epsel.Ranks(results)
	rows := make([]table.Row, len(results))
	for i, r := range results {
		mark := "✓"
		if !r.Feasible {
			mark = "✗"
		}
		rows[i] = table.Row{
			strconv.Itoa(ranks[i]),
			r.Thruster.ID,
			r.Thruster.Name,
			r.Thruster.Type,
			fmtF(r.Score),
			fmt.Sprintf("%.2f", r.TotalMass),
			fmt.Sprintf("%.1f", r.DurationDays),
			mark,
		}
	}

	height := len(results)
	if height > 12 {
		height = 12
	}
	if height < 3 {
		height = 3
	}
	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	tbl.SetStyles(s)

	return browseModel{table: tbl, results: results, req: req}
}

func (m browseModel) Init() tea.Cmd { return nil }

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m browseModel) View() string {
	var b strings.Builder
	b.WriteString("\n  " + bold.Render("epsel") + "  " + dim.Render(m.req.String()) + "\n\n")
	b.WriteString(baseStyle.Render(m.table.View()) + "\n")
	b.WriteString(m.detail())
	b.WriteString(dim.Render("\n  ↑↓ select   q quit") + "\n")
	return b.String()
}

func (m browseModel) detail() string {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.results) {
		return ""
	}
	r := m.results[i]
	t := r.Thruster
	var b strings.Builder
	b.WriteString("\n  " + bold.Render(t.Name) + dim.Render(" · "+t.Manufacturer+" · TRL "+strconv.Itoa(t.TRL)+" · "+t.Propellant) + "\n")
	b.WriteString(fmt.Sprintf("  %g mN @ Isp %g s, %g W, %.2f kg hardware\n", t.Thrust, t.Isp, t.Power, t.Mass))
	b.WriteString(fmt.Sprintf("  propellant %s kg   total %s kg   fuel ratio %.1f%%\n",
		fmtF(r.PropellantMass), fmtF(r.TotalMass), r.FuelRatioPct))
	b.WriteString(fmt.Sprintf("  duration %s days   burns %s   score %s (mass %s, time %s)\n",
		fmtF(r.DurationDays), groupThousands(r.Burns), fmtF(r.Score), fmtF(r.MassScore), fmtF(r.TimeScore)))
	if !r.Feasible {
		b.WriteString(red.Render("  infeasible: "+strings.Join(r.Reasons, "; ")) + "\n")
	}
	return b.String()
}

func runTUI(results []epsel.Performance, req epsel.MissionRequirements) error {
	if len(results) == 0 {
		fmt.Println("No thrusters to show.")
		return nil
	}
	p := tea.NewProgram(newBrowseModel(results, req), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
