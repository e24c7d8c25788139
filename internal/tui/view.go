package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/roach88/sortscope/internal/algo"
	"github.com/roach88/sortscope/internal/playback"
	"github.com/roach88/sortscope/internal/step"
)

const (
	chartHeight = 12
	barWidth    = 3
	barGap      = 1
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#2c3e50")).
			Padding(0, 2)

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ecf0f1")).
			MarginTop(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95a5a6")).
			MarginTop(1)

	infoStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7f8c8d")).
			Padding(0, 1).
			MarginTop(1)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bdc3c7"))

	// Role colors mirror the canonical visualizer palette.
	roleStyles = map[step.Role]lipgloss.Style{
		step.RoleDefault:   lipgloss.NewStyle().Foreground(lipgloss.Color("#3498db")),
		step.RoleComparing: lipgloss.NewStyle().Foreground(lipgloss.Color("#f39c12")),
		step.RolePivot:     lipgloss.NewStyle().Foreground(lipgloss.Color("#e74c3c")),
		step.RoleSorted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#2ecc71")),
		step.RoleCurrent:   lipgloss.NewStyle().Foreground(lipgloss.Color("#9b59b6")),
		step.RoleLeft:      lipgloss.NewStyle().Foreground(lipgloss.Color("#27ae60")),
		step.RoleRight:     lipgloss.NewStyle().Foreground(lipgloss.Color("#8e44ad")),
		step.RoleMinimum:   lipgloss.NewStyle().Foreground(lipgloss.Color("#e67e22")),
		step.RoleMerged:    lipgloss.NewStyle().Foreground(lipgloss.Color("#2ecc71")),
	}
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	md := m.ctrl.Engine().Metadata()
	var b strings.Builder

	b.WriteString(titleStyle.Render("Sortscope - " + md.Name))
	b.WriteString("\n")

	st, cursor, ok := m.ctrl.Current()
	values := m.ctrl.Array()
	roles := make([]step.Role, len(values))
	description := "Press space to start"
	if ok {
		values = st.Snapshot
		roles = st.Roles()
		description = st.Description
	}

	b.WriteString(renderChart(values, roles))
	b.WriteString("\n")
	b.WriteString(descStyle.Render(description))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.statusLine(cursor, ok)))
	b.WriteString("\n")

	if m.showInfo {
		b.WriteString(infoStyle.Render(renderInfo(md)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) statusLine(cursor int, started bool) string {
	total := m.ctrl.Len()
	position := "step -/-"
	if started && total > 0 {
		position = fmt.Sprintf("step %d/%d", cursor+1, total)
	}
	return fmt.Sprintf("%s | %s | speed: %s",
		stateLabel(m.ctrl.State()), position, m.ctrl.Speed())
}

func stateLabel(s playback.State) string {
	switch s {
	case playback.StatePlaying:
		return "▶ playing"
	case playback.StatePaused:
		return "⏸ paused"
	case playback.StateFinished:
		return "✓ finished"
	default:
		return "● idle"
	}
}

// renderChart draws one vertical bar per value, scaled to chartHeight
// rows and colored by the position's role.
func renderChart(values []int, roles []step.Role) string {
	if len(values) == 0 {
		return ""
	}
	max := values[0]
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	if max < 1 {
		max = 1
	}

	columns := make([]string, len(values))
	for i, v := range values {
		height := v * chartHeight / max
		if height < 1 {
			height = 1
		}
		style := roleStyles[roles[i]]

		var col strings.Builder
		for row := chartHeight; row >= 1; row-- {
			if row <= height {
				col.WriteString(style.Render(strings.Repeat("█", barWidth)))
			} else {
				col.WriteString(strings.Repeat(" ", barWidth))
			}
			col.WriteString("\n")
		}
		col.WriteString(valueStyle.Render(fmt.Sprintf("%*d", barWidth, v)))
		columns[i] = col.String()
	}

	gap := strings.Repeat(" ", barGap)
	joined := make([]string, 0, len(columns)*2-1)
	for i, col := range columns {
		if i > 0 {
			joined = append(joined, gap)
		}
		joined = append(joined, col)
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, joined...)
}

func renderInfo(md algo.Metadata) string {
	return fmt.Sprintf("%s\nTime: %s  Space: %s\nBest: %s  Worst: %s\nStable: %v",
		md.Description, md.TimeComplexity, md.SpaceComplexity,
		md.BestCase, md.WorstCase, md.Stable)
}
