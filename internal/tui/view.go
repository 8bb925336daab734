package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/card"
	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/domain"
)

// Footer texts for the saving indicator.
const (
	savingText = "Auto-saving..."
	savedText  = "Changes Saved Locally"
)

const minColumnWidth = 22

// View renders the header, the columns and the footer.
func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		"",
		m.renderColumns(),
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	r := m.report
	bottleneck := clearStyle.Render("clear")
	if !r.BottleneckClear {
		bottleneck = warnStyle.Render(string(r.Bottleneck))
	}
	parts := []string{
		titleStyle.Render("Outlet Onboarding"),
		metricStyle.Render("Live ") + valueStyle.Render(fmt.Sprintf("%d/%d", r.LiveCount, r.Total)),
		metricStyle.Render("Health ") + valueStyle.Render(fmt.Sprintf("%d%%", r.PipelineHealth)),
		metricStyle.Render("Unassigned ") + valueStyle.Render(fmt.Sprint(r.Unassigned)),
		metricStyle.Render("Bottleneck ") + bottleneck,
	}
	return strings.Join(parts, "   ")
}

func (m Model) columnWidth() int {
	if len(m.stages) == 0 {
		return minColumnWidth
	}
	return max(minColumnWidth, m.width/len(m.stages)-2)
}

func (m Model) renderColumns() string {
	width := m.columnWidth()
	targets := m.board.DropTargets(m.mode == modeDrag)

	cols := make([]string, len(m.stages))
	for i, st := range m.stages {
		outlets := m.column(i)
		head := lipgloss.NewStyle().Bold(true).Foreground(stageColor(st.Color)).
			Render(fmt.Sprintf("%s (%d)", st.ID, len(outlets)))
		if slices.Contains(targets, st.ID) {
			head += " " + helpStyle.Render("▾")
		}
		lines := []string{head}
		for r, o := range outlets {
			lines = append(lines, m.renderCard(o, i == m.col && r == m.row, width-2))
		}
		style := columnStyle
		if m.mode == modeDrag && i == m.target {
			style = targetColumn
		}
		cols[i] = style.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m Model) renderCard(o domain.Outlet, selected bool, width int) string {
	p := card.New(o, m.board)
	editing := card.FieldNone
	draft := ""
	if selected && m.card != nil {
		p = m.card
		editing, draft = p.Editing(), p.Draft()
	}

	name := o.Name
	if editing == card.FieldName {
		name = draft + "▏"
	}
	desc := p.DescriptionText()
	descStyle := metricStyle
	if o.Description == "" {
		descStyle = mutedStyle
	}
	if editing == card.FieldDescription {
		desc, descStyle = draft+"▏", metricStyle
	}
	city := string(o.City)
	if city == "" {
		city = "Unassigned"
	}
	date := p.DateValue()
	if editing == card.FieldDate {
		date = draft + "▏"
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		valueStyle.Render(name),
		descStyle.Render(desc),
		metricStyle.Render(fmt.Sprintf("%s · %s · %s", city, date, o.Priority)),
	)

	style := cardStyle
	switch {
	case m.mode == modeDrag && o.ID == m.drag.OutletID:
		style = draggedCard
	case selected:
		style = selectedCard
	}
	return style.Width(width).Render(body)
}

func (m Model) renderFooter() string {
	indicator := savedStyle.Render(savedText)
	if m.status.Saving {
		indicator = savingStyle.Render(savingText)
	}
	lines := []string{indicator}
	if m.status.LastError != "" {
		lines = append(lines, errorStyle.Render("Save failed: "+m.status.LastError))
	}
	if m.message != "" {
		style := metricStyle
		if m.isErr {
			style = errorStyle
		}
		lines = append(lines, style.Render(m.message))
	}
	lines = append(lines, helpStyle.Render(m.help()))
	return strings.Join(lines, "\n")
}

func (m Model) help() string {
	switch m.mode {
	case modeEdit:
		if m.card != nil && m.card.Editing() == card.FieldDescription {
			return "type to edit · enter newline · tab save · esc cancel"
		}
		return "type to edit · enter/tab save · esc cancel"
	case modeDrag:
		return "←/→ choose column · enter drop · esc cancel"
	case modeConfirmDelete:
		return "y delete · any other key cancel"
	}
	return "←↓↑→ move · n new · e name · d description · t date · c city · space pick up · x delete · s export · q quit"
}
