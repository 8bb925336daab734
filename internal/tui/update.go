package tui

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/card"
	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/export"
)

// Update handles key presses and status ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusTickMsg:
		m.status = m.board.SaveStatus()
		return m, tickStatus()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.mode {
		case modeEdit:
			return m.updateEdit(msg)
		case modeDrag:
			return m.updateDrag(msg)
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.message = ""
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "left", "h":
		m.col--
		m.clampCursor()
	case "right", "l":
		m.col++
		m.clampCursor()
	case "up", "k":
		m.row--
		m.clampCursor()
	case "down", "j":
		m.row++
		m.clampCursor()
	case "n":
		o, err := m.board.Create(m.ctx)
		if err != nil {
			m.fail(err)
			break
		}
		m.reload()
		m.focus(o.ID)
		m.info("Created " + o.Name)
	case "e":
		m.beginEdit(card.FieldName)
	case "d":
		m.beginEdit(card.FieldDescription)
	case "t":
		m.beginEdit(card.FieldDate)
	case "c":
		o, ok := m.selected()
		if !ok {
			break
		}
		p := card.New(o, m.board)
		if err := p.SelectCity(m.ctx, m.board.Cities().Next(o.City)); err != nil {
			m.fail(err)
			break
		}
		m.reload()
		m.focus(o.ID)
	case " ":
		o, ok := m.selected()
		if !ok {
			break
		}
		payload, err := card.New(o, m.board).StartDrag()
		if err != nil {
			m.fail(err)
			break
		}
		m.mode = modeDrag
		m.drag = payload
		m.target = m.col
		m.info("Moving " + o.Name + ": ←/→ choose a column, enter to drop, esc to cancel")
	case "x":
		o, ok := m.selected()
		if !ok {
			break
		}
		m.mode = modeConfirmDelete
		m.info(fmt.Sprintf("Delete %q? This cannot be undone. y to confirm", o.Name))
	case "s":
		m.exportCSV()
	}
	return m, nil
}

func (m *Model) beginEdit(f card.Field) {
	o, ok := m.selected()
	if !ok {
		return
	}
	m.card = card.New(o, m.board)
	if err := m.card.BeginEdit(m.ctx, f); err != nil {
		m.fail(err)
		m.card = nil
		return
	}
	m.mode = modeEdit
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.card
	switch msg.Type {
	case tea.KeyEsc:
		p.Cancel()
		return m.endEdit(nil), nil
	case tea.KeyTab:
		return m.endEdit(p.Blur(m.ctx)), nil
	case tea.KeyEnter:
		if p.Editing() == card.FieldDescription {
			p.SetDraft(p.Draft() + "\n")
			return m, nil
		}
		return m.endEdit(p.Confirm(m.ctx)), nil
	case tea.KeyBackspace:
		if d := []rune(p.Draft()); len(d) > 0 {
			p.SetDraft(string(d[:len(d)-1]))
		}
	case tea.KeySpace:
		p.SetDraft(p.Draft() + " ")
	case tea.KeyRunes:
		p.SetDraft(p.Draft() + string(msg.Runes))
	}
	return m, nil
}

// endEdit leaves edit mode, reporting err and refreshing the board.
func (m Model) endEdit(err error) Model {
	id := m.card.Outlet().ID
	m.mode = modeBrowse
	m.card = nil
	m.reload()
	m.focus(id)
	switch {
	case errors.Is(err, card.ErrInvalidDate):
		m.fail(fmt.Errorf("invalid date, use %s", card.DateLayout))
	case err != nil:
		m.fail(err)
	}
	return m
}

func (m Model) updateDrag(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		m.target = max(0, m.target-1)
	case "right", "l":
		m.target = min(len(m.stages)-1, m.target+1)
	case "esc":
		m.mode = modeBrowse
		m.message = ""
	case "enter":
		m.mode = modeBrowse
		m.message = ""
		if _, err := m.board.Move(m.ctx, m.drag.OutletID, m.stages[m.target].ID); err != nil {
			m.fail(err)
		}
		m.reload()
		m.focus(m.drag.OutletID)
	}
	return m, nil
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = modeBrowse
	o, ok := m.selected()
	if msg.String() != "y" || !ok {
		m.info("Delete cancelled")
		return m, nil
	}
	if err := m.board.Delete(m.ctx, o.ID, true); err != nil {
		m.fail(err)
		return m, nil
	}
	m.reload()
	m.info("Deleted " + o.Name)
	return m, nil
}

func (m *Model) exportCSV() {
	rows, err := m.board.Export(m.ctx)
	if err != nil {
		m.fail(err)
		return
	}
	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, rows); err != nil {
		m.fail(err)
		return
	}
	name := filepath.Join(m.exportDir, m.board.ExportFilename())
	if err := m.writeFile(name, buf.Bytes()); err != nil {
		m.fail(err)
		return
	}
	m.info(fmt.Sprintf("Exported %d outlets to %s", len(rows), name))
}
