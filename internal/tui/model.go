// Package tui is a terminal rendition of the onboarding board: one column
// per stage, cards that edit in place, keyboard drag-and-drop and the
// auto-save indicator.
package tui

import (
	"context"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/analytics"
	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/card"
	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/domain"
)

// statusInterval is how often the footer polls the saving indicator.
const statusInterval = 200 * time.Millisecond

// Board is the subset of service.BoardService the terminal board drives.
type Board interface {
	card.Updater
	List(ctx context.Context, f domain.ListFilter) ([]domain.Outlet, error)
	Create(ctx context.Context) (domain.Outlet, error)
	Move(ctx context.Context, id string, stage domain.Stage) (domain.Outlet, error)
	Delete(ctx context.Context, id string, confirmed bool) error
	Analytics(ctx context.Context) (analytics.Report, error)
	Export(ctx context.Context) ([]domain.ExportRow, error)
	ExportFilename() string
	SaveStatus() domain.SaveStatus
	Stages() domain.StageCatalog
	Cities() domain.CityCatalog
	DropTargets(dragging bool) []domain.Stage
}

type mode int

const (
	modeBrowse mode = iota
	modeEdit
	modeDrag
	modeConfirmDelete
)

type statusTickMsg time.Time

// Model is the bubbletea model for the board.
type Model struct {
	ctx    context.Context
	board  Board
	stages domain.StageCatalog

	outlets []domain.Outlet
	report  analytics.Report
	status  domain.SaveStatus

	mode mode
	col  int
	row  int

	// card is the presenter of the card being edited.
	card *card.Presenter
	// drag is the card picked up in modeDrag; target is the hovered column.
	drag   card.DragPayload
	target int

	message string
	isErr   bool

	width     int
	exportDir string
	writeFile func(name string, data []byte) error
}

// Option configures a Model.
type Option func(*Model)

// WithExportDir sets where the s key writes CSV exports. Defaults to the
// working directory.
func WithExportDir(dir string) Option {
	return func(m *Model) { m.exportDir = dir }
}

// WithContext sets the context used for board operations.
func WithContext(ctx context.Context) Option {
	return func(m *Model) { m.ctx = ctx }
}

// New returns a Model showing the current board.
func New(b Board, opts ...Option) Model {
	m := Model{
		ctx:       context.Background(),
		board:     b,
		stages:    b.Stages(),
		width:     160,
		exportDir: ".",
		writeFile: func(name string, data []byte) error { return os.WriteFile(name, data, 0o644) },
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.reload()
	return m
}

// Init starts polling the saving indicator.
func (m Model) Init() tea.Cmd {
	return tickStatus()
}

func tickStatus() tea.Cmd {
	return tea.Tick(statusInterval, func(t time.Time) tea.Msg { return statusTickMsg(t) })
}

// reload refreshes the outlets, analytics and status from the board and
// keeps the cursor in range.
func (m *Model) reload() {
	outlets, err := m.board.List(m.ctx, domain.ListFilter{})
	if err != nil {
		m.fail(err)
		return
	}
	m.outlets = outlets
	if r, err := m.board.Analytics(m.ctx); err == nil {
		m.report = r
	}
	m.status = m.board.SaveStatus()
	m.clampCursor()
}

// column returns the outlets in stage order i, in board order.
func (m Model) column(i int) []domain.Outlet {
	if i < 0 || i >= len(m.stages) {
		return nil
	}
	var out []domain.Outlet
	for _, o := range m.outlets {
		if o.Stage == m.stages[i].ID {
			out = append(out, o)
		}
	}
	return out
}

// selected returns the outlet under the cursor.
func (m Model) selected() (domain.Outlet, bool) {
	col := m.column(m.col)
	if m.row < 0 || m.row >= len(col) {
		return domain.Outlet{}, false
	}
	return col[m.row], true
}

func (m *Model) clampCursor() {
	m.col = max(0, min(m.col, len(m.stages)-1))
	n := len(m.column(m.col))
	m.row = max(0, min(m.row, n-1))
}

// focus moves the cursor onto the outlet with id, if it is on the board.
func (m *Model) focus(id string) {
	for c := range m.stages {
		for r, o := range m.column(c) {
			if o.ID == id {
				m.col, m.row = c, r
				return
			}
		}
	}
}

func (m *Model) info(msg string) {
	m.message, m.isErr = msg, false
}

func (m *Model) fail(err error) {
	m.message, m.isErr = err.Error(), true
}
