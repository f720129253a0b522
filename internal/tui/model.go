package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/explorer/internal/ui/style"
)

const (
	listWidthRatio = 0.45
	paneChrome     = 4
	headerLines    = 2
	footerLines    = 2
)

// Status is the state of a node as shown in the inspector.
type Status string

const (
	// StatusAbsent means the node has no value yet, or does not apply to the view.
	StatusAbsent Status = "absent"
	// StatusResolved means the node has a value.
	StatusResolved Status = "resolved"
	// StatusFailed means the node holds an error.
	StatusFailed Status = "failed"
)

// Row is one node of the inspected graph.
type Row struct {
	Label      string
	Status     Status
	Summary    string
	Detail     string
	Recomputes int
	Changes    int
}

// Model is the Bubble Tea model of the inspector.
type Model struct {
	ctx      context.Context
	source   Source
	rows     []Row
	cursor   int
	loading  bool
	lastErr  error
	width    int
	height   int
	spinner  spinner.Model
	viewport viewport.Model
}

// NewModel creates an inspector reading from src. Commands it starts use ctx.
func NewModel(ctx context.Context, src Source) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(style.Yellow)

	m := &Model{
		ctx:      ctx,
		source:   src,
		spinner:  s,
		viewport: viewport.New(0, 0),
	}
	m.reload()
	return m
}

// Init starts the spinner.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case MsgChanged:
		m.reload()
	case MsgSettled:
		m.settle(msg.Err)
	case MsgRefreshed:
		m.settle(msg.Err)
	case MsgPageLoaded:
		m.settle(msg.Err)
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.syncDetail()
		}
	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
			m.syncDetail()
		}
	case "r":
		m.loading = true
		return m, refresh(m.ctx, m.source)
	case "n":
		m.loading = true
		return m, nextPage(m.ctx, m.source)
	}
	return m, nil
}

func (m *Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	listWidth := int(float64(msg.Width) * listWidthRatio)
	m.viewport.Width = max(msg.Width-listWidth-paneChrome, 0)
	m.viewport.Height = max(msg.Height-headerLines-footerLines, 0)
	m.syncDetail()
	return m, nil
}

// settle reloads the rows after a fetch, refresh or page load finished.
// A nil err keeps the last failure on screen until the next one.
func (m *Model) settle(err error) {
	if err != nil {
		m.lastErr = err
	}
	m.reload()
}

func (m *Model) reload() {
	m.rows = m.source.Rows()
	m.loading = m.source.Loading()
	if m.cursor >= len(m.rows) {
		m.cursor = max(len(m.rows)-1, 0)
	}
	m.syncDetail()
}

func (m *Model) syncDetail() {
	if len(m.rows) == 0 {
		m.viewport.SetContent("")
		return
	}
	m.viewport.SetContent(m.rows[m.cursor].Detail)
	m.viewport.GotoTop()
}

// Rows returns the rows currently displayed.
func (m *Model) Rows() []Row {
	return m.rows
}

// Selected returns the row under the cursor.
func (m *Model) Selected() (Row, bool) {
	if len(m.rows) == 0 {
		return Row{}, false
	}
	return m.rows[m.cursor], true
}
