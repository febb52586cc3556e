package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kversteeg/pager/internal/config"
	"github.com/kversteeg/pager/internal/document"
	"github.com/kversteeg/pager/internal/session"
	"github.com/rs/zerolog"
)

// ErrTerminal reports that the terminal could not be initialized or
// failed while the program ran.
var ErrTerminal = errors.New("terminal failure")

// ErrViewportTooSmall reports a terminal whose content area is below
// the configured minimum. The terminal is restored before main sees it.
type ErrViewportTooSmall struct {
	Rows, Cols       int
	MinRows, MinCols int
}

func (e *ErrViewportTooSmall) Error() string {
	return fmt.Sprintf("viewport too small: %dx%d content area, need at least %dx%d",
		e.Rows, e.Cols, e.MinRows, e.MinCols)
}

// model

type model struct {
	doc  *document.Document
	sess *session.Session
	cfg  *config.Config
	log  zerolog.Logger

	width    int
	height   int
	lines    []string
	ready    bool
	quitting bool
	err      error
}

func newModel(doc *document.Document, sess *session.Session, cfg *config.Config, log zerolog.Logger) model {
	return model{
		doc:  doc,
		sess: sess,
		cfg:  cfg,
		log:  log,
	}
}

// Run starts the pager TUI and blocks until the user quits or a fatal
// condition occurs. Bubbletea restores the terminal on every exit path
// before Run returns, including the error ones.
func Run(doc *document.Document, sess *session.Session, cfg *config.Config, log zerolog.Logger) error {
	m := newModel(doc, sess, cfg, log)
	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return terminalError(err)
	}

	fm := finalModel.(model)
	return fm.err
}

// terminalError tags a bubbletea runtime failure so callers can branch
// on ErrTerminal.
func terminalError(err error) error {
	return fmt.Errorf("%w: %v", ErrTerminal, err)
}

// Init waits for the first WindowSizeMsg before doing anything.
func (m model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			if rows, cols := m.contentRows(), m.contentCols(); rows < m.cfg.MinRows || cols < m.cfg.MinCols {
				m.err = &ErrViewportTooSmall{
					Rows: rows, Cols: cols,
					MinRows: m.cfg.MinRows, MinCols: m.cfg.MinCols,
				}
				m.quitting = true
				return m, tea.Quit
			}
			m.ready = true
			return m.loadPage()
		}
		// Later resizes keep the current page; the next page wraps
		// to the new dimensions.
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			m.log.Debug().Str("key", msg.String()).Msg("quit")
			m.quitting = true
			return m, tea.Quit
		}
		// Any other key advances; at end of file it is a no-op.
		if m.ready && !m.sess.Done() {
			return m.loadPage()
		}
		return m, nil
	}

	return m, nil
}

// loadPage reads the next page synchronously. Page reads stay inside
// Update so rapid keypresses cannot touch the Document concurrently.
func (m model) loadPage() (tea.Model, tea.Cmd) {
	page, err := m.doc.NextPage(m.contentRows(), m.contentCols())
	if err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	m.lines = page.Lines
	pct := m.sess.Advance(page.Bytes)
	if page.EOF {
		m.sess.MarkDone()
	}
	m.log.Debug().
		Int("lines", len(page.Lines)).
		Int64("bytes", page.Bytes).
		Int("percent", pct).
		Bool("eof", page.EOF).
		Msg("page rendered")
	return m, nil
}

// View renders the current page with the status bar on the last row.
func (m model) View() string {
	if m.quitting || !m.ready {
		return ""
	}

	top := m.cfg.Padding / 2
	left := strings.Repeat(" ", m.cfg.Padding/2)

	var b strings.Builder
	for i := 0; i < top; i++ {
		b.WriteString("\n")
	}
	for i := 0; i < m.contentRows(); i++ {
		if i < len(m.lines) {
			b.WriteString(left)
			b.WriteString(m.lines[i])
		}
		b.WriteString("\n")
	}

	// bottom padding keeps the status bar on the terminal's last row
	for i := 0; i < m.cfg.Padding-top; i++ {
		b.WriteString("\n")
	}

	return b.String() + m.statusBar()
}

// statusBar renders the --MORE-- progress marker and the exit hint.
func (m model) statusBar() string {
	status := styleStatus.Render(fmt.Sprintf("--MORE-- %d%%", m.sess.Percent()))
	hint := styleHint.Render("Exit: 'q'")

	gap := m.width - lipgloss.Width(status) - lipgloss.Width(hint)
	if gap < 1 {
		return status
	}
	return status + strings.Repeat(" ", gap) + hint
}

// helper methods

func (m model) contentRows() int {
	// One row stays reserved for the status bar.
	return m.height - m.cfg.Padding - 1
}

func (m model) contentCols() int {
	return m.width - m.cfg.Padding
}
