package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/flow"
)

// Options configures the terminal front end.
type Options struct {
	Width  int // Initial terminal width
	Height int // Initial terminal height
	Logger *log.Logger
}

// Model is the Bubble Tea model running the screen flow.
type Model struct {
	ctrl     *flow.Controller
	screen   *core.Screen
	layout   Layout
	renderer *Renderer
	keys     KeyMap
	help     help.Model
	queue    core.EventQueue
	logger   *log.Logger
	width    int
	height   int
	showGrid bool
	hovered  bool // Pointer over the start button
	quitting bool
}

// maxQueuedEvents caps the events held between two ticks. Key repeat at a
// slow tick rate would otherwise pile up turns. Quit is always accepted.
const maxQueuedEvents = 8

// NewModel creates a new Bubble Tea model driving ctrl.
func NewModel(ctrl *flow.Controller, cfg config.Config, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// The last row is reserved for the help line.
	h := help.New()
	h.Width = opts.Width

	return Model{
		ctrl:     ctrl,
		screen:   core.NewScreen(opts.Width, opts.Height-1),
		layout:   NewLayout(opts.Width, opts.Height-1),
		renderer: NewRenderer(cfg.Theme),
		keys:     NewKeyMap(cfg.Keys),
		help:     h,
		logger:   logger,
		width:    opts.Width,
		height:   opts.Height,
		showGrid: cfg.Display.ShowGrid,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.ctrl.TickRate())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the event bound to the key. Quit is applied at once
// instead of waiting for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.relayout()
		return m, nil
	}

	ev := m.keys.Event(msg)
	if ev == core.EventNone {
		return m, nil
	}
	if ev != core.EventQuit && m.queue.Len() >= maxQueuedEvents {
		return m, nil
	}
	m.queue.Push(ev)

	if ev == core.EventQuit {
		return m.apply()
	}
	return m, nil
}

// handleMouse tracks hovering over the start button and turns a left click
// on it into a start event.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.ctrl.Screen() != flow.ScreenStart {
		m.hovered = false
		return m, nil
	}

	m.hovered = m.layout.StartButton.Contains(msg.X, msg.Y)
	if m.hovered && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.queue.Push(core.EventStartConfirm)
	}
	return m, nil
}

// handleResize processes window resize events. The session keeps its state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	wasTooSmall := m.layout.TooSmall()

	m.width, m.height = msg.Width, msg.Height
	m.relayout()

	if tooSmall := m.layout.TooSmall(); tooSmall != wasTooSmall {
		m.logger.Debug("window resized", "width", msg.Width, "height", msg.Height, "too_small", tooSmall)
	}
	return m, nil
}

// fullHelp reports whether the full help is shown. It is only shown when
// the board still fits above it.
func (m Model) fullHelp() bool {
	return m.help.ShowAll && m.height-fullHelpRows >= minHeight
}

// relayout fits the screen above the help view.
func (m *Model) relayout() {
	rows := 1
	if m.fullHelp() {
		rows = fullHelpRows
	}
	m.screen.Resize(m.width, m.height-rows)
	m.layout = NewLayout(m.width, m.height-rows)
	m.help.Width = m.width
}

// handleTick hands the queued events to the controller and schedules the
// next tick at the rate of the active screen.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	model, cmd := m.apply()
	if cmd != nil {
		return model, cmd
	}
	return model, tickCmd(m.ctrl.TickRate())
}

// apply drains the queue into the controller. While the board does not fit
// the game is held still and only quit is honored.
func (m Model) apply() (Model, tea.Cmd) {
	if m.layout.TooSmall() {
		quit := m.queue.Contains(core.EventQuit)
		m.queue.Drain()
		if quit {
			return m.quit()
		}
		return m, nil
	}

	if res := m.ctrl.Update(m.queue.Drain()); res.Quit {
		return m.quit()
	}
	return m, nil
}

func (m Model) quit() (Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// View renders the active screen followed by the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return m.renderer.Render(m.screen) + "\n" + m.helpView()
}

// draw fills the screen buffer for the active screen.
func (m Model) draw() {
	m.screen.Clear()

	if m.layout.TooSmall() {
		drawTooSmall(m.screen)
		return
	}

	switch m.ctrl.Screen() {
	case flow.ScreenStart:
		drawStart(m.screen, m.layout, m.keys, m.hovered)
	case flow.ScreenPlaying:
		drawSession(m.screen, m.layout, m.ctrl.Snapshot(), m.keys, m.showGrid)
	case flow.ScreenGameOver:
		drawGameOver(m.screen, m.layout, m.ctrl.FinalScore(), m.keys)
	}
}

func (m Model) helpView() string {
	if m.fullHelp() {
		return m.help.FullHelpView(m.keys.FullHelp())
	}

	var bindings []key.Binding
	switch m.ctrl.Screen() {
	case flow.ScreenStart:
		bindings = m.keys.StartHelp()
	case flow.ScreenGameOver:
		bindings = m.keys.GameOverHelp()
	default:
		bindings = m.keys.ShortHelp()
	}
	return m.help.ShortHelpView(bindings)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(ctrl *flow.Controller, cfg config.Config, opts Options) error {
	model := NewModel(ctrl, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover and click on the start button
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
