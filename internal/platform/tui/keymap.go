package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMap holds the key bindings of every game action.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Pause   key.Binding
	Quit    key.Binding
	Start   key.Binding
	Restart key.Binding
	Help    key.Binding
}

// NewKeyMap builds bindings from the configured key lists.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	return KeyMap{
		Up:      newBinding(cfg.Up, "up"),
		Down:    newBinding(cfg.Down, "down"),
		Left:    newBinding(cfg.Left, "left"),
		Right:   newBinding(cfg.Right, "right"),
		Pause:   newBinding(cfg.Pause, "pause"),
		Quit:    newBinding(cfg.Quit, "quit"),
		Start:   newBinding(cfg.Start, "start"),
		Restart: newBinding(cfg.Restart, "restart"),
		Help:    newBinding(cfg.Help, "more keys"),
	}
}

func newBinding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpLabel(keys), desc),
	)
}

// helpLabel joins key names for display, spelling out the space bar.
func helpLabel(keys []string) string {
	labels := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		labels[i] = k
	}
	return strings.Join(labels, "/")
}

// Event translates a key press into a game event.
// Unbound keys return core.EventNone.
func (k KeyMap) Event(msg tea.KeyMsg) core.Event {
	switch {
	case key.Matches(msg, k.Quit):
		return core.EventQuit
	case key.Matches(msg, k.Up):
		return core.EventMoveUp
	case key.Matches(msg, k.Down):
		return core.EventMoveDown
	case key.Matches(msg, k.Left):
		return core.EventMoveLeft
	case key.Matches(msg, k.Right):
		return core.EventMoveRight
	case key.Matches(msg, k.Pause):
		return core.EventTogglePause
	case key.Matches(msg, k.Start):
		return core.EventStartConfirm
	case key.Matches(msg, k.Restart):
		return core.EventRestart
	}
	return core.EventNone
}

// PrimaryKey returns the first key bound to b, upper-cased for messages
// like "Press P to Resume".
func PrimaryKey(b key.Binding) string {
	keys := b.Keys()
	if len(keys) == 0 {
		return "?"
	}
	return strings.ToUpper(helpLabel(keys[:1]))
}

// ShortHelp returns the in-game bindings.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Pause, k.Quit, k.Help}
}

// FullHelp returns every binding in columns of fullHelpRows.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left},
		{k.Right, k.Pause, k.Quit},
		{k.Start, k.Restart, k.Help},
	}
}

// fullHelpRows is the height of the full help view.
const fullHelpRows = 3

// StartHelp returns the bindings shown on the start screen.
func (k KeyMap) StartHelp() []key.Binding {
	return []key.Binding{k.Start, k.Quit, k.Help}
}

// GameOverHelp returns the bindings shown on the game-over screen.
func (k KeyMap) GameOverHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Quit, k.Help}
}
