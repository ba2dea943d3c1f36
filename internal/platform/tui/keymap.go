package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/config"
)

// KeyMap defines the key bindings for the game screen. Game bindings carry
// the configured key as their first key; that literal name is what the
// simulation sees in its key snapshot.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Thrust  key.Binding
	Fire    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// NewKeyMap builds bindings from the configured controls. Arrow keys and
// space are accepted as alternates.
func NewKeyMap(c config.ControlsConfig) KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys(c.Left, config.KeyAltLeft),
			key.WithHelp(c.Left+"/←", "turn left"),
		),
		Right: key.NewBinding(
			key.WithKeys(c.Right, config.KeyAltRight),
			key.WithHelp(c.Right+"/→", "turn right"),
		),
		Thrust: key.NewBinding(
			key.WithKeys(c.Thrust, config.KeyAltThrust),
			key.WithHelp(c.Thrust+"/↑", "thrust"),
		),
		Fire: key.NewBinding(
			key.WithKeys(c.Fire, config.KeyAltFire),
			key.WithHelp(c.Fire+"/space", "fire"),
		),
		Restart: key.NewBinding(
			key.WithKeys(config.KeyRestart),
			key.WithHelp(config.KeyRestart, "restart"),
			key.WithDisabled(),
		),
		Quit: key.NewBinding(
			key.WithKeys(config.KeyQuit, config.KeyForceQuit),
			key.WithHelp(config.KeyQuit, "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Thrust, k.Fire, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Thrust, k.Fire},
		{k.Restart, k.Quit},
	}
}

// SetGameOver flips bindings between playing and game-over mode.
func (k *KeyMap) SetGameOver(over bool) {
	for _, b := range []*key.Binding{&k.Left, &k.Right, &k.Thrust, &k.Fire} {
		b.SetEnabled(!over)
	}
	k.Restart.SetEnabled(over)
}

// GameKey translates a key message to the simulation's key name.
// Returns false for keys that do not control the ship.
func (k KeyMap) GameKey(msg tea.KeyMsg) (string, bool) {
	for _, b := range []key.Binding{k.Left, k.Right, k.Thrust, k.Fire} {
		if key.Matches(msg, b) {
			return b.Keys()[0], true
		}
	}
	return "", false
}
