package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/bokibattle/internal/battle"
	"github.com/abhisek/bokibattle/internal/catalog"
	"github.com/abhisek/bokibattle/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// BackCapturer is implemented by screens that handle Esc themselves
// instead of letting the app pop them.
type BackCapturer interface {
	CapturesBack() bool
}

// StartBattleMsg asks the app to open a battle screen for a new run.
type StartBattleMsg struct {
	Difficulty battle.Difficulty
	Kinds      []catalog.Kind

	// Replace swaps the active screen instead of pushing on top of it.
	Replace bool
}

// ShowRankingMsg asks the app to open the ranking screen.
type ShowRankingMsg struct {
	Difficulty battle.Level
}
