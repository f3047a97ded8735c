// Package dashboard implements the interactive contact directory TUI:
// a searchable card list with a detail overlay and a theme toggle.
package dashboard

import (
	"context"

	"github.com/smileynet/contacts/internal/source"
)

// Mode represents the current dashboard view mode.
type Mode int

const (
	ModeBrowse Mode = iota // Card list with search box.
	ModeDetail             // Detail overlay for the selected contact.
)

// --- Consumer-side interfaces ---

// Resolver produces the contact collection for one load cycle.
// It must always settle; failures are reported through Result.Fallback.
type Resolver interface {
	Resolve(ctx context.Context) source.Result
}

// ThemeSaver persists the theme flag after every toggle.
type ThemeSaver func(dark bool) error

// --- tea.Msg types ---

// ContactsLoadedMsg carries the settled result of a load cycle.
type ContactsLoadedMsg struct {
	Result source.Result
}

// ThemeSavedMsg reports the outcome of persisting the theme. Theme names
// the value that was written; a result whose Theme no longer matches the
// flag is stale and triggers a save of the current value.
type ThemeSavedMsg struct {
	Theme string
	Err   error
}
