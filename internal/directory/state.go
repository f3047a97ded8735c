// Package directory holds the single state record behind the contact
// directory: the loaded collection, the loading flag, the selected contact,
// the search query, and the theme flag.
//
// State is a value. Every transition returns a new State and leaves the
// receiver untouched, so one owner (the UI update loop) can hold it
// without locks.
package directory

import (
	"github.com/smileynet/contacts/internal/contact"
	"github.com/smileynet/contacts/internal/prefs"
	"github.com/smileynet/contacts/internal/source"
)

// State is the directory's complete mutable state.
type State struct {
	Contacts []contact.Contact
	Loading  bool
	Fallback bool
	Selected *contact.Contact
	Query    string
	Dark     bool
}

// New returns the initial state: loading, empty, with the given theme.
func New(dark bool) State {
	return State{Loading: true, Dark: dark}
}

// StartLoad begins a load cycle. The selection is cleared because it may
// not survive the replacement collection.
func (s State) StartLoad() State {
	s.Loading = true
	s.Selected = nil
	return s
}

// LoadSucceeded settles a load cycle with the merged collection.
func (s State) LoadSucceeded(contacts []contact.Contact) State {
	s.Loading = false
	s.Fallback = false
	s.Contacts = contacts
	return s
}

// LoadFailed settles a load cycle with the fallback seed list.
func (s State) LoadFailed(seed []contact.Contact) State {
	s.Loading = false
	s.Fallback = true
	s.Contacts = seed
	return s
}

// Apply settles a load cycle from a resolver result.
func (s State) Apply(r source.Result) State {
	if r.Fallback {
		return s.LoadFailed(r.Contacts)
	}
	return s.LoadSucceeded(r.Contacts)
}

// Select opens the detail view for c.
func (s State) Select(c contact.Contact) State {
	s.Selected = &c
	return s
}

// Deselect dismisses the detail view.
func (s State) Deselect() State {
	s.Selected = nil
	return s
}

// ToggleTheme flips between dark and light.
func (s State) ToggleTheme() State {
	s.Dark = !s.Dark
	return s
}

// SetQuery replaces the search query.
func (s State) SetQuery(q string) State {
	s.Query = q
	return s
}

// Visible returns the contacts matching the current query, or nil while
// a load cycle is outstanding.
func (s State) Visible() []contact.Contact {
	if s.Loading {
		return nil
	}
	return contact.Filter(s.Contacts, s.Query)
}

// Theme returns the stored name of the current theme.
func (s State) Theme() string {
	return prefs.ThemeName(s.Dark)
}
