// Package tui decides how contacts reach the terminal and renders the
// plain-text listing used when no interactive terminal is attached.
package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/smileynet/contacts/internal/contact"
)

// FallbackNote is written to the notes stream when the listing comes from
// the built-in seed list.
const FallbackNote = "note: remote source unavailable, showing built-in contacts"

// IsTTY reports whether w is connected to a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// PlainDisplay renders contacts as one text line each.
type PlainDisplay struct {
	w     io.Writer
	notes io.Writer
}

// NewPlainDisplay returns a PlainDisplay writing contacts to w and
// informational notes to notes. Nil writers default to stdout and stderr.
func NewPlainDisplay(w, notes io.Writer) *PlainDisplay {
	if w == nil {
		w = os.Stdout
	}
	if notes == nil {
		notes = os.Stderr
	}
	return &PlainDisplay{w: w, notes: notes}
}

// Render writes contacts in order and, when fallback is set, a trailing
// note. The fallback is informational; it is not an error.
func (d *PlainDisplay) Render(contacts []contact.Contact, fallback bool) error {
	for _, c := range contacts {
		if _, err := fmt.Fprintln(d.w, FormatLine(c)); err != nil {
			return fmt.Errorf("tui: writing contact %d: %w", c.ID, err)
		}
	}
	if fallback {
		_, _ = fmt.Fprintln(d.notes, FallbackNote)
	}
	return nil
}

// FormatLine renders c as "#id name <email> company", omitting empty parts.
func FormatLine(c contact.Contact) string {
	parts := []string{fmt.Sprintf("#%d", c.ID), c.Name}
	if c.Email != "" {
		parts = append(parts, "<"+c.Email+">")
	}
	if c.Company.Name != "" {
		parts = append(parts, c.Company.Name)
	}
	return strings.Join(parts, " ")
}
