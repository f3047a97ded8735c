package dashboard

import (
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/contacts/internal/contact"
	"github.com/smileynet/contacts/internal/source"
)

// stubResolver implements Resolver for tests.
type stubResolver struct {
	result source.Result
	calls  int
}

func (s *stubResolver) Resolve(context.Context) source.Result {
	s.calls++
	return s.result
}

// sampleContacts returns the seed list followed by three remote contacts.
func sampleContacts() []contact.Contact {
	return append(contact.Seed(),
		contact.Contact{ID: 1, Name: "Leanne Graham", Username: "Bret", Email: "Sincere@april.biz",
			Phone: "1-770-736-8031", Website: "hildegard.org",
			Company: contact.Company{Name: "Romaguera-Crona", CatchPhrase: "Multi-layered client-server neural-net"},
			Address: contact.Address{City: "Gwenborough", Zipcode: "92998-3874"}},
		contact.Contact{ID: 2, Name: "Ervin Howell", Username: "Antonette", Email: "Shanna@melissa.tv",
			Company: contact.Company{Name: "Deckow-Crist"}},
		contact.Contact{ID: 3, Name: "Clementine Bauch", Username: "Samantha", Email: "Nathan@yesenia.net",
			Company: contact.Company{Name: "Romaguera-Jacobson"}},
	)
}

// loadedModel returns a sized model that has settled on contacts.
func loadedModel(t *testing.T, contacts []contact.Contact, fallback bool) Model {
	t.Helper()
	m := newSizedModel(100, 40)
	updated, _ := m.Update(ContactsLoadedMsg{Result: source.Result{Contacts: contacts, Fallback: fallback}})
	return updated.(Model)
}

// press sends a key message and returns the updated model and command.
func press(m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

// typeText sends runes to the model one key at a time.
func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

// stripANSI removes ANSI escape sequences from a string.
func stripANSI(s string) string {
	var out []byte
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && (s[j] < 'A' || s[j] > 'Z') && (s[j] < 'a' || s[j] > 'z') {
				j++
			}
			if j < len(s) {
				j++
			}
			i = j
		} else {
			out = append(out, s[i])
			i++
		}
	}
	return string(out)
}

// containsPlainText checks if s contains sub after stripping ANSI escapes.
func containsPlainText(s, sub string) bool {
	return strings.Contains(stripANSI(s), sub)
}

// execBatch executes a tea.Cmd, handling both single commands and batch
// commands. It returns all resulting messages. Spinner ticks are skipped
// to avoid infinite recursion.
func execBatch(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			if c != nil {
				result := c()
				// Skip spinner ticks to avoid recursion.
				if _, isTick := result.(spinner.TickMsg); !isTick {
					msgs = append(msgs, result)
				}
			}
		}
		return msgs
	}
	return []tea.Msg{msg}
}
