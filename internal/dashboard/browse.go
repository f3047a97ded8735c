package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/contacts/internal/contact"
)

// cardHeight is the number of lines one contact card occupies, including
// the blank separator line.
const cardHeight = 3

// EmptyText is shown when the query matches no contacts.
const EmptyText = "No contacts found."

// LoadingText is shown while a load cycle is outstanding.
const LoadingText = "Loading contacts..."

// FallbackNote is appended to the status line when the seed list is shown.
const FallbackNote = "offline: showing built-in contacts"

// visibleWindow returns the [start, end) range of n cards that fits in
// capacity slots while keeping cursor in view.
func visibleWindow(n, cursor, capacity int) (start, end int) {
	if capacity < 1 {
		capacity = 1
	}
	if n <= capacity {
		return 0, n
	}
	start = cursor - capacity/2
	if start < 0 {
		start = 0
	}
	end = start + capacity
	if end > n {
		end = n
		start = end - capacity
	}
	return start, end
}

// renderCard renders one contact as a two-line card.
func renderCard(c contact.Contact, selected bool, st Styles, width int) string {
	avatar := st.Avatar.Render(contact.Initials(c.Name))
	first := avatar + " " + st.Heading.Render(c.Name)
	if c.Username != "" {
		first += " " + st.Muted.Render("@"+c.Username)
	}
	second := st.Muted.Render(c.Email)
	if c.Company.Name != "" {
		second += st.Muted.Render(" · ") + st.Text.Render(c.Company.Name)
	}

	style := st.Card
	if selected {
		style = st.SelectedCard
	}
	if width > 2 {
		style = style.MaxWidth(width)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, first, second))
}

// renderList renders the card list for the given height.
func renderList(visible []contact.Contact, cursor int, st Styles, width, height int) string {
	if len(visible) == 0 {
		return st.Muted.Render(EmptyText)
	}

	start, end := visibleWindow(len(visible), cursor, height/cardHeight)
	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cards = append(cards, renderCard(visible[i], i == cursor, st, width))
	}
	return strings.Join(cards, "\n\n")
}

// statusLine summarises the visible count and the load outcome.
func statusLine(shown, total int, fallback bool, notice string, st Styles) string {
	line := st.Muted.Render(fmt.Sprintf("%d of %d contacts", shown, total))
	if fallback {
		line += st.Muted.Render(" · ") + st.Warning.Render(FallbackNote)
	}
	if notice != "" {
		line += st.Muted.Render(" · ") + st.Warning.Render(notice)
	}
	return line
}
