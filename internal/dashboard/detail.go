package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/contacts/internal/contact"
)

// detailHeader renders the overlay title bar: initials, name, and username.
func detailHeader(c contact.Contact, st Styles) string {
	title := contact.Initials(c.Name) + "  " + c.Name
	if c.Username != "" {
		title += "  @" + c.Username
	}
	return st.ModalHeader.Render(title)
}

// detailBody renders the scrollable sections of the overlay.
func detailBody(c contact.Contact, st Styles) string {
	var b strings.Builder

	b.WriteString(st.Section.Render("Contact Info"))
	b.WriteByte('\n')
	writeField(&b, st, "Email", c.Email)
	writeField(&b, st, "Phone", c.Phone)
	writeField(&b, st, "Website", c.Website)

	b.WriteString(st.Section.Render("Company"))
	b.WriteByte('\n')
	b.WriteString(st.Heading.Render(c.Company.Name))
	b.WriteByte('\n')
	if c.Company.CatchPhrase != "" {
		b.WriteString(st.Muted.Italic(true).Render("“" + c.Company.CatchPhrase + "”"))
		b.WriteByte('\n')
	}

	b.WriteString(st.Section.Render("Address"))
	b.WriteByte('\n')
	b.WriteString(st.Text.Render(c.Address.City + ", " + c.Address.Zipcode))

	return b.String()
}

func writeField(b *strings.Builder, st Styles, label, value string) {
	b.WriteString(st.Muted.Render(label+":") + " " + st.Text.Render(value))
	b.WriteByte('\n')
}

// detailWidth returns the overlay's inner width for a terminal width.
func detailWidth(total int) int {
	w := total - 8
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderModal wraps header and scrolled body in the overlay frame and
// centres it in the available area.
func renderModal(header, body string, st Styles, width, height int) string {
	box := st.Modal.Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
