package dashboard

import (
	"strings"
	"testing"

	"github.com/smileynet/contacts/internal/contact"
)

func TestPaletteFor(t *testing.T) {
	// Given: the two themes
	light, dark := PaletteFor(false), PaletteFor(true)

	// Then: text and surface colors differ between them
	if light.Text == dark.Text {
		t.Error("light and dark text colors should differ")
	}
	if light.Surface == dark.Surface {
		t.Error("light and dark surface colors should differ")
	}
	if dark.Surface != colorNavy {
		t.Errorf("dark surface = %q, want %q", dark.Surface, colorNavy)
	}
}

func TestThemeLabel_NamesTarget(t *testing.T) {
	tests := []struct {
		dark bool
		want string
	}{
		{false, "Dark mode"},
		{true, "Light mode"},
	}
	for _, tt := range tests {
		if got := ThemeLabel(tt.dark); !strings.Contains(got, tt.want) {
			t.Errorf("ThemeLabel(%v) = %q, want to contain %q", tt.dark, got, tt.want)
		}
	}
}

func TestNewStyles_DoesNotPanic(t *testing.T) {
	// Given/When: styles are built for both themes
	// Then: rendering with each style works
	for _, dark := range []bool{false, true} {
		st := NewStyles(dark)
		_ = st.Title.Render("x")
		_ = st.Modal.Render("x")
		_ = st.Warning.Render("x")
	}
}

func TestRenderCard_Content(t *testing.T) {
	// Given: a seed contact
	c := contact.Seed()[0]

	// When: rendered as a card
	plain := stripANSI(renderCard(c, false, NewStyles(false), 80))

	// Then: avatar, name, username, email and company are present
	for _, want := range []string{"SM", "Sarah Mitchell", "@sarahm", c.Email, "TechCorp Solutions"} {
		if !strings.Contains(plain, want) {
			t.Errorf("card missing %q, got:\n%s", want, plain)
		}
	}
}

func TestRenderCard_SelectedDiffers(t *testing.T) {
	c := contact.Seed()[0]
	st := NewStyles(false)

	if renderCard(c, true, st, 80) == renderCard(c, false, st, 80) {
		t.Error("selected card should render differently")
	}
}

func TestRenderList_Empty(t *testing.T) {
	got := renderList(nil, 0, NewStyles(true), 80, 20)
	if !containsPlainText(got, EmptyText) {
		t.Errorf("empty list = %q, want %q", stripANSI(got), EmptyText)
	}
}

func TestStatusLine(t *testing.T) {
	st := NewStyles(false)

	tests := []struct {
		name     string
		fallback bool
		notice   string
		want     []string
		absent   []string
	}{
		{"remote", false, "", []string{"3 of 5 contacts"}, []string{FallbackNote}},
		{"fallback", true, "", []string{"3 of 5 contacts", FallbackNote}, nil},
		{"notice", false, "theme not saved", []string{"theme not saved"}, []string{FallbackNote}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripANSI(statusLine(3, 5, tt.fallback, tt.notice, st))
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("status %q missing %q", got, w)
				}
			}
			for _, a := range tt.absent {
				if strings.Contains(got, a) {
					t.Errorf("status %q should not contain %q", got, a)
				}
			}
		})
	}
}

func TestDetailWidth(t *testing.T) {
	tests := []struct {
		total, want int
	}{
		{100, 72},
		{60, 52},
		{10, 20},
	}
	for _, tt := range tests {
		if got := detailWidth(tt.total); got != tt.want {
			t.Errorf("detailWidth(%d) = %d, want %d", tt.total, got, tt.want)
		}
	}
}
