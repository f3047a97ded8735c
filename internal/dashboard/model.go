package dashboard

import (
	"context"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/contacts/internal/contact"
	"github.com/smileynet/contacts/internal/directory"
	"github.com/smileynet/contacts/internal/prefs"
	"github.com/smileynet/contacts/internal/source"
)

// helpBarHeight is the number of lines reserved for the help bar at the bottom.
const helpBarHeight = 1

// borderChrome is the number of lines consumed by top + bottom borders.
const borderChrome = 2

// browseChrome is the number of lines around the card list:
// title, search box, spacer, status line.
const browseChrome = 4

// Model is the root Bubble Tea model for the contact directory.
// All directory state lives in one directory.State value; the rest is
// widget state owned by the view.
type Model struct {
	state    directory.State
	cursor   int
	notice   string
	width    int
	height   int
	styles   Styles
	search   textinput.Model
	spinner  spinner.Model
	viewport viewport.Model
	help     help.Model
	browse   browseKeys
	detail   detailKeys

	resolver  Resolver
	saveTheme ThemeSaver
	saving    bool // a theme save command is outstanding
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithResolver sets the contact source. Without one, every load cycle
// settles on the built-in seed list.
func WithResolver(r Resolver) ModelOption {
	return func(m *Model) { m.resolver = r }
}

// WithThemeSaver sets the callback that persists theme changes.
func WithThemeSaver(fn ThemeSaver) ModelOption {
	return func(m *Model) { m.saveTheme = fn }
}

// WithDark sets the initial theme.
func WithDark(dark bool) ModelOption {
	return func(m *Model) { m.state = directory.New(dark) }
}

// NewModel creates a dashboard Model in the loading state.
func NewModel(opts ...ModelOption) Model {
	ti := textinput.New()
	ti.Placeholder = "Search contacts..."
	ti.Prompt = "⌕ "
	ti.CharLimit = 128
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot

	m := Model{
		state:    directory.New(false),
		search:   ti,
		spinner:  s,
		viewport: viewport.New(0, 0),
		help:     help.New(),
		browse:   BrowseKeyMap(),
		detail:   DetailKeyMap(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.styles = NewStyles(m.state.Dark)
	return m
}

// State returns the current directory state.
func (m Model) State() directory.State { return m.state }

// Mode returns the current view mode.
func (m Model) Mode() Mode {
	if m.state.Selected != nil {
		return ModeDetail
	}
	return ModeBrowse
}

// Init starts the first load cycle and the spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadContacts(m.resolver), m.spinner.Tick)
}

// loadContacts returns a tea.Cmd that resolves the collection off the
// update loop and wraps the result in a ContactsLoadedMsg.
func loadContacts(r Resolver) tea.Cmd {
	return func() tea.Msg {
		if r == nil {
			return ContactsLoadedMsg{Result: source.Result{Contacts: contact.Seed(), Fallback: true}}
		}
		return ContactsLoadedMsg{Result: r.Resolve(context.Background())}
	}
}

// requestSave issues a theme save unless one is already outstanding. At
// most one save runs at a time; a toggle made meanwhile is picked up when
// the outstanding save reports back.
func (m Model) requestSave() (Model, tea.Cmd) {
	if m.saveTheme == nil || m.saving {
		return m, nil
	}
	m.saving = true
	return m, persistTheme(m.saveTheme, m.state.Dark)
}

// persistTheme returns a tea.Cmd that saves the theme and reports back.
func persistTheme(save ThemeSaver, dark bool) tea.Cmd {
	if save == nil {
		return nil
	}
	return func() tea.Msg {
		return ThemeSavedMsg{Theme: prefs.ThemeName(dark), Err: save(dark)}
	}
}

// Update handles incoming messages with mode-based routing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.search.Width = max(msg.Width-lipgloss.Width(m.search.Prompt)-1, 10)
		m.viewport.Width = detailWidth(msg.Width)
		if sel := m.state.Selected; sel != nil {
			m.sizeDetail(detailBody(*sel, m.styles))
		}
		return m, nil

	case ContactsLoadedMsg:
		if !m.state.Loading {
			return m, nil
		}
		m.state = m.state.Apply(msg.Result)
		m.cursor = 0
		return m, nil

	case ThemeSavedMsg:
		m.saving = false
		if msg.Theme != m.state.Theme() {
			// Stale: the flag changed while this save ran.
			return m.requestSave()
		}
		m.notice = ""
		if msg.Err != nil {
			m.notice = "theme not saved: " + msg.Err.Error()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey processes key messages with global and mode-specific routing.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.browse.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.browse.Theme):
		m.state = m.state.ToggleTheme()
		m.styles = NewStyles(m.state.Dark)
		if m.state.Selected != nil {
			m.viewport.SetContent(detailBody(*m.state.Selected, m.styles))
		}
		return m.requestSave()
	}

	if m.Mode() == ModeDetail {
		return m.handleDetailKey(msg)
	}
	return m.handleBrowseKey(msg)
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.detail.Close) {
		m.state = m.state.Deselect()
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.state.Visible()

	switch {
	case key.Matches(msg, m.browse.Reload):
		if m.state.Loading {
			return m, nil
		}
		m.state = m.state.StartLoad()
		return m, tea.Batch(loadContacts(m.resolver), m.spinner.Tick)

	case key.Matches(msg, m.browse.Up):
		if len(visible) > 0 {
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(visible) - 1
			}
		}
		return m, nil

	case key.Matches(msg, m.browse.Down):
		if len(visible) > 0 {
			m.cursor++
			if m.cursor >= len(visible) {
				m.cursor = 0
			}
		}
		return m, nil

	case key.Matches(msg, m.browse.Open):
		if m.cursor >= 0 && m.cursor < len(visible) {
			return m.openDetail(visible[m.cursor]), nil
		}
		return m, nil

	case key.Matches(msg, m.browse.Clear):
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.state = m.state.SetQuery("")
			m.cursor = 0
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if q := m.search.Value(); q != m.state.Query {
		m.state = m.state.SetQuery(q)
		m.cursor = 0
	}
	return m, cmd
}

// openDetail selects c and sizes the overlay viewport to its content.
func (m Model) openDetail(c contact.Contact) Model {
	m.state = m.state.Select(c)
	m.sizeDetail(detailBody(c, m.styles))
	m.viewport.GotoTop()
	return m
}

// sizeDetail fits the overlay viewport to body within the current height.
func (m *Model) sizeDetail(body string) {
	maxHeight := m.height - helpBarHeight - borderChrome - 1
	m.viewport.Height = max(min(lipgloss.Height(body), maxHeight), 1)
	m.viewport.SetContent(body)
}

// View renders the directory with help bar.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	helpView := m.help.View(HelpBindings(m.Mode()))

	if sel := m.state.Selected; sel != nil {
		modal := renderModal(detailHeader(*sel, m.styles), m.viewport.View(),
			m.styles, m.width, m.height-helpBarHeight)
		return lipgloss.JoinVertical(lipgloss.Left, modal, helpView)
	}

	title := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Title.Render("Contacts"),
		"  ",
		m.styles.Muted.Render(ThemeLabel(m.state.Dark)),
	)

	bodyHeight := max(m.height-browseChrome-helpBarHeight, cardHeight)
	var body, status string
	if m.state.Loading {
		body = m.spinner.View() + " " + m.styles.Muted.Render(LoadingText)
	} else {
		visible := m.state.Visible()
		body = renderList(visible, m.cursor, m.styles, m.width, bodyHeight)
		status = statusLine(len(visible), len(m.state.Contacts), m.state.Fallback, m.notice, m.styles)
	}
	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.search.View(),
		"",
		body,
		status,
		helpView,
	)
}
