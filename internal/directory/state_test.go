package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/smileynet/contacts/internal/contact"
	"github.com/smileynet/contacts/internal/source"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNew_IsLoading(t *testing.T) {
	s := New(true)

	assert.True(t, s.Loading)
	assert.True(t, s.Dark)
	assert.Empty(t, s.Contacts)
	assert.Nil(t, s.Selected)
	assert.Nil(t, s.Visible(), "nothing is filtered while loading")
}

func TestLoadSucceeded(t *testing.T) {
	contacts := contact.Merge(contact.Seed(), []contact.Contact{{ID: 1, Name: "Leanne Graham"}})

	s := New(false).LoadSucceeded(contacts)

	assert.False(t, s.Loading)
	assert.False(t, s.Fallback)
	assert.Equal(t, contacts, s.Visible())
}

func TestLoadFailed(t *testing.T) {
	s := New(false).LoadFailed(contact.Seed())

	assert.False(t, s.Loading)
	assert.True(t, s.Fallback)
	assert.Equal(t, contact.Seed(), s.Contacts)
}

func TestApply_RoutesOnFallback(t *testing.T) {
	ok := New(false).Apply(source.Result{Contacts: contact.Seed()})
	assert.False(t, ok.Fallback)

	failed := New(false).Apply(source.Result{Contacts: contact.Seed(), Fallback: true})
	assert.True(t, failed.Fallback)
	assert.False(t, failed.Loading)
}

func TestStartLoad_ClearsSelection(t *testing.T) {
	s := New(false).LoadSucceeded(contact.Seed())
	s = s.Select(s.Contacts[0])
	require.NotNil(t, s.Selected)

	s = s.StartLoad()

	assert.True(t, s.Loading)
	assert.Nil(t, s.Selected)
	assert.Nil(t, s.Visible())
}

func TestSelectDeselect(t *testing.T) {
	s := New(false).LoadSucceeded(contact.Seed())

	selected := s.Select(s.Contacts[1])
	require.NotNil(t, selected.Selected)
	assert.Equal(t, "Marcus Johnson", selected.Selected.Name)
	assert.Nil(t, s.Selected, "Select must not mutate the receiver")

	cleared := selected.Deselect()
	assert.Nil(t, cleared.Selected)
}

func TestSelect_CopiesContact(t *testing.T) {
	seed := contact.Seed()
	s := New(false).LoadSucceeded(seed).Select(seed[0])

	seed[0].Name = "changed"

	assert.Equal(t, "Sarah Mitchell", s.Selected.Name)
}

func TestToggleTheme(t *testing.T) {
	s := New(false)
	assert.Equal(t, "light", s.Theme())

	s = s.ToggleTheme()
	assert.True(t, s.Dark)
	assert.Equal(t, "dark", s.Theme())

	s = s.ToggleTheme()
	assert.Equal(t, "light", s.Theme())
}

func TestSetQuery_FiltersVisible(t *testing.T) {
	s := New(false).LoadSucceeded(contact.Seed())

	s = s.SetQuery("tech")
	visible := s.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "Sarah Mitchell", visible[0].Name)

	s = s.SetQuery("zzz")
	assert.Empty(t, s.Visible())

	s = s.SetQuery("")
	assert.Len(t, s.Visible(), 2)
}

func TestQuerySurvivesReload(t *testing.T) {
	s := New(false).LoadSucceeded(contact.Seed()).SetQuery("design")

	s = s.StartLoad().LoadFailed(contact.Seed())

	assert.Equal(t, "design", s.Query)
	require.Len(t, s.Visible(), 1)
	assert.Equal(t, 102, s.Visible()[0].ID)
}
