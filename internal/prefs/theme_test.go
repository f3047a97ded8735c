package prefs

import (
	"errors"
	"path/filepath"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// memStore is an in-memory Store for tests.
type memStore struct {
	values map[string]string
	getErr error
	setErr error
	writes []string
}

func newMemStore() *memStore {
	return &memStore{values: make(map[string]string)}
}

func (m *memStore) Get(key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memStore) Set(key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	m.writes = append(m.writes, key+"="+value)
	return nil
}

func TestLoadTheme(t *testing.T) {
	sysDark := func() bool { return true }
	sysLight := func() bool { return false }

	tests := []struct {
		name   string
		saved  string
		set    bool
		getErr error
		system func() bool
		want   bool
	}{
		{"saved dark beats light system", "dark", true, nil, sysLight, true},
		{"saved light beats dark system", "light", true, nil, sysDark, false},
		{"unset uses dark system", "", false, nil, sysDark, true},
		{"unset uses light system", "", false, nil, sysLight, false},
		{"unknown value uses system", "sepia", true, nil, sysDark, true},
		{"read error uses system", "", false, errors.New("disk"), sysDark, true},
		{"nil system signal is light", "", false, nil, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newMemStore()
			s.getErr = tt.getErr
			if tt.set {
				s.values[ThemeKey] = tt.saved
			}
			if got := LoadTheme(s, tt.system); got != tt.want {
				t.Errorf("LoadTheme() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSaveTheme_WritesKey(t *testing.T) {
	s := newMemStore()

	if err := SaveTheme(s, true); err != nil {
		t.Fatalf("SaveTheme() error = %v", err)
	}
	if err := SaveTheme(s, false); err != nil {
		t.Fatalf("SaveTheme() error = %v", err)
	}

	want := []string{"contacts-theme=dark", "contacts-theme=light"}
	if len(s.writes) != len(want) {
		t.Fatalf("writes = %v, want %v", s.writes, want)
	}
	for i := range want {
		if s.writes[i] != want[i] {
			t.Errorf("writes[%d] = %q, want %q", i, s.writes[i], want[i])
		}
	}
}

func TestToggleFromDefault_WritesOpposite(t *testing.T) {
	// Given: no saved theme and a light system preference
	store := NewFileStore(filepath.Join(t.TempDir(), "prefs.json"))
	dark := LoadTheme(store, func() bool { return false })

	// When: the flag is toggled and saved
	if err := SaveTheme(store, !dark); err != nil {
		t.Fatalf("SaveTheme() error = %v", err)
	}

	// Then: the store holds the opposite of the default
	v, ok, err := store.Get(ThemeKey)
	if err != nil || !ok {
		t.Fatalf("Get() = %q, %v, %v", v, ok, err)
	}
	if v != ThemeDark {
		t.Errorf("%s = %q, want %q", ThemeKey, v, ThemeDark)
	}
}
