package prefs

// ThemeKey is the preference key holding the colour scheme.
const ThemeKey = "contacts-theme"

// Theme values stored under ThemeKey.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// ThemeName maps the dark flag to its stored value.
func ThemeName(dark bool) string {
	if dark {
		return ThemeDark
	}
	return ThemeLight
}

// LoadTheme reports whether the dark theme is active. A saved "dark" or
// "light" wins; anything else (unset, unknown value, read error) defers to
// systemDark.
func LoadTheme(s Store, systemDark func() bool) bool {
	v, ok, err := s.Get(ThemeKey)
	if err == nil && ok {
		switch v {
		case ThemeDark:
			return true
		case ThemeLight:
			return false
		}
	}
	if systemDark == nil {
		return false
	}
	return systemDark()
}

// SaveTheme writes the theme for dark under ThemeKey.
func SaveTheme(s Store, dark bool) error {
	return s.Set(ThemeKey, ThemeName(dark))
}
