// ABOUTME: Theme domain model holds the colors used to style rendered tables
// ABOUTME: Replaces ambient theme state with an explicit value passed to renderers

package domain

import (
	"strings"

	coreerrors "swish-api/core/errors"
)

// ThemeKind names one of the app themes
type ThemeKind string

const (
	ThemeLight ThemeKind = "LIGHT"
	ThemeDark  ThemeKind = "DARK"
)

// Theme carries the theme-dependent styling constants
type Theme struct {
	Kind ThemeKind

	// TextColorHex is a 6-digit hex color with a leading '#'
	TextColorHex string

	// BackgroundColorHex is a 6-digit hex color with a leading '#'
	BackgroundColorHex string

	// BorderAsset is the drawable framing a collapsed table
	BorderAsset string
}

// LightTheme returns the light palette
func LightTheme() Theme {
	return Theme{
		Kind:               ThemeLight,
		TextColorHex:       "#000000",
		BackgroundColorHex: "#FFFFFF",
		BorderAsset:        "square_border_light",
	}
}

// DarkTheme returns the dark palette
func DarkTheme() Theme {
	return Theme{
		Kind:               ThemeDark,
		TextColorHex:       "#FFFFFF",
		BackgroundColorHex: "#424242",
		BorderAsset:        "square_border_night",
	}
}

// ParseThemeKind converts LIGHT or DARK (any case) into a ThemeKind
func ParseThemeKind(name string) (ThemeKind, error) {
	switch ThemeKind(strings.ToUpper(strings.TrimSpace(name))) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	default:
		return "", &coreerrors.ValidationError{
			Field:   "theme",
			Message: "invalid theme: " + name,
		}
	}
}

// ThemeFor returns the palette for a theme kind; unknown kinds fall back to dark
func ThemeFor(kind ThemeKind) Theme {
	if kind == ThemeLight {
		return LightTheme()
	}
	return DarkTheme()
}
