package main

import "github.com/charmbracelet/lipgloss"

// Styles are initialized after theme is loaded
// All styles dynamically use CurrentTheme for colors

// GetBaseStyle returns the base text style with theme foreground color
func GetBaseStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.Foreground))
}

// GetTitleStyle returns the title style with theme blue color
func GetTitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(CurrentTheme.Blue))
}

// GetLabelStyle returns the label style with theme gray color
func GetLabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.Gray))
}

// GetAccentStyle returns the accent style with theme green color
func GetAccentStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.Green)).
		Bold(true)
}

// GetSelectorStyle returns the style for the active selector value
func GetSelectorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.Cyan)).
		Bold(true)
}

// GetStatusBarStyle returns the status bar style
func GetStatusBarStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.Gray)).
		Background(lipgloss.Color(CurrentTheme.Subtle))
}

// GetErrorStyle returns the error style with theme red color
func GetErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.Red)).
		Bold(true)
}

// Legacy global styles for backward compatibility
// These are now functions that return themed styles
var (
	baseStyle      = GetBaseStyle()
	titleStyle     = GetTitleStyle()
	labelStyle     = GetLabelStyle()
	accentStyle    = GetAccentStyle()
	selectorStyle  = GetSelectorStyle()
	statusBarStyle = GetStatusBarStyle()
	errorStyle     = GetErrorStyle()
)

// InitStyles must be called after InitTheme() to set up global styles
func InitStyles() {
	baseStyle = GetBaseStyle()
	titleStyle = GetTitleStyle()
	labelStyle = GetLabelStyle()
	accentStyle = GetAccentStyle()
	selectorStyle = GetSelectorStyle()
	statusBarStyle = GetStatusBarStyle()
	errorStyle = GetErrorStyle()
}
