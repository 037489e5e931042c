package ui

import (
	"fmt"
	"os"
	"sync"
)

// Theme is a named set of ANSI escape codes, one per output category. The
// color accessors in this package always read from the active theme, so
// presentation code never hardcodes an escape sequence.
type Theme struct {
	Name      string
	Primary   string // accent for step headers and prominent values
	Secondary string // de-emphasized details
	Success   string
	Warning   string
	Error     string
	Info      string
	Bold      string
	Underline string
	Reset     string
}

// fg returns the escape code selecting entry n of the 256-color palette as
// the foreground color.
func fg(n int) string { return fmt.Sprintf("\033[38;5;%dm", n) }

const (
	codeBold      = "\033[1m"
	codeUnderline = "\033[4m"
	codeReset     = "\033[0m"
)

var (
	// DarkTheme targets dark terminal backgrounds with bright colors.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   fg(39),  // bright blue
		Secondary: fg(245), // grey
		Success:   fg(82),  // bright green
		Warning:   fg(220), // yellow
		Error:     fg(196), // red
		Info:      fg(141), // purple
		Bold:      codeBold,
		Underline: codeUnderline,
		Reset:     codeReset,
	}

	// LightTheme uses darker shades that stay readable on light backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   fg(27),  // dark blue
		Secondary: fg(240), // dark grey
		Success:   fg(28),  // dark green
		Warning:   fg(130), // orange
		Error:     fg(124), // dark red
		Info:      fg(54),  // dark purple
		Bold:      codeBold,
		Underline: codeUnderline,
		Reset:     codeReset,
	}

	// NoColorTheme carries empty codes throughout, turning all styled output
	// into plain text. Activated by NO_COLOR.
	NoColorTheme = Theme{Name: "none"}
)

// themes indexes every selectable theme by its name.
var themes = map[string]Theme{
	"dark":  DarkTheme,
	"light": LightTheme,
	"none":  NoColorTheme,
}

var (
	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// GetCurrentTheme returns the active theme. Safe for concurrent use.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme with t. Tests use it to restore
// the theme they found.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme activates the named theme: "dark", "light" or "none". Unknown
// names activate the dark theme.
func SetTheme(name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	if t, ok := themes[name]; ok {
		currentTheme = t
		return
	}
	currentTheme = DarkTheme
}

// InitTheme selects the theme from the environment at startup. A non-empty
// NO_COLOR disables colors entirely (per no-color.org); otherwise COLOR_THEME
// may name any selectable theme. The default is the dark theme.
func InitTheme() {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if os.Getenv("NO_COLOR") != "" {
		currentTheme = NoColorTheme
		return
	}
	if t, ok := themes[os.Getenv("COLOR_THEME")]; ok {
		currentTheme = t
		return
	}
	currentTheme = DarkTheme
}
