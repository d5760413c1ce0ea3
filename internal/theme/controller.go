package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/nhle/boosted-portal/internal/model"
)

// Controller holds the light/dark flag of the shell.
type Controller struct {
	dark bool
}

// NewController returns a controller starting in the given mode.
func NewController(dark bool) Controller {
	return Controller{dark: dark}
}

// Dark reports whether the dark variant is active.
func (c Controller) Dark() bool {
	return c.dark
}

// Toggle flips between light and dark.
func (c *Controller) Toggle() {
	c.dark = !c.dark
}

// Label returns the name of the active variant.
func (c Controller) Label() string {
	if c.dark {
		return model.ThemeDark
	}
	return model.ThemeLight
}

// hostPrefersDark asks the terminal for its background. Tests swap it out.
var hostPrefersDark = termenv.HasDarkBackground

// DetectDark resolves a configured theme mode to the initial dark flag.
// In auto mode the terminal is queried once; later changes of the terminal
// background are not observed until the next start.
func DetectDark(mode string) bool {
	switch strings.ToLower(mode) {
	case model.ThemeDark:
		return true
	case model.ThemeLight:
		return false
	default:
		return hostPrefersDark()
	}
}

// Apply makes the adaptive palette render the dark or light variant.
func Apply(dark bool) {
	lipgloss.SetHasDarkBackground(dark)
}
