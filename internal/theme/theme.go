package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/boosted-portal/internal/model"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorIndigo  = lipgloss.AdaptiveColor{Dark: "#818CF8", Light: "#4F46E5"}
	ColorViolet  = lipgloss.AdaptiveColor{Dark: "#A78BFA", Light: "#7C3AED"}
	ColorGreen   = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow  = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed     = lipgloss.AdaptiveColor{Dark: "#FB7185", Light: "#E11D48"}
	ColorBlue    = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGray    = lipgloss.AdaptiveColor{Dark: "#94A3B8", Light: "#6B7280"}
	ColorWhite   = lipgloss.AdaptiveColor{Dark: "#F8FAFC", Light: "#111827"}
	ColorSubtle  = lipgloss.AdaptiveColor{Dark: "#334155", Light: "#E2E8F0"}
	ColorBorder  = lipgloss.AdaptiveColor{Dark: "#1E293B", Light: "#E5E7EB"}
	ColorSurface = lipgloss.AdaptiveColor{Dark: "#0F172A", Light: "#F8FAFC"}
)

// HeaderStyle is used for the view title in the top bar.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Padding(0, 1)

// SubtitleStyle renders the date line under the header title.
var SubtitleStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Padding(0, 1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// PanelStyle wraps content panels, the dropdown and modals.
var PanelStyle = lipgloss.NewStyle().
	Padding(1, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// SidebarStyle frames the navigation column.
var SidebarStyle = lipgloss.NewStyle().
	Padding(1, 1).
	Border(lipgloss.NormalBorder(), false, true, false, false).
	BorderForeground(ColorBorder)

// ListItemStyle is the base style for items in a list.
var ListItemStyle = lipgloss.NewStyle().
	PaddingLeft(2)

// SelectedItemStyle highlights the currently focused list item.
var SelectedItemStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Bold(true).
	Foreground(ColorIndigo).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(ColorIndigo)

// ActiveNavStyle marks the sidebar entry of the active view.
var ActiveNavStyle = lipgloss.NewStyle().
	PaddingLeft(2).
	Foreground(ColorIndigo)

// HelpStyle is used for keyboard shortcut hints and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// DimmedStyle renders read or secondary content.
var DimmedStyle = lipgloss.NewStyle().
	Foreground(ColorGray)

// TitleStyle is the bold heading used inside panels.
var TitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	MarginBottom(1)

// BadgeStyle renders the user avatar initial.
var BadgeStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FFFFFF")).
	Background(ColorViolet).
	Padding(0, 1)

// UnreadDotStyle renders the bell indicator when something is unread.
var UnreadDotStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorRed)

// NotificationStyle returns a color-coded style for a notification type.
func NotificationStyle(t model.NotificationType) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch t {
	case model.NotificationSuccess:
		return base.Foreground(ColorGreen)
	case model.NotificationWarning:
		return base.Foreground(ColorYellow)
	case model.NotificationAlert:
		return base.Foreground(ColorRed)
	case model.NotificationInfo:
		return base.Foreground(ColorBlue)
	default:
		return base.Foreground(ColorGray)
	}
}

// NotificationIcon returns a one-cell glyph for a notification type.
func NotificationIcon(t model.NotificationType) string {
	switch t {
	case model.NotificationSuccess:
		return "✓"
	case model.NotificationWarning:
		return "!"
	case model.NotificationAlert:
		return "▲"
	default:
		return "i"
	}
}

// StatusStyle returns a color-coded style for a task status.
func StatusStyle(status model.TaskStatus) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1)

	switch status {
	case model.TaskTodo:
		return base.Foreground(ColorBlue)
	case model.TaskInProgress:
		return base.Foreground(ColorYellow)
	case model.TaskReview:
		return base.Foreground(ColorViolet)
	case model.TaskDone:
		return base.Foreground(ColorGreen)
	default:
		return base.Foreground(ColorGray)
	}
}

// PriorityStyle returns a color-coded style for a task priority.
func PriorityStyle(priority model.TaskPriority) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch priority {
	case model.PriorityHigh:
		return base.Foreground(ColorRed)
	case model.PriorityMedium:
		return base.Foreground(ColorYellow)
	case model.PriorityLow:
		return base.Foreground(ColorBlue)
	default:
		return base.Foreground(ColorGray)
	}
}
