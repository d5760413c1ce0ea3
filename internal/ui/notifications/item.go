package notifications

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/boosted-portal/internal/model"
	"github.com/nhle/boosted-portal/internal/theme"
)

// Item wraps a notification so it can be used in a bubbles/list.
type Item struct {
	Notification model.Notification
}

// FilterValue returns the string used for fuzzy filtering.
func (i Item) FilterValue() string { return i.Notification.Title }

// Title returns the notification title.
func (i Item) Title() string { return i.Notification.Title }

// Description returns the notification message.
func (i Item) Description() string { return i.Notification.Message }

// ItemDelegate renders a notification as a two-line entry.
type ItemDelegate struct{}

// Height returns the number of lines each item takes.
func (d ItemDelegate) Height() int { return 2 }

// Spacing returns the number of blank lines between items.
func (d ItemDelegate) Spacing() int { return 1 }

// Update handles per-item messages (unused).
func (d ItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single notification.
func (d ItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(Item)
	if !ok {
		return
	}
	n := it.Notification

	icon := theme.NotificationStyle(n.Type).Render(theme.NotificationIcon(n.Type))
	title := n.Title
	if !n.Read {
		title = lipgloss.NewStyle().Bold(true).Render(title) + " " + theme.UnreadDotStyle.Render("•")
	}
	head := fmt.Sprintf("%s %s  %s", icon, title, theme.DimmedStyle.Render(n.Time))

	body := truncate(n.Message, max(m.Width()-6, 10))
	if n.Read {
		body = theme.DimmedStyle.Render(body)
	}

	style := theme.ListItemStyle
	if index == m.Index() {
		style = theme.SelectedItemStyle
	}
	fmt.Fprint(w, style.Render(head+"\n  "+body))
}

// truncate shortens s to at most width runes, adding an ellipsis.
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}
