package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/boosted-portal/internal/theme"
)

// Layout manages the shell layout dimensions: a sidebar on the left and,
// to its right, a header, the content area and the status bar.
type Layout struct {
	Width           int
	Height          int
	SidebarWidth    int
	HeaderHeight    int
	StatusBarHeight int
}

// NewLayout creates a Layout with the given terminal dimensions.
func NewLayout(width, height, sidebarWidth int) Layout {
	return Layout{
		Width:           width,
		Height:          height,
		SidebarWidth:    sidebarWidth,
		HeaderHeight:    3,
		StatusBarHeight: 1,
	}
}

// MainWidth returns the width right of the sidebar.
func (l Layout) MainWidth() int {
	return max(l.Width-l.SidebarWidth, 0)
}

// ContentWidth returns the width available for view content.
func (l Layout) ContentWidth() int {
	return l.MainWidth()
}

// ContentHeight returns the height available for the main content area,
// accounting for the header and status bar.
func (l Layout) ContentHeight() int {
	return max(l.Height-l.HeaderHeight-l.StatusBarHeight, 0)
}

// Header is what the top bar shows.
type Header struct {
	Title    string
	Subtitle string
	Actions  string
}

// RenderHeader renders the title and date on the left and the action
// strip on the right.
func (l Layout) RenderHeader(h Header) string {
	left := lipgloss.JoinVertical(
		lipgloss.Left,
		theme.HeaderStyle.Render(h.Title),
		theme.SubtitleStyle.Render(h.Subtitle),
	)
	right := lipgloss.NewStyle().Padding(0, 1).Render(h.Actions)

	gap := max(l.MainWidth()-lipgloss.Width(left)-lipgloss.Width(right), 0)
	row := lipgloss.JoinHorizontal(
		lipgloss.Center,
		left,
		lipgloss.NewStyle().Width(gap).Render(""),
		right,
	)
	return lipgloss.NewStyle().Height(l.HeaderHeight).Render(row)
}

// RenderStatusBar renders the bottom status bar with keyboard hints.
func (l Layout) RenderStatusBar(hints string) string {
	return theme.StatusBarStyle.
		Width(l.MainWidth()).
		MaxWidth(l.MainWidth()).
		Render(hints)
}

// RenderWithFrame composes the full screen from the sidebar and the main
// column pieces.
func (l Layout) RenderWithFrame(
	sidebar string,
	header string,
	content string,
	statusBar string,
) string {
	body := lipgloss.NewStyle().
		Width(l.MainWidth()).
		Height(l.ContentHeight()).
		MaxHeight(l.ContentHeight()).
		Render(content)

	main := lipgloss.JoinVertical(lipgloss.Left, header, body, statusBar)
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, main)
}

// PlaceTopRight positions box in the top-right corner of the content
// area, where the notification dropdown hangs off the bell.
func (l Layout) PlaceTopRight(box string) string {
	return lipgloss.Place(l.ContentWidth(), l.ContentHeight(), lipgloss.Right, lipgloss.Top, box)
}

// PlaceCenter centers box in the content area, for modals.
func (l Layout) PlaceCenter(box string) string {
	return lipgloss.Place(l.ContentWidth(), l.ContentHeight(), lipgloss.Center, lipgloss.Center, box)
}
