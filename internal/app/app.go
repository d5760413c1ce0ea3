package app

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nhle/boosted-portal/internal/ai"
	"github.com/nhle/boosted-portal/internal/keys"
	"github.com/nhle/boosted-portal/internal/model"
	"github.com/nhle/boosted-portal/internal/notify"
	"github.com/nhle/boosted-portal/internal/router"
	"github.com/nhle/boosted-portal/internal/session"
	"github.com/nhle/boosted-portal/internal/theme"
	"github.com/nhle/boosted-portal/internal/ui"
	"github.com/nhle/boosted-portal/internal/ui/chat"
	"github.com/nhle/boosted-portal/internal/ui/command"
	helpview "github.com/nhle/boosted-portal/internal/ui/help"
	"github.com/nhle/boosted-portal/internal/ui/login"
	"github.com/nhle/boosted-portal/internal/ui/notifications"
	"github.com/nhle/boosted-portal/internal/ui/notifpanel"
	"github.com/nhle/boosted-portal/internal/ui/placeholder"
	"github.com/nhle/boosted-portal/internal/ui/settings"
	"github.com/nhle/boosted-portal/internal/ui/sidebar"
	"github.com/nhle/boosted-portal/internal/ui/support"
	"github.com/nhle/boosted-portal/internal/ui/users"
)

// focusArea is the pane receiving keys when no overlay is open.
type focusArea int

const (
	focusSidebar focusArea = iota
	focusContent
)

// Options configures a new shell.
type Options struct {
	// Dark is the initial theme, already resolved from the host preference.
	Dark bool

	// StartView is the view shown after login. Defaults to CHATBOT.
	StartView model.ViewState

	// User signs in immediately when non-empty.
	User string

	// Now is the clock used for the header date. Defaults to time.Now.
	Now func() time.Time

	// Logger receives shell events. Defaults to a discarding logger.
	Logger *log.Logger
}

// Model is the root Bubble Tea model. It owns the session, the router,
// the theme flag and the notification feed, and hands read-only copies of
// them to the views it composes.
type Model struct {
	keys   *keys.KeyMap
	layout ui.Layout
	ready  bool
	now    func() time.Time
	logger *log.Logger

	session session.Controller
	router  router.Router
	theme   theme.Controller
	feed    notify.Feed

	focus        focusArea
	notifOpen    bool
	settingsOpen bool
	helpOpen     bool
	commandOpen  bool

	loginView    login.Model
	sidebarView  sidebar.Model
	panelView    notifpanel.Model
	notifView    notifications.Model
	settingsView settings.Model
	chatView     chat.Model
	usersView    users.Model
	supportView  support.Model
	crmView      placeholder.Model
	erpView      placeholder.Model
	dashView     placeholder.Model
	helpView     helpview.Model
	commandView  command.Model
}

// New creates the shell. The notification feed is seeded and the theme
// flag applied to the palette.
func New(opts Options) Model {
	if opts.StartView == "" {
		opts.StartView = model.ViewChatbot
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	k := keys.DefaultKeyMap()
	w, h := 80, 24

	m := Model{
		keys:   k,
		layout: ui.NewLayout(w, h, sidebar.Width),
		now:    opts.Now,
		logger: opts.Logger,

		session: session.New(),
		router:  router.NewAt(opts.StartView),
		theme:   theme.NewController(opts.Dark),
		feed:    notify.Seed(),

		loginView:    login.New(w, h),
		sidebarView:  sidebar.New(k, opts.StartView, h),
		panelView:    notifpanel.New(k),
		notifView:    notifications.New(k, w, h),
		settingsView: settings.New(w),
		chatView:     chat.New(ai.New(), w, h),
		usersView:    users.New(w, h),
		supportView:  support.New(k, w, h),
		crmView: placeholder.New(
			"CRM Boosted",
			"Pipeline de candidatos y relaciones con clientes. Próximamente.",
			w, h,
		),
		erpView: placeholder.New(
			"ERP",
			"Vacaciones, ausencias y planificación de recursos. Próximamente.",
			w, h,
		),
		dashView: placeholder.New(
			"Dashboard",
			"Este módulo está en construcción.",
			w, h,
		),
		helpView:    helpview.New(k, w, h),
		commandView: command.New(w, h),
	}

	m.panelView.SetFeed(m.feed)
	m.notifView.SetFeed(m.feed)
	theme.Apply(m.theme.Dark())

	if opts.User != "" {
		m.login(opts.User)
	}

	return m
}

// clockTickMsg re-renders the header so the date stays current.
type clockTickMsg time.Time

const clockInterval = time.Minute

func tickClock() tea.Cmd {
	return tea.Tick(clockInterval, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

// Init starts the login form, or the chat cursor when already signed in,
// and the header clock.
func (m Model) Init() tea.Cmd {
	if !m.session.Authenticated() {
		return tea.Batch(m.loginView.Init(), tickClock())
	}
	return tea.Batch(m.chatView.Init(), tickClock())
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case clockTickMsg:
		return m, tickClock()

	case login.SubmitMsg:
		m.login(msg.Name)
		cmd := m.setFocus(focusSidebar)
		return m, cmd

	case chat.ResponseChunkMsg:
		var cmd tea.Cmd
		m.chatView, cmd = m.chatView.Update(msg)
		return m, cmd
	}

	if !m.session.Authenticated() {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.loginView, cmd = m.loginView.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case sidebar.ChangeViewMsg:
		m.changeView(msg.View)
		cmd := m.setFocus(focusContent)
		return m, cmd

	case sidebar.LogoutMsg:
		cmd := m.logout()
		return m, cmd

	case notifpanel.MarkReadMsg:
		cmd := m.markRead(msg.ID)
		return m, cmd

	case notifpanel.MarkAllReadMsg:
		cmd := m.markAllRead()
		return m, cmd

	case notifpanel.ViewAllMsg:
		m.changeView(model.ViewNotifications)
		cmd := m.setFocus(focusContent)
		return m, cmd

	case notifpanel.CloseMsg:
		m.notifOpen = false
		return m, nil

	case notifications.MarkReadMsg:
		cmd := m.markRead(msg.ID)
		return m, cmd

	case notifications.MarkAllReadMsg:
		cmd := m.markAllRead()
		return m, cmd

	case settings.CloseMsg:
		m.settingsOpen = false
		if msg.ToggleTheme {
			m.toggleTheme()
		}
		return m, nil

	case helpview.CloseMsg:
		m.helpOpen = false
		return m, nil

	case command.CommandMsg:
		m.commandOpen = false
		cmd := m.executeCommand(command.Command(msg))
		return m, cmd

	case command.CancelMsg:
		m.commandOpen = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateActiveView(msg)
}

// handleKey routes a key to the open overlay, the global bindings or the
// focused pane, in that order.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, m.quit()
	}

	var cmd tea.Cmd
	switch {
	case m.commandOpen:
		m.commandView, cmd = m.commandView.Update(msg)
		return m, cmd

	case m.settingsOpen:
		m.settingsView, cmd = m.settingsView.Update(msg)
		return m, cmd

	case m.helpOpen:
		m.helpView, cmd = m.helpView.Update(msg)
		return m, cmd
	}

	// The chat input takes every printable key while it has focus.
	typing := m.focus == focusContent && router.Content(m.router.Current()) == router.ContentChat
	if typing {
		switch msg.String() {
		case "tab":
			cmd := m.setFocus(focusSidebar)
			return m, cmd
		case "esc":
			if m.notifOpen {
				m.notifOpen = false
				return m, nil
			}
			cmd := m.setFocus(focusSidebar)
			return m, cmd
		}
		if !m.notifOpen {
			return m.updateActiveView(msg)
		}
	}

	switch msg.String() {
	case "n":
		m.notifOpen = !m.notifOpen
		m.panelView.Reset()
		return m, nil

	case "t":
		m.toggleTheme()
		return m, nil
	}

	if m.notifOpen {
		m.panelView, cmd = m.panelView.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "tab":
		if m.focus == focusSidebar {
			cmd := m.setFocus(focusContent)
			return m, cmd
		}
		cmd := m.setFocus(focusSidebar)
		return m, cmd

	case "esc":
		if m.focus == focusContent {
			cmd := m.setFocus(focusSidebar)
			return m, cmd
		}

	case ",":
		cmd := m.openSettings()
		return m, cmd

	case "?":
		m.helpOpen = true
		return m, nil

	case ":":
		m.commandOpen = true
		cmd := m.commandView.Focus()
		return m, cmd

	case "L":
		cmd := m.logout()
		return m, cmd

	case "q":
		if m.focus == focusSidebar {
			return m, m.quit()
		}
	}

	return m.updateActiveView(msg)
}

// updateActiveView dispatches the message to the focused pane.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.focus == focusSidebar {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.sidebarView, cmd = m.sidebarView.Update(msg)
			return m, cmd
		}
	}

	switch router.Content(m.router.Current()) {
	case router.ContentChat:
		m.chatView, cmd = m.chatView.Update(msg)
	case router.ContentUsers:
		m.usersView, cmd = m.usersView.Update(msg)
	case router.ContentSupport:
		m.supportView, cmd = m.supportView.Update(msg)
	case router.ContentNotifications:
		m.notifView, cmd = m.notifView.Update(msg)
	case router.ContentCRM, router.ContentERP, router.ContentPlaceholder:
		// static content
	}

	return m, cmd
}

// resize propagates the terminal size to every view.
func (m *Model) resize(width, height int) {
	m.layout = ui.NewLayout(width, height, sidebar.Width)
	m.ready = true

	w := m.layout.ContentWidth()
	h := m.layout.ContentHeight()

	m.loginView.SetSize(width, height)
	m.sidebarView.SetSize(height)
	m.notifView.SetSize(w, h)
	m.settingsView.SetSize(w)
	m.chatView.SetSize(w, h)
	m.usersView.SetSize(w, h)
	m.supportView.SetSize(w, h)
	m.crmView.SetSize(w, h)
	m.erpView.SetSize(w, h)
	m.dashView.SetSize(w, h)
	m.helpView.SetSize(w, h)
	m.commandView.SetSize(w, h)
}

// View renders the login screen or the full shell.
func (m Model) View() string {
	if !m.ready {
		return "Cargando..."
	}

	if !m.session.Authenticated() {
		return m.loginView.View()
	}

	current := m.router.Current()
	header := m.layout.RenderHeader(ui.Header{
		Title:    router.DisplayTitle(current),
		Subtitle: router.Subtitle(m.now()),
		Actions:  m.headerActions(),
	})

	return m.layout.RenderWithFrame(
		m.sidebarView.View(),
		header,
		m.renderContent(),
		m.layout.RenderStatusBar(m.keyHints()),
	)
}

// headerActions renders the right side of the top bar: theme switch,
// bell, settings and the user badge.
func (m Model) headerActions() string {
	themeIcon := "☀ claro"
	if m.theme.Dark() {
		themeIcon = "☾ oscuro"
	}

	bell := "🔔"
	if unread := m.feed.UnreadCount(); unread > 0 {
		bell += " " + theme.UnreadDotStyle.Render(fmt.Sprintf("%d", unread))
	}

	user, _ := m.session.User()
	badge := theme.BadgeStyle.Render(m.session.Initial()) + " " + user.Name

	sep := theme.DimmedStyle.Render(" │ ")
	return themeIcon + sep + bell + sep + "⚙" + sep + badge
}

// renderContent returns the rendered string for the active view, or the
// open overlay.
func (m Model) renderContent() string {
	switch {
	case m.helpOpen:
		return m.layout.PlaceCenter(m.helpView.View())
	case m.commandOpen:
		return m.layout.PlaceCenter(m.commandView.View())
	case m.settingsOpen:
		return m.layout.PlaceCenter(m.settingsView.View())
	case m.notifOpen:
		return m.layout.PlaceTopRight(m.panelView.View())
	}

	switch router.Content(m.router.Current()) {
	case router.ContentChat:
		return m.chatView.View()
	case router.ContentUsers:
		return m.usersView.View()
	case router.ContentCRM:
		return m.crmView.View()
	case router.ContentERP:
		return m.erpView.View()
	case router.ContentSupport:
		return m.supportView.View()
	case router.ContentNotifications:
		return m.notifView.View()
	default:
		return m.dashView.View()
	}
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	switch {
	case m.commandOpen:
		return "enter ejecutar | esc cancelar"
	case m.settingsOpen:
		return "←/→ cambiar | enter guardar | esc cerrar"
	case m.helpOpen:
		return "? cerrar ayuda"
	case m.notifOpen:
		return "j/k mover | enter leer | a leer todo | v ver todas | n/esc cerrar"
	case m.focus == focusSidebar:
		return "j/k mover | enter abrir | tab contenido | n notificaciones | t tema | , ajustes | ? ayuda | q salir"
	}

	switch router.Content(m.router.Current()) {
	case router.ContentChat:
		return "enter enviar | tab/esc menú"
	case router.ContentNotifications:
		return "j/k mover | enter leer | a leer todo | f filtrar | tab menú"
	default:
		return "j/k mover | tab menú | n notificaciones | t tema | ? ayuda"
	}
}
