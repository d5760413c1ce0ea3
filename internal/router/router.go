// Package router tracks the active portal view and maps it to the header
// title and the content component to mount.
package router

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nhle/boosted-portal/internal/model"
)

// ContentKind names the content component mounted for a view.
type ContentKind int

const (
	ContentPlaceholder ContentKind = iota
	ContentChat
	ContentUsers
	ContentCRM
	ContentERP
	ContentSupport
	ContentNotifications
)

// Router holds the single active view.
type Router struct {
	current model.ViewState
}

// New returns a router starting on the assistant chat.
func New() Router {
	return Router{current: model.ViewChatbot}
}

// NewAt returns a router starting on v.
func NewAt(v model.ViewState) Router {
	return Router{current: v}
}

// Current returns the active view.
func (r Router) Current() model.ViewState {
	return r.current
}

// Change replaces the active view, even when v is already active.
func (r *Router) Change(v model.ViewState) {
	r.current = v
}

// Title returns the header title for v. Views without a dedicated title
// fall back to the lower-cased identifier.
func Title(v model.ViewState) string {
	switch v {
	case model.ViewChatbot:
		return "Asistente IA"
	case model.ViewUsers:
		return "Gestión de Usuarios"
	case model.ViewSupport:
		return "Centro de Soporte"
	case model.ViewNotifications:
		return "Notificaciones"
	case model.ViewCRM:
		return "CRM Boosted"
	default:
		return strings.ToLower(string(v))
	}
}

var titleCaser = cases.Title(language.Spanish, cases.NoLower)

// DisplayTitle is Title with each word capitalized, as the header shows it.
func DisplayTitle(v model.ViewState) string {
	return titleCaser.String(Title(v))
}

// Content returns the component mounted for v. Every identifier must be
// listed; an unlisted one panics instead of silently showing the placeholder.
func Content(v model.ViewState) ContentKind {
	switch v {
	case model.ViewChatbot:
		return ContentChat
	case model.ViewUsers:
		return ContentUsers
	case model.ViewCRM:
		return ContentCRM
	case model.ViewERP:
		return ContentERP
	case model.ViewSupport:
		return ContentSupport
	case model.ViewNotifications:
		return ContentNotifications
	case model.ViewDashboard, model.ViewLogin:
		return ContentPlaceholder
	}
	panic(fmt.Sprintf("router: no content for view %q", v))
}

var (
	weekdays = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}
	months   = [...]string{
		"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
	}
)

// Subtitle renders now as a long Spanish date, e.g. "viernes, 16 de octubre".
func Subtitle(now time.Time) string {
	return fmt.Sprintf(
		"%s, %d de %s",
		weekdays[now.Weekday()],
		now.Day(),
		months[now.Month()-1],
	)
}
