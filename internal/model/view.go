package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownView is returned when a string does not name a ViewState.
var ErrUnknownView = errors.New("unknown view")

// ViewState identifies which business view is active in the shell.
type ViewState string

const (
	ViewLogin         ViewState = "LOGIN"
	ViewDashboard     ViewState = "DASHBOARD"
	ViewUsers         ViewState = "USERS"
	ViewSupport       ViewState = "SUPPORT"
	ViewChatbot       ViewState = "CHATBOT"
	ViewNotifications ViewState = "NOTIFICATIONS"
	ViewCRM           ViewState = "CRM"
	ViewERP           ViewState = "ERP"
)

// AllViewStates returns every view identifier in declaration order.
func AllViewStates() []ViewState {
	return []ViewState{
		ViewLogin,
		ViewDashboard,
		ViewUsers,
		ViewSupport,
		ViewChatbot,
		ViewNotifications,
		ViewCRM,
		ViewERP,
	}
}

// ParseViewState resolves a view identifier case-insensitively.
func ParseViewState(s string) (ViewState, error) {
	v := ViewState(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range AllViewStates() {
		if v == known {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownView, s)
}
