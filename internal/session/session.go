// Package session holds the signed-in state of the portal. Login performs
// no credential check; it only records who is using the shell.
package session

import (
	"strings"
	"unicode/utf8"

	"github.com/nhle/boosted-portal/internal/model"
)

// emailDomain is appended to the lower-cased display name.
const emailDomain = "@boosted.com"

// State is the authentication state.
type State int

const (
	Unauthenticated State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

// Controller owns the authentication flag and the current user. The user
// is non-nil exactly when the controller is authenticated.
type Controller struct {
	user *model.User
}

// New returns a signed-out controller.
func New() Controller {
	return Controller{}
}

// Login signs in name. It always succeeds.
func (c *Controller) Login(name string) model.User {
	u := model.User{
		Name:  name,
		Email: strings.ToLower(name) + emailDomain,
		Role:  model.RoleAdmin,
	}
	c.user = &u
	return u
}

// Logout clears the user and the authenticated flag together.
func (c *Controller) Logout() {
	c.user = nil
}

// State reports the current authentication state.
func (c Controller) State() State {
	if c.user != nil {
		return Authenticated
	}
	return Unauthenticated
}

// Authenticated reports whether a user is signed in.
func (c Controller) Authenticated() bool {
	return c.user != nil
}

// User returns the signed-in user.
func (c Controller) User() (model.User, bool) {
	if c.user == nil {
		return model.User{}, false
	}
	return *c.user, true
}

// Initial returns the first letter of the user's name for the avatar
// badge, or "A" when there is none.
func (c Controller) Initial() string {
	if c.user == nil || c.user.Name == "" {
		return "A"
	}
	r, _ := utf8.DecodeRuneInString(c.user.Name)
	return string(r)
}
