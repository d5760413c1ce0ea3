package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/boosted-portal/internal/model"
)

func TestInitialState(t *testing.T) {
	c := New()
	assert.Equal(t, Unauthenticated, c.State())
	assert.False(t, c.Authenticated())

	_, ok := c.User()
	assert.False(t, ok)
	assert.Equal(t, "A", c.Initial())
}

func TestLoginLogout(t *testing.T) {
	c := New()
	c.Login("Ana")

	require.True(t, c.Authenticated())
	assert.Equal(t, Authenticated, c.State())

	u, ok := c.User()
	require.True(t, ok)
	assert.Equal(t, model.User{Name: "Ana", Email: "ana@boosted.com", Role: "Admin"}, u)
	assert.Equal(t, "A", c.Initial())

	c.Logout()
	assert.False(t, c.Authenticated())
	assert.Equal(t, Unauthenticated, c.State())
	_, ok = c.User()
	assert.False(t, ok)
}

func TestLoginAnyName(t *testing.T) {
	c := New()
	u := c.Login("Íñigo López")
	assert.Equal(t, "íñigo lópez@boosted.com", u.Email)
	assert.Equal(t, model.RoleAdmin, u.Role)
	assert.Equal(t, "Í", c.Initial())
}

func TestLoginCycle(t *testing.T) {
	c := New()
	for _, name := range []string{"Ana", "Luis", "Marta"} {
		c.Login(name)
		u, ok := c.User()
		require.True(t, ok)
		assert.Equal(t, name, u.Name)
		c.Logout()
		assert.False(t, c.Authenticated())
	}
}

func TestUserIsACopy(t *testing.T) {
	c := New()
	c.Login("Ana")
	u, _ := c.User()
	u.Name = "Eve"

	again, _ := c.User()
	assert.Equal(t, "Ana", again.Name)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "authenticated", Authenticated.String())
	assert.Equal(t, "unauthenticated", Unauthenticated.String())
}
