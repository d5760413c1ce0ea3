package help

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/boosted-portal/internal/keys"
	"github.com/nhle/boosted-portal/internal/testutil"
)

func TestCloseKeys(t *testing.T) {
	m := New(keys.DefaultKeyMap(), 100, 30)
	for _, k := range []string{"esc", "?"} {
		_, cmd := m.Update(testutil.Key(k))
		require.NotNil(t, cmd)
		assert.Equal(t, CloseMsg{}, cmd())
	}

	_, cmd := m.Update(testutil.Key("x"))
	assert.Nil(t, cmd)
}

func TestViewListsBindings(t *testing.T) {
	out := New(keys.DefaultKeyMap(), 120, 30).View()
	assert.Contains(t, out, "Atajos de teclado")
	assert.Contains(t, out, "notifications")
}
