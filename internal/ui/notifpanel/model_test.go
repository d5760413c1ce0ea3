package notifpanel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/boosted-portal/internal/keys"
	"github.com/nhle/boosted-portal/internal/notify"
	"github.com/nhle/boosted-portal/internal/testutil"
)

func newPanel() Model {
	m := New(keys.DefaultKeyMap())
	m.SetFeed(notify.Seed())
	return m
}

func TestMarkReadUnderCursor(t *testing.T) {
	m := newPanel()

	m, _ = m.Update(testutil.Key("down"))
	_, cmd := m.Update(testutil.Key("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, MarkReadMsg{ID: "2"}, cmd())
}

func TestActions(t *testing.T) {
	m := newPanel()

	_, cmd := m.Update(testutil.Key("a"))
	assert.Equal(t, MarkAllReadMsg{}, cmd())

	_, cmd = m.Update(testutil.Key("v"))
	assert.Equal(t, ViewAllMsg{}, cmd())

	_, cmd = m.Update(testutil.Key("esc"))
	assert.Equal(t, CloseMsg{}, cmd())
}

func TestEmptyFeed(t *testing.T) {
	m := New(keys.DefaultKeyMap())

	m, cmd := m.Update(testutil.Key("enter"))
	assert.Nil(t, cmd)
	m, _ = m.Update(testutil.Key("down"))
	assert.Contains(t, m.View(), "No tienes notificaciones")
}

func TestSetFeedClampsCursor(t *testing.T) {
	m := newPanel()
	for i := 0; i < 4; i++ {
		m, _ = m.Update(testutil.Key("j"))
	}
	m.SetFeed(notify.Seed()[:2])

	_, cmd := m.Update(testutil.Key("enter"))
	assert.Equal(t, MarkReadMsg{ID: "2"}, cmd())
}

func TestViewShowsUnreadCount(t *testing.T) {
	m := newPanel()
	assert.Contains(t, m.View(), "2 nuevas")

	m.SetFeed(notify.Seed().MarkAllRead())
	assert.NotContains(t, m.View(), "nuevas")
}
