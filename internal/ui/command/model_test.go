package command

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/boosted-portal/internal/model"
	"github.com/nhle/boosted-portal/internal/testutil"
)

func TestParse(t *testing.T) {
	cases := map[string]Command{
		"usuarios":       {Kind: KindNavigate, View: model.ViewUsers},
		"  CRM ":         {Kind: KindNavigate, View: model.ViewCRM},
		"erp":            {Kind: KindNavigate, View: model.ViewERP},
		"dashboard":      {Kind: KindNavigate, View: model.ViewDashboard},
		"notificaciones": {Kind: KindNavigate, View: model.ViewNotifications},
		"tema":           {Kind: KindToggleTheme},
		"leer   todo":    {Kind: KindMarkAllRead},
		"logout":         {Kind: KindLogout},
		"quit":           {Kind: KindQuit},
	}
	for in, want := range cases {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseRejects(t *testing.T) {
	for _, in := range []string{"login", "payroll", ""} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrUnknownCommand, in)
	}
}

func TestEnterEmitsCommand(t *testing.T) {
	m := New(80, 10)
	m.Focus()
	for _, k := range testutil.Type("crm") {
		m, _ = m.Update(k)
	}
	_, cmd := m.Update(testutil.Key("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, CommandMsg{Kind: KindNavigate, View: model.ViewCRM}, cmd())
}

func TestEnterUnknownShowsError(t *testing.T) {
	m := New(80, 10)
	m.Focus()
	for _, k := range testutil.Type("zzz") {
		m, _ = m.Update(k)
	}
	m, cmd := m.Update(testutil.Key("enter"))
	assert.Nil(t, cmd)
	assert.ErrorIs(t, m.err, ErrUnknownCommand)
	assert.Contains(t, m.View(), "unknown command")
}

func TestEscCancels(t *testing.T) {
	m := New(80, 10)
	_, cmd := m.Update(testutil.Key("esc"))
	require.NotNil(t, cmd)
	assert.Equal(t, CancelMsg{}, cmd())
}

func TestSuggestionsSortedAndUnique(t *testing.T) {
	got := suggestions()
	assert.True(t, slices.IsSorted(got), "%v", got)
	assert.Equal(t, len(got), len(slices.Compact(slices.Clone(got))))
	assert.Equal(t, got, suggestions())

	assert.Contains(t, got, "users")
	assert.NotContains(t, got, strings.ToLower(string(model.ViewLogin)))
	for _, s := range got {
		_, err := Parse(s)
		assert.NoError(t, err, s)
	}
}
