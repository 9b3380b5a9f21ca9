package app

import (
	"bytes"
	"log/slog"
	"testing"

	"contact-manager/appinterface"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggedManager_Forwards(t *testing.T) {
	var buf bytes.Buffer
	inner := NewApp(ExactName{})
	m := NewLoggedManager(inner, newTestLogger(&buf))

	m.AddContact(ana)
	m.AddContact(bea)
	assert.Equal(t, inner.ListContacts(), m.ListContacts())

	found, err := m.SearchContacts("bea")
	require.NoError(t, err)
	assert.Equal(t, []appinterface.Contact{bea}, found)

	m.RemoveContact("Ana")
	assert.Equal(t, []string{bea.String()}, inner.ListContacts())

	m.SetSearchStrategy(NameContains{})
	found, err = inner.SearchContacts("e")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	out := buf.String()
	assert.Contains(t, out, `msg="adding contact"`)
	assert.Contains(t, out, "name=Ana")
	assert.Contains(t, out, `msg="removing contact"`)
	assert.Contains(t, out, "component=manager")
}

func TestLoggedManager_SearchError(t *testing.T) {
	var buf bytes.Buffer
	m := NewLoggedManager(NewApp(nil), newTestLogger(&buf))

	_, err := m.SearchContacts("Ana")
	assert.ErrorIs(t, err, ErrNoSearchStrategy)
	assert.Contains(t, buf.String(), `msg="search failed"`)
}
