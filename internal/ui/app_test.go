package ui

import (
	"net/http"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/retro-board/internal/boardtest"
	"github.com/ytget/retro-board/internal/config"
	"github.com/ytget/retro-board/internal/logging"
	"github.com/ytget/retro-board/internal/model"
)

func newTestApp(t *testing.T, serverURL string) *App {
	t.Helper()
	logging.Silence()
	fyneApp := test.NewApp()
	w := fyneApp.NewWindow("retro")
	t.Cleanup(w.Close)

	return NewApp(fyneApp, w, &config.Config{
		ServerURL:      serverURL,
		PollInterval:   time.Hour,
		RequestTimeout: time.Second,
	})
}

func TestApp_IncompleteIdentityShowsJoinForm(t *testing.T) {
	a := newTestApp(t, "http://127.0.0.1:1")

	a.Start(model.Identity{AccessCode: "ABC123"})

	assert.Nil(t, a.Session())
	require.NotNil(t, a.joinForm)
	assert.Equal(t, a.joinForm.Content(), a.window.Content())
}

func TestApp_OpenBoardJoinsAndShutdownStops(t *testing.T) {
	srv := boardtest.New(t)
	a := newTestApp(t, srv.URL)

	a.Start(model.Identity{AccessCode: srv.AccessCode, Name: "Al"})

	session := a.Session()
	require.NotNil(t, session)
	assert.Nil(t, a.joinForm)

	require.Eventually(t, func() bool {
		return len(srv.Requests(http.MethodGet, "/api/board")) > 0
	}, 2*time.Second, 10*time.Millisecond)
	assert.Len(t, srv.Requests(http.MethodPost, "/api/join"), 1)

	a.Shutdown()
	assert.Nil(t, a.Session())
	require.Eventually(t, session.Stopped, time.Second, 10*time.Millisecond)
}

func TestApp_ServerOverrideFromSettings(t *testing.T) {
	srv := boardtest.New(t)
	a := newTestApp(t, "http://127.0.0.1:1")
	a.settings.SetServerURL(srv.URL + "/")

	a.OpenBoard(model.Identity{AccessCode: srv.AccessCode, Name: "Bo"})
	t.Cleanup(a.Shutdown)

	require.Eventually(t, func() bool {
		return len(srv.Requests(http.MethodPost, "/api/join")) == 1
	}, 2*time.Second, 10*time.Millisecond)
}
