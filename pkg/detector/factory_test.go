package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xfocus/xfocus/pkg/client"
	"github.com/xfocus/xfocus/pkg/integrations/x11"
)

func setSession(t *testing.T, sessionType, waylandDisplay, display string) {
	t.Helper()
	t.Setenv("XDG_SESSION_TYPE", sessionType)
	t.Setenv("WAYLAND_DISPLAY", waylandDisplay)
	t.Setenv("DISPLAY", display)
}

func TestDetectDisplayServer(t *testing.T) {
	tests := []struct {
		name           string
		sessionType    string
		waylandDisplay string
		display        string
		want           string
	}{
		{"wayland session", "wayland", "", "", Wayland},
		{"wayland display only", "", "wayland-0", "", Wayland},
		{"wayland wins over display", "", "wayland-0", ":0", Wayland},
		{"x11 session", "x11", "", "", X11},
		{"display only", "", "", ":1", X11},
		{"nothing set", "", "", "", Unknown},
		{"tty session", "tty", "", "", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setSession(t, tt.sessionType, tt.waylandDisplay, tt.display)
			assert.Equal(t, tt.want, DetectDisplayServer())
		})
	}
}

func TestNewWaylandWithoutDisplay(t *testing.T) {
	setSession(t, "wayland", "wayland-0", "")

	c := New(nil)
	assert.IsType(t, client.Unsupported{}, c)
	assert.False(t, c.Supported())
}

func TestNewXWayland(t *testing.T) {
	setSession(t, "wayland", "wayland-0", ":99")

	c := New(nil)
	assert.IsType(t, &x11.Client{}, c)
	assert.False(t, c.(*x11.Client).Connected(), "connect is deferred to the first query")
}

func TestNewX11(t *testing.T) {
	setSession(t, "x11", "", ":99")
	assert.IsType(t, &x11.Client{}, New(nil))
}

func TestNewUnknownUsesX11(t *testing.T) {
	setSession(t, "", "", "")
	assert.IsType(t, &x11.Client{}, New(nil))
}
