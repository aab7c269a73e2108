package detector

import (
	"os"

	"go.uber.org/zap"

	"github.com/xfocus/xfocus/pkg/client"
	"github.com/xfocus/xfocus/pkg/integrations/x11"
)

const (
	Wayland = "wayland"
	X11     = "x11"
	Unknown = "unknown"
)

// New picks the client variant for the current session. Wayland sessions
// without XWayland get the unsupported variant.
func New(logger *zap.Logger) client.Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	server := DetectDisplayServer()
	if server == Wayland && os.Getenv(x11.DisplayEnv) == "" {
		logger.Info("wayland session without DISPLAY, focus lookup unsupported")
		return client.Unsupported{}
	}

	logger.Debug("using x11 client", zap.String("display_server", server))
	return x11.NewClient(logger)
}

func DetectDisplayServer() string {
	sessionType := os.Getenv("XDG_SESSION_TYPE")
	waylandDisplay := os.Getenv("WAYLAND_DISPLAY")
	x11Display := os.Getenv(x11.DisplayEnv)

	if sessionType == Wayland || waylandDisplay != "" {
		return Wayland
	}

	if sessionType == X11 || x11Display != "" {
		return X11
	}

	return Unknown
}
