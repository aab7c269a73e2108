package x11

import (
	"github.com/jezek/xgb/xproto"
	"go.uber.org/zap"

	"github.com/xfocus/xfocus/pkg/client"
)

// FocusProxyClass is the class hint some toolkits (notably the JDK's AWT) set on
// an invisible window that holds focus for the real top-level window.
const FocusProxyClass = "FocusProxy"

// maxWalk caps the ancestor walk
const maxWalk = 256

// Client resolves the focused application on an X11 display.
// It is not safe for concurrent use; wrap it with client.Serialized when shared.
type Client struct {
	logger    *zap.Logger
	env       Env
	dial      Dialer
	transport Transport
}

var _ client.Client = (*Client)(nil)

// NewClient creates an X11 client. The connection is opened on first use.
func NewClient(logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		logger: logger.Named("x11"),
		env:    osEnv{},
		dial:   dialXGB,
	}
}

// Connect opens the display connection unless one is already held.
// A failure is logged with hints and leaves the client unconnected; the
// error is returned for callers that want it, but Supported ignores it.
func (c *Client) Connect() error {
	if c.transport != nil {
		return nil
	}

	ep, err := ResolveDisplay(c.env)
	if ep.Defaulted {
		c.logger.Info("$DISPLAY is not set. Defaulting to DISPLAY=" + DefaultDisplay)
	}
	if err != nil {
		c.logger.Warn("failed to export default display", zap.Error(err))
	}

	transport, err := c.dial(ep.Value)
	if err != nil {
		c.logger.Warn("failed to connect to X11",
			zap.String("display", ep.Value),
			zap.Error(err),
			zap.String("hint", `if you saw "No protocol specified", try running `+"`xhost +SI:localuser:root`"),
			zap.String("check", "make sure `echo $DISPLAY` outputs "+ep.Value),
		)
		return err
	}

	c.transport = transport
	return nil
}

// Connected reports whether a display connection is held
func (c *Client) Connected() bool {
	return c.transport != nil
}

// Close drops the display connection
func (c *Client) Close() error {
	if c.transport != nil {
		c.transport.Close()
		c.transport = nil
	}
	return nil
}

// Supported reports whether a window currently holds input focus.
// No focused window happens during server startup or while the screen is locked.
func (c *Client) Supported() bool {
	_, ok := c.focused()
	return ok
}

// CurrentApplication returns the WM_CLASS class name of the focused window.
// Focus proxy windows are skipped by walking up to their parents.
func (c *Client) CurrentApplication() (string, bool) {
	w, ok := c.focused()
	if !ok {
		return "", false
	}

	var name string
	var recorded bool
	for i := 0; i < maxWalk; i++ {
		if hint, ok := c.transport.ClassHint(w); ok {
			name = hint.Class
			recorded = true
		}
		if name != FocusProxyClass {
			return name, recorded
		}

		parent, ok := c.transport.QueryParent(w)
		if !ok {
			break
		}
		// the root window has no parent; never ask for its class hint
		if parent == xproto.WindowNone {
			return "", false
		}
		w = parent
	}

	c.logger.Debug("ancestor walk ended on a focus proxy", zap.Uint32("window", uint32(w)))
	return name, recorded
}

// focused connects if needed and queries the focus window once.
// WindowNone is never returned with true.
func (c *Client) focused() (xproto.Window, bool) {
	_ = c.Connect()
	if c.transport == nil {
		return xproto.WindowNone, false
	}
	w := c.focusedWindow()
	return w, w != xproto.WindowNone
}

func (c *Client) focusedWindow() xproto.Window {
	w, err := c.transport.InputFocus()
	if err != nil {
		c.logger.Debug("failed to query input focus", zap.Error(err))
		return xproto.WindowNone
	}
	return w
}
