package x11

import (
	"bytes"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// wmClassLength is the number of 32-bit units requested for WM_CLASS
const wmClassLength = 1024

// ClassHint is the parsed WM_CLASS property of a window
type ClassHint struct {
	Instance string
	Class    string
}

// Transport is the set of X requests the client needs.
// Every call blocks until the server replies or the connection fails.
type Transport interface {
	// InputFocus returns the window holding keyboard focus
	InputFocus() (xproto.Window, error)

	// ClassHint reads WM_CLASS of w; false means the window has none
	ClassHint(w xproto.Window) (ClassHint, bool)

	// QueryParent returns the parent of w; false means the tree could not be queried.
	// The root window's parent is xproto.WindowNone.
	QueryParent(w xproto.Window) (xproto.Window, bool)

	// Close releases the connection. Calling it more than once is a no-op.
	Close()
}

// Dialer opens a Transport to the given display
type Dialer func(display string) (Transport, error)

// xgbTransport implements Transport with a pure Go XCB connection.
// Every request is checked and its cookie drained with Reply, so failed
// requests come back as errors instead of piling up in the event queue.
type xgbTransport struct {
	conn *xgb.Conn
}

func dialXGB(display string) (Transport, error) {
	conn, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, err
	}
	return &xgbTransport{conn: conn}, nil
}

func (t *xgbTransport) InputFocus() (xproto.Window, error) {
	reply, err := xproto.GetInputFocus(t.conn).Reply()
	if err != nil {
		return xproto.WindowNone, err
	}
	return reply.Focus, nil
}

func (t *xgbTransport) ClassHint(w xproto.Window) (ClassHint, bool) {
	reply, err := xproto.GetProperty(t.conn, false, w, xproto.AtomWmClass, xproto.AtomString, 0, wmClassLength).Reply()
	if err != nil || reply == nil {
		return ClassHint{}, false
	}
	if reply.Type != xproto.AtomString || reply.Format != 8 || reply.ValueLen == 0 {
		return ClassHint{}, false
	}
	return parseClassHint(reply.Value), true
}

func (t *xgbTransport) QueryParent(w xproto.Window) (xproto.Window, bool) {
	reply, err := xproto.QueryTree(t.conn, w).Reply()
	if err != nil || reply == nil {
		return xproto.WindowNone, false
	}
	// the children list is dropped with the reply
	return reply.Parent, true
}

func (t *xgbTransport) Close() {
	if t.conn == nil {
		return
	}
	t.conn.Close()
	t.conn = nil
}

// parseClassHint splits a WM_CLASS value: the instance name up to the first NUL,
// then the class name up to the next NUL. A value without a NUL has an empty class.
func parseClassHint(value []byte) ClassHint {
	var hint ClassHint

	i := bytes.IndexByte(value, 0)
	if i < 0 {
		hint.Instance = string(value)
		return hint
	}
	hint.Instance = string(value[:i])

	rest := value[i+1:]
	if j := bytes.IndexByte(rest, 0); j >= 0 {
		rest = rest[:j]
	}
	hint.Class = string(rest)
	return hint
}
