package x11

import (
	"errors"

	"github.com/jezek/xgb/xproto"
)

type fakeEnv map[string]string

func (e fakeEnv) LookupEnv(key string) (string, bool) {
	v, ok := e[key]
	return v, ok
}

func (e fakeEnv) Setenv(key, value string) error {
	e[key] = value
	return nil
}

type failingEnv struct{}

func (failingEnv) LookupEnv(string) (string, bool) { return "", false }

func (failingEnv) Setenv(string, string) error { return errors.New("read-only environment") }

// fakeTransport serves a window tree from maps. A window missing from parents
// makes QueryParent fail, like XQueryTree on a destroyed window.
type fakeTransport struct {
	focus    xproto.Window
	focusErr error
	// answers are served before focus/focusErr, one per InputFocus call
	answers []focusAnswer
	hints    map[xproto.Window]ClassHint
	parents  map[xproto.Window]xproto.Window

	focusCalls  int
	hintCalls   []xproto.Window
	parentCalls []xproto.Window
	closeCalls  int
}

func newFakeTransport(focus xproto.Window) *fakeTransport {
	return &fakeTransport{
		focus:   focus,
		hints:   make(map[xproto.Window]ClassHint),
		parents: make(map[xproto.Window]xproto.Window),
	}
}

type focusAnswer struct {
	window xproto.Window
	err    error
}

func (f *fakeTransport) InputFocus() (xproto.Window, error) {
	f.focusCalls++
	if len(f.answers) > 0 {
		a := f.answers[0]
		f.answers = f.answers[1:]
		return a.window, a.err
	}
	if f.focusErr != nil {
		return 0, f.focusErr
	}
	return f.focus, nil
}

func (f *fakeTransport) ClassHint(w xproto.Window) (ClassHint, bool) {
	f.hintCalls = append(f.hintCalls, w)
	hint, ok := f.hints[w]
	return hint, ok
}

func (f *fakeTransport) QueryParent(w xproto.Window) (xproto.Window, bool) {
	f.parentCalls = append(f.parentCalls, w)
	parent, ok := f.parents[w]
	return parent, ok
}

func (f *fakeTransport) Close() {
	f.closeCalls++
}

func (f *fakeTransport) resetCounters() {
	f.focusCalls = 0
	f.hintCalls = nil
	f.parentCalls = nil
}

// fakeDialer hands out the same transport and counts dials
type fakeDialer struct {
	transport *fakeTransport
	err       error
	displays  []string
}

func (d *fakeDialer) dial(display string) (Transport, error) {
	d.displays = append(d.displays, display)
	if d.err != nil {
		return nil, d.err
	}
	return d.transport, nil
}
