package client

import "sync"

// Client reports the application that currently holds keyboard focus.
// Each window system gets its own implementation; the caller picks one at startup.
type Client interface {
	// Supported reports whether the client can resolve focus right now
	Supported() bool

	// CurrentApplication returns the focused application's name, or false when
	// nothing could be resolved
	CurrentApplication() (string, bool)
}

// Unsupported is the client used when no supported window system is detected
type Unsupported struct{}

func (Unsupported) Supported() bool { return false }

func (Unsupported) CurrentApplication() (string, bool) { return "", false }

// Serialized wraps c so that calls from several goroutines are executed one at a time.
// Implementations hold a single display connection which is not safe for concurrent use.
func Serialized(c Client) Client {
	if s, ok := c.(*serialized); ok {
		return s
	}
	return &serialized{inner: c}
}

type serialized struct {
	mu    sync.Mutex
	inner Client
}

func (s *serialized) Supported() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Supported()
}

func (s *serialized) CurrentApplication() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.CurrentApplication()
}
