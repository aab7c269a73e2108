package x11

import "os"

const (
	// DisplayEnv is the environment variable naming the X server to connect to
	DisplayEnv = "DISPLAY"

	// DefaultDisplay is used when DisplayEnv is unset
	DefaultDisplay = ":0"
)

// Env is the slice of the process environment the client reads and writes
type Env interface {
	LookupEnv(key string) (string, bool)
	Setenv(key, value string) error
}

type osEnv struct{}

func (osEnv) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }

func (osEnv) Setenv(key, value string) error { return os.Setenv(key, value) }

// Endpoint is the display the client will dial
type Endpoint struct {
	Value     string
	Defaulted bool // DISPLAY was unset and DefaultDisplay was written back
}

// ResolveDisplay picks the display endpoint from env. When DISPLAY is unset the
// default is written back so that child processes see the same display.
func ResolveDisplay(env Env) (Endpoint, error) {
	if value, ok := env.LookupEnv(DisplayEnv); ok {
		return Endpoint{Value: value}, nil
	}

	ep := Endpoint{Value: DefaultDisplay, Defaulted: true}
	if err := env.Setenv(DisplayEnv, DefaultDisplay); err != nil {
		return ep, err
	}
	return ep, nil
}
