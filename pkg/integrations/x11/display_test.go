package x11

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDisplay(t *testing.T) {
	tests := []struct {
		name      string
		env       fakeEnv
		expected  Endpoint
		exportsTo string
	}{
		{
			name:      "display set",
			env:       fakeEnv{DisplayEnv: ":1"},
			expected:  Endpoint{Value: ":1"},
			exportsTo: ":1",
		},
		{
			name:      "remote display",
			env:       fakeEnv{DisplayEnv: "localhost:10.0"},
			expected:  Endpoint{Value: "localhost:10.0"},
			exportsTo: "localhost:10.0",
		},
		{
			name:      "display set but empty",
			env:       fakeEnv{DisplayEnv: ""},
			expected:  Endpoint{Value: ""},
			exportsTo: "",
		},
		{
			name:      "display unset",
			env:       fakeEnv{},
			expected:  Endpoint{Value: DefaultDisplay, Defaulted: true},
			exportsTo: DefaultDisplay,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ep, err := ResolveDisplay(tt.env)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ep)

			value, ok := tt.env[DisplayEnv]
			assert.True(t, ok)
			assert.Equal(t, tt.exportsTo, value)
		})
	}
}

func TestResolveDisplaySetenvError(t *testing.T) {
	ep, err := ResolveDisplay(failingEnv{})
	assert.Error(t, err)
	assert.Equal(t, Endpoint{Value: DefaultDisplay, Defaulted: true}, ep)
}
