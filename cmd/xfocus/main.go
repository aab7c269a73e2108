package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

func main() {
	if err := newRootCmd(newApp()).Execute(); err != nil {
		var code exitCode
		if errors.As(err, &code) {
			os.Exit(int(code))
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// exitCode ends the process with a status and no message
type exitCode int

func (e exitCode) Error() string {
	return fmt.Sprintf("exit status %d", int(e))
}
