package app

import (
	"fmt"
	"io"
)

// Version is the application version string. Release builds override it:
//
//	go build -ldflags "-X github.com/dataops/profilerun/internal/app.Version=1.2.0"
var Version = "dev"

// HasVersionFlag reports whether the arguments request the version. It is
// checked before normal argument parsing so --version works regardless of
// the working directory contents.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--version", "-version", "-v":
			return true
		}
	}
	return false
}

// PrintVersion writes the version line.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "profilerun %s\n", Version)
}
