package app

import (
	"fmt"
	"io"
	"runtime"
)

// Version information, set at build time with
// -ldflags "-X github.com/agbru/primer/internal/app.Version=v1.0.0".
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// PrintVersion writes the version banner of program to out.
func PrintVersion(out io.Writer, program string) {
	fmt.Fprintf(out, "%s %s (commit %s, built %s, %s %s/%s)\n",
		program, Version, Commit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
