// Package version carries the build version of glustertopo. GitSHA is set at
// link time with -ldflags "-X .../version.GitSHA=<sha>".
package version

import (
	"fmt"
	"io"
	"runtime"
)

// Version and GitSHA of the build
var (
	Version = "0.1.0"
	GitSHA  = ""
)

// Dump writes all version information to w
func Dump(w io.Writer) {
	fmt.Fprintf(w, "glustertopo version: %s\n", Version)
	fmt.Fprintf(w, "git SHA: %s\n", GitSHA)
	fmt.Fprintf(w, "go version: %s\n", runtime.Version())
	fmt.Fprintf(w, "go OS/arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}
