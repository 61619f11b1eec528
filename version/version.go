// Package version provides build version information for the client,
// used to identify it to the remote API.
//
// Version is set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/carrot-e/killbill-client-go/version.Version=1.0.0"
package version

import (
	"fmt"
	"runtime/debug"
)

// Version is set at build time using -ldflags. Defaults to "dev".
var Version = "dev"

// UserAgent returns the User-Agent string sent with every request.
func UserAgent() string {
	return fmt.Sprintf("killbill-client-go/%s", Version)
}

// GoVersion returns the Go toolchain version the client was built with.
func GoVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return ""
}
