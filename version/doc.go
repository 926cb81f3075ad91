// Package version provides build version information for diagkit.
//
// Version and git commit are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/diagkit/version.Version=1.0.0"
//
// When not set, the commit is recovered from the embedded build info.
package version
