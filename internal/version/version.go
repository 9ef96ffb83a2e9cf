// Package version holds the application version, overridable at build time with
// -ldflags "-X github.com/ndewijer/FinLedge-Backend/internal/version.Version=...".
package version

var Version = "1.0.0"
