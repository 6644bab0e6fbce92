// Package version holds the version of the binaries, set at build time.
package version

// VERSION is the version of the binary. Override it with
//   go build -ldflags "-X github.com/element-hq/ess-helm-deployables/pkg/version.VERSION=v1.2.3"
var VERSION = "UNKNOWN"
