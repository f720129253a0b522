// Package build holds build-time information.
package build

// Version is the explorer version. Release builds set it with
// -ldflags "-X go.trai.ch/explorer/internal/build.Version=<tag>".
var Version = "dev"
