package types

// Version is the application version, overridden at build time via
// -ldflags "-X github.com/m-mizutani/bulkget/pkg/domain/types.Version=..."
var Version = "v0.0.1"
