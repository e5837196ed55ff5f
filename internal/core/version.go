package core

// Version is overridden at build time with -ldflags "-X github.com/rprtr258/mng/internal/core.Version=..."
var Version = "dev"
