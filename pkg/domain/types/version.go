package types

// Version is the application version, overridden at build time with -ldflags.
var Version = "dev"
