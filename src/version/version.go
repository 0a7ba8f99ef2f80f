package version

// Version is set at link time with
// -ldflags "-X nimbus/src/version.Version=<tag>".
var Version = "0.1.0-dev"
