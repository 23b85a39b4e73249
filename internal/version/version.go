package version

// Version is overridden at build time with
// -ldflags "-X github.com/bnema/desktop-switcher/internal/version.Version=...".
var Version = "dev"
