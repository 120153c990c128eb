package constants

// Version is overwritten at build time via -ldflags "-X github.com/highcard-dev/companion/internal.Version=..."
var Version = "0.1.0"

const UserAgent = "companiond"
