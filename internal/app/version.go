package app

// Version is the build version, overridden at link time with
// -ldflags "-X github.com/taskloop/taskloop-backend/internal/app.Version=...".
var Version = "dev"
