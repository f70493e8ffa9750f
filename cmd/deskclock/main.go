package main

import (
	"runtime"

	"github.com/bnema/deskclock/internal/cli/cmd"
	"github.com/bnema/deskclock/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func init() {
	// SDL must be driven from the main OS thread, and cobra runs every
	// command on the main goroutine.
	runtime.LockOSThread()
}

func main() {
	enableCrashForensics()

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	cmd.Execute()
}
