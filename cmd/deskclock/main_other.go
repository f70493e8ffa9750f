//go:build !linux && !darwin

package main

import "runtime/debug"

func enableCrashForensics() {
	debug.SetTraceback("crash")
}
