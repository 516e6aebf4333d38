package shell

import (
	"errors"
	"os"
	"runtime"
)

// ErrDisplayUnavailable signals that no windowing subsystem is reachable.
// It is fatal: the process reports it and exits non-zero.
var ErrDisplayUnavailable = errors.New("display unavailable: no graphical session reachable")

// sessionAvailable is a seam so tests can force the headless path.
var sessionAvailable = func() bool {
	return sessionReachable(runtime.GOOS, os.Getenv)
}

// sessionReachable reports whether a graphical session is reachable for
// the given platform. X11 and Wayland advertise their sockets through the
// session environment; windows and darwin always have a display server.
func sessionReachable(goos string, getenv func(string) string) bool {
	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd":
		return getenv("DISPLAY") != "" || getenv("WAYLAND_DISPLAY") != ""
	default:
		return true
	}
}
