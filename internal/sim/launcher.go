// Package sim launches the external pitch simulator binary.
package sim

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Platform selects which simulator build to run.
const (
	PlatformWindows = "windows"
	PlatformMac     = "mac"
)

// Config describes where the simulator builds live and which one to use.
type Config struct {
	Platform    string
	WindowsPath string
	MacPath     string
}

// Launcher runs the simulator as a subprocess with positional arguments.
type Launcher struct {
	platform string
	path     string
}

// New validates the platform selection and resolves the binary path.
func New(cfg Config) (*Launcher, error) {
	switch cfg.Platform {
	case PlatformWindows:
		return &Launcher{platform: cfg.Platform, path: cfg.WindowsPath}, nil
	case PlatformMac:
		return &Launcher{platform: cfg.Platform, path: cfg.MacPath}, nil
	default:
		return nil, fmt.Errorf("unknown sim platform %q", cfg.Platform)
	}
}

// Path returns the resolved simulator binary path.
func (l *Launcher) Path() string {
	return l.path
}

// Launch runs the simulator with the given positional args and waits for it
// to exit. The mac build is chatty on stdout/stderr, so its output is
// discarded; the windows build inherits the session's streams.
func (l *Launcher) Launch(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, l.path, args...)
	if l.platform == PlatformMac {
		cmd.Stdout = io.Discard
		cmd.Stderr = io.Discard
	} else {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run simulator %s: %w", l.path, err)
	}
	return nil
}
