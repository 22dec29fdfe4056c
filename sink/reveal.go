package sink

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/GiGurra/cmder"
)

const revealTimeout = 10 * time.Second

// revealCommand returns the file browser invocation for goos.
func revealCommand(goos, dir string) ([]string, error) {
	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd":
		return []string{"xdg-open", dir}, nil
	case "darwin":
		return []string{"open", dir}, nil
	case "windows":
		return []string{"explorer", dir}, nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}

// RevealDir opens dir in the system file browser.
func RevealDir(ctx context.Context, dir string) error {
	args, err := revealCommand(runtime.GOOS, dir)
	if err != nil {
		return err
	}

	result := cmder.New(args...).
		WithAttemptTimeout(revealTimeout).
		Run(ctx)
	// explorer exits 1 even when the window opened.
	if result.Err != nil && runtime.GOOS != "windows" {
		return fmt.Errorf("failed to open %s: %w", dir, result.Err)
	}
	return nil
}
