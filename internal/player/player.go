// Package player opens media files with the desktop's default application.
package player

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"stitch/internal/apperr"
)

// Open hands path to the OS default handler and returns once the handler
// has been launched.
func Open(ctx context.Context, path string) error {
	if _, err := os.Stat(path); err != nil {
		return apperr.Validationf("cannot play %s: %v", path, err)
	}

	name, args := commandFor(runtime.GOOS, path)
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return apperr.Operation(fmt.Sprintf("open %s with %s", path, name), strings.TrimSpace(stderr.String()), err)
	}
	return nil
}

func commandFor(goos, path string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}
	default:
		return "xdg-open", []string{path}
	}
}
