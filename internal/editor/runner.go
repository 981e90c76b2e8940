package editor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	"stitch/internal/apperr"
)

// Runner executes one ffmpeg invocation and blocks until it exits.
type Runner interface {
	Run(ctx context.Context, args []string) error
}

// ExecRunner runs the ffmpeg binary as a subprocess.
type ExecRunner struct {
	// Binary is the ffmpeg executable; empty means "ffmpeg" on PATH.
	Binary  string
	Verbose bool
	Logger  zerolog.Logger
}

const maxDiagnosticBytes = 4096

func (r *ExecRunner) Run(ctx context.Context, args []string) error {
	bin := r.Binary
	if strings.TrimSpace(bin) == "" {
		bin = "ffmpeg"
	}

	full := []string{"-hide_banner"}
	if !r.Verbose {
		full = append(full, "-loglevel", "error")
	}
	full = append(full, args...)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, full...)
	cmd.Stderr = &stderr

	r.Logger.Debug().Str("bin", bin).Strs("args", full).Msg("running engine")
	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return apperr.Operation(fmt.Sprintf("%s not found; install ffmpeg or pass --ffmpeg", bin), "", err)
		}
		return apperr.Operation(fmt.Sprintf("%s failed", bin), diagnostic(stderr.Bytes()), err)
	}
	if r.Verbose && stderr.Len() > 0 {
		r.Logger.Debug().Str("output", diagnostic(stderr.Bytes())).Msg("engine output")
	}
	return nil
}

// diagnostic keeps the tail of the engine output, where the error usually is.
func diagnostic(out []byte) string {
	if len(out) > maxDiagnosticBytes {
		out = out[len(out)-maxDiagnosticBytes:]
	}
	return strings.TrimSpace(string(out))
}
