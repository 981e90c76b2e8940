// Package editor turns join, trim and thumbnail-sheet requests into ffmpeg
// invocations and runs them.
package editor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	ffmpeg "github.com/u2takey/ffmpeg-go"

	"stitch/internal/apperr"
)

// Editor builds ffmpeg graphs and runs them one at a time through a Runner.
type Editor struct {
	runner Runner
	logger zerolog.Logger
	now    func() time.Time
}

func New(runner Runner, logger zerolog.Logger) *Editor {
	return &Editor{runner: runner, logger: logger, now: time.Now}
}

// Join writes base followed by addition to a new file and returns its path.
func (e *Editor) Join(ctx context.Context, req JoinRequest) (string, error) {
	out, err := outputPath(KindJoin, req.Base.Folder, req.OutputName, defaultJoinName(req.Base, req.Addition, e.now()))
	if err != nil {
		return "", err
	}
	graph, err := joinGraph(req.Base.Path, req.Addition.Path, out, req.BaseInput, req.AdditionInput, req.Concat)
	if err != nil {
		return "", err
	}

	e.logger.Info().
		Str("base", req.Base.Name).
		Str("addition", req.Addition.Name).
		Str("output", out).
		Msg("joining videos")
	if err := e.run(ctx, graph, out, req.Overwrite); err != nil {
		return "", err
	}
	return out, nil
}

// Trim writes the requested range of the source to a new file and returns
// its path.
func (e *Editor) Trim(ctx context.Context, req TrimRequest) (string, error) {
	if !finite(req.Start) || req.Start < 0 {
		return "", apperr.Validationf("start must be a non-negative number, got %s", FormatSeconds(req.Start))
	}
	if req.Duration != nil && (!finite(*req.Duration) || *req.Duration <= 0) {
		return "", apperr.Validationf("duration must be greater than zero")
	}
	if req.End != nil && req.Duration != nil {
		e.logger.Warn().
			Float64("end", *req.End).
			Float64("duration", *req.Duration).
			Msg("both end and duration given, using duration")
	}

	end, bounded := EffectiveEnd(req.Start, req.End, req.Duration)
	if bounded && (!finite(end) || end <= req.Start) {
		return "", apperr.Validationf("end (%s) must be after start (%s)", FormatSeconds(end), FormatSeconds(req.Start))
	}
	if !bounded {
		end = -1
	}

	out, err := outputPath(KindTrim, req.Source.Folder, req.OutputName, defaultTrimName(req.Source, req.Start, e.now()))
	if err != nil {
		return "", err
	}

	ev := e.logger.Info().Str("source", req.Source.Name).Float64("start", req.Start)
	if bounded {
		ev = ev.Float64("end", end)
	}
	ev.Str("output", out).Msg("trimming video")
	if err := e.run(ctx, trimGraph(req.Source.Path, out, req.Start, end), out, req.Overwrite); err != nil {
		return "", err
	}
	return out, nil
}

// ThumbnailSheet tiles evenly spaced frames of the source into one image and
// returns its path.
func (e *Editor) ThumbnailSheet(ctx context.Context, req ThumbnailRequest) (string, error) {
	if req.Columns < 1 || req.Rows < 1 {
		return "", apperr.Validationf("columns and rows must be at least 1, got %dx%d", req.Columns, req.Rows)
	}
	out, err := outputPath(KindThumbnail, req.Source.Folder, req.OutputName, defaultThumbnailName(req.Source, e.now()))
	if err != nil {
		return "", err
	}

	stride := Stride(req.Source.Frames, req.Columns, req.Rows)
	e.logger.Info().
		Str("source", req.Source.Name).
		Int("frames", req.Source.Frames).
		Int("stride", stride).
		Str("output", out).
		Msg("building thumbnail sheet")
	if err := e.run(ctx, thumbnailGraph(req.Source.Path, out, stride, req.Columns, req.Rows), out, req.Overwrite); err != nil {
		return "", err
	}
	return out, nil
}

func (e *Editor) run(ctx context.Context, graph *ffmpeg.Stream, out string, overwrite bool) error {
	if _, err := os.Stat(out); err == nil {
		if !overwrite {
			return apperr.Validationf("%s already exists; pass --overwrite to replace it", out)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat output: %w", err)
	}

	var args []string
	if overwrite {
		args = graph.OverWriteOutput().GetArgs()
	} else {
		args = append([]string{"-n"}, graph.GetArgs()...)
	}
	return e.runner.Run(ctx, args)
}
