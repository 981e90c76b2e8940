package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	cli "github.com/urfave/cli/v3"

	"stitch/internal/apperr"
	"stitch/internal/config"
	"stitch/internal/editor"
	"stitch/internal/library"
	"stitch/internal/player"
	"stitch/internal/ui"
)

var version = "dev"

func main() {
	a := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := a.command().Run(context.Background(), os.Args); err != nil {
		ui.PrintError(os.Stderr, err.Error())
		os.Exit(apperr.ExitCode(err))
	}
}

// app holds the process-wide collaborators. The engine-facing ones are
// swapped out in tests.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	prober      library.Prober
	runner      editor.Runner
	open        func(context.Context, string) error
	intn        func(int) int
	interactive func(io.Reader) bool

	logger zerolog.Logger
	store  *config.Store
	index  *library.Index
	editor *editor.Editor
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	return &app{
		in:          in,
		out:         out,
		errOut:      errOut,
		prober:      library.FFProbe{},
		open:        player.Open,
		intn:        rand.IntN,
		interactive: ui.IsTerminal,
	}
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:      "stitch",
		Usage:     "List, join, trim and preview the videos in a folder",
		Version:   version,
		Reader:    a.in,
		Writer:    a.out,
		ErrWriter: a.errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Path to the config file",
				Sources: cli.EnvVars("STITCH_CONFIG"),
			},
			&cli.StringFlag{
				Name:  "ext",
				Usage: "Video file extension to list",
				Value: library.DefaultExtension,
			},
			&cli.BoolFlag{
				Name:  "recursive",
				Usage: "Include videos in subfolders",
				Value: true,
			},
			&cli.StringFlag{
				Name:    "ffmpeg",
				Usage:   "ffmpeg executable",
				Value:   "ffmpeg",
				Sources: cli.EnvVars("FFMPEG_PATH"),
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log debug output and show ffmpeg messages",
			},
		},
		Commands: []*cli.Command{
			a.initCommand(),
			a.pwdCommand(),
			a.showCommand(),
			a.addCommand(),
			a.trimCommand(),
			a.thumbnailCommand(),
			a.playCommand(),
			a.changeDirectoryCommand(),
		},
	}
}

// setup builds the logger, store, index and editor from the global flags.
// It runs inside each action so flags given after the subcommand name apply.
func (a *app) setup(cmd *cli.Command) error {
	if a.store != nil {
		return nil
	}

	level := zerolog.WarnLevel
	if cmd.Bool("verbose") {
		level = zerolog.DebugLevel
	}
	a.logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        a.errOut,
		NoColor:    !a.interactive(os.Stderr),
		TimeFormat: time.Kitchen,
	}).Level(level).With().Timestamp().Logger()

	store, err := config.NewStore(cmd.String("config"))
	if err != nil {
		return err
	}
	a.store = store
	a.index = library.NewIndex(a.prober, a.logger)

	runner := a.runner
	if runner == nil {
		runner = &editor.ExecRunner{
			Binary:  cmd.String("ffmpeg"),
			Verbose: cmd.Bool("verbose"),
			Logger:  a.logger,
		}
	}
	a.editor = editor.New(runner, a.logger)
	return nil
}

// scan lists the videos of the configured working directory.
func (a *app) scan(cmd *cli.Command) ([]library.Video, string, error) {
	if err := a.setup(cmd); err != nil {
		return nil, "", err
	}
	dir, err := a.store.WorkingDirectory()
	if err != nil {
		return nil, "", err
	}
	videos, err := a.index.Scan(dir, cmd.String("ext"), cmd.Bool("recursive"))
	if err != nil {
		return nil, "", err
	}
	return videos, dir, nil
}

// pick resolves the positional argument at pos to a video of the scan.
func pick(cmd *cli.Command, videos []library.Video, pos int, name string) (library.Video, error) {
	if cmd.Args().Len() <= pos {
		return library.Video{}, apperr.Validationf("missing %s index", name)
	}
	raw := cmd.Args().Get(pos)
	i, err := strconv.Atoi(raw)
	if err != nil {
		return library.Video{}, apperr.Validationf("%s index %q is not a number", name, raw)
	}
	return library.Select(videos, i)
}

func (a *app) done(format string, args ...any) {
	ui.PrintSuccess(a.out, fmt.Sprintf(format, args...))
}
