// @title Stitch API
// @version 1.0
// @description Local API for listing, joining, trimming and previewing the videos in a folder.
// @host localhost:8080
// @BasePath /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	cli "github.com/urfave/cli/v3"

	"stitch/internal/config"
	"stitch/internal/daemon"
	_ "stitch/internal/docs"
	"stitch/internal/editor"
	"stitch/internal/library"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	app := &cli.Command{
		Name:    "stitchd",
		Usage:   "Serve the video library over HTTP",
		Version: daemon.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Usage:   "Listen address",
				Value:   ":8080",
				Sources: cli.EnvVars("STITCH_ADDR"),
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Path to the config file",
				Sources: cli.EnvVars("STITCH_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "ffmpeg",
				Usage:   "ffmpeg executable",
				Value:   "ffmpeg",
				Sources: cli.EnvVars("FFMPEG_PATH"),
			},
			&cli.StringFlag{
				Name:  "ext",
				Usage: "Default video file extension",
				Value: library.DefaultExtension,
			},
			&cli.BoolFlag{
				Name:  "recursive",
				Usage: "Include videos in subfolders by default",
				Value: true,
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log debug output",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			level := zerolog.InfoLevel
			if cmd.Bool("verbose") {
				level = zerolog.DebugLevel
			}
			logger := logger.Level(level)

			store, err := config.NewStore(cmd.String("config"))
			if err != nil {
				return err
			}
			if created, err := store.Init(); err != nil {
				return err
			} else if created {
				logger.Info().Str("path", store.Path()).Msg("created config")
			}

			runner := &editor.ExecRunner{
				Binary:  cmd.String("ffmpeg"),
				Verbose: cmd.Bool("verbose"),
				Logger:  logger,
			}
			server := daemon.NewServer(daemon.Options{
				Store:     store,
				Index:     library.NewIndex(library.FFProbe{}, logger),
				Editor:    editor.New(runner, logger),
				Logger:    logger,
				Extension: cmd.String("ext"),
				Recursive: cmd.Bool("recursive"),
			})
			return serve(ctx, cmd.String("addr"), server.Routes(), logger)
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := app.Run(ctx, os.Args); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}

// serve runs the HTTP server until ctx is cancelled.
func serve(ctx context.Context, addr string, handler http.Handler, logger zerolog.Logger) error {
	srv := &http.Server{Addr: addr, Handler: handler}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("starting server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
