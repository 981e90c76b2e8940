package main

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	cli "github.com/urfave/cli/v3"

	"stitch/internal/apperr"
	"stitch/internal/config"
	"stitch/internal/editor"
	"stitch/internal/library"
	"stitch/internal/ui"
)

func (a *app) initCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create the config file pointing at the default folder",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			created, err := a.store.Init()
			if err != nil {
				return err
			}
			if !created {
				ui.PrintPath(a.out, "Config already exists:", a.store.Path())
				return nil
			}
			a.done("Created %s", a.store.Path())
			return nil
		},
	}
}

func (a *app) pwdCommand() *cli.Command {
	return &cli.Command{
		Name:  "pwd",
		Usage: "Print the working directory",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			dir, err := a.store.WorkingDirectory()
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, dir)
			return nil
		},
	}
}

func (a *app) showCommand() *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "List the videos in the working directory",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "sort",
				Aliases: []string{"s"},
				Usage:   fmt.Sprintf("Sort by column, repeatable (%v)", library.SortKeys()),
			},
			&cli.BoolFlag{
				Name:  "ascending",
				Usage: "Sort in ascending order",
				Value: true,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print the list as JSON",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			videos, dir, err := a.scan(cmd)
			if err != nil {
				return err
			}
			if keys := cmd.StringSlice("sort"); len(keys) > 0 {
				if err := library.SortVideos(videos, keys, cmd.Bool("ascending")); err != nil {
					return err
				}
			}

			if cmd.Bool("json") {
				data, err := json.MarshalIndent(videos, "", "  ")
				if err != nil {
					return fmt.Errorf("encode videos: %w", err)
				}
				fmt.Fprintln(a.out, string(data))
				return nil
			}
			if len(videos) == 0 {
				ui.PrintInfo(a.out, fmt.Sprintf("No %s videos in %s", library.NormalizeExtension(cmd.String("ext")), dir))
				return nil
			}
			fmt.Fprintln(a.out, ui.VideoTable(videos))
			return nil
		},
	}
}

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file name, placed next to the source unless absolute",
		},
		&cli.BoolFlag{
			Name:  "overwrite",
			Usage: "Replace the output file if it exists",
		},
	}
}

func (a *app) addCommand() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Append one video to the end of another",
		ArgsUsage: "BASE ADDITION",
		Flags: append(outputFlags(),
			&cli.StringSliceFlag{Name: "base-opt", Usage: "ffmpeg input option for the base video, key=value"},
			&cli.StringSliceFlag{Name: "add-opt", Usage: "ffmpeg input option for the appended video, key=value"},
			&cli.StringSliceFlag{Name: "concat-opt", Usage: "concat filter option, key=value"},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			videos, _, err := a.scan(cmd)
			if err != nil {
				return err
			}
			base, err := pick(cmd, videos, 0, "base")
			if err != nil {
				return err
			}
			addition, err := pick(cmd, videos, 1, "addition")
			if err != nil {
				return err
			}

			req := editor.JoinRequest{
				Base:       base,
				Addition:   addition,
				OutputName: cmd.String("output"),
				Overwrite:  cmd.Bool("overwrite"),
			}
			if req.BaseInput, err = editor.ParseOptions(cmd.StringSlice("base-opt")); err != nil {
				return err
			}
			if req.AdditionInput, err = editor.ParseOptions(cmd.StringSlice("add-opt")); err != nil {
				return err
			}
			if req.Concat, err = editor.ParseOptions(cmd.StringSlice("concat-opt")); err != nil {
				return err
			}

			out, err := a.editor.Join(ctx, req)
			if err != nil {
				return err
			}
			a.index.Refresh()
			a.done("Joined %s and %s into %s", base.Name, addition.Name, out)
			return nil
		},
	}
}

func (a *app) trimCommand() *cli.Command {
	return &cli.Command{
		Name:      "trim",
		Aliases:   []string{"cut"},
		Usage:     "Keep part of a video",
		ArgsUsage: "INDEX START",
		Flags: append(outputFlags(),
			&cli.StringFlag{Name: "end", Aliases: []string{"e"}, Usage: "End time (seconds, MM:SS or HH:MM:SS)"},
			&cli.StringFlag{Name: "duration", Aliases: []string{"d"}, Usage: "Length to keep; wins over --end"},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			videos, _, err := a.scan(cmd)
			if err != nil {
				return err
			}
			src, err := pick(cmd, videos, 0, "video")
			if err != nil {
				return err
			}
			if cmd.Args().Len() < 2 {
				return apperr.Validationf("missing start time")
			}
			start, err := editor.ParseTimestamp(cmd.Args().Get(1))
			if err != nil {
				return err
			}

			req := editor.TrimRequest{
				Source:     src,
				OutputName: cmd.String("output"),
				Start:      start,
				Overwrite:  cmd.Bool("overwrite"),
			}
			if cmd.IsSet("end") {
				end, err := editor.ParseTimestamp(cmd.String("end"))
				if err != nil {
					return err
				}
				req.End = &end
			}
			if cmd.IsSet("duration") {
				d, err := editor.ParseTimestamp(cmd.String("duration"))
				if err != nil {
					return err
				}
				req.Duration = &d
			}

			out, err := a.editor.Trim(ctx, req)
			if err != nil {
				return err
			}
			a.index.Refresh()
			a.done("Trimmed %s into %s", src.Name, out)
			return nil
		},
	}
}

func (a *app) thumbnailCommand() *cli.Command {
	return &cli.Command{
		Name:      "thumbnail-sheet",
		Usage:     "Tile evenly spaced frames of a video into one image",
		ArgsUsage: "INDEX",
		Flags: append(outputFlags(),
			&cli.IntFlag{Name: "columns", Aliases: []string{"c"}, Usage: "Thumbnails per row", Value: editor.DefaultColumns},
			&cli.IntFlag{Name: "rows", Aliases: []string{"r"}, Usage: "Rows of thumbnails", Value: editor.DefaultRows},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			videos, _, err := a.scan(cmd)
			if err != nil {
				return err
			}
			src, err := pick(cmd, videos, 0, "video")
			if err != nil {
				return err
			}
			out, err := a.editor.ThumbnailSheet(ctx, editor.ThumbnailRequest{
				Source:     src,
				OutputName: cmd.String("output"),
				Columns:    cmd.Int("columns"),
				Rows:       cmd.Int("rows"),
				Overwrite:  cmd.Bool("overwrite"),
			})
			if err != nil {
				return err
			}
			a.done("Saved thumbnail sheet of %s to %s", src.Name, out)
			return nil
		},
	}
}

func (a *app) playCommand() *cli.Command {
	return &cli.Command{
		Name:      "play",
		Usage:     "Open a video in the default player",
		ArgsUsage: "[INDEX]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "shuffle", Usage: "Play a random video"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			videos, _, err := a.scan(cmd)
			if err != nil {
				return err
			}

			var v library.Video
			if cmd.Bool("shuffle") {
				if len(videos) == 0 {
					return apperr.Validationf("there are no videos to shuffle")
				}
				v = videos[a.intn(len(videos))]
			} else if v, err = pick(cmd, videos, 0, "video"); err != nil {
				return err
			}

			ui.PrintPath(a.out, "Playing", v.Path)
			return a.open(ctx, v.Path)
		},
	}
}

func (a *app) changeDirectoryCommand() *cli.Command {
	return &cli.Command{
		Name:    "change-directory",
		Aliases: []string{"cd"},
		Usage:   "Change the working directory",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "dir",
				Usage: fmt.Sprintf("New working directory, or %q for the built-in folder", config.DefaultFolder),
			},
			&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "Do not ask for confirmation"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			current, err := a.store.CurrentSetting()
			if err != nil {
				return err
			}

			if cmd.IsSet("dir") {
				return a.changeDirectory(current, cmd.String("dir"))
			}
			if !a.interactive(a.in) {
				return apperr.Validationf("--dir is required when input is not a terminal")
			}

			ui.PrintPath(a.out, "Current folder:", current)
			p := ui.NewPrompter(a.in, a.out)
			next, err := p.Ask(fmt.Sprintf("New folder (%q for the built-in one)", config.DefaultFolder), current)
			if err != nil {
				return err
			}
			if sameFolder(current, next) {
				ui.PrintInfo(a.out, "Directory is the same!")
				return nil
			}
			if !cmd.Bool("yes") {
				ok, err := p.Confirm(fmt.Sprintf("Change folder to %s?", next), false)
				if err != nil {
					return err
				}
				if !ok {
					ui.PrintInfo(a.out, "Folder unchanged.")
					return nil
				}
			}
			return a.changeDirectory(current, next)
		},
	}
}

func (a *app) changeDirectory(current, next string) error {
	if sameFolder(current, next) {
		ui.PrintInfo(a.out, "Directory is the same!")
		return nil
	}
	if err := a.store.SetWorkingDirectory(next); err != nil {
		return err
	}
	a.done("Working directory set to %s", next)
	return nil
}

func sameFolder(a, b string) bool {
	if a == config.DefaultFolder || b == config.DefaultFolder {
		return a == b
	}
	return filepath.Clean(a) == filepath.Clean(b)
}
