package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/dcw/beanmaker/internal/commands"
	"github.com/dcw/beanmaker/internal/config"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

// exitUsage is the status for help and argument errors
const exitUsage = 255

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:     os.Stderr,
		NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
	})

	ctrl := &commands.Controller{
		Flags: &commands.Flags{},
		Out:   os.Stdout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := newApp(ctrl, os.Stdout, os.Stderr)
	if err := app.Run(ctx, os.Args); err != nil {
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		log.Fatal().Err(err).Msg("failed to generate class")
	}
}

func newApp(ctrl *commands.Controller, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "beanmaker",
		Usage:     "Generate a Jackson-annotated Java bean from a fields file",
		UsageText: "beanmaker -f FIELDS_FILE [-c FQ_CLASS_NAME] [-g] [-s] [-j]",
		Version:   build(),
		Writer:    stdout,
		ErrWriter: stderr,
		HideHelp:  true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "fields-file",
				Aliases: []string{"f"},
				Usage:   "File of field information (- for stdin)",
			},
			&cli.StringFlag{
				Name:    "fqclassname",
				Aliases: []string{"c"},
				Usage:   "Fully qualified name of class to generate (default: " + config.DefaultClass + ")",
			},
			&cli.BoolFlag{
				Name:    "getters",
				Aliases: []string{"g"},
				Usage:   "Generate getters",
			},
			&cli.BoolFlag{
				Name:    "setters",
				Aliases: []string{"s"},
				Usage:   "Generate setters",
			},
			&cli.BoolFlag{
				Name:    "javadoc",
				Aliases: []string{"j"},
				Usage:   "Generate javadoc",
			},
			&cli.BoolFlag{
				Name:    "help",
				Aliases: []string{"h", "?"},
				Usage:   "Help",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to " + config.FileName + " (default: nearest in current or parent directories)",
			},
			&cli.BoolFlag{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "regenerate whenever the fields file changes",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error, fatal, panic)",
				Sources: cli.EnvVars("BEANMAKER_LOG_LEVEL"),
				Value:   "warn",
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			level, err := zerolog.ParseLevel(c.String("log-level"))
			if err != nil {
				return ctx, fmt.Errorf("failed to parse log level: %w", err)
			}

			log.Logger = log.Level(level)

			return ctx, nil
		},
		OnUsageError: func(ctx context.Context, c *cli.Command, err error, isSubcommand bool) error {
			return usageError(c, stderr, err)
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Bool("help") {
				_ = cli.ShowAppHelp(c)
				return cli.Exit("", exitUsage)
			}
			if c.Args().Len() > 0 {
				return usageError(c, stderr, fmt.Errorf("unexpected argument %q", c.Args().First()))
			}

			*ctrl.Flags = commands.Flags{
				FieldsFile: c.String("fields-file"),
				ClassName:  c.String("fqclassname"),
				Getters:    optionalBool(c, "getters"),
				Setters:    optionalBool(c, "setters"),
				Javadoc:    optionalBool(c, "javadoc"),
				ConfigPath: c.String("config"),
				Watch:      c.Bool("watch"),
			}
			ctrl.Logger = log.With().Str("component", "generate").Logger()

			return ctrl.Run(ctx)
		},
	}
}

// usageError reports an argument problem, prints the usage text and exits
// without generating anything.
func usageError(c *cli.Command, stderr io.Writer, err error) error {
	color.New(color.FgRed).Fprintf(stderr, "Unknown argument parameter:\n  %v\n", err)
	_ = cli.ShowAppHelp(c)
	return cli.Exit("", exitUsage)
}

// optionalBool returns nil when the flag was not given
func optionalBool(c *cli.Command, name string) *bool {
	if !c.IsSet(name) {
		return nil
	}
	v := c.Bool(name)
	return &v
}
