package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/openrport/release-id/pkg/cli/config"
	"github.com/openrport/release-id/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

const warningGlyph = "⚠️"

type options struct {
	stdout io.Writer
	stderr io.Writer
}

// Option configures Run
type Option func(*options)

// WithStdout sets the writer receiving the release ID
func WithStdout(w io.Writer) Option {
	return func(o *options) {
		o.stdout = w
	}
}

// WithStderr sets the writer receiving logs and diagnostics
func WithStderr(w io.Writer) Option {
	return func(o *options) {
		o.stderr = w
	}
}

// Run runs the CLI application
func Run(ctx context.Context, args []string, opts ...Option) error {
	o := &options{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(o)
	}

	var (
		loggerCfg config.Logger
		githubCfg config.GitHub
	)
	logger := slog.New(slog.NewTextHandler(o.stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	app := &cli.Command{
		Name:      "release-id",
		Usage:     "Print the ID of the GitHub release published from a tag",
		ArgsUsage: "<tag>",
		Version:   types.Version,
		Writer:    o.stdout,
		ErrWriter: o.stderr,
		Flags:     append(loggerCfg.Flags(), githubCfg.Flags()...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			configured, err := loggerCfg.Configure(o.stderr)
			if err != nil {
				return nil, err
			}
			logger = configured
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return resolve(ctx, c, &githubCfg, logger, o.stdout)
		},
		// Usage errors go through printWarning only so stdout stays empty on failure
		OnUsageError: func(ctx context.Context, c *cli.Command, err error, isSubcommand bool) error {
			return err
		},
	}

	if err := app.Run(ctx, args); err != nil {
		logger.Debug("CLI execution failed", slog.Any("error", err))
		printWarning(o.stderr, err, config.ColorEnabled(o.stderr))
		return err
	}

	return nil
}

// printWarning writes err as a single line so CI logs stay scannable
func printWarning(w io.Writer, err error, colored bool) {
	msg := strings.NewReplacer("\r\n", " ", "\n", " ").Replace(err.Error())

	c := color.New(color.FgYellow)
	if colored {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	_, _ = c.Fprintln(w, warningGlyph+"  "+msg)
}
