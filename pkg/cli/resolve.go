package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/openrport/release-id/pkg/cli/config"
	"github.com/openrport/release-id/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func resolve(ctx context.Context, c *cli.Command, githubCfg *config.GitHub, logger *slog.Logger, stdout io.Writer) error {
	// The credential is checked before the tag, and both before any request
	if err := githubCfg.Validate(); err != nil {
		return err
	}

	if c.Args().Len() > 1 {
		logger.Warn("Ignoring extra arguments", "args", c.Args().Tail())
	}

	query := githubCfg.Query(c.Args().First())
	if err := query.Validate(); err != nil {
		return err
	}

	lister, err := githubCfg.NewClient()
	if err != nil {
		return goerr.Wrap(err, "failed to create GitHub client")
	}

	uc := usecase.NewRelease(lister, usecase.WithLogger(logger))

	id, err := uc.ResolveRelease(ctx, query)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(stdout, id); err != nil {
		return goerr.Wrap(err, "failed to write release ID")
	}

	return nil
}
