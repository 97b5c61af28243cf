// Command export renders the marketing pages to a directory of static HTML.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/stratus-hq/site/config"
	"github.com/stratus-hq/site/export"
	"github.com/stratus-hq/site/logger"
)

func newRootCmd(fs afero.Fs) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:           "export",
		Short:         "Render the home, about and pricing pages to static HTML",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := logger.Setup(cfg.LogLevel, cfg.LogPretty); err != nil {
				return err
			}

			written, err := export.Pages(fs, out, cfg)
			if err != nil {
				return err
			}
			for _, path := range written {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			log.Info().Str("out", out).Int("pages", len(written)).Msg("export complete")
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "dist", "directory to write pages into")
	return cmd
}

func main() {
	if err := newRootCmd(afero.NewOsFs()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
