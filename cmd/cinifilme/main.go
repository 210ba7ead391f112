package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/germanamz/cinifilme/pkg/appdir"
)

// rootFlags holds the persistent flags shared by every command.
type rootFlags struct {
	config  string
	dir     string
	env     string
	apiKey  string
	verbose bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "cinifilme",
		Short: "Browse movies and series in the terminal",
		Long: `cinifilme renders a rotating highlights showcase and scrollable carousels
of movies and series, sourced from TMDB or from a built-in dataset when no
access key is configured.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadDotEnv(flags.env)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), flags)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.config, "config", "", "path to configuration file (default: .cinifilme/config.yaml or cinifilme.yaml)")
	pf.StringVar(&flags.dir, "dir", appdir.DefaultName, "path to the .cinifilme directory")
	pf.StringVar(&flags.env, "env", ".env", "path to .env file (ignored if missing)")
	pf.StringVar(&flags.apiKey, "tmdb-api-key", "", "TMDB API key (saved for later runs)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(newSettingsCmd(flags), newCatalogCmd(flags))
	return root
}
