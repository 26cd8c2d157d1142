package gameshift

import (
	"fmt"

	"github.com/arthur-debert/gameshift/cmd/gameshift/commands/genconfig"
	"github.com/arthur-debert/gameshift/internal/version"
	"github.com/arthur-debert/gameshift/pkg/config"
	"github.com/arthur-debert/gameshift/pkg/library"
	"github.com/arthur-debert/gameshift/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "gameshift",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, opts)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", MsgFlagCatalog)
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newMoveCmd(opts))
	rootCmd.AddCommand(newMoveAllCmd(opts))
	rootCmd.AddCommand(newDestinationsCmd(opts))
	rootCmd.AddCommand(genconfig.NewCommand(func(cmd *cobra.Command) (*config.Config, error) {
		return loadConfig(opts)
	}))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func loadConfig(opts *globalOptions) (*config.Config, error) {
	overrides := map[string]interface{}{}
	if opts.catalogPath != "" {
		overrides["catalog.path"] = opts.catalogPath
	}
	return config.Load(config.LoadOptions{ConfigFile: opts.configFile, Overrides: overrides})
}

func newListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return s.report(err)
			}
			groups, err := s.groups()
			if err != nil {
				return s.report(err)
			}
			s.println(s.renderer.RenderLibrary(groups))
			return nil
		},
	}
}

func newMoveCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "move <id> <desired_base_dir>",
		Short:   MsgMoveShort,
		Long:    MsgMoveLong,
		Example: MsgMoveExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return s.report(err)
			}
			rec, err := s.store.Get(args[0])
			if err != nil {
				return s.report(err)
			}
			s.moveOne(rec, args[1])
			return nil
		},
	}
}

func newMoveAllCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "move-all <desired_base_dir>",
		Short:   MsgMoveAllShort,
		Long:    MsgMoveAllLong,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return s.report(err)
			}
			groups, err := s.groups()
			if err != nil {
				return s.report(err)
			}
			s.moveAll(library.Records(groups), args[0])
			return nil
		},
	}
}

func newDestinationsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "destinations",
		Short:   MsgDestinationsShort,
		Long:    MsgDestinationsLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return s.report(err)
			}
			s.println(s.renderer.RenderDestinations(s.cfg.Destinations))
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
