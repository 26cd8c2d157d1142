package genconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/gameshift/pkg/config"
	"github.com/arthur-debert/gameshift/pkg/errors"
	"github.com/arthur-debert/gameshift/pkg/logging"
	"github.com/arthur-debert/gameshift/pkg/paths"
	"github.com/arthur-debert/gameshift/pkg/style"
	"github.com/dchest/safefile"
	"github.com/spf13/cobra"
)

// Loader returns the effective configuration for cmd
type Loader func(cmd *cobra.Command) (*config.Config, error)

// NewCommand creates the gen-config command
func NewCommand(load Loader) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if err := run(cmd, load, write); err != nil {
				logger := logging.GetLogger("cmd.gen-config")
				logger.Error().Err(err).Msg("Command failed")
				fmt.Fprintln(out, style.NewPlainRenderer().RenderError(err))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write config to the user config file instead of stdout")

	return cmd
}

func run(cmd *cobra.Command, load Loader, write bool) error {
	cfg, err := load(cmd)
	if err != nil {
		return err
	}
	content, err := config.ToTOML(cfg)
	if err != nil {
		return err
	}

	if !write {
		fmt.Fprint(cmd.OutOrStdout(), content)
		return nil
	}
	return writeConfig(cmd, paths.ConfigFilePath(), content)
}

func writeConfig(cmd *cobra.Command, path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return errors.Newf(errors.ErrInvalidInput, "%s already exists", path).
			WithDetail("path", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, errors.ErrConfigLoad, "cannot create config directory").
			WithDetail("path", path)
	}
	if err := safefile.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.Wrap(err, errors.ErrConfigLoad, "cannot write config file").
			WithDetail("path", path)
	}
	fmt.Fprintf(cmd.OutOrStdout(), MsgWritten, path)
	return nil
}
