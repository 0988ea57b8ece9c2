package cmd

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/MeKo-Tech/sortbench/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var errUnknownKey = errors.New("unknown configuration key")

func newConfigCommand(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit the sortbench configuration",
		Long: `Inspect and edit the sortbench configuration.

Examples:
  sortbench config init
  sortbench config show
  sortbench config get bench.size
  sortbench config set bench.iterations 5
  sortbench config paths`,
	}

	configCmd.AddCommand(
		newConfigInitCommand(),
		newConfigShowCommand(a),
		newConfigGetCommand(a),
		newConfigSetCommand(a),
		newConfigPathsCommand(),
	)
	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	initCmd := &cobra.Command{
		Use:          "init [file]",
		Short:        "Write a configuration file with the default settings",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.ConfigFileName + ".yaml"
			if len(args) == 1 {
				path = args[0]
			}
			force, _ := cmd.Flags().GetBool("force")
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
			}
			if err := config.GenerateDefaultConfigFile(path); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
			return err
		},
	}
	initCmd.Flags().Bool("force", false, "overwrite an existing file")
	return initCmd
}

func newConfigShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:          "show",
		Short:        "Print the resolved configuration as YAML",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if used := a.loader.GetConfigFileUsed(); used != "" {
				_, _ = fmt.Fprintf(out, "# config file: %s\n", used)
			}
			data, err := yaml.Marshal(a.loader.GetResolvedConfig())
			if err != nil {
				return fmt.Errorf("failed to encode configuration: %w", err)
			}
			_, err = out.Write(data)
			return err
		},
	}
}

func newConfigGetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:          "get <key>",
		Short:        "Print one configuration value",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			key := strings.ToLower(args[0])
			if err := checkKey(key); err != nil {
				return err
			}
			value := a.loader.GetString(key)
			if list, ok := asList(a.loader.Get(key)); ok {
				value = strings.Join(list, ",")
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}
}

func newConfigSetCommand(a *app) *cobra.Command {
	setCmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one value and save the configuration file",
		Long: `Change one value, validate the result and write the whole resolved
configuration to the config file in use, or to ./sortbench.yaml when none
was found. List values are comma separated.`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			key := strings.ToLower(args[0])
			if err := checkKey(key); err != nil {
				return err
			}
			a.loader.Set(key, args[1])
			if _, err := a.loader.Resolve(); err != nil {
				return err
			}

			path, _ := cmd.Flags().GetString("file")
			if path == "" {
				path = a.loader.GetConfigFileUsed()
			}
			if path == "" {
				path = config.ConfigFileName + ".yaml"
			}
			if err := a.loader.WriteConfigToFile(path); err != nil {
				return fmt.Errorf("failed to write config file %s: %w", path, err)
			}
			a.logger.Info("configuration updated", "key", key, "path", path)
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s = %s (saved to %s)\n", key, args[1], path)
			return err
		},
	}
	setCmd.Flags().String("file", "", "file to write (default: the config file in use)")
	return setCmd
}

func newConfigPathsCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "paths",
		Short:        "List the directories searched for sortbench.yaml",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range config.GetConfigSearchPaths() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), path); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// asList flattens list values, which come back as []string from flags and
// defaults and as []any from YAML files.
func asList(v any) ([]string, bool) {
	switch list := v.(type) {
	case []string:
		return list, true
	case []any:
		out := make([]string, len(list))
		for i, item := range list {
			out[i] = fmt.Sprint(item)
		}
		return out, true
	}
	return nil, false
}

func checkKey(key string) error {
	keys := config.Keys()
	if !slices.Contains(keys, key) {
		return fmt.Errorf("%w: %q (available: %s)", errUnknownKey, key, strings.Join(keys, ", "))
	}
	return nil
}
