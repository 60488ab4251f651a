package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// newConfigCmd creates the config command group.
func newConfigCmd(state *runState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect topfive configuration",
	}
	cmd.AddCommand(newConfigShowCmd(state), newConfigValidateCmd(state))
	return cmd
}

// newConfigShowCmd prints the effective configuration after defaults, the
// config file, env and flags have been applied.
func newConfigShowCmd(state *runState) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Example: `  # Show configuration with a flag override applied
  topfive config show --limit 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			encoder := yaml.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent(2)
			if err := encoder.Encode(state.cfg); err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}
			return encoder.Close()
		},
	}
}

// newConfigValidateCmd reports whether the layered configuration is valid.
// Validation itself happens while loading; reaching RunE means it passed.
func newConfigValidateCmd(state *runState) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file, env and flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			source := state.configPath
			if source == "" {
				source = "defaults (no config file)"
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Configuration is valid: %s\n", source)
			return err
		},
	}
}
