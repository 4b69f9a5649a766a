package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-item-converter/internal/config"
	"github.com/KirkDiggler/rpg-item-converter/internal/errors"
)

const (
	defaultConfigFile = "item-converter.toml"
	skipConfigLoad    = "skipConfigLoad"
)

var (
	configInitPath      string
	configInitOverwrite bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration utilities",
}

var configInitCmd = &cobra.Command{
	Use:         "init",
	Short:       "Create a sample configuration file",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipConfigLoad: "true"},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return writeSampleConfig(cmd.OutOrStdout(), configInitPath, configInitOverwrite)
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return showConfig(cmd.OutOrStdout(), appConfig)
	},
}

func init() {
	configInitCmd.Flags().StringVarP(&configInitPath, "path", "p", defaultConfigFile, "Destination for the configuration file")
	configInitCmd.Flags().BoolVar(&configInitOverwrite, "overwrite", false, "Overwrite existing configuration if present")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func writeSampleConfig(out io.Writer, target string, overwrite bool) error {
	target = strings.TrimSpace(target)
	if target == "" {
		target = defaultConfigFile
	}

	if !overwrite {
		_, err := os.Stat(target)
		switch {
		case err == nil:
			return errors.FailedPreconditionf("config file already exists at %s (use --overwrite to replace it)", target)
		case !os.IsNotExist(err):
			return errors.Wrapf(err, "failed to check config path %s", target)
		}
	}

	if err := config.CreateSample(target); err != nil {
		return err
	}

	fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
	return nil
}

func showConfig(out io.Writer, cfg *config.Config) error {
	if cfg == nil {
		return errors.Internal("configuration not loaded")
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}

	_, err = out.Write(data)
	return err
}
