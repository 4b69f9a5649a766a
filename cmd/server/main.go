// Package main is the entry point for the item converter CLI and gRPC server
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-item-converter/cmd/server/client"
	"github.com/KirkDiggler/rpg-item-converter/internal/config"
)

var (
	configPath  string
	logLevel    string
	itemsFile   string
	classesFile string
	useSRDAPI   bool

	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "item-converter",
	Short: "Homebrew item converter",
	Long: `item-converter turns pasted magic item text into structured item records,
resolving the tagline against a base item and class catalog.`,
	PersistentPreRunE: loadConfig,
	SilenceUsage:      true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a TOML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&itemsFile, "items-file", "", "Base item catalog JSON file")
	rootCmd.PersistentFlags().StringVar(&classesFile, "classes-file", "", "Class catalog JSON file")
	rootCmd.PersistentFlags().BoolVar(&useSRDAPI, "srd", false, "Load the catalogs from the D&D 5e SRD API")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(client.ClientCmd)
}

// loadConfig reads the config file and applies flag overrides
func loadConfig(cmd *cobra.Command, _ []string) error {
	if cmd.Annotations[skipConfigLoad] == "true" {
		return nil
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("items-file") {
		cfg.Catalog.ItemsFile = itemsFile
	}
	if flags.Changed("classes-file") {
		cfg.Catalog.ClassesFile = classesFile
	}
	if flags.Changed("srd") {
		cfg.Catalog.UseSRDAPI = useSRDAPI
	}
	if flags.Changed("port") {
		cfg.Server.Port = grpcPort
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	setupLogger(cfg.LogLevel)
	appConfig = cfg
	return nil
}

func setupLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
