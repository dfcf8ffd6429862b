// Package main is the entry point for the building generator
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/buildings/config"
	"github.com/lixenwraith/buildings/core"
	"github.com/lixenwraith/buildings/engine"
	"github.com/lixenwraith/buildings/system"
)

var (
	configPath string
	seedFlag   uint64
	countFlag  int
	debugFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "buildings",
	Short: "Procedural building generator",
	Long: `Draws an inventory of buildings from weighted shape, size and color tables
and resolves each one to a mesh, scale and material.`,
	SilenceUsage: true,
}

func main() {
	// Panic recovery: lookups on a broken registry or missing resource are fatal
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mBUILDINGS CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "TOML file layered over the embedded defaults")
	flags.Uint64Var(&seedFlag, "seed", 0, "Seed for the inventory draw")
	flags.IntVar(&countFlag, "count", 0, "Number of inventory slots")
	flags.BoolVar(&debugFlag, "debug", false, "Write logs to "+logDir+"/"+logFileName)

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(previewCmd)
}

// loadConfig applies flags over file and environment settings
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Inventory.Seed = seedFlag
	}
	if flags.Changed("count") {
		cfg.Inventory.Count = countFlag
	}
	if flags.Changed("debug") {
		cfg.Debug.Enabled = debugFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// startSession loads configuration, routes logging and runs the startup schedule
// The returned closer flushes the log file and must always be called
func startSession(cmd *cobra.Command) (*engine.World, core.Entity, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, 0, func() {}, err
	}

	logFile := setupLogging(cfg.Debug.Enabled)
	closer := func() {
		if logFile != nil {
			logFile.Close()
		}
	}

	w, err := system.NewSession(cfg)
	if err != nil {
		return nil, 0, closer, fmt.Errorf("startup failed: %w", err)
	}

	containers := w.Inventories.All()
	if len(containers) != 1 {
		return nil, 0, closer, fmt.Errorf("startup produced %d inventories", len(containers))
	}
	return w, containers[0], closer, nil
}
