// cmd/worldedit/main.go
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bethropolis/worldedit/internal/app"
	"github.com/bethropolis/worldedit/internal/config"
	"github.com/bethropolis/worldedit/internal/logger"
	"github.com/spf13/cobra"
)

var flags config.Flags

var rootCmd = &cobra.Command{
	Use:   "worldedit [file]",
	Short: "A terminal editor for game world layouts",
	Long: `worldedit edits the top-down layout of a game world: region boundaries,
roads, markers, lights, trees and particle effects. Every edit can be undone,
and documents are saved as YAML with compressed autosave snapshots.`,
	Version:      "0.1.0",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runEditor,
}

func init() {
	flags.DefineFlags(rootCmd.Flags())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runEditor(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load("", &flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}

	closeLog, err := initLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Infof("Starting worldedit...")
	for _, key := range cfg.Undecoded() {
		logger.Warnf("Unknown config key: %s", key)
	}

	filePath := ""
	if len(args) > 0 {
		filePath = args[0]
	}

	editorApp, err := app.NewApp(cfg, filePath)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		return err
	}
	if err := editorApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		return err
	}
	logger.Infof("worldedit finished.")
	return nil
}

// initLogger opens the configured log file. The terminal belongs to the
// editor, so logs go to a file in the user cache directory unless "-" asks
// for stderr.
func initLogger(cfg *config.Config) (func(), error) {
	path := cfg.Logger.LogFilePath
	if path == "-" {
		logger.InitWithConfig(cfg.Logger, os.Stderr)
		return func() {}, nil
	}
	if path == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			dir = os.TempDir()
		}
		path = filepath.Join(dir, config.AppName, config.DefaultLogFileName)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file '%s': %w", path, err)
	}
	logger.InitWithConfig(cfg.Logger, logFile)
	return func() { _ = logFile.Close() }, nil
}
