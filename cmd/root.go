package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"yonder-parse/assemble"
	"yonder-parse/config"
)

type rootArgs struct {
	configPath string
	debug      bool
}

var rArgs rootArgs

var RootCmd = &cobra.Command{
	Use:           "yonder-parse <folder>",
	Short:         "Build an EPUB from Yonder XML chapter dumps",
	Long:          "Parse the XML chapter dumps in a folder and build <Title>.epub inside it",
	Args:          cobra.ExactArgs(1),
	RunE:          runBuild,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&rArgs.configPath, "config", "c", "", "config file path (default <folder>/config.ini)")
	RootCmd.PersistentFlags().BoolVar(&rArgs.debug, "debug", false, "enable debug logging")
}

func newLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if rArgs.debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// newAssembler loads the configuration for dir and wires an assembler.
func newAssembler(dir string) (*assemble.Assembler, *zap.Logger, error) {
	logger := newLogger()
	configPath := rArgs.configPath
	if configPath == "" {
		configPath = filepath.Join(dir, config.FileName)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	a, err := assemble.New(cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return a, logger, nil
}

func runBuild(cmd *cobra.Command, args []string) error {
	a, logger, err := newAssembler(args[0])
	if err != nil {
		return err
	}
	defer logger.Sync()

	savePath, err := a.BuildEpub(args[0])
	if err != nil {
		return fmt.Errorf("failed to build epub: %w", err)
	}
	logger.Info("Wrote epub", zap.String("path", savePath))
	return nil
}
