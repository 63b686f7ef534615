package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bigredeye/gradebook/internal/config"
	"github.com/bigredeye/gradebook/internal/gradebook"
	lf "github.com/bigredeye/gradebook/internal/logfield"
	zlog "github.com/bigredeye/gradebook/pkg/log"
)

var log = zap.NewNop()

var (
	configPath string
	dataFile   string

	conf *config.Config

	rootCmd = &cobra.Command{
		Use:           "gradebook",
		Short:         "Student grade record manager",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			zlog.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd)
		},
	}
)

func setup() error {
	var err error
	conf, err = config.ParseConfig(configPath)
	if err != nil {
		return err
	}
	if len(dataFile) > 0 {
		conf.DataFile = dataFile
	}

	log, err = zlog.Init(conf.Log)
	if err != nil {
		return err
	}
	log.Debug("Parsed config", zap.Any("config", conf))
	return nil
}

// openManager loads the data file. A missing file is an empty gradebook,
// corrupt data is an error.
func openManager() (*gradebook.Manager, error) {
	manager := gradebook.NewManager(log)
	err := manager.LoadFromFile(conf.DataFile)
	if err != nil && !errors.Is(err, gradebook.ErrNoSavedData) {
		return nil, errors.Wrap(err, "Failed to open gradebook")
	}
	return manager, nil
}

func saveManager(manager *gradebook.Manager) error {
	if err := manager.SaveToFile(conf.DataFile); err != nil {
		return err
	}
	log.Debug("Gradebook saved", lf.Path(conf.DataFile))
	return nil
}

func initCommands() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config")
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "", "Path to the grades file (overrides config)")

	rootCmd.AddCommand(makeShellCommand())
	rootCmd.AddCommand(makeAddCommand())
	rootCmd.AddCommand(makeUpdateCommand())
	rootCmd.AddCommand(makeReportCommand())
	rootCmd.AddCommand(makeDeleteCommand())
	rootCmd.AddCommand(makeListCommand())
	rootCmd.AddCommand(makeSearchCommand())
	rootCmd.AddCommand(makeExportCommand())
	rootCmd.AddCommand(makeImportCommand())
}

func init() {
	initCommands()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Command failed: %s\n", err.Error())
		os.Exit(1)
	}
}
