package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"it-inventory/asset"
	"it-inventory/audit"
	"it-inventory/config"
	"it-inventory/database"
	asset2 "it-inventory/kafka/message/asset"
	"it-inventory/kafka/producer"
	"it-inventory/logger"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const serviceName = "it-inventory"

var (
	configPath string
	cfg        *config.Config
	l          logrus.FieldLogger
)

var rootCmd = &cobra.Command{
	Use:               "inventory",
	Short:             "IT asset inventory service",
	Long:              "Tracks IT assets with an audit trail, aggregate statistics, CSV interchange and QR labels.",
	SilenceUsage:      true,
	PersistentPreRunE: initialize,
}

// Execute runs the command selected by the process arguments.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "inventory.yaml", "path to the YAML configuration file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(seedCmd)
}

func initialize(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}

	l = logger.CreateLogger(serviceName)
	logger.SetOutput(l, cmd.ErrOrStderr())
	logger.SetLevel(l, cfg.Log.Level)
	return nil
}

func connect() (*gorm.DB, error) {
	return database.Connect(l,
		database.SetDriver(cfg.Database.Driver),
		database.SetDsn(cfg.Database.DSN),
		database.SetMigrations(asset.Migration, audit.Migration),
	)
}

func configureProducer() {
	producer.Configure(cfg.Kafka.Brokers, map[string]string{asset2.EnvEventTopicStatus: cfg.Kafka.Topic})
}
