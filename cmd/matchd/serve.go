package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-match/internal/config"
	"github.com/jonathan/talent-match/internal/logger"
	"github.com/jonathan/talent-match/internal/server"
)

var (
	serveConfigFile string
	servePort       int
	serveLogJSON    bool
	serveDebug      bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes match scoring, application/scout creation, and admin weight configuration.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigFile, "config", "", "Path to a JSON config file")
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().BoolVar(&serveLogJSON, "log-json", false, "Emit structured JSON logs")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
	rootCmd.AddCommand(serveCmd)
}

// runServe resolves configuration (explicit flags beat the config file, which
// beats the environment) and runs the server until interrupted.
func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.FromEnv()
	if serveConfigFile != "" {
		fileCfg, err := config.LoadConfig(serveConfigFile)
		if err != nil {
			return err
		}
		merged := fileCfg.MergeWithDefaults(*cfg)
		cfg = &merged
	}
	if cmd.Flags().Changed("port") || cfg.Port == 0 {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("log-json") {
		cfg.LogJSON = serveLogJSON
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = serveDebug
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("database URL is required (set DATABASE_URL or 'database_url' in the config file)")
	}

	log, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	srv, err := server.New(server.Config{
		Port:        cfg.Port,
		DatabaseURL: cfg.DatabaseURL,
		Logger:      log,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
