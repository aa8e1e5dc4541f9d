package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-match/internal/config"
	"github.com/jonathan/talent-match/internal/db"
	"github.com/jonathan/talent-match/internal/matching"
	"github.com/jonathan/talent-match/internal/schemas"
	"github.com/jonathan/talent-match/internal/server"
)

var (
	seedWeightsFile   string
	seedWeightsConfig string
)

var seedWeightsCmd = &cobra.Command{
	Use:   "seed-weights",
	Short: "Replace the stored weight configuration from a JSON file",
	Long: `Validate a factor->weight JSON file against the weight-config schema and
replace the stored configuration with it atomically. Factors missing from the
file get their documented defaults. The file path comes from --file, or from
the 'weights_file' entry of a --config file.`,
	RunE: runSeedWeights,
}

func init() {
	seedWeightsCmd.Flags().StringVar(&seedWeightsFile, "file", "", "Path to the weight-config JSON file")
	seedWeightsCmd.Flags().StringVar(&seedWeightsConfig, "config", "", "Path to a JSON config file naming the weight-config file")
	rootCmd.AddCommand(seedWeightsCmd)
}

func runSeedWeights(_ *cobra.Command, _ []string) error {
	if seedWeightsFile == "" && seedWeightsConfig != "" {
		cfg, err := config.LoadConfig(seedWeightsConfig)
		if err != nil {
			return err
		}
		seedWeightsFile = cfg.WeightsFile
	}
	if seedWeightsFile == "" {
		return fmt.Errorf("a weight-config file is required (--file, or --config with 'weights_file')")
	}

	if err := schemas.ValidateWeightConfigFile(seedWeightsFile); err != nil {
		return fmt.Errorf("weight config rejected: %w", err)
	}

	data, err := os.ReadFile(seedWeightsFile)
	if err != nil {
		return fmt.Errorf("failed to read weight config: %w", err)
	}
	var entries matching.FactorWeights
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to parse weight config: %w", err)
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	seeded, err := server.NewWeightService(database).Seed(ctx, entries)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(seeded)
}
