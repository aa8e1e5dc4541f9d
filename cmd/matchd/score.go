package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/talent-match/internal/db"
	"github.com/jonathan/talent-match/internal/server"
)

var (
	scoreCandidateID string
	scoreJobID       string
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Compute one match score and print it as JSON",
	Long:  `Score a single engineer against a single job post under the active weight configuration. Nothing is persisted; this is a debugging aid for the scoring formula.`,
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreCandidateID, "candidate", "", "Engineer UUID (required)")
	scoreCmd.Flags().StringVar(&scoreJobID, "job", "", "Job post UUID (required)")
	_ = scoreCmd.MarkFlagRequired("candidate")
	_ = scoreCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	engineerID, err := uuid.Parse(scoreCandidateID)
	if err != nil {
		return fmt.Errorf("invalid candidate ID: %w", err)
	}
	jobID, err := uuid.Parse(scoreJobID)
	if err != nil {
		return fmt.Errorf("invalid job ID: %w", err)
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

	matches := server.NewMatchService(database, server.NewWeightService(database))
	result, err := matches.Score(ctx, engineerID, jobID)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
