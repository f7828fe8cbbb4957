package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Beka01247/dormeats/internal/domain"
	"github.com/Beka01247/dormeats/internal/env"
	"github.com/Beka01247/dormeats/internal/service"
	"github.com/Beka01247/dormeats/internal/store/mongo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// statsFile is the document produced by the reporting job.
type statsFile struct {
	Stats     *domain.AdminDashboardStats `json:"stats"`
	TopStores []domain.TopStoreRevenue    `json:"topStores"`
}

// bootStorage connects to MongoDB using the same variables as the API.
func bootStorage() (*mongo.Storage, error) {
	return mongo.New(mongo.Config{
		URI:      env.GetString("MONGO_URI", "mongodb://localhost:27017"),
		Database: env.GetString("MONGO_DATABASE", "dormeats"),
		Timeout:  env.GetDuration("MONGO_TIMEOUT", time.Second*10),
	})
}

// dormctl indexes
var indexesCmd = &cobra.Command{
	Use:   "indexes",
	Short: "Create collection indexes",
	RunE: func(cmd *cobra.Command, args []string) error {
		storage, err := bootStorage()
		if err != nil {
			return err
		}
		defer storage.Close(context.Background())

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := storage.CreateIndexes(ctx); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Indexes created.")
		return nil
	},
}

// dormctl stats
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Manage admin dashboard data",
}

// dormctl stats import <file.json>
var statsImportCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Load weekly stats and top stores computed by the reporting job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		data, err := loadStatsFile(f)
		if err != nil {
			return err
		}

		storage, err := bootStorage()
		if err != nil {
			return err
		}
		defer storage.Close(context.Background())

		logger := zap.Must(zap.NewProduction()).Sugar()
		defer logger.Sync()

		dashboard := service.NewDashboardService(mongo.NewDashboardRepository(storage.Database()), storage, logger)
		return importStats(cmd.Context(), dashboard, data, cmd.OutOrStdout())
	},
}

func init() {
	statsCmd.AddCommand(statsImportCmd)
}

type dashboardWriter interface {
	RecordStats(ctx context.Context, stats *domain.AdminDashboardStats) error
	ReplaceTopStores(ctx context.Context, stores []domain.TopStoreRevenue) error
}

func loadStatsFile(r io.Reader) (*statsFile, error) {
	var data statsFile

	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode stats file: %w", err)
	}

	if data.Stats == nil && data.TopStores == nil {
		return nil, fmt.Errorf("stats file has neither stats nor topStores")
	}

	return &data, nil
}

func importStats(ctx context.Context, dashboard dashboardWriter, data *statsFile, out io.Writer) error {
	if data.Stats != nil {
		if err := dashboard.RecordStats(ctx, data.Stats); err != nil {
			return err
		}
		fmt.Fprintf(out, "Recorded stats for week of %s.\n", data.Stats.WeekStart.Format(time.DateOnly))
	}

	if data.TopStores != nil {
		if err := dashboard.ReplaceTopStores(ctx, data.TopStores); err != nil {
			return err
		}
		fmt.Fprintf(out, "Replaced %d top stores.\n", len(data.TopStores))
	}

	return nil
}
