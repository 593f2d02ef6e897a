package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/6ixapp/morren/db"
	market "github.com/6ixapp/morren/internal/marketService"
	"github.com/6ixapp/morren/internal/repository"
	"github.com/6ixapp/morren/internal/repository/postgres"
	"github.com/6ixapp/morren/internal/server"
	"github.com/6ixapp/morren/internal/settlement"
	"github.com/6ixapp/morren/utils"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	ctx := context.Background()

	repo, cleanup, err := buildRepo(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize storage: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	marketSvc := market.NewMarketService(repo)
	sweeper := settlement.NewSweeper(repo)

	go runSweepLoop(ctx, sweeper)

	router := server.SetupRouter(marketSvc, sweeper)

	port := getPort()
	fmt.Printf("Starting marketplace server on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// buildRepo selects the Postgres store when DATABASE_URL is set and falls
// back to the in-memory store otherwise
func buildRepo(ctx context.Context) (repository.MarketDB, func(), error) {
	connString := os.Getenv("DATABASE_URL")
	if connString == "" {
		utils.Info("No DATABASE_URL set, using in-memory store", nil)
		return repository.NewMemoryRepo(), func() {}, nil
	}

	pool, err := db.NewPool(ctx, connString)
	if err != nil {
		return nil, nil, err
	}
	utils.Info("Connected to Postgres", nil)
	return postgres.NewRepo(pool), pool.Close, nil
}

// runSweepLoop periodically settles orders whose bidding windows have closed
func runSweepLoop(ctx context.Context, sweeper *settlement.Sweeper) {
	interval := getSweepInterval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			report, err := sweeper.Run(ctx, time.Now().UTC())
			if err != nil {
				utils.Error("Sweep failed", map[string]any{"error": err.Error()})
				continue
			}
			if report.SellerSettled > 0 || report.ShippingSettled > 0 || len(report.Errors) > 0 {
				utils.Info("Sweep completed", map[string]any{
					"seller_settled":   report.SellerSettled,
					"shipping_settled": report.ShippingSettled,
					"errors":           len(report.Errors),
				})
			} else {
				utils.Debug("Sweep found nothing to settle", nil)
			}
			for _, e := range report.Errors {
				utils.Error("Order settlement failed", map[string]any{
					"order_id": e.OrderID,
					"phase":    string(e.Phase),
					"error":    e.Err.Error(),
				})
			}
		}
	}
}

// getSweepInterval returns the sweep interval from env or defaults to 1 minute
func getSweepInterval() time.Duration {
	if raw := os.Getenv("SWEEP_INTERVAL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			return d
		}
		utils.Warn("Invalid SWEEP_INTERVAL, using default", map[string]any{"value": raw})
	}
	return time.Minute
}

/// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}
