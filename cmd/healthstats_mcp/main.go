// Package main runs the healthstats MCP server over stdio (for local Cursor
// use), giving the assistant direct access to the logged health data.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/2beens/healthstats/internal/config"
	"github.com/2beens/healthstats/internal/db"
	"github.com/2beens/healthstats/internal/healthstats/catalog"
	"github.com/2beens/healthstats/internal/healthstats/daylogs"
	"github.com/2beens/healthstats/internal/healthstats/decisions"
	healthstatsmcp "github.com/2beens/healthstats/internal/healthstats/mcp"
	"github.com/2beens/healthstats/internal/healthstats/measurements"
	"github.com/2beens/healthstats/internal/healthstats/reports"
	"github.com/2beens/healthstats/internal/telemetry/metrics"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development | ddev | dockerdev]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	// metrics of this process are not scraped, the manager only backs the services
	metricsManager := metrics.NewManager("backend", "mcp", prometheus.NewRegistry())

	dayLogsRepo := daylogs.NewRepo(dbPool)
	decisionsService := decisions.NewService(decisions.NewRepo(dbPool), metricsManager)
	reportsService := reports.NewService(
		dayLogsRepo,
		measurements.NewRepo(dbPool),
		catalog.NewRepo(dbPool),
		decisionsService,
		"mcp",
	)

	server := healthstatsmcp.NewServer(dbPool, dayLogsRepo, reportsService, decisionsService)

	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
