// Package main backs up weekly healthstats exports to google drive. Meant to
// be run from cron as a separate process; when done it reports the run to the
// main service over its unix socket so the numbers end up in prometheus.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/2beens/healthstats/internal/config"
	"github.com/2beens/healthstats/internal/db"
	"github.com/2beens/healthstats/internal/healthstats/backup"
	"github.com/2beens/healthstats/internal/healthstats/catalog"
	"github.com/2beens/healthstats/internal/healthstats/daylogs"
	"github.com/2beens/healthstats/internal/healthstats/decisions"
	"github.com/2beens/healthstats/internal/healthstats/measurements"
	"github.com/2beens/healthstats/internal/healthstats/reports"
	"github.com/2beens/healthstats/internal/telemetry/metrics"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development | ddev | dockerdev]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	credentialsFile := flag.String(
		"gd-creds",
		"./healthstats-drive-credentials.json",
		"google drive service account credentials json",
	)
	logsPath := flag.String("logs-path", "", "logs file path (empty for stdout)")
	reinit := flag.Bool("reinit", false, "drop the backups folder and upload everything again")
	weeksToBackup := flag.Int("weeks", backup.DefaultWeeksToBackup, "number of completed weeks to cover")
	shareWithEmail := flag.String("share-email", "", "share uploaded files with this google account (empty to skip)")

	flag.Parse()

	loggingSetup(*logsPath)

	log.Println("starting weekly exports backup ...")

	if *credentialsFile == "" {
		log.Fatalln("google drive credentials json not specified")
	}
	if *reinit {
		log.Println("!! attention: will reinitialize all again...")
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	credentialsFileBytes, err := os.ReadFile(*credentialsFile)
	if err != nil {
		log.Fatalf("unable to read credentials file: %v", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %s", err)
	}
	defer dbPool.Close()

	// metrics of this process are not scraped, the run report goes
	// through the unix socket instead
	metricsManager := metrics.NewManager("backend", "backups", prometheus.NewRegistry())

	reportsService := reports.NewService(
		daylogs.NewRepo(dbPool),
		measurements.NewRepo(dbPool),
		catalog.NewRepo(dbPool),
		decisions.NewService(decisions.NewRepo(dbPool), metricsManager),
		"backups",
	)

	s, err := backup.NewGoogleDriveBackupService(ctx, credentialsFileBytes, reportsService, *shareWithEmail)
	if err != nil {
		log.Fatalf("failed to create google drive backup service: %s", err)
	}

	baseTime := time.Now()

	var uploaded int
	if *reinit {
		uploaded, err = s.Reinit(ctx, baseTime, *weeksToBackup)
	} else {
		uploaded, err = s.DoBackup(ctx, baseTime, *weeksToBackup)
	}
	if err != nil {
		log.Fatalf("%+v", err)
	}

	backup.TrySendMetrics(baseTime, uploaded, cfg.BackupUnixSocketAddrDir, cfg.BackupUnixSocketFileName)

	log.Println("weekly exports backup done")
}

func loggingSetup(logFileName string) {
	if logFileName == "" {
		log.SetOutput(os.Stdout)
		return
	}

	if !strings.HasSuffix(logFileName, ".log") {
		logFileName += ".log"
	}

	log.SetOutput(&lumberjack.Logger{
		Filename:  logFileName,
		MaxSize:   50,    // megabytes
		LocalTime: false, // false -> use UTC
		Compress:  true,  // disabled by default
	})
}
