package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"percentile_worker/percentile"
)

var log = logrus.WithField("component", "percentile-worker")

func main() {
	// Load environment from .env files for local development.
	_ = godotenv.Load(".env")

	var sampleSetID int64
	var service bool
	var strategyName string
	flag.Int64Var(&sampleSetID, "sample-set-id", 0, "ID of sample_sets row to process (omit to run service)")
	flag.BoolVar(&service, "service", false, "Run as background service listening to the Sidekiq queue")
	flag.StringVar(&strategyName, "strategy", os.Getenv("WORKER_STRATEGY"), "selection strategy: sort, heap or quickselect")
	flag.Parse()

	if os.Getenv("DEBUG") != "" {
		logrus.SetLevel(logrus.DebugLevel)
	}

	calc, err := newCalculator(strategyName)
	if err != nil {
		log.WithError(err).Fatal("strategy config error")
	}
	log.WithField("strategy", calc.Strategy()).Debug("calculator ready")

	dsn, err := buildDSNFromEnv()
	if err != nil {
		log.WithError(err).Fatal("database config error")
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.WithError(err).Fatal("connect error")
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.WithError(err).Fatal("database not reachable")
	}

	startMetricsListener()

	if service || (sampleSetID == 0 && flag.NArg() == 0) {
		runService(db, calc)
		return
	}

	if sampleSetID == 0 && flag.NArg() > 0 {
		var v int64
		if _, err := fmt.Sscan(flag.Arg(0), &v); err == nil {
			sampleSetID = v
		}
	}
	if sampleSetID == 0 {
		log.Fatal("missing --sample-set-id <id> argument or --service")
	}

	if err := processSampleSet(db, calc, sampleSetID); err != nil {
		log.Fatal(err)
	}
}

func newCalculator(name string) (*percentile.Calculator, error) {
	if name == "" {
		name = string(percentile.StrategyQuickselect)
	}
	return percentile.NewCalculator(percentile.Strategy(name))
}
