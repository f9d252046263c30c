package main

import (
	"context"
	"flag"
	"os"
	"time"

	"purchase-report/internal/config"
	"purchase-report/internal/database"
	"purchase-report/internal/logging"
	"purchase-report/internal/models"
	"purchase-report/internal/repositories"
	"purchase-report/internal/services"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warn("failed to load .env file")
	}

	cfg := config.Load()

	date := flag.String("date", cfg.Report.DefaultCheckDate, "first calendar day to generate, YYYY-MM-DD")
	days := flag.Int("days", 1, "number of consecutive days to generate")
	count := flag.Int("count", 50, "records per day")
	seed := flag.Uint64("seed", 0, "random seed, 0 picks a random one")
	flag.Parse()

	logging.Configure(cfg)

	start, err := models.ParsePurchaseDate(*date)
	if err != nil {
		logrus.WithError(err).WithField("date", *date).Fatal("invalid -date")
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize database")
	}
	defer db.Close()

	repo := repositories.NewPurchaseRecordRepository(db.DB)
	generator := services.NewPurchaseRecordGenerator(*seed)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	total := 0
	for i := 0; i < *days; i++ {
		day := start.AddDate(0, 0, i)
		records := generator.GenerateDay(day, cfg.Report.Location, *count)

		if err := repo.CreateBatch(ctx, records); err != nil {
			logrus.WithError(err).WithField("date", day.Format(models.PurchaseDateLayout)).Fatal("failed to insert purchase records")
		}

		total += len(records)
		logrus.WithFields(logrus.Fields{
			"date":    day.Format(models.PurchaseDateLayout),
			"records": len(records),
		}).Info("purchase records generated")
	}

	logrus.WithField("records", total).Info("seeding complete")
}
