package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"

	"github.com/fassou200-cloud/Servispro-Guinee/pkg/settlement"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/storage/dynamodb"
)

var engine *settlement.Engine

func init() {
	// Load environment variables from .env file (useful for local testing).
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize dependencies once.
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	dbClient := awsdynamodb.NewFromConfig(cfg)
	tables := dynamodb.Tables{
		Rentals:        os.Getenv("DYNAMODB_RENTALS_TABLE_NAME"),
		PropertySales:  os.Getenv("DYNAMODB_PROPERTY_SALES_TABLE_NAME"),
		VehicleRentals: os.Getenv("DYNAMODB_VEHICLE_RENTALS_TABLE_NAME"),
		Jobs:           os.Getenv("DYNAMODB_JOBS_TABLE_NAME"),
	}
	if tables.Rentals == "" || tables.PropertySales == "" || tables.VehicleRentals == "" || tables.Jobs == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	// The report lambda never triggers notifications, so the notifier is nil.
	store := dynamodb.New(dbClient, nil, tables, logger)
	engine = settlement.NewEngine(store, func() settlement.RateTable {
		return settlement.LoadRates(os.Getenv, logger)
	}, logger)
}

// HandleRequest computes the scheduled revenue report. The report is logged;
// delivery (mail, dashboard push) is downstream of the log pipeline.
func HandleRequest(ctx context.Context, _ events.CloudWatchEvent) error {
	report, err := engine.Report(ctx, settlement.DefaultWindowDays)
	if err != nil {
		log.Printf("ERROR: failed to compute revenue report: %v", err)
		return err
	}

	log.Printf("Revenue report: window=%dd total_commission=%d domains=%d",
		report.WindowDays, report.TotalCommission, len(report.Domains))
	for _, domain := range report.Domains {
		log.Printf("  %s: count=%d volume=%d rate=%.1f%% commission=%d",
			domain.Domain, domain.Count, domain.Volume, domain.Rate, domain.Commission)
	}

	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
