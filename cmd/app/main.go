package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/joho/godotenv"

	"github.com/fassou200-cloud/Servispro-Guinee/pkg/auth"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/handlers"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/notify"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/settlement"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/storage/dynamodb"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// AWS Session
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := awsdynamodb.NewFromConfig(cfg)
	tables := dynamodb.Tables{
		Providers:      mustEnv("DYNAMODB_PROVIDERS_TABLE_NAME"),
		Companies:      mustEnv("DYNAMODB_COMPANIES_TABLE_NAME"),
		Customers:      mustEnv("DYNAMODB_CUSTOMERS_TABLE_NAME"),
		Admins:         mustEnv("DYNAMODB_ADMINS_TABLE_NAME"),
		Rentals:        mustEnv("DYNAMODB_RENTALS_TABLE_NAME"),
		PropertySales:  mustEnv("DYNAMODB_PROPERTY_SALES_TABLE_NAME"),
		VehicleSales:   mustEnv("DYNAMODB_VEHICLE_SALES_TABLE_NAME"),
		VehicleRentals: mustEnv("DYNAMODB_VEHICLE_RENTALS_TABLE_NAME"),
		Jobs:           mustEnv("DYNAMODB_JOBS_TABLE_NAME"),
		Messages:       mustEnv("DYNAMODB_MESSAGES_TABLE_NAME"),
		Reviews:        mustEnv("DYNAMODB_REVIEWS_TABLE_NAME"),
	}

	// SQS client and notifier
	sqsClient := sqs.NewFromConfig(cfg)
	queueURL := os.Getenv("SQS_QUEUE_URL")
	var notifier notify.Notifier
	if queueURL != "" {
		notifier = notify.NewSQSNotifier(sqsClient, queueURL)
	} else {
		logger.Warn("SQS_QUEUE_URL not set, notifications disabled")
	}

	// Storage
	store := dynamodb.New(dbClient, notifier, tables, logger)

	// Sessions and moderator verification
	tokens := auth.NewService(mustEnv("JWT_SECRET"))
	moderators := auth.ChainVerifier{
		auth.StaticKeyVerifier{Key: os.Getenv("ADMIN_ACCESS_KEY")},
		auth.StoredAdminVerifier{Tokens: tokens, Admins: store},
	}

	// Commission engine; rates are re-read on every report.
	engine := settlement.NewEngine(store, func() settlement.RateTable {
		return settlement.LoadRates(os.Getenv, logger)
	}, logger)

	router := handlers.NewRouter(handlers.Config{
		Store:      store,
		Tokens:     tokens,
		Moderators: moderators,
		Engine:     engine,
		Logger:     logger,
	})

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	log.Printf("Starting server on port %s", port)

	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("%s environment variable not set", key)
	}
	return value
}
