package dynamodb

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/notify"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/storage"
)

// DynamoDBAPI is the subset of the DynamoDB client used by the store,
// extracted as an interface so tests can mock it.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// Tables names the DynamoDB tables backing each collection.
type Tables struct {
	Providers      string
	Companies      string
	Customers      string
	Admins         string
	Rentals        string
	PropertySales  string
	VehicleSales   string
	VehicleRentals string
	Jobs           string
	Messages       string
	Reviews        string
}

// Store implements the Storage interface using AWS DynamoDB. Every status
// transition is a conditional update on the current status so concurrent
// moderator or party actions resolve deterministically.
type Store struct {
	Client   DynamoDBAPI
	Notifier notify.Notifier
	Tables   Tables
	Logger   *slog.Logger
}

// New creates a new Store. notifier may be nil for callers that never
// trigger notifications (e.g. the report lambda).
func New(client DynamoDBAPI, notifier notify.Notifier, tables Tables, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		Client:   client,
		Notifier: notifier,
		Tables:   tables,
		Logger:   logger,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

// publish delivers a notification event without failing the caller; a state
// transition must not roll back because the notification queue is down.
func (s *Store) publish(ctx context.Context, event notify.Event) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.Publish(ctx, event); err != nil {
		s.Logger.Error("failed to publish notification event",
			slog.String("type", string(event.Type)),
			slog.String("entity_id", event.EntityID),
			slog.String("error", err.Error()))
	}
}
