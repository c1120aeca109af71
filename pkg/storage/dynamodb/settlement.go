package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/models"
)

const vehicleRentalGSI = "gsi1pk-created_at-index"

// VehicleRentalPartition is the fixed partition key of the vehicle-rental
// transaction GSI, so the windowed query stays a single Query call.
const VehicleRentalPartition = "VEHICLE_RENTALS"

// ListCompletedJobs returns jobs that reached Completed at or after since.
// The read is part of the best-effort settlement snapshot; it never mutates
// the source records.
func (s *Store) ListCompletedJobs(ctx context.Context, since time.Time) ([]models.Job, error) {
	sinceAV, err := marshalTime(since)
	if err != nil {
		return nil, err
	}
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Jobs),
		IndexName:              aws.String(jobStatusIndex),
		KeyConditionExpression: aws.String("#status = :completed"),
		FilterExpression:       aws.String("updated_at >= :since"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":completed": &types.AttributeValueMemberS{Value: string(models.JobCompleted)},
			":since":     sinceAV,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query completed jobs: %w", err)
	}
	var completed []models.Job
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &completed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal completed jobs: %w", err)
	}
	return completed, nil
}

// ListSoldPropertySales returns property listings sold at or after since.
func (s *Store) ListSoldPropertySales(ctx context.Context, since time.Time) ([]models.PropertySale, error) {
	sinceAV, err := marshalTime(since)
	if err != nil {
		return nil, err
	}
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.PropertySales),
		IndexName:              aws.String(listingStatusIndex),
		KeyConditionExpression: aws.String("#status = :sold"),
		FilterExpression:       aws.String("sold_at >= :since"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sold":  &types.AttributeValueMemberS{Value: string(models.ApprovalSold)},
			":since": sinceAV,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query sold property sales: %w", err)
	}
	var sales []models.PropertySale
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &sales); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sold property sales: %w", err)
	}
	return sales, nil
}

// ListEngagedRentals returns approved rentals taken off the market at or
// after since. Engagement is approximated from availability: an approved
// listing marked unavailable inside the window counts as one rental
// transaction for that month.
func (s *Store) ListEngagedRentals(ctx context.Context, since time.Time) ([]models.RentalListing, error) {
	sinceAV, err := marshalTime(since)
	if err != nil {
		return nil, err
	}
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Rentals),
		IndexName:              aws.String(listingStatusIndex),
		KeyConditionExpression: aws.String("#status = :approved"),
		FilterExpression:       aws.String("is_available = :unavailable AND updated_at >= :since"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":approved":    &types.AttributeValueMemberS{Value: string(models.ApprovalApproved)},
			":unavailable": &types.AttributeValueMemberBOOL{Value: false},
			":since":       sinceAV,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query engaged rentals: %w", err)
	}
	var rentals []models.RentalListing
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &rentals); err != nil {
		return nil, fmt.Errorf("failed to unmarshal engaged rentals: %w", err)
	}
	return rentals, nil
}

// ListVehicleRentals returns vehicle rental transactions opened at or after
// since.
func (s *Store) ListVehicleRentals(ctx context.Context, since time.Time) ([]models.VehicleRental, error) {
	sinceAV, err := marshalTime(since)
	if err != nil {
		return nil, err
	}
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.VehicleRentals),
		IndexName:              aws.String(vehicleRentalGSI),
		KeyConditionExpression: aws.String("gsi1pk = :pk AND created_at >= :since"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":    &types.AttributeValueMemberS{Value: VehicleRentalPartition},
			":since": sinceAV,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicle rentals: %w", err)
	}
	var rentals []models.VehicleRental
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &rentals); err != nil {
		return nil, fmt.Errorf("failed to unmarshal vehicle rentals: %w", err)
	}
	return rentals, nil
}

func marshalTime(t time.Time) (types.AttributeValue, error) {
	av, err := attributevalue.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal time bound: %w", err)
	}
	return av, nil
}
