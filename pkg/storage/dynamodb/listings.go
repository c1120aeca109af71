package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/models"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/moderation"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/storage"
	"github.com/google/uuid"
)

const listingStatusIndex = "status-created_at-index"

// CreateRental stores a new rental listing in the pending state. Submission
// always succeeds and clears any stale moderation fields the caller sent.
func (s *Store) CreateRental(ctx context.Context, listing *models.RentalListing) (*models.RentalListing, error) {
	now := time.Now()
	listing.ID = uuid.New().String()
	listing.Status = moderation.Submit()
	listing.RejectionReason = ""
	listing.ApprovedAt = nil
	listing.ApprovedBy = ""
	listing.CreatedAt = now
	listing.UpdatedAt = now

	if err := s.putItem(ctx, s.Tables.Rentals, listing); err != nil {
		return nil, fmt.Errorf("failed to create rental listing: %w", err)
	}
	return listing, nil
}

// CreatePropertySale stores a new property-sale listing in the pending state.
func (s *Store) CreatePropertySale(ctx context.Context, sale *models.PropertySale) (*models.PropertySale, error) {
	now := time.Now()
	sale.ID = uuid.New().String()
	sale.Status = moderation.Submit()
	sale.RejectionReason = ""
	sale.ApprovedAt = nil
	sale.ApprovedBy = ""
	sale.SoldAt = nil
	sale.CreatedAt = now
	sale.UpdatedAt = now

	if err := s.putItem(ctx, s.Tables.PropertySales, sale); err != nil {
		return nil, fmt.Errorf("failed to create property sale: %w", err)
	}
	return sale, nil
}

// CreateVehicleSale stores a new vehicle-sale listing in the pending state.
func (s *Store) CreateVehicleSale(ctx context.Context, sale *models.VehicleSale) (*models.VehicleSale, error) {
	now := time.Now()
	sale.ID = uuid.New().String()
	sale.Status = moderation.Submit()
	sale.RejectionReason = ""
	sale.ApprovedAt = nil
	sale.ApprovedBy = ""
	sale.SoldAt = nil
	sale.CreatedAt = now
	sale.UpdatedAt = now

	if err := s.putItem(ctx, s.Tables.VehicleSales, sale); err != nil {
		return nil, fmt.Errorf("failed to create vehicle sale: %w", err)
	}
	return sale, nil
}

// GetRental retrieves a rental listing by id.
func (s *Store) GetRental(ctx context.Context, id string) (*models.RentalListing, error) {
	var listing models.RentalListing
	if err := s.getItem(ctx, s.Tables.Rentals, "rental", id, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

// GetPropertySale retrieves a property-sale listing by id.
func (s *Store) GetPropertySale(ctx context.Context, id string) (*models.PropertySale, error) {
	var sale models.PropertySale
	if err := s.getItem(ctx, s.Tables.PropertySales, "property sale", id, &sale); err != nil {
		return nil, err
	}
	return &sale, nil
}

// GetVehicleSale retrieves a vehicle-sale listing by id.
func (s *Store) GetVehicleSale(ctx context.Context, id string) (*models.VehicleSale, error) {
	var sale models.VehicleSale
	if err := s.getItem(ctx, s.Tables.VehicleSales, "vehicle sale", id, &sale); err != nil {
		return nil, err
	}
	return &sale, nil
}

// ListPublicRentals returns approved rentals, optionally narrowed by rental
// type and availability. Only the approval status gates visibility; the
// availability filter is an orthogonal search criterion.
func (s *Store) ListPublicRentals(ctx context.Context, filter storage.RentalFilter) ([]models.RentalListing, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Rentals),
		IndexName:              aws.String(listingStatusIndex),
		KeyConditionExpression: aws.String("#status = :approved"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":approved": &types.AttributeValueMemberS{Value: string(models.ApprovalApproved)},
		},
	}

	filterExpr := ""
	if filter.RentalType != nil {
		filterExpr = "rental_type = :rental_type"
		input.ExpressionAttributeValues[":rental_type"] = &types.AttributeValueMemberS{Value: string(*filter.RentalType)}
	}
	if filter.IsAvailable != nil {
		if filterExpr != "" {
			filterExpr += " AND "
		}
		filterExpr += "is_available = :available"
		input.ExpressionAttributeValues[":available"] = &types.AttributeValueMemberBOOL{Value: *filter.IsAvailable}
	}
	if filterExpr != "" {
		input.FilterExpression = aws.String(filterExpr)
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query public rentals: %w", err)
	}
	var listings []models.RentalListing
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &listings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rentals: %w", err)
	}
	return listings, nil
}

// ListPublicPropertySales returns approved property-sale listings. Sold and
// rejected listings are excluded by the same query-time gate.
func (s *Store) ListPublicPropertySales(ctx context.Context) ([]models.PropertySale, error) {
	var sales []models.PropertySale
	if err := s.queryByStatus(ctx, s.Tables.PropertySales, string(models.ApprovalApproved), &sales); err != nil {
		return nil, fmt.Errorf("failed to query public property sales: %w", err)
	}
	return sales, nil
}

// ListPublicVehicleSales returns approved vehicle-sale listings.
func (s *Store) ListPublicVehicleSales(ctx context.Context) ([]models.VehicleSale, error) {
	var sales []models.VehicleSale
	if err := s.queryByStatus(ctx, s.Tables.VehicleSales, string(models.ApprovalApproved), &sales); err != nil {
		return nil, fmt.Errorf("failed to query public vehicle sales: %w", err)
	}
	return sales, nil
}

// ListRentals returns every rental regardless of moderation status, for the
// admin dashboard.
func (s *Store) ListRentals(ctx context.Context) ([]models.RentalListing, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.Tables.Rentals),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan rentals: %w", err)
	}
	var listings []models.RentalListing
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &listings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rentals: %w", err)
	}
	return listings, nil
}

// ListPendingRentals serves the moderation queue.
func (s *Store) ListPendingRentals(ctx context.Context) ([]models.RentalListing, error) {
	var listings []models.RentalListing
	if err := s.queryByStatus(ctx, s.Tables.Rentals, string(models.ApprovalPending), &listings); err != nil {
		return nil, fmt.Errorf("failed to query pending rentals: %w", err)
	}
	return listings, nil
}

// SetRentalAvailability flips the availability boolean of a rental. It never
// touches the moderation status; an unavailable listing stays approved.
func (s *Store) SetRentalAvailability(ctx context.Context, id string, available bool) error {
	_, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.Tables.Rentals),
		Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
		UpdateExpression:    aws.String("SET is_available = :available, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":available": &types.AttributeValueMemberBOOL{Value: available},
			":now":       timeAttr(time.Now()),
		},
	})
	if err != nil {
		var condFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condFailed) {
			return &models.NotFoundError{Kind: "rental", ID: id}
		}
		return fmt.Errorf("failed to update rental availability: %w", err)
	}
	return nil
}

// queryByStatus queries a listing table's status GSI.
func (s *Store) queryByStatus(ctx context.Context, table, status string, out any) error {
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(table),
		IndexName:              aws.String(listingStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: status},
		},
	})
	if err != nil {
		return err
	}
	if err := attributevalue.UnmarshalListOfMaps(result.Items, out); err != nil {
		return fmt.Errorf("failed to unmarshal status query: %w", err)
	}
	return nil
}
