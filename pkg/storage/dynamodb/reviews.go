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
	"github.com/google/uuid"
)

const reviewProviderIndex = "provider_id-index"

// CreateReview stores a review. Eligibility (an accepted or completed job for
// the provider) is checked by the handler before this is called.
func (s *Store) CreateReview(ctx context.Context, review *models.Review) (*models.Review, error) {
	review.ID = uuid.New().String()
	review.CreatedAt = time.Now()

	if err := s.putItem(ctx, s.Tables.Reviews, review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return review, nil
}

// ListReviewsByProvider returns every review left for one provider.
func (s *Store) ListReviewsByProvider(ctx context.Context, providerID string) ([]models.Review, error) {
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Reviews),
		IndexName:              aws.String(reviewProviderIndex),
		KeyConditionExpression: aws.String("provider_id = :provider"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":provider": &types.AttributeValueMemberS{Value: providerID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	var reviews []models.Review
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &reviews); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reviews: %w", err)
	}
	return reviews, nil
}
