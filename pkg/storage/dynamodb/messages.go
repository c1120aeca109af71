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

const messageListingIndex = "listing_id-created_at-index"

// CreateMessage stores a chat message. The caller supplies both the raw and
// the filtered text; the record is immutable afterwards.
func (s *Store) CreateMessage(ctx context.Context, msg *models.ChatMessage) (*models.ChatMessage, error) {
	msg.ID = uuid.New().String()
	msg.CreatedAt = time.Now()

	if err := s.putItem(ctx, s.Tables.Messages, msg); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}
	return msg, nil
}

// ListMessages returns a conversation for the non-privileged read path. The
// raw text is cleared before the records leave the store so no handler can
// leak it by accident.
func (s *Store) ListMessages(ctx context.Context, listingID string) ([]models.ChatMessage, error) {
	messages, err := s.listMessages(ctx, listingID)
	if err != nil {
		return nil, err
	}
	for i := range messages {
		messages[i].OriginalMessage = ""
	}
	return messages, nil
}

// ListMessagesPrivileged returns the conversation including the raw text,
// for moderation review only.
func (s *Store) ListMessagesPrivileged(ctx context.Context, listingID string) ([]models.ChatMessage, error) {
	return s.listMessages(ctx, listingID)
}

func (s *Store) listMessages(ctx context.Context, listingID string) ([]models.ChatMessage, error) {
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Messages),
		IndexName:              aws.String(messageListingIndex),
		KeyConditionExpression: aws.String("listing_id = :listing"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":listing": &types.AttributeValueMemberS{Value: listingID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	var messages []models.ChatMessage
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &messages); err != nil {
		return nil, fmt.Errorf("failed to unmarshal messages: %w", err)
	}
	return messages, nil
}
