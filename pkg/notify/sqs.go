package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// SQSNotifier implements the Notifier interface using AWS SQS.
type SQSNotifier struct {
	Client   *sqs.Client
	QueueURL string
}

// NewSQSNotifier creates a new SQSNotifier.
func NewSQSNotifier(client *sqs.Client, queueURL string) *SQSNotifier {
	return &SQSNotifier{
		Client:   client,
		QueueURL: queueURL,
	}
}

// Make sure we conform to the interface
var _ Notifier = (*SQSNotifier)(nil)

// Publish sends the event to the notification queue.
func (n *SQSNotifier) Publish(ctx context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification event: %w", err)
	}

	_, err = n.Client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(n.QueueURL),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		return fmt.Errorf("failed to send notification to SQS: %w", err)
	}

	return nil
}
