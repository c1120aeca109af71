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
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/jobs"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/models"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/notify"
	"github.com/google/uuid"
)

const (
	jobStatusIndex   = "status-created_at-index"
	jobProviderIndex = "service_provider_id-index"
)

// CreateJob stores a new job offer in the Pending state.
func (s *Store) CreateJob(ctx context.Context, job *models.Job) (*models.Job, error) {
	now := time.Now()
	job.ID = uuid.New().String()
	job.Status = models.JobPending
	job.CreatedAt = now
	job.UpdatedAt = now

	if err := s.putItem(ctx, s.Tables.Jobs, job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return job, nil
}

// GetJob retrieves a job by id.
func (s *Store) GetJob(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	if err := s.getItem(ctx, s.Tables.Jobs, "job", id, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// ListJobsByProvider returns every job assigned to one provider.
func (s *Store) ListJobsByProvider(ctx context.Context, providerID string) ([]models.Job, error) {
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Jobs),
		IndexName:              aws.String(jobProviderIndex),
		KeyConditionExpression: aws.String("service_provider_id = :provider"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":provider": &types.AttributeValueMemberS{Value: providerID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs by provider: %w", err)
	}
	var providerJobs []models.Job
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &providerJobs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal jobs: %w", err)
	}
	return providerJobs, nil
}

// ListJobs returns every job regardless of status, for the admin dashboard.
func (s *Store) ListJobs(ctx context.Context) ([]models.Job, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.Tables.Jobs),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan jobs: %w", err)
	}
	var allJobs []models.Job
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &allJobs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal jobs: %w", err)
	}
	return allJobs, nil
}

// ListConfirmableJobs returns accepted jobs and jobs awaiting customer
// confirmation.
func (s *Store) ListConfirmableJobs(ctx context.Context) ([]models.Job, error) {
	var all []models.Job
	for _, status := range []models.JobStatus{models.JobAccepted, models.JobProviderCompleted} {
		result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.Tables.Jobs),
			IndexName:              aws.String(jobStatusIndex),
			KeyConditionExpression: aws.String("#status = :status"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: string(status)},
			},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to query confirmable jobs: %w", err)
		}
		var batch []models.Job
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &batch); err != nil {
			return nil, fmt.Errorf("failed to unmarshal jobs: %w", err)
		}
		all = append(all, batch...)
	}
	return all, nil
}

// AcceptJob applies Pending -> Accepted on behalf of the assigned provider.
func (s *Store) AcceptJob(ctx context.Context, id, providerID string) (*models.Job, error) {
	return s.transitionJob(ctx, id, providerID, jobs.Accept)
}

// RejectJob applies Pending|Accepted -> Rejected on behalf of the assigned
// provider.
func (s *Store) RejectJob(ctx context.Context, id, providerID string) (*models.Job, error) {
	return s.transitionJob(ctx, id, providerID, jobs.Reject)
}

// ProviderCompleteJob applies Accepted -> ProviderCompleted; only the
// assigned provider may assert completion.
func (s *Store) ProviderCompleteJob(ctx context.Context, id, providerID string) (*models.Job, error) {
	return s.transitionJob(ctx, id, providerID, jobs.ProviderComplete)
}

// CustomerConfirmJob applies ProviderCompleted -> Completed. The route is
// public: any caller can confirm, mirroring the product's current behavior.
func (s *Store) CustomerConfirmJob(ctx context.Context, id string) (*models.Job, error) {
	job, err := s.transitionJob(ctx, id, "", jobs.CustomerConfirm)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, notify.Event{
		Type:        notify.EventJobCompleted,
		RecipientID: job.ServiceProviderID,
		EntityKind:  "job",
		EntityID:    job.ID,
		OccurredAt:  job.UpdatedAt,
	})
	return job, nil
}

// HasReviewableJob reports whether the provider has at least one job in a
// review-eligible state (Accepted or Completed).
func (s *Store) HasReviewableJob(ctx context.Context, providerID string) (bool, error) {
	all, err := s.ListJobsByProvider(ctx, providerID)
	if err != nil {
		return false, err
	}
	for _, job := range all {
		if jobs.ReviewEligible(job.Status) {
			return true, nil
		}
	}
	return false, nil
}

// transitionJob applies one handshake transition as a conditional update on
// the job's current status. providerID is empty for transitions that carry
// no caller-identity check.
func (s *Store) transitionJob(ctx context.Context, id, providerID string, rule func(models.JobStatus) (models.JobStatus, error)) (*models.Job, error) {
	job, err := s.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}
	if providerID != "" && job.ServiceProviderID != providerID {
		return nil, &models.AuthorizationError{Reason: "only the assigned provider may update this job"}
	}

	next, err := rule(job.Status)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	out, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.Tables.Jobs),
		Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
		UpdateExpression:    aws.String("SET #status = :next, updated_at = :now"),
		ConditionExpression: aws.String("#status = :current"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":next":    &types.AttributeValueMemberS{Value: string(next)},
			":current": &types.AttributeValueMemberS{Value: string(job.Status)},
			":now":     timeAttr(now),
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var condFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condFailed) {
			// Lost a race: someone moved the job since we read it. Re-run the
			// rule against the fresh status to produce an accurate error.
			fresh, getErr := s.GetJob(ctx, id)
			if getErr != nil {
				return nil, getErr
			}
			if _, ruleErr := rule(fresh.Status); ruleErr != nil {
				return nil, ruleErr
			}
			return nil, &models.InvalidStateError{Current: string(fresh.Status), Attempted: string(next)}
		}
		return nil, fmt.Errorf("failed to update job status: %w", err)
	}

	var updated models.Job
	if err := attributevalue.UnmarshalMap(out.Attributes, &updated); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated job: %w", err)
	}
	return &updated, nil
}
