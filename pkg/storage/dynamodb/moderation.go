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
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/notify"
)

// moderatedKind describes how one entity kind maps onto its table. Actors
// keep their moderation state under verification_status; listings under
// status. For actors the notification recipient is the record itself.
type moderatedKind struct {
	table      func(Tables) string
	statusAttr string
	isActor    bool
}

var moderatedKinds = map[models.ModeratedKind]moderatedKind{
	models.KindProvider:     {table: func(t Tables) string { return t.Providers }, statusAttr: "verification_status", isActor: true},
	models.KindCompany:      {table: func(t Tables) string { return t.Companies }, statusAttr: "verification_status", isActor: true},
	models.KindRental:       {table: func(t Tables) string { return t.Rentals }, statusAttr: "status"},
	models.KindPropertySale: {table: func(t Tables) string { return t.PropertySales }, statusAttr: "status"},
	models.KindVehicleSale:  {table: func(t Tables) string { return t.VehicleSales }, statusAttr: "status"},
}

// Approve transitions the record to approved. The write is conditional on the
// status still being one approval accepts from, so two concurrent moderators
// both succeed (last writer wins on approved_by) while a concurrent rejection
// surfaces as *models.InvalidStateError.
func (s *Store) Approve(ctx context.Context, kind models.ModeratedKind, id, moderatorID string) error {
	mk, err := kindOf(kind)
	if err != nil {
		return err
	}

	current, err := s.getModerationState(ctx, mk, kind, id)
	if err != nil {
		return err
	}
	decision, err := moderation.Approve(current, moderatorID, time.Now())
	if err != nil {
		return err
	}

	attrs, err := s.applyDecision(ctx, mk, kind, id, decision,
		"SET #s = :to, approved_at = :at, approved_by = :by, updated_at = :at REMOVE rejection_reason",
		map[string]types.AttributeValue{
			":by": &types.AttributeValueMemberS{Value: decision.ModeratorID},
		})
	if err != nil {
		return err
	}

	event := notify.Event{
		Type:        notify.EventListingApproved,
		RecipientID: ownerOf(attrs, id),
		EntityKind:  string(kind),
		EntityID:    id,
		OccurredAt:  decision.At,
	}
	if mk.isActor {
		event.Type = notify.EventVerificationApproved
	}
	s.publish(ctx, event)

	return nil
}

// Reject transitions the record to rejected, recording the reason (defaulted
// by the moderation rules when empty) and clearing the approval marks.
func (s *Store) Reject(ctx context.Context, kind models.ModeratedKind, id, moderatorID, reason string) error {
	mk, err := kindOf(kind)
	if err != nil {
		return err
	}

	current, err := s.getModerationState(ctx, mk, kind, id)
	if err != nil {
		return err
	}
	decision, err := moderation.Reject(current, moderatorID, reason, time.Now())
	if err != nil {
		return err
	}

	attrs, err := s.applyDecision(ctx, mk, kind, id, decision,
		"SET #s = :to, rejection_reason = :reason, updated_at = :at REMOVE approved_at, approved_by",
		map[string]types.AttributeValue{
			":reason": &types.AttributeValueMemberS{Value: decision.Reason},
		})
	if err != nil {
		return err
	}

	event := notify.Event{
		Type:        notify.EventListingRejected,
		RecipientID: ownerOf(attrs, id),
		EntityKind:  string(kind),
		EntityID:    id,
		Reason:      decision.Reason,
		OccurredAt:  decision.At,
	}
	if mk.isActor {
		event.Type = notify.EventVerificationRejected
	}
	s.publish(ctx, event)

	return nil
}

// MarkSold applies the terminal approved -> sold transition on a sale
// listing. No notification is emitted; the sale flow informs its parties.
func (s *Store) MarkSold(ctx context.Context, kind models.ModeratedKind, id string) error {
	mk, err := kindOf(kind)
	if err != nil {
		return err
	}
	if mk.isActor || kind == models.KindRental {
		return fmt.Errorf("kind %s cannot be marked sold", kind)
	}

	current, err := s.getModerationState(ctx, mk, kind, id)
	if err != nil {
		return err
	}
	decision, err := moderation.MarkSold(current, time.Now())
	if err != nil {
		return err
	}

	_, err = s.applyDecision(ctx, mk, kind, id, decision,
		"SET #s = :to, sold_at = :at, updated_at = :at",
		nil)
	return err
}

func kindOf(kind models.ModeratedKind) (moderatedKind, error) {
	mk, ok := moderatedKinds[kind]
	if !ok {
		return moderatedKind{}, fmt.Errorf("unknown moderated kind %q", kind)
	}
	return mk, nil
}

// getModerationState reads the record's current status for transition
// validation. The conditional write below re-checks it, so a race between
// the read and the write cannot corrupt state, only fail cleanly.
func (s *Store) getModerationState(ctx context.Context, mk moderatedKind, kind models.ModeratedKind, id string) (models.ApprovalStatus, error) {
	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(mk.table(s.Tables)),
		Key:       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to get %s %s: %w", kind, id, err)
	}
	if out.Item == nil {
		return "", &models.NotFoundError{Kind: string(kind), ID: id}
	}
	return models.ApprovalStatus(stringAttr(out.Item, mk.statusAttr)), nil
}

// applyDecision performs the conditional status update. update must use #s
// for the status attribute and the :to / :at placeholders; extra values are
// merged in. On a failed condition the record is re-read so the caller gets
// either a NotFoundError or an InvalidStateError with the real current state.
func (s *Store) applyDecision(ctx context.Context, mk moderatedKind, kind models.ModeratedKind, id string, decision moderation.Decision, update string, extra map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
	atAV, err := attributevalue.Marshal(decision.At)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal decision timestamp: %w", err)
	}

	values := map[string]types.AttributeValue{
		":to": &types.AttributeValueMemberS{Value: string(decision.To)},
		":at": atAV,
	}
	for k, v := range extra {
		values[k] = v
	}

	condition := "attribute_exists(id) AND ("
	for i, from := range decision.AllowedFrom {
		placeholder := fmt.Sprintf(":from%d", i)
		values[placeholder] = &types.AttributeValueMemberS{Value: string(from)}
		if i > 0 {
			condition += " OR "
		}
		condition += "#s = " + placeholder
	}
	condition += ")"

	out, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(mk.table(s.Tables)),
		Key:                       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
		UpdateExpression:          aws.String(update),
		ConditionExpression:       aws.String(condition),
		ExpressionAttributeNames:  map[string]string{"#s": mk.statusAttr},
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var condFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condFailed) {
			return nil, s.staleTransitionError(ctx, mk, kind, id, decision)
		}
		return nil, fmt.Errorf("failed to apply moderation decision: %w", err)
	}

	return out.Attributes, nil
}

// staleTransitionError distinguishes a vanished record from a lost race.
func (s *Store) staleTransitionError(ctx context.Context, mk moderatedKind, kind models.ModeratedKind, id string, decision moderation.Decision) error {
	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(mk.table(s.Tables)),
		Key:       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
	})
	if err != nil || out.Item == nil {
		return &models.NotFoundError{Kind: string(kind), ID: id}
	}
	return &models.InvalidStateError{
		Current:   stringAttr(out.Item, mk.statusAttr),
		Attempted: string(decision.To),
	}
}

func ownerOf(attrs map[string]types.AttributeValue, fallback string) string {
	if owner := stringAttr(attrs, "owner_id"); owner != "" {
		return owner
	}
	return fallback
}

func stringAttr(attrs map[string]types.AttributeValue, name string) string {
	if attrs == nil {
		return ""
	}
	if v, ok := attrs[name].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}
