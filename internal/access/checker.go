package access

import (
	"context"
	"fmt"

	"github.com/s21platform/access-service/internal/model"
)

const invalidStreamIDMessage = "invalid stream id"

type Checker struct {
	streams       StreamProvider
	recipients    RecipientProvider
	subscriptions SubscriptionProvider
}

func New(
	streams StreamProvider,
	recipients RecipientProvider,
	subscriptions SubscriptionProvider,
) *Checker {
	return &Checker{
		streams:       streams,
		recipients:    recipients,
		subscriptions: subscriptions,
	}
}

// CheckAccess decides whether user may access stream, returning the stream's
// recipient and the user's active subscription (nil if none). On denial it
// returns an AccessError carrying errMessage; callers pass the same message
// for "not found" and "not permitted" so the two cases are indistinguishable.
func (c *Checker) CheckAccess(ctx context.Context, user *model.User, stream *model.Stream, errMessage string) (*model.Recipient, *model.Subscription, error) {
	// Streams in other realms are never accessible, public or not.
	if stream.RealmID != user.RealmID {
		return nil, nil, denied(errMessage)
	}

	recipient, err := c.recipients.GetRecipient(ctx, model.RecipientStream, stream.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get recipient: %w", err)
	}

	sub, err := c.subscriptions.FindActiveSubscription(ctx, user.UUID, recipient.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find subscription: %w", err)
	}

	if stream.IsPublic() {
		return recipient, sub, nil
	}

	if sub != nil {
		return recipient, sub, nil
	}

	return nil, nil, denied(errMessage)
}

// ByID resolves a stream by id and authorizes access in one step. A missing
// id and a denied stream produce the same fixed error message.
func (c *Checker) ByID(ctx context.Context, user *model.User, streamID string) (*model.Stream, *model.Recipient, *model.Subscription, error) {
	stream, err := c.streams.GetStreamByID(ctx, streamID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to get stream: %w", err)
	}

	if stream == nil {
		return nil, nil, nil, denied(invalidStreamIDMessage)
	}

	recipient, sub, err := c.CheckAccess(ctx, user, stream, invalidStreamIDMessage)
	if err != nil {
		return nil, nil, nil, err
	}

	return stream, recipient, sub, nil
}

// ByName resolves a stream by name within the user's realm. The error message
// echoes the queried name for both the not-found and the denied case; that
// leaks the name back to the caller, unlike ByID's fixed message. Kept as is:
// clients rely on the wording, see the error policy note in DESIGN.md.
func (c *Checker) ByName(ctx context.Context, user *model.User, streamName string) (*model.Stream, *model.Recipient, *model.Subscription, error) {
	errMessage := fmt.Sprintf("invalid stream name '%s'", streamName)

	stream, err := c.streams.GetStreamByName(ctx, streamName, user.RealmID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to get stream: %w", err)
	}

	if stream == nil {
		return nil, nil, nil, denied(errMessage)
	}

	recipient, sub, err := c.CheckAccess(ctx, user, stream, errMessage)
	if err != nil {
		return nil, nil, nil, err
	}

	return stream, recipient, sub, nil
}

// FilterAuthorization splits streams into authorized and unauthorized lists.
// A stream is unauthorized iff it is invite-only and the user has no active
// subscription to it; public streams always pass. Unlike CheckAccess, realm
// membership is not re-checked here: callers filter by realm before calling.
// Exactly two bulk collaborator queries are issued regardless of input size.
func (c *Checker) FilterAuthorization(ctx context.Context, user *model.User, streams []model.Stream) ([]model.Stream, []model.Stream, error) {
	streamIDs := make([]string, len(streams))
	for i, stream := range streams {
		streamIDs[i] = stream.ID
	}

	recipients, err := c.recipients.BulkGetRecipients(ctx, model.RecipientStream, streamIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to bulk get recipients: %w", err)
	}

	recipientIDs := make([]string, 0, len(recipients))
	streamIDByRecipient := make(map[string]string, len(recipients))
	for streamID, recipient := range recipients {
		recipientIDs = append(recipientIDs, recipient.ID)
		streamIDByRecipient[recipient.ID] = streamID
	}

	subs, err := c.subscriptions.FindActiveSubscriptions(ctx, user.UUID, recipientIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find subscriptions: %w", err)
	}

	subscribed := make(map[string]struct{}, len(subs))
	for _, sub := range subs {
		subscribed[streamIDByRecipient[sub.RecipientID]] = struct{}{}
	}

	unauthorized := []model.Stream{}
	unauthorizedIDs := make(map[string]struct{})
	for _, stream := range streams {
		if _, ok := subscribed[stream.ID]; ok {
			continue
		}

		if stream.InviteOnly {
			unauthorized = append(unauthorized, stream)
			unauthorizedIDs[stream.ID] = struct{}{}
		}
	}

	authorized := []model.Stream{}
	for _, stream := range streams {
		if _, ok := unauthorizedIDs[stream.ID]; !ok {
			authorized = append(authorized, stream)
		}
	}

	return authorized, unauthorized, nil
}
