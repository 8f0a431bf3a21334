//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package access

import (
	"context"

	"github.com/s21platform/access-service/internal/model"
)

type StreamProvider interface {
	GetStreamByID(ctx context.Context, streamID string) (*model.Stream, error)
	GetStreamByName(ctx context.Context, name, realmID string) (*model.Stream, error)
}

type RecipientProvider interface {
	GetRecipient(ctx context.Context, recipientType, typeID string) (*model.Recipient, error)
	BulkGetRecipients(ctx context.Context, recipientType string, typeIDs []string) (map[string]model.Recipient, error)
}

type SubscriptionProvider interface {
	FindActiveSubscription(ctx context.Context, userUUID, recipientID string) (*model.Subscription, error)
	FindActiveSubscriptions(ctx context.Context, userUUID string, recipientIDs []string) ([]model.Subscription, error)
}
