//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/s21platform/access-service/internal/model"
)

type DBRepo interface {
	GetUserByUUID(ctx context.Context, userUUID string) (*model.User, error)
	GetStreamsByIDs(ctx context.Context, streamIDs []string) (model.StreamList, error)
}

type AccessChecker interface {
	ByID(ctx context.Context, user *model.User, streamID string) (*model.Stream, *model.Recipient, *model.Subscription, error)
	ByName(ctx context.Context, user *model.User, streamName string) (*model.Stream, *model.Recipient, *model.Subscription, error)
	FilterAuthorization(ctx context.Context, user *model.User, streams []model.Stream) ([]model.Stream, []model.Stream, error)
}
