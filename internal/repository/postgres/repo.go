package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/s21platform/access-service/internal/config"
	"github.com/s21platform/access-service/internal/model"
)

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

func (r *Repository) GetUserByUUID(ctx context.Context, userUUID string) (*model.User, error) {
	query, args, err := sq.Select("uuid", "realm_id", "nickname").
		From("users").
		Where(sq.Eq{"uuid": userUUID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var user model.User
	err = r.connection.GetContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %v", err)
	}

	return &user, nil
}

func (r *Repository) UpsertUser(ctx context.Context, user *model.UserUpdateMessage) error {
	query, args, err := sq.Insert("users").
		Columns("uuid", "realm_id", "nickname").
		Values(user.UserUUID, user.RealmID, user.Nickname).
		Suffix("ON CONFLICT (uuid) DO UPDATE SET realm_id = EXCLUDED.realm_id, nickname = EXCLUDED.nickname").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.connection.ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) GetStreamByID(ctx context.Context, streamID string) (*model.Stream, error) {
	query, args, err := sq.Select("id", "realm_id", "name", "invite_only").
		From("streams").
		Where(sq.Eq{"id": streamID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var stream model.Stream
	err = r.connection.GetContext(ctx, &stream, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stream: %v", err)
	}

	return &stream, nil
}

func (r *Repository) GetStreamByName(ctx context.Context, name, realmID string) (*model.Stream, error) {
	query, args, err := sq.Select("id", "realm_id", "name", "invite_only").
		From("streams").
		Where(sq.And{
			sq.Eq{"name": name},
			sq.Eq{"realm_id": realmID},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var stream model.Stream
	err = r.connection.GetContext(ctx, &stream, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stream: %v", err)
	}

	return &stream, nil
}

// GetStreamsByIDs returns the streams that exist among streamIDs, preserving
// the order of streamIDs. Missing ids are skipped without error.
func (r *Repository) GetStreamsByIDs(ctx context.Context, streamIDs []string) (model.StreamList, error) {
	if len(streamIDs) == 0 {
		return model.StreamList{}, nil
	}

	query, args, err := sq.Select("id", "realm_id", "name", "invite_only").
		From("streams").
		Where(sq.Eq{"id": streamIDs}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var streams model.StreamList
	err = r.connection.SelectContext(ctx, &streams, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get streams: %v", err)
	}

	byID := make(map[string]model.Stream, len(streams))
	for _, stream := range streams {
		byID[stream.ID] = stream
	}

	ordered := make(model.StreamList, 0, len(streams))
	for _, id := range streamIDs {
		if stream, ok := byID[id]; ok {
			ordered = append(ordered, stream)
		}
	}

	return ordered, nil
}

func (r *Repository) GetRecipient(ctx context.Context, recipientType, typeID string) (*model.Recipient, error) {
	query, args, err := sq.Select("id", "type", "type_id").
		From("recipients").
		Where(sq.And{
			sq.Eq{"type": recipientType},
			sq.Eq{"type_id": typeID},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var recipient model.Recipient
	err = r.connection.GetContext(ctx, &recipient, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipient: %v", err)
	}

	return &recipient, nil
}

func (r *Repository) BulkGetRecipients(ctx context.Context, recipientType string, typeIDs []string) (map[string]model.Recipient, error) {
	recipients := make(map[string]model.Recipient, len(typeIDs))
	if len(typeIDs) == 0 {
		return recipients, nil
	}

	query, args, err := sq.Select("id", "type", "type_id").
		From("recipients").
		Where(sq.And{
			sq.Eq{"type": recipientType},
			sq.Eq{"type_id": typeIDs},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var rows []model.Recipient
	err = r.connection.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipients: %v", err)
	}

	for _, recipient := range rows {
		recipients[recipient.TypeID] = recipient
	}

	return recipients, nil
}

func (r *Repository) FindActiveSubscription(ctx context.Context, userUUID, recipientID string) (*model.Subscription, error) {
	query, args, err := sq.Select("id", "user_uuid", "recipient_id", "active").
		From("subscriptions").
		Where(sq.And{
			sq.Eq{"user_uuid": userUUID},
			sq.Eq{"recipient_id": recipientID},
			sq.Eq{"active": true},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var sub model.Subscription
	err = r.connection.GetContext(ctx, &sub, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find subscription: %v", err)
	}

	return &sub, nil
}

func (r *Repository) FindActiveSubscriptions(ctx context.Context, userUUID string, recipientIDs []string) ([]model.Subscription, error) {
	if len(recipientIDs) == 0 {
		return nil, nil
	}

	query, args, err := sq.Select("id", "user_uuid", "recipient_id", "active").
		From("subscriptions").
		Where(sq.And{
			sq.Eq{"user_uuid": userUUID},
			sq.Eq{"recipient_id": recipientIDs},
			sq.Eq{"active": true},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var subs []model.Subscription
	err = r.connection.SelectContext(ctx, &subs, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find subscriptions: %v", err)
	}

	return subs, nil
}
