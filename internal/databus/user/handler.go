package user

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/access-service/internal/config"
	"github.com/s21platform/access-service/internal/model"
)

type Handler struct {
	repository DBRepo
}

func New(repo DBRepo) *Handler {
	return &Handler{
		repository: repo,
	}
}

// Handler consumes a user update event and mirrors it into the local users
// table, so access checks resolve the caller's realm without calling out to
// the user service.
func (h *Handler) Handler(ctx context.Context, in []byte) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("UserUpdateHandler")

	var msg model.UserUpdateMessage
	if err := json.Unmarshal(in, &msg); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal user update: %v", err))
		return
	}

	if _, err := uuid.Parse(msg.UserUUID); err != nil {
		logger.Error(fmt.Sprintf("invalid user uuid in update: %v", err))
		return
	}

	if msg.RealmID == "" {
		logger.Error(fmt.Sprintf("user update for %s has no realm id", msg.UserUUID))
		return
	}

	if err := h.repository.UpsertUser(ctx, &msg); err != nil {
		logger.Error(fmt.Sprintf("failed to upsert user %s: %v", msg.UserUUID, err))
		return
	}

	logger.Info(fmt.Sprintf("synced user %s", msg.UserUUID))
}
