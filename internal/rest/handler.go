package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/access-service/internal/access"
	"github.com/s21platform/access-service/internal/config"
	api "github.com/s21platform/access-service/internal/generated"
	"github.com/s21platform/access-service/internal/model"
)

type Handler struct {
	repository DBRepo
	checker    AccessChecker
}

func New(repo DBRepo, checker AccessChecker) *Handler {
	return &Handler{
		repository: repo,
		checker:    checker,
	}
}

func (h *Handler) GetStreamAccessById(w http.ResponseWriter, r *http.Request, streamId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetStreamAccessById")

	user, ok := h.requestUser(w, r, logger)
	if !ok {
		return
	}

	stream, recipient, sub, err := h.checker.ByID(r.Context(), user, streamId)
	if err != nil {
		h.writeAccessError(w, logger, err)
		return
	}

	h.writeJSON(w, streamAccessResponse(stream, recipient, sub), http.StatusOK)
}

func (h *Handler) GetStreamAccessByName(w http.ResponseWriter, r *http.Request, params api.GetStreamAccessByNameParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetStreamAccessByName")

	user, ok := h.requestUser(w, r, logger)
	if !ok {
		return
	}

	stream, recipient, sub, err := h.checker.ByName(r.Context(), user, params.StreamName)
	if err != nil {
		h.writeAccessError(w, logger, err)
		return
	}

	h.writeJSON(w, streamAccessResponse(stream, recipient, sub), http.StatusOK)
}

func (h *Handler) FilterStreams(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("FilterStreams")

	var req api.FilterStreamsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	user, ok := h.requestUser(w, r, logger)
	if !ok {
		return
	}

	streams, err := h.repository.GetStreamsByIDs(r.Context(), req.StreamIds)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get streams: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get streams: %v", err), http.StatusInternalServerError)
		return
	}

	authorized, unauthorized, err := h.checker.FilterAuthorization(r.Context(), user, streams)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to filter streams: %v", err))
		h.writeError(w, fmt.Sprintf("failed to filter streams: %v", err), http.StatusInternalServerError)
		return
	}

	response := api.FilterStreamsResponse{
		Authorized:   apiStreams(authorized),
		Unauthorized: apiStreams(unauthorized),
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) requestUser(w http.ResponseWriter, r *http.Request, logger logger_lib.LoggerInterface) (*model.User, bool) {
	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return nil, false
	}

	user, err := h.repository.GetUserByUUID(r.Context(), userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get user: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get user: %v", err), http.StatusInternalServerError)
		return nil, false
	}

	if user == nil {
		logger.Error(fmt.Sprintf("unknown user %s", userUUID))
		h.writeError(w, "unknown user", http.StatusForbidden)
		return nil, false
	}

	return user, true
}

// writeAccessError maps a denied check to 400 with the checker's message; the
// message is identical for missing and forbidden streams, so the response
// does not reveal whether the stream exists.
func (h *Handler) writeAccessError(w http.ResponseWriter, logger logger_lib.LoggerInterface, err error) {
	var accessErr *access.AccessError
	if errors.As(err, &accessErr) {
		logger.Warn(fmt.Sprintf("access denied: %s", accessErr.Message))
		h.writeError(w, accessErr.Message, http.StatusBadRequest)
		return
	}

	logger.Error(fmt.Sprintf("failed to check access: %v", err))
	h.writeError(w, fmt.Sprintf("failed to check access: %v", err), http.StatusInternalServerError)
}

func streamAccessResponse(stream *model.Stream, recipient *model.Recipient, sub *model.Subscription) api.StreamAccessResponse {
	response := api.StreamAccessResponse{
		Stream:      apiStream(*stream),
		RecipientId: recipient.ID,
		Subscribed:  sub != nil,
	}

	if sub != nil {
		response.SubscriptionId = &sub.ID
	}

	return response
}

func apiStream(stream model.Stream) api.Stream {
	return api.Stream{
		Id:         stream.ID,
		RealmId:    stream.RealmID,
		Name:       stream.Name,
		InviteOnly: stream.InviteOnly,
	}
}

func apiStreams(streams []model.Stream) []api.Stream {
	result := make([]api.Stream, len(streams))
	for i, stream := range streams {
		result[i] = apiStream(stream)
	}

	return result
}

// ----------------------------- helpers -----------------------------

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
