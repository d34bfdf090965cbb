package scorehandlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	authhandlers "github.com/Black-And-White-Club/pinned-scores/app/modules/auth/infrastructure/handlers"
	scoreservice "github.com/Black-And-White-Club/pinned-scores/app/modules/score/application"
	scoredomain "github.com/Black-And-White-Club/pinned-scores/app/modules/score/domain"
)

const (
	pinMissingMessage   = "I'd also like to pin a score I don't have... but I can't."
	unpinMissingMessage = "I'd also like to unpin a score I don't have... but I can't."
)

// maxBodyBytes bounds the pin request body.
const maxBodyBytes = 1 << 12

// HandlePin serves POST /pinned/pin.
func (h *ScoreHandlers) HandlePin(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodePinRequest(w, r)
	if !ok {
		return
	}
	if !h.togglePin(w, r, "HandlePin", req, h.service.Pin, pinMissingMessage) {
		return
	}
	h.writeJSON(w, http.StatusOK, PinResponse{ScoreID: req.ScoreID})
}

// HandleUnpin serves POST /pinned/unpin.
func (h *ScoreHandlers) HandleUnpin(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodePinRequest(w, r)
	if !ok {
		return
	}
	if !h.togglePin(w, r, "HandleUnpin", req, h.service.Unpin, unpinMissingMessage) {
		return
	}
	h.writeJSON(w, http.StatusOK, struct{}{})
}

func (h *ScoreHandlers) decodePinRequest(w http.ResponseWriter, r *http.Request) (scoreservice.PinRequest, bool) {
	userID, ok := authhandlers.UserIDFromContext(r.Context())
	if !ok {
		h.writeText(w, http.StatusBadRequest, "No token provided")
		return scoreservice.PinRequest{}, false
	}

	var body PinRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&body); err != nil {
		h.writeError(w, http.StatusBadRequest, "request body must be JSON")
		return scoreservice.PinRequest{}, false
	}
	if body.ID == nil {
		h.writeError(w, http.StatusBadRequest, "id is required")
		return scoreservice.PinRequest{}, false
	}

	rx := 0
	if body.Relax != nil {
		rx = *body.Relax
	}
	variant, err := scoredomain.ParseVariant(rx)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "rx must be 0, 1 or 2")
		return scoreservice.PinRequest{}, false
	}

	return scoreservice.PinRequest{
		UserID:  userID,
		ScoreID: *body.ID,
		Variant: variant,
	}, true
}

func (h *ScoreHandlers) togglePin(
	w http.ResponseWriter,
	r *http.Request,
	spanName string,
	req scoreservice.PinRequest,
	op func(ctx context.Context, req scoreservice.PinRequest) error,
	missingMessage string,
) bool {
	ctx, span := h.tracer.Start(r.Context(), spanName)
	defer span.End()

	err := op(ctx, req)
	switch {
	case err == nil:
		return true
	case errors.Is(err, scoreservice.ErrScoreNotFound):
		h.logger.InfoContext(ctx, "Pin target not found",
			"score_id", req.ScoreID,
			"variant", req.Variant.String(),
			"user_id", req.UserID,
		)
		h.writeText(w, http.StatusBadRequest, missingMessage)
	default:
		h.logger.ErrorContext(ctx, "Failed to update pin state", "error", err, "score_id", req.ScoreID)
		h.writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
	return false
}
