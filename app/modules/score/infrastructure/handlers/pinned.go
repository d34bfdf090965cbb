package scorehandlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	scoreservice "github.com/Black-And-White-Club/pinned-scores/app/modules/score/application"
	scoredomain "github.com/Black-And-White-Club/pinned-scores/app/modules/score/domain"
	userservice "github.com/Black-And-White-Club/pinned-scores/app/modules/user/application"
)

// HandleGetPinned serves GET /pinned/pinned.
func (h *ScoreHandlers) HandleGetPinned(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "HandleGetPinned")
	defer span.End()

	q := r.URL.Query()

	lookup, err := parseUserLookup(q)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rx, err := intParam(q, "rx", 0)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	variant, err := scoredomain.ParseVariant(rx)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "rx must be 0, 1 or 2")
		return
	}

	modeArg, err := intParam(q, "mode", 0)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	mode, err := scoredomain.ParseMode(modeArg)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "mode must be between 0 and 3")
		return
	}

	page, err := intParam(q, "p", 1)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	limit, err := intParam(q, "l", scoreservice.DefaultLimit)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	userID, err := h.users.ResolveUser(ctx, lookup)
	if err != nil {
		if errors.Is(err, userservice.ErrUserNotFound) {
			h.writeError(w, http.StatusNotFound, "User not found")
			return
		}
		h.logger.ErrorContext(ctx, "Failed to resolve user", "error", err)
		h.writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	scores, err := h.service.ListPinned(ctx, scoreservice.ListPinnedRequest{
		UserID:  userID,
		Mode:    mode,
		Variant: variant,
		Page:    page,
		Limit:   limit,
	})
	switch {
	case errors.Is(err, scoreservice.ErrInvalidPage):
		h.writeError(w, http.StatusBadRequest, scoreservice.ErrInvalidPage.Error())
		return
	case errors.Is(err, scoreservice.ErrInvalidLimit):
		h.writeError(w, http.StatusBadRequest, scoreservice.ErrInvalidLimit.Error())
		return
	case err != nil:
		h.logger.ErrorContext(ctx, "Failed to list pinned scores", "error", err, "user_id", userID)
		h.writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	resp := PinnedScoresResponse{
		Code:   http.StatusOK,
		Scores: make([]PinnedScoreResponse, 0, len(scores)),
	}
	for _, s := range scores {
		resp.Scores = append(resp.Scores, toPinnedScoreResponse(s))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// parseUserLookup reads name and id. Neither being present is not an error
// here; the user service reports it as an unknown user.
func parseUserLookup(q url.Values) (userservice.UserLookup, error) {
	var lookup userservice.UserLookup
	if q.Has("name") {
		name := q.Get("name")
		lookup.Name = &name
	}
	if raw := q.Get("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return lookup, errors.New("id must be an integer")
		}
		lookup.ID = &id
	}
	return lookup, nil
}

func intParam(q url.Values, key string, def int) (int, error) {
	raw := q.Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return v, nil
}
