package scorehandlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	authhandlers "github.com/Black-And-White-Club/pinned-scores/app/modules/auth/infrastructure/handlers"
	scoreservice "github.com/Black-And-White-Club/pinned-scores/app/modules/score/application"
	scoredomain "github.com/Black-And-White-Club/pinned-scores/app/modules/score/domain"
	scoredb "github.com/Black-And-White-Club/pinned-scores/app/modules/score/infrastructure/repositories"
	userservice "github.com/Black-And-White-Club/pinned-scores/app/modules/user/application"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

func newTestHandlers(svc *FakeService, users *FakeUserService) Handlers {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tracer := noop.NewTracerProvider().Tracer("test")
	return NewScoreHandlers(svc, users, logger, tracer)
}

func sampleGraded() scoreservice.GradedScore {
	return scoreservice.GradedScore{
		PinnedScore: scoredb.PinnedScore{
			ScoreID:             77,
			BeatmapMD5:          "0123456789abcdef0123456789abcdef",
			UserID:              1000,
			Score:               12345678,
			ScoreCombo:          812,
			FullCombo:           true,
			Mods:                8,
			Count300:            500,
			Count100:            10,
			Count50:             2,
			CountKatu:           4,
			CountGeki:           90,
			CountMiss:           0,
			Time:                1700000000,
			PlayMode:            0,
			Completed:           3,
			Accuracy:            98.7,
			PP:                  321.5,
			BeatmapID:           1,
			BeatmapsetID:        2,
			SongName:            "Artist - Title [Insane]",
			AR:                  9.3,
			OD:                  8,
			MapCombo:            812,
			HitLength:           143,
			Ranked:              2,
			RankedStatusFreezed: 0,
			LatestUpdate:        1600000000,
		},
		Rank:  98.63,
		Grade: scoredomain.LetterSH,
	}
}

func TestScoreHandlers_HandleGetPinned(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		setupUsers func(*FakeUserService)
		setupSvc   func(*FakeService)
		wantStatus int
		verify     func(t *testing.T, rr *httptest.ResponseRecorder)
	}{
		{
			name: "defaults and payload",
			url:  "/pinned/pinned?id=1000",
			setupUsers: func(u *FakeUserService) {
				u.ResolveUserFunc = func(_ context.Context, l userservice.UserLookup) (int64, error) {
					require.NotNil(t, l.ID)
					assert.Nil(t, l.Name)
					return *l.ID, nil
				}
			},
			setupSvc: func(s *FakeService) {
				s.ListPinnedFunc = func(_ context.Context, req scoreservice.ListPinnedRequest) ([]scoreservice.GradedScore, error) {
					assert.Equal(t, scoreservice.ListPinnedRequest{
						UserID:  1000,
						Mode:    scoredomain.ModeStandard,
						Variant: scoredomain.VariantVanilla,
						Page:    1,
						Limit:   50,
					}, req)
					return []scoreservice.GradedScore{sampleGraded()}, nil
				}
			},
			wantStatus: http.StatusOK,
			verify: func(t *testing.T, rr *httptest.ResponseRecorder) {
				var got PinnedScoresResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))

				want := PinnedScoresResponse{
					Code: 200,
					Scores: []PinnedScoreResponse{{
						ID:         77,
						BeatmapMD5: "0123456789abcdef0123456789abcdef",
						Score:      12345678,
						MaxCombo:   812,
						FullCombo:  true,
						Mods:       8,
						Count300:   500,
						Count100:   10,
						Count50:    2,
						CountGeki:  90,
						CountKatu:  4,
						CountMiss:  0,
						Time:       "2023-11-14T22:13:20Z",
						PlayMode:   0,
						Accuracy:   98.7,
						PP:         321.5,
						Rank:       98.63,
						Grade:      "SH",
						Completed:  3,
						Beatmap: BeatmapResponse{
							BeatmapID:    1,
							BeatmapsetID: 2,
							BeatmapMD5:   "0123456789abcdef0123456789abcdef",
							SongName:     "Artist - Title [Insane]",
							AR:           9.3,
							OD:           8,
							MaxCombo:     812,
							HitLength:    143,
							Ranked:       2,
							LatestUpdate: "2020-09-13T12:26:40",
						},
					}},
				}
				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("response mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name: "explicit parameters",
			url:  "/pinned/pinned?name=Some+Player&rx=2&mode=3&p=3&l=10",
			setupUsers: func(u *FakeUserService) {
				u.ResolveUserFunc = func(_ context.Context, l userservice.UserLookup) (int64, error) {
					require.NotNil(t, l.Name)
					assert.Equal(t, "Some Player", *l.Name)
					return 5, nil
				}
			},
			setupSvc: func(s *FakeService) {
				s.ListPinnedFunc = func(_ context.Context, req scoreservice.ListPinnedRequest) ([]scoreservice.GradedScore, error) {
					assert.Equal(t, scoreservice.ListPinnedRequest{
						UserID:  5,
						Mode:    scoredomain.ModeMania,
						Variant: scoredomain.VariantAutopilot,
						Page:    3,
						Limit:   10,
					}, req)
					return nil, nil
				}
			},
			wantStatus: http.StatusOK,
			verify: func(t *testing.T, rr *httptest.ResponseRecorder) {
				assert.JSONEq(t, `{"code":200,"scores":[]}`, rr.Body.String())
			},
		},
		{
			name:       "user not found",
			url:        "/pinned/pinned?name=ghost",
			wantStatus: http.StatusNotFound,
			verify: func(t *testing.T, rr *httptest.ResponseRecorder) {
				assert.JSONEq(t, `{"code":404,"message":"User not found"}`, rr.Body.String())
			},
		},
		{
			name:       "no user given",
			url:        "/pinned/pinned",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "non numeric id",
			url:        "/pinned/pinned?id=abc",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "rx out of range",
			url:        "/pinned/pinned?id=1&rx=3",
			wantStatus: http.StatusBadRequest,
			verify: func(t *testing.T, rr *httptest.ResponseRecorder) {
				assert.JSONEq(t, `{"code":400,"message":"rx must be 0, 1 or 2"}`, rr.Body.String())
			},
		},
		{
			name:       "mode out of range",
			url:        "/pinned/pinned?id=1&mode=4",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "non numeric limit",
			url:        "/pinned/pinned?id=1&l=lots",
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "limit rejected by service",
			url:  "/pinned/pinned?id=1&l=101",
			setupUsers: func(u *FakeUserService) {
				u.ResolveUserFunc = func(context.Context, userservice.UserLookup) (int64, error) { return 1, nil }
			},
			setupSvc: func(s *FakeService) {
				s.ListPinnedFunc = func(context.Context, scoreservice.ListPinnedRequest) ([]scoreservice.GradedScore, error) {
					return nil, scoreservice.ErrInvalidLimit
				}
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "service failure",
			url:  "/pinned/pinned?id=1",
			setupUsers: func(u *FakeUserService) {
				u.ResolveUserFunc = func(context.Context, userservice.UserLookup) (int64, error) { return 1, nil }
			},
			setupSvc: func(s *FakeService) {
				s.ListPinnedFunc = func(context.Context, scoreservice.ListPinnedRequest) ([]scoreservice.GradedScore, error) {
					return nil, errors.New("db down")
				}
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &FakeService{}
			users := &FakeUserService{}
			if tt.setupSvc != nil {
				tt.setupSvc(svc)
			}
			if tt.setupUsers != nil {
				tt.setupUsers(users)
			}
			h := newTestHandlers(svc, users)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rr := httptest.NewRecorder()
			h.HandleGetPinned(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			if tt.verify != nil {
				tt.verify(t, rr)
			}
		})
	}
}

func TestScoreHandlers_HandlePinUnpin(t *testing.T) {
	tests := []struct {
		name        string
		unpin       bool
		body        string
		noUser      bool
		setupSvc    func(*FakeService)
		wantStatus  int
		wantBody    string
		wantJSON    bool
		wantRequest *scoreservice.PinRequest
	}{
		{
			name:        "pin",
			body:        `{"id":77,"rx":1}`,
			wantStatus:  http.StatusOK,
			wantBody:    `{"score_id":77}`,
			wantJSON:    true,
			wantRequest: &scoreservice.PinRequest{UserID: 1000, ScoreID: 77, Variant: scoredomain.VariantRelax},
		},
		{
			name:        "unpin",
			unpin:       true,
			body:        `{"id":77,"rx":2}`,
			wantStatus:  http.StatusOK,
			wantBody:    `{}`,
			wantJSON:    true,
			wantRequest: &scoreservice.PinRequest{UserID: 1000, ScoreID: 77, Variant: scoredomain.VariantAutopilot},
		},
		{
			name:        "rx defaults to vanilla",
			body:        `{"id":5}`,
			wantStatus:  http.StatusOK,
			wantBody:    `{"score_id":5}`,
			wantJSON:    true,
			wantRequest: &scoreservice.PinRequest{UserID: 1000, ScoreID: 5, Variant: scoredomain.VariantVanilla},
		},
		{
			name: "pin target missing",
			body: `{"id":404,"rx":0}`,
			setupSvc: func(s *FakeService) {
				s.PinFunc = func(context.Context, scoreservice.PinRequest) error { return scoreservice.ErrScoreNotFound }
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "I'd also like to pin a score I don't have... but I can't.",
		},
		{
			name:  "unpin target missing",
			unpin: true,
			body:  `{"id":404,"rx":0}`,
			setupSvc: func(s *FakeService) {
				s.UnpinFunc = func(context.Context, scoreservice.PinRequest) error { return scoreservice.ErrScoreNotFound }
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "I'd also like to unpin a score I don't have... but I can't.",
		},
		{
			name:       "rx out of range",
			body:       `{"id":1,"rx":3}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"code":400,"message":"rx must be 0, 1 or 2"}`,
			wantJSON:   true,
		},
		{
			name:       "missing id",
			body:       `{"rx":0}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"code":400,"message":"id is required"}`,
			wantJSON:   true,
		},
		{
			name:       "malformed body",
			body:       `id=1`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "no authenticated user",
			body:       `{"id":1}`,
			noUser:     true,
			wantStatus: http.StatusBadRequest,
			wantBody:   "No token provided",
		},
		{
			name: "service failure",
			body: `{"id":1}`,
			setupSvc: func(s *FakeService) {
				s.PinFunc = func(context.Context, scoreservice.PinRequest) error { return errors.New("deadlock") }
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotReq *scoreservice.PinRequest
			record := func(_ context.Context, req scoreservice.PinRequest) error {
				gotReq = &req
				return nil
			}
			svc := &FakeService{PinFunc: record, UnpinFunc: record}
			if tt.setupSvc != nil {
				tt.setupSvc(svc)
			}
			h := newTestHandlers(svc, &FakeUserService{})

			path := "/pinned/pin"
			handle := h.HandlePin
			if tt.unpin {
				path = "/pinned/unpin"
				handle = h.HandleUnpin
			}

			req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(tt.body))
			if !tt.noUser {
				req = req.WithContext(authhandlers.WithUserID(req.Context(), 1000))
			}
			rr := httptest.NewRecorder()
			handle(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			switch {
			case tt.wantJSON:
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			case tt.wantBody != "":
				assert.Equal(t, tt.wantBody, rr.Body.String())
			}
			if tt.wantRequest != nil {
				assert.Equal(t, tt.wantRequest, gotReq)
			}
		})
	}
}

// failingWriter accepts the header and rejects every body write.
type failingWriter struct {
	header http.Header
	status int
}

func (f *failingWriter) Header() http.Header { return f.header }
func (f *failingWriter) WriteHeader(status int) { f.status = status }
func (f *failingWriter) Write([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestScoreHandlers_WriteFailureLogged(t *testing.T) {
	tests := []struct {
		name       string
		unpin      bool
		noUser     bool
		wantStatus int
	}{
		{name: "json body", wantStatus: http.StatusOK},
		{name: "empty json body", unpin: true, wantStatus: http.StatusOK},
		{name: "plain text body", noUser: true, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			svc := &FakeService{
				PinFunc:   func(context.Context, scoreservice.PinRequest) error { return nil },
				UnpinFunc: func(context.Context, scoreservice.PinRequest) error { return nil },
			}
			h := NewScoreHandlers(svc, &FakeUserService{},
				slog.New(slog.NewTextHandler(&logs, nil)),
				noop.NewTracerProvider().Tracer("test"),
			)

			handle := h.HandlePin
			if tt.unpin {
				handle = h.HandleUnpin
			}
			req := httptest.NewRequest(http.MethodPost, "/pinned/pin", strings.NewReader(`{"id": 5}`))
			if !tt.noUser {
				req = req.WithContext(authhandlers.WithUserID(req.Context(), 1000))
			}
			w := &failingWriter{header: http.Header{}}
			handle(w, req)

			assert.Equal(t, tt.wantStatus, w.status)
			assert.Contains(t, logs.String(), "Failed to write response")
			assert.Contains(t, logs.String(), "connection reset")
		})
	}
}
