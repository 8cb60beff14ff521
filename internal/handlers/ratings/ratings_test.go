package ratings

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ekarpova/taskhub/internal/domain"
	"github.com/ekarpova/taskhub/internal/service/ratingservice"
	pkgauth "github.com/ekarpova/taskhub/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*RatingHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)

	comment := "great work"
	created := &domain.Rating{
		ID:         "r-1",
		MissionID:  "m-1",
		ClientID:   "c-1",
		ProviderID: "p-1",
		Score:      5,
		Comment:    &comment,
	}

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Rating created",
			body: `{"missionId":"m-1","score":5,"comment":"great work"}`,
			prepareMock: func() {
				service.EXPECT().
					CreateRating(gomock.Any(), "c-1", "m-1", 5, gomock.Any()).
					Return(created, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Invalid request body",
			body:         `{invalid json`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Missing mission id",
			body:         `{"score":5}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Mission not found",
			body: `{"missionId":"missing","score":5}`,
			prepareMock: func() {
				service.EXPECT().
					CreateRating(gomock.Any(), "c-1", "missing", 5, gomock.Any()).
					Return(nil, ratingservice.ErrMissionNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Not the mission's client",
			body: `{"missionId":"m-1","score":5}`,
			prepareMock: func() {
				service.EXPECT().
					CreateRating(gomock.Any(), "c-1", "m-1", 5, gomock.Any()).
					Return(nil, ratingservice.ErrNotMissionClient)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Already rated",
			body: `{"missionId":"m-1","score":5}`,
			prepareMock: func() {
				service.EXPECT().
					CreateRating(gomock.Any(), "c-1", "m-1", 5, gomock.Any()).
					Return(nil, ratingservice.ErrAlreadyRated)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Invalid score",
			body: `{"missionId":"m-1","score":6}`,
			prepareMock: func() {
				service.EXPECT().
					CreateRating(gomock.Any(), "c-1", "m-1", 6, gomock.Any()).
					Return(nil, ratingservice.ErrInvalidScore)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Mission not completed",
			body: `{"missionId":"m-1","score":5}`,
			prepareMock: func() {
				service.EXPECT().
					CreateRating(gomock.Any(), "c-1", "m-1", 5, gomock.Any()).
					Return(nil, ratingservice.ErrMissionNotCompleted)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/ratings", bytes.NewReader([]byte(tt.body)))
			ctx := context.WithValue(req.Context(), pkgauth.UserIDKey, "c-1")
			rr := httptest.NewRecorder()

			handler.Create(rr, req.WithContext(ctx))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestGetForProviderHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetProviderRatings(gomock.Any(), "p-1").
		Return([]domain.Rating{{ID: "r-1", Score: 5}, {ID: "r-2", Score: 4}}, 4.5, 2, nil)

	req := httptest.NewRequest("GET", "/api/ratings/provider/p-1", nil)
	req = withURLParam(req, "id", "p-1")
	rr := httptest.NewRecorder()

	handler.GetForProvider(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		AverageScore float64 `json:"averageScore"`
		TotalRatings int     `json:"totalRatings"`
	}
	err := json.NewDecoder(rr.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Equal(t, 4.5, resp.AverageScore)
	assert.Equal(t, 2, resp.TotalRatings)
}

func TestGetByMissionHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Rating found",
			prepareMock: func() {
				service.EXPECT().GetRatingByMission(gomock.Any(), "m-1").
					Return(&domain.Rating{ID: "r-1", MissionID: "m-1", Score: 5}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Rating not found",
			prepareMock: func() {
				service.EXPECT().GetRatingByMission(gomock.Any(), "m-1").
					Return(nil, ratingservice.ErrRatingNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/api/ratings/mission/m-1", nil)
			req = withURLParam(req, "id", "m-1")
			rr := httptest.NewRecorder()

			handler.GetByMission(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
