package advisory_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fundexio/fundexio/internal/advisory"
	advisoryHandler "github.com/fundexio/fundexio/internal/http/advisory"
	"github.com/fundexio/fundexio/internal/http/auth"
	"github.com/fundexio/fundexio/internal/principal"
)

const secret = "handler-test-secret"

var fixedNow = time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC)

func bearer(t *testing.T, p principal.Principal) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		Role: p.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.ID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	return "Bearer " + token
}

func serve(t *testing.T, repo advisory.Repository, method, path, body string, actor *principal.Principal) *httptest.ResponseRecorder {
	t.Helper()

	svc := advisory.NewService(repo, advisory.WithClock(func() time.Time { return fixedNow }))
	h := advisoryHandler.NewHandler(svc)

	r := chi.NewRouter()
	r.Route("/advisory", func(r chi.Router) {
		h.Routes(r, auth.Authenticate(secret))
	})

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	if actor != nil {
		req.Header.Set("Authorization", bearer(t, *actor))
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	return rec
}

func TestHandler_ListOfferings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := advisory.NewMockRepository(ctrl)
	repo.EXPECT().ListActiveOfferings(gomock.Any(), "fundraising").Return([]*advisory.Offering{
		{ID: uuid.New(), Title: "Pitch Deck Review", Price: decimal.NewFromInt(150), Duration: 60, IsActive: true},
	}, nil)

	rec := serve(t, repo, http.MethodGet, "/advisory/?tag=fundraising", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got []advisoryHandler.OfferingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, []string{}, got[0].Tags)
}

func TestHandler_CreateOffering(t *testing.T) {
	advisor := principal.New(uuid.New(), principal.RoleAdvisor)
	investor := principal.New(uuid.New(), principal.RoleInvestor)

	const body = `{
		"title": "Pitch Deck Review",
		"description": "An hour walking through your deck slide by slide.",
		"price": 150,
		"tags": ["fundraising", "seed"]
	}`

	type testCase struct {
		name       string
		actor      *principal.Principal
		body       string
		setupMock  func(repo *advisory.MockRepository)
		wantStatus int
	}

	tests := []testCase{
		{
			name:  "Created",
			actor: &advisor,
			body:  body,
			setupMock: func(repo *advisory.MockRepository) {
				repo.EXPECT().
					CreateOffering(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, o *advisory.Offering) error {
						assert.Equal(t, advisory.DefaultDuration, o.Duration)
						assert.Equal(t, []string{"fundraising", "seed"}, o.Tags)
						return nil
					})
			},
			wantStatus: http.StatusCreated,
		},
		{name: "Unauthenticated", body: body, wantStatus: http.StatusUnauthorized},
		{name: "Investor", actor: &investor, body: body, wantStatus: http.StatusForbidden},
		{
			name:       "ShortDuration",
			actor:      &advisor,
			body:       strings.Replace(body, `"price": 150`, `"price": 150, "duration": 10`, 1),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "SubCentPrice",
			actor:      &advisor,
			body:       strings.Replace(body, `"price": 150`, `"price": 150.001`, 1),
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := advisory.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			rec := serve(t, repo, http.MethodPost, "/advisory/services", tt.body, tt.actor)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestHandler_Book(t *testing.T) {
	business := principal.New(uuid.New(), principal.RoleBusiness)
	advisor := principal.New(uuid.New(), principal.RoleAdvisor)
	offering := &advisory.Offering{ID: uuid.New(), AdvisorID: advisor.ID, Title: "Pitch Deck Review", Duration: 60, IsActive: true}

	bodyFor := func(at time.Time) string {
		return `{"service_id":"` + offering.ID.String() + `","scheduled_at":"` + at.Format(time.RFC3339) + `"}`
	}

	type testCase struct {
		name       string
		actor      *principal.Principal
		body       string
		setupMock  func(repo *advisory.MockRepository, tx *advisory.MockTx)
		wantStatus int
	}

	tests := []testCase{
		{
			name:  "Created",
			actor: &business,
			body:  bodyFor(fixedNow.Add(48 * time.Hour)),
			setupMock: func(repo *advisory.MockRepository, tx *advisory.MockTx) {
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().GetOffering(gomock.Any(), offering.ID).Return(offering, nil)
				tx.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantStatus: http.StatusCreated,
		},
		{name: "Advisor", actor: &advisor, body: bodyFor(fixedNow.Add(48 * time.Hour)), wantStatus: http.StatusForbidden},
		{name: "InThePast", actor: &business, body: bodyFor(fixedNow.Add(-time.Hour)), wantStatus: http.StatusBadRequest},
		{name: "MissingSchedule", actor: &business, body: `{"service_id":"` + offering.ID.String() + `"}`, wantStatus: http.StatusBadRequest},
		{
			name:  "OfferingNotFound",
			actor: &business,
			body:  bodyFor(fixedNow.Add(48 * time.Hour)),
			setupMock: func(repo *advisory.MockRepository, tx *advisory.MockTx) {
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().GetOffering(gomock.Any(), offering.ID).Return(nil, advisory.ErrOfferingNotFound)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := advisory.NewMockRepository(ctrl)
			tx := advisory.NewMockTx(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo, tx)
			}

			rec := serve(t, repo, http.MethodPost, "/advisory/book", tt.body, tt.actor)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestHandler_Bookings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	investor := principal.New(uuid.New(), principal.RoleInvestor)

	repo := advisory.NewMockRepository(ctrl)
	repo.EXPECT().ListByClient(gomock.Any(), investor.ID).Return([]*advisory.Booking{
		{ID: uuid.New(), OfferingTitle: "Pitch Deck Review", Status: advisory.StatusConfirmed},
	}, nil)

	rec := serve(t, repo, http.MethodGet, "/advisory/bookings", "", &investor)
	require.Equal(t, http.StatusOK, rec.Code)

	var got []advisoryHandler.BookingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "Pitch Deck Review", got[0].ServiceTitle)

	rec = serve(t, repo, http.MethodGet, "/advisory/bookings", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
