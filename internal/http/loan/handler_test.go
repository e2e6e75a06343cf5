package loan_test

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

	"github.com/fundexio/fundexio/internal/http/auth"
	loanHandler "github.com/fundexio/fundexio/internal/http/loan"
	"github.com/fundexio/fundexio/internal/loan"
	"github.com/fundexio/fundexio/internal/principal"
)

const secret = "handler-test-secret"

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

func newRouter(repo loan.Repository) http.Handler {
	h := loanHandler.NewHandler(loan.NewService(repo))

	r := chi.NewRouter()
	r.Route("/loans", func(r chi.Router) {
		h.Routes(r, auth.Authenticate(secret))
	})

	return r
}

func serve(t *testing.T, repo loan.Repository, method, path, body string, actor *principal.Principal) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	if actor != nil {
		req.Header.Set("Authorization", bearer(t, *actor))
	}

	rec := httptest.NewRecorder()
	newRouter(repo).ServeHTTP(rec, req)

	return rec
}

func TestHandler_ListProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := loan.NewMockRepository(ctrl)
	repo.EXPECT().ListActiveProducts(gomock.Any()).Return([]*loan.Product{
		{ID: uuid.New(), Title: "SME Growth Loan", MinAmount: decimal.NewFromInt(5000), Type: loan.TypeTermLoan, IsActive: true},
	}, nil)

	rec := serve(t, repo, http.MethodGet, "/loans/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got []loanHandler.ProductResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "SME Growth Loan", got[0].Title)
}

func TestHandler_CreateProduct(t *testing.T) {
	banker := principal.New(uuid.New(), principal.RoleBanker)
	business := principal.New(uuid.New(), principal.RoleBusiness)

	const body = `{
		"title": "SME Growth Loan",
		"bank_name": "First Valley Bank",
		"min_amount": 5000,
		"max_amount": 50000,
		"interest_rate": "10-12%",
		"tenure": "1-5 Years",
		"processing_time": "7 Days",
		"type": "LINE_OF_CREDIT"
	}`

	type testCase struct {
		name       string
		actor      *principal.Principal
		body       string
		setupMock  func(repo *loan.MockRepository)
		wantStatus int
	}

	tests := []testCase{
		{
			name:  "Created",
			actor: &banker,
			body:  body,
			setupMock: func(repo *loan.MockRepository) {
				repo.EXPECT().
					CreateProduct(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *loan.Product) error {
						assert.Equal(t, loan.TypeLineOfCredit, p.Type)
						return nil
					})
			},
			wantStatus: http.StatusCreated,
		},
		{name: "Unauthenticated", body: body, wantStatus: http.StatusUnauthorized},
		{name: "Business", actor: &business, body: body, wantStatus: http.StatusForbidden},
		{
			name:       "UnknownType",
			actor:      &banker,
			body:       strings.Replace(body, "LINE_OF_CREDIT", "MORTGAGE", 1),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "MaximumBelowMinimum",
			actor:      &banker,
			body:       strings.Replace(body, `"max_amount": 50000`, `"max_amount": 4000`, 1),
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := loan.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			rec := serve(t, repo, http.MethodPost, "/loans/", tt.body, tt.actor)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestHandler_Apply(t *testing.T) {
	business := principal.New(uuid.New(), principal.RoleBusiness)
	banker := principal.New(uuid.New(), principal.RoleBanker)
	product := &loan.Product{
		ID:        uuid.New(),
		BankerID:  banker.ID,
		Title:     "SME Growth Loan",
		MinAmount: decimal.NewFromInt(5000),
		MaxAmount: decimal.NewFromInt(50000),
		IsActive:  true,
	}

	bodyFor := func(amount string) string {
		return `{"loan_product_id":"` + product.ID.String() + `","amount_requested":` + amount + `}`
	}

	type testCase struct {
		name       string
		actor      *principal.Principal
		body       string
		setupMock  func(repo *loan.MockRepository, tx *loan.MockTx)
		wantStatus int
	}

	tests := []testCase{
		{
			name:  "Created",
			actor: &business,
			body:  bodyFor("20000"),
			setupMock: func(repo *loan.MockRepository, tx *loan.MockTx) {
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().GetProduct(gomock.Any(), product.ID).Return(product, nil)
				tx.EXPECT().CreateApplication(gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantStatus: http.StatusCreated,
		},
		{name: "Banker", actor: &banker, body: bodyFor("20000"), wantStatus: http.StatusForbidden},
		{name: "BelowFloor", actor: &business, body: bodyFor("999"), wantStatus: http.StatusBadRequest},
		{name: "SubCent", actor: &business, body: bodyFor("20000.005"), wantStatus: http.StatusBadRequest},
		{
			name:  "OutsideProductLimits",
			actor: &business,
			body:  bodyFor("1000"),
			setupMock: func(repo *loan.MockRepository, tx *loan.MockTx) {
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().GetProduct(gomock.Any(), product.ID).Return(product, nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "ProductNotFound",
			actor: &business,
			body:  bodyFor("20000"),
			setupMock: func(repo *loan.MockRepository, tx *loan.MockTx) {
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().GetProduct(gomock.Any(), product.ID).Return(nil, loan.ErrProductNotFound)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := loan.NewMockRepository(ctrl)
			tx := loan.NewMockTx(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo, tx)
			}

			rec := serve(t, repo, http.MethodPost, "/loans/apply", tt.body, tt.actor)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestHandler_Decide(t *testing.T) {
	banker := principal.New(uuid.New(), principal.RoleBanker)
	otherBanker := principal.New(uuid.New(), principal.RoleBanker)

	type testCase struct {
		name       string
		actor      *principal.Principal
		path       func(id uuid.UUID) string
		body       string
		setupMock  func(repo *loan.MockRepository, tx *loan.MockTx, app *loan.Application, p *loan.Product)
		wantStatus int
	}

	statusPath := func(id uuid.UUID) string { return "/loans/applications/" + id.String() + "/status" }

	tests := []testCase{
		{
			name:  "Approved",
			actor: &banker,
			path:  statusPath,
			body:  `{"status":"APPROVED"}`,
			setupMock: func(repo *loan.MockRepository, tx *loan.MockTx, app *loan.Application, p *loan.Product) {
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().LockApplication(gomock.Any(), app.ID).Return(app, p, nil)
				tx.EXPECT().UpdateStatus(gomock.Any(), app).Return(nil)
				tx.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "PendingIsNotADecision",
			actor:      &banker,
			path:       statusPath,
			body:       `{"status":"PENDING"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "InvalidID",
			actor:      &banker,
			path:       func(uuid.UUID) string { return "/loans/applications/not-a-uuid/status" },
			body:       `{"status":"APPROVED"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "OtherBanker",
			actor: &otherBanker,
			path:  statusPath,
			body:  `{"status":"REJECTED"}`,
			setupMock: func(repo *loan.MockRepository, tx *loan.MockTx, app *loan.Application, p *loan.Product) {
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().LockApplication(gomock.Any(), app.ID).Return(app, p, nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:  "NotFound",
			actor: &banker,
			path:  statusPath,
			body:  `{"status":"APPROVED"}`,
			setupMock: func(repo *loan.MockRepository, tx *loan.MockTx, app *loan.Application, _ *loan.Product) {
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().LockApplication(gomock.Any(), app.ID).Return(nil, nil, loan.ErrApplicationNotFound)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := loan.NewMockRepository(ctrl)
			tx := loan.NewMockTx(ctrl)
			p := &loan.Product{ID: uuid.New(), BankerID: banker.ID, Title: "SME Growth Loan"}
			app := &loan.Application{ID: uuid.New(), ProductID: p.ID, ApplicantID: uuid.New(), Status: loan.StatusPending}

			if tt.setupMock != nil {
				tt.setupMock(repo, tx, app, p)
			}

			rec := serve(t, repo, http.MethodPatch, tt.path(app.ID), tt.body, tt.actor)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			if tt.wantStatus == http.StatusOK {
				var got loanHandler.ApplicationResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Equal(t, loan.StatusApproved, got.Status)
			}
		})
	}
}

func TestHandler_Applications(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	banker := principal.New(uuid.New(), principal.RoleBanker)
	advisor := principal.New(uuid.New(), principal.RoleAdvisor)

	repo := loan.NewMockRepository(ctrl)
	repo.EXPECT().
		ListApplicationsByBanker(gomock.Any(), banker.ID).
		Return([]*loan.Application{{ID: uuid.New(), ProductTitle: "SME Growth Loan", Status: loan.StatusPending}}, nil)

	rec := serve(t, repo, http.MethodGet, "/loans/applications", "", &banker)
	require.Equal(t, http.StatusOK, rec.Code)

	var got []loanHandler.ApplicationResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "SME Growth Loan", got[0].ProductTitle)

	rec = serve(t, repo, http.MethodGet, "/loans/applications", "", &advisor)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
