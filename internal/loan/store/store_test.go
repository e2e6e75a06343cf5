package store_test

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fundexio/fundexio/internal/database"
	"github.com/fundexio/fundexio/internal/loan"
	"github.com/fundexio/fundexio/internal/loan/store"
	notificationStore "github.com/fundexio/fundexio/internal/notification/store"
	"github.com/fundexio/fundexio/internal/principal"
)

// openTestDB connects to FUNDEXIO_TEST_DATABASE_URL and skips the test when it is unset.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	url := os.Getenv("FUNDEXIO_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("FUNDEXIO_TEST_DATABASE_URL not set")
	}

	db, err := database.New(url)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(context.Background(), db))

	return db
}

func TestStore_ApplicationLifecycle(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	banker := principal.New(uuid.New(), principal.RoleBanker)
	applicant := principal.New(uuid.New(), principal.RoleBusiness)
	svc := loan.NewService(store.New(db))

	product, err := svc.CreateProduct(ctx, banker, loan.ProductParams{
		Title:          "Integration Term Loan",
		BankName:       "Integration Bank",
		MinAmount:      decimal.NewFromInt(5000),
		MaxAmount:      decimal.NewFromInt(50000),
		InterestRate:   "9%",
		Tenure:         "2 Years",
		ProcessingTime: "3 Days",
	})
	require.NoError(t, err)
	assert.False(t, product.CreatedAt.IsZero())

	app, err := svc.Apply(ctx, applicant, loan.ApplyParams{
		ProductID: product.ID,
		Amount:    decimal.RequireFromString("12500.50"),
		Notes:     "expansion",
	})
	require.NoError(t, err)

	summary, err := svc.BankerSummary(ctx, banker)
	require.NoError(t, err)
	assert.Equal(t, loan.BankerSummary{ActiveProducts: 1, PendingApplications: 1, TotalApplications: 1}, *summary)

	apps, err := svc.Applications(ctx, banker)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "Integration Term Loan", apps[0].ProductTitle)
	assert.True(t, apps[0].AmountRequested.Equal(decimal.RequireFromString("12500.50")))

	notes, err := notificationStore.New(db).ListByRecipient(ctx, banker.ID)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "New Loan Application", notes[0].Title)

	_, err = svc.Decide(ctx, principal.New(uuid.New(), principal.RoleBanker), app.ID, loan.StatusApproved)
	assert.ErrorIs(t, err, loan.ErrForbidden)

	decided, err := svc.Decide(ctx, banker, app.ID, loan.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, loan.StatusApproved, decided.Status)

	active, err := svc.ActiveLoans(ctx, applicant)
	require.NoError(t, err)
	assert.Equal(t, 1, active)

	notes, err = notificationStore.New(db).ListByRecipient(ctx, applicant.ID)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Loan Application Approved", notes[0].Title)
}

func TestStore_UnknownIDs(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	svc := loan.NewService(store.New(db))

	_, err := svc.Apply(ctx, principal.New(uuid.New(), principal.RoleBusiness), loan.ApplyParams{
		ProductID: uuid.New(),
		Amount:    decimal.NewFromInt(5000),
	})
	assert.ErrorIs(t, err, loan.ErrProductNotFound)

	_, err = svc.Decide(ctx, principal.New(uuid.New(), principal.RoleBanker), uuid.New(), loan.StatusRejected)
	assert.ErrorIs(t, err, loan.ErrApplicationNotFound)

	summary, err := svc.BankerSummary(ctx, principal.New(uuid.New(), principal.RoleBanker))
	require.NoError(t, err)
	assert.Zero(t, *summary)
}
