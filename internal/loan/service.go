package loan

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fundexio/fundexio/internal/metrics"
	"github.com/fundexio/fundexio/internal/notification"
	"github.com/fundexio/fundexio/internal/principal"
	"github.com/fundexio/fundexio/internal/proposal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=loan
type Repository interface {
	CreateProduct(ctx context.Context, p *Product) error
	ListActiveProducts(ctx context.Context) ([]*Product, error)
	ListApplicationsByBanker(ctx context.Context, bankerID uuid.UUID) ([]*Application, error)
	SummarizeBanker(ctx context.Context, bankerID uuid.UUID) (*BankerSummary, error)
	CountApproved(ctx context.Context, applicantID uuid.UUID) (int, error)
	Begin(ctx context.Context) (Tx, error)
}

// Tx changes an application and writes the notification about it in one
// transaction.
type Tx interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*Product, error)
	// LockApplication returns the application and the product it targets,
	// holding the application row until Commit or Rollback.
	LockApplication(ctx context.Context, id uuid.UUID) (*Application, *Product, error)
	CreateApplication(ctx context.Context, app *Application) error
	UpdateStatus(ctx context.Context, app *Application) error
	CreateNotification(ctx context.Context, intent notification.Intent) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type ProductParams struct {
	Title          string
	BankName       string
	MinAmount      decimal.Decimal
	MaxAmount      decimal.Decimal
	InterestRate   string
	Tenure         string
	ProcessingTime string
	Description    string
	Type           ProductType
}

type ApplyParams struct {
	ProductID uuid.UUID
	Amount    decimal.Decimal
	Notes     string
}

func validAmount(d decimal.Decimal) bool {
	return d.GreaterThanOrEqual(MinAmount) && proposal.StorableAmount(d)
}

// CreateProduct publishes a new active loan product owned by the acting banker.
func (s *Service) CreateProduct(ctx context.Context, actor principal.Principal, params ProductParams) (*Product, error) {
	if !actor.Is(principal.RoleBanker) {
		return nil, ErrForbidden
	}

	if params.Type == "" {
		params.Type = TypeTermLoan
	}

	switch {
	case !params.Type.Valid():
		return nil, fmt.Errorf("%w: unknown loan type %q", ErrInvalid, params.Type)
	case !validAmount(params.MinAmount) || !validAmount(params.MaxAmount):
		return nil, fmt.Errorf("%w: loan limits must be at least %s in whole cents", ErrInvalid, MinAmount)
	case params.MaxAmount.LessThan(params.MinAmount):
		return nil, fmt.Errorf("%w: maximum amount is below minimum amount", ErrInvalid)
	}

	p := &Product{
		BankerID:       actor.ID,
		Title:          params.Title,
		BankName:       params.BankName,
		MinAmount:      params.MinAmount,
		MaxAmount:      params.MaxAmount,
		InterestRate:   params.InterestRate,
		Tenure:         params.Tenure,
		ProcessingTime: params.ProcessingTime,
		Description:    params.Description,
		Type:           params.Type,
		IsActive:       true,
	}
	if err := s.repo.CreateProduct(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// ListProducts returns every active product, newest first.
func (s *Service) ListProducts(ctx context.Context) ([]*Product, error) {
	return s.repo.ListActiveProducts(ctx)
}

// Apply files a PENDING application by the acting business and notifies the
// product's banker in the same transaction.
func (s *Service) Apply(ctx context.Context, actor principal.Principal, params ApplyParams) (*Application, error) {
	if !actor.Is(principal.RoleBusiness) {
		return nil, ErrForbidden
	}

	if !validAmount(params.Amount) {
		return nil, fmt.Errorf("%w: amount requested must be at least %s in whole cents", ErrInvalid, MinAmount)
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin loan application: %w", err)
	}
	defer tx.Rollback()

	product, err := tx.GetProduct(ctx, params.ProductID)
	if err != nil {
		return nil, fmt.Errorf("load loan product: %w", err)
	}

	if !product.IsActive {
		return nil, ErrProductNotFound
	}

	if !product.Covers(params.Amount) {
		return nil, fmt.Errorf("%w: amount must be between %s and %s", ErrInvalid,
			notification.FormatMoney(product.MinAmount), notification.FormatMoney(product.MaxAmount))
	}

	app := &Application{
		ProductID:       product.ID,
		ApplicantID:     actor.ID,
		AmountRequested: params.Amount,
		Status:          StatusPending,
		Notes:           params.Notes,
		ProductTitle:    product.Title,
	}
	if err := tx.CreateApplication(ctx, app); err != nil {
		return nil, fmt.Errorf("record loan application: %w", err)
	}

	intent := notification.LoanApplicationReceived(product.BankerID, product.Title, params.Amount)
	if err := tx.CreateNotification(ctx, intent); err != nil {
		return nil, fmt.Errorf("notify banker: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit loan application: %w", err)
	}

	metrics.RecordLoanApplication(string(StatusPending))

	return app, nil
}

// Applications lists the applications against the acting banker's products.
func (s *Service) Applications(ctx context.Context, actor principal.Principal) ([]*Application, error) {
	if !actor.Is(principal.RoleBanker) {
		return nil, ErrForbidden
	}

	return s.repo.ListApplicationsByBanker(ctx, actor.ID)
}

// Decide approves or rejects an application. Only the banker owning the
// product may decide, and the applicant is notified atomically.
func (s *Service) Decide(ctx context.Context, actor principal.Principal, applicationID uuid.UUID, status ApplicationStatus) (*Application, error) {
	if !actor.Is(principal.RoleBanker) {
		return nil, ErrForbidden
	}

	if status != StatusApproved && status != StatusRejected {
		return nil, fmt.Errorf("%w: status must be APPROVED or REJECTED", ErrInvalid)
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin loan decision: %w", err)
	}
	defer tx.Rollback()

	app, product, err := tx.LockApplication(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("lock application: %w", err)
	}

	if product.BankerID != actor.ID {
		return nil, ErrForbidden
	}

	app.Status = status

	if err := tx.UpdateStatus(ctx, app); err != nil {
		return nil, fmt.Errorf("update application status: %w", err)
	}

	intent := notification.LoanApplicationDecided(app.ApplicantID, product.Title, status == StatusApproved)
	if err := tx.CreateNotification(ctx, intent); err != nil {
		return nil, fmt.Errorf("notify applicant: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit loan decision: %w", err)
	}

	metrics.RecordLoanApplication(string(status))
	slog.Info("loan application decided", "application_id", app.ID, "status", status)

	return app, nil
}

func (s *Service) BankerSummary(ctx context.Context, actor principal.Principal) (*BankerSummary, error) {
	return s.repo.SummarizeBanker(ctx, actor.ID)
}

// ActiveLoans counts the acting business's approved applications.
func (s *Service) ActiveLoans(ctx context.Context, actor principal.Principal) (int, error) {
	return s.repo.CountApproved(ctx, actor.ID)
}
