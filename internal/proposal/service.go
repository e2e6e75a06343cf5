package proposal

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fundexio/fundexio/internal/principal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=proposal
type Repository interface {
	CreateProposal(ctx context.Context, p *Proposal) error
	GetProposal(ctx context.Context, id uuid.UUID) (*Proposal, error)
	ListProposals(ctx context.Context, filter ListFilter) ([]*Proposal, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Proposal, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Title            string
	Description      string
	ShortDescription string
	AmountAsked      decimal.Decimal
	EquityOffered    decimal.Decimal
	Industry         string
	FundingStage     string
	Images           []string
}

// ListFilter narrows the public catalogue. Only ACTIVE proposals are ever listed.
type ListFilter struct {
	Industry     string
	FundingStage string
	Search       string
}

var hundred = decimal.NewFromInt(100)

// Create posts a new ACTIVE proposal owned by the acting business user.
func (s *Service) Create(ctx context.Context, actor principal.Principal, params CreateParams) (*Proposal, error) {
	if !actor.Is(principal.RoleBusiness) {
		return nil, ErrForbidden
	}

	if !params.AmountAsked.IsPositive() {
		return nil, fmt.Errorf("%w: amount asked must be greater than 0", ErrInvalid)
	}

	if !StorableAmount(params.AmountAsked) {
		return nil, fmt.Errorf("%w: amount asked must be a whole number of cents", ErrInvalid)
	}

	if params.EquityOffered.IsNegative() || params.EquityOffered.GreaterThan(hundred) {
		return nil, fmt.Errorf("%w: equity offered must be between 0 and 100", ErrInvalid)
	}

	if !params.EquityOffered.Equal(params.EquityOffered.Round(2)) {
		return nil, fmt.Errorf("%w: equity offered allows at most two decimal places", ErrInvalid)
	}

	p := &Proposal{
		CreatedBy:        actor.ID,
		Title:            params.Title,
		Description:      params.Description,
		ShortDescription: params.ShortDescription,
		AmountAsked:      params.AmountAsked,
		EquityOffered:    params.EquityOffered,
		Industry:         params.Industry,
		FundingStage:     params.FundingStage,
		Status:           StatusActive,
		TotalFunded:      decimal.Zero,
		Images:           params.Images,
	}
	if err := s.repo.CreateProposal(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Proposal, error) {
	return s.repo.GetProposal(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Proposal, error) {
	return s.repo.ListProposals(ctx, filter)
}

// ListByOwner returns every proposal the user created, newest first, whatever its status.
func (s *Service) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Proposal, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}
