package proposal

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fundexio/fundexio/internal/proposal"
)

// Response is the JSON shape of a proposal.
type Response struct {
	ID               uuid.UUID       `json:"id"`
	CreatedBy        uuid.UUID       `json:"created_by"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	ShortDescription string          `json:"short_description"`
	AmountAsked      decimal.Decimal `json:"amount_asked"`
	EquityOffered    decimal.Decimal `json:"equity_offered"`
	Industry         string          `json:"industry"`
	FundingStage     string          `json:"funding_stage"`
	Status           proposal.Status `json:"status"`
	TotalFunded      decimal.Decimal `json:"total_funded"`
	InvestorCount    int             `json:"investor_count"`
	Images           []string        `json:"images"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func ToResponse(p *proposal.Proposal) Response {
	images := p.Images
	if images == nil {
		images = []string{}
	}

	return Response{
		ID:               p.ID,
		CreatedBy:        p.CreatedBy,
		Title:            p.Title,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		AmountAsked:      p.AmountAsked,
		EquityOffered:    p.EquityOffered,
		Industry:         p.Industry,
		FundingStage:     p.FundingStage,
		Status:           p.Status,
		TotalFunded:      p.TotalFunded,
		InvestorCount:    p.InvestorCount,
		Images:           images,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func ToResponseList(ps []*proposal.Proposal) []Response {
	resp := make([]Response, len(ps))
	for i, p := range ps {
		resp[i] = ToResponse(p)
	}

	return resp
}
