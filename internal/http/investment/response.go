package investment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fundexio/fundexio/internal/investment"
	"github.com/fundexio/fundexio/internal/proposal"
)

type Response struct {
	ID            uuid.UUID         `json:"id"`
	InvestorID    uuid.UUID         `json:"investor_id"`
	ProposalID    uuid.UUID         `json:"proposal_id"`
	Amount        decimal.Decimal   `json:"amount"`
	Status        investment.Status `json:"status"`
	TransactionID string            `json:"transaction_id,omitempty"`
	Remarks       string            `json:"remarks,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

type proposalSnapshotResponse struct {
	Title    string          `json:"title"`
	Industry string          `json:"industry"`
	Status   proposal.Status `json:"status"`
}

type PortfolioEntryResponse struct {
	Response
	Proposal proposalSnapshotResponse `json:"proposal"`
}

func ToResponse(inv *investment.Investment) Response {
	return Response{
		ID:            inv.ID,
		InvestorID:    inv.InvestorID,
		ProposalID:    inv.ProposalID,
		Amount:        inv.Amount,
		Status:        inv.Status,
		TransactionID: inv.TransactionID,
		Remarks:       inv.Remarks,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
}

func ToPortfolioResponse(entries []*investment.PortfolioEntry) []PortfolioEntryResponse {
	resp := make([]PortfolioEntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = PortfolioEntryResponse{
			Response: ToResponse(&e.Investment),
			Proposal: proposalSnapshotResponse{
				Title:    e.Proposal.Title,
				Industry: e.Proposal.Industry,
				Status:   e.Proposal.Status,
			},
		}
	}

	return resp
}
