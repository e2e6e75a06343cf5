package loan

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fundexio/fundexio/internal/loan"
)

type ProductResponse struct {
	ID             uuid.UUID        `json:"id"`
	BankerID       uuid.UUID        `json:"banker_id"`
	Title          string           `json:"title"`
	BankName       string           `json:"bank_name"`
	MinAmount      decimal.Decimal  `json:"min_amount"`
	MaxAmount      decimal.Decimal  `json:"max_amount"`
	InterestRate   string           `json:"interest_rate"`
	Tenure         string           `json:"tenure"`
	ProcessingTime string           `json:"processing_time"`
	Description    string           `json:"description"`
	Type           loan.ProductType `json:"type"`
	IsActive       bool             `json:"is_active"`
	CreatedAt      time.Time        `json:"created_at"`
}

type ApplicationResponse struct {
	ID              uuid.UUID              `json:"id"`
	ProductID       uuid.UUID              `json:"loan_product_id"`
	ProductTitle    string                 `json:"loan_product_title"`
	ApplicantID     uuid.UUID              `json:"applicant_id"`
	AmountRequested decimal.Decimal        `json:"amount_requested"`
	Status          loan.ApplicationStatus `json:"status"`
	Notes           string                 `json:"notes,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

func ToProductResponse(p *loan.Product) ProductResponse {
	return ProductResponse{
		ID:             p.ID,
		BankerID:       p.BankerID,
		Title:          p.Title,
		BankName:       p.BankName,
		MinAmount:      p.MinAmount,
		MaxAmount:      p.MaxAmount,
		InterestRate:   p.InterestRate,
		Tenure:         p.Tenure,
		ProcessingTime: p.ProcessingTime,
		Description:    p.Description,
		Type:           p.Type,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
	}
}

func ToApplicationResponse(a *loan.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:              a.ID,
		ProductID:       a.ProductID,
		ProductTitle:    a.ProductTitle,
		ApplicantID:     a.ApplicantID,
		AmountRequested: a.AmountRequested,
		Status:          a.Status,
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}
