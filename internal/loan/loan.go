package loan

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductType string

const (
	TypeTermLoan           ProductType = "TERM_LOAN"
	TypeLineOfCredit       ProductType = "LINE_OF_CREDIT"
	TypeEquipmentFinancing ProductType = "EQUIPMENT_FINANCING"
)

func (t ProductType) Valid() bool {
	switch t {
	case TypeTermLoan, TypeLineOfCredit, TypeEquipmentFinancing:
		return true
	}

	return false
}

type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "PENDING"
	StatusApproved ApplicationStatus = "APPROVED"
	StatusRejected ApplicationStatus = "REJECTED"
)

var (
	ErrProductNotFound     = errors.New("loan product not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrForbidden           = errors.New("not authorized to manage this loan")
	ErrInvalid             = errors.New("invalid loan request")
)

// MinAmount is the smallest amount a product may offer or a business may request.
var MinAmount = decimal.NewFromInt(1000)

// Product is a loan offer published by a banker.
type Product struct {
	ID             uuid.UUID
	BankerID       uuid.UUID
	Title          string
	BankName       string
	MinAmount      decimal.Decimal
	MaxAmount      decimal.Decimal
	InterestRate   string
	Tenure         string
	ProcessingTime string
	Description    string
	Type           ProductType
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Covers reports whether amount lies within the product's limits.
func (p *Product) Covers(amount decimal.Decimal) bool {
	return amount.GreaterThanOrEqual(p.MinAmount) && amount.LessThanOrEqual(p.MaxAmount)
}

// Application is a business's request against a Product.
type Application struct {
	ID              uuid.UUID
	ProductID       uuid.UUID
	ApplicantID     uuid.UUID
	AmountRequested decimal.Decimal
	Status          ApplicationStatus
	Notes           string
	ProductTitle    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// BankerSummary counts a banker's products and the applications against them.
type BankerSummary struct {
	ActiveProducts      int
	PendingApplications int
	TotalApplications   int
}
