package notification

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Type classifies what a notification is about.
type Type string

const (
	TypeInvestment Type = "INVESTMENT"
	TypeLoan       Type = "LOAN"
	TypeMessage    Type = "MESSAGE"
	TypeSystem     Type = "SYSTEM"
)

// Notification is a persisted message addressed to one user.
type Notification struct {
	ID          uuid.UUID
	RecipientID uuid.UUID
	Title       string
	Message     string
	Type        Type
	Link        string
	IsRead      bool
	CreatedAt   time.Time
}

// Intent is what a producer asks to be written. It carries no identity or
// read state; those are assigned on insert.
type Intent struct {
	RecipientID uuid.UUID
	Title       string
	Message     string
	Type        Type
	Link        string
}

const proposalsLink = "/marketplace/proposals"

var printer = message.NewPrinter(language.English)

// FormatMoney renders amount with thousands grouping and exactly two
// decimals, for example 1,234,567.89. amount must fit NUMERIC(18,2).
func FormatMoney(amount decimal.Decimal) string {
	amount = amount.Round(2)

	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	whole := amount.IntPart()
	cents := amount.Sub(decimal.NewFromInt(whole)).Shift(2).IntPart()

	return sign + printer.Sprintf("%d", whole) + fmt.Sprintf(".%02d", cents)
}

// InvestmentReceived builds the notice sent to a proposal owner when an
// investment against their proposal commits.
func InvestmentReceived(ownerID uuid.UUID, amount decimal.Decimal, proposalTitle string) Intent {
	return Intent{
		RecipientID: ownerID,
		Title:       "New Investment Received!",
		Message: fmt.Sprintf("You received $%s from an investor for %s.",
			FormatMoney(amount), proposalTitle),
		Type: TypeInvestment,
		Link: proposalsLink,
	}
}

const dashboardLink = "/dashboard"

// LoanApplicationReceived tells a banker that a business applied for one of
// their loan products.
func LoanApplicationReceived(bankerID uuid.UUID, productTitle string, amount decimal.Decimal) Intent {
	return Intent{
		RecipientID: bankerID,
		Title:       "New Loan Application",
		Message:     fmt.Sprintf("A business has applied for '%s'. Amount: $%s", productTitle, FormatMoney(amount)),
		Type:        TypeLoan,
		Link:        dashboardLink,
	}
}

// LoanApplicationDecided tells the applicant how the banker ruled.
func LoanApplicationDecided(applicantID uuid.UUID, productTitle string, approved bool) Intent {
	title, verdict := "Loan Application Rejected", "rejected"
	if approved {
		title, verdict = "Loan Application Approved", "approved"
	}

	return Intent{
		RecipientID: applicantID,
		Title:       title,
		Message:     fmt.Sprintf("Your application for %s has been %s.", productTitle, verdict),
		Type:        TypeLoan,
		Link:        "/marketplace",
	}
}

// SessionRequested tells an advisor that a session was booked and awaits
// confirmation.
func SessionRequested(advisorID uuid.UUID, serviceTitle string, scheduledAt time.Time) Intent {
	return Intent{
		RecipientID: advisorID,
		Title:       "New Session Request",
		Message: fmt.Sprintf("New booking request for '%s' on %s. Check dashboard to confirm.",
			serviceTitle, scheduledAt.Format("Mon Jan 02 2006")),
		Type: TypeSystem,
		Link: dashboardLink,
	}
}
