package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fundexio/fundexio/internal/investment"
	"github.com/fundexio/fundexio/internal/notification"
	notificationStore "github.com/fundexio/fundexio/internal/notification/store"
	"github.com/fundexio/fundexio/internal/proposal"
	proposalStore "github.com/fundexio/fundexio/internal/proposal/store"
)

// SQLSTATE codes after which the whole funding transaction can be rerun.
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// classify tags errors caused by concurrent writers with investment.ErrConflict.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeSerializationFailure, codeDeadlockDetected:
			return fmt.Errorf("%w: %w", investment.ErrConflict, err)
		}
	}

	return err
}

func (s *Store) ListByInvestor(ctx context.Context, investorID uuid.UUID) ([]*investment.PortfolioEntry, error) {
	query := `
		SELECT i.id, i.investor_id, i.proposal_id, i.amount, i.status, i.transaction_id, i.remarks,
			i.created_at, i.updated_at, p.title, p.industry, p.status
		FROM investments i
		JOIN proposals p ON p.id = i.proposal_id
		WHERE i.investor_id = $1
		ORDER BY i.created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, investorID)
	if err != nil {
		return nil, fmt.Errorf("listing investments: %w", err)
	}
	defer rows.Close()

	var entries []*investment.PortfolioEntry

	for rows.Next() {
		var e investment.PortfolioEntry

		var statusStr, proposalStatusStr string

		var txID, remarks sql.NullString

		if err := rows.Scan(
			&e.ID, &e.InvestorID, &e.ProposalID, &e.Amount, &statusStr, &txID, &remarks,
			&e.CreatedAt, &e.UpdatedAt, &e.Proposal.Title, &e.Proposal.Industry, &proposalStatusStr,
		); err != nil {
			return nil, fmt.Errorf("scanning investment: %w", err)
		}

		e.Status = investment.Status(statusStr)
		e.TransactionID = txID.String
		e.Remarks = remarks.String
		e.Proposal.Status = proposal.Status(proposalStatusStr)

		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating investment rows: %w", err)
	}

	return entries, nil
}

type fundingTx struct {
	tx *sql.Tx
}

// BeginFunding opens a READ COMMITTED transaction. Serialization of writers
// on the same proposal comes from the row lock taken by LockProposal.
func (s *Store) BeginFunding(ctx context.Context) (investment.FundingTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning funding tx: %w", err)
	}

	return &fundingTx{tx: dbTx}, nil
}

func (f *fundingTx) Commit() error   { return classify(f.tx.Commit()) }
func (f *fundingTx) Rollback() error { return f.tx.Rollback() }

func (f *fundingTx) LockProposal(ctx context.Context, id uuid.UUID) (*proposal.Proposal, error) {
	query := `SELECT ` + proposalStore.Columns + ` FROM proposals p WHERE p.id = $1 FOR UPDATE`

	p, err := proposalStore.ScanProposal(f.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, investment.ErrProposalNotFound
		}

		return nil, fmt.Errorf("locking proposal: %w", classify(err))
	}

	return p, nil
}

func (f *fundingTx) CreateInvestment(ctx context.Context, inv *investment.Investment) error {
	query := `
		INSERT INTO investments (investor_id, proposal_id, amount, status, transaction_id, remarks, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := f.tx.QueryRowContext(ctx, query,
		inv.InvestorID,
		inv.ProposalID,
		inv.Amount,
		inv.Status,
		sql.NullString{String: inv.TransactionID, Valid: inv.TransactionID != ""},
		sql.NullString{String: inv.Remarks, Valid: inv.Remarks != ""},
	).Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating investment: %w", classify(err))
	}

	return nil
}

func (f *fundingTx) UpdateFunding(ctx context.Context, p *proposal.Proposal) error {
	query := `
		UPDATE proposals
		SET total_funded = $1, investor_count = $2, status = $3, updated_at = NOW()
		WHERE id = $4
	`

	res, err := f.tx.ExecContext(ctx, query, p.TotalFunded, p.InvestorCount, p.Status, p.ID)
	if err != nil {
		return fmt.Errorf("updating proposal funding: %w", classify(err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking proposal update: %w", err)
	}

	if n != 1 {
		return investment.ErrProposalNotFound
	}

	return nil
}

func (f *fundingTx) CreateNotification(ctx context.Context, intent notification.Intent) error {
	if _, err := notificationStore.Insert(ctx, f.tx, intent); err != nil {
		return classify(err)
	}

	return nil
}
