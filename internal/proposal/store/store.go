package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fundexio/fundexio/internal/proposal"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Scanner is satisfied by both *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// Columns is the column list ScanProposal expects, aliased to p.
const Columns = `
	p.id, p.created_by, p.title, p.description, p.short_description, p.amount_asked,
	p.equity_offered, p.industry, p.funding_stage, p.status, p.total_funded,
	p.investor_count, p.images, p.created_at, p.updated_at
`

// ScanProposal reads a proposal row laid out as Columns.
func ScanProposal(s Scanner) (*proposal.Proposal, error) {
	var p proposal.Proposal

	var statusStr string

	var images []byte

	if err := s.Scan(
		&p.ID, &p.CreatedBy, &p.Title, &p.Description, &p.ShortDescription, &p.AmountAsked,
		&p.EquityOffered, &p.Industry, &p.FundingStage, &statusStr, &p.TotalFunded,
		&p.InvestorCount, &images, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	p.Status = proposal.Status(statusStr)

	if len(images) > 0 {
		if err := json.Unmarshal(images, &p.Images); err != nil {
			return nil, fmt.Errorf("decoding images: %w", err)
		}
	}

	return &p, nil
}

func (s *Store) CreateProposal(ctx context.Context, p *proposal.Proposal) error {
	images := p.Images
	if images == nil {
		images = []string{}
	}

	imagesJSON, err := json.Marshal(images)
	if err != nil {
		return fmt.Errorf("encoding images: %w", err)
	}

	query := `
		INSERT INTO proposals (created_by, title, description, short_description, amount_asked,
			equity_offered, industry, funding_stage, status, total_funded, investor_count, images,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = s.db.QueryRowContext(ctx, query,
		p.CreatedBy,
		p.Title,
		p.Description,
		p.ShortDescription,
		p.AmountAsked,
		p.EquityOffered,
		p.Industry,
		p.FundingStage,
		p.Status,
		p.TotalFunded,
		p.InvestorCount,
		imagesJSON,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating proposal: %w", err)
	}

	return nil
}

func (s *Store) GetProposal(ctx context.Context, id uuid.UUID) (*proposal.Proposal, error) {
	query := `SELECT ` + Columns + ` FROM proposals p WHERE p.id = $1`

	p, err := ScanProposal(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, proposal.ErrNotFound
		}

		return nil, fmt.Errorf("getting proposal: %w", err)
	}

	return p, nil
}

func (s *Store) ListProposals(ctx context.Context, filter proposal.ListFilter) ([]*proposal.Proposal, error) {
	query := `SELECT ` + Columns + ` FROM proposals p WHERE p.status = $1`

	args := []any{proposal.StatusActive}

	argIdx := 2

	if filter.Industry != "" {
		query += fmt.Sprintf(" AND p.industry = $%d", argIdx)

		args = append(args, filter.Industry)
		argIdx++
	}

	if filter.FundingStage != "" {
		query += fmt.Sprintf(" AND p.funding_stage = $%d", argIdx)

		args = append(args, filter.FundingStage)
		argIdx++
	}

	if filter.Search != "" {
		query += fmt.Sprintf(" AND (p.title ILIKE $%d OR p.description ILIKE $%d)", argIdx, argIdx)

		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}

	query += " ORDER BY p.created_at DESC"

	return s.list(ctx, query, args...)
}

func (s *Store) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*proposal.Proposal, error) {
	query := `SELECT ` + Columns + ` FROM proposals p WHERE p.created_by = $1 ORDER BY p.created_at DESC`

	return s.list(ctx, query, ownerID)
}

func (s *Store) list(ctx context.Context, query string, args ...any) ([]*proposal.Proposal, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing proposals: %w", err)
	}
	defer rows.Close()

	var proposals []*proposal.Proposal

	for rows.Next() {
		p, err := ScanProposal(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning proposal: %w", err)
		}

		proposals = append(proposals, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating proposal rows: %w", err)
	}

	return proposals, nil
}
