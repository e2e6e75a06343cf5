package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fundexio/fundexio/internal/loan"
	"github.com/fundexio/fundexio/internal/notification"
	notificationStore "github.com/fundexio/fundexio/internal/notification/store"
)

const productColumns = `lp.id, lp.banker_id, lp.title, lp.bank_name, lp.min_amount, lp.max_amount,
	lp.interest_rate, lp.tenure, lp.processing_time, lp.description, lp.type, lp.is_active,
	lp.created_at, lp.updated_at`

const applicationColumns = `la.id, la.product_id, la.applicant_id, la.amount_requested, la.status, la.notes,
	la.created_at, la.updated_at, lp.title`

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(s scanner) (*loan.Product, error) {
	var (
		p           loan.Product
		description sql.NullString
		typeStr     string
	)

	if err := s.Scan(
		&p.ID, &p.BankerID, &p.Title, &p.BankName, &p.MinAmount, &p.MaxAmount,
		&p.InterestRate, &p.Tenure, &p.ProcessingTime, &description, &typeStr, &p.IsActive,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	p.Description = description.String
	p.Type = loan.ProductType(typeStr)

	return &p, nil
}

func scanApplication(s scanner) (*loan.Application, error) {
	var (
		a         loan.Application
		notes     sql.NullString
		statusStr string
	)

	if err := s.Scan(
		&a.ID, &a.ProductID, &a.ApplicantID, &a.AmountRequested, &statusStr, &notes,
		&a.CreatedAt, &a.UpdatedAt, &a.ProductTitle,
	); err != nil {
		return nil, err
	}

	a.Notes = notes.String
	a.Status = loan.ApplicationStatus(statusStr)

	return &a, nil
}

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateProduct(ctx context.Context, p *loan.Product) error {
	query := `
		INSERT INTO loan_products (banker_id, title, bank_name, min_amount, max_amount, interest_rate,
			tenure, processing_time, description, type, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		p.BankerID,
		p.Title,
		p.BankName,
		p.MinAmount,
		p.MaxAmount,
		p.InterestRate,
		p.Tenure,
		p.ProcessingTime,
		sql.NullString{String: p.Description, Valid: p.Description != ""},
		p.Type,
		p.IsActive,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating loan product: %w", err)
	}

	return nil
}

func (s *Store) ListActiveProducts(ctx context.Context) ([]*loan.Product, error) {
	query := `SELECT ` + productColumns + ` FROM loan_products lp WHERE lp.is_active ORDER BY lp.created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing loan products: %w", err)
	}
	defer rows.Close()

	var products []*loan.Product

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning loan product: %w", err)
		}

		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating loan product rows: %w", err)
	}

	return products, nil
}

func (s *Store) ListApplicationsByBanker(ctx context.Context, bankerID uuid.UUID) ([]*loan.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM loan_applications la
		JOIN loan_products lp ON lp.id = la.product_id
		WHERE lp.banker_id = $1
		ORDER BY la.created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, bankerID)
	if err != nil {
		return nil, fmt.Errorf("listing loan applications: %w", err)
	}
	defer rows.Close()

	var apps []*loan.Application

	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning loan application: %w", err)
		}

		apps = append(apps, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating loan application rows: %w", err)
	}

	return apps, nil
}

func (s *Store) SummarizeBanker(ctx context.Context, bankerID uuid.UUID) (*loan.BankerSummary, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM loan_products WHERE banker_id = $1 AND is_active),
			COUNT(la.id) FILTER (WHERE la.status = 'PENDING'),
			COUNT(la.id)
		FROM loan_products lp
		LEFT JOIN loan_applications la ON la.product_id = lp.id
		WHERE lp.banker_id = $1
	`

	var sum loan.BankerSummary

	err := s.db.QueryRowContext(ctx, query, bankerID).
		Scan(&sum.ActiveProducts, &sum.PendingApplications, &sum.TotalApplications)
	if err != nil {
		return nil, fmt.Errorf("summarizing banker loans: %w", err)
	}

	return &sum, nil
}

func (s *Store) CountApproved(ctx context.Context, applicantID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM loan_applications WHERE applicant_id = $1 AND status = 'APPROVED'`

	var n int
	if err := s.db.QueryRowContext(ctx, query, applicantID).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting approved loans: %w", err)
	}

	return n, nil
}

type loanTx struct {
	tx *sql.Tx
}

func (s *Store) Begin(ctx context.Context) (loan.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning loan tx: %w", err)
	}

	return &loanTx{tx: dbTx}, nil
}

func (l *loanTx) Commit() error   { return l.tx.Commit() }
func (l *loanTx) Rollback() error { return l.tx.Rollback() }

func (l *loanTx) GetProduct(ctx context.Context, id uuid.UUID) (*loan.Product, error) {
	query := `SELECT ` + productColumns + ` FROM loan_products lp WHERE lp.id = $1`

	p, err := scanProduct(l.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, loan.ErrProductNotFound
		}

		return nil, fmt.Errorf("getting loan product: %w", err)
	}

	return p, nil
}

func (l *loanTx) LockApplication(ctx context.Context, id uuid.UUID) (*loan.Application, *loan.Product, error) {
	query := `
		SELECT ` + applicationColumns + `, ` + productColumns + `
		FROM loan_applications la
		JOIN loan_products lp ON lp.id = la.product_id
		WHERE la.id = $1
		FOR UPDATE OF la
	`

	var (
		a                      loan.Application
		p                      loan.Product
		notes, description     sql.NullString
		statusStr, productType string
		productTitle           string
	)

	err := l.tx.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.ProductID, &a.ApplicantID, &a.AmountRequested, &statusStr, &notes,
		&a.CreatedAt, &a.UpdatedAt, &productTitle,
		&p.ID, &p.BankerID, &p.Title, &p.BankName, &p.MinAmount, &p.MaxAmount,
		&p.InterestRate, &p.Tenure, &p.ProcessingTime, &description, &productType, &p.IsActive,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, loan.ErrApplicationNotFound
		}

		return nil, nil, fmt.Errorf("locking loan application: %w", err)
	}

	a.Notes = notes.String
	a.Status = loan.ApplicationStatus(statusStr)
	a.ProductTitle = productTitle
	p.Description = description.String
	p.Type = loan.ProductType(productType)

	return &a, &p, nil
}

func (l *loanTx) CreateApplication(ctx context.Context, app *loan.Application) error {
	query := `
		INSERT INTO loan_applications (product_id, applicant_id, amount_requested, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := l.tx.QueryRowContext(ctx, query,
		app.ProductID,
		app.ApplicantID,
		app.AmountRequested,
		app.Status,
		sql.NullString{String: app.Notes, Valid: app.Notes != ""},
	).Scan(&app.ID, &app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating loan application: %w", err)
	}

	return nil
}

func (l *loanTx) UpdateStatus(ctx context.Context, app *loan.Application) error {
	query := `UPDATE loan_applications SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING updated_at`

	if err := l.tx.QueryRowContext(ctx, query, app.Status, app.ID).Scan(&app.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return loan.ErrApplicationNotFound
		}

		return fmt.Errorf("updating loan application: %w", err)
	}

	return nil
}

func (l *loanTx) CreateNotification(ctx context.Context, intent notification.Intent) error {
	_, err := notificationStore.Insert(ctx, l.tx, intent)
	return err
}
