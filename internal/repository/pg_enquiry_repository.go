package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nsara/website/internal/model"
)

// rowQuerier is the slice of pgxpool.Pool the repository needs.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PgEnquiryRepository is the PostgreSQL implementation of EnquiryRepository.
type PgEnquiryRepository struct {
	db func(ctx context.Context) (rowQuerier, error)
}

// NewPgEnquiryRepository creates a PgEnquiryRepository backed by the shared pool.
func NewPgEnquiryRepository(pool *LazyPool) *PgEnquiryRepository {
	return &PgEnquiryRepository{
		db: func(ctx context.Context) (rowQuerier, error) {
			p, err := pool.Get(ctx)
			if err != nil {
				return nil, err
			}
			return p, nil
		},
	}
}

// Ensure PgEnquiryRepository implements EnquiryRepository at compile time.
var _ EnquiryRepository = (*PgEnquiryRepository)(nil)

// Save inserts a new enquiries row and populates CreatedAt from the
// RETURNING clause.
func (r *PgEnquiryRepository) Save(ctx context.Context, e *model.Enquiry) error {
	db, err := r.db(ctx)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	err = db.QueryRow(ctx,
		`INSERT INTO enquiries (id, name, email, mobile, country)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		e.ID, e.Name, e.Email, e.Mobile, e.Country,
	).Scan(&e.CreatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("insert enquiry: %w", err)
	}
	return nil
}
