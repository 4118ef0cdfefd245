package repositories

import (
	"context"
	"time"

	"greenvest/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type OfferingRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Offering, error)
	// GetByIDForUpdate loads the offering with its project and takes an
	// exclusive row lock on the offering for the duration of tx. Concurrent
	// confirmations against the same offering serialize on this lock.
	GetByIDForUpdate(ctx context.Context, id int64, tx pgx.Tx) (*models.Offering, error)
	GetActiveByProjectID(ctx context.Context, projectID int64) (*models.Offering, error)
	IncrementSharesSold(ctx context.Context, id int64, shares decimal.Decimal, tx pgx.Tx) error
}

type offeringRepo struct {
	db *pgxpool.Pool
}

func NewOfferingRepository(db *pgxpool.Pool) OfferingRepository {
	return &offeringRepo{db: db}
}

func (r *offeringRepo) q(tx pgx.Tx) dbtx {
	if tx != nil {
		return tx
	}
	return r.db
}

const offeringColumns = `o.id, o.project_id, o.share_price, o.min_investment, o.opens_at, o.closes_at,
		o.status, o.total_shares, o.shares_sold, o.created_at, o.updated_at`

const projectColumns = `p.id, p.name, p.slug, p.type, p.description, p.location, p.location_state,
		p.capacity, p.total_cost, p.funding_goal, p.current_funding, p.expected_annual_return,
		p.minimum_investment, p.duration_months, p.status, p.completion_percentage,
		p.funding_start_date, p.funding_end_date, p.project_start_date, p.expected_completion_date,
		p.image_url, p.highlights, p.documents, p.created_at, p.updated_at`

func scanOffering(row pgx.Row, o *models.Offering) error {
	return row.Scan(&o.ID, &o.ProjectID, &o.SharePrice, &o.MinInvestment, &o.OpensAt, &o.ClosesAt,
		&o.Status, &o.TotalShares, &o.SharesSold, &o.CreatedAt, &o.UpdatedAt)
}

func scanOfferingWithProject(row pgx.Row, o *models.Offering) error {
	p := &models.Project{}
	err := row.Scan(&o.ID, &o.ProjectID, &o.SharePrice, &o.MinInvestment, &o.OpensAt, &o.ClosesAt,
		&o.Status, &o.TotalShares, &o.SharesSold, &o.CreatedAt, &o.UpdatedAt,
		&p.ID, &p.Name, &p.Slug, &p.Type, &p.Description, &p.Location, &p.LocationState,
		&p.Capacity, &p.TotalCost, &p.FundingGoal, &p.CurrentFunding, &p.ExpectedAnnualReturn,
		&p.MinimumInvestment, &p.DurationMonths, &p.Status, &p.CompletionPercentage,
		&p.FundingStartDate, &p.FundingEndDate, &p.ProjectStartDate, &p.ExpectedCompletionDate,
		&p.ImageURL, &p.Highlights, &p.Documents, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return err
	}
	o.Project = p
	return nil
}

func (r *offeringRepo) GetByID(ctx context.Context, id int64) (*models.Offering, error) {
	query := `
		SELECT ` + offeringColumns + `, ` + projectColumns + `
		FROM offerings o
		JOIN projects p ON p.id = o.project_id
		WHERE o.id = $1`

	var o models.Offering
	if err := scanOfferingWithProject(r.db.QueryRow(ctx, query, id), &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *offeringRepo) GetByIDForUpdate(ctx context.Context, id int64, tx pgx.Tx) (*models.Offering, error) {
	// FOR UPDATE OF o locks only the offering row; the project counters are
	// guarded transitively because every writer goes through this lock.
	query := `
		SELECT ` + offeringColumns + `, ` + projectColumns + `
		FROM offerings o
		JOIN projects p ON p.id = o.project_id
		WHERE o.id = $1
		FOR UPDATE OF o`

	var o models.Offering
	if err := scanOfferingWithProject(r.q(tx).QueryRow(ctx, query, id), &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *offeringRepo) GetActiveByProjectID(ctx context.Context, projectID int64) (*models.Offering, error) {
	query := `
		SELECT ` + offeringColumns + `
		FROM offerings o
		WHERE o.project_id = $1
		  AND o.status = 'open'
		  AND (o.opens_at IS NULL OR o.opens_at <= $2)
		  AND (o.closes_at IS NULL OR o.closes_at >= $2)
		ORDER BY o.id
		LIMIT 1`

	var o models.Offering
	if err := scanOffering(r.db.QueryRow(ctx, query, projectID, time.Now()), &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *offeringRepo) IncrementSharesSold(ctx context.Context, id int64, shares decimal.Decimal, tx pgx.Tx) error {
	_, err := r.q(tx).Exec(ctx,
		`UPDATE offerings SET shares_sold = shares_sold + $2, updated_at = now() WHERE id = $1`,
		id, shares,
	)
	return err
}
