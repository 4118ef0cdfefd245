package repositories

import (
	"context"

	"greenvest/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InvestmentRepository interface {
	Create(ctx context.Context, i *models.Investment, tx pgx.Tx) error
	GetByID(ctx context.Context, id int64, tx pgx.Tx) (*models.Investment, error)
	// GetByUserID loads the user's investments together with their projects.
	GetByUserID(ctx context.Context, userID int64) ([]models.Investment, error)
}

type investmentRepo struct {
	db *pgxpool.Pool
}

func NewInvestmentRepository(db *pgxpool.Pool) InvestmentRepository {
	return &investmentRepo{db: db}
}

func (r *investmentRepo) q(tx pgx.Tx) dbtx {
	if tx != nil {
		return tx
	}
	return r.db
}

const investmentColumns = `i.id, i.user_id, i.project_id, i.offering_id, i.amount, i.shares,
		i.share_price, i.current_value, i.total_returns, i.return_percentage, i.status,
		i.invested_at, i.created_at, i.updated_at`

func scanInvestment(row pgx.Row, i *models.Investment) error {
	return row.Scan(&i.ID, &i.UserID, &i.ProjectID, &i.OfferingID, &i.Amount, &i.Shares,
		&i.SharePrice, &i.CurrentValue, &i.TotalReturns, &i.ReturnPercentage, &i.Status,
		&i.InvestedAt, &i.CreatedAt, &i.UpdatedAt)
}

func (r *investmentRepo) Create(ctx context.Context, i *models.Investment, tx pgx.Tx) error {
	query := `
		INSERT INTO investments (user_id, project_id, offering_id, amount, shares, share_price,
			current_value, status, invested_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`

	return r.q(tx).QueryRow(ctx, query,
		i.UserID, i.ProjectID, i.OfferingID, i.Amount, i.Shares, i.SharePrice,
		i.CurrentValue, i.Status, i.InvestedAt,
	).Scan(&i.ID, &i.CreatedAt, &i.UpdatedAt)
}

func (r *investmentRepo) GetByID(ctx context.Context, id int64, tx pgx.Tx) (*models.Investment, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments i WHERE i.id = $1`

	var i models.Investment
	if err := scanInvestment(r.q(tx).QueryRow(ctx, query, id), &i); err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *investmentRepo) GetByUserID(ctx context.Context, userID int64) ([]models.Investment, error) {
	query := `
		SELECT ` + investmentColumns + `, ` + projectColumns + `
		FROM investments i
		JOIN projects p ON p.id = i.project_id
		WHERE i.user_id = $1
		ORDER BY i.invested_at DESC, i.id DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var investments []models.Investment
	for rows.Next() {
		var i models.Investment
		p := &models.Project{}
		err := rows.Scan(&i.ID, &i.UserID, &i.ProjectID, &i.OfferingID, &i.Amount, &i.Shares,
			&i.SharePrice, &i.CurrentValue, &i.TotalReturns, &i.ReturnPercentage, &i.Status,
			&i.InvestedAt, &i.CreatedAt, &i.UpdatedAt,
			&p.ID, &p.Name, &p.Slug, &p.Type, &p.Description, &p.Location, &p.LocationState,
			&p.Capacity, &p.TotalCost, &p.FundingGoal, &p.CurrentFunding, &p.ExpectedAnnualReturn,
			&p.MinimumInvestment, &p.DurationMonths, &p.Status, &p.CompletionPercentage,
			&p.FundingStartDate, &p.FundingEndDate, &p.ProjectStartDate, &p.ExpectedCompletionDate,
			&p.ImageURL, &p.Highlights, &p.Documents, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, err
		}
		i.Project = p
		investments = append(investments, i)
	}
	return investments, rows.Err()
}
