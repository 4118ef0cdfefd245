package repositories

import (
	"context"

	"greenvest/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type ProjectFilter struct {
	Status string
	Type   string
}

type ProjectRepository interface {
	GetAll(ctx context.Context, filter ProjectFilter) ([]models.Project, error)
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	GetBySlug(ctx context.Context, slug string) (*models.Project, error)
	GetInvestorsCount(ctx context.Context, projectID int64) (int, error)
	IncrementFunding(ctx context.Context, id int64, amount decimal.Decimal, tx pgx.Tx) error
}

type projectRepo struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) ProjectRepository {
	return &projectRepo{db: db}
}

func (r *projectRepo) q(tx pgx.Tx) dbtx {
	if tx != nil {
		return tx
	}
	return r.db
}

func scanProject(row pgx.Row, p *models.Project) error {
	return row.Scan(&p.ID, &p.Name, &p.Slug, &p.Type, &p.Description, &p.Location, &p.LocationState,
		&p.Capacity, &p.TotalCost, &p.FundingGoal, &p.CurrentFunding, &p.ExpectedAnnualReturn,
		&p.MinimumInvestment, &p.DurationMonths, &p.Status, &p.CompletionPercentage,
		&p.FundingStartDate, &p.FundingEndDate, &p.ProjectStartDate, &p.ExpectedCompletionDate,
		&p.ImageURL, &p.Highlights, &p.Documents, &p.CreatedAt, &p.UpdatedAt)
}

func (r *projectRepo) GetAll(ctx context.Context, filter ProjectFilter) ([]models.Project, error) {
	// Draft projects never leave the admin surface.
	query := `
		SELECT ` + projectColumns + `
		FROM projects p
		WHERE p.status IN ('funding', 'active', 'completed')
		  AND ($1 = '' OR p.status = $1)
		  AND ($2 = '' OR p.type = $2)
		ORDER BY p.id`

	rows, err := r.db.Query(ctx, query, filter.Status, filter.Type)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := scanProject(rows, &p); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *projectRepo) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects p WHERE p.id = $1`

	var p models.Project
	if err := scanProject(r.db.QueryRow(ctx, query, id), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *projectRepo) GetBySlug(ctx context.Context, slug string) (*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects p WHERE p.slug = $1`

	var p models.Project
	if err := scanProject(r.db.QueryRow(ctx, query, slug), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *projectRepo) GetInvestorsCount(ctx context.Context, projectID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(DISTINCT user_id) FROM investments WHERE project_id = $1`,
		projectID,
	).Scan(&count)
	return count, err
}

func (r *projectRepo) IncrementFunding(ctx context.Context, id int64, amount decimal.Decimal, tx pgx.Tx) error {
	_, err := r.q(tx).Exec(ctx,
		`UPDATE projects SET current_funding = current_funding + $2, updated_at = now() WHERE id = $1`,
		id, amount,
	)
	return err
}
