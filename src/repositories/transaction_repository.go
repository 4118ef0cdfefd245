package repositories

import (
	"context"

	"greenvest/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TransactionRepository interface {
	Create(ctx context.Context, t *models.Transaction, tx pgx.Tx) error
	// GetByReference looks up a transaction by reference number and type.
	// Investment confirmations use it as the idempotency ledger: the
	// reference number of an investment transaction is the caller-supplied
	// idempotency key.
	GetByReference(ctx context.Context, reference, txnType string, tx pgx.Tx) (*models.Transaction, error)
	GetRecentByUserID(ctx context.Context, userID int64, limit int) ([]models.Transaction, error)
}

type transactionRepo struct {
	db *pgxpool.Pool
}

func NewTransactionRepository(db *pgxpool.Pool) TransactionRepository {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) q(tx pgx.Tx) dbtx {
	if tx != nil {
		return tx
	}
	return r.db
}

const transactionColumns = `t.id, t.user_id, t.investment_id, t.project_id, t.type, t.amount,
		t.description, t.status, t.reference_number, t.occurred_at, t.metadata, t.created_at, t.updated_at`

func scanTransaction(row pgx.Row, t *models.Transaction) error {
	return row.Scan(&t.ID, &t.UserID, &t.InvestmentID, &t.ProjectID, &t.Type, &t.Amount,
		&t.Description, &t.Status, &t.ReferenceNumber, &t.OccurredAt, &t.Metadata, &t.CreatedAt, &t.UpdatedAt)
}

func (r *transactionRepo) Create(ctx context.Context, t *models.Transaction, tx pgx.Tx) error {
	if t.ReferenceNumber == "" {
		t.ReferenceNumber = models.NewReferenceNumber()
	}

	query := `
		INSERT INTO transactions (user_id, investment_id, project_id, type, amount, description,
			status, reference_number, occurred_at, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`

	return r.q(tx).QueryRow(ctx, query,
		t.UserID, t.InvestmentID, t.ProjectID, t.Type, t.Amount, t.Description,
		t.Status, t.ReferenceNumber, t.OccurredAt, t.Metadata,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *transactionRepo) GetByReference(ctx context.Context, reference, txnType string, tx pgx.Tx) (*models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t
		WHERE t.reference_number = $1 AND t.type = $2`

	var t models.Transaction
	if err := scanTransaction(r.q(tx).QueryRow(ctx, query, reference, txnType), &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *transactionRepo) GetRecentByUserID(ctx context.Context, userID int64, limit int) ([]models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t
		WHERE t.user_id = $1
		ORDER BY t.occurred_at DESC, t.id DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := scanTransaction(rows, &t); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}
