package repositories

import (
	"context"

	"greenvest/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT id, investment_type, first_name, last_name, email, phone, date_of_birth,
			address, city, state, zip_code, is_email_verified, email_verified_at,
			created_at, updated_at
		FROM users
		WHERE id = $1`

	var u models.User
	err := r.db.QueryRow(ctx, query, id).Scan(&u.ID, &u.InvestmentType, &u.FirstName, &u.LastName,
		&u.Email, &u.Phone, &u.DateOfBirth, &u.Address, &u.City, &u.State, &u.ZipCode,
		&u.IsEmailVerified, &u.EmailVerifiedAt, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
