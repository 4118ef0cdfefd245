package models

import (
	"time"
)

type User struct {
	ID              int64      `db:"id"`
	InvestmentType  *string    `db:"investment_type"`
	FirstName       string     `db:"first_name"`
	LastName        string     `db:"last_name"`
	Email           string     `db:"email"`
	Phone           *string    `db:"phone"`
	DateOfBirth     *time.Time `db:"date_of_birth"`
	Address         *string    `db:"address"`
	City            *string    `db:"city"`
	State           *string    `db:"state"`
	ZipCode         *string    `db:"zip_code"`
	IsEmailVerified bool       `db:"is_email_verified"`
	EmailVerifiedAt *time.Time `db:"email_verified_at"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

func (u *User) Name() string {
	return u.FirstName + " " + u.LastName
}
