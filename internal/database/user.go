package database

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/akyairhashvil/momentum/internal/models"
)

const userColumns = "id, email, first_name, last_name, password_hash, created_at, updated_at"

func scanUser(row scanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return u, err
	}
	utc(&u.CreatedAt, &u.UpdatedAt)
	return u, nil
}

// NewUser carries the columns needed to create a user.
type NewUser struct {
	Email        string
	PasswordHash string
	FirstName    *string
	LastName     *string
}

// CreateUser inserts a user with a fresh UUID. A taken email yields ErrDuplicate.
func (d *Database) CreateUser(ctx context.Context, nu NewUser) (models.User, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	now := d.timestamp()
	row := d.queryRow(ctx,
		`INSERT INTO users (id, email, first_name, last_name, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?) RETURNING `+userColumns,
		uuid.NewString(), strings.ToLower(strings.TrimSpace(nu.Email)),
		toNullableArg(nu.FirstName), toNullableArg(nu.LastName), nu.PasswordHash, now, now)
	u, err := scanUser(row)
	return u, wrapErr(EntityUser, "create", 0, err)
}

func (d *Database) GetUser(ctx context.Context, id string) (models.User, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	u, err := scanUser(d.queryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = ?", id))
	return u, wrapErr(EntityUser, "get", 0, err)
}

// GetUserByEmail looks a user up case-insensitively.
func (d *Database) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	u, err := scanUser(d.queryRow(ctx, "SELECT "+userColumns+" FROM users WHERE email = ?",
		strings.ToLower(strings.TrimSpace(email))))
	return u, wrapErr(EntityUser, "get by email", 0, err)
}
