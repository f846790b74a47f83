package database

import (
	"context"
	"time"

	"github.com/akyairhashvil/momentum/internal/models"
)

// CreateSession stores a hashed session token for userID.
func (d *Database) CreateSession(ctx context.Context, tokenHash, userID string, expiresAt time.Time) (models.Session, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	s := models.Session{
		TokenHash: tokenHash,
		UserID:    userID,
		ExpiresAt: expiresAt.UTC().Truncate(time.Microsecond),
		CreatedAt: d.timestamp(),
	}
	_, err := d.exec(ctx,
		"INSERT INTO sessions (token_hash, user_id, expires_at, created_at) VALUES (?, ?, ?, ?)",
		s.TokenHash, s.UserID, s.ExpiresAt, s.CreatedAt)
	return s, wrapErr(EntitySession, "create", 0, err)
}

// GetSessionUser resolves an unexpired session to its user.
func (d *Database) GetSessionUser(ctx context.Context, tokenHash string) (models.User, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	row := d.queryRow(ctx, `SELECT u.id, u.email, u.first_name, u.last_name, u.password_hash, u.created_at, u.updated_at
		FROM sessions s JOIN users u ON u.id = s.user_id
		WHERE s.token_hash = ? AND s.expires_at > ?`, tokenHash, d.timestamp())
	u, err := scanUser(row)
	return u, wrapErr(EntitySession, "resolve", 0, err)
}

// DeleteSession removes a session. Deleting a missing session is not an error.
func (d *Database) DeleteSession(ctx context.Context, tokenHash string) error {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	_, err := d.exec(ctx, "DELETE FROM sessions WHERE token_hash = ?", tokenHash)
	return wrapErr(EntitySession, "delete", 0, err)
}

// DeleteExpiredSessions purges sessions past their expiry and reports how many went.
func (d *Database) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	res, err := d.exec(ctx, "DELETE FROM sessions WHERE expires_at <= ?", d.timestamp())
	if err != nil {
		return 0, wrapErr(EntitySession, "purge", 0, err)
	}
	n, err := res.RowsAffected()
	return n, wrapErr(EntitySession, "purge", 0, err)
}
