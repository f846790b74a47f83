package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/akyairhashvil/momentum/internal/contract"
)

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

// toNullableArg converts a pointer to an interface{} suitable for SQL args.
// Returns nil if pointer is nil, otherwise returns the dereferenced value.
func toNullableArg[T any](v *T) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// timeArg normalizes an optional request time into a column value.
func timeArg(v contract.Nullable[contract.Time]) interface{} {
	if !v.Valid {
		return nil
	}
	return contract.Normalize(v.Value.Time)
}

// utc forces scanned timestamps into UTC; pgx returns them in the local zone.
func utc(ts ...*time.Time) {
	for _, t := range ts {
		if t != nil && !t.IsZero() {
			*t = t.UTC()
		}
	}
}

func utcPtr(ts ...**time.Time) {
	for _, t := range ts {
		if *t != nil {
			v := (*t).UTC()
			*t = &v
		}
	}
}

// ownsRow reports whether table has a row with id owned by userID.
func (d *Database) ownsRow(ctx context.Context, table string, id int64, userID string) (bool, error) {
	var n int
	err := d.queryRow(ctx, "SELECT COUNT(1) FROM "+table+" WHERE id = ? AND user_id = ?", id, userID).Scan(&n)
	return n > 0, err
}

// checkRef rejects a reference to a row the user does not own.
func (d *Database) checkRef(ctx context.Context, table string, ref contract.Nullable[int64], userID string) error {
	if !ref.Valid {
		return nil
	}
	ok, err := d.ownsRow(ctx, table, ref.Value, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidReference
	}
	return nil
}

// requireAffected turns a zero-row mutation into ErrNotFound.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
