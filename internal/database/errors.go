package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	sqlite3 "github.com/mattn/go-sqlite3"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidReference = errors.New("invalid reference")
	ErrDuplicate        = errors.New("already exists")
)

// Entity names used in OpError.
const (
	EntitySprint        = "sprint"
	EntityGoal          = "goal"
	EntityTask          = "task"
	EntityRetrospective = "retrospective"
	EntityUser          = "user"
	EntitySession       = "session"
	EntityConversation  = "conversation"
	EntityMessage       = "message"
)

type OpError struct {
	Op     string
	Entity string
	ID     int64
	Err    error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID > 0 {
		return fmt.Sprintf("%s %s %d: %v", e.Op, e.Entity, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapErr(entity, op string, id int64, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Entity: entity, ID: id, Err: classify(err)}
}

// classify maps driver errors onto the package sentinels, keeping the
// driver message for logs.
func classify(err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ErrNotFound
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidReference), errors.Is(err, ErrDuplicate):
		return err
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintForeignKey:
			return fmt.Errorf("%w: %v", ErrInvalidReference, err)
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return fmt.Errorf("%w: %v", ErrDuplicate, err)
		}
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503":
			return fmt.Errorf("%w: %v", ErrInvalidReference, err)
		case "23505":
			return fmt.Errorf("%w: %v", ErrDuplicate, err)
		}
	}
	return err
}
