package database

import (
	"fmt"
	"strings"
)

// selectQuery assembles a filtered SELECT. Placeholders are written as ? and
// rebound per dialect at execution time.
type selectQuery struct {
	table   string
	columns string
	filters []string
	args    []interface{}
	orderBy string
	limit   int
}

func newSelect(table, columns string) *selectQuery {
	return &selectQuery{table: table, columns: columns}
}

func (q *selectQuery) Where(filter string, args ...interface{}) *selectQuery {
	q.filters = append(q.filters, filter)
	q.args = append(q.args, args...)
	return q
}

// WhereIn adds "column IN (...)"; an empty list adds nothing.
func (q *selectQuery) WhereIn(column string, values []string) *selectQuery {
	if len(values) == 0 {
		return q
	}
	placeholders := strings.TrimRight(strings.Repeat("?,", len(values)), ",")
	args := make([]interface{}, len(values))
	for i, v := range values {
		args[i] = v
	}
	return q.Where(column+" IN ("+placeholders+")", args...)
}

func (q *selectQuery) OrderBy(orderBy string) *selectQuery {
	q.orderBy = orderBy
	return q
}

func (q *selectQuery) Limit(limit int) *selectQuery {
	q.limit = limit
	return q
}

func (q *selectQuery) Build() (string, []interface{}) {
	query := fmt.Sprintf("SELECT %s FROM %s", q.columns, q.table)
	if len(q.filters) > 0 {
		query += " WHERE " + strings.Join(q.filters, " AND ")
	}
	if q.orderBy != "" {
		query += " ORDER BY " + q.orderBy
	}
	if q.limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", q.limit)
	}
	return query, q.args
}

// updateQuery assembles a single-row UPDATE ... RETURNING scoped by id and owner.
type updateQuery struct {
	table string
	sets  []string
	args  []interface{}
}

func newUpdate(table string) *updateQuery {
	return &updateQuery{table: table}
}

func (q *updateQuery) Set(column string, value interface{}) *updateQuery {
	q.sets = append(q.sets, column+" = ?")
	q.args = append(q.args, value)
	return q
}

func (q *updateQuery) Empty() bool { return len(q.sets) == 0 }

func (q *updateQuery) Build(id int64, userID, returning string) (string, []interface{}) {
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ? AND user_id = ? RETURNING %s",
		q.table, strings.Join(q.sets, ", "), returning)
	args := append(append([]interface{}{}, q.args...), id, userID)
	return query, args
}
