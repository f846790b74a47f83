package contract

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/akyairhashvil/momentum/internal/models"
	"github.com/akyairhashvil/momentum/internal/util"
)

// GoalFilter narrows GET /api/goals. Nil fields do not constrain.
type GoalFilter struct {
	Type     *models.GoalType
	SprintID *int64
	Date     *time.Time // matches the whole UTC calendar day
}

// TaskFilter narrows GET /api/tasks.
type TaskFilter struct {
	GoalID *int64
	Status *models.TaskStatus
	Query  util.SearchQuery
}

// RetrospectiveFilter narrows GET /api/retrospectives.
type RetrospectiveFilter struct {
	SprintID *int64
}

func ParseGoalFilter(q url.Values) (GoalFilter, error) {
	var (
		v validator
		f GoalFilter
	)
	if raw := strings.TrimSpace(q.Get("type")); raw != "" {
		t := models.GoalType(raw)
		oneOf(&v, "type", t, models.GoalTypes, true)
		f.Type = &t
	}
	f.SprintID = queryID(&v, q, "sprintId")
	if raw := strings.TrimSpace(q.Get("date")); raw != "" {
		d, err := ParseTime(raw)
		if err != nil {
			v.fail("date", "date must be RFC 3339 or YYYY-MM-DD")
		} else {
			day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
			f.Date = &day
		}
	}
	return f, v.err()
}

func ParseTaskFilter(q url.Values) (TaskFilter, error) {
	var (
		v validator
		f TaskFilter
	)
	f.GoalID = queryID(&v, q, "goalId")
	if raw := strings.TrimSpace(q.Get("status")); raw != "" {
		s := models.TaskStatus(raw)
		oneOf(&v, "status", s, models.TaskStatuses, true)
		f.Status = &s
	}
	f.Query = util.ParseSearchQuery(q.Get("q"))
	for _, s := range f.Query.Status {
		oneOf(&v, "q", models.TaskStatus(s), models.TaskStatuses, true)
	}
	for _, p := range f.Query.Priority {
		oneOf(&v, "q", models.TaskPriority(p), models.TaskPriorities, true)
	}
	return f, v.err()
}

func ParseRetrospectiveFilter(q url.Values) (RetrospectiveFilter, error) {
	var v validator
	f := RetrospectiveFilter{SprintID: queryID(&v, q, "sprintId")}
	return f, v.err()
}

func queryID(v *validator, q url.Values, key string) *int64 {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil
	}
	id, err := ParseID(raw)
	if err != nil {
		v.fail(key, "%s must be a positive integer", key)
		return nil
	}
	return &id
}

// ParseID parses a positive integer identifier from a path or query value.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &ValidationError{Field: "id", Message: "id must be a positive integer"}
	}
	return id, nil
}
