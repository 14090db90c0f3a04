// Package store is the per-owner record persistence used by every
// feature: relational tables through gorm, or JSON collections kept in a
// key/value backend.
package store

import (
	"context"
	"errors"
	"sort"
)

var ErrNotFound = errors.New("record not found")

// Record is anything a Store can hold.
type Record interface {
	RecordID() string
}

// ownable records get their owner column stamped on insert.
type ownable interface {
	AssignOwner(owner string)
}

// Query filters by column equality and orders by one column.
type Query struct {
	Filters map[string]any
	OrderBy string
	Desc    bool
}

// Eq returns a copy of q with one more equality filter.
func (q Query) Eq(column string, value any) Query {
	filters := make(map[string]any, len(q.Filters)+1)
	for k, v := range q.Filters {
		filters[k] = v
	}
	filters[column] = value
	q.Filters = filters
	return q
}

func (q Query) Asc(column string) Query {
	q.OrderBy, q.Desc = column, false
	return q
}

func (q Query) Descending(column string) Query {
	q.OrderBy, q.Desc = column, true
	return q
}

// columns returns the filter columns in a stable order.
func (q Query) columns() []string {
	cols := make([]string, 0, len(q.Filters))
	for c := range q.Filters {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	return cols
}

// Patch maps column names to new values.
type Patch map[string]any

// Store is scoped by owner on every call.
type Store[T Record] interface {
	List(ctx context.Context, owner string, q Query) ([]T, error)
	Insert(ctx context.Context, owner string, rec *T) error
	Update(ctx context.Context, owner, id string, patch Patch) (*T, error)
	Delete(ctx context.Context, owner, id string) error
}

func assignOwner[T any](rec *T, owner string) {
	if o, ok := any(rec).(ownable); ok {
		o.AssignOwner(owner)
	}
}
