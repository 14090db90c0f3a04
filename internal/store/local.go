package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// KeyPrefix namespaces every local collection key.
const KeyPrefix = "studiogestor_"

// KV is the raw persistence under LocalStore. Get returns nil, nil for a
// missing key.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// LocalStore keeps one JSON array per (collection, owner) key.
type LocalStore[T Record] struct {
	kv         KV
	collection string

	mu sync.Mutex
}

func NewLocalStore[T Record](kv KV, collection string) *LocalStore[T] {
	return &LocalStore[T]{kv: kv, collection: collection}
}

func (s *LocalStore[T]) Collection() string { return s.collection }

// Key is the KV key holding owner's records.
func Key(collection, owner string) string {
	return KeyPrefix + collection + ":" + owner
}

func (s *LocalStore[T]) load(ctx context.Context, owner string) ([]T, error) {
	raw, err := s.kv.Get(ctx, Key(s.collection, owner))
	if err != nil {
		return nil, err
	}
	rows := []T{}
	if len(raw) == 0 {
		return rows, nil
	}
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("%s: corrupt collection: %w", s.collection, err)
	}
	return rows, nil
}

func (s *LocalStore[T]) save(ctx context.Context, owner string, rows []T) error {
	raw, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, Key(s.collection, owner), raw)
}

func (s *LocalStore[T]) List(ctx context.Context, owner string, q Query) ([]T, error) {
	s.mu.Lock()
	rows, err := s.load(ctx, owner)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	type entry struct {
		rec    T
		fields map[string]json.RawMessage
	}

	matched := make([]entry, 0, len(rows))
	for _, rec := range rows {
		fields, err := fieldsOf(rec)
		if err != nil {
			return nil, err
		}
		if matches(fields, q) {
			matched = append(matched, entry{rec: rec, fields: fields})
		}
	}

	if q.OrderBy != "" {
		sort.SliceStable(matched, func(i, j int) bool {
			c := compareRaw(matched[i].fields[q.OrderBy], matched[j].fields[q.OrderBy])
			if q.Desc {
				return c > 0
			}
			return c < 0
		})
	}

	out := make([]T, 0, len(matched))
	for _, e := range matched {
		out = append(out, e.rec)
	}
	return out, nil
}

func (s *LocalStore[T]) Insert(ctx context.Context, owner string, rec *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.load(ctx, owner)
	if err != nil {
		return err
	}
	return s.save(ctx, owner, append(rows, *rec))
}

func (s *LocalStore[T]) Update(ctx context.Context, owner, id string, patch Patch) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.load(ctx, owner)
	if err != nil {
		return nil, err
	}

	for i, rec := range rows {
		if rec.RecordID() != id {
			continue
		}

		fields, err := fieldsOf(rec)
		if err != nil {
			return nil, err
		}
		for col, v := range patch {
			raw, err := json.Marshal(v)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", s.collection, col, err)
			}
			fields[col] = raw
		}

		merged, err := json.Marshal(fields)
		if err != nil {
			return nil, err
		}
		var updated T
		if err := json.Unmarshal(merged, &updated); err != nil {
			return nil, err
		}

		rows[i] = updated
		if err := s.save(ctx, owner, rows); err != nil {
			return nil, err
		}
		return &updated, nil
	}

	return nil, ErrNotFound
}

func (s *LocalStore[T]) Delete(ctx context.Context, owner, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.load(ctx, owner)
	if err != nil {
		return err
	}

	kept := rows[:0]
	found := false
	for _, rec := range rows {
		if rec.RecordID() == id {
			found = true
			continue
		}
		kept = append(kept, rec)
	}
	if !found {
		return ErrNotFound
	}
	return s.save(ctx, owner, kept)
}

// Snapshot returns the raw JSON array stored for owner, "[]" when empty.
func (s *LocalStore[T]) Snapshot(ctx context.Context, owner string) (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.kv.Get(ctx, Key(s.collection, owner))
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return json.RawMessage("[]"), nil
	}
	return json.RawMessage(raw), nil
}

func fieldsOf(rec any) (map[string]json.RawMessage, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func matches(fields map[string]json.RawMessage, q Query) bool {
	for _, col := range q.columns() {
		want, err := json.Marshal(q.Filters[col])
		if err != nil {
			return false
		}
		if !bytes.Equal(bytes.TrimSpace(fields[col]), want) {
			return false
		}
	}
	return true
}

// compareRaw orders two JSON scalars: timestamps chronologically, numbers
// numerically, everything else by its text.
func compareRaw(a, b json.RawMessage) int {
	var sa, sb string
	if json.Unmarshal(a, &sa) == nil && json.Unmarshal(b, &sb) == nil {
		ta, errA := time.Parse(time.RFC3339Nano, sa)
		tb, errB := time.Parse(time.RFC3339Nano, sb)
		if errA == nil && errB == nil {
			return ta.Compare(tb)
		}
		return strings.Compare(sa, sb)
	}

	var fa, fb float64
	if json.Unmarshal(a, &fa) == nil && json.Unmarshal(b, &fb) == nil {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		}
		return 0
	}

	return bytes.Compare(a, b)
}
