package store

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const ownerColumn = "user_id"

// GormStore keeps T in its relational table, filtered by user_id.
type GormStore[T Record] struct {
	db *gorm.DB
}

func NewGormStore[T Record](db *gorm.DB) *GormStore[T] {
	return &GormStore[T]{db: db}
}

func (s *GormStore[T]) scoped(ctx context.Context, owner string) *gorm.DB {
	return s.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: ownerColumn}, Value: owner})
}

func (s *GormStore[T]) List(ctx context.Context, owner string, q Query) ([]T, error) {
	tx := s.scoped(ctx, owner)

	for _, col := range q.columns() {
		tx = tx.Where(clause.Eq{Column: clause.Column{Name: col}, Value: q.Filters[col]})
	}

	if q.OrderBy != "" {
		tx = tx.Order(clause.OrderByColumn{
			Column: clause.Column{Name: q.OrderBy},
			Desc:   q.Desc,
		})
	}

	rows := []T{}
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *GormStore[T]) Insert(ctx context.Context, owner string, rec *T) error {
	assignOwner(rec, owner)
	return s.db.WithContext(ctx).Create(rec).Error
}

func (s *GormStore[T]) Update(ctx context.Context, owner, id string, patch Patch) (*T, error) {
	res := s.scoped(ctx, owner).
		Model(new(T)).
		Where("id = ?", id).
		Updates(map[string]any(patch))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var out T
	if err := s.scoped(ctx, owner).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *GormStore[T]) Delete(ctx context.Context, owner, id string) error {
	res := s.scoped(ctx, owner).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
