package audit

import (
	"context"
	"time"

	"github.com/BruksfildServices01/studio-gestor/internal/models"
)

// Query filters an owner's audit trail. Zero fields match everything.
type Query struct {
	Action   string
	Entity   string
	EntityID string
	From     time.Time
	To       time.Time // exclusive
	Page     int
	Limit    int
}

const (
	defaultLimit = 50
	maxLimit     = 200
)

// Normalize clamps paging to page >= 1 and 1..200 rows.
func (q *Query) Normalize() {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 || q.Limit > maxLimit {
		q.Limit = defaultLimit
	}
}

// List returns one page of owner's events, newest first, and the total
// count matching q.
func (l *Logger) List(ctx context.Context, owner string, q Query) ([]models.AuditLog, int64, error) {
	q.Normalize()

	// --------------------------------------------------
	// Query base (sempre protegido pelo dono)
	// --------------------------------------------------
	tx := l.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Where("user_id = ?", owner)

	if q.Action != "" {
		tx = tx.Where("action = ?", q.Action)
	}
	if q.Entity != "" {
		tx = tx.Where("entity = ?", q.Entity)
	}
	if q.EntityID != "" {
		tx = tx.Where("entity_id = ?", q.EntityID)
	}
	if !q.From.IsZero() {
		tx = tx.Where("created_at >= ?", q.From)
	}
	if !q.To.IsZero() {
		tx = tx.Where("created_at < ?", q.To)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	err := tx.
		Order("created_at DESC").
		Order("id DESC").
		Limit(q.Limit).
		Offset((q.Page - 1) * q.Limit).
		Find(&logs).Error
	return logs, total, err
}
