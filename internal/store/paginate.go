package store

import (
	"context"

	"gorm.io/gorm"

	"bizlend-backend/internal/respond"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	// MaxLimit bounds page size so a caller cannot request unbounded result
	// sets.
	MaxLimit = 100
)

// Scope narrows a pagination query (the caller's filter).
type Scope func(*gorm.DB) *gorm.DB

type Page[T any] struct {
	Items       []T   `json:"items"`
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	Limit       int   `json:"limit"`
	IsLastPage  bool  `json:"isLastPage"`
}

// Paginate returns one page of live entities matching scope. Soft-deleted
// rows are excluded from both the items and the total count.
func (s *Store[T]) Paginate(ctx context.Context, scope Scope, page, limit int, foundMessage string) (Page[T], respond.Envelope) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if foundMessage == "" {
		foundMessage = respond.MsgFound
	}

	var model T
	q := s.db.WithContext(ctx).Model(&model).Where("is_deleted = ?", false)
	if scope != nil {
		q = scope(q)
	}

	var totalCount int64
	if err := q.Count(&totalCount).Error; err != nil {
		return Page[T]{}, internalEnvelope("paginate: count", err)
	}

	items := make([]T, 0, limit)
	offset := (page - 1) * limit
	if err := q.Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return Page[T]{}, internalEnvelope("paginate: find", err)
	}

	totalPages := int((totalCount + int64(limit) - 1) / int64(limit))
	out := Page[T]{
		Items:       items,
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  totalCount,
		Limit:       limit,
		IsLastPage:  page >= totalPages,
	}
	return out, respond.New(foundMessage, out, respond.CodeSuccess)
}
