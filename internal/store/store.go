// Package store layers soft-deletion, pre-processing hooks and pagination
// over GORM. Every entity handled here carries an is_deleted flag: deleted
// rows are invisible to lookups and pagination, while raw primary-key reads
// still see them so "not found" and "already deleted" stay distinguishable.
package store

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"bizlend-backend/internal/respond"
)

// Record is the soft-delete convention every stored entity implements.
type Record interface{ Deleted() bool }

// Decision is the typed result of a pre-processing hook: either proceed with
// the operation or short-circuit it with a ready envelope.
type Decision struct {
	halt   bool
	result respond.Envelope
}

func Proceed() Decision { return Decision{} }

func ShortCircuit(result respond.Envelope) Decision {
	return Decision{halt: true, result: result}
}

// PreCreate runs before an insert; it can rewrite data or short-circuit
// (e.g. an existence check returning the already-present entity).
type PreCreate[T Record] func(ctx context.Context, data *T) (Decision, error)

// BeforeSave mutates the entity after construction and before persistence
// (derived fields: referral codes, repayment schedules).
type BeforeSave[T Record] func(ctx context.Context, entity *T) error

// PreUpdate runs with the current entity before the not-found/deleted checks
// are applied; current is nil when no row exists.
type PreUpdate[T Record] func(ctx context.Context, current *T) (Decision, error)

type CreateOptions[T Record] struct {
	PreCreate      PreCreate[T]
	BeforeSave     BeforeSave[T]
	SuccessMessage string
}

// Messages names the three outcome messages of lookup-based operations.
type Messages struct {
	NotFound string
	Deleted  string
	Updated  string
}

func (m Messages) withDefaults() Messages {
	if m.NotFound == "" {
		m.NotFound = respond.MsgNotFound
	}
	if m.Deleted == "" {
		m.Deleted = respond.MsgAlreadyDeleted
	}
	if m.Updated == "" {
		m.Updated = respond.MsgUpdated
	}
	return m
}

type UpdateOptions[T Record] struct {
	PreUpdate PreUpdate[T]
	Messages  Messages
}

type Store[T Record] struct{ db *gorm.DB }

func New[T Record](db *gorm.DB) *Store[T] { return &Store[T]{db: db} }

// WithTx rebinds the store to a transaction handle.
func (s *Store[T]) WithTx(tx *gorm.DB) *Store[T] { return &Store[T]{db: tx} }

// WithinTx runs fn in a single database transaction; rebind stores to the
// passed handle so multi-entity mutations commit or roll back together.
func WithinTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(fn)
}

func internalEnvelope(op string, err error) respond.Envelope {
	// Raw errors are logged, never returned to clients.
	log.Printf("store: %s: %v", op, err)
	return respond.New(respond.MsgInternal, nil, respond.CodeInternal)
}

// CreateAndReturn inserts data and returns the persisted entity wrapped in a
// CREATED envelope. PreCreate may short-circuit before the insert; BeforeSave
// may derive fields on the constructed entity.
func (s *Store[T]) CreateAndReturn(ctx context.Context, data *T, opt CreateOptions[T]) (*T, respond.Envelope) {
	if opt.PreCreate != nil {
		d, err := opt.PreCreate(ctx, data)
		if err != nil {
			return nil, internalEnvelope("pre-create", err)
		}
		if d.halt {
			return nil, d.result
		}
	}
	if opt.BeforeSave != nil {
		if err := opt.BeforeSave(ctx, data); err != nil {
			return nil, internalEnvelope("before-save", err)
		}
	}
	if err := s.db.WithContext(ctx).Create(data).Error; err != nil {
		return nil, internalEnvelope("create", err)
	}
	msg := opt.SuccessMessage
	if msg == "" {
		msg = respond.MsgCreated
	}
	return data, respond.New(msg, data, respond.CodeCreated)
}

// findByID sees soft-deleted rows; returns nil without error when absent.
func (s *Store[T]) findByID(ctx context.Context, id string, preloads ...string) (*T, error) {
	q := s.db.WithContext(ctx)
	for _, p := range preloads {
		q = q.Preload(p)
	}
	var out T
	err := q.First(&out, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// FindIfNotDeleted distinguishes three outcomes: absent, present-but-deleted
// and live. Preloads resolve related entities before returning.
func (s *Store[T]) FindIfNotDeleted(ctx context.Context, id string, m Messages, preloads ...string) (*T, respond.Envelope) {
	m = m.withDefaults()
	entity, err := s.findByID(ctx, id, preloads...)
	if err != nil {
		return nil, internalEnvelope("find", err)
	}
	if entity == nil {
		return nil, respond.New(m.NotFound, nil, respond.CodeNotFound)
	}
	if (*entity).Deleted() {
		return nil, respond.New(m.Deleted, nil, respond.CodeNotFound)
	}
	return entity, respond.New(respond.MsgFound, entity, respond.CodeSuccess)
}

// UpdateIfFound loads the current entity, runs PreUpdate (which sees the
// entity even when it is deleted or missing), applies the mutator only to a
// live entity, persists it and returns the post-update state.
func (s *Store[T]) UpdateIfFound(ctx context.Context, id string, apply func(*T), opt UpdateOptions[T]) (*T, respond.Envelope) {
	m := opt.Messages.withDefaults()
	current, err := s.findByID(ctx, id)
	if err != nil {
		return nil, internalEnvelope("update: find", err)
	}
	if opt.PreUpdate != nil {
		d, err := opt.PreUpdate(ctx, current)
		if err != nil {
			return nil, internalEnvelope("pre-update", err)
		}
		if d.halt {
			return nil, d.result
		}
	}
	if current == nil {
		return nil, respond.New(m.NotFound, nil, respond.CodeNotFound)
	}
	if (*current).Deleted() {
		return nil, respond.New(m.Deleted, nil, respond.CodeNotFound)
	}
	if apply != nil {
		apply(current)
	}
	if err := s.db.WithContext(ctx).Save(current).Error; err != nil {
		return nil, internalEnvelope("update: save", err)
	}
	return current, respond.New(m.Updated, current, respond.CodeSuccess)
}
